package transfer_repo

import (
	"context"
	"fmt"

	"PaymentService/internal/payout/domain/transfer"
	"PaymentService/pkg/postgres"

	"github.com/Masterminds/squirrel"
)

func (r *PgTransferRepo) CreateStripeTransfer(ctx context.Context, data transfer.StripeTransferCreate) (*transfer.StripeTransfer, error) {
	set := stripeTransferCreateAssignments(data)

	q := r.builder.Insert(stripeTransferTable).
		Columns(set.cols...).
		Values(set.vals...).
		Suffix(returning(stripeTransferColumns))

	created, err := queryOne(ctx, r.primary, q, parseStripeTransferRow)
	if err != nil {
		if postgres.IsPgErrorUniqueViolation(err) {
			return nil, transfer.ErrAlreadyExists
		}
		return nil, fmt.Errorf("create stripe transfer: %w", err)
	}
	if created == nil {
		return nil, fmt.Errorf("create stripe transfer: no row returned")
	}
	return created, nil
}

func (r *PgTransferRepo) GetStripeTransferByID(ctx context.Context, stripeTransferID int64) (*transfer.StripeTransfer, error) {
	st, err := queryOne(ctx, r.replica, r.selectStripeTransfers(squirrel.Eq{"id": stripeTransferID}), parseStripeTransferRow)
	if err != nil {
		return nil, fmt.Errorf("query stripe transfer by id: %w", err)
	}
	return st, nil
}

func (r *PgTransferRepo) GetStripeTransferByStripeID(ctx context.Context, stripeID string) (*transfer.StripeTransfer, error) {
	st, err := queryOne(ctx, r.replica, r.selectStripeTransfers(squirrel.Eq{"stripe_id": stripeID}), parseStripeTransferRow)
	if err != nil {
		return nil, fmt.Errorf("query stripe transfer by stripe id: %w", err)
	}
	return st, nil
}

func (r *PgTransferRepo) GetStripeTransfersByTransferID(ctx context.Context, transferID int64) ([]transfer.StripeTransfer, error) {
	sts, err := queryRows(ctx, r.replica, r.selectStripeTransfers(squirrel.Eq{"transfer_id": transferID}), parseStripeTransferRow)
	if err != nil {
		return nil, fmt.Errorf("query stripe transfers by transfer id: %w", err)
	}
	return sts, nil
}

func (r *PgTransferRepo) UpdateStripeTransferByID(ctx context.Context, stripeTransferID int64, data transfer.StripeTransferUpdate) (*transfer.StripeTransfer, error) {
	set := stripeTransferUpdateAssignments(data)
	if set.empty() {
		st, err := queryOne(ctx, r.primary, r.selectStripeTransfers(squirrel.Eq{"id": stripeTransferID}), parseStripeTransferRow)
		if err != nil {
			return nil, fmt.Errorf("query stripe transfer by id: %w", err)
		}
		return st, nil
	}

	q := r.builder.Update(stripeTransferTable)
	for i, col := range set.cols {
		q = q.Set(col, set.vals[i])
	}
	q = q.Where(squirrel.Eq{"id": stripeTransferID}).Suffix(returning(stripeTransferColumns))

	updated, err := queryOne(ctx, r.primary, q, parseStripeTransferRow)
	if err != nil {
		if postgres.IsPgErrorUniqueViolation(err) {
			return nil, transfer.ErrAlreadyExists
		}
		return nil, fmt.Errorf("update stripe transfer: %w", err)
	}
	return updated, nil
}

// DeleteStripeTransferByStripeID returns the number of deleted rows; zero is not an error.
func (r *PgTransferRepo) DeleteStripeTransferByStripeID(ctx context.Context, stripeID string) (int64, error) {
	query, args, err := r.builder.Delete(stripeTransferTable).
		Where(squirrel.Eq{"stripe_id": stripeID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete stripe transfer query: %w", err)
	}

	tag, err := r.primary.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete stripe transfer: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PgTransferRepo) selectStripeTransfers(where squirrel.Eq) squirrel.SelectBuilder {
	return r.builder.Select(stripeTransferColumns...).
		From(stripeTransferTable).
		Where(where)
}

// stripeTransferCreateAssignments always inserts the required columns and
// only the optional ones that are set.
func stripeTransferCreateAssignments(data transfer.StripeTransferCreate) assignments {
	var a assignments
	a.add("transfer_id", data.TransferID)
	a.add("stripe_status", data.StripeStatus)
	addIfSet(&a, "stripe_id", data.StripeID)
	addIfSet(&a, "stripe_request_id", data.StripeRequestID)
	addIfSet(&a, "stripe_failure_code", data.StripeFailureCode)
	addIfSet(&a, "stripe_account_id", data.StripeAccountID)
	addIfSet(&a, "stripe_account_type", data.StripeAccountType)
	addIfSet(&a, "country_shortname", data.CountryShortname)
	addIfSet(&a, "bank_last_four", data.BankLastFour)
	addIfSet(&a, "bank_name", data.BankName)
	addIfSet(&a, "submission_error_code", data.SubmissionErrorCode)
	addIfSet(&a, "submission_error_type", data.SubmissionErrorType)
	addIfSet(&a, "submission_status", data.SubmissionStatus)
	addIfSet(&a, "submitted_at", data.SubmittedAt)
	return a
}

func stripeTransferUpdateAssignments(data transfer.StripeTransferUpdate) assignments {
	var a assignments
	addIfSet(&a, "transfer_id", data.TransferID)
	addIfSet(&a, "stripe_status", data.StripeStatus)
	addIfSet(&a, "stripe_id", data.StripeID)
	addIfSet(&a, "stripe_request_id", data.StripeRequestID)
	addIfSet(&a, "stripe_failure_code", data.StripeFailureCode)
	addIfSet(&a, "stripe_account_id", data.StripeAccountID)
	addIfSet(&a, "stripe_account_type", data.StripeAccountType)
	addIfSet(&a, "country_shortname", data.CountryShortname)
	addIfSet(&a, "bank_last_four", data.BankLastFour)
	addIfSet(&a, "bank_name", data.BankName)
	addIfSet(&a, "submission_error_code", data.SubmissionErrorCode)
	addIfSet(&a, "submission_error_type", data.SubmissionErrorType)
	addIfSet(&a, "submission_status", data.SubmissionStatus)
	addIfSet(&a, "submitted_at", data.SubmittedAt)
	return a
}
