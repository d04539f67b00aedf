package transfer_repo

import (
	"context"
	"fmt"
	"strings"

	"PaymentService/internal/payout/domain/transfer"
	"PaymentService/pkg/postgres"

	"github.com/Masterminds/squirrel"
)

// PgTransferRepo serves lookups from the replica. Every write, and the read
// that stands in for an empty update, goes to the primary.
type PgTransferRepo struct {
	primary postgres.Executor
	replica postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgTransferRepo(cluster *postgres.Cluster) transfer.TransferRepo {
	return newPgTransferRepo(cluster.Primary(), cluster.Replica(), cluster.Builder())
}

func newPgTransferRepo(primary, replica postgres.Executor, builder squirrel.StatementBuilderType) *PgTransferRepo {
	return &PgTransferRepo{primary: primary, replica: replica, builder: builder}
}

func returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}

func (r *PgTransferRepo) CreateTransfer(ctx context.Context, data transfer.TransferCreate) (*transfer.Transfer, error) {
	set := transferCreateAssignments(data)

	q := r.builder.Insert(transfersTable).
		Columns(set.cols...).
		Values(set.vals...).
		Suffix(returning(transferColumns))

	created, err := queryOne(ctx, r.primary, q, parseTransferRow)
	if err != nil {
		if postgres.IsPgErrorUniqueViolation(err) {
			return nil, transfer.ErrAlreadyExists
		}
		return nil, fmt.Errorf("create transfer: %w", err)
	}
	if created == nil {
		return nil, fmt.Errorf("create transfer: no row returned")
	}
	return created, nil
}

func (r *PgTransferRepo) GetTransferByID(ctx context.Context, transferID int64) (*transfer.Transfer, error) {
	q := r.builder.Select(transferColumns...).
		From(transfersTable).
		Where(squirrel.Eq{"id": transferID})

	t, err := queryOne(ctx, r.replica, q, parseTransferRow)
	if err != nil {
		return nil, fmt.Errorf("query transfer by id: %w", err)
	}
	return t, nil
}

func (r *PgTransferRepo) UpdateTransferByID(ctx context.Context, transferID int64, data transfer.TransferUpdate) (*transfer.Transfer, error) {
	set := transferUpdateAssignments(data)
	if set.empty() {
		q := r.builder.Select(transferColumns...).
			From(transfersTable).
			Where(squirrel.Eq{"id": transferID})

		t, err := queryOne(ctx, r.primary, q, parseTransferRow)
		if err != nil {
			return nil, fmt.Errorf("query transfer by id: %w", err)
		}
		return t, nil
	}

	q := r.builder.Update(transfersTable)
	for i, col := range set.cols {
		q = q.Set(col, set.vals[i])
	}
	q = q.Where(squirrel.Eq{"id": transferID}).Suffix(returning(transferColumns))

	updated, err := queryOne(ctx, r.primary, q, parseTransferRow)
	if err != nil {
		if postgres.IsPgErrorUniqueViolation(err) {
			return nil, transfer.ErrAlreadyExists
		}
		return nil, fmt.Errorf("update transfer: %w", err)
	}
	return updated, nil
}

func transferCreateAssignments(data transfer.TransferCreate) assignments {
	var a assignments
	a.add("subtotal", data.Subtotal)
	a.add("adjustments", data.Adjustments)
	a.add("amount", data.Amount)
	a.add("method", data.Method)
	a.add("currency", data.Currency)
	a.add("submitted_at", data.SubmittedAt)
	a.add("deleted_at", data.DeletedAt)
	a.add("manual_transfer_reason", data.ManualTransferReason)
	a.add("status", data.Status)
	a.add("status_code", data.StatusCode)
	a.add("submitting_at", data.SubmittingAt)
	a.add("should_retry_on_failure", data.ShouldRetryOnFailure)
	a.add("statement_description", data.StatementDescription)
	a.add("created_by_id", data.CreatedByID)
	a.add("deleted_by_id", data.DeletedByID)
	a.add("payment_account_id", data.PaymentAccountID)
	a.add("recipient_id", data.RecipientID)
	a.add("recipient_ct_id", data.RecipientCtID)
	a.add("submitted_by_id", data.SubmittedByID)
	return a
}

func transferUpdateAssignments(data transfer.TransferUpdate) assignments {
	var a assignments
	addIfSet(&a, "subtotal", data.Subtotal)
	addIfSet(&a, "adjustments", data.Adjustments)
	addIfSet(&a, "amount", data.Amount)
	addIfSet(&a, "method", data.Method)
	addIfSet(&a, "currency", data.Currency)
	addIfSet(&a, "submitted_at", data.SubmittedAt)
	addIfSet(&a, "deleted_at", data.DeletedAt)
	addIfSet(&a, "manual_transfer_reason", data.ManualTransferReason)
	addIfSet(&a, "status", data.Status)
	addIfSet(&a, "status_code", data.StatusCode)
	addIfSet(&a, "submitting_at", data.SubmittingAt)
	addIfSet(&a, "should_retry_on_failure", data.ShouldRetryOnFailure)
	addIfSet(&a, "statement_description", data.StatementDescription)
	addIfSet(&a, "created_by_id", data.CreatedByID)
	addIfSet(&a, "deleted_by_id", data.DeletedByID)
	addIfSet(&a, "payment_account_id", data.PaymentAccountID)
	addIfSet(&a, "recipient_id", data.RecipientID)
	addIfSet(&a, "recipient_ct_id", data.RecipientCtID)
	addIfSet(&a, "submitted_by_id", data.SubmittedByID)
	return a
}
