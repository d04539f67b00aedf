package transfer_repo

import (
	"context"
	"fmt"

	"PaymentService/internal/payout/domain/transfer"
	"PaymentService/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

func parseTransferRow(row pgx.Row) (transfer.Transfer, error) {
	var t transfer.Transfer
	err := row.Scan(
		&t.ID,
		&t.CreatedAt,
		&t.Subtotal,
		&t.Adjustments,
		&t.Amount,
		&t.Method,
		&t.Currency,
		&t.SubmittedAt,
		&t.DeletedAt,
		&t.ManualTransferReason,
		&t.Status,
		&t.StatusCode,
		&t.SubmittingAt,
		&t.ShouldRetryOnFailure,
		&t.StatementDescription,
		&t.CreatedByID,
		&t.DeletedByID,
		&t.PaymentAccountID,
		&t.RecipientID,
		&t.RecipientCtID,
		&t.SubmittedByID,
	)
	if err != nil {
		return transfer.Transfer{}, fmt.Errorf("scan transfer row: %w", err)
	}
	return t, nil
}

func parseStripeTransferRow(row pgx.Row) (transfer.StripeTransfer, error) {
	var st transfer.StripeTransfer
	err := row.Scan(
		&st.ID,
		&st.CreatedAt,
		&st.TransferID,
		&st.StripeStatus,
		&st.StripeID,
		&st.StripeRequestID,
		&st.StripeFailureCode,
		&st.StripeAccountID,
		&st.StripeAccountType,
		&st.CountryShortname,
		&st.BankLastFour,
		&st.BankName,
		&st.SubmissionErrorCode,
		&st.SubmissionErrorType,
		&st.SubmissionStatus,
		&st.SubmittedAt,
	)
	if err != nil {
		return transfer.StripeTransfer{}, fmt.Errorf("scan stripe transfer row: %w", err)
	}
	return st, nil
}

// queryRows runs q on db and parses every returned row.
func queryRows[T any](ctx context.Context, db postgres.Executor, q squirrel.Sqlizer, parse func(pgx.Row) (T, error)) ([]T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		item, err := parse(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// queryOne is queryRows for statements matching at most one row.
func queryOne[T any](ctx context.Context, db postgres.Executor, q squirrel.Sqlizer, parse func(pgx.Row) (T, error)) (*T, error) {
	items, err := queryRows(ctx, db, q, parse)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}
