package dispute_repo

import (
	"fmt"

	"PaymentService/internal/payin/domain/dispute"

	"github.com/jackc/pgx/v5"
)

func parseStripeDisputeRow(row pgx.Row) (StripeDisputeDbEntity, error) {
	var e StripeDisputeDbEntity
	err := row.Scan(
		&e.ID,
		&e.StripeDisputeID,
		&e.DisputedAt,
		&e.Amount,
		&e.Fee,
		&e.Net,
		&e.Currency,
		&e.ChargedAt,
		&e.Reason,
		&e.Status,
		&e.EvidenceDueBy,
		&e.EvidenceSubmittedAt,
		&e.UpdatedAt,
		&e.StripeCardID,
		&e.StripeChargeID,
	)
	return e, err
}

func parseStripeDisputeRows(rows pgx.Rows) ([]dispute.StripeDispute, error) {
	defer rows.Close()

	var disputes []dispute.StripeDispute
	for rows.Next() {
		e, err := parseStripeDisputeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stripe dispute row: %w", err)
		}
		disputes = append(disputes, e.ToStripeDispute())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stripe dispute rows: %w", err)
	}

	return disputes, nil
}
