package dispute_repo

import (
	"time"

	"PaymentService/internal/payin/domain/dispute"
)

// StripeDisputeDbEntity mirrors one stripe_dispute row.
type StripeDisputeDbEntity struct {
	ID                  int64
	StripeDisputeID     string
	DisputedAt          time.Time
	Amount              int64
	Fee                 int64
	Net                 int64
	Currency            *string
	ChargedAt           time.Time
	Reason              string
	Status              string
	EvidenceDueBy       time.Time
	EvidenceSubmittedAt *time.Time
	UpdatedAt           *time.Time
	StripeCardID        int64
	StripeChargeID      int64
}

func (e StripeDisputeDbEntity) ToStripeDispute() dispute.StripeDispute {
	id := e.ID
	return dispute.StripeDispute{
		ID:                  &id,
		StripeDisputeID:     e.StripeDisputeID,
		DisputedAt:          e.DisputedAt,
		Amount:              e.Amount,
		Fee:                 e.Fee,
		Net:                 e.Net,
		Currency:            e.Currency,
		ChargedAt:           e.ChargedAt,
		Reason:              e.Reason,
		Status:              e.Status,
		EvidenceDueBy:       e.EvidenceDueBy,
		EvidenceSubmittedAt: e.EvidenceSubmittedAt,
		UpdatedAt:           e.UpdatedAt,
		StripeCardID:        e.StripeCardID,
		StripeChargeID:      e.StripeChargeID,
	}
}

const stripeDisputeTable = "stripe_dispute"

var stripeDisputeColumns = []string{
	"id",
	"stripe_dispute_id",
	"disputed_at",
	"amount",
	"fee",
	"net",
	"currency",
	"charged_at",
	"reason",
	"status",
	"evidence_due_by",
	"evidence_submitted_at",
	"updated_at",
	"stripe_card_id",
	"stripe_charge_id",
}
