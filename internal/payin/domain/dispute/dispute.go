package dispute

import "time"

// StripeDispute is a card-network chargeback raised against a Stripe charge.
// Amounts are in minor currency units.
type StripeDispute struct {
	ID                  *int64     `json:"id"`
	StripeDisputeID     string     `json:"stripe_dispute_id"`
	DisputedAt          time.Time  `json:"disputed_at"`
	Amount              int64      `json:"amount"`
	Fee                 int64      `json:"fee"`
	Net                 int64      `json:"net"`
	Currency            *string    `json:"currency"`
	ChargedAt           time.Time  `json:"charged_at"`
	Reason              string     `json:"reason"`
	Status              string     `json:"status"`
	EvidenceDueBy       time.Time  `json:"evidence_due_by"`
	EvidenceSubmittedAt *time.Time `json:"evidence_submitted_at"`
	UpdatedAt           *time.Time `json:"updated_at"`
	StripeCardID        int64      `json:"stripe_card_id"`
	StripeChargeID      int64      `json:"stripe_charge_id"`
}

// DisputeIDType selects which column a dispute id is matched against.
type DisputeIDType string

const (
	// IDTypeStripeDisputeID matches the external Stripe dispute id. It is the
	// default when no type is given.
	IDTypeStripeDisputeID DisputeIDType = "stripe_dispute_id"
	// IDTypeDDStripeDisputeID matches the internal numeric id.
	IDTypeDDStripeDisputeID DisputeIDType = "dd_stripe_dispute_id"
)

// MatchesStripeID reports whether lookups with this type use the external id.
func (t DisputeIDType) MatchesStripeID() bool {
	return t == "" || t == IDTypeStripeDisputeID
}

type GetStripeDisputeByIDInput struct {
	StripeDisputeID string
	DisputeIDType   DisputeIDType
}

type GetAllStripeDisputesByPayerIDInput struct {
	StripeCardIDs []int64
}

type GetAllStripeDisputesByPaymentMethodIDInput struct {
	StripeCardID int64
}

// UpdateStripeDisputeWhereInput targets a dispute by its Stripe dispute id.
type UpdateStripeDisputeWhereInput struct {
	ID string
}

// UpdateStripeDisputeSetInput lists the only columns an update may change.
type UpdateStripeDisputeSetInput struct {
	EvidenceSubmittedAt time.Time
	UpdatedAt           time.Time
}

type GetCumulativeAmountInput struct {
	CardIDs   []int64
	Reasons   []string
	StartTime time.Time
}

type GetCumulativeCountInput struct {
	StripeCardID int64
	Reasons      []string
	StartTime    time.Time
}
