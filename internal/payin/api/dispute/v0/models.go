package v0

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"PaymentService/internal/payin/domain/dispute"
)

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

type GetDisputeQuery struct {
	IDType string `form:"id_type"`
}

// ListDisputesQuery takes either a comma separated card set of a payer or a
// single payment method card.
type ListDisputesQuery struct {
	StripeCardIDs string `form:"stripe_card_ids"`
	StripeCardID  *int64 `form:"stripe_card_id"`
}

type CumulativeAmountQuery struct {
	CardIDs   string     `form:"card_ids" binding:"required"`
	Reasons   string     `form:"reasons" binding:"required"`
	StartTime *time.Time `form:"start_time" time_format:"2006-01-02T15:04:05Z07:00" time_utc:"1" binding:"required"`
}

type CumulativeCountQuery struct {
	StripeCardID int64      `form:"stripe_card_id" binding:"required"`
	Reasons      string     `form:"reasons" binding:"required"`
	StartTime    *time.Time `form:"start_time" time_format:"2006-01-02T15:04:05Z07:00" time_utc:"1" binding:"required"`
}

type CumulativeAmount struct {
	Amount int64 `json:"amount"`
}

type CumulativeCount struct {
	Count int `json:"count"`
}

func toStripeDispute(d dispute.StripeDispute) StripeDispute {
	return StripeDispute{
		ID:                  d.ID,
		StripeDisputeID:     d.StripeDisputeID,
		DisputedAt:          d.DisputedAt,
		Amount:              d.Amount,
		Fee:                 d.Fee,
		Net:                 d.Net,
		Currency:            d.Currency,
		ChargedAt:           d.ChargedAt,
		Reason:              d.Reason,
		Status:              d.Status,
		EvidenceDueBy:       d.EvidenceDueBy,
		EvidenceSubmittedAt: d.EvidenceSubmittedAt,
		UpdatedAt:           d.UpdatedAt,
		StripeCardID:        d.StripeCardID,
		StripeChargeID:      d.StripeChargeID,
	}
}

func toStripeDisputes(ds []dispute.StripeDispute) []StripeDispute {
	res := make([]StripeDispute, 0, len(ds))
	for _, d := range ds {
		res = append(res, toStripeDispute(d))
	}
	return res
}

func parseIDType(raw string) (dispute.DisputeIDType, error) {
	switch t := dispute.DisputeIDType(raw); t {
	case "", dispute.IDTypeStripeDisputeID, dispute.IDTypeDDStripeDisputeID:
		return t, nil
	default:
		return "", fmt.Errorf("unknown id_type %q", raw)
	}
}

// splitCSV drops empty items, so "" yields an empty non-nil slice.
func splitCSV(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseInt64CSV(name, raw string) ([]int64, error) {
	items := splitCSV(raw)
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		id, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an integer", name, item)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
