package dispute

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type DisputeService struct {
	disputeRepo DisputeRepo
	now         func() time.Time
}

func NewDisputeService(repo DisputeRepo) *DisputeService {
	return &DisputeService{
		disputeRepo: repo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ListDisputesQuery selects disputes either for a single payment method
// (StripeCardID) or for every card of a payer (StripeCardIDs).
type ListDisputesQuery struct {
	StripeCardID  *int64
	StripeCardIDs []int64
}

func (s *DisputeService) GetDispute(ctx context.Context, id string, idType DisputeIDType) (*StripeDispute, error) {
	d, err := s.disputeRepo.GetDisputeByDisputeID(ctx, GetStripeDisputeByIDInput{
		StripeDisputeID: id,
		DisputeIDType:   idType,
	})
	if err != nil {
		return nil, fmt.Errorf("get dispute: %w", err)
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

func (s *DisputeService) ListDisputes(ctx context.Context, query ListDisputesQuery) ([]StripeDispute, error) {
	var (
		disputes []StripeDispute
		err      error
	)

	switch {
	case query.StripeCardID != nil:
		disputes, err = s.disputeRepo.ListDisputesByPaymentMethodID(ctx, GetAllStripeDisputesByPaymentMethodIDInput{
			StripeCardID: *query.StripeCardID,
		})
	case query.StripeCardIDs != nil:
		disputes, err = s.disputeRepo.ListDisputesByPayerID(ctx, GetAllStripeDisputesByPayerIDInput{
			StripeCardIDs: query.StripeCardIDs,
		})
	default:
		return nil, ErrInvalidQuery
	}
	if err != nil {
		return nil, fmt.Errorf("list disputes: %w", err)
	}

	if disputes == nil {
		disputes = []StripeDispute{}
	}
	return disputes, nil
}

// SubmitEvidence records that evidence for the dispute was submitted now.
func (s *DisputeService) SubmitEvidence(ctx context.Context, stripeDisputeID string) (*StripeDispute, error) {
	now := s.now()

	updated, err := s.disputeRepo.UpdateDisputeDetails(ctx,
		UpdateStripeDisputeSetInput{EvidenceSubmittedAt: now, UpdatedAt: now},
		UpdateStripeDisputeWhereInput{ID: stripeDisputeID},
	)
	if err != nil {
		return nil, fmt.Errorf("update dispute details: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	slog.InfoContext(ctx, "Dispute evidence marked as submitted",
		"stripe_dispute_id", stripeDisputeID)
	return updated, nil
}

// CumulativeAmount sums the amount of every dispute on the given cards with
// one of the given reasons raised strictly after start time.
func (s *DisputeService) CumulativeAmount(ctx context.Context, input GetCumulativeAmountInput) (int64, error) {
	disputes, err := s.disputeRepo.GetDisputesByDdConsumerID(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("get disputes by consumer: %w", err)
	}

	var total int64
	for _, d := range disputes {
		total += d.Amount
	}
	return total, nil
}

// CumulativeCount counts disputes on one card with one of the given reasons
// raised strictly after start time.
func (s *DisputeService) CumulativeCount(ctx context.Context, input GetCumulativeCountInput) (int, error) {
	disputes, err := s.disputeRepo.GetDisputesByDdStripeCardID(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("get disputes by stripe card: %w", err)
	}
	return len(disputes), nil
}
