package dispute

import "context"

//go:generate mockgen -source repo.go -destination mock_repo.go -package dispute

// DisputeRepo reads disputes from the replica and writes to the primary.
// A nil dispute with a nil error means no row matched.
type DisputeRepo interface {
	GetDisputeByDisputeID(ctx context.Context, input GetStripeDisputeByIDInput) (*StripeDispute, error)
	UpdateDisputeDetails(ctx context.Context, set UpdateStripeDisputeSetInput, where UpdateStripeDisputeWhereInput) (*StripeDispute, error)

	ListDisputesByPayerID(ctx context.Context, input GetAllStripeDisputesByPayerIDInput) ([]StripeDispute, error)
	ListDisputesByPaymentMethodID(ctx context.Context, input GetAllStripeDisputesByPaymentMethodIDInput) ([]StripeDispute, error)

	GetDisputesByDdConsumerID(ctx context.Context, input GetCumulativeAmountInput) ([]StripeDispute, error)
	GetDisputesByDdStripeCardID(ctx context.Context, input GetCumulativeCountInput) ([]StripeDispute, error)
}
