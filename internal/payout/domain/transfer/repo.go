package transfer

import "context"

//go:generate mockgen -source repo.go -destination mock_repo.go -package transfer

// TransferRepo reads from the replica and writes to the primary.
// Single-row lookups and updates return nil, nil when no row matched.
type TransferRepo interface {
	CreateTransfer(ctx context.Context, data TransferCreate) (*Transfer, error)
	GetTransferByID(ctx context.Context, transferID int64) (*Transfer, error)
	UpdateTransferByID(ctx context.Context, transferID int64, data TransferUpdate) (*Transfer, error)

	CreateStripeTransfer(ctx context.Context, data StripeTransferCreate) (*StripeTransfer, error)
	GetStripeTransferByID(ctx context.Context, stripeTransferID int64) (*StripeTransfer, error)
	GetStripeTransferByStripeID(ctx context.Context, stripeID string) (*StripeTransfer, error)
	GetStripeTransfersByTransferID(ctx context.Context, transferID int64) ([]StripeTransfer, error)
	UpdateStripeTransferByID(ctx context.Context, stripeTransferID int64, data StripeTransferUpdate) (*StripeTransfer, error)
	DeleteStripeTransferByStripeID(ctx context.Context, stripeID string) (int64, error)
}
