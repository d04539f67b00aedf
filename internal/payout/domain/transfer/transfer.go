package transfer

import (
	"time"

	"PaymentService/pkg/optional"
)

// Transfer is an outbound payout to a payee. Amounts are in minor units.
type Transfer struct {
	ID                   int64
	CreatedAt            time.Time
	Subtotal             int64
	Adjustments          string
	Amount               int64
	Method               string
	Currency             *string
	SubmittedAt          *time.Time
	DeletedAt            *time.Time
	ManualTransferReason *string
	Status               *string
	StatusCode           *string
	SubmittingAt         *time.Time
	ShouldRetryOnFailure *bool
	StatementDescription *string
	CreatedByID          *int64
	DeletedByID          *int64
	PaymentAccountID     *int64
	RecipientID          *int64
	RecipientCtID        *int64
	SubmittedByID        *int64
}

// TransferCreate holds the columns of a new transfer. The store assigns
// id and created_at.
type TransferCreate struct {
	Subtotal             int64
	Adjustments          string
	Amount               int64
	Method               string
	Currency             *string
	SubmittedAt          *time.Time
	DeletedAt            *time.Time
	ManualTransferReason *string
	Status               *string
	StatusCode           *string
	SubmittingAt         *time.Time
	ShouldRetryOnFailure *bool
	StatementDescription *string
	CreatedByID          *int64
	DeletedByID          *int64
	PaymentAccountID     *int64
	RecipientID          *int64
	RecipientCtID        *int64
	SubmittedByID        *int64
}

// TransferUpdate changes only the fields that are set.
type TransferUpdate struct {
	Subtotal             optional.Field[int64]
	Adjustments          optional.Field[string]
	Amount               optional.Field[int64]
	Method               optional.Field[string]
	Currency             optional.Field[*string]
	SubmittedAt          optional.Field[*time.Time]
	DeletedAt            optional.Field[*time.Time]
	ManualTransferReason optional.Field[*string]
	Status               optional.Field[*string]
	StatusCode           optional.Field[*string]
	SubmittingAt         optional.Field[*time.Time]
	ShouldRetryOnFailure optional.Field[*bool]
	StatementDescription optional.Field[*string]
	CreatedByID          optional.Field[*int64]
	DeletedByID          optional.Field[*int64]
	PaymentAccountID     optional.Field[*int64]
	RecipientID          optional.Field[*int64]
	RecipientCtID        optional.Field[*int64]
	SubmittedByID        optional.Field[*int64]
}
