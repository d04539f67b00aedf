package transfer

import (
	"time"

	"PaymentService/pkg/optional"
)

// StripeTransfer is one submission attempt of a Transfer to Stripe.
// StripeID is unique when present.
type StripeTransfer struct {
	ID                  int64
	CreatedAt           time.Time
	TransferID          int64
	StripeStatus        string
	StripeID            *string
	StripeRequestID     *string
	StripeFailureCode   *string
	StripeAccountID     *string
	StripeAccountType   *string
	CountryShortname    *string
	BankLastFour        *string
	BankName            *string
	SubmissionErrorCode *string
	SubmissionErrorType *string
	SubmissionStatus    *string
	SubmittedAt         *time.Time
}

// StripeTransferCreate inserts only the optional columns that are set;
// the rest take the store defaults.
type StripeTransferCreate struct {
	TransferID          int64
	StripeStatus        string
	StripeID            optional.Field[*string]
	StripeRequestID     optional.Field[*string]
	StripeFailureCode   optional.Field[*string]
	StripeAccountID     optional.Field[*string]
	StripeAccountType   optional.Field[*string]
	CountryShortname    optional.Field[*string]
	BankLastFour        optional.Field[*string]
	BankName            optional.Field[*string]
	SubmissionErrorCode optional.Field[*string]
	SubmissionErrorType optional.Field[*string]
	SubmissionStatus    optional.Field[*string]
	SubmittedAt         optional.Field[*time.Time]
}

type StripeTransferUpdate struct {
	TransferID          optional.Field[int64]
	StripeStatus        optional.Field[string]
	StripeID            optional.Field[*string]
	StripeRequestID     optional.Field[*string]
	StripeFailureCode   optional.Field[*string]
	StripeAccountID     optional.Field[*string]
	StripeAccountType   optional.Field[*string]
	CountryShortname    optional.Field[*string]
	BankLastFour        optional.Field[*string]
	BankName            optional.Field[*string]
	SubmissionErrorCode optional.Field[*string]
	SubmissionErrorType optional.Field[*string]
	SubmissionStatus    optional.Field[*string]
	SubmittedAt         optional.Field[*time.Time]
}
