package v0

import (
	"time"

	"PaymentService/internal/payout/domain/transfer"
	"PaymentService/pkg/optional"
	"PaymentService/pkg/pointers"
)

// Wire models of the v0 API. They duplicate the domain fields so that
// changes to the domain types cannot silently change the v0 contract.

type Transfer struct {
	ID                   int64      `json:"id"`
	CreatedAt            time.Time  `json:"created_at"`
	Subtotal             int64      `json:"subtotal"`
	Adjustments          string     `json:"adjustments"`
	Amount               int64      `json:"amount"`
	Method               string     `json:"method"`
	Currency             *string    `json:"currency"`
	SubmittedAt          *time.Time `json:"submitted_at"`
	DeletedAt            *time.Time `json:"deleted_at"`
	ManualTransferReason *string    `json:"manual_transfer_reason"`
	Status               *string    `json:"status"`
	StatusCode           *string    `json:"status_code"`
	SubmittingAt         *time.Time `json:"submitting_at"`
	ShouldRetryOnFailure *bool      `json:"should_retry_on_failure"`
	StatementDescription *string    `json:"statement_description"`
	CreatedByID          *int64     `json:"created_by_id"`
	DeletedByID          *int64     `json:"deleted_by_id"`
	PaymentAccountID     *int64     `json:"payment_account_id"`
	RecipientID          *int64     `json:"recipient_id"`
	RecipientCtID        *int64     `json:"recipient_ct_id"`
	SubmittedByID        *int64     `json:"submitted_by_id"`
}

type TransferCreate struct {
	Subtotal             *int64     `json:"subtotal" binding:"required"`
	Adjustments          *string    `json:"adjustments" binding:"required"`
	Amount               *int64     `json:"amount" binding:"required"`
	Method               string     `json:"method" binding:"required"`
	Currency             *string    `json:"currency"`
	SubmittedAt          *time.Time `json:"submitted_at"`
	DeletedAt            *time.Time `json:"deleted_at"`
	ManualTransferReason *string    `json:"manual_transfer_reason"`
	Status               *string    `json:"status"`
	StatusCode           *string    `json:"status_code"`
	SubmittingAt         *time.Time `json:"submitting_at"`
	ShouldRetryOnFailure *bool      `json:"should_retry_on_failure"`
	StatementDescription *string    `json:"statement_description"`
	CreatedByID          *int64     `json:"created_by_id"`
	DeletedByID          *int64     `json:"deleted_by_id"`
	PaymentAccountID     *int64     `json:"payment_account_id"`
	RecipientID          *int64     `json:"recipient_id"`
	RecipientCtID        *int64     `json:"recipient_ct_id"`
	SubmittedByID        *int64     `json:"submitted_by_id"`
}

type TransferUpdate struct {
	Subtotal             optional.Field[int64]      `json:"subtotal"`
	Adjustments          optional.Field[string]     `json:"adjustments"`
	Amount               optional.Field[int64]      `json:"amount"`
	Method               optional.Field[string]     `json:"method"`
	Currency             optional.Field[*string]    `json:"currency"`
	SubmittedAt          optional.Field[*time.Time] `json:"submitted_at"`
	DeletedAt            optional.Field[*time.Time] `json:"deleted_at"`
	ManualTransferReason optional.Field[*string]    `json:"manual_transfer_reason"`
	Status               optional.Field[*string]    `json:"status"`
	StatusCode           optional.Field[*string]    `json:"status_code"`
	SubmittingAt         optional.Field[*time.Time] `json:"submitting_at"`
	ShouldRetryOnFailure optional.Field[*bool]      `json:"should_retry_on_failure"`
	StatementDescription optional.Field[*string]    `json:"statement_description"`
	CreatedByID          optional.Field[*int64]     `json:"created_by_id"`
	DeletedByID          optional.Field[*int64]     `json:"deleted_by_id"`
	PaymentAccountID     optional.Field[*int64]     `json:"payment_account_id"`
	RecipientID          optional.Field[*int64]     `json:"recipient_id"`
	RecipientCtID        optional.Field[*int64]     `json:"recipient_ct_id"`
	SubmittedByID        optional.Field[*int64]     `json:"submitted_by_id"`
}

type StripeTransfer struct {
	ID                  int64      `json:"id"`
	CreatedAt           time.Time  `json:"created_at"`
	TransferID          int64      `json:"transfer_id"`
	StripeStatus        string     `json:"stripe_status"`
	StripeID            *string    `json:"stripe_id"`
	StripeRequestID     *string    `json:"stripe_request_id"`
	StripeFailureCode   *string    `json:"stripe_failure_code"`
	StripeAccountID     *string    `json:"stripe_account_id"`
	StripeAccountType   *string    `json:"stripe_account_type"`
	CountryShortname    *string    `json:"country_shortname"`
	BankLastFour        *string    `json:"bank_last_four"`
	BankName            *string    `json:"bank_name"`
	SubmissionErrorCode *string    `json:"submission_error_code"`
	SubmissionErrorType *string    `json:"submission_error_type"`
	SubmissionStatus    *string    `json:"submission_status"`
	SubmittedAt         *time.Time `json:"submitted_at"`
}

type StripeTransferCreate struct {
	TransferID          *int64                     `json:"transfer_id" binding:"required"`
	StripeStatus        string                     `json:"stripe_status" binding:"required"`
	StripeID            optional.Field[*string]    `json:"stripe_id"`
	StripeRequestID     optional.Field[*string]    `json:"stripe_request_id"`
	StripeFailureCode   optional.Field[*string]    `json:"stripe_failure_code"`
	StripeAccountID     optional.Field[*string]    `json:"stripe_account_id"`
	StripeAccountType   optional.Field[*string]    `json:"stripe_account_type"`
	CountryShortname    optional.Field[*string]    `json:"country_shortname"`
	BankLastFour        optional.Field[*string]    `json:"bank_last_four"`
	BankName            optional.Field[*string]    `json:"bank_name"`
	SubmissionErrorCode optional.Field[*string]    `json:"submission_error_code"`
	SubmissionErrorType optional.Field[*string]    `json:"submission_error_type"`
	SubmissionStatus    optional.Field[*string]    `json:"submission_status"`
	SubmittedAt         optional.Field[*time.Time] `json:"submitted_at"`
}

type StripeTransferUpdate struct {
	TransferID          optional.Field[int64]      `json:"transfer_id"`
	StripeStatus        optional.Field[string]     `json:"stripe_status"`
	StripeID            optional.Field[*string]    `json:"stripe_id"`
	StripeRequestID     optional.Field[*string]    `json:"stripe_request_id"`
	StripeFailureCode   optional.Field[*string]    `json:"stripe_failure_code"`
	StripeAccountID     optional.Field[*string]    `json:"stripe_account_id"`
	StripeAccountType   optional.Field[*string]    `json:"stripe_account_type"`
	CountryShortname    optional.Field[*string]    `json:"country_shortname"`
	BankLastFour        optional.Field[*string]    `json:"bank_last_four"`
	BankName            optional.Field[*string]    `json:"bank_name"`
	SubmissionErrorCode optional.Field[*string]    `json:"submission_error_code"`
	SubmissionErrorType optional.Field[*string]    `json:"submission_error_type"`
	SubmissionStatus    optional.Field[*string]    `json:"submission_status"`
	SubmittedAt         optional.Field[*time.Time] `json:"submitted_at"`
}

type Acknowledgement struct {
	Acknowledged bool `json:"acknowledged"`
}

type StripeIDQuery struct {
	StripeID string `form:"stripe_id" url:"stripe_id" binding:"required"`
}

type TransferIDQuery struct {
	TransferID int64 `form:"transfer_id" url:"transfer_id" binding:"required"`
}

func toTransfer(t transfer.Transfer) Transfer {
	return Transfer{
		ID:                   t.ID,
		CreatedAt:            t.CreatedAt,
		Subtotal:             t.Subtotal,
		Adjustments:          t.Adjustments,
		Amount:               t.Amount,
		Method:               t.Method,
		Currency:             t.Currency,
		SubmittedAt:          t.SubmittedAt,
		DeletedAt:            t.DeletedAt,
		ManualTransferReason: t.ManualTransferReason,
		Status:               t.Status,
		StatusCode:           t.StatusCode,
		SubmittingAt:         t.SubmittingAt,
		ShouldRetryOnFailure: t.ShouldRetryOnFailure,
		StatementDescription: t.StatementDescription,
		CreatedByID:          t.CreatedByID,
		DeletedByID:          t.DeletedByID,
		PaymentAccountID:     t.PaymentAccountID,
		RecipientID:          t.RecipientID,
		RecipientCtID:        t.RecipientCtID,
		SubmittedByID:        t.SubmittedByID,
	}
}

func (r TransferCreate) toDomain() transfer.TransferCreate {
	return transfer.TransferCreate{
		Subtotal:             pointers.Deref(r.Subtotal),
		Adjustments:          pointers.Deref(r.Adjustments),
		Amount:               pointers.Deref(r.Amount),
		Method:               r.Method,
		Currency:             r.Currency,
		SubmittedAt:          r.SubmittedAt,
		DeletedAt:            r.DeletedAt,
		ManualTransferReason: r.ManualTransferReason,
		Status:               r.Status,
		StatusCode:           r.StatusCode,
		SubmittingAt:         r.SubmittingAt,
		ShouldRetryOnFailure: r.ShouldRetryOnFailure,
		StatementDescription: r.StatementDescription,
		CreatedByID:          r.CreatedByID,
		DeletedByID:          r.DeletedByID,
		PaymentAccountID:     r.PaymentAccountID,
		RecipientID:          r.RecipientID,
		RecipientCtID:        r.RecipientCtID,
		SubmittedByID:        r.SubmittedByID,
	}
}

func (r TransferUpdate) toDomain() transfer.TransferUpdate {
	return transfer.TransferUpdate{
		Subtotal:             r.Subtotal,
		Adjustments:          r.Adjustments,
		Amount:               r.Amount,
		Method:               r.Method,
		Currency:             r.Currency,
		SubmittedAt:          r.SubmittedAt,
		DeletedAt:            r.DeletedAt,
		ManualTransferReason: r.ManualTransferReason,
		Status:               r.Status,
		StatusCode:           r.StatusCode,
		SubmittingAt:         r.SubmittingAt,
		ShouldRetryOnFailure: r.ShouldRetryOnFailure,
		StatementDescription: r.StatementDescription,
		CreatedByID:          r.CreatedByID,
		DeletedByID:          r.DeletedByID,
		PaymentAccountID:     r.PaymentAccountID,
		RecipientID:          r.RecipientID,
		RecipientCtID:        r.RecipientCtID,
		SubmittedByID:        r.SubmittedByID,
	}
}

func toStripeTransfer(st transfer.StripeTransfer) StripeTransfer {
	return StripeTransfer{
		ID:                  st.ID,
		CreatedAt:           st.CreatedAt,
		TransferID:          st.TransferID,
		StripeStatus:        st.StripeStatus,
		StripeID:            st.StripeID,
		StripeRequestID:     st.StripeRequestID,
		StripeFailureCode:   st.StripeFailureCode,
		StripeAccountID:     st.StripeAccountID,
		StripeAccountType:   st.StripeAccountType,
		CountryShortname:    st.CountryShortname,
		BankLastFour:        st.BankLastFour,
		BankName:            st.BankName,
		SubmissionErrorCode: st.SubmissionErrorCode,
		SubmissionErrorType: st.SubmissionErrorType,
		SubmissionStatus:    st.SubmissionStatus,
		SubmittedAt:         st.SubmittedAt,
	}
}

func (r StripeTransferCreate) toDomain() transfer.StripeTransferCreate {
	return transfer.StripeTransferCreate{
		TransferID:          pointers.Deref(r.TransferID),
		StripeStatus:        r.StripeStatus,
		StripeID:            r.StripeID,
		StripeRequestID:     r.StripeRequestID,
		StripeFailureCode:   r.StripeFailureCode,
		StripeAccountID:     r.StripeAccountID,
		StripeAccountType:   r.StripeAccountType,
		CountryShortname:    r.CountryShortname,
		BankLastFour:        r.BankLastFour,
		BankName:            r.BankName,
		SubmissionErrorCode: r.SubmissionErrorCode,
		SubmissionErrorType: r.SubmissionErrorType,
		SubmissionStatus:    r.SubmissionStatus,
		SubmittedAt:         r.SubmittedAt,
	}
}

func (r StripeTransferUpdate) toDomain() transfer.StripeTransferUpdate {
	return transfer.StripeTransferUpdate{
		TransferID:          r.TransferID,
		StripeStatus:        r.StripeStatus,
		StripeID:            r.StripeID,
		StripeRequestID:     r.StripeRequestID,
		StripeFailureCode:   r.StripeFailureCode,
		StripeAccountID:     r.StripeAccountID,
		StripeAccountType:   r.StripeAccountType,
		CountryShortname:    r.CountryShortname,
		BankLastFour:        r.BankLastFour,
		BankName:            r.BankName,
		SubmissionErrorCode: r.SubmissionErrorCode,
		SubmissionErrorType: r.SubmissionErrorType,
		SubmissionStatus:    r.SubmissionStatus,
		SubmittedAt:         r.SubmittedAt,
	}
}
