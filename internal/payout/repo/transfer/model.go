package transfer_repo

import (
	"PaymentService/pkg/optional"
)

const (
	transfersTable      = "transfers"
	stripeTransferTable = "stripe_transfer"
)

var transferColumns = []string{
	"id",
	"created_at",
	"subtotal",
	"adjustments",
	"amount",
	"method",
	"currency",
	"submitted_at",
	"deleted_at",
	"manual_transfer_reason",
	"status",
	"status_code",
	"submitting_at",
	"should_retry_on_failure",
	"statement_description",
	"created_by_id",
	"deleted_by_id",
	"payment_account_id",
	"recipient_id",
	"recipient_ct_id",
	"submitted_by_id",
}

var stripeTransferColumns = []string{
	"id",
	"created_at",
	"transfer_id",
	"stripe_status",
	"stripe_id",
	"stripe_request_id",
	"stripe_failure_code",
	"stripe_account_id",
	"stripe_account_type",
	"country_shortname",
	"bank_last_four",
	"bank_name",
	"submission_error_code",
	"submission_error_type",
	"submission_status",
	"submitted_at",
}

// assignments is an ordered column/value list for INSERT and UPDATE.
type assignments struct {
	cols []string
	vals []any
}

func (a *assignments) add(col string, val any) {
	a.cols = append(a.cols, col)
	a.vals = append(a.vals, val)
}

func (a *assignments) empty() bool {
	return len(a.cols) == 0
}

func addIfSet[T any](a *assignments, col string, f optional.Field[T]) {
	if v, ok := f.Get(); ok {
		a.add(col, v)
	}
}
