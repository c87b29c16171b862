package usecase

import (
	"errors"
	"fmt"

	"hotel-console/pkg/hmsapi"
)

// Client-side precondition failures. These never reach the network.
var (
	ErrValidation              = errors.New("validation failed")
	ErrInvalidAmount           = errors.New("amount paid must be greater than zero")
	ErrInvalidInvoiceReference = errors.New("payment requires a generated invoice")
	ErrInvalidBookingReference = errors.New("a valid booking is required")
	ErrCheckoutInFlight        = errors.New("a checkout run is already in progress for this booking")
)

// BillingGenerationError aborts a checkout run: without a billing there is
// nothing to invoice. Message is what the staff sees, verbatim from the
// upstream API when it rejected the call.
type BillingGenerationError struct {
	BookingID int64
	Message   string
	Err       error
}

func (e *BillingGenerationError) Error() string {
	return fmt.Sprintf("billing generation failed for booking %d: %s", e.BookingID, e.Message)
}

func (e *BillingGenerationError) Unwrap() error { return e.Err }

// InvoiceGenerationError aborts a checkout run after billing succeeded.
// The session keeps the billing so a retry does not bill twice.
type InvoiceGenerationError struct {
	BillingID int64
	Message   string
	Err       error
}

func (e *InvoiceGenerationError) Error() string {
	return fmt.Sprintf("invoice generation failed for billing %d: %s", e.BillingID, e.Message)
}

func (e *InvoiceGenerationError) Unwrap() error { return e.Err }

// PaymentRejectedError carries the upstream's business-rule rejection
// (overpayment, already-paid invoice, ...) verbatim. The upstream is the
// source of truth for these rules.
type PaymentRejectedError struct {
	InvoiceID int64
	Message   string
	Err       error
}

func (e *PaymentRejectedError) Error() string {
	return fmt.Sprintf("payment rejected for invoice %d: %s", e.InvoiceID, e.Message)
}

func (e *PaymentRejectedError) Unwrap() error { return e.Err }

// displayMessage extracts the text shown to staff: the upstream's own
// words for a rejection, a generic line for transport failures.
func displayMessage(err error) string {
	var apiErr *hmsapi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "hotel management service is unreachable"
}
