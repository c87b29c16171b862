package adaptor

import (
	"errors"
	"net/http"
	"net/url"

	"hotel-console/internal/usecase"
	"hotel-console/pkg/hmsapi"
	"hotel-console/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps use case errors onto the console's HTTP surface.
// Upstream rejections keep their verbatim message; transport failures
// surface as 502 so the UI can tell "the hotel system said no" apart from
// "the hotel system is down".
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var (
		billingErr *usecase.BillingGenerationError
		invoiceErr *usecase.InvoiceGenerationError
		paymentErr *usecase.PaymentRejectedError
		apiErr     *hmsapi.APIError
		urlErr     *url.Error
	)

	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidInvoiceReference),
		errors.Is(err, usecase.ErrInvalidBookingReference):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrCheckoutInFlight):
		log.Warn(operation+" rejected - run in progress",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.As(err, &billingErr),
		errors.As(err, &invoiceErr),
		errors.As(err, &paymentErr):
		log.Warn(operation+" failed at upstream step",
			zap.Error(err),
			zap.String("operation", operation))
		if errors.As(err, &apiErr) {
			utils.ResponseUnprocessable(w, err.Error())
		} else {
			utils.ResponseBadGateway(w, err.Error())
		}

	case errors.As(err, &apiErr):
		log.Warn(operation+" rejected by upstream",
			zap.Error(err),
			zap.Int("upstream_status", apiErr.StatusCode),
			zap.String("operation", operation))
		switch {
		case apiErr.StatusCode == http.StatusNotFound:
			utils.ResponseNotFound(w, apiErr.Message)
		case apiErr.StatusCode >= http.StatusInternalServerError:
			utils.ResponseBadGateway(w, apiErr.Message)
		default:
			utils.ResponseUnprocessable(w, apiErr.Message)
		}

	case errors.As(err, &urlErr):
		log.Error(operation+" failed - upstream unreachable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "hotel management service is unreachable")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
