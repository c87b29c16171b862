package usecase

import (
	"context"

	"hotel-console/internal/data/gateway"
	"hotel-console/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	// Submit validates and submits one payment against a generated
	// invoice. Exactly one upstream write per call: two successful calls
	// are two payments, the console never deduplicates.
	Submit(ctx context.Context, invoiceID int64, amount float64) (*response.PaymentReceiptResponse, error)
}

type paymentService struct {
	payments gateway.PaymentGateway
	log      *zap.Logger
}

func NewPaymentService(gw *gateway.Gateway, log *zap.Logger) PaymentService {
	return &paymentService{
		payments: gw.Payment,
		log:      log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) Submit(ctx context.Context, invoiceID int64, amount float64) (*response.PaymentReceiptResponse, error) {
	// Preconditions stop here, before any network call.
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if invoiceID <= 0 {
		return nil, ErrInvalidInvoiceReference
	}

	// Fresh key per submission. The upstream may use it to reject
	// accidental replays; the console's contract stays one-call-one-write.
	idempotencyKey := uuid.NewString()

	receipt, err := s.payments.MakePayment(ctx, invoiceID, amount, idempotencyKey)
	if err != nil {
		return nil, &PaymentRejectedError{InvoiceID: invoiceID, Message: displayMessage(err), Err: err}
	}

	s.log.Info("Payment submitted",
		zap.Int64("invoice_id", invoiceID),
		zap.Float64("amount", amount),
		zap.String("idempotency_key", idempotencyKey),
	)

	return response.PaymentReceiptToResponse(receipt), nil
}
