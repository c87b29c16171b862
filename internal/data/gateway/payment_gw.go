package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"hotel-console/internal/data/entity"
	"hotel-console/pkg/hmsapi"

	"go.uber.org/zap"
)

type PaymentGateway interface {
	// MakePayment performs exactly one upstream write. The idempotency key
	// travels as a header; the upstream decides whether to honor it, the
	// console never deduplicates on its own.
	MakePayment(ctx context.Context, invoiceID int64, amount float64, idempotencyKey string) (*entity.PaymentReceipt, error)
}

type paymentGateway struct {
	client *hmsapi.Client
	log    *zap.Logger
}

func NewPaymentGateway(client *hmsapi.Client, log *zap.Logger) PaymentGateway {
	return &paymentGateway{
		client: client,
		log:    log.With(zap.String("gateway", "payment")),
	}
}

func (g *paymentGateway) MakePayment(ctx context.Context, invoiceID int64, amount float64, idempotencyKey string) (*entity.PaymentReceipt, error) {
	path := fmt.Sprintf("/payment/%d?amount=%s", invoiceID, strconv.FormatFloat(amount, 'f', -1, 64))

	header := http.Header{}
	if idempotencyKey != "" {
		header.Set("Idempotency-Key", idempotencyKey)
	}

	var receipt entity.PaymentReceipt
	if err := g.client.DoWithHeader(ctx, http.MethodPost, path, header, nil, &receipt); err != nil {
		g.log.Error("Failed to make payment",
			zap.Error(err),
			zap.Int64("invoice_id", invoiceID),
			zap.Float64("amount", amount),
		)
		return nil, fmt.Errorf("make payment for invoice %d: %w", invoiceID, err)
	}
	return &receipt, nil
}
