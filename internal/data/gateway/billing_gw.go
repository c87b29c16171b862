package gateway

import (
	"context"
	"fmt"
	"net/http"

	"hotel-console/internal/data/entity"
	"hotel-console/pkg/hmsapi"

	"go.uber.org/zap"
)

type BillingGateway interface {
	GenerateBill(ctx context.Context, bookingID int64) (*entity.Billing, error)
}

type billingGateway struct {
	client *hmsapi.Client
	log    *zap.Logger
}

func NewBillingGateway(client *hmsapi.Client, log *zap.Logger) BillingGateway {
	return &billingGateway{
		client: client,
		log:    log.With(zap.String("gateway", "billing")),
	}
}

func (g *billingGateway) GenerateBill(ctx context.Context, bookingID int64) (*entity.Billing, error) {
	path := fmt.Sprintf("/billing/generate/%d", bookingID)

	var billing entity.Billing
	if err := g.client.Do(ctx, http.MethodPost, path, nil, &billing); err != nil {
		g.log.Error("Failed to generate bill",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
		)
		return nil, fmt.Errorf("generate bill for booking %d: %w", bookingID, err)
	}
	return &billing, nil
}
