package gateway

import (
	"context"
	"fmt"
	"net/http"

	"hotel-console/internal/data/entity"
	"hotel-console/pkg/hmsapi"

	"go.uber.org/zap"
)

type InvoiceGateway interface {
	GenerateInvoice(ctx context.Context, billingID int64) (*entity.Invoice, error)
	List(ctx context.Context) ([]entity.Invoice, error)
}

type invoiceGateway struct {
	client *hmsapi.Client
	log    *zap.Logger
}

func NewInvoiceGateway(client *hmsapi.Client, log *zap.Logger) InvoiceGateway {
	return &invoiceGateway{
		client: client,
		log:    log.With(zap.String("gateway", "invoice")),
	}
}

func (g *invoiceGateway) GenerateInvoice(ctx context.Context, billingID int64) (*entity.Invoice, error) {
	path := fmt.Sprintf("/invoice/generate/%d", billingID)

	var invoice entity.Invoice
	if err := g.client.Do(ctx, http.MethodPost, path, nil, &invoice); err != nil {
		g.log.Error("Failed to generate invoice",
			zap.Error(err),
			zap.Int64("billing_id", billingID),
		)
		return nil, fmt.Errorf("generate invoice for billing %d: %w", billingID, err)
	}
	return &invoice, nil
}

func (g *invoiceGateway) List(ctx context.Context) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	if err := g.client.Do(ctx, http.MethodGet, "/invoice", nil, &invoices); err != nil {
		g.log.Error("Failed to list invoices", zap.Error(err))
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}
