package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-console/pkg/hmsapi"
	"hotel-console/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGatewayClient(t *testing.T, handler http.HandlerFunc) *hmsapi.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return hmsapi.NewClient(utils.HMSConfig{BaseURL: server.URL, TimeoutSeconds: 2}, zap.NewNop())
}

func TestPaymentGateway_MakePayment_RequestShape(t *testing.T) {
	var (
		gotPath   string
		gotAmount string
		gotKey    string
		gotMethod string
	)
	client := newGatewayClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAmount = r.URL.Query().Get("amount")
		gotKey = r.Header.Get("Idempotency-Key")
		w.Write([]byte(`{"paymentID":55,"invoiceID":100,"amountPaid":150.5}`))
	})

	gw := NewPaymentGateway(client, zap.NewNop())
	receipt, err := gw.MakePayment(context.Background(), 100, 150.5, "key-123")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/payment/100", gotPath)
	assert.Equal(t, "150.5", gotAmount)
	assert.Equal(t, "key-123", gotKey)
	assert.Equal(t, int64(55), receipt.PaymentID)
	assert.Equal(t, 150.5, receipt.AmountPaid)
}

func TestPaymentGateway_MakePayment_RejectionWrapsAPIError(t *testing.T) {
	client := newGatewayClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Invoice has already been paid"))
	})

	gw := NewPaymentGateway(client, zap.NewNop())
	receipt, err := gw.MakePayment(context.Background(), 100, 300, "key-123")

	assert.Nil(t, receipt)
	require.Error(t, err)

	var apiErr *hmsapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invoice has already been paid", apiErr.Message)
}

func TestBookingGateway_InitiateCheckout_RequestShape(t *testing.T) {
	var (
		gotPath   string
		gotMethod string
	)
	client := newGatewayClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte("Checkout initiated"))
	})

	gw := NewBookingGateway(client, zap.NewNop())
	err := gw.InitiateCheckout(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/booking/42/initiate-checkout", gotPath)
}

func TestBillingGateway_GenerateBill_RequestShape(t *testing.T) {
	var gotPath string
	client := newGatewayClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"billingID":7,"totalAmount":300,"billingStatus":"Generated"}`))
	})

	gw := NewBillingGateway(client, zap.NewNop())
	billing, err := gw.GenerateBill(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "/billing/generate/42", gotPath)
	assert.Equal(t, int64(7), billing.BillingID)
	assert.Equal(t, 300.0, billing.TotalAmount)
}

func TestInvoiceGateway_GenerateInvoice_RequestShape(t *testing.T) {
	var gotPath string
	client := newGatewayClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"invoiceID":100,"totalAmount":300,"invoiceStatus":"Unpaid"}`))
	})

	gw := NewInvoiceGateway(client, zap.NewNop())
	invoice, err := gw.GenerateInvoice(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "/invoice/generate/7", gotPath)
	assert.Equal(t, int64(100), invoice.InvoiceID)
}

func TestRoomServiceGateway_ListByBooking_RequestShape(t *testing.T) {
	var gotPath string
	client := newGatewayClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[{"serviceRoomId":1,"serviceType":{"serviceName":"Laundry","servicePrice":15},"serviceRoomStatus":"Completed"}]`))
	})

	gw := NewRoomServiceGateway(client, zap.NewNop())
	services, err := gw.ListByBooking(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "/room-service/by-booking/42", gotPath)
	require.Len(t, services, 1)
	assert.Equal(t, "Laundry", services[0].ServiceType.ServiceName)
}
