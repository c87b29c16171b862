package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-console/internal/dto/response"
	"hotel-console/internal/usecase"
	"hotel-console/pkg/hmsapi"
	"hotel-console/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Submit(ctx context.Context, invoiceID int64, amount float64) (*response.PaymentReceiptResponse, error) {
	args := m.Called(ctx, invoiceID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaymentReceiptResponse), args.Error(1)
}

func newPaymentRouter(service usecase.PaymentService) *chi.Mux {
	handler := NewPaymentHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/invoice/{invoiceId}/payment", handler.SubmitPayment)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestPaymentHandler_SubmitPayment_Success(t *testing.T) {
	service := &MockPaymentService{}
	router := newPaymentRouter(service)

	service.On("Submit", mock.Anything, int64(100), 300.0).
		Return(&response.PaymentReceiptResponse{PaymentID: 55, InvoiceID: 100, AmountPaid: 300}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/invoice/100/payment", strings.NewReader(`{"amount":300}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Status)

	service.AssertExpectations(t)
}

func TestPaymentHandler_SubmitPayment_BadInvoiceID(t *testing.T) {
	service := &MockPaymentService{}
	router := newPaymentRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/invoice/abc/payment", strings.NewReader(`{"amount":300}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "Submit")
}

func TestPaymentHandler_SubmitPayment_InvalidBody(t *testing.T) {
	service := &MockPaymentService{}
	router := newPaymentRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/invoice/100/payment", strings.NewReader(`{"amount":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "Submit")
}

func TestPaymentHandler_SubmitPayment_ZeroAmountFailsValidation(t *testing.T) {
	service := &MockPaymentService{}
	router := newPaymentRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/invoice/100/payment", strings.NewReader(`{"amount":0}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "Submit")
}

func TestPaymentHandler_SubmitPayment_UpstreamRejection(t *testing.T) {
	service := &MockPaymentService{}
	router := newPaymentRouter(service)

	upstream := &hmsapi.APIError{StatusCode: 400, Message: "Payment exceeds the amount to be paid"}
	service.On("Submit", mock.Anything, int64(100), 500.0).
		Return(nil, &usecase.PaymentRejectedError{InvoiceID: 100, Message: upstream.Message, Err: fmt.Errorf("pay invoice 100: %w", upstream)}).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/invoice/100/payment", strings.NewReader(`{"amount":500}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Status)
	assert.Contains(t, resp.Message, "Payment exceeds the amount to be paid")
}

func TestPaymentHandler_SubmitPayment_UpstreamDown(t *testing.T) {
	service := &MockPaymentService{}
	router := newPaymentRouter(service)

	service.On("Submit", mock.Anything, int64(100), 300.0).
		Return(nil, &usecase.PaymentRejectedError{InvoiceID: 100, Message: "hotel management service is unreachable", Err: fmt.Errorf("connection refused")}).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/invoice/100/payment", strings.NewReader(`{"amount":300}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
