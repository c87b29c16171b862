package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hotel-console/internal/data/entity"
	"hotel-console/pkg/hmsapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newPaymentServiceForTest(payments *MockPaymentGateway) *paymentService {
	return &paymentService{
		payments: payments,
		log:      zap.NewNop(),
	}
}

func TestPaymentService_Submit_Success(t *testing.T) {
	payments := &MockPaymentGateway{}
	service := newPaymentServiceForTest(payments)

	ctx := context.Background()
	paid := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	payments.On("MakePayment", ctx, int64(100), 300.0, mock.AnythingOfType("string")).
		Return(&entity.PaymentReceipt{PaymentID: 55, InvoiceID: 100, AmountPaid: 300, PaymentDate: paid}, nil).Once()

	receipt, err := service.Submit(ctx, 100, 300)

	assert.NoError(t, err)
	assert.Equal(t, int64(55), receipt.PaymentID)
	assert.Equal(t, int64(100), receipt.InvoiceID)
	assert.Equal(t, 300.0, receipt.AmountPaid)

	payments.AssertExpectations(t)
}

func TestPaymentService_Submit_InvalidAmount(t *testing.T) {
	payments := &MockPaymentGateway{}
	service := newPaymentServiceForTest(payments)

	for _, amount := range []float64{0, -10} {
		receipt, err := service.Submit(context.Background(), 100, amount)

		assert.Nil(t, receipt)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}

	payments.AssertNotCalled(t, "MakePayment")
}

func TestPaymentService_Submit_InvalidInvoice(t *testing.T) {
	payments := &MockPaymentGateway{}
	service := newPaymentServiceForTest(payments)

	receipt, err := service.Submit(context.Background(), 0, 300)

	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, ErrInvalidInvoiceReference)
	payments.AssertNotCalled(t, "MakePayment")
}

func TestPaymentService_Submit_UpstreamRejectionKeptVerbatim(t *testing.T) {
	payments := &MockPaymentGateway{}
	service := newPaymentServiceForTest(payments)

	ctx := context.Background()
	upstream := &hmsapi.APIError{StatusCode: 400, Message: "Payment exceeds the amount to be paid"}
	payments.On("MakePayment", ctx, int64(100), 500.0, mock.AnythingOfType("string")).
		Return(nil, fmt.Errorf("pay invoice 100: %w", upstream)).Once()

	receipt, err := service.Submit(ctx, 100, 500)

	assert.Nil(t, receipt)

	var rejected *PaymentRejectedError
	assert.ErrorAs(t, err, &rejected)
	assert.Equal(t, int64(100), rejected.InvoiceID)
	assert.Equal(t, "Payment exceeds the amount to be paid", rejected.Message)
}

func TestPaymentService_Submit_TransportFailureGetsGenericMessage(t *testing.T) {
	payments := &MockPaymentGateway{}
	service := newPaymentServiceForTest(payments)

	ctx := context.Background()
	payments.On("MakePayment", ctx, int64(100), 300.0, mock.AnythingOfType("string")).
		Return(nil, fmt.Errorf("pay invoice 100: connection refused")).Once()

	receipt, err := service.Submit(ctx, 100, 300)

	assert.Nil(t, receipt)

	var rejected *PaymentRejectedError
	assert.ErrorAs(t, err, &rejected)
	assert.Equal(t, "hotel management service is unreachable", rejected.Message)
}

func TestPaymentService_Submit_TwoCallsAreTwoPayments(t *testing.T) {
	payments := &MockPaymentGateway{}
	service := newPaymentServiceForTest(payments)

	ctx := context.Background()
	keys := make(map[string]bool)
	payments.On("MakePayment", ctx, int64(100), 150.0, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			keys[args.String(3)] = true
		}).
		Return(&entity.PaymentReceipt{PaymentID: 1, InvoiceID: 100, AmountPaid: 150}, nil).Times(2)

	_, err := service.Submit(ctx, 100, 150)
	assert.NoError(t, err)
	_, err = service.Submit(ctx, 100, 150)
	assert.NoError(t, err)

	payments.AssertNumberOfCalls(t, "MakePayment", 2)

	// Each submission carries its own idempotency key.
	assert.Len(t, keys, 2)
}
