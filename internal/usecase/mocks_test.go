package usecase

import (
	"context"

	"hotel-console/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type MockBookingGateway struct {
	mock.Mock
}

func (m *MockBookingGateway) List(ctx context.Context) ([]entity.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingGateway) ListByRoom(ctx context.Context, roomNo int) ([]entity.Booking, error) {
	args := m.Called(ctx, roomNo)
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingGateway) BookedDates(ctx context.Context, roomNo int) ([]string, error) {
	args := m.Called(ctx, roomNo)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingGateway) Create(ctx context.Context, roomID, guestID int64, checkIn, checkOut string) (*entity.Booking, error) {
	args := m.Called(ctx, roomID, guestID, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingGateway) Cancel(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockBookingGateway) ExtendCheckout(ctx context.Context, bookingID int64, days int) (*entity.Booking, error) {
	args := m.Called(ctx, bookingID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingGateway) InitiateCheckout(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

type MockBillingGateway struct {
	mock.Mock
}

func (m *MockBillingGateway) GenerateBill(ctx context.Context, bookingID int64) (*entity.Billing, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Billing), args.Error(1)
}

type MockInvoiceGateway struct {
	mock.Mock
}

func (m *MockInvoiceGateway) GenerateInvoice(ctx context.Context, billingID int64) (*entity.Invoice, error) {
	args := m.Called(ctx, billingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *MockInvoiceGateway) List(ctx context.Context) ([]entity.Invoice, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Invoice), args.Error(1)
}

type MockRoomServiceGateway struct {
	mock.Mock
}

func (m *MockRoomServiceGateway) ListByBooking(ctx context.Context, bookingID int64) ([]entity.RoomService, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RoomService), args.Error(1)
}

func (m *MockRoomServiceGateway) List(ctx context.Context) ([]entity.RoomService, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.RoomService), args.Error(1)
}

func (m *MockRoomServiceGateway) Order(ctx context.Context, bookingID, serviceTypeID int64) (*entity.RoomService, error) {
	args := m.Called(ctx, bookingID, serviceTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RoomService), args.Error(1)
}

func (m *MockRoomServiceGateway) Complete(ctx context.Context, serviceRoomID int64) error {
	args := m.Called(ctx, serviceRoomID)
	return args.Error(0)
}

func (m *MockRoomServiceGateway) Cancel(ctx context.Context, serviceRoomID int64) error {
	args := m.Called(ctx, serviceRoomID)
	return args.Error(0)
}

func (m *MockRoomServiceGateway) AssignStaff(ctx context.Context, serviceRoomID, staffID int64) error {
	args := m.Called(ctx, serviceRoomID, staffID)
	return args.Error(0)
}

func (m *MockRoomServiceGateway) Delete(ctx context.Context, serviceRoomID int64) error {
	args := m.Called(ctx, serviceRoomID)
	return args.Error(0)
}

func (m *MockRoomServiceGateway) ServiceTypes(ctx context.Context) ([]entity.ServiceType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.ServiceType), args.Error(1)
}

func (m *MockRoomServiceGateway) CreateServiceType(ctx context.Context, name string, price float64, description string) (*entity.ServiceType, error) {
	args := m.Called(ctx, name, price, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ServiceType), args.Error(1)
}

func (m *MockRoomServiceGateway) UpdateServiceType(ctx context.Context, serviceTypeID int64, name string, price float64, description string) error {
	args := m.Called(ctx, serviceTypeID, name, price, description)
	return args.Error(0)
}

func (m *MockRoomServiceGateway) DeleteServiceType(ctx context.Context, serviceTypeID int64) error {
	args := m.Called(ctx, serviceTypeID)
	return args.Error(0)
}

type MockDirectoryGateway struct {
	mock.Mock
}

func (m *MockDirectoryGateway) Guests(ctx context.Context) ([]entity.Guest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Guest), args.Error(1)
}

func (m *MockDirectoryGateway) Rooms(ctx context.Context) ([]entity.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Room), args.Error(1)
}

func (m *MockDirectoryGateway) CreateRoom(ctx context.Context, roomNo int, roomType string, pricePerNight float64, status entity.RoomStatus, description string) (*entity.Room, error) {
	args := m.Called(ctx, roomNo, roomType, pricePerNight, status, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Room), args.Error(1)
}

func (m *MockDirectoryGateway) Staff(ctx context.Context) ([]entity.Staff, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Staff), args.Error(1)
}

func (m *MockDirectoryGateway) Feedbacks(ctx context.Context) ([]entity.Feedback, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Feedback), args.Error(1)
}

func (m *MockDirectoryGateway) DeleteFeedback(ctx context.Context, feedbackID int64) error {
	args := m.Called(ctx, feedbackID)
	return args.Error(0)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) MakePayment(ctx context.Context, invoiceID int64, amount float64, idempotencyKey string) (*entity.PaymentReceipt, error) {
	args := m.Called(ctx, invoiceID, amount, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PaymentReceipt), args.Error(1)
}
