package usecase

import (
	"context"
	"sync"

	"hotel-console/internal/data/entity"
	"hotel-console/internal/data/gateway"
	"hotel-console/internal/dto/response"

	"go.uber.org/zap"
)

// CheckoutState names the stages of one checkout session. Transitions only
// move forward: NoBilling → Billed → Invoiced.
type CheckoutState string

const (
	StateNoBilling CheckoutState = "NoBilling"
	StateBilled    CheckoutState = "Billed"
	StateInvoiced  CheckoutState = "Invoiced"
)

type CheckoutService interface {
	// Run drives one checkout: initiate checkout (best effort), generate
	// the bill, generate the invoice, load room services, and return the
	// assembled invoice view. Once a session reaches Invoiced, Run returns
	// the existing aggregate without touching the upstream again.
	Run(ctx context.Context, bookingID int64) (*response.CheckoutAggregate, error)

	// Session returns the current aggregate for a booking, if any run has
	// been started for it.
	Session(bookingID int64) (*response.CheckoutAggregate, bool)
}

// checkoutSession holds the screen-lifetime state of one booking's
// checkout. The billing survives a failed invoice step so a retry resumes
// from Billed instead of billing the guest twice.
type checkoutSession struct {
	state    CheckoutState
	billing  *entity.Billing
	invoice  *entity.Invoice
	services []entity.RoomService
	warnings []string
	inFlight bool
}

type checkoutService struct {
	bookings     gateway.BookingGateway
	billings     gateway.BillingGateway
	invoices     gateway.InvoiceGateway
	roomServices gateway.RoomServiceGateway
	log          *zap.Logger

	mu       sync.Mutex
	sessions map[int64]*checkoutSession
}

func NewCheckoutService(gw *gateway.Gateway, log *zap.Logger) CheckoutService {
	return &checkoutService{
		bookings:     gw.Booking,
		billings:     gw.Billing,
		invoices:     gw.Invoice,
		roomServices: gw.RoomService,
		log:          log.With(zap.String("service", "checkout")),
		sessions:     make(map[int64]*checkoutSession),
	}
}

func (s *checkoutService) Run(ctx context.Context, bookingID int64) (*response.CheckoutAggregate, error) {
	if bookingID <= 0 {
		return nil, ErrInvalidBookingReference
	}

	s.mu.Lock()
	sess, ok := s.sessions[bookingID]
	if !ok {
		sess = &checkoutSession{state: StateNoBilling}
		s.sessions[bookingID] = sess
	}
	if sess.inFlight {
		s.mu.Unlock()
		return nil, ErrCheckoutInFlight
	}
	if sess.state == StateInvoiced {
		agg := assembleAggregate(bookingID, sess)
		s.mu.Unlock()
		return agg, nil
	}
	sess.inFlight = true
	state := sess.state
	billing := sess.billing
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		sess.inFlight = false
		s.mu.Unlock()
	}()

	// Step 1: initiate checkout. Best effort by policy: a failure here is
	// recorded and logged but never aborts the run.
	if err := s.bookings.InitiateCheckout(ctx, bookingID); err != nil {
		s.log.Warn("Checkout initiation failed, continuing",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
		)
		s.mu.Lock()
		sess.warnings = append(sess.warnings, "checkout initiation failed: "+displayMessage(err))
		s.mu.Unlock()
	}

	// Step 2: generate the bill, unless a previous partial run already did.
	if state == StateNoBilling {
		var err error
		billing, err = s.billings.GenerateBill(ctx, bookingID)
		if err != nil {
			return nil, &BillingGenerationError{BookingID: bookingID, Message: displayMessage(err), Err: err}
		}
		if billing.BillingID <= 0 {
			return nil, &BillingGenerationError{BookingID: bookingID, Message: "upstream returned a billing without an identifier"}
		}

		s.mu.Lock()
		sess.billing = billing
		sess.state = StateBilled
		s.mu.Unlock()

		s.log.Info("Bill generated",
			zap.Int64("booking_id", bookingID),
			zap.Int64("billing_id", billing.BillingID),
			zap.Float64("total_amount", billing.TotalAmount),
		)
	}

	// Step 3: generate the invoice. Only reachable from Billed, so the
	// billing identifier is always set here.
	invoice, err := s.invoices.GenerateInvoice(ctx, billing.BillingID)
	if err != nil {
		return nil, &InvoiceGenerationError{BillingID: billing.BillingID, Message: displayMessage(err), Err: err}
	}

	// Step 4: room services are display garnish. Failure degrades to an
	// empty list and never blocks the invoice view.
	services, err := s.roomServices.ListByBooking(ctx, bookingID)
	if err != nil {
		s.log.Warn("Room service fetch failed, rendering without services",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
		)
		services = nil
	}

	s.mu.Lock()
	sess.invoice = invoice
	sess.services = services
	sess.state = StateInvoiced
	agg := assembleAggregate(bookingID, sess)
	s.mu.Unlock()

	s.log.Info("Checkout completed",
		zap.Int64("booking_id", bookingID),
		zap.Int64("invoice_id", invoice.InvoiceID),
		zap.String("invoice_status", string(invoice.InvoiceStatus)),
		zap.Int("service_count", len(services)),
	)

	return agg, nil
}

func (s *checkoutService) Session(bookingID int64) (*response.CheckoutAggregate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[bookingID]
	if !ok {
		return nil, false
	}
	return assembleAggregate(bookingID, sess), true
}

// assembleAggregate snapshots a session into the response shape. Caller
// holds the session lock.
func assembleAggregate(bookingID int64, sess *checkoutSession) *response.CheckoutAggregate {
	agg := &response.CheckoutAggregate{
		BookingID: bookingID,
		State:     string(sess.state),
		Services:  response.RoomServicesToLines(sess.services),
		Warnings:  append([]string(nil), sess.warnings...),
	}

	if sess.invoice != nil {
		agg.Invoice = response.InvoiceToView(sess.invoice)
		agg.PaymentDue = sess.invoice.InvoiceStatus == entity.InvoiceStatusUnpaid
	}

	return agg
}
