// Package checkout is the client side of the booking payment flow. It is a
// library for frontends and integration tools written in Go: it drives one
// payment attempt through order creation, the gateway widget, verification
// and booking confirmation against this service's HTTP API. The service
// binary does not import it.
package checkout

import (
	"context"
	"errors"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type State string

const (
	StateIdle         State = "idle"
	StateOrderCreated State = "order_created"
	StateAwaitingUser State = "awaiting_user"
	StateVerifying    State = "verifying"
	StateConfirming   State = "confirming"
	StateConfirmed    State = "confirmed"
	StateCancelled    State = "cancelled"
	StateFailed       State = "failed"
)

// Remedy tells the booking UI what to offer after a failure.
type Remedy string

const (
	RemedyNone           Remedy = ""
	RemedyRetry          Remedy = "retry"
	RemedyContactSupport Remedy = "contact_support"
)

const (
	eventBegin   = "begin"
	eventOpen    = "open"
	eventSuccess = "payment_success"
	eventDismiss = "dismiss"
	eventFailure = "payment_failure"
	eventRetry   = "retry"
)

// Backend is the server side of the booking flow.
type Backend interface {
	CreateOrder(ctx context.Context, request *requests.CreateOrder) (*responses.CreateOrder, error)
	VerifyPayment(ctx context.Context, request *requests.VerifyPayment) (*responses.VerifyPayment, error)
	ConfirmBooking(ctx context.Context, request *requests.ConfirmBooking) (*responses.ConfirmBooking, error)
}

// PaymentResult is what the gateway widget hands to its success handler.
type PaymentResult struct {
	OrderID   string
	PaymentID string
	Signature string
}

// GatewayFailure is what the gateway widget reports on a failed payment.
type GatewayFailure struct {
	Code        string
	Description string
}

// Failure describes why an attempt ended in StateFailed.
type Failure struct {
	Err          error
	Code         string
	Message      string
	Remedy       Remedy
	MayBeCharged bool
}

// Attempt drives one booking payment from order creation to a terminal state.
// Cancellation is only accepted while the checkout widget is open, and once a
// proof has been verified the attempt always ends Confirmed.
type Attempt struct {
	mu               sync.Mutex
	backend          Backend
	log              *zap.Logger
	state            State
	consultationType string
	intent           *requests.CreateOrder
	order            *responses.CreateOrder
	confirmation     *responses.ConfirmBooking
	confirmErr       error
	failure          *Failure
}

func NewAttempt(backend Backend, consultationType string, logger *zap.Logger) *Attempt {
	return &Attempt{
		backend:          backend,
		log:              logger,
		state:            StateIdle,
		consultationType: consultationType,
	}
}

func (a *Attempt) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Attempt) Order() *responses.CreateOrder {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.order
}

func (a *Attempt) Failure() *Failure {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.failure
}

// Confirmation returns the backend's confirmation result and the error of the
// confirm call, if any. Both may be set only in StateConfirmed.
func (a *Attempt) Confirmation() (*responses.ConfirmBooking, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.confirmation, a.confirmErr
}

// Begin submits the booking intent and moves Idle to OrderCreated.
func (a *Attempt) Begin(ctx context.Context, intent *requests.CreateOrder) (*responses.CreateOrder, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateIdle {
		return nil, a.invalid(eventBegin)
	}

	a.intent = intent
	order, err := a.backend.CreateOrder(ctx, intent)
	if err != nil {
		a.fail(err, RemedyRetry, false)
		return nil, err
	}

	a.order = order
	a.transition(StateOrderCreated)
	return order, nil
}

// Open records that the checkout widget is showing the order.
func (a *Attempt) Open() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateOrderCreated {
		return a.invalid(eventOpen)
	}
	a.transition(StateAwaitingUser)
	return nil
}

// HandleSuccess verifies the proof and then confirms the booking. A rejected
// proof fails the attempt with RemedyContactSupport since the charge may be real.
func (a *Attempt) HandleSuccess(ctx context.Context, result PaymentResult) (*responses.ConfirmBooking, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateAwaitingUser {
		return nil, a.invalid(eventSuccess)
	}
	a.transition(StateVerifying)

	if result.OrderID != a.order.OrderID {
		err := exceptions.ErrCheckoutOrderMismatch(a.order.OrderID, result.OrderID)
		a.fail(err, RemedyContactSupport, true)
		return nil, err
	}

	_, err := a.backend.VerifyPayment(ctx, &requests.VerifyPayment{
		OrderID:   result.OrderID,
		PaymentID: result.PaymentID,
		Signature: result.Signature,
	})
	if err != nil {
		a.fail(err, RemedyContactSupport, true)
		return nil, err
	}

	a.transition(StateConfirming)
	confirmation, err := a.backend.ConfirmBooking(ctx, &requests.ConfirmBooking{
		OrderID:          result.OrderID,
		PaymentID:        result.PaymentID,
		Signature:        result.Signature,
		ConsultationType: a.consultationType,
	})
	if err != nil {
		a.log.Warn("checkout.Attempt.HandleSuccess error confirming booking after verified payment",
			zap.String(constvars.LoggingOrderIDKey, result.OrderID),
			zap.String(constvars.LoggingPaymentIDKey, result.PaymentID),
			zap.String(constvars.LoggingErrorCodeKey, exceptions.CodeOf(err)),
			zap.Error(err),
		)
		confirmation = &responses.ConfirmBooking{
			OrderID:   result.OrderID,
			PaymentID: result.PaymentID,
		}
	}

	a.confirmation = confirmation
	a.confirmErr = err
	a.transition(StateConfirmed)
	return confirmation, nil
}

// HandleDismiss cancels the attempt and drops the intent. No charge was made.
func (a *Attempt) HandleDismiss() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateAwaitingUser {
		return a.invalid(eventDismiss)
	}
	a.intent = nil
	a.order = nil
	a.transition(StateCancelled)
	return nil
}

func (a *Attempt) HandleFailure(reason GatewayFailure) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateAwaitingUser {
		return a.invalid(eventFailure)
	}
	a.fail(exceptions.ErrCheckoutPaymentFailed(reason.Code, reason.Description), RemedyRetry, false)
	return nil
}

// Retry restarts a failed attempt at Idle. The previous intent is returned so
// the booking step can be prefilled.
func (a *Attempt) Retry() (*requests.CreateOrder, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateFailed {
		return nil, a.invalid(eventRetry)
	}
	intent := a.intent
	a.intent = nil
	a.order = nil
	a.failure = nil
	a.transition(StateIdle)
	return intent, nil
}

func (a *Attempt) transition(next State) {
	a.log.Debug("checkout.Attempt state changed",
		zap.String(constvars.LoggingCheckoutStateKey, string(next)),
		zap.String("previous_state", string(a.state)),
	)
	a.state = next
}

func (a *Attempt) invalid(event string) error {
	return exceptions.ErrCheckoutInvalidTransition(event, string(a.state))
}

func (a *Attempt) fail(err error, remedy Remedy, mayBeCharged bool) {
	code := exceptions.CodeOf(err)
	if code == constvars.ErrCodeVerification {
		remedy = RemedyContactSupport
	}

	failure := &Failure{
		Err:          err,
		Code:         code,
		Message:      constvars.ErrClientCannotProcessRequest,
		Remedy:       remedy,
		MayBeCharged: mayBeCharged,
	}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		failure.Message = customErr.ClientMessage
	}
	if mayBeCharged {
		failure.Message = constvars.ErrClientPaymentVerificationFailed
	}

	a.log.Warn("checkout.Attempt failed",
		zap.String(constvars.LoggingCheckoutStateKey, string(a.state)),
		zap.String(constvars.LoggingErrorCodeKey, code),
		zap.String("remedy", string(remedy)),
		zap.Bool("may_be_charged", mayBeCharged),
		zap.Error(err),
	)
	a.failure = failure
	a.transition(StateFailed)
}
