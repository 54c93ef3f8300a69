package entities

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidCheckoutTransition = errors.New("invalid checkout transition")
	ErrInvalidPaymentMethod      = errors.New("invalid payment method")
	ErrMissingCustomerName       = errors.New("missing customer name")
	ErrMissingJustification      = errors.New("missing justification")
)

// CheckoutStep is the state of a checkout attempt.
//
//	SELECT -> FORM -> PROCESSING -> COMPLETED
//	            ^          |
//	            +- SELECT <+ (denied free request)
type CheckoutStep string

const (
	CheckoutStepSelect     CheckoutStep = "SELECT"
	CheckoutStepForm       CheckoutStep = "FORM"
	CheckoutStepProcessing CheckoutStep = "PROCESSING"
	CheckoutStepCompleted  CheckoutStep = "COMPLETED"
)

const (
	ProcessingMessageVerifyingPayment = "Verifying Payment..."
	ProcessingMessageConsultingAI     = "Consulting AI Shopkeeper..."
	ProcessingMessageApproved         = "Request Approved! Generating Receipt..."
)

// CheckoutForm is what the customer fills in on the FORM step.
type CheckoutForm struct {
	CustomerName  string
	Notes         string
	Justification string
}

// Normalize trims surrounding whitespace from every field.
func (f CheckoutForm) Normalize() CheckoutForm {
	return CheckoutForm{
		CustomerName:  strings.TrimSpace(f.CustomerName),
		Notes:         strings.TrimSpace(f.Notes),
		Justification: strings.TrimSpace(f.Justification),
	}
}

// Validate checks the required fields for the given method. It expects a
// normalized form.
func (f CheckoutForm) Validate(method PaymentMethod) error {
	if f.CustomerName == "" {
		return ErrMissingCustomerName
	}
	if method == PaymentMethodAskForFree && f.Justification == "" {
		return ErrMissingJustification
	}
	return nil
}

// Checkout is one attempt to buy a product. The transition methods return an
// updated copy and never modify the receiver.
type Checkout struct {
	ID                string        `json:"id"`
	ProductID         string        `json:"product_id"`
	Step              CheckoutStep  `json:"step"`
	Method            PaymentMethod `json:"method,omitempty"`
	CustomerName      string        `json:"customer_name,omitempty"`
	Notes             string        `json:"notes,omitempty"`
	Justification     string        `json:"-"`
	ProcessingMessage string        `json:"processing_message,omitempty"`
	OrderID           string        `json:"order_id,omitempty"`
	LastDenial        *Judgment     `json:"last_denial,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func NewCheckout(id, productID string, now time.Time) Checkout {
	return Checkout{
		ID:        id,
		ProductID: productID,
		Step:      CheckoutStepSelect,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SelectMethod moves SELECT -> FORM.
func (c Checkout) SelectMethod(method PaymentMethod, now time.Time) (Checkout, error) {
	if c.Step != CheckoutStepSelect {
		return c, ErrInvalidCheckoutTransition
	}
	if !method.Valid() {
		return c, ErrInvalidPaymentMethod
	}
	c.Method = method
	c.Step = CheckoutStepForm
	c.UpdatedAt = now
	return c, nil
}

// Back moves FORM -> SELECT.
func (c Checkout) Back(now time.Time) (Checkout, error) {
	if c.Step != CheckoutStepForm {
		return c, ErrInvalidCheckoutTransition
	}
	c.Step = CheckoutStepSelect
	c.UpdatedAt = now
	return c, nil
}

// BeginProcessing moves FORM -> PROCESSING once the form is valid.
func (c Checkout) BeginProcessing(form CheckoutForm, now time.Time) (Checkout, error) {
	if c.Step != CheckoutStepForm {
		return c, ErrInvalidCheckoutTransition
	}
	form = form.Normalize()
	if err := form.Validate(c.Method); err != nil {
		return c, err
	}
	c.CustomerName = form.CustomerName
	c.Notes = form.Notes
	c.Justification = ""
	if c.Method == PaymentMethodAskForFree {
		c.Justification = form.Justification
		c.ProcessingMessage = ProcessingMessageConsultingAI
	} else {
		c.ProcessingMessage = ProcessingMessageVerifyingPayment
	}
	c.LastDenial = nil
	c.Step = CheckoutStepProcessing
	c.UpdatedAt = now
	return c, nil
}

// WithProcessingMessage updates the progress text shown while PROCESSING.
func (c Checkout) WithProcessingMessage(msg string, now time.Time) Checkout {
	c.ProcessingMessage = msg
	c.UpdatedAt = now
	return c
}

// Deny moves PROCESSING -> SELECT after a rejected free request. The
// justification is dropped; name and notes stay for the next attempt.
func (c Checkout) Deny(j Judgment, now time.Time) (Checkout, error) {
	if c.Step != CheckoutStepProcessing {
		return c, ErrInvalidCheckoutTransition
	}
	c.Step = CheckoutStepSelect
	c.Justification = ""
	c.ProcessingMessage = ""
	c.LastDenial = &j
	c.UpdatedAt = now
	return c, nil
}

// Abort moves PROCESSING -> FORM when the order could not be recorded.
func (c Checkout) Abort(now time.Time) (Checkout, error) {
	if c.Step != CheckoutStepProcessing {
		return c, ErrInvalidCheckoutTransition
	}
	c.Step = CheckoutStepForm
	c.ProcessingMessage = ""
	c.UpdatedAt = now
	return c, nil
}

// Complete moves PROCESSING -> COMPLETED.
func (c Checkout) Complete(orderID string, now time.Time) (Checkout, error) {
	if c.Step != CheckoutStepProcessing {
		return c, ErrInvalidCheckoutTransition
	}
	c.Step = CheckoutStepCompleted
	c.OrderID = orderID
	c.Justification = ""
	c.ProcessingMessage = ""
	c.UpdatedAt = now
	return c, nil
}
