package entities

import (
	"errors"
	"testing"
	"time"
)

func TestCheckout_HappyPath(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := NewCheckout("chk-1", "1", now)
	if c.Step != CheckoutStepSelect {
		t.Fatalf("expected SELECT, got %s", c.Step)
	}

	c, err := c.SelectMethod(PaymentMethodCash, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Step != CheckoutStepForm || c.Method != PaymentMethodCash {
		t.Fatalf("unexpected checkout: %+v", c)
	}

	c, err = c.BeginProcessing(CheckoutForm{CustomerName: "  Ana ", Notes: " blue "}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Step != CheckoutStepProcessing || c.CustomerName != "Ana" || c.Notes != "blue" {
		t.Fatalf("unexpected checkout: %+v", c)
	}
	if c.ProcessingMessage != ProcessingMessageVerifyingPayment {
		t.Fatalf("unexpected processing message %q", c.ProcessingMessage)
	}

	c, err = c.Complete("order-1", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Step != CheckoutStepCompleted || c.OrderID != "order-1" {
		t.Fatalf("unexpected checkout: %+v", c)
	}
}

func TestCheckout_SelectMethod(t *testing.T) {
	now := time.Now().UTC()

	t.Run("invalid method", func(t *testing.T) {
		c := NewCheckout("chk-1", "1", now)
		got, err := c.SelectMethod(PaymentMethod("CARD"), now)
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
		if got.Step != CheckoutStepSelect {
			t.Fatalf("expected SELECT, got %s", got.Step)
		}
	})

	t.Run("not in select", func(t *testing.T) {
		c := NewCheckout("chk-1", "1", now)
		c.Step = CheckoutStepForm
		if _, err := c.SelectMethod(PaymentMethodCash, now); !errors.Is(err, ErrInvalidCheckoutTransition) {
			t.Fatalf("expected ErrInvalidCheckoutTransition, got %v", err)
		}
	})
}

func TestCheckout_Back(t *testing.T) {
	now := time.Now().UTC()
	c := NewCheckout("chk-1", "1", now)
	if _, err := c.Back(now); !errors.Is(err, ErrInvalidCheckoutTransition) {
		t.Fatalf("expected ErrInvalidCheckoutTransition, got %v", err)
	}

	c, _ = c.SelectMethod(PaymentMethodAskForFree, now)
	c, err := c.Back(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Step != CheckoutStepSelect {
		t.Fatalf("expected SELECT, got %s", c.Step)
	}
}

func TestCheckout_BeginProcessingValidation(t *testing.T) {
	now := time.Now().UTC()
	cases := []struct {
		name   string
		method PaymentMethod
		form   CheckoutForm
		want   error
	}{
		{name: "cash without name", method: PaymentMethodCash, form: CheckoutForm{CustomerName: "   "}, want: ErrMissingCustomerName},
		{name: "free without name", method: PaymentMethodAskForFree, form: CheckoutForm{Justification: "poem"}, want: ErrMissingCustomerName},
		{name: "free without justification", method: PaymentMethodAskForFree, form: CheckoutForm{CustomerName: "Ana", Justification: " \n "}, want: ErrMissingJustification},
		{name: "cash ignores justification", method: PaymentMethodCash, form: CheckoutForm{CustomerName: "Ana"}, want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := NewCheckout("chk-1", "1", now).SelectMethod(tc.method, now)
			got, err := c.BeginProcessing(tc.form, now)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if tc.want != nil && got.Step != CheckoutStepForm {
				t.Fatalf("expected checkout to stay in FORM, got %s", got.Step)
			}
		})
	}

	t.Run("not in form", func(t *testing.T) {
		c := NewCheckout("chk-1", "1", now)
		if _, err := c.BeginProcessing(CheckoutForm{CustomerName: "Ana"}, now); !errors.Is(err, ErrInvalidCheckoutTransition) {
			t.Fatalf("expected ErrInvalidCheckoutTransition, got %v", err)
		}
	})
}

func TestCheckout_Deny(t *testing.T) {
	now := time.Now().UTC()
	c, _ := NewCheckout("chk-1", "1", now).SelectMethod(PaymentMethodAskForFree, now)
	c, err := c.BeginProcessing(CheckoutForm{CustomerName: "Ana", Notes: "red", Justification: "pls"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Justification != "pls" || c.ProcessingMessage != ProcessingMessageConsultingAI {
		t.Fatalf("unexpected checkout: %+v", c)
	}

	denied, err := c.Deny(OfflineJudgment(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if denied.Step != CheckoutStepSelect {
		t.Fatalf("expected SELECT, got %s", denied.Step)
	}
	if denied.Justification != "" {
		t.Fatalf("expected justification to be dropped, got %q", denied.Justification)
	}
	if denied.CustomerName != "Ana" || denied.Notes != "red" {
		t.Fatalf("expected name and notes to be kept: %+v", denied)
	}
	if denied.LastDenial == nil || denied.LastDenial.Reason != OfflineJudgmentReason {
		t.Fatalf("unexpected last denial: %+v", denied.LastDenial)
	}

	if _, err := denied.Deny(OfflineJudgment(), now); !errors.Is(err, ErrInvalidCheckoutTransition) {
		t.Fatalf("expected ErrInvalidCheckoutTransition, got %v", err)
	}
}

func TestCheckout_Abort(t *testing.T) {
	now := time.Now().UTC()
	c, _ := NewCheckout("chk-1", "1", now).SelectMethod(PaymentMethodCash, now)
	c, _ = c.BeginProcessing(CheckoutForm{CustomerName: "Ana"}, now)

	c, err := c.Abort(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Step != CheckoutStepForm || c.ProcessingMessage != "" {
		t.Fatalf("unexpected checkout: %+v", c)
	}
	if _, err := c.Complete("order-1", now); !errors.Is(err, ErrInvalidCheckoutTransition) {
		t.Fatalf("expected ErrInvalidCheckoutTransition, got %v", err)
	}
}
