package entities

import (
	"errors"
	"testing"
)

func TestCreditCard_ExpDate(t *testing.T) {
	cases := []struct {
		month, year int
		want        string
	}{
		{9, 2027, "0927"},
		{12, 2030, "1230"},
		{1, 27, "0127"},
		{3, 1999, "0399"},
	}
	for _, c := range cases {
		got := CreditCard{Month: c.month, Year: c.year}.ExpDate()
		if got != c.want {
			t.Fatalf("ExpDate(%d/%d) got %q want %q", c.month, c.year, got, c.want)
		}
	}
}

func TestNewPurchaseRequest(t *testing.T) {
	t.Run("card", func(t *testing.T) {
		card := &CreditCard{Number: "4111111111111111", Month: 9, Year: 2027}
		r, err := NewPurchaseRequest(1000, card, ChargeOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Type != TransactionTypeSale || r.Amount == nil || *r.Amount != 1000 {
			t.Fatalf("unexpected request: %+v", r)
		}
		if r.Authorization != "" {
			t.Fatalf("expected no authorization, got %q", r.Authorization)
		}
	})

	t.Run("customer reference without card", func(t *testing.T) {
		r, err := NewPurchaseRequest(500, nil, ChargeOptions{CustomerReference: "cust-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Authorization != "cust-1" {
			t.Fatalf("expected customer reference as authorization, got %q", r.Authorization)
		}
	})

	t.Run("no card and no customer", func(t *testing.T) {
		_, err := NewPurchaseRequest(500, nil, ChargeOptions{})
		if !errors.Is(err, ErrMissingPaymentSource) {
			t.Fatalf("expected ErrMissingPaymentSource, got %v", err)
		}
	})

	t.Run("card without number", func(t *testing.T) {
		_, err := NewPurchaseRequest(500, &CreditCard{Month: 1, Year: 2030}, ChargeOptions{})
		if !errors.Is(err, ErrInvalidChargeRequest) {
			t.Fatalf("expected ErrInvalidChargeRequest, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := NewPurchaseRequest(-1, &CreditCard{Number: "4111111111111111"}, ChargeOptions{})
		if !errors.Is(err, ErrInvalidChargeRequest) {
			t.Fatalf("expected ErrInvalidChargeRequest, got %v", err)
		}
	})
}

func TestReferenceRequests(t *testing.T) {
	if _, err := NewRefundRequest(100, "", ChargeOptions{}); !errors.Is(err, ErrMissingAuthorization) {
		t.Fatalf("refund: expected ErrMissingAuthorization, got %v", err)
	}
	if _, err := NewRepeatSaleRequest(100, "", ChargeOptions{}); !errors.Is(err, ErrMissingAuthorization) {
		t.Fatalf("repeat sale: expected ErrMissingAuthorization, got %v", err)
	}
	if _, err := NewRecurringRequest("", ChargeOptions{}); !errors.Is(err, ErrMissingAuthorization) {
		t.Fatalf("recurring: expected ErrMissingAuthorization, got %v", err)
	}

	r, err := NewRefundRequest(100, "PN-1", ChargeOptions{})
	if err != nil || r.Type != TransactionTypeReturn || r.Card != nil {
		t.Fatalf("unexpected refund request %+v err=%v", r, err)
	}
	r, err = NewRecurringRequest("PN-2", ChargeOptions{})
	if err != nil || r.Type != TransactionTypeRepeatSale || r.Amount != nil {
		t.Fatalf("unexpected recurring request %+v err=%v", r, err)
	}
}
