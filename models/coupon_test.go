package models

import (
	"errors"
	"testing"
	"time"
)

func TestCouponApplicable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		coupon   Coupon
		subtotal float64
		wantErr  error
	}{
		{"active no constraints", Coupon{Active: true}, 10, nil},
		{"inactive", Coupon{Active: false}, 10, ErrCouponInactive},
		{"expired even though active", Coupon{Active: true, ExpiresAt: &past}, 10, ErrCouponExpired},
		{"not yet expired", Coupon{Active: true, ExpiresAt: &future}, 10, nil},
		{"below min order", Coupon{Active: true, MinOrderAmount: 20}, 10, ErrCouponMinOrder},
		{"at min order", Coupon{Active: true, MinOrderAmount: 10}, 10, nil},
		{"usage exhausted", Coupon{Active: true, MaxUses: 5, UsedCount: 5}, 10, ErrCouponExhausted},
		{"usage remaining", Coupon{Active: true, MaxUses: 5, UsedCount: 4}, 10, nil},
		{"unlimited uses", Coupon{Active: true, MaxUses: 0, UsedCount: 1000}, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coupon.Applicable(tt.subtotal, now)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Applicable() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiscountForPercentage(t *testing.T) {
	c := Coupon{DiscountType: DiscountPercentage, DiscountValue: 10}
	if got := c.DiscountFor(50.00); got != 5.00 {
		t.Errorf("DiscountFor(50) = %v, want 5.00", got)
	}
}

func TestDiscountForFixedClampedToSubtotal(t *testing.T) {
	c := Coupon{DiscountType: DiscountFixed, DiscountValue: 15}
	if got := c.DiscountFor(50.00); got != 15.00 {
		t.Errorf("DiscountFor(50) = %v, want 15.00", got)
	}
	if got := c.DiscountFor(10.00); got != 10.00 {
		t.Errorf("DiscountFor(10) = %v, want 10.00 (clamped)", got)
	}
	if got := c.DiscountFor(0); got != 0 {
		t.Errorf("DiscountFor(0) = %v, want 0", got)
	}
}

func TestNormalizeCouponCode(t *testing.T) {
	if got := NormalizeCouponCode("  save10 "); got != "SAVE10" {
		t.Errorf("NormalizeCouponCode = %q, want SAVE10", got)
	}
}

func TestOrderItemLineTotal(t *testing.T) {
	item := OrderItem{
		UnitPrice: 8.99,
		Quantity:  2,
		Modifiers: []Modifier{
			{NameEN: "Extra cheese", Price: 0.50},
			{NameEN: "Bacon", Price: 1.00},
		},
	}
	want := 8.99*2 + 0.50 + 1.00
	if got := item.LineTotal(); got != want {
		t.Errorf("LineTotal = %v, want %v", got, want)
	}
}
