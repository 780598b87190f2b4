package cart

import (
	"testing"
	"time"

	"bam-burgers-api/models"
)

func percentCoupon(code string, value float64) *models.Coupon {
	return &models.Coupon{Code: code, DiscountType: models.DiscountPercentage, DiscountValue: value, Active: true}
}

func TestAddItemIncrementsQuantity(t *testing.T) {
	c := New()
	c.AddItem("1", "Classic Cheeseburger", 8.99)
	c.AddItem("1", "Classic Cheeseburger", 8.99)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestSubtotalIsSumOfLines(t *testing.T) {
	c := New()
	c.AddItem("1", "Burger", 8.99)
	c.AddItem("2", "Fries", 6.49)
	c.UpdateQuantity("1", 3)

	want := 8.99*3 + 6.49
	if got := c.Subtotal(); got != want {
		t.Errorf("subtotal = %v, want %v", got, want)
	}
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	for _, q := range []int{0, -1} {
		c := New()
		c.AddItem("1", "Burger", 8.99)
		c.UpdateQuantity("1", q)
		if len(c.Lines()) != 0 {
			t.Errorf("UpdateQuantity(1, %d): expected empty cart, got %d lines", q, len(c.Lines()))
		}
	}
}

func TestRemoveItemDeletesRegardlessOfQuantity(t *testing.T) {
	c := New()
	c.AddItem("1", "Burger", 8.99)
	c.UpdateQuantity("1", 5)
	c.RemoveItem("1")
	if len(c.Lines()) != 0 {
		t.Fatalf("expected empty cart after RemoveItem")
	}
}

func TestApplyCouponPercentage(t *testing.T) {
	c := New()
	c.AddItem("1", "Burger", 25.00)
	c.UpdateQuantity("1", 2) // subtotal 50.00

	if err := c.ApplyCoupon(percentCoupon("SAVE10", 10), time.Now()); err != nil {
		t.Fatalf("ApplyCoupon: %v", err)
	}
	if got := c.Discount(); got != 5.00 {
		t.Errorf("discount = %v, want 5.00", got)
	}
	if got := c.Total(); got != 45.00 {
		t.Errorf("total = %v, want 45.00", got)
	}
}

func TestApplyUnknownCouponLeavesCartUnchanged(t *testing.T) {
	c := New()
	c.AddItem("1", "Burger", 10.00)

	if err := c.ApplyCoupon(nil, time.Now()); err == nil {
		t.Fatal("expected error for unknown coupon")
	}
	if c.Coupon() != nil {
		t.Error("coupon should not be set after failed apply")
	}
	if c.Discount() != 0 {
		t.Errorf("discount = %v, want 0", c.Discount())
	}
	if c.Total() != c.Subtotal() {
		t.Errorf("total = %v, want subtotal %v", c.Total(), c.Subtotal())
	}
}

func TestSecondCouponReplacesFirst(t *testing.T) {
	c := New()
	c.AddItem("1", "Burger", 50.00)

	if err := c.ApplyCoupon(percentCoupon("SAVE10", 10), time.Now()); err != nil {
		t.Fatalf("first ApplyCoupon: %v", err)
	}
	if err := c.ApplyCoupon(percentCoupon("SAVE20", 20), time.Now()); err != nil {
		t.Fatalf("second ApplyCoupon: %v", err)
	}

	if c.Coupon().Code != "SAVE20" {
		t.Errorf("active coupon = %s, want SAVE20", c.Coupon().Code)
	}
	if got := c.Discount(); got != 10.00 {
		t.Errorf("discount = %v, want 10.00 (only the latest coupon counts)", got)
	}
}

func TestInapplicableCouponRejectedAndStateKept(t *testing.T) {
	c := New()
	c.AddItem("1", "Burger", 5.00)

	first := percentCoupon("SAVE10", 10)
	if err := c.ApplyCoupon(first, time.Now()); err != nil {
		t.Fatalf("ApplyCoupon: %v", err)
	}

	tooBig := percentCoupon("BIGSPENDER", 20)
	tooBig.MinOrderAmount = 100
	if err := c.ApplyCoupon(tooBig, time.Now()); err == nil {
		t.Fatal("expected rejection for coupon below min order")
	}
	if c.Coupon() != first {
		t.Error("failed apply must keep the previously applied coupon")
	}
}

func TestClearDropsLinesAndCoupon(t *testing.T) {
	c := New()
	c.AddItem("1", "Burger", 8.99)
	if err := c.ApplyCoupon(percentCoupon("SAVE10", 10), time.Now()); err != nil {
		t.Fatalf("ApplyCoupon: %v", err)
	}

	c.Clear()
	if len(c.Lines()) != 0 || c.Coupon() != nil {
		t.Error("Clear must drop lines and the applied coupon")
	}
	if c.Total() != 0 {
		t.Errorf("total = %v, want 0", c.Total())
	}
}
