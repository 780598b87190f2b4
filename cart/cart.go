// Package cart holds the session-scoped cart and its pricing rules.
// Subtotal, discount and total are always derived from the lines, never
// cached, so a cart can not carry a stale total.
package cart

import (
	"errors"
	"time"

	"bam-burgers-api/models"
)

var ErrInvalidCoupon = errors.New("invalid coupon code")

// Line is one selected item with a price snapshot taken at add time.
type Line struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart holds lines and at most one applied coupon.
type Cart struct {
	lines  []Line
	coupon *models.Coupon
}

func New() *Cart { return &Cart{} }

// AddItem appends a new line with quantity 1, or increments the quantity
// when the item is already in the cart.
func (c *Cart) AddItem(itemID, name string, price float64) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{ItemID: itemID, Name: name, Price: price, Quantity: 1})
}

// RemoveItem deletes the line entirely, regardless of quantity.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets a line's quantity. A quantity below 1 removes the
// line. No upper bound is enforced.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity < 1 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart and drops any applied coupon. Used after a
// successful checkout.
func (c *Cart) Clear() {
	c.lines = nil
	c.coupon = nil
}

func (c *Cart) Lines() []Line          { return c.lines }
func (c *Cart) Coupon() *models.Coupon { return c.coupon }

// ApplyCoupon sets the single active coupon after checking applicability
// against the current subtotal. Applying a new coupon replaces the previous
// one; on failure the cart is left unchanged.
func (c *Cart) ApplyCoupon(coupon *models.Coupon, now time.Time) error {
	if coupon == nil {
		return ErrInvalidCoupon
	}
	if err := coupon.Applicable(c.Subtotal(), now); err != nil {
		return err
	}
	c.coupon = coupon
	return nil
}

func (c *Cart) RemoveCoupon() { c.coupon = nil }

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}

func (c *Cart) Discount() float64 {
	if c.coupon == nil {
		return 0
	}
	return c.coupon.DiscountFor(c.Subtotal())
}

// Total is subtotal minus discount. The delivery fee depends on the
// fulfillment method and is added at checkout, not here.
func (c *Cart) Total() float64 {
	return c.Subtotal() - c.Discount()
}
