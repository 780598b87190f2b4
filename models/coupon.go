package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Discount types
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

var (
	ErrCouponInactive  = errors.New("coupon is not active")
	ErrCouponExpired   = errors.New("coupon has expired")
	ErrCouponMinOrder  = errors.New("order subtotal is below the coupon minimum")
	ErrCouponExhausted = errors.New("coupon usage limit reached")
)

// Coupon is a named discount rule applied at most once per cart.
// Codes are stored upper-cased and matched case-insensitively.
// MinOrderAmount == 0 means no minimum; MaxUses == 0 means unlimited.
type Coupon struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	Code           string     `json:"code" gorm:"uniqueIndex;not null"`
	DiscountType   string     `json:"discount_type" gorm:"not null"`
	DiscountValue  float64    `json:"discount_value" gorm:"not null"`
	MinOrderAmount float64    `json:"min_order_amount"`
	MaxUses        int        `json:"max_uses"`
	UsedCount      int        `json:"used_count" gorm:"default:0"`
	ExpiresAt      *time.Time `json:"expires_at"`
	Active         bool       `json:"active" gorm:"default:true"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.Code = NormalizeCouponCode(c.Code)
	return nil
}

func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Applicable reports whether the coupon may be redeemed against the given
// subtotal at the given time. An expired coupon is inapplicable even if
// still flagged active.
func (c *Coupon) Applicable(subtotal float64, now time.Time) error {
	if !c.Active {
		return ErrCouponInactive
	}
	if c.ExpiresAt != nil && c.ExpiresAt.Before(now) {
		return ErrCouponExpired
	}
	if c.MinOrderAmount > 0 && subtotal < c.MinOrderAmount {
		return ErrCouponMinOrder
	}
	if c.MaxUses > 0 && c.UsedCount >= c.MaxUses {
		return ErrCouponExhausted
	}
	return nil
}

// DiscountFor computes the discount against a subtotal. Fixed discounts are
// clamped so they never exceed the subtotal.
func (c *Coupon) DiscountFor(subtotal float64) float64 {
	if subtotal <= 0 {
		return 0
	}
	switch c.DiscountType {
	case DiscountPercentage:
		return subtotal * c.DiscountValue / 100
	case DiscountFixed:
		if c.DiscountValue > subtotal {
			return subtotal
		}
		return c.DiscountValue
	}
	return 0
}
