package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Loyalty tiers, derived from accumulated points
const (
	TierBronze   = "Bronze"
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
)

// CustomerLoyalty accumulates per-customer stats, keyed by email.
// Created on the first delivered order and incremented on each one after.
type CustomerLoyalty struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email" gorm:"uniqueIndex;not null"`
	OrdersCount   int       `json:"orders_count" gorm:"default:0"`
	TotalSpent    float64   `json:"total_spent" gorm:"default:0"`
	Points        int       `json:"points" gorm:"default:0"`
	Tier          string    `json:"tier" gorm:"default:'Bronze'"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c *CustomerLoyalty) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Reward is gated by a minimum point threshold
type Reward struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PointsRequired int    `json:"pointsRequired"`
	Description    string `json:"description"`
	Active         bool   `json:"active"`
}

// Redeemable reports whether a customer with the given balance can claim
// the reward.
func (r Reward) Redeemable(points int) bool {
	return r.Active && points >= r.PointsRequired
}

// LoyaltySettings is a singleton row: the accrual rate plus the reward list.
type LoyaltySettings struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	PointsPerDollar int       `json:"points_per_dollar" gorm:"column:points_per_dollar;default:10"`
	Rewards         []Reward  `json:"rewards" gorm:"serializer:json"`
	Active          bool      `json:"active" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (l *LoyaltySettings) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
