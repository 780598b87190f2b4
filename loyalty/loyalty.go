// Package loyalty implements the rewards program: point accrual, tier
// derivation and reward eligibility.
package loyalty

import (
	"math"
	"strings"

	"bam-burgers-api/models"

	"gorm.io/gorm"
)

// Tier cutoffs in accumulated points. Everyone starts at Bronze.
const (
	SilverThreshold   = 500
	GoldThreshold     = 1500
	PlatinumThreshold = 3000
)

// TierFor derives the display tier from accumulated points.
func TierFor(points int) string {
	switch {
	case points >= PlatinumThreshold:
		return models.TierPlatinum
	case points >= GoldThreshold:
		return models.TierGold
	case points >= SilverThreshold:
		return models.TierSilver
	default:
		return models.TierBronze
	}
}

// PointsFor converts an order total into points at the configured rate,
// rounded down.
func PointsFor(total float64, pointsPerDollar int) int {
	if total <= 0 || pointsPerDollar <= 0 {
		return 0
	}
	return int(math.Floor(total * float64(pointsPerDollar)))
}

// Settings returns the singleton loyalty settings row, provisioning the
// default (10 points per dollar, no rewards) on first access.
func Settings(db *gorm.DB) (*models.LoyaltySettings, error) {
	var ls models.LoyaltySettings
	err := db.Where("active = ?", true).First(&ls).Error
	if err == gorm.ErrRecordNotFound {
		ls = models.LoyaltySettings{PointsPerDollar: 10, Rewards: []models.Reward{}, Active: true}
		if cerr := db.Create(&ls).Error; cerr != nil {
			return nil, cerr
		}
		return &ls, nil
	}
	if err != nil {
		return nil, err
	}
	return &ls, nil
}

// Accrue credits a delivered order to the customer's loyalty record,
// creating the record on first qualifying order. Accrual happens exactly
// once per order, at the transition into delivered; orders without a
// customer email accrue nothing.
func Accrue(db *gorm.DB, order *models.Order, pointsPerDollar int) error {
	email := strings.ToLower(strings.TrimSpace(order.CustomerEmail))
	if email == "" {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var rec models.CustomerLoyalty
		err := tx.Where("customer_email = ?", email).First(&rec).Error
		if err == gorm.ErrRecordNotFound {
			rec = models.CustomerLoyalty{
				CustomerName:  order.CustomerName,
				CustomerEmail: email,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		rec.OrdersCount++
		rec.TotalSpent += order.TotalAmount
		rec.Points += PointsFor(order.TotalAmount, pointsPerDollar)
		rec.Tier = TierFor(rec.Points)
		if rec.CustomerName == "" {
			rec.CustomerName = order.CustomerName
		}
		return tx.Save(&rec).Error
	})
}
