package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Menu categories shown on the storefront. Fixed set.
const (
	CategoryBurgers  = "burgers"
	CategoryChicken  = "chicken"
	CategorySides    = "sides"
	CategoryDrinks   = "drinks"
	CategoryDesserts = "desserts"
)

var MenuCategories = []string{
	CategoryBurgers,
	CategoryChicken,
	CategorySides,
	CategoryDrinks,
	CategoryDesserts,
}

func ValidCategory(c string) bool {
	for _, cat := range MenuCategories {
		if c == cat {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Category    string    `json:"category" gorm:"index;not null"`
	ImageURL    string    `json:"image_url"`
	Popular     bool      `json:"popular" gorm:"default:false"`
	Available   bool      `json:"available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
