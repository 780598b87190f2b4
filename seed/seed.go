// Package seed provisions demonstration data for mock mode: the default
// menu catalog and the demo coupon codes. Real mode is never seeded.
package seed

import (
	"bam-burgers-api/models"
	"bam-burgers-api/settings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func defaultMenu() []models.MenuItem {
	return []models.MenuItem{
		{Name: "Classic Cheeseburger", Description: "Juicy beef patty with melted cheddar, fresh lettuce, tomato, and our secret sauce", Price: 8.99, Category: models.CategoryBurgers, Popular: true, Available: true},
		{Name: "Double Bacon Burger", Description: "Two beef patties, crispy bacon, American cheese, pickles, and BBQ sauce", Price: 12.99, Category: models.CategoryBurgers, Popular: true, Available: true},
		{Name: "Veggie Deluxe Burger", Description: "Plant-based patty with avocado, roasted peppers, and herb mayo", Price: 10.99, Category: models.CategoryBurgers, Available: true},
		{Name: "Crispy Chicken Sandwich", Description: "Crispy fried chicken breast with coleslaw and spicy mayo", Price: 9.49, Category: models.CategoryChicken, Popular: true, Available: true},
		{Name: "Grilled Chicken Wrap", Description: "Grilled chicken, fresh veggies, and ranch dressing in a flour tortilla", Price: 8.49, Category: models.CategoryChicken, Available: true},
		{Name: "Chicken Tenders", Description: "Five golden tenders served with honey mustard and fries", Price: 9.99, Category: models.CategoryChicken, Available: true},
		{Name: "Loaded Fries", Description: "Crispy fries topped with cheese sauce, bacon bits, and green onions", Price: 6.49, Category: models.CategorySides, Popular: true, Available: true},
		{Name: "Onion Rings", Description: "Beer-battered onion rings with chipotle dipping sauce", Price: 4.99, Category: models.CategorySides, Available: true},
		{Name: "Fresh Lemonade", Description: "House-made lemonade with a hint of mint", Price: 3.49, Category: models.CategoryDrinks, Available: true},
		{Name: "Chocolate Milkshake", Description: "Thick and creamy shake topped with whipped cream", Price: 5.49, Category: models.CategoryDrinks, Popular: true, Available: true},
		{Name: "Chocolate Brownie", Description: "Warm fudge brownie with vanilla ice cream", Price: 5.99, Category: models.CategoryDesserts, Available: true},
		{Name: "Apple Pie", Description: "Classic apple pie with a flaky crust, served warm", Price: 4.99, Category: models.CategoryDesserts, Available: true},
	}
}

func demoCoupons() []models.Coupon {
	return []models.Coupon{
		{Code: "SAVE10", DiscountType: models.DiscountPercentage, DiscountValue: 10, Active: true},
		{Code: "SAVE20", DiscountType: models.DiscountPercentage, DiscountValue: 20, Active: true},
		{Code: "FIRST50", DiscountType: models.DiscountPercentage, DiscountValue: 50, MaxUses: 100, Active: true},
	}
}

// Run seeds the catalog and demo coupons when running in mock mode with
// empty tables. Menu items are seeded regardless of mode so the storefront
// is never blank on first boot.
func Run(db *gorm.DB, st *settings.Service, log *zap.Logger) error {
	var menuCount int64
	db.Model(&models.MenuItem{}).Count(&menuCount)
	if menuCount == 0 {
		items := defaultMenu()
		if err := db.Create(&items).Error; err != nil {
			return err
		}
		log.Info("seeded menu catalog", zap.Int("items", len(items)))
	}

	mode, err := st.Mode()
	if err != nil {
		return err
	}
	if mode != settings.ModeMock {
		return nil
	}

	var couponCount int64
	db.Model(&models.Coupon{}).Count(&couponCount)
	if couponCount == 0 {
		coupons := demoCoupons()
		if err := db.Create(&coupons).Error; err != nil {
			return err
		}
		log.Info("seeded demo coupons", zap.Int("coupons", len(coupons)))
	}
	return nil
}
