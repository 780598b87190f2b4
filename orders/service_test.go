package orders

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"bam-burgers-api/models"
	"bam-burgers-api/realtime"
	"bam-burgers-api/settings"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.SettingsEntry{},
		&models.DailySequence{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	log := zap.NewNop()
	return NewService(db, settings.NewService(db, log), realtime.NewHub(log), log), db
}

func pickupRequest(items ...PlaceItem) PlaceRequest {
	return PlaceRequest{
		OrderType:     models.OrderTypePickup,
		CustomerName:  "Jane Doe",
		CustomerPhone: "(555) 123-4567",
		Items:         items,
	}
}

func burgerLine(qty int) PlaceItem {
	return PlaceItem{ItemID: "item-1", NameEN: "Classic Cheeseburger", UnitPrice: 8.99, Quantity: qty}
}

func TestOrderNumberSequence(t *testing.T) {
	svc, _ := testService(t)
	day := time.Now().Format("20060102")

	for i := 1; i <= 3; i++ {
		order, err := svc.Place(pickupRequest(burgerLine(1)))
		if err != nil {
			t.Fatalf("Place #%d: %v", i, err)
		}
		want := fmt.Sprintf("ORD-%s-%03d", day, i)
		if order.OrderNumber != want {
			t.Errorf("order number = %s, want %s", order.OrderNumber, want)
		}
	}
}

func TestPlacePersistsHeaderAndItemsAtomically(t *testing.T) {
	svc, db := testService(t)

	order, err := svc.Place(pickupRequest(
		burgerLine(2),
		PlaceItem{
			ItemID: "item-2", NameEN: "Loaded Fries", NameAR: "بطاطس", UnitPrice: 6.49, Quantity: 1,
			Modifiers: []models.Modifier{{NameEN: "Extra cheese", Price: 0.50}},
		},
	))
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	if order.Status != models.StatusPending || order.PaymentStatus != models.PaymentPending {
		t.Errorf("initial statuses = %s/%s, want pending/pending", order.Status, order.PaymentStatus)
	}

	wantSubtotal := 8.99*2 + 6.49 + 0.50
	if order.Subtotal != wantSubtotal {
		t.Errorf("subtotal = %v, want %v", order.Subtotal, wantSubtotal)
	}
	wantTotal := order.Subtotal - order.DiscountAmount + order.DeliveryFee + order.TaxAmount + order.ServiceCharge
	if order.TotalAmount != wantTotal {
		t.Errorf("total = %v violates the total identity (want %v)", order.TotalAmount, wantTotal)
	}

	var items []models.OrderItem
	db.Where("order_id = ?", order.ID).Find(&items)
	if len(items) != 2 {
		t.Fatalf("expected 2 persisted items, got %d", len(items))
	}
	for _, it := range items {
		if it.TotalPrice != it.LineTotal() {
			t.Errorf("item %s total %v != line total %v", it.NameEN, it.TotalPrice, it.LineTotal())
		}
	}
}

func TestPlaceWithCouponRedeems(t *testing.T) {
	svc, db := testService(t)
	db.Create(&models.Coupon{Code: "SAVE10", DiscountType: models.DiscountPercentage, DiscountValue: 10, Active: true})

	req := pickupRequest(PlaceItem{ItemID: "item-1", NameEN: "Burger", UnitPrice: 25.00, Quantity: 2})
	req.CouponCode = "save10" // case-insensitive

	order, err := svc.Place(req)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if order.DiscountAmount != 5.00 {
		t.Errorf("discount = %v, want 5.00", order.DiscountAmount)
	}
	if order.TotalAmount != 45.00 {
		t.Errorf("total = %v, want 45.00", order.TotalAmount)
	}
	if order.CouponCode != "SAVE10" {
		t.Errorf("coupon code = %s, want SAVE10", order.CouponCode)
	}

	var coupon models.Coupon
	db.Where("code = ?", "SAVE10").First(&coupon)
	if coupon.UsedCount != 1 {
		t.Errorf("used_count = %d, want 1", coupon.UsedCount)
	}
}

func TestPlaceWithUnknownCouponFailsWithoutSideEffects(t *testing.T) {
	svc, db := testService(t)

	req := pickupRequest(burgerLine(1))
	req.CouponCode = "XYZ"

	if _, err := svc.Place(req); !errors.Is(err, ErrUnknownCoupon) {
		t.Fatalf("Place = %v, want ErrUnknownCoupon", err)
	}

	var orderCount, seqCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.DailySequence{}).Count(&seqCount)
	if orderCount != 0 {
		t.Error("failed placement must not persist an order")
	}
	if seqCount != 0 {
		t.Error("failed placement must roll back the sequence row")
	}
}

func TestDeliveryFeeRules(t *testing.T) {
	svc, _ := testService(t)
	// Defaults: fee 1.000, min order 3.000, free delivery at 10.000

	deliveryReq := func(price float64) PlaceRequest {
		req := pickupRequest(PlaceItem{ItemID: "item-1", NameEN: "Burger", UnitPrice: price, Quantity: 1})
		req.OrderType = models.OrderTypeDelivery
		req.DeliveryAddress = &models.DeliveryAddress{Street: "123 Main St", City: "Kuwait City"}
		return req
	}

	// Below the delivery minimum
	if _, err := svc.Place(deliveryReq(2.00)); !errors.Is(err, ErrBelowMinOrder) {
		t.Errorf("Place below min = %v, want ErrBelowMinOrder", err)
	}

	// Standard fee applies
	order, err := svc.Place(deliveryReq(5.00))
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if order.DeliveryFee != 1.000 {
		t.Errorf("delivery fee = %v, want 1.000", order.DeliveryFee)
	}

	// Free delivery at the threshold
	order, err = svc.Place(deliveryReq(10.00))
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if order.DeliveryFee != 0 {
		t.Errorf("delivery fee = %v, want 0 at free threshold", order.DeliveryFee)
	}

	// Delivery without an address is rejected
	req := deliveryReq(5.00)
	req.DeliveryAddress = nil
	if _, err := svc.Place(req); !errors.Is(err, ErrAddressRequired) {
		t.Errorf("Place without address = %v, want ErrAddressRequired", err)
	}
}

func TestQuoteCartDoesNotRedeem(t *testing.T) {
	svc, db := testService(t)
	db.Create(&models.Coupon{Code: "SAVE20", DiscountType: models.DiscountPercentage, DiscountValue: 20, Active: true})

	quote, err := svc.QuoteCart(
		[]PlaceItem{{ItemID: "item-1", NameEN: "Burger", UnitPrice: 10.00, Quantity: 2}},
		"SAVE20", models.OrderTypePickup,
	)
	if err != nil {
		t.Fatalf("QuoteCart: %v", err)
	}
	if quote.Subtotal != 20.00 || quote.Discount != 4.00 || quote.Total != 16.00 {
		t.Errorf("unexpected quote: %+v", quote)
	}

	var coupon models.Coupon
	db.Where("code = ?", "SAVE20").First(&coupon)
	if coupon.UsedCount != 0 {
		t.Errorf("quoting must not redeem the coupon, used_count = %d", coupon.UsedCount)
	}
}

func TestExpiredCouponRejectedEvenIfActive(t *testing.T) {
	svc, db := testService(t)
	past := time.Now().Add(-time.Hour)
	db.Create(&models.Coupon{Code: "OLD", DiscountType: models.DiscountFixed, DiscountValue: 5, Active: true, ExpiresAt: &past})

	req := pickupRequest(burgerLine(1))
	req.CouponCode = "OLD"
	if _, err := svc.Place(req); !errors.Is(err, models.ErrCouponExpired) {
		t.Errorf("Place with expired coupon = %v, want ErrCouponExpired", err)
	}
}
