// Package orders turns a cart snapshot into a persisted order. Placement is
// a single transaction covering the daily sequence number, the header, the
// line items and the coupon redemption, so a failure in any step leaves no
// partial order behind and two concurrent submissions can never share an
// order number.
package orders

import (
	"errors"
	"fmt"
	"time"

	"bam-burgers-api/config"
	"bam-burgers-api/models"
	"bam-burgers-api/realtime"
	"bam-burgers-api/settings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEmptyOrder      = errors.New("order has no items")
	ErrUnknownCoupon   = errors.New("invalid coupon code")
	ErrBelowMinOrder   = errors.New("subtotal is below the delivery minimum")
	ErrAddressRequired = errors.New("delivery orders require an address")
)

type Service struct {
	db       *gorm.DB
	settings *settings.Service
	hub      *realtime.Hub
	log      *zap.Logger
}

func NewService(db *gorm.DB, st *settings.Service, hub *realtime.Hub, log *zap.Logger) *Service {
	return &Service{db: db, settings: st, hub: hub, log: log}
}

// PlaceItem is one cart line as submitted at checkout.
type PlaceItem struct {
	ItemID              string            `json:"item_id" binding:"required"`
	NameEN              string            `json:"name_en" binding:"required"`
	NameAR              string            `json:"name_ar"`
	UnitPrice           float64           `json:"unit_price" binding:"min=0"`
	Quantity            int               `json:"quantity" binding:"required,min=1"`
	Modifiers           []models.Modifier `json:"modifiers"`
	SpecialInstructions string            `json:"special_instructions"`
}

type PlaceRequest struct {
	OrderType            models.OrderType        `json:"order_type" binding:"required,oneof=delivery pickup"`
	CustomerName         string                  `json:"customer_name" binding:"required"`
	CustomerPhone        string                  `json:"customer_phone" binding:"required"`
	CustomerEmail        string                  `json:"customer_email" binding:"omitempty,email"`
	DeliveryAddress      *models.DeliveryAddress `json:"delivery_address"`
	DeliveryInstructions string                  `json:"delivery_instructions"`
	Items                []PlaceItem             `json:"items" binding:"required,min=1,dive"`
	CouponCode           string                  `json:"coupon_code"`
	Notes                string                  `json:"notes"`
}

// Place validates the request, recomputes all money amounts server-side and
// persists the order atomically. The client-computed totals are never
// trusted.
func (s *Service) Place(req PlaceRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	var subtotal float64
	for _, in := range req.Items {
		item := models.OrderItem{
			ItemID:              in.ItemID,
			NameEN:              in.NameEN,
			NameAR:              in.NameAR,
			UnitPrice:           in.UnitPrice,
			Quantity:            in.Quantity,
			Modifiers:           in.Modifiers,
			SpecialInstructions: in.SpecialInstructions,
		}
		item.TotalPrice = item.LineTotal()
		subtotal += item.TotalPrice
		items = append(items, item)
	}

	deliveryFee, err := s.deliveryFee(req.OrderType, subtotal)
	if err != nil {
		return nil, err
	}
	if req.OrderType == models.OrderTypeDelivery && req.DeliveryAddress == nil {
		return nil, ErrAddressRequired
	}

	now := time.Now()
	order := &models.Order{
		TenantID:             config.TenantID,
		BranchID:             config.BranchID,
		OrderType:            req.OrderType,
		Channel:              "website",
		CustomerName:         req.CustomerName,
		CustomerPhone:        req.CustomerPhone,
		CustomerEmail:        req.CustomerEmail,
		DeliveryAddress:      req.DeliveryAddress,
		DeliveryInstructions: req.DeliveryInstructions,
		Subtotal:             subtotal,
		TaxAmount:            0,
		ServiceCharge:        0,
		DeliveryFee:          deliveryFee,
		Status:               models.StatusPending,
		PaymentStatus:        models.PaymentPending,
		Notes:                req.Notes,
		Items:                items,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.CouponCode != "" {
			coupon, cerr := redeemCoupon(tx, req.CouponCode, subtotal, now)
			if cerr != nil {
				return cerr
			}
			order.CouponCode = coupon.Code
			order.DiscountAmount = coupon.DiscountFor(subtotal)
		}
		order.TotalAmount = order.Subtotal - order.DiscountAmount +
			order.DeliveryFee + order.TaxAmount + order.ServiceCharge

		number, nerr := nextOrderNumber(tx, now)
		if nerr != nil {
			return nerr
		}
		order.OrderNumber = number

		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order placed",
		zap.String("order_number", order.OrderNumber),
		zap.String("order_type", string(order.OrderType)),
		zap.Float64("total", order.TotalAmount))
	s.hub.Publish(realtime.Event{Table: "orders", Action: realtime.ActionInsert, RowID: order.ID, Payload: order})
	return order, nil
}

// Quote prices a cart without persisting anything: subtotal, coupon
// discount and delivery fee for the chosen fulfillment method. The coupon
// is validated but not redeemed.
type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
	CouponCode  string  `json:"coupon_code,omitempty"`
}

func (s *Service) QuoteCart(items []PlaceItem, couponCode string, orderType models.OrderType) (Quote, error) {
	var q Quote
	for _, in := range items {
		line := models.OrderItem{UnitPrice: in.UnitPrice, Quantity: in.Quantity, Modifiers: in.Modifiers}
		q.Subtotal += line.LineTotal()
	}

	if couponCode != "" {
		coupon, err := s.LookupCoupon(couponCode)
		if err != nil {
			return Quote{}, err
		}
		if err := coupon.Applicable(q.Subtotal, time.Now()); err != nil {
			return Quote{}, err
		}
		q.CouponCode = coupon.Code
		q.Discount = coupon.DiscountFor(q.Subtotal)
	}

	fee, err := s.deliveryFee(orderType, q.Subtotal)
	if err != nil {
		return Quote{}, err
	}
	q.DeliveryFee = fee
	q.Total = q.Subtotal - q.Discount + q.DeliveryFee
	return q, nil
}

// LookupCoupon finds a coupon by case-insensitive code.
func (s *Service) LookupCoupon(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := s.db.Where("code = ?", models.NormalizeCouponCode(code)).First(&coupon).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrUnknownCoupon
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// deliveryFee resolves the fee from the delivery settings. Pickup is always
// free; delivery is free at or above the configured threshold.
func (s *Service) deliveryFee(orderType models.OrderType, subtotal float64) (float64, error) {
	if orderType != models.OrderTypeDelivery {
		return 0, nil
	}
	cfg, err := s.settings.Delivery()
	if err != nil {
		return 0, err
	}
	if cfg.MinOrder > 0 && subtotal < cfg.MinOrder {
		return 0, ErrBelowMinOrder
	}
	if cfg.FreeDeliveryThreshold > 0 && subtotal >= cfg.FreeDeliveryThreshold {
		return 0, nil
	}
	return cfg.Fee, nil
}

// redeemCoupon re-validates the coupon inside the placement transaction and
// counts the use, so max_uses holds under concurrent checkouts.
func redeemCoupon(tx *gorm.DB, code string, subtotal float64, now time.Time) (*models.Coupon, error) {
	var coupon models.Coupon
	err := tx.Where("code = ?", models.NormalizeCouponCode(code)).First(&coupon).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrUnknownCoupon
	}
	if err != nil {
		return nil, err
	}
	if err := coupon.Applicable(subtotal, now); err != nil {
		return nil, err
	}
	err = tx.Model(&coupon).UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// nextOrderNumber allocates ORD-YYYYMMDD-NNN from the per-day counter row.
// The upsert increments atomically, replacing the racy count-then-insert
// scheme this design started from.
func nextOrderNumber(tx *gorm.DB, now time.Time) (string, error) {
	day := now.Format("20060102")
	seq := models.DailySequence{Day: day, Counter: 1}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "day"}},
		DoUpdates: clause.Assignments(map[string]any{"counter": gorm.Expr("counter + 1")}),
	}).Create(&seq).Error
	if err != nil {
		return "", err
	}
	if err := tx.Where("day = ?", day).First(&seq).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%s-%03d", day, seq.Counter), nil
}
