package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus represents all possible states of an order's lifecycle
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusAccepted       OrderStatus = "accepted"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// OrderType is the fulfillment method chosen at checkout
type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// DeliveryAddress is stored as a JSON snapshot on the order row
type DeliveryAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

type Order struct {
	ID                   string           `json:"id" gorm:"primaryKey"`
	TenantID             string           `json:"tenant_id" gorm:"index;not null"`
	BranchID             string           `json:"branch_id" gorm:"index;not null"`
	OrderNumber          string           `json:"order_number" gorm:"uniqueIndex;not null"`
	OrderType            OrderType        `json:"order_type" gorm:"not null"`
	Channel              string           `json:"channel" gorm:"default:'website'"`
	CustomerName         string           `json:"customer_name" gorm:"not null"`
	CustomerPhone        string           `json:"customer_phone"`
	CustomerEmail        string           `json:"customer_email"`
	DeliveryAddress      *DeliveryAddress `json:"delivery_address" gorm:"serializer:json"`
	DeliveryInstructions string           `json:"delivery_instructions"`
	Subtotal             float64          `json:"subtotal"`
	TaxAmount            float64          `json:"tax_amount"`
	ServiceCharge        float64          `json:"service_charge"`
	DiscountAmount       float64          `json:"discount_amount"`
	DeliveryFee          float64          `json:"delivery_fee"`
	TotalAmount          float64          `json:"total_amount"`
	CouponCode           string           `json:"coupon_code,omitempty"`
	Status               OrderStatus      `json:"status" gorm:"index;default:'pending'"`
	PaymentStatus        PaymentStatus    `json:"payment_status" gorm:"default:'pending'"`
	Notes                string           `json:"notes"`
	Items                []OrderItem      `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
	AcceptedAt           *time.Time       `json:"accepted_at"`
	CompletedAt          *time.Time       `json:"completed_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// Modifier is a per-line option snapshot (extra cheese, no onions, ...)
type Modifier struct {
	ID     string  `json:"id"`
	NameEN string  `json:"name_en"`
	NameAR string  `json:"name_ar"`
	Price  float64 `json:"price"`
}

// OrderItem is an immutable snapshot of a cart line at checkout time.
// Prices are copied from the catalog, never re-fetched.
type OrderItem struct {
	ID                  string     `json:"id" gorm:"primaryKey"`
	OrderID             string     `json:"order_id" gorm:"index;not null"`
	ItemID              string     `json:"item_id" gorm:"not null"`
	NameEN              string     `json:"name_en" gorm:"column:item_name_en"`
	NameAR              string     `json:"name_ar" gorm:"column:item_name_ar"`
	UnitPrice           float64    `json:"unit_price" gorm:"not null"`
	Quantity            int        `json:"quantity" gorm:"not null"`
	Modifiers           []Modifier `json:"modifiers" gorm:"serializer:json"`
	SpecialInstructions string     `json:"special_instructions,omitempty"`
	TotalPrice          float64    `json:"total_price"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// LineTotal is unit price times quantity plus the modifier prices.
func (i *OrderItem) LineTotal() float64 {
	total := i.UnitPrice * float64(i.Quantity)
	for _, m := range i.Modifiers {
		total += m.Price
	}
	return total
}

// DailySequence backs order-number generation. One row per calendar day,
// incremented inside the order-placement transaction so concurrent
// submissions can never observe the same value.
type DailySequence struct {
	Day     string `gorm:"primaryKey"` // YYYYMMDD
	Counter int    `gorm:"not null"`
}
