// Package settings is the typed configuration service over the settings
// table. Each key maps to one tagged record; a key absent on first read is
// provisioned with its hard-coded default rather than treated as an error.
package settings

// Settings keys
const (
	KeyRestaurant        = "restaurant"
	KeyDelivery          = "delivery"
	KeyPayment           = "payment"
	KeyNotifications     = "notifications"
	KeyWebsite           = "website"
	KeyDeliveryProviders = "delivery_providers"
	KeyAdminMode         = "admin_mode"
)

type Restaurant struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Currency string `json:"currency"`
}

type Delivery struct {
	Fee                   float64 `json:"fee"`
	MinOrder              float64 `json:"minOrder"`
	FreeDeliveryThreshold float64 `json:"freeDeliveryThreshold"`
	Radius                int     `json:"radius"`
}

type Gateway struct {
	Enabled    bool   `json:"enabled"`
	MerchantID string `json:"merchantId,omitempty"`
	APIKey     string `json:"apiKey,omitempty"`
}

type Payment struct {
	KNet           Gateway `json:"knet"`
	MyFatoorah     Gateway `json:"myfatoorah"`
	Tap            Gateway `json:"tap"`
	CashOnDelivery bool    `json:"cashOnDelivery"`
}

type Notifications struct {
	NewOrderAlerts bool `json:"newOrderAlerts"`
	LowStockAlerts bool `json:"lowStockAlerts"`
	DailySummary   bool `json:"dailySummary"`
}

type Website struct {
	OnlineOrdering  bool `json:"onlineOrdering"`
	LoyaltyProgram  bool `json:"loyaltyProgram"`
	MaintenanceMode bool `json:"maintenanceMode"`
}

// Provider is a delivery-partner integration entry. UI shell only: the
// toggles and keys are stored but no outbound partner call is made.
type Provider struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
	APIKey      string `json:"apiKey"`
	Website     string `json:"website"`
}

// Mode distinguishes demonstration data from live operational data.
type Mode string

const (
	ModeMock Mode = "mock"
	ModeReal Mode = "real"
)

type adminMode struct {
	Mode Mode `json:"mode"`
}

func defaultRestaurant() Restaurant {
	return Restaurant{
		Name:     "Bam Burgers",
		Phone:    "+965 1234 5678",
		Email:    "hello@bamburgers.com",
		Address:  "Kuwait City, Kuwait",
		Currency: "KWD",
	}
}

func defaultDelivery() Delivery {
	return Delivery{Fee: 1.000, MinOrder: 3.000, FreeDeliveryThreshold: 10.000, Radius: 15}
}

func defaultPayment() Payment {
	return Payment{CashOnDelivery: true}
}

func defaultNotifications() Notifications {
	return Notifications{NewOrderAlerts: true, LowStockAlerts: true, DailySummary: false}
}

func defaultWebsite() Website {
	return Website{OnlineOrdering: true, LoyaltyProgram: true, MaintenanceMode: false}
}

func defaultProviders() []Provider {
	return []Provider{
		{ID: "talabat", Name: "Talabat", Description: "Leading food delivery platform in Kuwait and GCC", Website: "https://www.talabat.com/kuwait/business"},
		{ID: "carriage", Name: "Carriage", Description: "Popular delivery service across Kuwait", Website: "https://www.trycarriage.com"},
		{ID: "deliveroo", Name: "Deliveroo", Description: "International delivery service available in Kuwait", Website: "https://deliveroo.com.kw/en/for-business"},
		{ID: "armada", Name: "ARMADA", Description: "Local delivery management and fleet service", Website: "https://armadadelivery.com"},
	}
}
