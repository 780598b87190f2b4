package handlers

import (
	"errors"
	"net/http"
	"time"

	"bam-burgers-api/config"
	"bam-burgers-api/models"
	"bam-burgers-api/orders"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the storefront catalog. Unavailable items are hidden
// unless include_unavailable=true is passed.
func GetMenu(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB.Order("category, name")

	if category := c.Query("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if popular := c.Query("popular"); popular == "true" {
		query = query.Where("popular = ?", true)
	}
	if c.Query("include_unavailable") != "true" {
		query = query.Where("available = ?", true)
	}

	query.Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// GetCategories returns the fixed category set
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.MenuCategories})
}

// GetRestaurantInfo returns public restaurant details and website flags
func GetRestaurantInfo(c *gin.Context) {
	restaurant, err := Settings.Restaurant()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurant settings"})
		return
	}
	website, err := Settings.Website()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load website settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant, "website": website})
}

// GetRewards returns the active rewards for the public loyalty page.
// Hidden entirely when the website loyalty flag is off.
func GetRewards(c *gin.Context) {
	website, err := Settings.Website()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	if !website.LoyaltyProgram {
		c.JSON(http.StatusOK, gin.H{"enabled": false, "rewards": []models.Reward{}})
		return
	}

	ls, err := loyaltySettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load loyalty settings"})
		return
	}
	active := make([]models.Reward, 0, len(ls.Rewards))
	for _, r := range ls.Rewards {
		if r.Active {
			active = append(active, r)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"enabled":           true,
		"points_per_dollar": ls.PointsPerDollar,
		"rewards":           active,
	})
}

type ValidateCouponRequest struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal" binding:"min=0"`
}

// ValidateCoupon checks a code against the current subtotal and reports the
// discount it would yield. Nothing is redeemed here.
func ValidateCoupon(c *gin.Context) {
	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coupon, err := Orders.LookupCoupon(req.Code)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "error": "Invalid coupon code"})
		return
	}
	if err := coupon.Applicable(req.Subtotal, time.Now()); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":         true,
		"code":          coupon.Code,
		"discount_type": coupon.DiscountType,
		"discount":      coupon.DiscountFor(req.Subtotal),
	})
}

type QuoteRequest struct {
	OrderType  models.OrderType   `json:"order_type" binding:"required,oneof=delivery pickup"`
	Items      []orders.PlaceItem `json:"items" binding:"required,min=1,dive"`
	CouponCode string             `json:"coupon_code"`
}

// QuoteCart prices a cart server-side without persisting anything
func QuoteCart(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := Orders.QuoteCart(req.Items, req.CouponCode, req.OrderType)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if !isDomainError(err) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

func isDomainError(err error) bool {
	return errors.Is(err, orders.ErrUnknownCoupon) ||
		errors.Is(err, orders.ErrBelowMinOrder) ||
		errors.Is(err, orders.ErrEmptyOrder) ||
		errors.Is(err, orders.ErrAddressRequired) ||
		errors.Is(err, models.ErrCouponInactive) ||
		errors.Is(err, models.ErrCouponExpired) ||
		errors.Is(err, models.ErrCouponMinOrder) ||
		errors.Is(err, models.ErrCouponExhausted)
}
