package handlers

import (
	"net/http"
	"time"

	"bam-burgers-api/config"
	"bam-burgers-api/models"

	"github.com/gin-gonic/gin"
)

type CouponRequest struct {
	Code           string     `json:"code" binding:"required"`
	DiscountType   string     `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue  float64    `json:"discount_value" binding:"required,gt=0"`
	MinOrderAmount float64    `json:"min_order_amount" binding:"min=0"`
	MaxUses        int        `json:"max_uses" binding:"min=0"`
	ExpiresAt      *time.Time `json:"expires_at"`
	Active         *bool      `json:"active"`
}

func (r *CouponRequest) validate() string {
	if r.DiscountType == models.DiscountPercentage && r.DiscountValue > 100 {
		return "Percentage discount cannot exceed 100"
	}
	return ""
}

// AdminListCoupons returns all coupons
func AdminListCoupons(c *gin.Context) {
	var coupons []models.Coupon
	config.DB.Order("created_at desc").Find(&coupons)
	c.JSON(http.StatusOK, gin.H{"count": len(coupons), "coupons": coupons})
}

// AdminCreateCoupon adds a coupon; codes are stored upper-cased and unique
func AdminCreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	code := models.NormalizeCouponCode(req.Code)
	var existing models.Coupon
	if err := config.DB.Where("code = ?", code).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
		return
	}

	coupon := models.Coupon{
		Code:           code,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		MinOrderAmount: req.MinOrderAmount,
		MaxUses:        req.MaxUses,
		ExpiresAt:      req.ExpiresAt,
		Active:         true,
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}

	if err := config.DB.Create(&coupon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Coupon created", "coupon": coupon})
}

// AdminUpdateCoupon edits a coupon. The used count is never editable.
func AdminUpdateCoupon(c *gin.Context) {
	var coupon models.Coupon
	if err := config.DB.First(&coupon, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	code := models.NormalizeCouponCode(req.Code)
	var clash models.Coupon
	if err := config.DB.Where("code = ? AND id <> ?", code, coupon.ID).First(&clash).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
		return
	}

	coupon.Code = code
	coupon.DiscountType = req.DiscountType
	coupon.DiscountValue = req.DiscountValue
	coupon.MinOrderAmount = req.MinOrderAmount
	coupon.MaxUses = req.MaxUses
	coupon.ExpiresAt = req.ExpiresAt
	if req.Active != nil {
		coupon.Active = *req.Active
	}

	if err := config.DB.Save(&coupon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon updated", "coupon": coupon})
}

// AdminDeleteCoupon removes a coupon
func AdminDeleteCoupon(c *gin.Context) {
	var coupon models.Coupon
	if err := config.DB.First(&coupon, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}
	if err := config.DB.Delete(&coupon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted", "id": coupon.ID})
}
