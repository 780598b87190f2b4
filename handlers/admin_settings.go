package handlers

import (
	"errors"
	"net/http"

	"bam-burgers-api/settings"

	"github.com/gin-gonic/gin"
)

// AdminGetSettings returns every settings block, provisioning defaults for
// any key read for the first time
func AdminGetSettings(c *gin.Context) {
	restaurant, err := Settings.Restaurant()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	delivery, err := Settings.Delivery()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	payment, err := Settings.Payment()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	notifications, err := Settings.Notifications()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	website, err := Settings.Website()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	mode, err := Settings.Mode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":    restaurant,
		"delivery":      delivery,
		"payment":       payment,
		"notifications": notifications,
		"website":       website,
		"admin_mode":    mode,
	})
}

// AdminSaveSettings updates one settings block by key. Each key has its own
// typed shape, validated by decoding into it.
func AdminSaveSettings(c *gin.Context) {
	key := c.Param("key")
	var err error

	switch key {
	case settings.KeyRestaurant:
		var v settings.Restaurant
		if berr := c.ShouldBindJSON(&v); berr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": berr.Error()})
			return
		}
		err = Settings.SaveRestaurant(v)
	case settings.KeyDelivery:
		var v settings.Delivery
		if berr := c.ShouldBindJSON(&v); berr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": berr.Error()})
			return
		}
		if v.Fee < 0 || v.MinOrder < 0 || v.FreeDeliveryThreshold < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery amounts cannot be negative"})
			return
		}
		err = Settings.SaveDelivery(v)
	case settings.KeyPayment:
		var v settings.Payment
		if berr := c.ShouldBindJSON(&v); berr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": berr.Error()})
			return
		}
		err = Settings.SavePayment(v)
	case settings.KeyNotifications:
		var v settings.Notifications
		if berr := c.ShouldBindJSON(&v); berr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": berr.Error()})
			return
		}
		err = Settings.SaveNotifications(v)
	case settings.KeyWebsite:
		var v settings.Website
		if berr := c.ShouldBindJSON(&v); berr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": berr.Error()})
			return
		}
		err = Settings.SaveWebsite(v)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown settings key"})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings saved", "key": key})
}

// AdminGetMode returns the current operating mode
func AdminGetMode(c *gin.Context) {
	mode, err := Settings.Mode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load mode"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": mode})
}

type SwitchModeRequest struct {
	Mode    settings.Mode `json:"mode" binding:"required,oneof=mock real"`
	Confirm bool          `json:"confirm"`
}

// AdminSwitchMode toggles mock/real operation. Switching to real wipes all
// orders, coupons and loyalty records; the confirm flag is mandatory for
// that direction and the wipe cannot be undone.
func AdminSwitchMode(c *gin.Context) {
	var req SwitchModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := Settings.SwitchMode(req.Mode, req.Confirm); err != nil {
		if errors.Is(err, settings.ErrConfirmRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to switch mode"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mode switched", "mode": req.Mode})
}
