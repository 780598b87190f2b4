package handlers

import (
	"net/http"

	"bam-burgers-api/config"
	"bam-burgers-api/loyalty"
	"bam-burgers-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func loyaltySettings() (*models.LoyaltySettings, error) {
	return loyalty.Settings(config.DB)
}

// AdminGetLoyaltySettings returns the accrual rate and reward list
func AdminGetLoyaltySettings(c *gin.Context) {
	ls, err := loyaltySettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load loyalty settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": ls})
}

type LoyaltyRateRequest struct {
	PointsPerDollar int `json:"points_per_dollar" binding:"required,gt=0"`
}

// AdminUpdateLoyaltyRate changes the points-per-currency-unit rate
func AdminUpdateLoyaltyRate(c *gin.Context) {
	var req LoyaltyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ls, err := loyaltySettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load loyalty settings"})
		return
	}
	ls.PointsPerDollar = req.PointsPerDollar
	if err := config.DB.Save(ls).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save loyalty settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Accrual rate updated", "settings": ls})
}

type RewardRequest struct {
	Name           string `json:"name" binding:"required"`
	PointsRequired int    `json:"pointsRequired" binding:"required,gt=0"`
	Description    string `json:"description"`
	Active         *bool  `json:"active"`
}

// AdminCreateReward appends a reward to the program
func AdminCreateReward(c *gin.Context) {
	var req RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ls, err := loyaltySettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load loyalty settings"})
		return
	}

	reward := models.Reward{
		ID:             uuid.NewString(),
		Name:           req.Name,
		PointsRequired: req.PointsRequired,
		Description:    req.Description,
		Active:         true,
	}
	if req.Active != nil {
		reward.Active = *req.Active
	}
	ls.Rewards = append(ls.Rewards, reward)

	if err := config.DB.Save(ls).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reward"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Reward created", "reward": reward})
}

// AdminUpdateReward edits a reward in place
func AdminUpdateReward(c *gin.Context) {
	var req RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ls, err := loyaltySettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load loyalty settings"})
		return
	}

	id := c.Param("id")
	for i := range ls.Rewards {
		if ls.Rewards[i].ID != id {
			continue
		}
		ls.Rewards[i].Name = req.Name
		ls.Rewards[i].PointsRequired = req.PointsRequired
		ls.Rewards[i].Description = req.Description
		if req.Active != nil {
			ls.Rewards[i].Active = *req.Active
		}
		if err := config.DB.Save(ls).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reward"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Reward updated", "reward": ls.Rewards[i]})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Reward not found"})
}

// AdminDeleteReward removes a reward from the program
func AdminDeleteReward(c *gin.Context) {
	ls, err := loyaltySettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load loyalty settings"})
		return
	}

	id := c.Param("id")
	for i := range ls.Rewards {
		if ls.Rewards[i].ID != id {
			continue
		}
		ls.Rewards = append(ls.Rewards[:i], ls.Rewards[i+1:]...)
		if err := config.DB.Save(ls).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reward"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Reward deleted", "id": id})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Reward not found"})
}

// AdminListCustomers returns loyalty records, searchable by name or email
func AdminListCustomers(c *gin.Context) {
	var customers []models.CustomerLoyalty
	query := config.DB.Order("total_spent desc")
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("customer_name LIKE ? OR customer_email LIKE ?", like, like)
	}
	query.Find(&customers)
	c.JSON(http.StatusOK, gin.H{"count": len(customers), "customers": customers})
}
