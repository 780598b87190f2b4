package handlers

import (
	"net/http"

	"bam-burgers-api/config"
	"bam-burgers-api/models"
	"bam-burgers-api/realtime"

	"github.com/gin-gonic/gin"
)

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category" binding:"required"`
	ImageURL    string  `json:"image_url"`
	Popular     bool    `json:"popular"`
	Available   *bool   `json:"available"`
}

// AdminListMenu returns the full catalog, unavailable items included
func AdminListMenu(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB.Order("category, name")
	if category := c.Query("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	query.Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// AdminCreateMenuItem adds a catalog entry
func AdminCreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category", "categories": models.MenuCategories})
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Popular:     req.Popular,
		Available:   true,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	Hub.Publish(realtime.Event{Table: "menu_items", Action: realtime.ActionInsert, RowID: item.ID, Payload: item})
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item created", "item": item})
}

// AdminUpdateMenuItem edits a catalog entry
func AdminUpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category", "categories": models.MenuCategories})
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Category = req.Category
	item.ImageURL = req.ImageURL
	item.Popular = req.Popular
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	Hub.Publish(realtime.Event{Table: "menu_items", Action: realtime.ActionUpdate, RowID: item.ID, Payload: item})
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// AdminDeleteMenuItem removes a catalog entry. Existing orders keep their
// price/name snapshots.
func AdminDeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	Hub.Publish(realtime.Event{Table: "menu_items", Action: realtime.ActionDelete, RowID: item.ID})
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted", "id": item.ID})
}
