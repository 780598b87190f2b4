package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminListProviders returns the delivery-partner registry
func AdminListProviders(c *gin.Context) {
	providers, err := Settings.Providers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load delivery providers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(providers), "providers": providers})
}

type ProviderRequest struct {
	Enabled bool   `json:"enabled"`
	APIKey  string `json:"apiKey"`
}

// AdminUpdateProvider toggles a delivery partner and stores its API key.
// No outbound partner call is made; this is configuration only.
func AdminUpdateProvider(c *gin.Context) {
	var req ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	providers, err := Settings.Providers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load delivery providers"})
		return
	}

	id := c.Param("id")
	for i := range providers {
		if providers[i].ID != id {
			continue
		}
		if req.Enabled && req.APIKey == "" && providers[i].APIKey == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "An API key is required to enable a provider"})
			return
		}
		providers[i].Enabled = req.Enabled
		if req.APIKey != "" {
			providers[i].APIKey = req.APIKey
		}
		if err := Settings.SaveProviders(providers); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save delivery providers"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Provider updated", "provider": providers[i]})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
}
