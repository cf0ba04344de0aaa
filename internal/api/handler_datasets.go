package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"workspace-finder-backend/internal/model"
)

// GetDesks handles GET /api/desks, with optional type, floor, and status
// query filters over the persisted snapshot.
func GetDesks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Model(&model.Desk{})

		if deskType := c.Query("type"); deskType != "" {
			q = q.Where("type = ?", deskType)
		}
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}
		if floorParam := c.Query("floor"); floorParam != "" {
			floor, err := strconv.Atoi(floorParam)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid floor"})
				return
			}
			q = q.Where("floor = ?", floor)
		}

		var desks []model.Desk
		if err := q.Order("id").Find(&desks).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve desks"})
			return
		}
		c.JSON(http.StatusOK, desks)
	}
}

// GetSpaces handles GET /api/spaces.
func GetSpaces(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Model(&model.Space{})
		if spaceType := c.Query("type"); spaceType != "" {
			q = q.Where("type = ?", spaceType)
		}

		var spaces []model.Space
		if err := q.Order("id").Find(&spaces).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve spaces"})
			return
		}
		c.JSON(http.StatusOK, spaces)
	}
}

// GetPolicies handles GET /api/policies.
func GetPolicies(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var policies []model.Policy
		if err := db.Order("id").Find(&policies).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve policies"})
			return
		}
		c.JSON(http.StatusOK, policies)
	}
}

// GetForecast handles GET /api/forecast.
func GetForecast(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Model(&model.ForecastEntry{})
		if areaID := c.Query("area_id"); areaID != "" {
			q = q.Where("area_id = ?", areaID)
		}

		var entries []model.ForecastEntry
		if err := q.Order("area_id, slot").Find(&entries).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve forecast"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

// GetPreferences handles GET /api/preferences. The employee preferences
// dataset is loaded verbatim and not interpreted; it is exposed for
// transparency only.
func (h *Handler) GetPreferences(c *gin.Context) {
	bundle := h.snapshots.Snapshot()
	if bundle == nil || bundle.Preferences == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no employee preferences loaded"})
		return
	}
	c.JSON(http.StatusOK, json.RawMessage(bundle.Preferences))
}
