package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHealth reports whether datasets are loaded and whether the NLP parser
// is wired up. Degraded states are reported, not failed: filtering still
// works without occupancy data, and structured queries work without NLP.
func (h *Handler) GetHealth(c *gin.Context) {
	bundle := h.snapshots.Snapshot()

	status := gin.H{
		"datasets_loaded": bundle != nil,
		"nlp_enabled":     h.parser != nil,
	}
	if bundle != nil {
		status["desks"] = len(bundle.Desks)
		status["spaces"] = len(bundle.Spaces)
		status["forecast_areas"] = len(bundle.Forecast)
		status["policies"] = len(bundle.Policies)
	}

	c.JSON(http.StatusOK, status)
}
