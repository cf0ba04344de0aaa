package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"workspace-finder-backend/internal/engine"
	"workspace-finder-backend/internal/nlp"
)

type queryRequest struct {
	Query string `json:"query" binding:"required"`
}

// queryResponse wraps the engine result with the raw criteria the parser
// produced, so callers can audit what the model extracted.
type queryResponse struct {
	Criteria engine.StructuredCriteria `json:"parsed_criteria"`
	Result   engine.Result             `json:"result"`
}

// PostQuery handles POST /api/query: parse the natural-language request via
// the NLP collaborator, then run the engine against the current snapshot.
func (h *Handler) PostQuery(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	bundle := h.snapshots.Snapshot()
	if bundle == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "datasets are not loaded"})
		return
	}

	if h.parser == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "natural-language parsing is disabled"})
		return
	}

	criteria, err := h.parser.ParseQuery(c.Request.Context(), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, nlp.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, nlp.ErrBadResponse):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, queryResponse{
		Criteria: criteria,
		Result:   engine.Run(bundle, criteria),
	})
}

// PostStructuredQuery handles POST /api/query/structured: run the engine on
// caller-supplied criteria, bypassing the language model.
func (h *Handler) PostStructuredQuery(c *gin.Context) {
	var criteria engine.StructuredCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bundle := h.snapshots.Snapshot()
	if bundle == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "datasets are not loaded"})
		return
	}

	c.JSON(http.StatusOK, queryResponse{
		Criteria: criteria,
		Result:   engine.Run(bundle, criteria),
	})
}
