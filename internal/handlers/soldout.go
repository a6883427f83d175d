package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bigmanpc/api/internal/repository"
)

// SetSoldOut toggles a product's availability. The admin UI historically
// sent the key as either id or product_id, so both are accepted.
func (h HandlerSet) SetSoldOut(c *gin.Context) {
	var payload map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON data"})
		return
	}

	id := anyInt64(payload["id"])
	if id == 0 {
		id = anyInt64(payload["product_id"])
	}
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID is required"})
		return
	}

	raw, present := payload["sold_out"]
	if !present {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "sold_out status is required"})
		return
	}
	soldOut := anyBool(raw)

	if err := h.catalog.SetSoldOut(c.Request.Context(), id, soldOut); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found."})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": h.failureMessage("Unable to update sold out status.", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Sold out status updated",
		"product_id": id,
		"sold_out":   soldOut,
	})
}
