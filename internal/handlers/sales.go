package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bigmanpc/api/internal/models"
	"bigmanpc/api/internal/repository"
	"bigmanpc/api/internal/service"
)

func (h HandlerSet) GetSales(c *gin.Context) {
	sales, err := h.sales.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": h.failureMessage("Unable to fetch sales.", err),
		})
		return
	}

	if sales == nil {
		sales = []models.Sale{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sales": sales})
}

func (h HandlerSet) AddSale(c *gin.Context) {
	var payload map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON data"})
		return
	}

	input := service.SaleInput{
		ProductID:   anyInt64(payload["product_id"]),
		ProductName: anyString(payload["product_name"]),
		Price:       anyFloat64(payload["price"]),
		SaleDate:    anyString(payload["sale_date"]),
	}

	id, err := h.sales.Add(c.Request.Context(), input)
	if err != nil {
		if ve, ok := service.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Message})
			return
		}
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found."})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": h.failureMessage("Unable to record sale.", err),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Sale recorded successfully",
		"id":      id,
	})
}

func (h HandlerSet) DeleteSale(c *gin.Context) {
	id, ok := parseID(c.Query("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Sale ID is required"})
		return
	}

	if err := h.sales.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sale not found"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": h.failureMessage("Unable to delete sale.", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sale deleted successfully"})
}
