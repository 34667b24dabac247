package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franpopo/EasyStock/internal/database"

	"github.com/gin-gonic/gin"
)

// SaleRequest is the cart the UI sends to checkout.
type SaleRequest struct {
	Items []database.SaleLine `json:"items"`
}

// --- POST: Commit a cart as a sale ---
func ProcessSale(c *gin.Context) {
	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sale, err := database.CommitSale(req.Items)

	var insufficient *database.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      insufficient.Error(),
			"product_id": insufficient.ProductID,
			"available":  insufficient.Available,
			"requested":  insufficient.Requested,
		})
	case errors.Is(err, database.ErrEmptySale):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid quantities in cart"})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart references an unknown product"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message": "Sale recorded",
			"sale_id": sale.ID,
			"total":   sale.Total,
		})
	}
}

// --- GET: Sale history, newest first ---
func GetSales(c *gin.Context) {
	sales, err := database.ListSales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

// --- GET: Line items of one sale ---
func GetSaleItems(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Sale ID"})
		return
	}

	items, err := database.ListLineItems(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sale items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// --- DELETE: Remove a sale and its line items ---
// Stock sold by the sale is NOT re-added.
func DeleteSale(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Sale ID"})
		return
	}

	switch err := database.DeleteSale(uint(id)); {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Sale deleted"})
	}
}
