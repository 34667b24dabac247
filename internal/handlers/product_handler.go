package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franpopo/EasyStock/internal/database"

	"github.com/gin-gonic/gin"
)

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Stock    int     `json:"stock"`
	Price    float64 `json:"price"`
	BranchID uint    `json:"branch_id"`
	Barcode  *string `json:"barcode"`
}

// --- GET: List products, optionally for one branch ---
func GetProducts(c *gin.Context) {
	var branchID *uint
	if raw := c.Query("branch_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid branch_id"})
			return
		}
		v := uint(id)
		branchID = &v
	}

	products, err := database.ListProducts(branchID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// --- POST: Add a new product ---
func AddProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Stock < 0 || req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock and price must not be negative"})
		return
	}

	product, err := database.AddProduct(req.Name, req.Stock, req.Price, req.BranchID, req.Barcode)
	if errors.Is(err, database.ErrDuplicateBarcode) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// --- PUT: Overwrite a product's mutable fields ---
func UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Stock < 0 || req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock and price must not be negative"})
		return
	}

	product, err := database.UpdateProduct(uint(id), req.Name, req.Stock, req.Price, req.Barcode)
	switch {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, database.ErrDuplicateBarcode):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
	}
}

// --- DELETE: Remove a product ---
// Past sales keep their line items; those only hold name snapshots.
func DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Product ID"})
		return
	}

	switch err := database.DeleteProduct(uint(id)); {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

// --- GET: Resolve a scanned barcode ---
func ScanProduct(c *gin.Context) {
	code := c.Param("barcode")

	product, err := database.FindByBarcode(code)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No product registered with barcode " + code})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up barcode"})
		return
	}
	c.JSON(http.StatusOK, product)
}
