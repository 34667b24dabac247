package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franpopo/EasyStock/internal/importer"

	"github.com/gin-gonic/gin"
)

// --- POST: Bulk-import products from an xlsx upload ---
// Form fields: "file" (the spreadsheet) and "branch_id".
func ImportProducts(c *gin.Context) {
	branchID, err := strconv.ParseUint(c.PostForm("branch_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid branch_id"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer src.Close()

	summary, err := importer.ImportProducts(src, uint(branchID))
	if errors.Is(err, importer.ErrMissingColumns) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Import finished",
		"imported": summary.Imported,
		"skipped":  summary.Skipped,
	})
}
