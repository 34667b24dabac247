package handlers

import (
	"net/http"
	"time"

	"github.com/franpopo/EasyStock/internal/database"

	"github.com/gin-gonic/gin"
)

// --- GET: /api/reports ---
// Dashboard numbers: lifetime revenue, order count, best sellers,
// recent transactions.
func GetSalesReport(c *gin.Context) {
	data, err := database.SalesReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sales report"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// --- GET: /api/reports/top?month=YYYY-MM ---
// Top sellers of one calendar month, ranked by units and by revenue.
// Defaults to the current month.
func GetMonthlyTop(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	byUnits, byRevenue, err := database.MonthlyTop(month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":      month,
		"by_units":   byUnits,
		"by_revenue": byRevenue,
	})
}
