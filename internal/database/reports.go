package database

import (
	"fmt"
	"time"

	"github.com/franpopo/EasyStock/internal/models"
)

// ProductRanking is one row of a top-seller ranking, grouped by the
// denormalized product name so deleted products still show up.
type ProductRanking struct {
	ProductName string  `json:"product_name"`
	Units       int     `json:"units"`
	Revenue     float64 `json:"revenue"`
}

// MonthlyTop ranks the line items of sales committed in the given
// calendar month ("YYYY-MM"), once by units sold and once by revenue.
// Ties are broken by product name so repeated calls return a stable order.
func MonthlyTop(yearMonth string) (byUnits, byRevenue []ProductRanking, err error) {
	start, err := time.ParseInLocation("2006-01", yearMonth, time.Local)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid month %q: %w", yearMonth, err)
	}
	end := start.AddDate(0, 1, 0)

	rank := func(order string, dest *[]ProductRanking) error {
		return DB.Table("sale_line_items").
			Select("product_name, SUM(quantity) as units, SUM(subtotal) as revenue").
			Joins("JOIN sales ON sale_line_items.sale_id = sales.id").
			Where("sales.sale_time >= ? AND sales.sale_time < ?", start, end).
			Group("product_name").
			Order(order).
			Scan(dest).Error
	}

	if err := rank("units desc, product_name asc", &byUnits); err != nil {
		return nil, nil, err
	}
	if err := rank("revenue desc, product_name asc", &byRevenue); err != nil {
		return nil, nil, err
	}
	return byUnits, byRevenue, nil
}

// SalesReportData is the dashboard payload: lifetime totals, the five
// best sellers and the latest transactions.
type SalesReportData struct {
	TotalRevenue float64          `json:"total_revenue"`
	TotalOrders  int64            `json:"total_orders"`
	TopSelling   []ProductRanking `json:"top_selling"`
	RecentSales  []models.Sale    `json:"recent_sales"`
}

// SalesReport aggregates the dashboard numbers.
func SalesReport() (*SalesReportData, error) {
	var data SalesReportData

	// COALESCE ensures we get 0 instead of NULL if no sales exist
	err := DB.Model(&models.Sale{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&data.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	if err := DB.Model(&models.Sale{}).Count(&data.TotalOrders).Error; err != nil {
		return nil, err
	}

	err = DB.Table("sale_line_items").
		Select("product_name, SUM(quantity) as units, SUM(subtotal) as revenue").
		Group("product_name").
		Order("units desc, product_name asc").
		Limit(5).
		Scan(&data.TopSelling).Error
	if err != nil {
		return nil, err
	}

	err = DB.Order("sale_time desc").Limit(10).Find(&data.RecentSales).Error
	if err != nil {
		return nil, err
	}

	return &data, nil
}
