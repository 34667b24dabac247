package database

import (
	"errors"
	"time"

	"github.com/franpopo/EasyStock/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaleLine is one cart entry handed to CommitSale.
type SaleLine struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CommitSale turns a cart into a committed sale.
//
// Lines with a non-positive quantity are dropped, not rejected. Every
// surviving line is validated against the product's current stock as read
// inside the commit transaction, never against whatever snapshot the
// caller built its cart from. On any failure nothing is written: the sale
// header, its line items and the stock decrements land together or not
// at all.
func CommitSale(lines []SaleLine) (*models.Sale, error) {
	var kept []SaleLine
	for _, line := range lines {
		if line.Quantity > 0 {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		return nil, ErrEmptySale
	}

	var sale models.Sale
	err := DB.Transaction(func(tx *gorm.DB) error {
		var total float64
		var items []models.SaleLineItem

		for _, line := range kept {
			var product models.Product

			q := tx
			// SELECT ... FOR UPDATE exists on MySQL only; on sqlite the
			// write transaction itself serializes access.
			if tx.Dialector.Name() == "mysql" {
				q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
			}
			if err := q.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}

			if product.Stock < line.Quantity {
				return &InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Available:   product.Stock,
					Requested:   line.Quantity,
				}
			}

			product.Stock -= line.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			subtotal := product.Price * float64(line.Quantity)
			total += subtotal
			items = append(items, models.SaleLineItem{
				ProductName: product.Name,
				Quantity:    line.Quantity,
				Price:       product.Price,
				Subtotal:    subtotal,
			})
		}

		if total <= 0 {
			return ErrEmptySale
		}

		sale = models.Sale{
			Total:    total,
			SaleTime: time.Now(),
			Items:    items,
		}
		return tx.Create(&sale).Error
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// ListSales returns the sale history, most recent first.
func ListSales() ([]models.Sale, error) {
	var sales []models.Sale
	if err := DB.Order("sale_time desc").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// ListLineItems returns a sale's lines in insertion order.
func ListLineItems(saleID uint) ([]models.SaleLineItem, error) {
	var items []models.SaleLineItem
	if err := DB.Where("sale_id = ?", saleID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteSale removes a sale and its line items. Stock decremented by the
// sale stays decremented; re-adding cancelled stock is a manual decision
// for the owner.
func DeleteSale(saleID uint) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var sale models.Sale
		if err := tx.First(&sale, saleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("sale_id = ?", saleID).Delete(&models.SaleLineItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&sale).Error
	})
}
