package database

import (
	"errors"

	"github.com/franpopo/EasyStock/internal/models"

	"gorm.io/gorm"
)

// ListProducts returns the catalog in insertion order, optionally
// restricted to one branch.
func ListProducts(branchID *uint) ([]models.Product, error) {
	var products []models.Product
	q := DB.Order("id")
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// AddProduct creates a product in the given branch. A non-empty barcode
// that collides with another product fails with ErrDuplicateBarcode; the
// unique index is the authority, there is no read-before-write check.
func AddProduct(name string, stock int, price float64, branchID uint, barcode *string) (*models.Product, error) {
	product := models.Product{
		Name:     name,
		Stock:    stock,
		Price:    price,
		BranchID: branchID,
		Barcode:  normalizeBarcode(barcode),
	}
	if err := DB.Create(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateBarcode
		}
		return nil, err
	}
	return &product, nil
}

// UpdateProduct overwrites every mutable field of the product. Assigning
// a barcode already held by a different product fails with
// ErrDuplicateBarcode and leaves the row untouched.
func UpdateProduct(id uint, name string, stock int, price float64, barcode *string) (*models.Product, error) {
	var product models.Product
	if err := DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	product.Name = name
	product.Stock = stock
	product.Price = price
	product.Barcode = normalizeBarcode(barcode)

	// Save with Select so a nil barcode clears the column instead of
	// being skipped as a zero value.
	if err := DB.Model(&product).Select("name", "stock", "price", "barcode").Updates(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateBarcode
		}
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes the product. Historical sale line items are not
// touched; they carry their own name and price snapshots.
func DeleteProduct(id uint) error {
	res := DB.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByBarcode resolves a scanned code to its product, or ErrNotFound.
func FindByBarcode(code string) (*models.Product, error) {
	var product models.Product
	if err := DB.Where("barcode = ?", code).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// normalizeBarcode treats blank as "no barcode" so empty form fields and
// empty spreadsheet cells never collide on the unique index.
func normalizeBarcode(barcode *string) *string {
	if barcode == nil || *barcode == "" {
		return nil
	}
	return barcode
}
