package database

import (
	"strings"
	"testing"

	"github.com/franpopo/EasyStock/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the package at a unique in-memory database per test
// to avoid cross-test collisions.
func setupTestDB(t *testing.T) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := "file:" + name + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	DB = db
}

func seedBranch(t *testing.T, name string) *models.Branch {
	t.Helper()
	branch, err := AddBranch(name)
	if err != nil {
		t.Fatalf("seed branch: %v", err)
	}
	return branch
}

func seedProduct(t *testing.T, name string, stock int, price float64, branchID uint, barcode string) *models.Product {
	t.Helper()
	var code *string
	if barcode != "" {
		code = &barcode
	}
	product, err := AddProduct(name, stock, price, branchID, code)
	if err != nil {
		t.Fatalf("seed product %s: %v", name, err)
	}
	return product
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := DB.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
