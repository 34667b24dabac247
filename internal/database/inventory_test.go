package database

import (
	"errors"
	"testing"

	"github.com/franpopo/EasyStock/internal/models"
)

func TestAddProductDuplicateBarcode(t *testing.T) {
	setupTestDB(t)
	branch := seedBranch(t, "Centro")
	seedProduct(t, "Widget", 10, 2.50, branch.ID, "W1")

	code := "W1"
	_, err := AddProduct("Other", 5, 1.00, branch.ID, &code)
	if !errors.Is(err, ErrDuplicateBarcode) {
		t.Fatalf("expected ErrDuplicateBarcode, got %v", err)
	}
	if n := countRows(t, &models.Product{}); n != 1 {
		t.Fatalf("expected 1 product after rejected insert, got %d", n)
	}
}

func TestAddProductNilBarcodesCoexist(t *testing.T) {
	setupTestDB(t)
	branch := seedBranch(t, "Centro")

	if _, err := AddProduct("A", 1, 1, branch.ID, nil); err != nil {
		t.Fatalf("first nil-barcode product: %v", err)
	}
	if _, err := AddProduct("B", 1, 1, branch.ID, nil); err != nil {
		t.Fatalf("second nil-barcode product: %v", err)
	}
	// Blank barcodes are stored as NULL too.
	blank := ""
	if _, err := AddProduct("C", 1, 1, branch.ID, &blank); err != nil {
		t.Fatalf("blank-barcode product: %v", err)
	}
	if n := countRows(t, &models.Product{}); n != 3 {
		t.Fatalf("expected 3 products, got %d", n)
	}
}

func TestUpdateProductDuplicateBarcode(t *testing.T) {
	setupTestDB(t)
	branch := seedBranch(t, "Centro")
	seedProduct(t, "A", 1, 1, branch.ID, "A1")
	b := seedProduct(t, "B", 2, 2, branch.ID, "B1")

	taken := "A1"
	if _, err := UpdateProduct(b.ID, "B", 2, 2, &taken); !errors.Is(err, ErrDuplicateBarcode) {
		t.Fatalf("expected ErrDuplicateBarcode, got %v", err)
	}

	var reread models.Product
	if err := DB.First(&reread, b.ID).Error; err != nil {
		t.Fatalf("reread: %v", err)
	}
	if reread.Barcode == nil || *reread.Barcode != "B1" {
		t.Fatalf("rejected update must leave barcode untouched, got %v", reread.Barcode)
	}
}

func TestUpdateProductOverwritesAllFields(t *testing.T) {
	setupTestDB(t)
	branch := seedBranch(t, "Centro")
	p := seedProduct(t, "Old", 1, 1.00, branch.ID, "X1")

	updated, err := UpdateProduct(p.ID, "New", 9, 3.25, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "New" || updated.Stock != 9 || updated.Price != 3.25 {
		t.Fatalf("unexpected fields after update: %+v", updated)
	}

	var reread models.Product
	if err := DB.First(&reread, p.ID).Error; err != nil {
		t.Fatalf("reread: %v", err)
	}
	if reread.Barcode != nil {
		t.Fatalf("expected barcode cleared, got %q", *reread.Barcode)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	setupTestDB(t)
	if _, err := UpdateProduct(999, "X", 1, 1, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListProductsBranchFilter(t *testing.T) {
	setupTestDB(t)
	centro := seedBranch(t, "Centro")
	norte := seedBranch(t, "Norte")
	seedProduct(t, "A", 1, 1, centro.ID, "")
	seedProduct(t, "B", 1, 1, norte.ID, "")
	seedProduct(t, "C", 1, 1, centro.ID, "")

	all, err := ListProducts(nil)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}

	filtered, err := ListProducts(&centro.ID)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 products in Centro, got %d", len(filtered))
	}
	for _, p := range filtered {
		if p.BranchID != centro.ID {
			t.Fatalf("product %s belongs to branch %d", p.Name, p.BranchID)
		}
	}
}

func TestFindByBarcode(t *testing.T) {
	setupTestDB(t)
	branch := seedBranch(t, "Centro")
	seedProduct(t, "Widget", 10, 2.50, branch.ID, "W1")

	found, err := FindByBarcode("W1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Name != "Widget" {
		t.Fatalf("expected Widget, got %s", found.Name)
	}

	if _, err := FindByBarcode("NOPE"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteProductKeepsLineItems(t *testing.T) {
	setupTestDB(t)
	branch := seedBranch(t, "Centro")
	p := seedProduct(t, "Widget", 10, 2.50, branch.ID, "W1")

	if _, err := CommitSale([]SaleLine{{ProductID: p.ID, Quantity: 2}}); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := DeleteProduct(p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var items []models.SaleLineItem
	if err := DB.Find(&items).Error; err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 1 || items[0].ProductName != "Widget" {
		t.Fatalf("line item snapshot must survive product deletion, got %+v", items)
	}
}

func TestDeleteProductNotFound(t *testing.T) {
	setupTestDB(t)
	if err := DeleteProduct(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
