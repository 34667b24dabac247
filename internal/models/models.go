package models

import (
	"time"
)

// User - The person operating the terminal
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string    `json:"-"`    // Never return this in JSON
	Role         string    `json:"role"` // 'admin', 'cashier'
	CreatedAt    time.Time `json:"created_at"`
}

// Branch - A physical store location. Owns its own product catalog.
type Branch struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

// Product - The Inventory, scoped to a branch.
// Barcode is a pointer so products without one never trip the unique index.
type Product struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `json:"name"`
	Stock    int     `json:"stock"`
	Price    float64 `json:"price"`
	BranchID uint    `json:"branch_id"`
	Barcode  *string `gorm:"uniqueIndex;size:64" json:"barcode"`
}

// Sale - The Transaction Header. Immutable once committed, except deletion.
type Sale struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	Total    float64        `json:"total"`
	SaleTime time.Time      `json:"sale_time"`
	Items    []SaleLineItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`
}

// SaleLineItem - One product line inside a committed sale.
// ProductName and Price are snapshots taken at commit time so the
// sale history stays legible after the product is edited or deleted.
type SaleLineItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	SaleID      uint    `json:"sale_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}
