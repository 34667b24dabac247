package database

import (
	"errors"

	"github.com/franpopo/EasyStock/internal/models"

	"gorm.io/gorm"
)

// ListBranches returns every store location in insertion order.
func ListBranches() ([]models.Branch, error) {
	var branches []models.Branch
	if err := DB.Order("id").Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

// AddBranch registers a new store location.
func AddBranch(name string) (*models.Branch, error) {
	branch := models.Branch{Name: name}
	if err := DB.Create(&branch).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

// DeleteBranch removes a branch together with its product catalog.
// Past sales are untouched; their line items only carry name snapshots.
func DeleteBranch(id uint) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var branch models.Branch
		if err := tx.First(&branch, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("branch_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&branch).Error
	})
}
