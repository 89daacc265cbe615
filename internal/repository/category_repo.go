package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/denwadesk/denwa-backend/internal/domain"
)

// CategoryRepository category lookup data access interface
type CategoryRepository interface {
	ListActive(ctx context.Context, projectID int) ([]*domain.CategoryMaster, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository against the master store
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// ListActive returns a project's active categories in display order
func (r *categoryRepository) ListActive(ctx context.Context, projectID int) ([]*domain.CategoryMaster, error) {
	var categories []*domain.CategoryMaster
	err := r.db.WithContext(ctx).
		Where("ProjectID = ? AND IsActive = ?", projectID, true).
		Order("DisplayOrder").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
