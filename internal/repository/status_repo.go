package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/denwadesk/denwa-backend/internal/domain"
)

// StatusRepository status lookup data access interface
type StatusRepository interface {
	ListActive(ctx context.Context, projectID int) ([]*domain.StatusMaster, error)
}

type statusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates a new StatusRepository against the master store
func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{db: db}
}

// ListActive returns a project's active statuses in display order
func (r *statusRepository) ListActive(ctx context.Context, projectID int) ([]*domain.StatusMaster, error) {
	var statuses []*domain.StatusMaster
	err := r.db.WithContext(ctx).
		Where("ProjectID = ? AND IsActive = ?", projectID, true).
		Order("DisplayOrder").
		Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}
