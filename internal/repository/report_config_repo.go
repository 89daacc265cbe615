package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/denwadesk/denwa-backend/internal/domain"
)

// ReportConfigRepository report display configuration data access interface
type ReportConfigRepository interface {
	ListByProject(ctx context.Context, projectID int) ([]*domain.ReportCustomerDisplayConfig, error)
}

type reportConfigRepository struct {
	db *gorm.DB
}

// NewReportConfigRepository creates a new ReportConfigRepository against the master store
func NewReportConfigRepository(db *gorm.DB) ReportConfigRepository {
	return &reportConfigRepository{db: db}
}

// ListByProject returns a project's display configs in display order
func (r *reportConfigRepository) ListByProject(ctx context.Context, projectID int) ([]*domain.ReportCustomerDisplayConfig, error) {
	var configs []*domain.ReportCustomerDisplayConfig
	err := r.db.WithContext(ctx).
		Where("ProjectID = ?", projectID).
		Order("DisplayOrder").
		Find(&configs).Error
	if err != nil {
		return nil, err
	}
	return configs, nil
}
