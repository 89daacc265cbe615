package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/denwadesk/denwa-backend/internal/domain"
)

// ProjectRepository project master data access interface
type ProjectRepository interface {
	ListActive(ctx context.Context) ([]*domain.ProjectMaster, error)
	GetByID(ctx context.Context, projectID int) (*domain.ProjectMaster, error)
	GetByCode(ctx context.Context, projectCode string) (*domain.ProjectMaster, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository against the master store
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// ListActive returns selectable projects ordered by name
func (r *projectRepository) ListActive(ctx context.Context) ([]*domain.ProjectMaster, error) {
	var projects []*domain.ProjectMaster
	err := r.db.WithContext(ctx).
		Where("IsActive = ?", true).
		Order("ProjectName").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByID finds a project by id; a missing row is (nil, nil)
func (r *projectRepository) GetByID(ctx context.Context, projectID int) (*domain.ProjectMaster, error) {
	var project domain.ProjectMaster
	err := r.db.WithContext(ctx).
		Where("ProjectID = ?", projectID).
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByCode finds a project by its unique code; a missing row is (nil, nil)
func (r *projectRepository) GetByCode(ctx context.Context, projectCode string) (*domain.ProjectMaster, error) {
	var project domain.ProjectMaster
	err := r.db.WithContext(ctx).
		Where("ProjectCode = ?", projectCode).
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}
