package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/denwadesk/denwa-backend/internal/domain"
)

// OperatorRepository operator master data access interface
type OperatorRepository interface {
	GetByLogin(ctx context.Context, projectID int, loginID string) (*domain.OperatorMaster, error)
	GetByID(ctx context.Context, operatorID int) (*domain.OperatorMaster, error)
	ListActive(ctx context.Context, projectID int) ([]*domain.OperatorMaster, error)
	FindNamesByIDs(ctx context.Context, operatorIDs []int) (map[int]string, error)
	UpdatePasswordHash(ctx context.Context, operatorID int, passwordHash string) error
}

type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new OperatorRepository against the master store
func NewOperatorRepository(db *gorm.DB) OperatorRepository {
	return &operatorRepository{db: db}
}

// GetByLogin finds an operator by (project id, login id); a missing row is (nil, nil)
func (r *operatorRepository) GetByLogin(ctx context.Context, projectID int, loginID string) (*domain.OperatorMaster, error) {
	var op domain.OperatorMaster
	err := r.db.WithContext(ctx).
		Where("ProjectID = ? AND LoginID = ?", projectID, loginID).
		First(&op).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &op, nil
}

// GetByID finds an operator by id; a missing row is (nil, nil)
func (r *operatorRepository) GetByID(ctx context.Context, operatorID int) (*domain.OperatorMaster, error) {
	var op domain.OperatorMaster
	err := r.db.WithContext(ctx).
		Where("OperatorID = ?", operatorID).
		First(&op).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &op, nil
}

// ListActive returns a project's active operators ordered by name
func (r *operatorRepository) ListActive(ctx context.Context, projectID int) ([]*domain.OperatorMaster, error) {
	var ops []*domain.OperatorMaster
	err := r.db.WithContext(ctx).
		Where("ProjectID = ? AND IsActive = ?", projectID, true).
		Order("OperatorName").
		Find(&ops).Error
	if err != nil {
		return nil, err
	}
	return ops, nil
}

// FindNamesByIDs resolves operator display names in one batch.
// Unknown ids are simply absent from the result.
func (r *operatorRepository) FindNamesByIDs(ctx context.Context, operatorIDs []int) (map[int]string, error) {
	names := make(map[int]string, len(operatorIDs))
	if len(operatorIDs) == 0 {
		return names, nil
	}

	var ops []domain.OperatorMaster
	err := r.db.WithContext(ctx).
		Select("OperatorID", "OperatorName").
		Where("OperatorID IN ?", operatorIDs).
		Find(&ops).Error
	if err != nil {
		return nil, err
	}
	for _, op := range ops {
		names[op.OperatorID] = op.OperatorName
	}
	return names, nil
}

// UpdatePasswordHash stores a new password hash for one operator
func (r *operatorRepository) UpdatePasswordHash(ctx context.Context, operatorID int, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&domain.OperatorMaster{}).
		Where("OperatorID = ?", operatorID).
		Update("PasswordHash", passwordHash).Error
}
