package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/denwadesk/denwa-backend/internal/domain"
)

// FieldDefinitionRepository custom field definition data access interface
type FieldDefinitionRepository interface {
	ListEnabled(ctx context.Context, projectID int) ([]*domain.CustomFieldDefinition, error)
	ListSearchable(ctx context.Context, projectID int) ([]*domain.CustomFieldDefinition, error)
	GetByID(ctx context.Context, fieldID int) (*domain.CustomFieldDefinition, error)
	Insert(ctx context.Context, def *domain.CustomFieldDefinition) (int, error)
	Update(ctx context.Context, def *domain.CustomFieldDefinition) error
}

type fieldDefinitionRepository struct {
	db *gorm.DB
}

// NewFieldDefinitionRepository creates a new FieldDefinitionRepository against the master store
func NewFieldDefinitionRepository(db *gorm.DB) FieldDefinitionRepository {
	return &fieldDefinitionRepository{db: db}
}

// ListEnabled returns a project's enabled definitions in display order
func (r *fieldDefinitionRepository) ListEnabled(ctx context.Context, projectID int) ([]*domain.CustomFieldDefinition, error) {
	var defs []*domain.CustomFieldDefinition
	err := r.db.WithContext(ctx).
		Where("ProjectID = ? AND IsEnabled = ?", projectID, true).
		Order("DisplayOrder").
		Find(&defs).Error
	if err != nil {
		return nil, err
	}
	return defs, nil
}

// ListSearchable returns the enabled definitions flagged searchable, in display order
func (r *fieldDefinitionRepository) ListSearchable(ctx context.Context, projectID int) ([]*domain.CustomFieldDefinition, error) {
	var defs []*domain.CustomFieldDefinition
	err := r.db.WithContext(ctx).
		Where("ProjectID = ? AND IsEnabled = ? AND IsSearchable = ?", projectID, true, true).
		Order("DisplayOrder").
		Find(&defs).Error
	if err != nil {
		return nil, err
	}
	return defs, nil
}

// GetByID finds a definition by id; a missing row is (nil, nil)
func (r *fieldDefinitionRepository) GetByID(ctx context.Context, fieldID int) (*domain.CustomFieldDefinition, error) {
	var def domain.CustomFieldDefinition
	err := r.db.WithContext(ctx).
		Where("FieldID = ?", fieldID).
		First(&def).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// Insert stores a new definition and returns the generated id
func (r *fieldDefinitionRepository) Insert(ctx context.Context, def *domain.CustomFieldDefinition) (int, error) {
	if err := r.db.WithContext(ctx).Create(def).Error; err != nil {
		return 0, err
	}
	return def.FieldID, nil
}

// Update rewrites the mutable definition columns. Identity, project and
// column number binding are never overwritten.
func (r *fieldDefinitionRepository) Update(ctx context.Context, def *domain.CustomFieldDefinition) error {
	return r.db.WithContext(ctx).
		Model(&domain.CustomFieldDefinition{}).
		Where("FieldID = ?", def.FieldID).
		Updates(map[string]any{
			"FieldName":     def.FieldName,
			"DisplayName":   def.DisplayName,
			"FieldType":     def.FieldType,
			"IsRequired":    def.IsRequired,
			"IsEnabled":     def.IsEnabled,
			"DisplayOrder":  def.DisplayOrder,
			"SelectOptions": def.SelectOptions,
			"IsSearchable":  def.IsSearchable,
		}).Error
}
