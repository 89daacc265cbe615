package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/denwadesk/denwa-backend/internal/domain"
)

// SearchLimit caps every inquiry search result set. No pagination.
const SearchLimit = 100

// InquiryRepository inquiry history data access interface
type InquiryRepository interface {
	Search(ctx context.Context, projectID int, req *domain.InquirySearchRequest) ([]*domain.InquiryHistory, error)
	ListByCustomerKey(ctx context.Context, projectID int, customerKey string) ([]*domain.InquiryHistory, error)
	GetByID(ctx context.Context, inquiryID int) (*domain.InquiryHistory, error)
	Insert(ctx context.Context, inquiry *domain.InquiryHistory) (int, error)
	Update(ctx context.Context, inquiry *domain.InquiryHistory) error
}

type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository creates a new InquiryRepository against the history store
func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

// Search applies the requested filters within one project, newest first,
// capped at SearchLimit rows.
func (r *inquiryRepository) Search(ctx context.Context, projectID int, req *domain.InquirySearchRequest) ([]*domain.InquiryHistory, error) {
	q := r.db.WithContext(ctx).Where("ProjectID = ?", projectID)

	if req != nil {
		if req.StartDate != nil {
			q = q.Where("FirstReceivedDateTime >= ?", startOfDay(*req.StartDate))
		}
		if req.EndDate != nil {
			// inclusive end date: everything before the next day
			q = q.Where("FirstReceivedDateTime < ?", startOfDay(*req.EndDate).AddDate(0, 0, 1))
		}
		if req.CategoryID != nil {
			q = q.Where("CategoryID = ?", *req.CategoryID)
		}
		if req.StatusID != nil {
			q = q.Where("StatusID = ?", *req.StatusID)
		}
		if req.OperatorID != nil {
			q = q.Where("OperatorID = ?", *req.OperatorID)
		}
		if req.CustomerKey != nil && *req.CustomerKey != "" {
			q = q.Where("CustomerKey = ?", *req.CustomerKey)
		}
		if req.Keyword != nil && *req.Keyword != "" {
			kw := "%" + *req.Keyword + "%"
			q = q.Where("(InquiryContent LIKE ? OR ResponseContent LIKE ?)", kw, kw)
		}
		for slot, value := range req.CustomFieldConditions {
			col, err := customColumn(slot)
			if err != nil {
				return nil, err
			}
			q = q.Where(col+" LIKE ?", "%"+value+"%")
		}
	}

	var results []*domain.InquiryHistory
	err := q.Order("FirstReceivedDateTime DESC").
		Limit(SearchLimit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ListByCustomerKey returns one customer's inquiries within a project, newest first
func (r *inquiryRepository) ListByCustomerKey(ctx context.Context, projectID int, customerKey string) ([]*domain.InquiryHistory, error) {
	var results []*domain.InquiryHistory
	err := r.db.WithContext(ctx).
		Where("ProjectID = ? AND CustomerKey = ?", projectID, customerKey).
		Order("FirstReceivedDateTime DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetByID finds an inquiry by id; a missing row is (nil, nil)
func (r *inquiryRepository) GetByID(ctx context.Context, inquiryID int) (*domain.InquiryHistory, error) {
	var inquiry domain.InquiryHistory
	err := r.db.WithContext(ctx).
		Where("InquiryID = ?", inquiryID).
		First(&inquiry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// Insert stores a new inquiry and returns the generated id
func (r *inquiryRepository) Insert(ctx context.Context, inquiry *domain.InquiryHistory) (int, error) {
	if inquiry.CreatedAt.IsZero() {
		inquiry.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return 0, err
	}
	return inquiry.InquiryID, nil
}

// Update rewrites the mutable business columns of an existing inquiry.
// InquiryID, ProjectID and creation metadata are never overwritten.
func (r *inquiryRepository) Update(ctx context.Context, inquiry *domain.InquiryHistory) error {
	return r.db.WithContext(ctx).
		Model(&domain.InquiryHistory{}).
		Where("InquiryID = ?", inquiry.InquiryID).
		Updates(map[string]any{
			"CustomerKey":     inquiry.CustomerKey,
			"CategoryID":      inquiry.CategoryID,
			"StatusID":        inquiry.StatusID,
			"InquiryContent":  inquiry.InquiryContent,
			"ResponseContent": inquiry.ResponseContent,
			"UpdatedDateTime": inquiry.UpdatedDateTime,
			"UpdatedBy":       inquiry.UpdatedBy,
			"CustomCol01":     inquiry.CustomCol01,
			"CustomCol02":     inquiry.CustomCol02,
			"CustomCol03":     inquiry.CustomCol03,
			"CustomCol04":     inquiry.CustomCol04,
			"CustomCol05":     inquiry.CustomCol05,
			"CustomCol06":     inquiry.CustomCol06,
			"CustomCol07":     inquiry.CustomCol07,
			"CustomCol08":     inquiry.CustomCol08,
			"CustomCol09":     inquiry.CustomCol09,
			"CustomCol10":     inquiry.CustomCol10,
		}).Error
}

func customColumn(slot int) (string, error) {
	if slot < 1 || slot > domain.NumCustomColumns {
		return "", fmt.Errorf("custom column number out of range: %d", slot)
	}
	return fmt.Sprintf("CustomCol%02d", slot), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
