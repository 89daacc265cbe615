package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/denwadesk/denwa-backend/internal/domain"
)

// InquiryLogRepository audit log data access interface.
// Append-only: there is deliberately no update or delete operation.
type InquiryLogRepository interface {
	Insert(ctx context.Context, log *domain.InquiryHistoryLog) (int, error)
	ListByInquiryID(ctx context.Context, inquiryID int) ([]*domain.InquiryHistoryLog, error)
}

type inquiryLogRepository struct {
	db *gorm.DB
}

// NewInquiryLogRepository creates a new InquiryLogRepository against the history store
func NewInquiryLogRepository(db *gorm.DB) InquiryLogRepository {
	return &inquiryLogRepository{db: db}
}

// Insert appends one snapshot row and returns the generated id
func (r *inquiryLogRepository) Insert(ctx context.Context, log *domain.InquiryHistoryLog) (int, error) {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return 0, err
	}
	return log.LogID, nil
}

// ListByInquiryID returns an inquiry's snapshots, newest first
func (r *inquiryLogRepository) ListByInquiryID(ctx context.Context, inquiryID int) ([]*domain.InquiryHistoryLog, error) {
	var logs []*domain.InquiryHistoryLog
	err := r.db.WithContext(ctx).
		Where("InquiryID = ?", inquiryID).
		Order("LoggedAt DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
