package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/denwadesk/denwa-backend/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	err = db.AutoMigrate(
		&domain.ProjectMaster{},
		&domain.OperatorMaster{},
		&domain.CategoryMaster{},
		&domain.StatusMaster{},
		&domain.CustomFieldDefinition{},
		&domain.ReportCustomerDisplayConfig{},
		&domain.InquiryHistory{},
		&domain.InquiryHistoryLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	return db
}

func strPtr(s string) *string {
	return &s
}

func intPtr(n int) *int {
	return &n
}
