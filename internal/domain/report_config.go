package domain

import "time"

// MaxReportCustomerColumns caps how many configured customer columns appear
// on a printed inquiry document.
const MaxReportCustomerColumns = 3

// ReportCustomerDisplayConfig selects one external-customer column (by name)
// for inclusion on printed inquiry documents.
type ReportCustomerDisplayConfig struct {
	ConfigID     int       `gorm:"column:ConfigID;primaryKey;autoIncrement" json:"config_id"`
	ProjectID    int       `gorm:"column:ProjectID" json:"project_id"`
	DisplayOrder int       `gorm:"column:DisplayOrder" json:"display_order"`
	ColumnName   string    `gorm:"column:ColumnName" json:"column_name"`
	DisplayName  string    `gorm:"column:DisplayName" json:"display_name"`
	CreatedAt    time.Time `gorm:"column:CreatedAt" json:"created_at"`
}

// TableName returns the table name
func (ReportCustomerDisplayConfig) TableName() string {
	return "ReportCustomerDisplayConfig"
}
