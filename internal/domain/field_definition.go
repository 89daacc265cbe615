package domain

import "time"

// NumCustomColumns is the fixed number of generic storage columns on
// InquiryHistory / InquiryHistoryLog.
const NumCustomColumns = 10

// CustomFieldDefinition is per-project metadata describing how one of the
// ten generic string columns is interpreted, validated and labeled.
// ColumnNumber (1..10) is the only binding key between a definition and its
// storage column; field identity survives renames.
type CustomFieldDefinition struct {
	FieldID       int       `gorm:"column:FieldID;primaryKey;autoIncrement" json:"field_id"`
	ProjectID     int       `gorm:"column:ProjectID" json:"project_id"`
	ColumnNumber  int       `gorm:"column:ColumnNumber" json:"column_number"`
	FieldName     string    `gorm:"column:FieldName" json:"field_name"`
	DisplayName   string    `gorm:"column:DisplayName" json:"display_name"`
	FieldType     string    `gorm:"column:FieldType;default:Text" json:"field_type"`
	IsRequired    bool      `gorm:"column:IsRequired" json:"is_required"`
	IsEnabled     bool      `gorm:"column:IsEnabled" json:"is_enabled"`
	DisplayOrder  int       `gorm:"column:DisplayOrder" json:"display_order"`
	SelectOptions *string   `gorm:"column:SelectOptions" json:"select_options,omitempty"`
	IsSearchable  bool      `gorm:"column:IsSearchable" json:"is_searchable"`
	CreatedAt     time.Time `gorm:"column:CreatedAt" json:"created_at"`
}

// TableName returns the table name
func (CustomFieldDefinition) TableName() string {
	return "CustomFieldDefinition"
}
