package domain

import "time"

// CategoryMaster is a project-scoped, ordered lookup list entry for
// classifying inquiries.
type CategoryMaster struct {
	CategoryID   int       `gorm:"column:CategoryID;primaryKey;autoIncrement" json:"category_id"`
	ProjectID    int       `gorm:"column:ProjectID" json:"project_id"`
	CategoryName string    `gorm:"column:CategoryName" json:"category_name"`
	DisplayOrder int       `gorm:"column:DisplayOrder" json:"display_order"`
	IsActive     bool      `gorm:"column:IsActive" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:CreatedAt" json:"created_at"`
}

// TableName returns the table name
func (CategoryMaster) TableName() string {
	return "CategoryMaster"
}
