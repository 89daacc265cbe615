package domain

import "time"

// StatusMaster is a project-scoped, ordered lookup list entry for the
// handling state of an inquiry.
type StatusMaster struct {
	StatusID     int       `gorm:"column:StatusID;primaryKey;autoIncrement" json:"status_id"`
	ProjectID    int       `gorm:"column:ProjectID" json:"project_id"`
	StatusName   string    `gorm:"column:StatusName" json:"status_name"`
	DisplayOrder int       `gorm:"column:DisplayOrder" json:"display_order"`
	IsActive     bool      `gorm:"column:IsActive" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:CreatedAt" json:"created_at"`
}

// TableName returns the table name
func (StatusMaster) TableName() string {
	return "StatusMaster"
}
