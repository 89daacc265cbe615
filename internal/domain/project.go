package domain

import "time"

// ProjectMaster is the tenant boundary: every operator, lookup row and
// inquiry belongs to exactly one project.
type ProjectMaster struct {
	ProjectID   int        `gorm:"column:ProjectID;primaryKey;autoIncrement" json:"project_id"`
	ProjectCode string     `gorm:"column:ProjectCode;uniqueIndex" json:"project_code"`
	ProjectName string     `gorm:"column:ProjectName" json:"project_name"`
	Description *string    `gorm:"column:Description" json:"description,omitempty"`
	IsActive    bool       `gorm:"column:IsActive" json:"is_active"`
	CreatedAt   time.Time  `gorm:"column:CreatedAt" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"column:UpdatedAt" json:"updated_at,omitempty"`
}

// TableName returns the table name
func (ProjectMaster) TableName() string {
	return "ProjectMaster"
}
