package domain

import "time"

// Operator roles
const (
	RoleGeneral = "General"
	RoleAdmin   = "Admin"
)

// OperatorMaster is an authenticated user of the system, scoped to one
// project. (ProjectID, LoginID) is unique; the password hash is bcrypt and
// never leaves this struct in clear text.
type OperatorMaster struct {
	OperatorID   int        `gorm:"column:OperatorID;primaryKey;autoIncrement" json:"operator_id"`
	ProjectID    int        `gorm:"column:ProjectID;uniqueIndex:idx_operator_project_login" json:"project_id"`
	LoginID      string     `gorm:"column:LoginID;uniqueIndex:idx_operator_project_login" json:"login_id"`
	OperatorName string     `gorm:"column:OperatorName" json:"operator_name"`
	PasswordHash string     `gorm:"column:PasswordHash" json:"-"`
	Role         string     `gorm:"column:Role;default:General" json:"role"`
	IsActive     bool       `gorm:"column:IsActive" json:"is_active"`
	CreatedAt    time.Time  `gorm:"column:CreatedAt" json:"created_at"`
	UpdatedAt    *time.Time `gorm:"column:UpdatedAt" json:"updated_at,omitempty"`
}

// TableName returns the table name
func (OperatorMaster) TableName() string {
	return "OperatorMaster"
}

// IsAdmin reports whether the operator has the admin role.
func (o *OperatorMaster) IsAdmin() bool {
	return o.Role == RoleAdmin
}
