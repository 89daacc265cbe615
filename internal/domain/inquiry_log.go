package domain

import "time"

// InquiryHistoryLog is an immutable pre-update snapshot of an InquiryHistory
// row. Append-only: never updated or deleted.
type InquiryHistoryLog struct {
	LogID                 int        `gorm:"column:LogID;primaryKey;autoIncrement" json:"log_id"`
	InquiryID             int        `gorm:"column:InquiryID" json:"inquiry_id"`
	ProjectID             int        `gorm:"column:ProjectID" json:"project_id"`
	CustomerKey           *string    `gorm:"column:CustomerKey" json:"customer_key,omitempty"`
	OperatorID            int        `gorm:"column:OperatorID" json:"operator_id"`
	CategoryID            *int       `gorm:"column:CategoryID" json:"category_id,omitempty"`
	StatusID              *int       `gorm:"column:StatusID" json:"status_id,omitempty"`
	InquiryContent        string     `gorm:"column:InquiryContent" json:"inquiry_content"`
	ResponseContent       *string    `gorm:"column:ResponseContent" json:"response_content,omitempty"`
	FirstReceivedDateTime time.Time  `gorm:"column:FirstReceivedDateTime" json:"first_received_datetime"`
	UpdatedDateTime       *time.Time `gorm:"column:UpdatedDateTime" json:"updated_datetime,omitempty"`
	CustomCol01           *string    `gorm:"column:CustomCol01" json:"custom_col01,omitempty"`
	CustomCol02           *string    `gorm:"column:CustomCol02" json:"custom_col02,omitempty"`
	CustomCol03           *string    `gorm:"column:CustomCol03" json:"custom_col03,omitempty"`
	CustomCol04           *string    `gorm:"column:CustomCol04" json:"custom_col04,omitempty"`
	CustomCol05           *string    `gorm:"column:CustomCol05" json:"custom_col05,omitempty"`
	CustomCol06           *string    `gorm:"column:CustomCol06" json:"custom_col06,omitempty"`
	CustomCol07           *string    `gorm:"column:CustomCol07" json:"custom_col07,omitempty"`
	CustomCol08           *string    `gorm:"column:CustomCol08" json:"custom_col08,omitempty"`
	CustomCol09           *string    `gorm:"column:CustomCol09" json:"custom_col09,omitempty"`
	CustomCol10           *string    `gorm:"column:CustomCol10" json:"custom_col10,omitempty"`
	UpdatedBy             int        `gorm:"column:UpdatedBy" json:"updated_by"`
	LoggedAt              time.Time  `gorm:"column:LoggedAt" json:"logged_at"`
}

// TableName returns the table name
func (InquiryHistoryLog) TableName() string {
	return "InquiryHistoryLog"
}

// SnapshotInquiry captures the current state of an inquiry as an audit log
// row attributed to the operator performing the update.
func SnapshotInquiry(h *InquiryHistory, updatedBy int, loggedAt time.Time) *InquiryHistoryLog {
	return &InquiryHistoryLog{
		InquiryID:             h.InquiryID,
		ProjectID:             h.ProjectID,
		CustomerKey:           h.CustomerKey,
		OperatorID:            h.OperatorID,
		CategoryID:            h.CategoryID,
		StatusID:              h.StatusID,
		InquiryContent:        h.InquiryContent,
		ResponseContent:       h.ResponseContent,
		FirstReceivedDateTime: h.FirstReceivedDateTime,
		UpdatedDateTime:       h.UpdatedDateTime,
		CustomCol01:           h.CustomCol01,
		CustomCol02:           h.CustomCol02,
		CustomCol03:           h.CustomCol03,
		CustomCol04:           h.CustomCol04,
		CustomCol05:           h.CustomCol05,
		CustomCol06:           h.CustomCol06,
		CustomCol07:           h.CustomCol07,
		CustomCol08:           h.CustomCol08,
		CustomCol09:           h.CustomCol09,
		CustomCol10:           h.CustomCol10,
		UpdatedBy:             updatedBy,
		LoggedAt:              loggedAt,
	}
}
