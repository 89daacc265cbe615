package domain

import "time"

// InquiryHistory is a single customer contact record. CustomerKey is a soft
// reference into the external customer store; no referential integrity is
// enforced. CustomCol01..CustomCol10 are the generic storage columns whose
// meaning per project comes from CustomFieldDefinition.
type InquiryHistory struct {
	InquiryID             int        `gorm:"column:InquiryID;primaryKey;autoIncrement" json:"inquiry_id"`
	ProjectID             int        `gorm:"column:ProjectID" json:"project_id"`
	CustomerKey           *string    `gorm:"column:CustomerKey" json:"customer_key,omitempty"`
	OperatorID            int        `gorm:"column:OperatorID" json:"operator_id"`
	CategoryID            *int       `gorm:"column:CategoryID" json:"category_id,omitempty"`
	StatusID              *int       `gorm:"column:StatusID" json:"status_id,omitempty"`
	InquiryContent        string     `gorm:"column:InquiryContent" json:"inquiry_content"`
	ResponseContent       *string    `gorm:"column:ResponseContent" json:"response_content,omitempty"`
	FirstReceivedDateTime time.Time  `gorm:"column:FirstReceivedDateTime" json:"first_received_datetime"`
	UpdatedDateTime       *time.Time `gorm:"column:UpdatedDateTime" json:"updated_datetime,omitempty"`
	CreatedAt             time.Time  `gorm:"column:CreatedAt" json:"created_at"`
	CreatedBy             int        `gorm:"column:CreatedBy" json:"created_by"`
	UpdatedBy             *int       `gorm:"column:UpdatedBy" json:"updated_by,omitempty"`
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

	// UpdatedByName is resolved after the fact from OperatorMaster;
	// never read or written by InquiryHistory queries.
	UpdatedByName string `gorm:"-" json:"updated_by_name,omitempty"`
}

// TableName returns the table name
func (InquiryHistory) TableName() string {
	return "InquiryHistory"
}

// CustomCol returns the value of generic column n (1..10).
// Out-of-range slots return nil.
func (h *InquiryHistory) CustomCol(n int) *string {
	switch n {
	case 1:
		return h.CustomCol01
	case 2:
		return h.CustomCol02
	case 3:
		return h.CustomCol03
	case 4:
		return h.CustomCol04
	case 5:
		return h.CustomCol05
	case 6:
		return h.CustomCol06
	case 7:
		return h.CustomCol07
	case 8:
		return h.CustomCol08
	case 9:
		return h.CustomCol09
	case 10:
		return h.CustomCol10
	}
	return nil
}

// SetCustomCol sets the value of generic column n (1..10).
// Out-of-range slots are ignored.
func (h *InquiryHistory) SetCustomCol(n int, v *string) {
	switch n {
	case 1:
		h.CustomCol01 = v
	case 2:
		h.CustomCol02 = v
	case 3:
		h.CustomCol03 = v
	case 4:
		h.CustomCol04 = v
	case 5:
		h.CustomCol05 = v
	case 6:
		h.CustomCol06 = v
	case 7:
		h.CustomCol07 = v
	case 8:
		h.CustomCol08 = v
	case 9:
		h.CustomCol09 = v
	case 10:
		h.CustomCol10 = v
	}
}

// InquirySearchRequest carries the optional inquiry search filters.
// CustomFieldConditions maps column number (1..10) to a required substring.
type InquirySearchRequest struct {
	StartDate             *time.Time
	EndDate               *time.Time
	CategoryID            *int
	StatusID              *int
	OperatorID            *int
	CustomerKey           *string
	Keyword               *string
	CustomFieldConditions map[int]string
}
