// internal/model/tool.go
package model

import "time"

// AITool is an approved entry in the tool catalog.
type AITool struct {
	ID                 int64     `gorm:"column:tool_id;primaryKey" json:"tool_id"`
	Name               string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description        string    `gorm:"type:text;not null" json:"description"`
	Category           string    `gorm:"type:varchar(100);not null;index" json:"category"`
	IconURL            *string   `gorm:"type:varchar(500)" json:"icon_url,omitempty"`
	SSOURL             *string   `gorm:"column:sso_url;type:varchar(500)" json:"sso_url,omitempty"`
	DocumentationURL   *string   `gorm:"type:varchar(500)" json:"documentation_url,omitempty"`
	DataClassification string    `gorm:"type:varchar(50);not null;default:'internal'" json:"data_classification"`
	IsActive           bool      `gorm:"not null;default:true" json:"is_active"`
	RequiresApproval   bool      `gorm:"not null;default:false" json:"requires_approval"`
	SafetyCritical     bool      `gorm:"not null;default:false" json:"safety_critical"`
	CreatedBy          *int64    `json:"created_by,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (AITool) TableName() string {
	return "ai_tools"
}

const ToolActionAccess = "access"

// ToolAccessLog records an employee launching a catalog tool.
type ToolAccessLog struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	EmployeeID int64     `gorm:"not null;index" json:"employee_id"`
	ToolID     int64     `gorm:"not null" json:"tool_id"`
	Action     string    `gorm:"type:varchar(50);not null" json:"action"`
	Timestamp  time.Time `gorm:"not null;index" json:"timestamp"`
}

func (ToolAccessLog) TableName() string {
	return "tool_access_logs"
}
