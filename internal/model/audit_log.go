// internal/model/audit_log.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog is an append-only record of a security relevant action.
type AuditLog struct {
	ID           uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EmployeeID   *int64            `json:"employee_id,omitempty" gorm:"index"`
	Action       string            `json:"action" gorm:"type:varchar(100);not null;index"`
	ResourceType *string           `json:"resource_type,omitempty" gorm:"type:varchar(100)"`
	ResourceID   *string           `json:"resource_id,omitempty" gorm:"type:varchar(100)"`
	Details      datatypes.JSONMap `json:"details,omitempty" gorm:"type:jsonb"`
	IPAddress    *string           `json:"ip_address,omitempty" gorm:"type:varchar(45)"`
	UserAgent    *string           `json:"user_agent,omitempty" gorm:"type:varchar(500)"`
	RequestID    *string           `json:"request_id,omitempty" gorm:"type:varchar(100)"`
	Timestamp    time.Time         `json:"timestamp" gorm:"not null;index;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// Constants for AuditLog actions
const (
	ActionMetricUpsert = "metric_upsert"
	ActionAccessDenied = "access_denied"
	ActionToolAccess   = "tool_access"
	ActionRollup       = "department_rollup"
)

// Constants for AuditLog resource types
const (
	ResourceAdoptionMetric = "adoption_metric"
	ResourceScorecard      = "scorecard"
	ResourceDepartment     = "department"
	ResourceTool           = "ai_tool"
)
