// internal/serializer/engagement.go
package serializer

import (
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/model"
	"github.com/dangerclosesec/adoptionhub/internal/service"
	"gorm.io/datatypes"
)

type Profile struct {
	EmployeeID     int64      `json:"employee_id"`
	Email          string     `json:"email"`
	DisplayName    string     `json:"display_name"`
	DepartmentID   int64      `json:"department_id"`
	DepartmentName *string    `json:"department_name"`
	Role           model.Role `json:"role"`
	HireDate       *time.Time `json:"hire_date,omitempty"`
	AvatarURL      *string    `json:"avatar_url,omitempty"`
}

func NewProfile(p *service.Profile) Profile {
	e := p.Employee
	return Profile{
		EmployeeID:     e.ID,
		Email:          e.Email,
		DisplayName:    e.DisplayName,
		DepartmentID:   e.DepartmentID,
		DepartmentName: p.DepartmentName,
		Role:           e.Role,
		HireDate:       e.HireDate,
		AvatarURL:      e.AvatarURL,
	}
}

type Tool struct {
	ToolID           int64   `json:"tool_id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	IconURL          *string `json:"icon_url"`
	SSOURL           *string `json:"sso_url"`
	RequiresApproval bool    `json:"requires_approval"`
}

func NewTools(tools []*model.AITool) []Tool {
	out := make([]Tool, 0, len(tools))
	for _, t := range tools {
		out = append(out, Tool{
			ToolID:           t.ID,
			Name:             t.Name,
			Description:      t.Description,
			Category:         t.Category,
			IconURL:          t.IconURL,
			SSOURL:           t.SSOURL,
			RequiresApproval: t.RequiresApproval,
		})
	}
	return out
}

type Categories struct {
	Categories []string `json:"categories"`
}

type Resource struct {
	ResourceID      int64   `json:"resource_id"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	Type            string  `json:"type"`
	Provider        string  `json:"provider"`
	DifficultyLevel string  `json:"difficulty_level"`
	DurationMinutes *int    `json:"duration_minutes"`
	URL             *string `json:"url"`
}

func NewResources(resources []*model.LearningResource) []Resource {
	out := make([]Resource, 0, len(resources))
	for _, r := range resources {
		out = append(out, Resource{
			ResourceID:      r.ID,
			Title:           r.Title,
			Description:     r.Description,
			Type:            r.Type,
			Provider:        r.Provider,
			DifficultyLevel: r.DifficultyLevel,
			DurationMinutes: r.DurationMinutes,
			URL:             r.URL,
		})
	}
	return out
}

type Progress struct {
	ResourceID      int64                `json:"resource_id"`
	ProgressPercent int                  `json:"progress_percent"`
	Status          model.LearningStatus `json:"status"`
	StartedAt       *time.Time           `json:"started_at"`
	CompletedAt     *time.Time           `json:"completed_at"`
}

func NewProgress(p *model.UserLearningProgress) Progress {
	return Progress{
		ResourceID:      p.ResourceID,
		ProgressPercent: p.ProgressPercent,
		Status:          p.Status,
		StartedAt:       p.StartedAt,
		CompletedAt:     p.CompletedAt,
	}
}

func NewProgressList(rows []*model.UserLearningProgress) []Progress {
	out := make([]Progress, 0, len(rows))
	for _, p := range rows {
		out = append(out, NewProgress(p))
	}
	return out
}

type Badge struct {
	BadgeID     int64          `json:"badge_id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	IconURL     *string        `json:"icon_url"`
	Level       int            `json:"level"`
	Criteria    datatypes.JSON `json:"criteria,omitempty"`
}

func NewBadges(badges []*model.Badge) []Badge {
	out := make([]Badge, 0, len(badges))
	for _, b := range badges {
		out = append(out, Badge{
			BadgeID:     b.ID,
			Name:        b.Name,
			Description: b.Description,
			IconURL:     b.IconURL,
			Level:       b.Level,
			Criteria:    b.Criteria,
		})
	}
	return out
}

type LeaderboardEntry struct {
	Rank        int        `json:"rank"`
	EmployeeID  int64      `json:"employee_id"`
	DisplayName string     `json:"display_name"`
	Role        model.Role `json:"role"`
	Department  *string    `json:"department"`
	Points      int        `json:"points"`
	MonthPoints int        `json:"month_points"`
}

func NewLeaderboard(rows []service.LeaderboardRow) []LeaderboardEntry {
	out := make([]LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, LeaderboardEntry{
			Rank:        r.Rank,
			EmployeeID:  r.EmployeeID,
			DisplayName: r.DisplayName,
			Role:        r.Role,
			Department:  r.DepartmentName,
			Points:      r.TotalPoints,
			MonthPoints: r.MonthPoints,
		})
	}
	return out
}

type Points struct {
	EmployeeID  int64 `json:"employee_id"`
	TotalPoints int   `json:"total_points"`
	MonthPoints int   `json:"month_points"`
	Rank        int   `json:"rank"`
}

func NewPoints(p *service.PointsSummary) Points {
	return Points{
		EmployeeID:  p.EmployeeID,
		TotalPoints: p.TotalPoints,
		MonthPoints: p.MonthPoints,
		Rank:        p.Rank,
	}
}

type Challenge struct {
	ChallengeID     int64   `json:"challenge_id"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	RewardPoints    int     `json:"reward_points"`
	ProgressPercent int     `json:"progress_percent"`
	Completed       bool    `json:"completed"`
}

func NewChallenges(statuses []service.ChallengeStatus) []Challenge {
	out := make([]Challenge, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, Challenge{
			ChallengeID:     s.Challenge.ID,
			Title:           s.Challenge.Title,
			Description:     s.Challenge.Description,
			RewardPoints:    s.Challenge.RewardPoints,
			ProgressPercent: s.ProgressPercent,
			Completed:       s.Completed,
		})
	}
	return out
}

type Notification struct {
	ID        int64                  `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   *string                `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt time.Time              `json:"created_at"`
	ReadAt    *time.Time             `json:"read_at,omitempty"`
}

type Notifications struct {
	Items  []Notification `json:"items"`
	Total  int64          `json:"total"`
	Unread int64          `json:"unread"`
}

func NewNotifications(list *service.NotificationList) Notifications {
	out := Notifications{Total: list.Total, Unread: list.Unread, Items: make([]Notification, 0, len(list.Items))}
	for _, n := range list.Items {
		out.Items = append(out.Items, Notification{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Data:      n.Data,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
			ReadAt:    n.ReadAt,
		})
	}
	return out
}

type AuditLogPage struct {
	Items  []model.AuditLog `json:"items"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

func NewAuditLogPage(page *service.AuditLogPage) AuditLogPage {
	items := page.Items
	if items == nil {
		items = []model.AuditLog{}
	}
	return AuditLogPage{Items: items, Total: page.Total, Limit: page.Limit, Offset: page.Offset}
}

// Status is the acknowledgement body of write endpoints.
type Status struct {
	Status string `json:"status"`
}
