package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Project statuses and priorities match the dashboard's fixed vocabularies.
const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusOnHold     = "On Hold"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

type Project struct {
	ID           snowflake.ID  `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"not null" json:"name"`
	Description  string        `gorm:"type:text" json:"description"`
	Status       string        `gorm:"not null;default:'Not Started';index" json:"status"`
	Priority     string        `gorm:"not null;default:'Medium'" json:"priority"`
	StartDate    string        `gorm:"column:start_date;type:text" json:"start_date"`
	EndDate      string        `gorm:"column:end_date;type:text" json:"end_date"`
	Budget       string        `gorm:"type:text" json:"budget"`
	ClientID     *snowflake.ID `gorm:"column:client_id;index" json:"client_id,omitempty"`
	DepartmentID *snowflake.ID `gorm:"column:department_id;index" json:"department_id,omitempty"`
	Progress     int           `gorm:"not null;default:0" json:"progress"`
	CreatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Project) TableName() string { return "projects" }

func ValidStatus(status string) bool {
	switch status {
	case StatusNotStarted, StatusInProgress, StatusOnHold, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}
