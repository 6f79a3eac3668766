package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Employee mirrors the people directory. Salary stays a display string;
// payroll parses it leniently when aggregating.
type Employee struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	Name       string       `gorm:"not null" json:"name"`
	Avatar     string       `gorm:"type:text" json:"avatar,omitempty"`
	Title      string       `gorm:"type:text" json:"title"`
	Department string       `gorm:"index" json:"department"`
	Location   string       `gorm:"type:text" json:"location"`
	Salary     string       `gorm:"type:text" json:"salary"`
	StartDate  string       `gorm:"column:start_date;type:text" json:"start_date"`
	Status     string       `gorm:"not null;default:'Active'" json:"status"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Employee) TableName() string { return "employees" }
