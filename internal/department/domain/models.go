package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Department struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"not null;uniqueIndex" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	Budget      string       `gorm:"type:text" json:"budget"`
	Manager     string       `gorm:"type:text" json:"manager"`
	Color       string       `gorm:"type:text" json:"color"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Department) TableName() string { return "departments" }

// View is a department plus its derived headcount.
type View struct {
	Department
	EmployeeCount int64 `json:"employee_count"`
}
