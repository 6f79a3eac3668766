package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Client is a billing counterparty. Names are unique case-insensitively;
// invoice intake joins on the buyer name.
type Client struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"not null;index" json:"name"`
	Company     string       `gorm:"type:text" json:"company"`
	Email       string       `gorm:"type:text" json:"email"`
	Phone       string       `gorm:"type:text" json:"phone"`
	Address     string       `gorm:"type:text" json:"address"`
	LastInvoice *time.Time   `gorm:"column:last_invoice" json:"last_invoice,omitempty"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Client) TableName() string { return "clients" }
