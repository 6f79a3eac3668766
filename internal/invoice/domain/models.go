package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Invoice is the durable record produced by intake. Extracted fields stay
// strings; the four required ones carry the "Unknown" sentinel when the
// extractor found nothing, and RawText keeps the recognized text verbatim
// for audit and manual correction.
type Invoice struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	UserID          snowflake.ID `gorm:"column:user_id;not null;index" json:"user_id"`
	BuyerName       string       `gorm:"column:buyer_name;not null" json:"buyer_name"`
	InvoiceNumber   string       `gorm:"column:invoice_number;not null" json:"invoice_number"`
	Amount          string       `gorm:"not null" json:"amount"`
	Date            string       `gorm:"not null" json:"date"`
	Company         string       `gorm:"type:text" json:"company,omitempty"`
	Email           string       `gorm:"type:text" json:"email,omitempty"`
	Phone           string       `gorm:"type:text" json:"phone,omitempty"`
	ShippingAddress string       `gorm:"column:shipping_address;type:text" json:"shipping_address,omitempty"`
	RawText         string       `gorm:"column:raw_text;type:text" json:"raw_text,omitempty"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"timestamp"`
	UpdatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }
