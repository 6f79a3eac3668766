// Package domain defines the invoice intake contract: a processed upload
// becomes a pending scan the caller reviews, and a confirmed scan becomes
// an invoice row plus, when the buyer is new, a provisioned client.
package domain

import (
	"time"

	clientdomain "github.com/atriumhq/atrium/internal/client/domain"
	invoicedomain "github.com/atriumhq/atrium/internal/invoice/domain"
	"github.com/atriumhq/atrium/internal/scan/extract"
)

// MinMeaningfulTextLen is the shortest trimmed recognition output worth
// extracting from. Anything below it is treated as a failed read.
const MinMeaningfulTextLen = 10

// Review is the extraction result handed back for user confirmation.
// Required fields carry the Unknown sentinel when extraction failed;
// contact fields stay blank when absent.
type Review struct {
	ScanID          string `json:"scan_id"`
	BuyerName       string `json:"buyer_name"`
	InvoiceNumber   string `json:"invoice_number"`
	Amount          string `json:"amount"`
	Date            string `json:"date"`
	Company         string `json:"company,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty"`
	RawText         string `json:"raw_text"`
}

// NewReview renders extracted fields into the confirmation payload.
func NewReview(scanID string, fields extract.Fields) Review {
	return Review{
		ScanID:          scanID,
		BuyerName:       fields.BuyerName.OrUnknown(),
		InvoiceNumber:   fields.InvoiceNumber.OrUnknown(),
		Amount:          fields.Amount.OrUnknown(),
		Date:            fields.Date.OrUnknown(),
		Company:         fields.Company.OrEmpty(),
		Email:           fields.Email.OrEmpty(),
		Phone:           fields.Phone.OrEmpty(),
		ShippingAddress: fields.ShippingAddress.OrEmpty(),
		RawText:         fields.RawText,
	}
}

// PendingScan is a processed upload awaiting confirmation. It is held in
// memory only; an unconfirmed scan is discarded, never persisted.
type PendingScan struct {
	ID        string
	Fields    extract.Fields
	CreatedAt time.Time
}

// ConfirmResult reports what confirmation materialized. Client is set only
// when a new client was provisioned from the scan.
type ConfirmResult struct {
	Invoice invoicedomain.Invoice `json:"invoice"`
	Client  *clientdomain.Client  `json:"client,omitempty"`
}
