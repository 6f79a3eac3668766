package domain

import (
	"context"
	"errors"

	"github.com/atriumhq/atrium/internal/identity"
	"github.com/atriumhq/atrium/pkg/db/pagination"
)

type CreateInvoiceRequest struct {
	BuyerName       string
	InvoiceNumber   string
	Amount          string
	Date            string
	Company         string
	Email           string
	Phone           string
	ShippingAddress string
	RawText         string
}

type ListInvoiceRequest struct {
	PageToken string
	PageSize  int
}

type ListInvoiceResponse struct {
	pagination.PageInfo
	Invoices []Invoice `json:"invoices"`
}

// Summary backs the financial widgets on the dashboard.
type Summary struct {
	InvoiceCount int64   `json:"invoice_count"`
	TotalAmount  float64 `json:"total_amount"`
}

type Service interface {
	Create(ctx context.Context, actor identity.Identity, req CreateInvoiceRequest) (Invoice, error)
	List(ctx context.Context, actor identity.Identity, req ListInvoiceRequest) (ListInvoiceResponse, error)
	GetByID(ctx context.Context, actor identity.Identity, id string) (Invoice, error)
	Recent(ctx context.Context, actor identity.Identity, limit int) ([]Invoice, error)
	Summarize(ctx context.Context, actor identity.Identity) (Summary, error)
	Delete(ctx context.Context, actor identity.Identity, id string) error
}

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
