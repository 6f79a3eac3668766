package domain

import (
	"context"
	"errors"

	"github.com/atriumhq/atrium/pkg/db/pagination"
)

type CreateClientRequest struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Address string
}

type UpdateClientRequest struct {
	ID      string
	Company *string
	Email   *string
	Phone   *string
	Address *string
}

type ListClientRequest struct {
	PageToken string
	PageSize  int
	Name      string
	Company   string
}

type ListClientResponse struct {
	pagination.PageInfo
	Clients []Client `json:"clients"`
}

type Service interface {
	Create(ctx context.Context, req CreateClientRequest) (Client, error)
	List(ctx context.Context, req ListClientRequest) (ListClientResponse, error)
	GetByID(ctx context.Context, id string) (Client, error)
	FindByName(ctx context.Context, name string) (*Client, error)
	Update(ctx context.Context, req UpdateClientRequest) (Client, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
	ErrNameTaken   = errors.New("client_name_taken")
)
