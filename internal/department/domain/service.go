package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Insert(ctx context.Context, department *Department) error
	FindByID(ctx context.Context, id snowflake.ID) (*Department, error)
	All(ctx context.Context) ([]*Department, error)
	Count(ctx context.Context) (int64, error)
	UpdateFields(ctx context.Context, id snowflake.ID, fields map[string]any) error
	Delete(ctx context.Context, id snowflake.ID) error
}

type CreateDepartmentRequest struct {
	Name        string
	Description string
	Budget      string
	Manager     string
	Color       string
}

type UpdateDepartmentRequest struct {
	ID          string
	Description *string
	Budget      *string
	Manager     *string
	Color       *string
}

type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (Department, error)
	List(ctx context.Context) ([]View, error)
	GetByID(ctx context.Context, id string) (View, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) (Department, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
	ErrNameTaken   = errors.New("department_name_taken")
)
