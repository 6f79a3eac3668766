package domain

import (
	"context"
	"errors"

	"github.com/atriumhq/atrium/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Insert(ctx context.Context, employee *Employee) error
	FindByID(ctx context.Context, id snowflake.ID) (*Employee, error)
	List(ctx context.Context, filter ListEmployeeFilter, page pagination.Pagination) ([]*Employee, error)
	All(ctx context.Context) ([]*Employee, error)
	Count(ctx context.Context) (int64, error)
	CountByDepartment(ctx context.Context, department string) (int64, error)
	UpdateFields(ctx context.Context, id snowflake.ID, fields map[string]any) error
	Delete(ctx context.Context, id snowflake.ID) error
}

type ListEmployeeFilter struct {
	Department string
	Status     string
	Name       string
}

type CreateEmployeeRequest struct {
	Name       string
	Avatar     string
	Title      string
	Department string
	Location   string
	Salary     string
	StartDate  string
	Status     string
}

type UpdateEmployeeRequest struct {
	ID         string
	Name       *string
	Avatar     *string
	Title      *string
	Department *string
	Location   *string
	Salary     *string
	StartDate  *string
	Status     *string
}

type ListEmployeeRequest struct {
	PageToken  string
	PageSize   int
	Department string
	Status     string
	Name       string
}

type ListEmployeeResponse struct {
	pagination.PageInfo
	Employees []Employee `json:"employees"`
}

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	List(ctx context.Context, req ListEmployeeRequest) (ListEmployeeResponse, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)
