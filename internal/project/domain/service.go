package domain

import (
	"context"
	"errors"

	"github.com/atriumhq/atrium/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Insert(ctx context.Context, project *Project) error
	FindByID(ctx context.Context, id snowflake.ID) (*Project, error)
	List(ctx context.Context, filter ListProjectFilter, page pagination.Pagination) ([]*Project, error)
	Count(ctx context.Context) (int64, error)
	UpdateFields(ctx context.Context, id snowflake.ID, fields map[string]any) error
	Delete(ctx context.Context, id snowflake.ID) error
}

type ListProjectFilter struct {
	Status       string
	Priority     string
	ClientID     *snowflake.ID
	DepartmentID *snowflake.ID
}

type CreateProjectRequest struct {
	Name         string
	Description  string
	Status       string
	Priority     string
	StartDate    string
	EndDate      string
	Budget       string
	ClientID     string
	DepartmentID string
}

type UpdateProjectRequest struct {
	ID          string
	Description *string
	Status      *string
	Priority    *string
	StartDate   *string
	EndDate     *string
	Budget      *string
	Progress    *int
}

type ListProjectRequest struct {
	PageToken    string
	PageSize     int
	Status       string
	Priority     string
	ClientID     string
	DepartmentID string
}

type ListProjectResponse struct {
	pagination.PageInfo
	Projects []Project `json:"projects"`
}

type Service interface {
	Create(ctx context.Context, req CreateProjectRequest) (Project, error)
	List(ctx context.Context, req ListProjectRequest) (ListProjectResponse, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Update(ctx context.Context, req UpdateProjectRequest) (Project, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidStatus   = errors.New("invalid_status")
	ErrInvalidPriority = errors.New("invalid_priority")
	ErrInvalidProgress = errors.New("invalid_progress")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
