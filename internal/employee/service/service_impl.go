package service

import (
	"context"
	"strings"
	"time"

	"github.com/atriumhq/atrium/internal/employee/domain"
	"github.com/atriumhq/atrium/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("employee.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateEmployeeRequest) (domain.Employee, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Employee{}, domain.ErrInvalidName
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = "Active"
	}

	now := time.Now().UTC()
	employee := domain.Employee{
		ID:         s.genID.Generate(),
		Name:       name,
		Avatar:     strings.TrimSpace(req.Avatar),
		Title:      strings.TrimSpace(req.Title),
		Department: strings.TrimSpace(req.Department),
		Location:   strings.TrimSpace(req.Location),
		Salary:     strings.TrimSpace(req.Salary),
		StartDate:  strings.TrimSpace(req.StartDate),
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, &employee); err != nil {
		return domain.Employee{}, err
	}
	return employee, nil
}

func (s *Service) List(ctx context.Context, req domain.ListEmployeeRequest) (domain.ListEmployeeResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, domain.ListEmployeeFilter{
		Department: strings.TrimSpace(req.Department),
		Status:     strings.TrimSpace(req.Status),
		Name:       strings.TrimSpace(req.Name),
	}, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return domain.ListEmployeeResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(employee *domain.Employee) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        employee.ID.String(),
			CreatedAt: employee.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo.HasMore && len(items) > pageSize {
		items = items[:pageSize]
	}

	employees := make([]domain.Employee, 0, len(items))
	for _, item := range items {
		employees = append(employees, *item)
	}

	return domain.ListEmployeeResponse{PageInfo: *pageInfo, Employees: employees}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Employee, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.Employee{}, err
	}

	item, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		return domain.Employee{}, err
	}
	if item == nil {
		return domain.Employee{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateEmployeeRequest) (domain.Employee, error) {
	parsed, err := parseID(req.ID)
	if err != nil {
		return domain.Employee{}, err
	}

	fields := map[string]any{"updated_at": time.Now().UTC()}
	setString(fields, "name", req.Name)
	setString(fields, "avatar", req.Avatar)
	setString(fields, "title", req.Title)
	setString(fields, "department", req.Department)
	setString(fields, "location", req.Location)
	setString(fields, "salary", req.Salary)
	setString(fields, "start_date", req.StartDate)
	setString(fields, "status", req.Status)

	if name, ok := fields["name"].(string); ok && name == "" {
		return domain.Employee{}, domain.ErrInvalidName
	}

	if err := s.repo.UpdateFields(ctx, parsed, fields); err != nil {
		return domain.Employee{}, err
	}

	item, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		return domain.Employee{}, err
	}
	if item == nil {
		return domain.Employee{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, parsed)
}

func setString(fields map[string]any, column string, value *string) {
	if value != nil {
		fields[column] = strings.TrimSpace(*value)
	}
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
