package service

import (
	"context"
	"strings"
	"time"

	"github.com/atriumhq/atrium/internal/department/domain"
	employeedomain "github.com/atriumhq/atrium/internal/employee/domain"
	"github.com/atriumhq/atrium/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log       *zap.Logger
	GenID     *snowflake.Node
	Repo      domain.Repository
	Employees employeedomain.Repository
}

type Service struct {
	log       *zap.Logger
	genID     *snowflake.Node
	repo      domain.Repository
	employees employeedomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:       p.Log.Named("department.service"),
		genID:     p.GenID,
		repo:      p.Repo,
		employees: p.Employees,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateDepartmentRequest) (domain.Department, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Department{}, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	department := domain.Department{
		ID:          s.genID.Generate(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Budget:      strings.TrimSpace(req.Budget),
		Manager:     strings.TrimSpace(req.Manager),
		Color:       strings.TrimSpace(req.Color),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, &department); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Department{}, domain.ErrNameTaken
		}
		return domain.Department{}, err
	}
	return department, nil
}

func (s *Service) List(ctx context.Context) ([]domain.View, error) {
	departments, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.View, 0, len(departments))
	for _, department := range departments {
		count, err := s.employees.CountByDepartment(ctx, department.Name)
		if err != nil {
			return nil, err
		}
		views = append(views, domain.View{Department: *department, EmployeeCount: count})
	}
	return views, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.View, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.View{}, err
	}

	department, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		return domain.View{}, err
	}
	if department == nil {
		return domain.View{}, domain.ErrNotFound
	}

	count, err := s.employees.CountByDepartment(ctx, department.Name)
	if err != nil {
		return domain.View{}, err
	}
	return domain.View{Department: *department, EmployeeCount: count}, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateDepartmentRequest) (domain.Department, error) {
	parsed, err := parseID(req.ID)
	if err != nil {
		return domain.Department{}, err
	}

	fields := map[string]any{"updated_at": time.Now().UTC()}
	if req.Description != nil {
		fields["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Budget != nil {
		fields["budget"] = strings.TrimSpace(*req.Budget)
	}
	if req.Manager != nil {
		fields["manager"] = strings.TrimSpace(*req.Manager)
	}
	if req.Color != nil {
		fields["color"] = strings.TrimSpace(*req.Color)
	}

	if err := s.repo.UpdateFields(ctx, parsed, fields); err != nil {
		return domain.Department{}, err
	}

	department, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		return domain.Department{}, err
	}
	if department == nil {
		return domain.Department{}, domain.ErrNotFound
	}
	return *department, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, parsed)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
