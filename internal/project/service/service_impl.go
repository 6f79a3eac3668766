package service

import (
	"context"
	"strings"
	"time"

	"github.com/atriumhq/atrium/internal/project/domain"
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
		log:   p.Log.Named("project.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateProjectRequest) (domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Project{}, domain.ErrInvalidName
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = domain.StatusNotStarted
	}
	if !domain.ValidStatus(status) {
		return domain.Project{}, domain.ErrInvalidStatus
	}

	priority := strings.TrimSpace(req.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(priority) {
		return domain.Project{}, domain.ErrInvalidPriority
	}

	clientID, err := parseOptionalID(req.ClientID)
	if err != nil {
		return domain.Project{}, err
	}
	departmentID, err := parseOptionalID(req.DepartmentID)
	if err != nil {
		return domain.Project{}, err
	}

	now := time.Now().UTC()
	project := domain.Project{
		ID:           s.genID.Generate(),
		Name:         name,
		Description:  strings.TrimSpace(req.Description),
		Status:       status,
		Priority:     priority,
		StartDate:    strings.TrimSpace(req.StartDate),
		EndDate:      strings.TrimSpace(req.EndDate),
		Budget:       strings.TrimSpace(req.Budget),
		ClientID:     clientID,
		DepartmentID: departmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, &project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *Service) List(ctx context.Context, req domain.ListProjectRequest) (domain.ListProjectResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	clientID, err := parseOptionalID(req.ClientID)
	if err != nil {
		return domain.ListProjectResponse{}, err
	}
	departmentID, err := parseOptionalID(req.DepartmentID)
	if err != nil {
		return domain.ListProjectResponse{}, err
	}

	items, err := s.repo.List(ctx, domain.ListProjectFilter{
		Status:       strings.TrimSpace(req.Status),
		Priority:     strings.TrimSpace(req.Priority),
		ClientID:     clientID,
		DepartmentID: departmentID,
	}, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return domain.ListProjectResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(project *domain.Project) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        project.ID.String(),
			CreatedAt: project.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo.HasMore && len(items) > pageSize {
		items = items[:pageSize]
	}

	projects := make([]domain.Project, 0, len(items))
	for _, item := range items {
		projects = append(projects, *item)
	}

	return domain.ListProjectResponse{PageInfo: *pageInfo, Projects: projects}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Project, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.Project{}, err
	}

	item, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		return domain.Project{}, err
	}
	if item == nil {
		return domain.Project{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateProjectRequest) (domain.Project, error) {
	parsed, err := parseID(req.ID)
	if err != nil {
		return domain.Project{}, err
	}

	fields := map[string]any{"updated_at": time.Now().UTC()}
	if req.Description != nil {
		fields["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		if !domain.ValidStatus(status) {
			return domain.Project{}, domain.ErrInvalidStatus
		}
		fields["status"] = status
	}
	if req.Priority != nil {
		priority := strings.TrimSpace(*req.Priority)
		if !domain.ValidPriority(priority) {
			return domain.Project{}, domain.ErrInvalidPriority
		}
		fields["priority"] = priority
	}
	if req.StartDate != nil {
		fields["start_date"] = strings.TrimSpace(*req.StartDate)
	}
	if req.EndDate != nil {
		fields["end_date"] = strings.TrimSpace(*req.EndDate)
	}
	if req.Budget != nil {
		fields["budget"] = strings.TrimSpace(*req.Budget)
	}
	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			return domain.Project{}, domain.ErrInvalidProgress
		}
		fields["progress"] = *req.Progress
	}

	if err := s.repo.UpdateFields(ctx, parsed, fields); err != nil {
		return domain.Project{}, err
	}

	item, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		return domain.Project{}, err
	}
	if item == nil {
		return domain.Project{}, domain.ErrNotFound
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

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func parseOptionalID(value string) (*snowflake.ID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	id, err := snowflake.ParseString(trimmed)
	if err != nil || id == 0 {
		return nil, domain.ErrInvalidID
	}
	return &id, nil
}
