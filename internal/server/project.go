package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	projectdomain "github.com/atriumhq/atrium/internal/project/domain"
	"github.com/atriumhq/atrium/pkg/db/pagination"
)

type createProjectRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Budget       string `json:"budget"`
	ClientID     string `json:"client_id"`
	DepartmentID string `json:"department_id"`
}

type updateProjectRequest struct {
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Budget      *string `json:"budget"`
	Progress    *int    `json:"progress"`
}

func (s *Server) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.projectSvc.Create(c.Request.Context(), projectdomain.CreateProjectRequest{
		Name:         strings.TrimSpace(req.Name),
		Description:  strings.TrimSpace(req.Description),
		Status:       strings.TrimSpace(req.Status),
		Priority:     strings.TrimSpace(req.Priority),
		StartDate:    strings.TrimSpace(req.StartDate),
		EndDate:      strings.TrimSpace(req.EndDate),
		Budget:       strings.TrimSpace(req.Budget),
		ClientID:     strings.TrimSpace(req.ClientID),
		DepartmentID: strings.TrimSpace(req.DepartmentID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "project.create", "project", resp.ID.String(), map[string]any{
		"name": resp.Name,
	})

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListProjects(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Status       string `form:"status"`
		Priority     string `form:"priority"`
		ClientID     string `form:"client_id"`
		DepartmentID string `form:"department_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.projectSvc.List(c.Request.Context(), projectdomain.ListProjectRequest{
		PageToken:    query.PageToken,
		PageSize:     query.PageSize,
		Status:       strings.TrimSpace(query.Status),
		Priority:     strings.TrimSpace(query.Priority),
		ClientID:     strings.TrimSpace(query.ClientID),
		DepartmentID: strings.TrimSpace(query.DepartmentID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetProject(c *gin.Context) {
	resp, err := s.projectSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateProject(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.projectSvc.Update(c.Request.Context(), projectdomain.UpdateProjectRequest{
		ID:          strings.TrimSpace(c.Param("id")),
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Progress:    req.Progress,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "project.update", "project", resp.ID.String(), nil)

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteProject(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.projectSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "project.delete", "project", id, nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
