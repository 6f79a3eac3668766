package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	auditdomain "github.com/atriumhq/atrium/internal/audit/domain"
	employeedomain "github.com/atriumhq/atrium/internal/employee/domain"
	"github.com/atriumhq/atrium/pkg/db/pagination"
)

type createEmployeeRequest struct {
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Location   string `json:"location"`
	Salary     string `json:"salary"`
	StartDate  string `json:"start_date"`
	Status     string `json:"status"`
}

type updateEmployeeRequest struct {
	Name       *string `json:"name"`
	Avatar     *string `json:"avatar"`
	Title      *string `json:"title"`
	Department *string `json:"department"`
	Location   *string `json:"location"`
	Salary     *string `json:"salary"`
	StartDate  *string `json:"start_date"`
	Status     *string `json:"status"`
}

func (s *Server) CreateEmployee(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.employeeSvc.Create(c.Request.Context(), employeedomain.CreateEmployeeRequest{
		Name:       strings.TrimSpace(req.Name),
		Avatar:     strings.TrimSpace(req.Avatar),
		Title:      strings.TrimSpace(req.Title),
		Department: strings.TrimSpace(req.Department),
		Location:   strings.TrimSpace(req.Location),
		Salary:     strings.TrimSpace(req.Salary),
		StartDate:  strings.TrimSpace(req.StartDate),
		Status:     strings.TrimSpace(req.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "employee.create", "employee", resp.ID.String(), map[string]any{
		"name": resp.Name,
	})

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListEmployees(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Department string `form:"department"`
		Status     string `form:"status"`
		Name       string `form:"name"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.employeeSvc.List(c.Request.Context(), employeedomain.ListEmployeeRequest{
		PageToken:  query.PageToken,
		PageSize:   query.PageSize,
		Department: strings.TrimSpace(query.Department),
		Status:     strings.TrimSpace(query.Status),
		Name:       strings.TrimSpace(query.Name),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetEmployee(c *gin.Context) {
	resp, err := s.employeeSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateEmployee(c *gin.Context) {
	var req updateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.employeeSvc.Update(c.Request.Context(), employeedomain.UpdateEmployeeRequest{
		ID:         strings.TrimSpace(c.Param("id")),
		Name:       req.Name,
		Avatar:     req.Avatar,
		Title:      req.Title,
		Department: req.Department,
		Location:   req.Location,
		Salary:     req.Salary,
		StartDate:  req.StartDate,
		Status:     req.Status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "employee.update", "employee", resp.ID.String(), nil)

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteEmployee(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.employeeSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "employee.delete", "employee", id, nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// recordAudit writes a best-effort audit row for a mutating request.
func (s *Server) recordAudit(c *gin.Context, action, targetType, targetID string, metadata map[string]any) {
	_ = s.auditSvc.Record(c.Request.Context(), auditdomain.Entry{
		Actor:      s.actor(c),
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Metadata:   metadata,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
}
