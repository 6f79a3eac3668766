package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	departmentdomain "github.com/atriumhq/atrium/internal/department/domain"
)

type createDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Budget      string `json:"budget"`
	Manager     string `json:"manager"`
	Color       string `json:"color"`
}

type updateDepartmentRequest struct {
	Description *string `json:"description"`
	Budget      *string `json:"budget"`
	Manager     *string `json:"manager"`
	Color       *string `json:"color"`
}

func (s *Server) CreateDepartment(c *gin.Context) {
	var req createDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.departmentSvc.Create(c.Request.Context(), departmentdomain.CreateDepartmentRequest{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Budget:      strings.TrimSpace(req.Budget),
		Manager:     strings.TrimSpace(req.Manager),
		Color:       strings.TrimSpace(req.Color),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "department.create", "department", resp.ID.String(), map[string]any{
		"name": resp.Name,
	})

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListDepartments(c *gin.Context) {
	resp, err := s.departmentSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetDepartment(c *gin.Context) {
	resp, err := s.departmentSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateDepartment(c *gin.Context) {
	var req updateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.departmentSvc.Update(c.Request.Context(), departmentdomain.UpdateDepartmentRequest{
		ID:          strings.TrimSpace(c.Param("id")),
		Description: req.Description,
		Budget:      req.Budget,
		Manager:     req.Manager,
		Color:       req.Color,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "department.update", "department", resp.ID.String(), nil)

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteDepartment(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.departmentSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "department.delete", "department", id, nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
