package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	invoicedomain "github.com/atriumhq/atrium/internal/invoice/domain"
)

const dashboardRecentInvoices = 5

type dashboardResponse struct {
	EmployeeCount   int64                  `json:"employee_count"`
	DepartmentCount int64                  `json:"department_count"`
	ProjectCount    int64                  `json:"project_count"`
	ClientCount     int64                  `json:"client_count"`
	Invoices        invoicedomain.Summary  `json:"invoices"`
	RecentInvoices  []invoicedomain.Invoice `json:"recent_invoices"`
}

// Dashboard aggregates the headline numbers in one request so the overview
// page loads with a single round trip.
func (s *Server) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	actor := s.actor(c)

	employeeCount, err := s.employeeRepo.Count(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	departmentCount, err := s.departmentRepo.Count(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	projectCount, err := s.projectRepo.Count(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	clientCount, err := s.clientRepo.Count(ctx, s.db)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	summary, err := s.invoiceSvc.Summarize(ctx, actor)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	recent, err := s.invoiceSvc.Recent(ctx, actor, dashboardRecentInvoices)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dashboardResponse{
		EmployeeCount:   employeeCount,
		DepartmentCount: departmentCount,
		ProjectCount:    projectCount,
		ClientCount:     clientCount,
		Invoices:        summary,
		RecentInvoices:  recent,
	}})
}
