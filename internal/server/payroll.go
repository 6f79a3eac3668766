package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListPayroll(c *gin.Context) {
	entries, err := s.payrollSvc.Entries(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (s *Server) PayrollSummary(c *gin.Context) {
	summary, err := s.payrollSvc.Summarize(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summary})
}
