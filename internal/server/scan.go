package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// maxScanUploadBytes caps invoice image uploads.
const maxScanUploadBytes = 10 << 20

func (s *Server) ProcessScan(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		AbortWithError(c, newValidationError("file", "file_required", "Please select a file to upload"))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxScanUploadBytes+1))
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if len(image) > maxScanUploadBytes {
		AbortWithError(c, newValidationError("file", "file_too_large", "file exceeds the upload limit"))
		return
	}

	review, err := s.scanSvc.Process(c.Request.Context(), image)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": review})
}

func (s *Server) ConfirmScan(c *gin.Context) {
	scanID := strings.TrimSpace(c.Param("scanId"))

	result, err := s.scanSvc.Confirm(c.Request.Context(), s.actor(c), scanID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "invoice.confirm", "invoice", result.Invoice.ID.String(), map[string]any{
		"scan_id":        scanID,
		"buyer_name":     result.Invoice.BuyerName,
		"client_created": result.Client != nil,
	})

	c.JSON(http.StatusOK, gin.H{"data": result})
}
