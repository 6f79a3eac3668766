package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	invoicedomain "github.com/atriumhq/atrium/internal/invoice/domain"
	"github.com/atriumhq/atrium/pkg/db/pagination"
)

type createInvoiceRequest struct {
	BuyerName       string `json:"buyer_name"`
	InvoiceNumber   string `json:"invoice_number"`
	Amount          string `json:"amount"`
	Date            string `json:"date"`
	Company         string `json:"company"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shipping_address"`
	RawText         string `json:"raw_text"`
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.Create(c.Request.Context(), s.actor(c), invoicedomain.CreateInvoiceRequest{
		BuyerName:       strings.TrimSpace(req.BuyerName),
		InvoiceNumber:   strings.TrimSpace(req.InvoiceNumber),
		Amount:          strings.TrimSpace(req.Amount),
		Date:            strings.TrimSpace(req.Date),
		Company:         strings.TrimSpace(req.Company),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		ShippingAddress: strings.TrimSpace(req.ShippingAddress),
		RawText:         req.RawText,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "invoice.create", "invoice", resp.ID.String(), map[string]any{
		"invoice_number": resp.InvoiceNumber,
	})

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListInvoices(c *gin.Context) {
	var query struct {
		pagination.Pagination
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.invoiceSvc.List(c.Request.Context(), s.actor(c), invoicedomain.ListInvoiceRequest{
		PageToken: query.PageToken,
		PageSize:  query.PageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetInvoice(c *gin.Context) {
	resp, err := s.invoiceSvc.GetByID(c.Request.Context(), s.actor(c), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) InvoiceSummary(c *gin.Context) {
	resp, err := s.invoiceSvc.Summarize(c.Request.Context(), s.actor(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.invoiceSvc.Delete(c.Request.Context(), s.actor(c), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "invoice.delete", "invoice", id, nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
