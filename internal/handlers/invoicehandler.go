package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
	"github.com/kashyap-d/Solo-Suite-sub000/internal/services"
)

type InvoiceHandler struct {
	Invoices *services.InvoiceService
}

func NewInvoiceHandler(invoices *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Invoices: invoices}
}

// Render is POST /invoices/render: plain invoice records in, PDF out.
// Nothing is persisted.
func (h *InvoiceHandler) Render(c *gin.Context) {
	var req dtos.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	pdf, err := h.Invoices.Render(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="invoice-`+req.InvoiceNumber+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
