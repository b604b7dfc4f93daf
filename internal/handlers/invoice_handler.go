package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gadsdencode/pixprofolio/internal/middleware"
	"github.com/gadsdencode/pixprofolio/internal/models"
	"github.com/gadsdencode/pixprofolio/internal/services"
	"github.com/gadsdencode/pixprofolio/internal/services/dto"
)

type InvoiceHandler struct {
	*BaseHandler
	invoiceService services.InvoiceService
}

func NewInvoiceHandler(base *BaseHandler, invoiceService services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		BaseHandler:    base,
		invoiceService: invoiceService,
	}
}

func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	owner := rg.Group("")
	owner.Use(middleware.RequireRole(models.UserRoleOwner))
	{
		owner.POST("/create-invoice", h.Create)
		owner.GET("/invoices", h.List)
		owner.PATCH("/invoices/:id/status", h.UpdateStatus)
	}

	client := rg.Group("/client")
	client.Use(middleware.RequireRole(models.UserRoleClient))
	{
		client.GET("/invoices", h.ListOwn)
	}
}

// Create runs the full billing pipeline. Validation happens before any
// provider call is made.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	invoice, err := h.invoiceService.CreateAndSend(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"invoiceId":  invoice.StripeInvoiceID,
		"invoiceUrl": invoice.HostedInvoiceURL,
	})
}

func (h *InvoiceHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	invoices, err := h.invoiceService.ListAll(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// ListOwn returns the invoices correlated with the session user's email.
func (h *InvoiceHandler) ListOwn(c *gin.Context) {
	user := middleware.CurrentUser(c)
	db := h.GetDB(c)

	invoices, err := h.invoiceService.ListForEmail(db, user.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateInvoiceStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	invoice, err := h.invoiceService.UpdateStatus(db, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "invoice": invoice})
}
