package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gadsdencode/pixprofolio/internal/middleware"
	"github.com/gadsdencode/pixprofolio/internal/models"
	"github.com/gadsdencode/pixprofolio/internal/services"
	"github.com/gadsdencode/pixprofolio/internal/services/dto"
)

type ContactHandler struct {
	*BaseHandler
	inquiryService services.InquiryService
}

func NewContactHandler(base *BaseHandler, inquiryService services.InquiryService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		inquiryService: inquiryService,
	}
}

func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Create)

	owner := rg.Group("")
	owner.Use(middleware.RequireRole(models.UserRoleOwner))
	{
		owner.GET("/contact-inquiries", h.List)
		owner.PATCH("/contact-inquiries/:id/status", h.UpdateStatus)
	}

	client := rg.Group("/client")
	client.Use(middleware.RequireRole(models.UserRoleClient))
	{
		client.GET("/requests", h.ListOwn)
	}
}

// Create is the public contact form endpoint.
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateInquiryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	inquiry, err := h.inquiryService.Create(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "inquiry": inquiry})
}

func (h *ContactHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	inquiries, err := h.inquiryService.ListAll(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, inquiries)
}

// ListOwn returns the inquiries the session user submitted, matched by
// normalized email.
func (h *ContactHandler) ListOwn(c *gin.Context) {
	user := middleware.CurrentUser(c)
	db := h.GetDB(c)

	inquiries, err := h.inquiryService.ListByEmail(db, user.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, inquiries)
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateInquiryStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	inquiry, err := h.inquiryService.UpdateStatus(db, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "inquiry": inquiry})
}
