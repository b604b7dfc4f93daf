package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gadsdencode/pixprofolio/internal/middleware"
	"github.com/gadsdencode/pixprofolio/internal/models"
	"github.com/gadsdencode/pixprofolio/internal/services"
	"github.com/gadsdencode/pixprofolio/internal/services/dto"
)

type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
	}
}

func (h *PortfolioHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/portfolio", h.List)
	rg.GET("/portfolio/featured", h.Featured)

	owner := rg.Group("/portfolio")
	owner.Use(middleware.RequireRole(models.UserRoleOwner))
	{
		owner.POST("", h.Create)
		owner.PUT("/:id", h.Update)
		owner.DELETE("/:id", h.Delete)
	}

	client := rg.Group("/client")
	client.Use(middleware.RequireRole(models.UserRoleClient))
	{
		client.GET("/portfolio", h.ListOwn)
	}
}

// ListOwn backs the client dashboard gallery tab. Per-client deliveries are
// not modeled yet, so the list is always empty.
func (h *PortfolioHandler) ListOwn(c *gin.Context) {
	c.JSON(http.StatusOK, []models.PortfolioItem{})
}

// List is public; an optional ?category= filter narrows the gallery.
func (h *PortfolioHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	items, err := h.portfolioService.List(db, c.Query("category"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *PortfolioHandler) Featured(c *gin.Context) {
	db := h.GetDB(c)

	items, err := h.portfolioService.Featured(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	var req dto.CreatePortfolioItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	item, err := h.portfolioService.Create(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "item": item})
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	var req dto.UpdatePortfolioItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	item, err := h.portfolioService.Update(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.portfolioService.Delete(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
