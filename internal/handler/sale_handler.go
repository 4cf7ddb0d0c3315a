package handler

import (
	"net/http"

	"incentivehub/internal/middleware"
	"incentivehub/internal/model"
	"incentivehub/internal/service"
	"incentivehub/pkg/pagination"
	"incentivehub/pkg/response"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	saleService service.SaleService
	auth        *middleware.Auth
}

func NewSaleHandler(saleService service.SaleService, auth *middleware.Auth) *SaleHandler {
	return &SaleHandler{saleService: saleService, auth: auth}
}

func (h *SaleHandler) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/api/sales")
	{
		sales.POST("", h.auth.RequireRole(model.RoleSeller, model.RoleAdmin), h.Create)
		sales.GET("", h.auth.RequireRole(model.RoleSeller, model.RoleAdmin), h.List)
		sales.PUT("/:id/complete", h.auth.RequireRole(model.RoleAdmin), h.Complete)
	}
}

func (h *SaleHandler) Create(c *gin.Context) {
	var req service.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	sale, err := h.saleService.Create(c.Request.Context(), middleware.SubjectID(c), req)
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, sale))
}

func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.saleService.List(c.Request.Context(), scopeSeller(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	params := pagination.Parse(c)
	page, total := pagination.Slice(sales, params)
	c.JSON(http.StatusOK, response.List(http.StatusOK, page, total, params.Page, params.Limit))
}

func (h *SaleHandler) Complete(c *gin.Context) {
	sale, err := h.saleService.Complete(c.Request.Context(), c.Param("id"), middleware.SubjectID(c))
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, sale))
}
