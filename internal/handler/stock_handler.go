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

type StockHandler struct {
	stockService service.StockService
	auth         *middleware.Auth
}

func NewStockHandler(stockService service.StockService, auth *middleware.Auth) *StockHandler {
	return &StockHandler{stockService: stockService, auth: auth}
}

func (h *StockHandler) RegisterRoutes(router *gin.RouterGroup) {
	stock := router.Group("/api/stock", h.auth.RequireRole(model.RoleSeller, model.RoleAdmin))
	{
		stock.POST("", h.Create)
		stock.GET("", h.List)
	}
}

func (h *StockHandler) Create(c *gin.Context) {
	var req service.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	snapshot, err := h.stockService.Create(c.Request.Context(), middleware.SubjectID(c), req)
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, snapshot))
}

func (h *StockHandler) List(c *gin.Context) {
	snapshots, err := h.stockService.List(c.Request.Context(), scopeSeller(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	params := pagination.Parse(c)
	page, total := pagination.Slice(snapshots, params)
	c.JSON(http.StatusOK, response.List(http.StatusOK, page, total, params.Page, params.Limit))
}
