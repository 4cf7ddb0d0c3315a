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

type PurchaseHandler struct {
	purchaseService service.PurchaseService
	auth            *middleware.Auth
}

func NewPurchaseHandler(purchaseService service.PurchaseService, auth *middleware.Auth) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService, auth: auth}
}

func (h *PurchaseHandler) RegisterRoutes(router *gin.RouterGroup) {
	purchases := router.Group("/api/purchases")
	{
		purchases.POST("", h.auth.RequireRole(model.RoleSeller, model.RoleAdmin), h.Create)
		purchases.GET("", h.auth.RequireRole(model.RoleSeller, model.RoleAdmin), h.List)
		purchases.PUT("/:id/approve", h.auth.RequireRole(model.RoleAdmin), h.Approve)
		purchases.PUT("/:id/reject", h.auth.RequireRole(model.RoleAdmin), h.Reject)
	}
}

func (h *PurchaseHandler) Create(c *gin.Context) {
	var req service.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	purchase, err := h.purchaseService.Create(c.Request.Context(), middleware.SubjectID(c), req)
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, purchase))
}

func (h *PurchaseHandler) List(c *gin.Context) {
	purchases, err := h.purchaseService.List(c.Request.Context(), scopeSeller(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	params := pagination.Parse(c)
	page, total := pagination.Slice(purchases, params)
	c.JSON(http.StatusOK, response.List(http.StatusOK, page, total, params.Page, params.Limit))
}

func (h *PurchaseHandler) Approve(c *gin.Context) {
	purchase, err := h.purchaseService.Approve(c.Request.Context(), c.Param("id"), middleware.SubjectID(c))
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, purchase))
}

func (h *PurchaseHandler) Reject(c *gin.Context) {
	var req service.ReviewCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// comments are optional, an empty body is fine
		req.Comments = ""
	}

	purchase, err := h.purchaseService.Reject(c.Request.Context(), c.Param("id"), middleware.SubjectID(c), req.Comments)
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, purchase))
}
