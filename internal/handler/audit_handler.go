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

type AuditHandler struct {
	auditService service.AuditService
	auth         *middleware.Auth
}

func NewAuditHandler(auditService service.AuditService, auth *middleware.Auth) *AuditHandler {
	return &AuditHandler{auditService: auditService, auth: auth}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	audit := router.Group("/api/audit", h.auth.RequireRole(model.RoleAdmin))
	{
		audit.GET("", h.List)
	}
}

func (h *AuditHandler) List(c *gin.Context) {
	entries, err := h.auditService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	params := pagination.Parse(c)
	page, total := pagination.Slice(entries, params)
	c.JSON(http.StatusOK, response.List(http.StatusOK, page, total, params.Page, params.Limit))
}
