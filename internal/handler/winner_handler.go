package handler

import (
	"net/http"

	"incentivehub/internal/middleware"
	"incentivehub/internal/model"
	"incentivehub/internal/service"
	"incentivehub/pkg/response"

	"github.com/gin-gonic/gin"
)

type WinnerHandler struct {
	winnerService service.WinnerService
	auth          *middleware.Auth
}

func NewWinnerHandler(winnerService service.WinnerService, auth *middleware.Auth) *WinnerHandler {
	return &WinnerHandler{winnerService: winnerService, auth: auth}
}

func (h *WinnerHandler) RegisterRoutes(router *gin.RouterGroup) {
	winners := router.Group("/api/winners")
	{
		winners.GET("", h.auth.RequireRole(model.RoleSeller, model.RoleAdmin), h.List)
		winners.POST("/refresh", h.auth.RequireRole(model.RoleAdmin), h.Refresh)
	}
}

func (h *WinnerHandler) List(c *gin.Context) {
	winners, err := h.winnerService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, winners))
}

// Refresh re-fetches the remote winners feed. A remote failure is reported
// to the caller instead of silently leaving the gallery stale.
func (h *WinnerHandler) Refresh(c *gin.Context) {
	if err := h.winnerService.Refresh(c.Request.Context()); err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}

	winners, err := h.winnerService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, winners))
}
