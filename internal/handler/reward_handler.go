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

type RewardHandler struct {
	rewardService service.RewardService
	auth          *middleware.Auth
}

func NewRewardHandler(rewardService service.RewardService, auth *middleware.Auth) *RewardHandler {
	return &RewardHandler{rewardService: rewardService, auth: auth}
}

func (h *RewardHandler) RegisterRoutes(router *gin.RouterGroup) {
	rewards := router.Group("/api/rewards")
	{
		rewards.GET("", h.auth.RequireRole(model.RoleSeller, model.RoleAdmin), h.List)
		rewards.POST("", h.auth.RequireRole(model.RoleAdmin), h.Create)
		rewards.PUT("/:id", h.auth.RequireRole(model.RoleAdmin), h.Update)
		rewards.DELETE("/:id", h.auth.RequireRole(model.RoleAdmin), h.Delete)
		rewards.POST("/:id/redeem", h.auth.RequireRole(model.RoleSeller), h.Redeem)
	}

	requests := router.Group("/api/reward-requests")
	{
		requests.GET("", h.auth.RequireRole(model.RoleSeller, model.RoleAdmin), h.ListRequests)
		requests.PUT("/:id/review", h.auth.RequireRole(model.RoleAdmin), h.Review)
	}
}

func (h *RewardHandler) Create(c *gin.Context) {
	var req service.CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	reward, err := h.rewardService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, reward))
}

func (h *RewardHandler) List(c *gin.Context) {
	rewards, err := h.rewardService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rewards))
}

func (h *RewardHandler) Update(c *gin.Context) {
	var req service.UpdateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	reward, err := h.rewardService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, reward))
}

func (h *RewardHandler) Delete(c *gin.Context) {
	if err := h.rewardService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": true}))
}

// Redeem creates a pending redemption for the authenticated seller.
// Insufficient points or an empty stock refuse with 422.
func (h *RewardHandler) Redeem(c *gin.Context) {
	request, err := h.rewardService.Redeem(c.Request.Context(), middleware.SubjectID(c), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, request))
}

func (h *RewardHandler) ListRequests(c *gin.Context) {
	userID := ""
	if middleware.SubjectRole(c) == model.RoleSeller {
		userID = middleware.SubjectID(c)
	} else {
		userID = c.Query("user")
	}

	requests, err := h.rewardService.ListRequests(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	params := pagination.Parse(c)
	page, total := pagination.Slice(requests, params)
	c.JSON(http.StatusOK, response.List(http.StatusOK, page, total, params.Page, params.Limit))
}

func (h *RewardHandler) Review(c *gin.Context) {
	var req service.ReviewDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	request, err := h.rewardService.Review(c.Request.Context(), c.Param("id"), middleware.SubjectID(c), req)
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, request))
}
