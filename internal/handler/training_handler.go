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

type TrainingHandler struct {
	trainingService service.TrainingService
	auth            *middleware.Auth
}

func NewTrainingHandler(trainingService service.TrainingService, auth *middleware.Auth) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService, auth: auth}
}

func (h *TrainingHandler) RegisterRoutes(router *gin.RouterGroup) {
	trainings := router.Group("/api/trainings")
	{
		trainings.POST("", h.auth.RequireRole(model.RoleSeller, model.RoleAdmin), h.Create)
		trainings.GET("", h.auth.RequireRole(model.RoleSeller, model.RoleAdmin), h.List)
		trainings.GET("/calendar", h.auth.RequireRole(model.RoleSeller, model.RoleAdmin), h.Calendar)
		trainings.PUT("/:id/approve", h.auth.RequireRole(model.RoleAdmin), h.Approve)
		trainings.PUT("/:id/reject", h.auth.RequireRole(model.RoleAdmin), h.Reject)
	}
}

func (h *TrainingHandler) Create(c *gin.Context) {
	var req service.CreateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	training, err := h.trainingService.Create(c.Request.Context(), middleware.SubjectID(c), req)
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, training))
}

func (h *TrainingHandler) List(c *gin.Context) {
	trainings, err := h.trainingService.List(c.Request.Context(), scopeSeller(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	params := pagination.Parse(c)
	page, total := pagination.Slice(trainings, params)
	c.JSON(http.StatusOK, response.List(http.StatusOK, page, total, params.Page, params.Limit))
}

func (h *TrainingHandler) Calendar(c *gin.Context) {
	events, err := h.trainingService.Calendar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, events))
}

// Approve assigns the trainer details and confirms the slot. A schedule
// conflict surfaces as 409 with the request left pending.
func (h *TrainingHandler) Approve(c *gin.Context) {
	var req service.ApproveTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	training, err := h.trainingService.Approve(c.Request.Context(), c.Param("id"), middleware.SubjectID(c), req)
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, training))
}

func (h *TrainingHandler) Reject(c *gin.Context) {
	var req service.ReviewCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Comments = ""
	}

	training, err := h.trainingService.Reject(c.Request.Context(), c.Param("id"), middleware.SubjectID(c), req.Comments)
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, training))
}
