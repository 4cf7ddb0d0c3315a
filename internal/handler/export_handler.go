package handler

import (
	"encoding/base64"
	"net/http"

	"incentivehub/internal/middleware"
	"incentivehub/internal/model"
	"incentivehub/internal/service"
	"incentivehub/pkg/response"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportService service.ExportService
	auth          *middleware.Auth
}

func NewExportHandler(exportService service.ExportService, auth *middleware.Auth) *ExportHandler {
	return &ExportHandler{exportService: exportService, auth: auth}
}

func (h *ExportHandler) RegisterRoutes(router *gin.RouterGroup) {
	exports := router.Group("/api/exports", h.auth.RequireRole(model.RoleAdmin))
	{
		exports.GET("/:report", h.Workbook)
		exports.POST("/pdf", h.ChartPDF)
	}
}

// Workbook streams the named report as an xlsx attachment, optionally
// narrowed by from/to query parameters.
func (h *ExportHandler) Workbook(c *gin.Context) {
	r, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	filename, buf, err := h.exportService.Workbook(c.Request.Context(), c.Param("report"), r)
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

type chartPDFRequest struct {
	Title    string `json:"title" binding:"required"`
	ChartPNG string `json:"chart_png" binding:"required"` // base64-encoded capture
}

// ChartPDF renders a landscape document embedding the submitted chart
// capture and returns it as a pdf attachment.
func (h *ExportHandler) ChartPDF(c *gin.Context) {
	var req chartPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	png, err := base64.StdEncoding.DecodeString(req.ChartPNG)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "chart_png is not valid base64"))
		return
	}

	filename, doc, err := h.exportService.ChartPDF(req.Title, png)
	if err != nil {
		c.JSON(statusFor(err), response.Error(statusFor(err), err.Error()))
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", doc)
}
