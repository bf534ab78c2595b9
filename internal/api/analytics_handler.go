package api

import (
	"net/http"

	"alcyxob/challenge75/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the read-only chart endpoints.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Dashboard godoc
// @Summary Challenge overview: current day, totals, compliance and weight
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} analytics.Dashboard
// @Failure 404 {object} gin.H "User not found"
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	dashboard, err := h.analyticsService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "load dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *AnalyticsHandler) ProblemsTrend(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	trend, err := h.analyticsService.ProblemsTrend(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "compute problems trend")
		return
	}
	c.JSON(http.StatusOK, trend)
}

func (h *AnalyticsHandler) PlatformDistribution(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	shares, err := h.analyticsService.PlatformDistribution(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "compute platform distribution")
		return
	}
	c.JSON(http.StatusOK, shares)
}

func (h *AnalyticsHandler) DifficultyBreakdown(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	shares, err := h.analyticsService.DifficultyBreakdown(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "compute difficulty breakdown")
		return
	}
	c.JSON(http.StatusOK, shares)
}

func (h *AnalyticsHandler) Heatmap(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	cells, err := h.analyticsService.Heatmap(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "compute heatmap")
		return
	}
	c.JSON(http.StatusOK, cells)
}

func (h *AnalyticsHandler) CodeforcesRating(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	points, err := h.analyticsService.CodeforcesRating(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "load codeforces rating")
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *AnalyticsHandler) WeightProgress(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	points, err := h.analyticsService.WeightProgress(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "load weight progress")
		return
	}
	c.JSON(http.StatusOK, points)
}
