package api

import (
	"net/http"
	"strconv"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/repository"
	"alcyxob/challenge75/internal/service"

	"github.com/gin-gonic/gin"
)

type DailyLogHandler struct {
	dailyLogService service.DailyLogService
}

func NewDailyLogHandler(dailyLogService service.DailyLogService) *DailyLogHandler {
	return &DailyLogHandler{dailyLogService: dailyLogService}
}

// SaveDailyLogRequest is a date plus any subset of the activity blocks.
type SaveDailyLogRequest struct {
	Date string `json:"date" binding:"required"`
	domain.DailyLogPatch
}

// SaveDailyLog godoc
// @Summary Create or merge the log for a day
// @Tags DailyLogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param log body SaveDailyLogRequest true "Date and activity blocks"
// @Success 200 {object} domain.DailyLog
// @Failure 400 {object} gin.H "Invalid input"
// @Router /daily-logs [post]
func (h *DailyLogHandler) SaveDailyLog(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req SaveDailyLogRequest
	if !bindJSON(c, &req) {
		return
	}
	date, ok := parseDay(c, req.Date)
	if !ok {
		return
	}

	dl, err := h.dailyLogService.Save(c.Request.Context(), userID, date, &req.DailyLogPatch)
	if err != nil {
		respondWithServiceError(c, err, "save daily log")
		return
	}
	c.JSON(http.StatusOK, dl)
}

// GetDailyLogs lists logs newest first, optionally bounded by startDate/endDate.
func (h *DailyLogHandler) GetDailyLogs(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var r repository.DateRange
	if s := c.Query("startDate"); s != "" {
		if r.From, ok = parseDay(c, s); !ok {
			return
		}
	}
	if s := c.Query("endDate"); s != "" {
		if r.To, ok = parseDay(c, s); !ok {
			return
		}
	}
	limit, ok := intQuery(c, "limit", 0)
	if !ok {
		return
	}

	logs, err := h.dailyLogService.List(c.Request.Context(), userID, r, limit)
	if err != nil {
		respondWithServiceError(c, err, "retrieve daily logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *DailyLogHandler) GetDailyLog(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	date, ok := parseDay(c, c.Param("date"))
	if !ok {
		return
	}

	view, err := h.dailyLogService.Get(c.Request.Context(), userID, date)
	if err != nil {
		respondWithServiceError(c, err, "retrieve daily log")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DailyLogHandler) DeleteDailyLog(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	date, ok := parseDay(c, c.Param("date"))
	if !ok {
		return
	}

	if err := h.dailyLogService.Delete(c.Request.Context(), userID, date); err != nil {
		respondWithServiceError(c, err, "delete daily log")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Daily log deleted successfully"})
}

func (h *DailyLogHandler) GetStreak(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	streak, err := h.dailyLogService.Streak(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "compute streak")
		return
	}
	c.JSON(http.StatusOK, streak)
}

// GetWeeklySummary requires ?weekNumber=N.
func (h *DailyLogHandler) GetWeeklySummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	week, err := strconv.Atoi(c.Query("weekNumber"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "weekNumber query parameter is required")
		return
	}

	summary, err := h.dailyLogService.WeeklySummary(c.Request.Context(), userID, week)
	if err != nil {
		respondWithServiceError(c, err, "compute weekly summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}
