package api

import (
	"net/http"
	"time"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/repository"
	"alcyxob/challenge75/internal/service"

	"github.com/gin-gonic/gin"
)

type ProblemHandler struct {
	problemService service.ProblemService
}

func NewProblemHandler(problemService service.ProblemService) *ProblemHandler {
	return &ProblemHandler{problemService: problemService}
}

type CreateProblemRequest struct {
	Title        string               `json:"title" binding:"required"`
	Link         string               `json:"link"`
	Code         string               `json:"code"`
	Language     domain.Language      `json:"language"`
	Notes        string               `json:"notes"`
	Platform     domain.Platform      `json:"platform"`
	Difficulty   domain.Difficulty    `json:"difficulty"`
	Status       domain.ProblemStatus `json:"status"`
	Tags         []string             `json:"tags"`
	TimeSpent    int                  `json:"timeSpent"`
	SolvedAt     *time.Time           `json:"solvedAt"`
	DailyLogDate *string              `json:"dailyLogDate"` // YYYY-MM-DD
	SheetID      *string              `json:"sheetId"`
	SheetTopic   string               `json:"sheetTopic"`
}

type UpdateProblemRequest struct {
	Title      *string               `json:"title"`
	Link       *string               `json:"link"`
	Code       *string               `json:"code"`
	Language   *domain.Language      `json:"language"`
	Notes      *string               `json:"notes"`
	Platform   *domain.Platform      `json:"platform"`
	Difficulty *domain.Difficulty    `json:"difficulty"`
	Status     *domain.ProblemStatus `json:"status"`
	Tags       []string              `json:"tags"`
	TimeSpent  *int                  `json:"timeSpent"`
	SolvedAt   *time.Time            `json:"solvedAt"`
}

// CreateProblem godoc
// @Summary Add an entry to the problem log
// @Description When dailyLogDate names a day with a log, that log's solved counter for the platform is bumped.
// @Tags Problems
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param problem body CreateProblemRequest true "Problem"
// @Success 201 {object} domain.Problem
// @Failure 400 {object} gin.H "Invalid input"
// @Router /problems [post]
func (h *ProblemHandler) CreateProblem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req CreateProblemRequest
	if !bindJSON(c, &req) {
		return
	}
	dailyLogDate, ok := parseOptionalDay(c, req.DailyLogDate)
	if !ok {
		return
	}

	in := service.ProblemInput{
		Title:        req.Title,
		Link:         req.Link,
		Code:         req.Code,
		Language:     req.Language,
		Notes:        req.Notes,
		Platform:     req.Platform,
		Difficulty:   req.Difficulty,
		Status:       req.Status,
		Tags:         req.Tags,
		TimeSpent:    req.TimeSpent,
		SolvedAt:     req.SolvedAt,
		DailyLogDate: dailyLogDate,
		SheetTopic:   req.SheetTopic,
	}
	if req.SheetID != nil && *req.SheetID != "" {
		sheetID, ok := parseObjectID(c, "sheetId", *req.SheetID)
		if !ok {
			return
		}
		in.SheetID = &sheetID
	}

	problem, err := h.problemService.Create(c.Request.Context(), userID, in)
	if err != nil {
		respondWithServiceError(c, err, "create problem")
		return
	}
	c.JSON(http.StatusCreated, problem)
}

// GetProblems lists the problem log. Query: platform, difficulty, status,
// sheetId, tag, page, limit.
func (h *ProblemHandler) GetProblems(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	filter := repository.ProblemFilter{
		Platform:   domain.Platform(c.Query("platform")),
		Difficulty: domain.Difficulty(c.Query("difficulty")),
		Status:     domain.ProblemStatus(c.Query("status")),
		Tag:        c.Query("tag"),
	}
	if s := c.Query("sheetId"); s != "" {
		sheetID, ok := parseObjectID(c, "sheetId", s)
		if !ok {
			return
		}
		filter.SheetID = &sheetID
	}
	page, ok := intQuery(c, "page", 1)
	if !ok {
		return
	}
	limit, ok := intQuery(c, "limit", service.DefaultProblemPageSize)
	if !ok {
		return
	}

	result, err := h.problemService.List(c.Request.Context(), userID, filter, page, limit)
	if err != nil {
		respondWithServiceError(c, err, "retrieve problems")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ProblemHandler) GetProblem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	problem, err := h.problemService.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondWithServiceError(c, err, "retrieve problem")
		return
	}
	c.JSON(http.StatusOK, problem)
}

func (h *ProblemHandler) UpdateProblem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateProblemRequest
	if !bindJSON(c, &req) {
		return
	}

	problem, err := h.problemService.Update(c.Request.Context(), userID, id, service.ProblemUpdate{
		Title:      req.Title,
		Link:       req.Link,
		Code:       req.Code,
		Language:   req.Language,
		Notes:      req.Notes,
		Platform:   req.Platform,
		Difficulty: req.Difficulty,
		Status:     req.Status,
		Tags:       req.Tags,
		TimeSpent:  req.TimeSpent,
		SolvedAt:   req.SolvedAt,
	})
	if err != nil {
		respondWithServiceError(c, err, "update problem")
		return
	}
	c.JSON(http.StatusOK, problem)
}

func (h *ProblemHandler) DeleteProblem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.problemService.Delete(c.Request.Context(), userID, id); err != nil {
		respondWithServiceError(c, err, "delete problem")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Problem deleted successfully"})
}

func (h *ProblemHandler) GetProblemsByDate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	date, ok := parseDay(c, c.Param("date"))
	if !ok {
		return
	}
	problems, err := h.problemService.ByDate(c.Request.Context(), userID, date)
	if err != nil {
		respondWithServiceError(c, err, "retrieve problems")
		return
	}
	c.JSON(http.StatusOK, problems)
}

func (h *ProblemHandler) GetStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	stats, err := h.problemService.Stats(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "compute problem stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
