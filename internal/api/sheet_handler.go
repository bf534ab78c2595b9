package api

import (
	"net/http"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/service"

	"github.com/gin-gonic/gin"
)

type SheetHandler struct {
	sheetService        service.SheetService
	sheetProblemService service.SheetProblemService
}

func NewSheetHandler(sheetService service.SheetService, sheetProblemService service.SheetProblemService) *SheetHandler {
	return &SheetHandler{
		sheetService:        sheetService,
		sheetProblemService: sheetProblemService,
	}
}

// --- DTOs ---

type TopicRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	TotalProblems int    `json:"totalProblems" binding:"min=0"`
}

type CreateSheetRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Category    domain.SheetCategory `json:"category" binding:"required"`
	Color       string               `json:"color"`
	Icon        string               `json:"icon"`
	Topics      []TopicRequest       `json:"topics"`
	UseTemplate bool                 `json:"useTemplate"`
	TargetDate  *string              `json:"targetDate"`
}

type UpdateSheetRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Category    *domain.SheetCategory `json:"category"`
	Color       *string               `json:"color"`
	Icon        *string               `json:"icon"`
	IsActive    *bool                 `json:"isActive"`
	TargetDate  *string               `json:"targetDate"`
}

type UpdateTopicRequest struct {
	SolvedProblems *int `json:"solvedProblems"`
	TotalProblems  *int `json:"totalProblems"`
}

type SheetProblemRequest struct {
	Title       string            `json:"title" binding:"required"`
	Topic       string            `json:"topic" binding:"required"`
	Difficulty  domain.Difficulty `json:"difficulty"`
	ProblemLink string            `json:"problemLink"`
	ArticleLink string            `json:"articleLink"`
	YoutubeLink string            `json:"youtubeLink"`
	Platform    domain.Platform   `json:"platform"`
	Tags        []string          `json:"tags"`
}

type UpdateSheetProblemRequest struct {
	Title       *string            `json:"title"`
	Topic       *string            `json:"topic"`
	Difficulty  *domain.Difficulty `json:"difficulty"`
	ProblemLink *string            `json:"problemLink"`
	ArticleLink *string            `json:"articleLink"`
	YoutubeLink *string            `json:"youtubeLink"`
	Notes       *string            `json:"notes"`
	Code        *string            `json:"code"`
	Language    *domain.Language   `json:"language"`
	Platform    *domain.Platform   `json:"platform"`
	Tags        []string           `json:"tags"`
}

type UpdateStatusRequest struct {
	Status domain.SheetProblemStatus `json:"status" binding:"required"`
}

// --- Sheets ---

func (h *SheetHandler) GetTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.sheetService.Templates())
}

// CreateSheet godoc
// @Summary Create a sheet, optionally from the category template
// @Tags Sheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sheet body CreateSheetRequest true "Sheet"
// @Success 201 {object} service.SheetView
// @Failure 400 {object} gin.H "Invalid input"
// @Router /sheets [post]
func (h *SheetHandler) CreateSheet(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req CreateSheetRequest
	if !bindJSON(c, &req) {
		return
	}
	targetDate, ok := parseOptionalDay(c, req.TargetDate)
	if !ok {
		return
	}

	topics := make([]domain.Topic, len(req.Topics))
	for i, t := range req.Topics {
		topics[i] = domain.Topic{Name: t.Name, Description: t.Description, TotalProblems: t.TotalProblems}
	}
	sheet, err := h.sheetService.Create(c.Request.Context(), userID, service.SheetInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Color:       req.Color,
		Icon:        req.Icon,
		Topics:      topics,
		UseTemplate: req.UseTemplate,
		TargetDate:  targetDate,
	})
	if err != nil {
		respondWithServiceError(c, err, "create sheet")
		return
	}
	c.JSON(http.StatusCreated, sheet)
}

func (h *SheetHandler) GetSheets(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sheets, err := h.sheetService.List(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "retrieve sheets")
		return
	}
	c.JSON(http.StatusOK, sheets)
}

func (h *SheetHandler) GetSheet(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	details, err := h.sheetService.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondWithServiceError(c, err, "retrieve sheet")
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *SheetHandler) UpdateSheet(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateSheetRequest
	if !bindJSON(c, &req) {
		return
	}
	targetDate, ok := parseOptionalDay(c, req.TargetDate)
	if !ok {
		return
	}

	sheet, err := h.sheetService.Update(c.Request.Context(), userID, id, service.SheetUpdate{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Color:       req.Color,
		Icon:        req.Icon,
		IsActive:    req.IsActive,
		TargetDate:  targetDate,
	})
	if err != nil {
		respondWithServiceError(c, err, "update sheet")
		return
	}
	c.JSON(http.StatusOK, sheet)
}

func (h *SheetHandler) DeleteSheet(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.sheetService.Delete(c.Request.Context(), userID, id); err != nil {
		respondWithServiceError(c, err, "delete sheet")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sheet deleted successfully"})
}

func (h *SheetHandler) AddTopic(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req TopicRequest
	if !bindJSON(c, &req) {
		return
	}

	sheet, err := h.sheetService.AddTopic(c.Request.Context(), userID, id, service.TopicInput{
		Name:          req.Name,
		Description:   req.Description,
		TotalProblems: req.TotalProblems,
	})
	if err != nil {
		respondWithServiceError(c, err, "add topic")
		return
	}
	c.JSON(http.StatusOK, sheet)
}

func (h *SheetHandler) UpdateTopicProgress(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateTopicRequest
	if !bindJSON(c, &req) {
		return
	}

	sheet, err := h.sheetService.UpdateTopicProgress(c.Request.Context(), userID, id, c.Param("topicName"), req.SolvedProblems, req.TotalProblems)
	if err != nil {
		respondWithServiceError(c, err, "update topic progress")
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// --- Sheet problems ---

func (h *SheetHandler) GetSheetProblems(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sheetID, ok := objectIDParam(c, "sheetId")
	if !ok {
		return
	}
	list, err := h.sheetProblemService.List(c.Request.Context(), userID, sheetID)
	if err != nil {
		respondWithServiceError(c, err, "retrieve sheet problems")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SheetHandler) AddSheetProblem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sheetID, ok := objectIDParam(c, "sheetId")
	if !ok {
		return
	}
	var req SheetProblemRequest
	if !bindJSON(c, &req) {
		return
	}

	sp, err := h.sheetProblemService.Add(c.Request.Context(), userID, sheetID, service.SheetProblemInput{
		Title:       req.Title,
		Topic:       req.Topic,
		Difficulty:  req.Difficulty,
		ProblemLink: req.ProblemLink,
		ArticleLink: req.ArticleLink,
		YoutubeLink: req.YoutubeLink,
		Platform:    req.Platform,
		Tags:        req.Tags,
	})
	if err != nil {
		respondWithServiceError(c, err, "add sheet problem")
		return
	}
	c.JSON(http.StatusCreated, sp)
}

func (h *SheetHandler) UpdateSheetProblem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateSheetProblemRequest
	if !bindJSON(c, &req) {
		return
	}

	sp, err := h.sheetProblemService.Update(c.Request.Context(), userID, id, service.SheetProblemUpdate{
		Title:       req.Title,
		Topic:       req.Topic,
		Difficulty:  req.Difficulty,
		ProblemLink: req.ProblemLink,
		ArticleLink: req.ArticleLink,
		YoutubeLink: req.YoutubeLink,
		Notes:       req.Notes,
		Code:        req.Code,
		Language:    req.Language,
		Platform:    req.Platform,
		Tags:        req.Tags,
	})
	if err != nil {
		respondWithServiceError(c, err, "update sheet problem")
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (h *SheetHandler) UpdateSheetProblemStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	sp, err := h.sheetProblemService.UpdateStatus(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		respondWithServiceError(c, err, "update sheet problem status")
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (h *SheetHandler) DeleteSheetProblem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.sheetProblemService.Delete(c.Request.Context(), userID, id); err != nil {
		respondWithServiceError(c, err, "delete sheet problem")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Problem deleted successfully"})
}
