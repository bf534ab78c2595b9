package api

import (
	"net/http"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/service"

	"github.com/gin-gonic/gin"
)

type PhysiqueHandler struct {
	physiqueService service.PhysiqueService
}

func NewPhysiqueHandler(physiqueService service.PhysiqueService) *PhysiqueHandler {
	return &PhysiqueHandler{physiqueService: physiqueService}
}

type SavePhysiqueRequest struct {
	Date         string               `json:"date" binding:"required"`
	Weight       float64              `json:"weight" binding:"required"`
	BodyFat      *float64             `json:"bodyFat"`
	Measurements *domain.Measurements `json:"measurements"`
	Notes        *string              `json:"notes"`
}

type PhotoUploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type ConfirmPhotoRequest struct {
	ObjectKey   string `json:"objectKey" binding:"required"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType" binding:"required"`
	Size        int64  `json:"size"`
}

// SavePhysiqueLog godoc
// @Summary Create or merge the weigh-in for a day
// @Tags Physique
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param log body SavePhysiqueRequest true "Weigh-in"
// @Success 200 {object} domain.PhysiqueLog
// @Failure 400 {object} gin.H "Invalid input"
// @Router /physique [post]
func (h *PhysiqueHandler) SavePhysiqueLog(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req SavePhysiqueRequest
	if !bindJSON(c, &req) {
		return
	}
	date, ok := parseDay(c, req.Date)
	if !ok {
		return
	}

	pl, err := h.physiqueService.Save(c.Request.Context(), userID, service.PhysiqueInput{
		Date:         date,
		Weight:       req.Weight,
		BodyFat:      req.BodyFat,
		Measurements: req.Measurements,
		Notes:        req.Notes,
	})
	if err != nil {
		respondWithServiceError(c, err, "save physique log")
		return
	}
	c.JSON(http.StatusOK, pl)
}

func (h *PhysiqueHandler) GetPhysiqueLogs(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	logs, err := h.physiqueService.List(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "retrieve physique logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *PhysiqueHandler) GetProgress(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	progress, err := h.physiqueService.Progress(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "compute physique progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *PhysiqueHandler) DeletePhysiqueLog(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.physiqueService.Delete(c.Request.Context(), userID, id); err != nil {
		respondWithServiceError(c, err, "delete physique log")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Physique log deleted successfully"})
}

// RequestPhotoUploadURL godoc
// @Summary Get a presigned URL to upload a progress photo
// @Tags Physique
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Physique log ID"
// @Param request body PhotoUploadURLRequest true "Content type of the photo"
// @Success 200 {object} service.UploadURLResponse
// @Failure 404 {object} gin.H "Physique log not found"
// @Router /physique/{id}/photos/upload-url [post]
func (h *PhysiqueHandler) RequestPhotoUploadURL(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	logID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req PhotoUploadURLRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.physiqueService.RequestPhotoUploadURL(c.Request.Context(), userID, logID, req.ContentType)
	if err != nil {
		respondWithServiceError(c, err, "generate upload URL")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PhysiqueHandler) ConfirmPhoto(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	logID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req ConfirmPhotoRequest
	if !bindJSON(c, &req) {
		return
	}

	photo, err := h.physiqueService.ConfirmPhoto(c.Request.Context(), userID, logID, service.PhotoInput{
		ObjectKey:   req.ObjectKey,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Size:        req.Size,
	})
	if err != nil {
		respondWithServiceError(c, err, "confirm photo upload")
		return
	}
	c.JSON(http.StatusCreated, photo)
}

func (h *PhysiqueHandler) GetPhotos(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	logID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	photos, err := h.physiqueService.ListPhotos(c.Request.Context(), userID, logID)
	if err != nil {
		respondWithServiceError(c, err, "retrieve photos")
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (h *PhysiqueHandler) DeletePhoto(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	logID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	photoID, ok := objectIDParam(c, "photoId")
	if !ok {
		return
	}
	if err := h.physiqueService.DeletePhoto(c.Request.Context(), userID, logID, photoID); err != nil {
		respondWithServiceError(c, err, "delete photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}
