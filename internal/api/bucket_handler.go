package api

import (
	"net/http"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/service"

	"github.com/gin-gonic/gin"
)

type BucketHandler struct {
	bucketService service.BucketService
}

func NewBucketHandler(bucketService service.BucketService) *BucketHandler {
	return &BucketHandler{bucketService: bucketService}
}

type ImportBucketRequest struct {
	BucketID string `json:"bucketId" binding:"required"`
	SheetID  string `json:"sheetId" binding:"required"`
}

type CreateSheetFromBucketRequest struct {
	BucketID  string `json:"bucketId" binding:"required"`
	SheetName string `json:"sheetName"`
}

type UpsertBucketRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Icon        string                 `json:"icon"`
	Color       string                 `json:"color"`
	Problems    []domain.BucketProblem `json:"problems"`
}

func (h *BucketHandler) GetBuckets(c *gin.Context) {
	buckets, err := h.bucketService.List(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "retrieve buckets")
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func (h *BucketHandler) GetBucket(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	bucket, err := h.bucketService.Get(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, err, "retrieve bucket")
		return
	}
	c.JSON(http.StatusOK, bucket)
}

// ImportBucket godoc
// @Summary Import a bucket's problems into one of the user's sheets
// @Description Problems whose title already exists in the sheet are skipped.
// @Tags Buckets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ImportBucketRequest true "Bucket and target sheet"
// @Success 200 {object} service.ImportResult
// @Failure 404 {object} gin.H "Bucket or sheet not found"
// @Router /buckets/import [post]
func (h *BucketHandler) ImportBucket(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req ImportBucketRequest
	if !bindJSON(c, &req) {
		return
	}
	bucketID, ok := parseObjectID(c, "bucketId", req.BucketID)
	if !ok {
		return
	}
	sheetID, ok := parseObjectID(c, "sheetId", req.SheetID)
	if !ok {
		return
	}

	result, err := h.bucketService.Import(c.Request.Context(), userID, bucketID, sheetID)
	if err != nil {
		respondWithServiceError(c, err, "import bucket")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BucketHandler) CreateSheetFromBucket(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req CreateSheetFromBucketRequest
	if !bindJSON(c, &req) {
		return
	}
	bucketID, ok := parseObjectID(c, "bucketId", req.BucketID)
	if !ok {
		return
	}

	created, err := h.bucketService.CreateSheet(c.Request.Context(), userID, bucketID, req.SheetName)
	if err != nil {
		respondWithServiceError(c, err, "create sheet from bucket")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpsertBucket is admin only.
func (h *BucketHandler) UpsertBucket(c *gin.Context) {
	var req UpsertBucketRequest
	if !bindJSON(c, &req) {
		return
	}
	bucket, err := h.bucketService.Upsert(c.Request.Context(), service.BucketInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Icon:        req.Icon,
		Color:       req.Color,
		Problems:    req.Problems,
	})
	if err != nil {
		respondWithServiceError(c, err, "save bucket")
		return
	}
	c.JSON(http.StatusOK, bucket)
}
