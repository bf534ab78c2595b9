package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var notFoundErrors = []error{
	service.ErrUserNotFound,
	service.ErrDailyLogNotFound,
	service.ErrPhysiqueLogNotFound,
	service.ErrPhotoNotFound,
	service.ErrSheetNotFound,
	service.ErrTopicNotFound,
	service.ErrSheetProblemNotFound,
	service.ErrProblemNotFound,
	service.ErrBucketNotFound,
}

// respondWithServiceError maps a service error onto a status code. Anything
// unrecognised is logged and reported as "Failed to <action>".
func respondWithServiceError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		abortWithError(c, http.StatusBadRequest, strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": "))
		return
	case errors.Is(err, service.ErrUserAlreadyExists):
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}
	for _, nf := range notFoundErrors {
		if errors.Is(err, nf) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
	}

	log.Printf("ERROR: Failed to %s: %v", action, err)
	abortWithError(c, http.StatusInternalServerError, "Failed to "+action+".")
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return false
	}
	return true
}

// objectIDParam parses the path parameter name as an ObjectID.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format.")
		return primitive.NilObjectID, false
	}
	return id, true
}

func parseObjectID(c *gin.Context, field, value string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+field+" format.")
		return primitive.NilObjectID, false
	}
	return id, true
}

func parseDay(c *gin.Context, value string) (time.Time, bool) {
	day, err := domain.ParseDay(value)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return time.Time{}, false
	}
	return day, true
}

// parseOptionalDay returns nil for a nil or blank value.
func parseOptionalDay(c *gin.Context, value *string) (*time.Time, bool) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, true
	}
	day, ok := parseDay(c, *value)
	if !ok {
		return nil, false
	}
	return &day, true
}

// intQuery reads a non-negative integer query parameter; absent means def.
func intQuery(c *gin.Context, name string, def int64) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" query parameter.")
		return 0, false
	}
	return n, true
}
