package service

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---
var (
	// ErrValidation wraps every input problem; the message after the colon is
	// safe to show to the client.
	ErrValidation = errors.New("validation failed")

	ErrUserNotFound          = errors.New("user not found")
	ErrDailyLogNotFound      = errors.New("daily log not found")
	ErrPhysiqueLogNotFound   = errors.New("physique log not found")
	ErrPhotoNotFound         = errors.New("progress photo not found")
	ErrSheetNotFound         = errors.New("sheet not found")
	ErrTopicNotFound         = errors.New("topic not found")
	ErrSheetProblemNotFound  = errors.New("sheet problem not found")
	ErrProblemNotFound       = errors.New("problem not found")
	ErrBucketNotFound        = errors.New("bucket not found")
	ErrUploadURLError        = errors.New("failed to generate upload URL")
	ErrDownloadURLError      = errors.New("failed to generate download URL")
	ErrPhotoConfirmationFail = errors.New("failed to confirm photo upload")
)

// invalidInput wraps err (usually a *domain.ValidationError) as ErrValidation.
func invalidInput(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
