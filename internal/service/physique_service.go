package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"alcyxob/challenge75/internal/analytics"
	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/repository"
	"alcyxob/challenge75/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PhysiqueInput is a weigh-in as submitted. Nil optional fields keep the
// stored value when the day already has a log.
type PhysiqueInput struct {
	Date         time.Time
	Weight       float64
	BodyFat      *float64
	Measurements *domain.Measurements
	Notes        *string
}

// UploadURLResponse is returned when a client asks to upload a photo.
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"` // sent back on confirm
}

// PhotoInput describes an object the client has finished uploading.
type PhotoInput struct {
	ObjectKey   string
	FileName    string
	ContentType string
	Size        int64
}

// PhotoView is photo metadata plus a short-lived download URL.
type PhotoView struct {
	domain.ProgressPhoto
	DownloadURL string `json:"downloadUrl"`
}

type PhysiqueService interface {
	Save(ctx context.Context, userID primitive.ObjectID, in PhysiqueInput) (*domain.PhysiqueLog, error)
	// List returns every weigh-in, newest first.
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.PhysiqueLog, error)
	Progress(ctx context.Context, userID primitive.ObjectID) (analytics.PhysiqueProgress, error)
	// Delete removes the weigh-in together with its photos.
	Delete(ctx context.Context, userID, id primitive.ObjectID) error

	RequestPhotoUploadURL(ctx context.Context, userID, physiqueLogID primitive.ObjectID, contentType string) (*UploadURLResponse, error)
	ConfirmPhoto(ctx context.Context, userID, physiqueLogID primitive.ObjectID, in PhotoInput) (*domain.ProgressPhoto, error)
	ListPhotos(ctx context.Context, userID, physiqueLogID primitive.ObjectID) ([]PhotoView, error)
	DeletePhoto(ctx context.Context, userID, physiqueLogID, photoID primitive.ObjectID) error
}

type physiqueService struct {
	userRepo     repository.UserRepository
	physiqueRepo repository.PhysiqueLogRepository
	photoRepo    repository.ProgressPhotoRepository
	fileStorage  storage.FileStorage
}

func NewPhysiqueService(
	userRepo repository.UserRepository,
	physiqueRepo repository.PhysiqueLogRepository,
	photoRepo repository.ProgressPhotoRepository,
	fileStorage storage.FileStorage,
) PhysiqueService {
	return &physiqueService{
		userRepo:     userRepo,
		physiqueRepo: physiqueRepo,
		photoRepo:    photoRepo,
		fileStorage:  fileStorage,
	}
}

func (s *physiqueService) Save(ctx context.Context, userID primitive.ObjectID, in PhysiqueInput) (*domain.PhysiqueLog, error) {
	user, err := loadUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	date := domain.Day(in.Date)

	pl, err := s.physiqueRepo.GetByUserAndDate(ctx, userID, date)
	if errors.Is(err, repository.ErrNotFound) {
		pl = &domain.PhysiqueLog{UserID: userID, Date: date}
	} else if err != nil {
		return nil, err
	}

	pl.Weight = in.Weight
	if in.BodyFat != nil {
		bf := *in.BodyFat
		pl.BodyFat = &bf
	}
	pl.Measurements.Merge(in.Measurements)
	if in.Notes != nil {
		pl.Notes = *in.Notes
	}
	pl.WeekNumber = analytics.WeekNumber(user.StartDate, date)

	if err := pl.Validate(); err != nil {
		return nil, invalidInput(err)
	}
	return s.physiqueRepo.Upsert(ctx, pl)
}

func (s *physiqueService) List(ctx context.Context, userID primitive.ObjectID) ([]domain.PhysiqueLog, error) {
	return s.physiqueRepo.ListByUser(ctx, userID, false)
}

func (s *physiqueService) Progress(ctx context.Context, userID primitive.ObjectID) (analytics.PhysiqueProgress, error) {
	user, err := loadUser(ctx, s.userRepo, userID)
	if err != nil {
		return analytics.PhysiqueProgress{}, err
	}
	logs, err := s.physiqueRepo.ListByUser(ctx, userID, true)
	if err != nil {
		return analytics.PhysiqueProgress{}, err
	}
	return analytics.ComputePhysiqueProgress(logs, user.TargetWeight), nil
}

func (s *physiqueService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	if _, err := s.getLog(ctx, userID, id); err != nil {
		return err
	}

	photos, err := s.photoRepo.ListByPhysiqueLog(ctx, id, userID)
	if err != nil {
		return err
	}
	for _, photo := range photos {
		// An orphaned object is harmless; the log delete still goes ahead.
		if err := s.fileStorage.DeleteObject(ctx, photo.S3ObjectKey); err != nil {
			log.Printf("WARN: Failed to delete photo object %s of physique log %s: %v", photo.S3ObjectKey, id.Hex(), err)
		}
	}
	if err := s.photoRepo.DeleteByPhysiqueLog(ctx, id, userID); err != nil {
		return err
	}

	err = s.physiqueRepo.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPhysiqueLogNotFound
	}
	return err
}

func (s *physiqueService) getLog(ctx context.Context, userID, id primitive.ObjectID) (*domain.PhysiqueLog, error) {
	pl, err := s.physiqueRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPhysiqueLogNotFound
		}
		return nil, err
	}
	return pl, nil
}

// === Progress photos ===

func (s *physiqueService) RequestPhotoUploadURL(ctx context.Context, userID, physiqueLogID primitive.ObjectID, contentType string) (*UploadURLResponse, error) {
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return nil, invalidf("contentType must be an image type")
	}
	if _, err := s.getLog(ctx, userID, physiqueLogID); err != nil {
		return nil, err
	}

	objectKey := storage.NewPhotoKey(userID, physiqueLogID, contentType)
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}
	return &UploadURLResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

// ConfirmPhoto records metadata for an object uploaded through a URL from
// RequestPhotoUploadURL. Keys outside the log's prefix are rejected so a
// client cannot claim someone else's object.
func (s *physiqueService) ConfirmPhoto(ctx context.Context, userID, physiqueLogID primitive.ObjectID, in PhotoInput) (*domain.ProgressPhoto, error) {
	if !strings.HasPrefix(in.ObjectKey, storage.PhotoKeyPrefix(userID, physiqueLogID)) {
		return nil, invalidf("objectKey does not belong to this physique log")
	}
	if !strings.HasPrefix(strings.ToLower(in.ContentType), "image/") {
		return nil, invalidf("contentType must be an image type")
	}
	if in.Size < 0 {
		return nil, invalidf("size must be >= 0")
	}
	if _, err := s.getLog(ctx, userID, physiqueLogID); err != nil {
		return nil, err
	}

	photo := &domain.ProgressPhoto{
		PhysiqueLogID: physiqueLogID,
		UserID:        userID,
		S3ObjectKey:   in.ObjectKey,
		FileName:      in.FileName,
		ContentType:   in.ContentType,
		Size:          in.Size,
	}
	id, err := s.photoRepo.Create(ctx, photo)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, invalidf("photo %s is already confirmed", in.ObjectKey)
		}
		log.Printf("ERROR: Saving photo metadata for %s: %v", in.ObjectKey, err)
		return nil, ErrPhotoConfirmationFail
	}
	photo.ID = id
	return photo, nil
}

func (s *physiqueService) ListPhotos(ctx context.Context, userID, physiqueLogID primitive.ObjectID) ([]PhotoView, error) {
	if _, err := s.getLog(ctx, userID, physiqueLogID); err != nil {
		return nil, err
	}
	photos, err := s.photoRepo.ListByPhysiqueLog(ctx, physiqueLogID, userID)
	if err != nil {
		return nil, err
	}

	views := make([]PhotoView, 0, len(photos))
	for _, photo := range photos {
		url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, photo.S3ObjectKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			return nil, ErrDownloadURLError
		}
		views = append(views, PhotoView{ProgressPhoto: photo, DownloadURL: url})
	}
	return views, nil
}

func (s *physiqueService) DeletePhoto(ctx context.Context, userID, physiqueLogID, photoID primitive.ObjectID) error {
	photo, err := s.photoRepo.GetByID(ctx, photoID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	if photo.PhysiqueLogID != physiqueLogID {
		return ErrPhotoNotFound
	}

	if err := s.fileStorage.DeleteObject(ctx, photo.S3ObjectKey); err != nil {
		return err
	}
	err = s.photoRepo.Delete(ctx, photoID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPhotoNotFound
	}
	return err
}
