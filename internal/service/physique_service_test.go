package service

import (
	"context"
	"strings"
	"testing"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type physiqueFixture struct {
	svc     PhysiqueService
	users   *fakeUserRepo
	logs    *fakePhysiqueRepo
	photos  *fakePhotoRepo
	storage *fakeStorage
	user    *domain.User
}

func newPhysiqueFixture() *physiqueFixture {
	f := &physiqueFixture{
		users:   newFakeUserRepo(),
		logs:    newFakePhysiqueRepo(),
		photos:  newFakePhotoRepo(),
		storage: &fakeStorage{},
	}
	f.svc = NewPhysiqueService(f.users, f.logs, f.photos, f.storage)
	f.user = f.users.seedUser(mustDay("2024-01-01"))
	return f
}

func (f *physiqueFixture) saveLog(t *testing.T, day string, weight float64) *domain.PhysiqueLog {
	t.Helper()
	pl, err := f.svc.Save(context.Background(), f.user.ID, PhysiqueInput{Date: mustDay(day), Weight: weight})
	require.NoError(t, err)
	return pl
}

func TestPhysiqueSaveMergesSameDay(t *testing.T) {
	f := newPhysiqueFixture()
	ctx := context.Background()

	first, err := f.svc.Save(ctx, f.user.ID, PhysiqueInput{
		Date:         mustDay("2024-01-09"),
		Weight:       80,
		BodyFat:      ptr(18.0),
		Measurements: &domain.Measurements{Waist: ptr(85.0)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, first.WeekNumber)

	second, err := f.svc.Save(ctx, f.user.ID, PhysiqueInput{
		Date:         mustDay("2024-01-09"),
		Weight:       79.5,
		Measurements: &domain.Measurements{Chest: ptr(100.0)},
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 79.5, second.Weight)
	require.NotNil(t, second.BodyFat)
	assert.Equal(t, 18.0, *second.BodyFat, "omitted body fat is kept")
	require.NotNil(t, second.Measurements.Waist)
	require.NotNil(t, second.Measurements.Chest)
	assert.Equal(t, 85.0, *second.Measurements.Waist)
}

func TestPhysiqueSaveValidation(t *testing.T) {
	f := newPhysiqueFixture()
	ctx := context.Background()

	_, err := f.svc.Save(ctx, f.user.ID, PhysiqueInput{Date: mustDay("2024-01-02"), Weight: 10})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.Save(ctx, f.user.ID, PhysiqueInput{Date: mustDay("2024-01-02"), Weight: 70, BodyFat: ptr(75.0)})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, f.logs.logs)
}

func TestPhysiqueListAndProgress(t *testing.T) {
	f := newPhysiqueFixture()
	ctx := context.Background()
	f.saveLog(t, "2024-01-01", 80)
	f.saveLog(t, "2024-01-15", 77)

	logs, err := f.svc.List(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, mustDay("2024-01-15"), logs[0].Date)

	progress, err := f.svc.Progress(ctx, f.user.ID)
	require.NoError(t, err)
	require.NotNil(t, progress.StartWeight)
	require.NotNil(t, progress.CurrentWeight)
	assert.Equal(t, 80.0, *progress.StartWeight)
	assert.Equal(t, 77.0, *progress.CurrentWeight)
	assert.Nil(t, progress.TargetWeight)
}

func TestPhotoUploadFlow(t *testing.T) {
	f := newPhysiqueFixture()
	ctx := context.Background()
	pl := f.saveLog(t, "2024-01-03", 80)

	upload, err := f.svc.RequestPhotoUploadURL(ctx, f.user.ID, pl.ID, "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(upload.ObjectKey, storage.PhotoKeyPrefix(f.user.ID, pl.ID)))
	assert.Contains(t, upload.UploadURL, upload.ObjectKey)

	photo, err := f.svc.ConfirmPhoto(ctx, f.user.ID, pl.ID, PhotoInput{
		ObjectKey:   upload.ObjectKey,
		FileName:    "front.jpg",
		ContentType: "image/jpeg",
		Size:        2048,
	})
	require.NoError(t, err)
	assert.False(t, photo.ID.IsZero())

	_, err = f.svc.ConfirmPhoto(ctx, f.user.ID, pl.ID, PhotoInput{ObjectKey: upload.ObjectKey, ContentType: "image/jpeg"})
	assert.ErrorIs(t, err, ErrValidation, "confirming the same object twice")

	views, err := f.svc.ListPhotos(ctx, f.user.ID, pl.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "front.jpg", views[0].FileName)
	assert.Contains(t, views[0].DownloadURL, upload.ObjectKey)
}

func TestPhotoRequestRejectsNonImages(t *testing.T) {
	f := newPhysiqueFixture()
	pl := f.saveLog(t, "2024-01-03", 80)

	_, err := f.svc.RequestPhotoUploadURL(context.Background(), f.user.ID, pl.ID, "application/pdf")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.RequestPhotoUploadURL(context.Background(), f.user.ID, primitive.NewObjectID(), "image/png")
	assert.ErrorIs(t, err, ErrPhysiqueLogNotFound)
}

func TestConfirmPhotoRejectsForeignKey(t *testing.T) {
	f := newPhysiqueFixture()
	pl := f.saveLog(t, "2024-01-03", 80)
	foreign := storage.NewPhotoKey(primitive.NewObjectID(), pl.ID, "image/png")

	_, err := f.svc.ConfirmPhoto(context.Background(), f.user.ID, pl.ID, PhotoInput{ObjectKey: foreign, ContentType: "image/png"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, f.photos.photos)
}

func TestDeletePhoto(t *testing.T) {
	f := newPhysiqueFixture()
	ctx := context.Background()
	pl := f.saveLog(t, "2024-01-03", 80)
	other := f.saveLog(t, "2024-01-04", 80)
	key := storage.NewPhotoKey(f.user.ID, pl.ID, "image/png")
	photo, err := f.svc.ConfirmPhoto(ctx, f.user.ID, pl.ID, PhotoInput{ObjectKey: key, ContentType: "image/png"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.DeletePhoto(ctx, f.user.ID, other.ID, photo.ID), ErrPhotoNotFound)

	require.NoError(t, f.svc.DeletePhoto(ctx, f.user.ID, pl.ID, photo.ID))
	assert.Equal(t, []string{key}, f.storage.deleted)
	assert.ErrorIs(t, f.svc.DeletePhoto(ctx, f.user.ID, pl.ID, photo.ID), ErrPhotoNotFound)
}

func TestDeletePhysiqueLogCascadesToPhotos(t *testing.T) {
	f := newPhysiqueFixture()
	ctx := context.Background()
	pl := f.saveLog(t, "2024-01-03", 80)
	for i := 0; i < 2; i++ {
		key := storage.NewPhotoKey(f.user.ID, pl.ID, "image/png")
		_, err := f.svc.ConfirmPhoto(ctx, f.user.ID, pl.ID, PhotoInput{ObjectKey: key, ContentType: "image/png"})
		require.NoError(t, err)
	}

	require.NoError(t, f.svc.Delete(ctx, f.user.ID, pl.ID))
	assert.Len(t, f.storage.deleted, 2)
	assert.Empty(t, f.photos.photos)
	assert.Empty(t, f.logs.logs)

	assert.ErrorIs(t, f.svc.Delete(ctx, f.user.ID, pl.ID), ErrPhysiqueLogNotFound)
}
