package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewPhotoKey(t *testing.T) {
	userID := primitive.NewObjectID()
	logID := primitive.NewObjectID()

	key := NewPhotoKey(userID, logID, "image/JPEG")

	assert.True(t, strings.HasPrefix(key, PhotoKeyPrefix(userID, logID)))
	assert.True(t, strings.HasSuffix(key, ".jpeg"))
	assert.NotEqual(t, key, NewPhotoKey(userID, logID, "image/jpeg"))
}

func TestNewPhotoKeyWithoutSubtype(t *testing.T) {
	key := NewPhotoKey(primitive.NewObjectID(), primitive.NewObjectID(), "image")
	assert.True(t, strings.HasSuffix(key, ".bin"))
}

func TestPhotoKeyPrefix(t *testing.T) {
	userID, _ := primitive.ObjectIDFromHex("64b7f0c2a1b2c3d4e5f60718")
	logID, _ := primitive.ObjectIDFromHex("64b7f0c2a1b2c3d4e5f60719")

	assert.Equal(t, "physique/64b7f0c2a1b2c3d4e5f60718/64b7f0c2a1b2c3d4e5f60719/", PhotoKeyPrefix(userID, logID))
}
