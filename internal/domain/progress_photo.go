package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressPhoto stores metadata about a physique photo uploaded by a user,
// linked to a PhysiqueLog. The actual file resides in S3.
type ProgressPhoto struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PhysiqueLogID primitive.ObjectID `bson:"physiqueLogId" json:"physiqueLogId"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	S3ObjectKey   string             `bson:"s3ObjectKey" json:"-"` // internal use only
	FileName      string             `bson:"fileName" json:"fileName"`
	ContentType   string             `bson:"contentType" json:"contentType"`
	Size          int64              `bson:"size" json:"size"`
	UploadedAt    time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
