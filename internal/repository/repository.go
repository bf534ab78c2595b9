package repository

import (
	"context"
	"time"

	"alcyxob/challenge75/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// DateRange bounds a list query by calendar day, inclusive. A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}

// DailyLogRepository stores one DailyLog per (user, day).
type DailyLogRepository interface {
	GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*domain.DailyLog, error)
	// Upsert replaces the log keyed by (UserID, Date), inserting it when absent.
	Upsert(ctx context.Context, log *domain.DailyLog) (*domain.DailyLog, error)
	// ListByUser returns logs newest first. limit <= 0 means no limit.
	ListByUser(ctx context.Context, userID primitive.ObjectID, r DateRange, limit int64) ([]domain.DailyLog, error)
	// ListAllByUser returns the full history oldest first.
	ListAllByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.DailyLog, error)
	ListByUserBetween(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.DailyLog, error)
	DeleteByUserAndDate(ctx context.Context, userID primitive.ObjectID, date time.Time) error
	// IncrementProblemsSolved bumps the solved counter of platform on the
	// user's log for date. Returns the log id, or ErrNotFound when there is no
	// log that day.
	IncrementProblemsSolved(ctx context.Context, userID primitive.ObjectID, date time.Time, platform domain.Platform, n int) (primitive.ObjectID, error)
}

type PhysiqueLogRepository interface {
	GetByUserAndDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*domain.PhysiqueLog, error)
	Upsert(ctx context.Context, log *domain.PhysiqueLog) (*domain.PhysiqueLog, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID, ascending bool) ([]domain.PhysiqueLog, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.PhysiqueLog, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// ProgressPhotoRepository holds metadata for photos stored in S3.
type ProgressPhotoRepository interface {
	Create(ctx context.Context, photo *domain.ProgressPhoto) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.ProgressPhoto, error)
	ListByPhysiqueLog(ctx context.Context, physiqueLogID, userID primitive.ObjectID) ([]domain.ProgressPhoto, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	DeleteByPhysiqueLog(ctx context.Context, physiqueLogID, userID primitive.ObjectID) error
}

// SheetRepository reads and writes sheets. Every lookup is scoped to the owner.
type SheetRepository interface {
	Create(ctx context.Context, sheet *domain.Sheet) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.Sheet, error)
	ListActiveByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Sheet, error)
	// Update writes the editable fields and topics of sheet.
	Update(ctx context.Context, sheet *domain.Sheet) error
	// SetTotals overwrites the denormalized counters.
	SetTotals(ctx context.Context, id primitive.ObjectID, total, solved int) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// StatusCount is the recount of a sheet's problems.
type StatusCount struct {
	Total  int `bson:"total"`
	Solved int `bson:"solved"`
}

type SheetProblemRepository interface {
	Create(ctx context.Context, p *domain.SheetProblem) (primitive.ObjectID, error)
	CreateMany(ctx context.Context, ps []domain.SheetProblem) (int, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.SheetProblem, error)
	// ListBySheet returns entries sorted by topic then order.
	ListBySheet(ctx context.Context, sheetID, userID primitive.ObjectID) ([]domain.SheetProblem, error)
	Update(ctx context.Context, p *domain.SheetProblem) error
	// UpdateStatus sets status, stamps lastAttemptedAt when non-nil and
	// increments revisionCount when status is revision. Returns the updated entry.
	UpdateStatus(ctx context.Context, id, userID primitive.ObjectID, status domain.SheetProblemStatus, at *time.Time) (*domain.SheetProblem, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) (*domain.SheetProblem, error)
	DeleteBySheet(ctx context.Context, sheetID, userID primitive.ObjectID) error
	CountBySheet(ctx context.Context, sheetID primitive.ObjectID) (int, error)
	// MaxOrderInTopic returns the highest order in topic, or -1 if it is empty.
	MaxOrderInTopic(ctx context.Context, sheetID primitive.ObjectID, topic string) (int, error)
	CountStatusBySheet(ctx context.Context, sheetID primitive.ObjectID) (StatusCount, error)
}

// ProblemFilter narrows ListProblems. Empty fields are ignored.
type ProblemFilter struct {
	Platform   domain.Platform
	Difficulty domain.Difficulty
	Status     domain.ProblemStatus
	SheetID    *primitive.ObjectID
	Tag        string
}

type ProblemRepository interface {
	Create(ctx context.Context, p *domain.Problem) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*domain.Problem, error)
	// List returns a page of problems newest solvedAt first.
	List(ctx context.Context, userID primitive.ObjectID, f ProblemFilter, skip, limit int64) ([]domain.Problem, error)
	Count(ctx context.Context, userID primitive.ObjectID, f ProblemFilter) (int64, error)
	ListSolvedBetween(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.Problem, error)
	ListAllByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Problem, error)
	ListBySheet(ctx context.Context, sheetID, userID primitive.ObjectID) ([]domain.Problem, error)
	// UpsertForSheetProblem creates or replaces the entry linked to p.SheetProblemID.
	UpsertForSheetProblem(ctx context.Context, p *domain.Problem) error
	DeleteForSheetProblem(ctx context.Context, sheetProblemID, userID primitive.ObjectID) error
	Update(ctx context.Context, p *domain.Problem) error
	// SetDailyLog links an existing problem to the daily log it was counted in.
	SetDailyLog(ctx context.Context, id, userID, dailyLogID primitive.ObjectID) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	// UnlinkSheet clears sheetId and sheetTopic on every problem of the sheet.
	UnlinkSheet(ctx context.Context, sheetID primitive.ObjectID) error
}

// BucketRepository serves the shared, admin-curated problem buckets.
type BucketRepository interface {
	ListActive(ctx context.Context) ([]domain.Bucket, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Bucket, error)
	UpsertByName(ctx context.Context, b *domain.Bucket) (*domain.Bucket, error)
	IncrementPopularity(ctx context.Context, id primitive.ObjectID) error
}
