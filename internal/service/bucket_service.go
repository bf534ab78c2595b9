package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImportResult reports a bucket import into an existing sheet.
type ImportResult struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

// CreatedSheet is a sheet freshly built from a bucket.
type CreatedSheet struct {
	Message       string    `json:"message"`
	Sheet         SheetView `json:"sheet"`
	ProblemsAdded int       `json:"problemsAdded"`
}

// BucketInput is the admin payload for creating or replacing a bucket.
type BucketInput struct {
	Name        string
	Description string
	Category    string
	Icon        string
	Color       string
	Problems    []domain.BucketProblem
}

type BucketService interface {
	// List returns active bucket summaries (no problem lists), most popular first.
	List(ctx context.Context) ([]domain.Bucket, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Bucket, error)
	Import(ctx context.Context, userID, bucketID, sheetID primitive.ObjectID) (*ImportResult, error)
	CreateSheet(ctx context.Context, userID, bucketID primitive.ObjectID, sheetName string) (*CreatedSheet, error)
	Upsert(ctx context.Context, in BucketInput) (*domain.Bucket, error)
}

type bucketService struct {
	bucketRepo       repository.BucketRepository
	sheetRepo        repository.SheetRepository
	sheetProblemRepo repository.SheetProblemRepository
}

func NewBucketService(
	bucketRepo repository.BucketRepository,
	sheetRepo repository.SheetRepository,
	sheetProblemRepo repository.SheetProblemRepository,
) BucketService {
	return &bucketService{
		bucketRepo:       bucketRepo,
		sheetRepo:        sheetRepo,
		sheetProblemRepo: sheetProblemRepo,
	}
}

func (s *bucketService) List(ctx context.Context) ([]domain.Bucket, error) {
	return s.bucketRepo.ListActive(ctx)
}

func (s *bucketService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Bucket, error) {
	b, err := s.bucketRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBucketNotFound
		}
		return nil, err
	}
	return b, nil
}

// sheetProblemFromBucket copies a bucket entry into a pending sheet entry.
func sheetProblemFromBucket(userID, sheetID primitive.ObjectID, bp domain.BucketProblem, order int) domain.SheetProblem {
	sp := domain.SheetProblem{
		UserID:        userID,
		SheetID:       sheetID,
		Title:         bp.Title,
		Topic:         bp.Topic,
		ProblemNumber: order + 1,
		Difficulty:    bp.Difficulty,
		ProblemLink:   bp.ProblemLink,
		ArticleLink:   bp.ArticleLink,
		YoutubeLink:   bp.YoutubeLink,
		Platform:      bp.Platform,
		Tags:          append([]string{}, bp.Tags...),
		Order:         order,
		Status:        domain.SheetStatusPending,
		Language:      domain.LangCPP,
	}
	if sp.Difficulty == "" {
		sp.Difficulty = domain.DifficultyMedium
	}
	if sp.Platform == "" {
		sp.Platform = domain.DetectPlatform(bp.ProblemLink)
	}
	return sp
}

func (s *bucketService) Import(ctx context.Context, userID, bucketID, sheetID primitive.ObjectID) (*ImportResult, error) {
	bucket, err := s.Get(ctx, bucketID)
	if err != nil {
		return nil, err
	}
	sheet, err := loadSheet(ctx, s.sheetRepo, sheetID, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.sheetProblemRepo.ListBySheet(ctx, sheetID, userID)
	if err != nil {
		return nil, err
	}
	titles := make(map[string]bool, len(existing))
	for _, p := range existing {
		titles[strings.ToLower(p.Title)] = true
	}

	var fresh []domain.SheetProblem
	for _, bp := range bucket.Problems {
		key := strings.ToLower(bp.Title)
		if titles[key] {
			continue
		}
		titles[key] = true
		fresh = append(fresh, sheetProblemFromBucket(userID, sheetID, bp, len(existing)+len(fresh)))
	}

	if len(fresh) == 0 {
		return &ImportResult{
			Message: "All problems from this bucket already exist in your sheet",
			Skipped: len(bucket.Problems),
		}, nil
	}

	imported, err := s.sheetProblemRepo.CreateMany(ctx, fresh)
	if err != nil {
		return nil, err
	}
	s.bumpPopularity(ctx, bucket.ID)
	if err := refreshSheetTotals(ctx, s.sheetRepo, s.sheetProblemRepo, sheet); err != nil {
		return nil, err
	}

	return &ImportResult{
		Message:  fmt.Sprintf("Successfully imported %d problems", imported),
		Imported: imported,
		Skipped:  len(bucket.Problems) - imported,
	}, nil
}

func (s *bucketService) CreateSheet(ctx context.Context, userID, bucketID primitive.ObjectID, sheetName string) (*CreatedSheet, error) {
	bucket, err := s.Get(ctx, bucketID)
	if err != nil {
		return nil, err
	}

	// Bucket categories are finer than sheet categories; anything without a
	// sheet counterpart is a DSA topic.
	category := domain.SheetCategory(bucket.Category)
	if !category.Valid() {
		category = domain.CategoryDSA
	}

	name := strings.TrimSpace(sheetName)
	if name == "" {
		name = bucket.Name
	}
	sheet := &domain.Sheet{
		UserID:      userID,
		Name:        name,
		Description: bucket.Description,
		Category:    category,
		Color:       bucket.Color,
		Icon:        bucket.Icon,
		IsActive:    true,
		Topics:      make([]domain.Topic, 0, len(bucket.Topics)),
	}
	if sheet.Color == "" {
		sheet.Color = defaultSheetColor
	}
	if sheet.Icon == "" {
		sheet.Icon = defaultSheetIcon
	}
	for i, topic := range bucket.Topics {
		n := 0
		for _, bp := range bucket.Problems {
			if bp.Topic == topic {
				n++
			}
		}
		sheet.Topics = append(sheet.Topics, domain.Topic{Name: topic, TotalProblems: n, Order: i + 1})
	}
	if err := sheet.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	sheetID, err := s.sheetRepo.Create(ctx, sheet)
	if err != nil {
		return nil, err
	}
	sheet.ID = sheetID

	problems := make([]domain.SheetProblem, len(bucket.Problems))
	for i, bp := range bucket.Problems {
		problems[i] = sheetProblemFromBucket(userID, sheetID, bp, i)
	}
	added, err := s.sheetProblemRepo.CreateMany(ctx, problems)
	if err != nil {
		return nil, err
	}
	s.bumpPopularity(ctx, bucket.ID)
	if err := refreshSheetTotals(ctx, s.sheetRepo, s.sheetProblemRepo, sheet); err != nil {
		return nil, err
	}

	return &CreatedSheet{
		Message:       "Sheet created successfully",
		Sheet:         newSheetView(sheet),
		ProblemsAdded: added,
	}, nil
}

func (s *bucketService) bumpPopularity(ctx context.Context, id primitive.ObjectID) {
	if err := s.bucketRepo.IncrementPopularity(ctx, id); err != nil {
		log.Printf("WARN: Failed to bump popularity of bucket %s: %v", id.Hex(), err)
	}
}

func (s *bucketService) Upsert(ctx context.Context, in BucketInput) (*domain.Bucket, error) {
	b := &domain.Bucket{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    in.Category,
		Icon:        in.Icon,
		Color:       in.Color,
		Problems:    make([]domain.BucketProblem, len(in.Problems)),
		IsActive:    true,
	}
	for i, p := range in.Problems {
		if p.Tags == nil {
			p.Tags = []string{}
		}
		if p.Order == 0 {
			p.Order = i
		}
		if p.Platform == "" {
			p.Platform = domain.DetectPlatform(p.ProblemLink)
		}
		b.Problems[i] = p
	}
	if b.Category == "" {
		b.Category = "dsa"
	}
	if err := b.Validate(); err != nil {
		return nil, invalidInput(err)
	}
	b.RecomputeStats()

	return s.bucketRepo.UpsertByName(ctx, b)
}
