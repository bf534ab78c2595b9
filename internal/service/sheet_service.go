package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultSheetColor = "#39FF14"
	defaultSheetIcon  = "code"
)

// SheetView adds the derived completion percentage to a sheet.
type SheetView struct {
	domain.Sheet
	CompletionPercentage int `json:"completionPercentage"`
}

func newSheetView(s *domain.Sheet) SheetView {
	return SheetView{Sheet: *s, CompletionPercentage: s.CompletionPercentage()}
}

// SheetDetails is a sheet with the problem-log entries linked to it.
type SheetDetails struct {
	Sheet    SheetView        `json:"sheet"`
	Problems []domain.Problem `json:"problems"`
}

type SheetInput struct {
	Name        string
	Description string
	Category    domain.SheetCategory
	Color       string
	Icon        string
	Topics      []domain.Topic
	UseTemplate bool
	TargetDate  *time.Time
}

// SheetUpdate carries the editable sheet fields; nil means unchanged.
type SheetUpdate struct {
	Name        *string
	Description *string
	Category    *domain.SheetCategory
	Color       *string
	Icon        *string
	IsActive    *bool
	TargetDate  *time.Time
}

type TopicInput struct {
	Name          string
	Description   string
	TotalProblems int
}

type SheetService interface {
	Templates() []SheetTemplate
	Create(ctx context.Context, userID primitive.ObjectID, in SheetInput) (*SheetView, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]SheetView, error)
	Get(ctx context.Context, userID, id primitive.ObjectID) (*SheetDetails, error)
	Update(ctx context.Context, userID, id primitive.ObjectID, in SheetUpdate) (*SheetView, error)
	// Delete removes the sheet and its entries and unlinks problem-log entries.
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
	AddTopic(ctx context.Context, userID, id primitive.ObjectID, in TopicInput) (*SheetView, error)
	UpdateTopicProgress(ctx context.Context, userID, id primitive.ObjectID, topicName string, solved, total *int) (*SheetView, error)
}

type sheetService struct {
	sheetRepo        repository.SheetRepository
	sheetProblemRepo repository.SheetProblemRepository
	problemRepo      repository.ProblemRepository
}

func NewSheetService(
	sheetRepo repository.SheetRepository,
	sheetProblemRepo repository.SheetProblemRepository,
	problemRepo repository.ProblemRepository,
) SheetService {
	return &sheetService{
		sheetRepo:        sheetRepo,
		sheetProblemRepo: sheetProblemRepo,
		problemRepo:      problemRepo,
	}
}

func (s *sheetService) Templates() []SheetTemplate {
	out := make([]SheetTemplate, len(sheetTemplates))
	for i, t := range sheetTemplates {
		t.Topics = append([]domain.Topic(nil), t.Topics...)
		out[i] = t
	}
	return out
}

func (s *sheetService) Create(ctx context.Context, userID primitive.ObjectID, in SheetInput) (*SheetView, error) {
	sheet := &domain.Sheet{
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    in.Category,
		Color:       in.Color,
		Icon:        in.Icon,
		IsActive:    true,
		TargetDate:  in.TargetDate,
	}
	for i, t := range in.Topics {
		t.SolvedProblems = 0
		if t.Order == 0 {
			t.Order = i + 1
		}
		sheet.Topics = append(sheet.Topics, t)
	}

	if tmpl, ok := templateFor(in.Category); ok && in.UseTemplate {
		if sheet.Name == "" {
			sheet.Name = tmpl.Name
		}
		if sheet.Description == "" {
			sheet.Description = tmpl.Description
		}
		if sheet.Color == "" {
			sheet.Color = tmpl.Color
		}
		if sheet.Icon == "" {
			sheet.Icon = tmpl.Icon
		}
		sheet.Topics = append([]domain.Topic(nil), tmpl.Topics...)
	}
	if sheet.Color == "" {
		sheet.Color = defaultSheetColor
	}
	if sheet.Icon == "" {
		sheet.Icon = defaultSheetIcon
	}
	if sheet.Topics == nil {
		sheet.Topics = []domain.Topic{}
	}
	if err := validateTopics(sheet.Topics); err != nil {
		return nil, err
	}
	if err := sheet.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	// A new sheet has no entries yet, so its counters come from the topics.
	sheet.TotalProblems, sheet.SolvedProblems = sheetTotals(sheet, repository.StatusCount{})

	id, err := s.sheetRepo.Create(ctx, sheet)
	if err != nil {
		return nil, err
	}
	sheet.ID = id
	view := newSheetView(sheet)
	return &view, nil
}

func validateTopics(topics []domain.Topic) error {
	seen := make(map[string]bool, len(topics))
	for _, t := range topics {
		if strings.TrimSpace(t.Name) == "" {
			return invalidf("topic name is required")
		}
		if seen[t.Name] {
			return invalidf("duplicate topic %q", t.Name)
		}
		seen[t.Name] = true
		if t.TotalProblems < 0 || t.SolvedProblems < 0 {
			return invalidf("topic %q counters must be >= 0", t.Name)
		}
	}
	return nil
}

func (s *sheetService) List(ctx context.Context, userID primitive.ObjectID) ([]SheetView, error) {
	sheets, err := s.sheetRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]SheetView, len(sheets))
	for i := range sheets {
		views[i] = newSheetView(&sheets[i])
	}
	return views, nil
}

func (s *sheetService) Get(ctx context.Context, userID, id primitive.ObjectID) (*SheetDetails, error) {
	sheet, err := loadSheet(ctx, s.sheetRepo, id, userID)
	if err != nil {
		return nil, err
	}
	problems, err := s.problemRepo.ListBySheet(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return &SheetDetails{Sheet: newSheetView(sheet), Problems: problems}, nil
}

func (s *sheetService) Update(ctx context.Context, userID, id primitive.ObjectID, in SheetUpdate) (*SheetView, error) {
	sheet, err := loadSheet(ctx, s.sheetRepo, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		sheet.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		sheet.Description = *in.Description
	}
	if in.Category != nil {
		sheet.Category = *in.Category
	}
	if in.Color != nil {
		sheet.Color = *in.Color
	}
	if in.Icon != nil {
		sheet.Icon = *in.Icon
	}
	if in.IsActive != nil {
		sheet.IsActive = *in.IsActive
	}
	if in.TargetDate != nil {
		td := domain.Day(*in.TargetDate)
		sheet.TargetDate = &td
	}
	if err := sheet.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.sheetRepo.Update(ctx, sheet); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSheetNotFound
		}
		return nil, err
	}
	view := newSheetView(sheet)
	return &view, nil
}

func (s *sheetService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	if err := s.sheetRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSheetNotFound
		}
		return err
	}
	if err := s.problemRepo.UnlinkSheet(ctx, id); err != nil {
		return err
	}
	return s.sheetProblemRepo.DeleteBySheet(ctx, id, userID)
}

func (s *sheetService) AddTopic(ctx context.Context, userID, id primitive.ObjectID, in TopicInput) (*SheetView, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, invalidf("topic name is required")
	}
	if in.TotalProblems < 0 {
		return nil, invalidf("totalProblems must be >= 0")
	}

	sheet, err := loadSheet(ctx, s.sheetRepo, id, userID)
	if err != nil {
		return nil, err
	}
	if sheet.FindTopic(in.Name) != nil {
		return nil, invalidf("topic %q already exists", in.Name)
	}

	sheet.Topics = append(sheet.Topics, domain.Topic{
		Name:          in.Name,
		Description:   in.Description,
		TotalProblems: in.TotalProblems,
		Order:         len(sheet.Topics) + 1,
	})
	return s.saveTopics(ctx, sheet)
}

func (s *sheetService) UpdateTopicProgress(ctx context.Context, userID, id primitive.ObjectID, topicName string, solved, total *int) (*SheetView, error) {
	if (solved != nil && *solved < 0) || (total != nil && *total < 0) {
		return nil, invalidf("topic counters must be >= 0")
	}

	sheet, err := loadSheet(ctx, s.sheetRepo, id, userID)
	if err != nil {
		return nil, err
	}
	topic := sheet.FindTopic(topicName)
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	if solved != nil {
		topic.SolvedProblems = *solved
	}
	if total != nil {
		topic.TotalProblems = *total
	}
	return s.saveTopics(ctx, sheet)
}

func (s *sheetService) saveTopics(ctx context.Context, sheet *domain.Sheet) (*SheetView, error) {
	if err := s.sheetRepo.Update(ctx, sheet); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSheetNotFound
		}
		return nil, err
	}
	if err := refreshSheetTotals(ctx, s.sheetRepo, s.sheetProblemRepo, sheet); err != nil {
		return nil, err
	}
	view := newSheetView(sheet)
	return &view, nil
}
