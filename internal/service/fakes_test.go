package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"alcyxob/challenge75/internal/domain"
	"alcyxob/challenge75/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories used by the service tests. They mirror the owner
// scoping and not-found behaviour of the MongoDB implementations.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	u.Email = strings.ToLower(u.Email)
	cp := *u
	r.users[u.ID] = &cp
	return u.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

// seedUser stores a user starting the challenge on start.
func (r *fakeUserRepo) seedUser(start time.Time) *domain.User {
	u := &domain.User{
		ID:        primitive.NewObjectID(),
		Name:      "Test User",
		Email:     primitive.NewObjectID().Hex() + "@example.com",
		Role:      domain.RoleUser,
		StartDate: domain.Day(start),
	}
	r.users[u.ID] = u
	return u
}

type dayKey struct {
	user primitive.ObjectID
	day  string
}

func keyOf(userID primitive.ObjectID, date time.Time) dayKey {
	return dayKey{user: userID, day: domain.FormatDay(domain.Day(date))}
}

type fakeDailyLogRepo struct {
	logs map[dayKey]domain.DailyLog
}

func newFakeDailyLogRepo() *fakeDailyLogRepo {
	return &fakeDailyLogRepo{logs: map[dayKey]domain.DailyLog{}}
}

func (r *fakeDailyLogRepo) GetByUserAndDate(_ context.Context, userID primitive.ObjectID, date time.Time) (*domain.DailyLog, error) {
	dl, ok := r.logs[keyOf(userID, date)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &dl, nil
}

func (r *fakeDailyLogRepo) Upsert(_ context.Context, dl *domain.DailyLog) (*domain.DailyLog, error) {
	dl.Date = domain.Day(dl.Date)
	if dl.ID.IsZero() {
		dl.ID = primitive.NewObjectID()
	}
	r.logs[keyOf(dl.UserID, dl.Date)] = *dl
	saved := *dl
	return &saved, nil
}

func (r *fakeDailyLogRepo) filter(userID primitive.ObjectID, keep func(domain.DailyLog) bool, desc bool) []domain.DailyLog {
	out := []domain.DailyLog{}
	for k, dl := range r.logs {
		if k.user == userID && keep(dl) {
			out = append(out, dl)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if desc {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func (r *fakeDailyLogRepo) ListByUser(_ context.Context, userID primitive.ObjectID, dr repository.DateRange, limit int64) ([]domain.DailyLog, error) {
	out := r.filter(userID, func(dl domain.DailyLog) bool {
		if !dr.From.IsZero() && dl.Date.Before(domain.Day(dr.From)) {
			return false
		}
		if !dr.To.IsZero() && dl.Date.After(domain.Day(dr.To)) {
			return false
		}
		return true
	}, true)
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeDailyLogRepo) ListAllByUser(_ context.Context, userID primitive.ObjectID) ([]domain.DailyLog, error) {
	return r.filter(userID, func(domain.DailyLog) bool { return true }, false), nil
}

func (r *fakeDailyLogRepo) ListByUserBetween(_ context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.DailyLog, error) {
	return r.filter(userID, func(dl domain.DailyLog) bool {
		return !dl.Date.Before(domain.Day(from)) && !dl.Date.After(domain.Day(to))
	}, false), nil
}

func (r *fakeDailyLogRepo) DeleteByUserAndDate(_ context.Context, userID primitive.ObjectID, date time.Time) error {
	k := keyOf(userID, date)
	if _, ok := r.logs[k]; !ok {
		return repository.ErrNotFound
	}
	delete(r.logs, k)
	return nil
}

func (r *fakeDailyLogRepo) IncrementProblemsSolved(_ context.Context, userID primitive.ObjectID, date time.Time, platform domain.Platform, n int) (primitive.ObjectID, error) {
	k := keyOf(userID, date)
	dl, ok := r.logs[k]
	if !ok {
		return primitive.NilObjectID, repository.ErrNotFound
	}
	switch platform {
	case domain.PlatformLeetCode:
		dl.LeetCode.ProblemsSolved += n
	case domain.PlatformCodeChef:
		dl.CodeChef.ProblemsSolved += n
	case domain.PlatformCodeforces:
		dl.Codeforces.ProblemsSolved += n
	}
	r.logs[k] = dl
	return dl.ID, nil
}

type fakePhysiqueRepo struct {
	logs map[dayKey]domain.PhysiqueLog
}

func newFakePhysiqueRepo() *fakePhysiqueRepo {
	return &fakePhysiqueRepo{logs: map[dayKey]domain.PhysiqueLog{}}
}

func (r *fakePhysiqueRepo) GetByUserAndDate(_ context.Context, userID primitive.ObjectID, date time.Time) (*domain.PhysiqueLog, error) {
	pl, ok := r.logs[keyOf(userID, date)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &pl, nil
}

func (r *fakePhysiqueRepo) Upsert(_ context.Context, pl *domain.PhysiqueLog) (*domain.PhysiqueLog, error) {
	if pl.ID.IsZero() {
		pl.ID = primitive.NewObjectID()
	}
	r.logs[keyOf(pl.UserID, pl.Date)] = *pl
	saved := *pl
	return &saved, nil
}

func (r *fakePhysiqueRepo) ListByUser(_ context.Context, userID primitive.ObjectID, ascending bool) ([]domain.PhysiqueLog, error) {
	out := []domain.PhysiqueLog{}
	for k, pl := range r.logs {
		if k.user == userID {
			out = append(out, pl)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if ascending {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (r *fakePhysiqueRepo) GetByID(_ context.Context, id, userID primitive.ObjectID) (*domain.PhysiqueLog, error) {
	for _, pl := range r.logs {
		if pl.ID == id && pl.UserID == userID {
			cp := pl
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePhysiqueRepo) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	for k, pl := range r.logs {
		if pl.ID == id && pl.UserID == userID {
			delete(r.logs, k)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakePhotoRepo struct {
	photos map[primitive.ObjectID]domain.ProgressPhoto
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{photos: map[primitive.ObjectID]domain.ProgressPhoto{}}
}

func (r *fakePhotoRepo) Create(_ context.Context, p *domain.ProgressPhoto) (primitive.ObjectID, error) {
	for _, existing := range r.photos {
		if existing.S3ObjectKey == p.S3ObjectKey {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	p.ID = primitive.NewObjectID()
	r.photos[p.ID] = *p
	return p.ID, nil
}

func (r *fakePhotoRepo) GetByID(_ context.Context, id, userID primitive.ObjectID) (*domain.ProgressPhoto, error) {
	p, ok := r.photos[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *fakePhotoRepo) ListByPhysiqueLog(_ context.Context, logID, userID primitive.ObjectID) ([]domain.ProgressPhoto, error) {
	out := []domain.ProgressPhoto{}
	for _, p := range r.photos {
		if p.PhysiqueLogID == logID && p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].S3ObjectKey < out[j].S3ObjectKey })
	return out, nil
}

func (r *fakePhotoRepo) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	p, ok := r.photos[id]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.photos, id)
	return nil
}

func (r *fakePhotoRepo) DeleteByPhysiqueLog(_ context.Context, logID, userID primitive.ObjectID) error {
	for id, p := range r.photos {
		if p.PhysiqueLogID == logID && p.UserID == userID {
			delete(r.photos, id)
		}
	}
	return nil
}

type fakeStorage struct {
	deleted []string
}

func (s *fakeStorage) GeneratePresignedUploadURL(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	return "https://s3.test/put/" + key, nil
}

func (s *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://s3.test/get/" + key, nil
}

func (s *fakeStorage) DeleteObject(_ context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

type fakeSheetRepo struct {
	sheets map[primitive.ObjectID]domain.Sheet
}

func newFakeSheetRepo() *fakeSheetRepo {
	return &fakeSheetRepo{sheets: map[primitive.ObjectID]domain.Sheet{}}
}

func (r *fakeSheetRepo) Create(_ context.Context, s *domain.Sheet) (primitive.ObjectID, error) {
	s.ID = primitive.NewObjectID()
	s.CreatedAt = time.Now()
	cp := *s
	cp.Topics = append([]domain.Topic{}, s.Topics...)
	r.sheets[s.ID] = cp
	return s.ID, nil
}

func (r *fakeSheetRepo) GetByID(_ context.Context, id, userID primitive.ObjectID) (*domain.Sheet, error) {
	s, ok := r.sheets[id]
	if !ok || s.UserID != userID {
		return nil, repository.ErrNotFound
	}
	s.Topics = append([]domain.Topic{}, s.Topics...)
	return &s, nil
}

func (r *fakeSheetRepo) ListActiveByUser(_ context.Context, userID primitive.ObjectID) ([]domain.Sheet, error) {
	out := []domain.Sheet{}
	for _, s := range r.sheets {
		if s.UserID == userID && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSheetRepo) Update(_ context.Context, s *domain.Sheet) error {
	stored, ok := r.sheets[s.ID]
	if !ok || stored.UserID != s.UserID {
		return repository.ErrNotFound
	}
	cp := *s
	cp.Topics = append([]domain.Topic{}, s.Topics...)
	// counters only move through SetTotals
	cp.TotalProblems, cp.SolvedProblems = stored.TotalProblems, stored.SolvedProblems
	r.sheets[s.ID] = cp
	return nil
}

func (r *fakeSheetRepo) SetTotals(_ context.Context, id primitive.ObjectID, total, solved int) error {
	s, ok := r.sheets[id]
	if !ok {
		return repository.ErrNotFound
	}
	s.TotalProblems, s.SolvedProblems = total, solved
	r.sheets[id] = s
	return nil
}

func (r *fakeSheetRepo) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	s, ok := r.sheets[id]
	if !ok || s.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.sheets, id)
	return nil
}

type fakeSheetProblemRepo struct {
	problems map[primitive.ObjectID]domain.SheetProblem
}

func newFakeSheetProblemRepo() *fakeSheetProblemRepo {
	return &fakeSheetProblemRepo{problems: map[primitive.ObjectID]domain.SheetProblem{}}
}

func (r *fakeSheetProblemRepo) Create(_ context.Context, p *domain.SheetProblem) (primitive.ObjectID, error) {
	p.ID = primitive.NewObjectID()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	r.problems[p.ID] = *p
	return p.ID, nil
}

func (r *fakeSheetProblemRepo) CreateMany(ctx context.Context, ps []domain.SheetProblem) (int, error) {
	for i := range ps {
		if _, err := r.Create(ctx, &ps[i]); err != nil {
			return i, err
		}
	}
	return len(ps), nil
}

func (r *fakeSheetProblemRepo) GetByID(_ context.Context, id, userID primitive.ObjectID) (*domain.SheetProblem, error) {
	p, ok := r.problems[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *fakeSheetProblemRepo) ListBySheet(_ context.Context, sheetID, userID primitive.ObjectID) ([]domain.SheetProblem, error) {
	out := []domain.SheetProblem{}
	for _, p := range r.problems {
		if p.SheetID == sheetID && p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Topic != out[j].Topic {
			return out[i].Topic < out[j].Topic
		}
		return out[i].Order < out[j].Order
	})
	return out, nil
}

func (r *fakeSheetProblemRepo) Update(_ context.Context, p *domain.SheetProblem) error {
	stored, ok := r.problems[p.ID]
	if !ok || stored.UserID != p.UserID {
		return repository.ErrNotFound
	}
	r.problems[p.ID] = *p
	return nil
}

func (r *fakeSheetProblemRepo) UpdateStatus(_ context.Context, id, userID primitive.ObjectID, status domain.SheetProblemStatus, at *time.Time) (*domain.SheetProblem, error) {
	p, ok := r.problems[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrNotFound
	}
	p.Status = status
	if at != nil {
		t := *at
		p.LastAttemptedAt = &t
	}
	if status == domain.SheetStatusRevision {
		p.RevisionCount++
	}
	r.problems[id] = p
	return &p, nil
}

func (r *fakeSheetProblemRepo) Delete(_ context.Context, id, userID primitive.ObjectID) (*domain.SheetProblem, error) {
	p, ok := r.problems[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrNotFound
	}
	delete(r.problems, id)
	return &p, nil
}

func (r *fakeSheetProblemRepo) DeleteBySheet(_ context.Context, sheetID, userID primitive.ObjectID) error {
	for id, p := range r.problems {
		if p.SheetID == sheetID && p.UserID == userID {
			delete(r.problems, id)
		}
	}
	return nil
}

func (r *fakeSheetProblemRepo) CountBySheet(_ context.Context, sheetID primitive.ObjectID) (int, error) {
	n := 0
	for _, p := range r.problems {
		if p.SheetID == sheetID {
			n++
		}
	}
	return n, nil
}

func (r *fakeSheetProblemRepo) MaxOrderInTopic(_ context.Context, sheetID primitive.ObjectID, topic string) (int, error) {
	max := -1
	for _, p := range r.problems {
		if p.SheetID == sheetID && p.Topic == topic && p.Order > max {
			max = p.Order
		}
	}
	return max, nil
}

func (r *fakeSheetProblemRepo) CountStatusBySheet(_ context.Context, sheetID primitive.ObjectID) (repository.StatusCount, error) {
	var c repository.StatusCount
	for _, p := range r.problems {
		if p.SheetID == sheetID {
			c.Total++
			if p.Status == domain.SheetStatusSolved {
				c.Solved++
			}
		}
	}
	return c, nil
}

type fakeProblemRepo struct {
	problems  map[primitive.ObjectID]domain.Problem
	createErr error
}

func newFakeProblemRepo() *fakeProblemRepo {
	return &fakeProblemRepo{problems: map[primitive.ObjectID]domain.Problem{}}
}

func (r *fakeProblemRepo) Create(_ context.Context, p *domain.Problem) (primitive.ObjectID, error) {
	if r.createErr != nil {
		return primitive.NilObjectID, r.createErr
	}
	p.ID = primitive.NewObjectID()
	r.problems[p.ID] = *p
	return p.ID, nil
}

func (r *fakeProblemRepo) GetByID(_ context.Context, id, userID primitive.ObjectID) (*domain.Problem, error) {
	p, ok := r.problems[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *fakeProblemRepo) matching(userID primitive.ObjectID, f repository.ProblemFilter) []domain.Problem {
	out := []domain.Problem{}
	for _, p := range r.problems {
		if p.UserID != userID {
			continue
		}
		if f.Platform != "" && p.Platform != f.Platform {
			continue
		}
		if f.Difficulty != "" && p.Difficulty != f.Difficulty {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.SheetID != nil && (p.SheetID == nil || *p.SheetID != *f.SheetID) {
			continue
		}
		if f.Tag != "" && !containsString(p.Tags, f.Tag) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SolvedAt.After(out[j].SolvedAt) })
	return out
}

func containsString(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}

func (r *fakeProblemRepo) List(_ context.Context, userID primitive.ObjectID, f repository.ProblemFilter, skip, limit int64) ([]domain.Problem, error) {
	all := r.matching(userID, f)
	if skip >= int64(len(all)) {
		return []domain.Problem{}, nil
	}
	end := skip + limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[skip:end], nil
}

func (r *fakeProblemRepo) Count(_ context.Context, userID primitive.ObjectID, f repository.ProblemFilter) (int64, error) {
	return int64(len(r.matching(userID, f))), nil
}

func (r *fakeProblemRepo) ListSolvedBetween(_ context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.Problem, error) {
	out := []domain.Problem{}
	for _, p := range r.matching(userID, repository.ProblemFilter{}) {
		if !p.SolvedAt.Before(from) && p.SolvedAt.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProblemRepo) ListAllByUser(_ context.Context, userID primitive.ObjectID) ([]domain.Problem, error) {
	return r.matching(userID, repository.ProblemFilter{}), nil
}

func (r *fakeProblemRepo) ListBySheet(_ context.Context, sheetID, userID primitive.ObjectID) ([]domain.Problem, error) {
	return r.matching(userID, repository.ProblemFilter{SheetID: &sheetID}), nil
}

func (r *fakeProblemRepo) bySheetProblem(spID primitive.ObjectID) (primitive.ObjectID, bool) {
	for id, p := range r.problems {
		if p.SheetProblemID != nil && *p.SheetProblemID == spID {
			return id, true
		}
	}
	return primitive.NilObjectID, false
}

func (r *fakeProblemRepo) UpsertForSheetProblem(_ context.Context, p *domain.Problem) error {
	id, ok := r.bySheetProblem(*p.SheetProblemID)
	if !ok {
		id = primitive.NewObjectID()
	}
	p.ID = id
	r.problems[id] = *p
	return nil
}

func (r *fakeProblemRepo) DeleteForSheetProblem(_ context.Context, spID, userID primitive.ObjectID) error {
	if id, ok := r.bySheetProblem(spID); ok && r.problems[id].UserID == userID {
		delete(r.problems, id)
	}
	return nil
}

func (r *fakeProblemRepo) Update(_ context.Context, p *domain.Problem) error {
	stored, ok := r.problems[p.ID]
	if !ok || stored.UserID != p.UserID {
		return repository.ErrNotFound
	}
	r.problems[p.ID] = *p
	return nil
}

func (r *fakeProblemRepo) SetDailyLog(_ context.Context, id, userID, dailyLogID primitive.ObjectID) error {
	p, ok := r.problems[id]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	p.DailyLogID = &dailyLogID
	r.problems[id] = p
	return nil
}

func (r *fakeProblemRepo) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	p, ok := r.problems[id]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.problems, id)
	return nil
}

func (r *fakeProblemRepo) UnlinkSheet(_ context.Context, sheetID primitive.ObjectID) error {
	for id, p := range r.problems {
		if p.SheetID != nil && *p.SheetID == sheetID {
			p.SheetID = nil
			p.SheetTopic = ""
			r.problems[id] = p
		}
	}
	return nil
}

type fakeBucketRepo struct {
	buckets map[primitive.ObjectID]domain.Bucket
}

func newFakeBucketRepo() *fakeBucketRepo {
	return &fakeBucketRepo{buckets: map[primitive.ObjectID]domain.Bucket{}}
}

func (r *fakeBucketRepo) ListActive(_ context.Context) ([]domain.Bucket, error) {
	out := []domain.Bucket{}
	for _, b := range r.buckets {
		if b.IsActive {
			b.Problems = nil
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Popularity != out[j].Popularity {
			return out[i].Popularity > out[j].Popularity
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *fakeBucketRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Bucket, error) {
	b, ok := r.buckets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (r *fakeBucketRepo) UpsertByName(_ context.Context, b *domain.Bucket) (*domain.Bucket, error) {
	for id, existing := range r.buckets {
		if existing.Name == b.Name {
			b.ID = id
			b.Popularity = existing.Popularity
			r.buckets[id] = *b
			saved := *b
			return &saved, nil
		}
	}
	b.ID = primitive.NewObjectID()
	r.buckets[b.ID] = *b
	saved := *b
	return &saved, nil
}

func (r *fakeBucketRepo) IncrementPopularity(_ context.Context, id primitive.ObjectID) error {
	b, ok := r.buckets[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.Popularity++
	r.buckets[id] = b
	return nil
}

// fixedClock pins "today" for deterministic day numbers.
func fixedClock(day string) Clock {
	t, err := time.Parse(domain.DateLayout, day)
	if err != nil {
		panic(err)
	}
	noon := t.Add(12 * time.Hour)
	return Clock{Now: func() time.Time { return noon }, Location: time.UTC}
}

func mustDay(s string) time.Time {
	t, err := domain.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }
