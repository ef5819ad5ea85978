package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/forgo/trivia/api/internal/model"
	"github.com/forgo/trivia/api/internal/pagination"
	"github.com/forgo/trivia/api/internal/repository"
)

// TriviaRepository defines the data access the trivia service needs
type TriviaRepository interface {
	Count(ctx context.Context, filter repository.TriviaFilter) (int64, error)
	List(ctx context.Context, filter repository.TriviaFilter, limit, start int) ([]*model.TriviaQuestion, error)
	RandomAt(ctx context.Context, index int) (*model.TriviaQuestion, error)
	GetByID(ctx context.Context, id string) (*model.TriviaQuestion, error)
	Create(ctx context.Context, q *model.TriviaQuestion) error
	Update(ctx context.Context, id string, fields map[string]interface{}) (*model.TriviaQuestion, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// TriviaService handles trivia question business logic
type TriviaService struct {
	repo   TriviaRepository
	intN   func(n int64) int64
	logger *slog.Logger
}

// TriviaServiceConfig holds configuration for the trivia service
type TriviaServiceConfig struct {
	Repo TriviaRepository
	// IntN returns a value in [0, n). Defaults to math/rand/v2.Int64N.
	IntN   func(n int64) int64
	Logger *slog.Logger
}

// NewTriviaService creates a new trivia service
func NewTriviaService(cfg TriviaServiceConfig) *TriviaService {
	intN := cfg.IntN
	if intN == nil {
		intN = rand.Int64N
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &TriviaService{
		repo:   cfg.Repo,
		intN:   intN,
		logger: logger,
	}
}

// List returns one page of the whole collection
func (s *TriviaService) List(ctx context.Context, params pagination.Params) (*model.TriviaPage, error) {
	return s.page(ctx, repository.TriviaFilter{}, params, ErrNoData)
}

// Search returns one page of the questions whose title or options contain
// text, ignoring case
func (s *TriviaService) Search(ctx context.Context, text string, params pagination.Params) (*model.TriviaPage, error) {
	if err := params.Validate(); err != nil {
		pagination.RecordError("validation")
		return nil, fmt.Errorf("%w: %v", ErrInvalidPagination, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrSearchQueryRequired
	}
	return s.page(ctx, repository.TriviaFilter{Text: text}, params, ErrNoMatches)
}

// page counts the filtered set, checks the window, then fetches it.
// emptyErr is returned when the filtered set has no documents.
func (s *TriviaService) page(ctx context.Context, filter repository.TriviaFilter, params pagination.Params, emptyErr error) (*model.TriviaPage, error) {
	if err := params.Validate(); err != nil {
		pagination.RecordError("validation")
		return nil, fmt.Errorf("%w: %v", ErrInvalidPagination, err)
	}

	start := time.Now()
	total, err := s.repo.Count(ctx, filter)
	pagination.RecordDuration("count", time.Since(start).Seconds())
	if err != nil {
		pagination.RecordError("database")
		s.logger.Error("failed to count trivia", slog.String("error", err.Error()))
		return nil, err
	}
	if filter.Text == "" {
		pagination.UpdateTotalCount(total)
	}

	if total == 0 {
		pagination.RecordError("no_data")
		return nil, emptyErr
	}

	offset := params.Offset()
	if !pagination.InRange(offset, total) {
		pagination.RecordError("out_of_range")
		return nil, ErrPageOutOfRange
	}

	start = time.Now()
	docs, err := s.repo.List(ctx, filter, params.Limit, offset)
	pagination.RecordDuration("list", time.Since(start).Seconds())
	if err != nil {
		pagination.RecordError("database")
		s.logger.Error("failed to list trivia", slog.String("error", err.Error()))
		return nil, err
	}

	out := make([]*model.TriviaQuestion, len(docs))
	for i, q := range docs {
		out[i] = q.WithoutID()
	}

	return &model.TriviaPage{
		Page:           params.Page,
		Limit:          params.Limit,
		TotalDocuments: total,
		TotalPages:     pagination.CalculateTotalPages(total, params.Limit),
		Documents:      out,
	}, nil
}

// Random draws a uniformly random index and returns the question at that
// position. The store gives no ordering guarantee, so repeated calls are
// independent draws rather than a shuffle.
func (s *TriviaService) Random(ctx context.Context) (*model.TriviaQuestion, error) {
	total, err := s.repo.Count(ctx, repository.TriviaFilter{})
	if err != nil {
		s.logger.Error("failed to count trivia", slog.String("error", err.Error()))
		return nil, err
	}
	pagination.UpdateTotalCount(total)
	if total == 0 {
		return nil, ErrNoData
	}

	index := s.intN(total)
	q, err := s.repo.RandomAt(ctx, int(index))
	if err != nil {
		s.logger.Error("failed to draw random trivia", slog.Int64("index", index), slog.String("error", err.Error()))
		return nil, err
	}
	// Shrunk between count and draw
	if q == nil {
		return nil, ErrNoData
	}

	return q.WithoutID(), nil
}

// Get retrieves a question by ID
func (s *TriviaService) Get(ctx context.Context, id string) (*model.TriviaQuestion, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get trivia", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}
	if q == nil {
		return nil, ErrTriviaNotFound
	}
	return q.WithoutID(), nil
}

// Create validates and stores a new question. The returned question carries
// its assigned ID.
func (s *TriviaService) Create(ctx context.Context, payload model.TriviaPayload) (*model.TriviaQuestion, error) {
	if fe := payload.Validate(); fe != nil {
		return nil, fe
	}

	q := payload.Question()
	if err := s.repo.Create(ctx, q); err != nil {
		s.logger.Error("failed to create trivia", slog.String("error", err.Error()))
		return nil, err
	}

	s.logger.Info("trivia created", slog.String("id", q.ID))
	return q, nil
}

// Update merges the fields present in payload into an existing question.
// The merged result must still satisfy the same rules as Create.
func (s *TriviaService) Update(ctx context.Context, id string, payload model.TriviaPayload) (*model.TriviaQuestion, error) {
	req, fe := payload.ParseUpdate()
	if fe != nil {
		return nil, fe
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get trivia", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}
	if existing == nil {
		return nil, ErrTriviaNotFound
	}

	if req.IsEmpty() {
		return existing.WithoutID(), nil
	}

	if fe := req.Apply(existing).Payload().Validate(); fe != nil {
		return nil, fe
	}

	updated, err := s.repo.Update(ctx, id, req.Fields())
	if err != nil {
		s.logger.Error("failed to update trivia", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}
	// Deleted between read and write
	if updated == nil {
		return nil, ErrTriviaNotFound
	}

	return updated.WithoutID(), nil
}

// Delete removes a question
func (s *TriviaService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete trivia", slog.String("id", id), slog.String("error", err.Error()))
		return err
	}
	if !deleted {
		return ErrTriviaNotFound
	}

	s.logger.Info("trivia deleted", slog.String("id", id))
	return nil
}
