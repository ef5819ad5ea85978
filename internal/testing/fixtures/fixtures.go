// Package fixtures provides test data factories for trivia tests.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	q := f.CreateTrivia(t)
//	q2 := f.CreateTrivia(t, fixtures.WithTitle("What is Go?"))
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"testing"
	"time"

	"github.com/forgo/trivia/api/internal/database"
	"github.com/forgo/trivia/api/internal/model"
)

// Store is the subset of the trivia repository the factory needs
type Store interface {
	Create(ctx context.Context, q *model.TriviaQuestion) error
}

// Factory creates test entities
type Factory struct {
	store Store
}

// New creates a fixture factory that writes through the SurrealDB trivia table
func New(db database.Database) *Factory {
	return &Factory{store: &surrealStore{db: db}}
}

// NewWithStore creates a fixture factory backed by any store, such as an
// in-memory fake used by handler tests
func NewWithStore(store Store) *Factory {
	return &Factory{store: store}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ============================================================================
// Trivia Fixtures
// ============================================================================

// TriviaOpts customizes question creation
type TriviaOpts struct {
	Title   string
	Options []string
	Correct string
}

// WithTitle overrides the generated title
func WithTitle(title string) func(*TriviaOpts) {
	return func(o *TriviaOpts) { o.Title = title }
}

// WithOptions overrides the options; correct becomes the first option
func WithOptions(options ...string) func(*TriviaOpts) {
	return func(o *TriviaOpts) {
		o.Options = options
		if len(options) > 0 {
			o.Correct = options[0]
		}
	}
}

// CreateTrivia creates a valid question with optional customizations
func (f *Factory) CreateTrivia(t *testing.T, opts ...func(*TriviaOpts)) *model.TriviaQuestion {
	t.Helper()

	suffix := randomID()
	o := &TriviaOpts{
		Title:   "Question " + suffix,
		Options: []string{"Answer " + suffix, "Decoy " + suffix},
	}
	o.Correct = o.Options[0]
	for _, opt := range opts {
		opt(o)
	}

	q := &model.TriviaQuestion{Title: o.Title, Options: o.Options, Correct: o.Correct}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := f.store.Create(ctx, q); err != nil {
		t.Fatalf("fixtures: failed to create trivia: %v", err)
	}
	return q
}

// CreateTriviaBatch creates n questions with generated content
func (f *Factory) CreateTriviaBatch(t *testing.T, n int) []*model.TriviaQuestion {
	t.Helper()
	out := make([]*model.TriviaQuestion, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, f.CreateTrivia(t))
	}
	return out
}

// surrealStore inserts fixtures with a raw CREATE so that repository tests do
// not depend on the code under test for their setup
type surrealStore struct {
	db database.Database
}

func (s *surrealStore) Create(ctx context.Context, q *model.TriviaQuestion) error {
	key := randomID() + randomID()
	err := s.db.Execute(ctx, `CREATE type::thing("trivia", $id) CONTENT {
		title: $title,
		options: $options,
		correct: $correct
	}`, map[string]interface{}{
		"id":      key,
		"title":   q.Title,
		"options": q.Options,
		"correct": q.Correct,
	})
	if err != nil {
		return err
	}
	q.ID = key
	return nil
}
