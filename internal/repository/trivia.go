package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/forgo/trivia/api/internal/database"
	"github.com/forgo/trivia/api/internal/model"
)

const triviaTable = "trivia"

// optionSeparator joins options into one searchable string. It cannot occur
// in JSON text typed by a client without an explicit \u0000 escape.
const optionSeparator = "\x00"

// TriviaFilter narrows the collection. The zero value matches every document.
type TriviaFilter struct {
	// Text is matched case-insensitively as a substring of the title or of any option
	Text string
}

func (f TriviaFilter) where(vars map[string]interface{}) string {
	if f.Text == "" {
		return ""
	}
	vars["q"] = strings.ToLower(f.Text)
	vars["sep"] = optionSeparator
	return ` WHERE string::lowercase(title) CONTAINS $q
		OR string::lowercase(array::join(options, $sep)) CONTAINS $q`
}

// TriviaRepository handles trivia question data access
type TriviaRepository struct {
	db database.Database
}

// NewTriviaRepository creates a new trivia repository
func NewTriviaRepository(db database.Database) *TriviaRepository {
	return &TriviaRepository{db: db}
}

// Count returns the number of documents matching filter
func (r *TriviaRepository) Count(ctx context.Context, filter TriviaFilter) (int64, error) {
	vars := map[string]interface{}{}
	query := `SELECT count() AS count FROM trivia` + filter.where(vars) + ` GROUP ALL`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return 0, err
	}

	return extractCount(database.Records(result)), nil
}

// List returns up to limit documents matching filter, skipping the first start.
// Documents are ordered by id so that consecutive windows do not overlap.
func (r *TriviaRepository) List(ctx context.Context, filter TriviaFilter, limit, start int) ([]*model.TriviaQuestion, error) {
	vars := map[string]interface{}{
		"limit": limit,
		"start": start,
	}
	query := `SELECT * FROM trivia` + filter.where(vars) + ` ORDER BY id LIMIT $limit START $start`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseTriviaList(database.Records(result))
}

// RandomAt returns the document at position index in natural store order
func (r *TriviaRepository) RandomAt(ctx context.Context, index int) (*model.TriviaQuestion, error) {
	query := `SELECT * FROM trivia LIMIT 1 START $start`
	vars := map[string]interface{}{"start": index}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseTrivia(result)
}

// GetByID retrieves a question by its key. Returns nil, nil when absent.
func (r *TriviaRepository) GetByID(ctx context.Context, id string) (*model.TriviaQuestion, error) {
	// Direct record access - more efficient than WHERE id =
	query := `SELECT * FROM type::thing($tb, $id)`
	vars := map[string]interface{}{"tb": triviaTable, "id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseTrivia(result)
}

// Create inserts a question and sets its generated ID
func (r *TriviaRepository) Create(ctx context.Context, q *model.TriviaQuestion) error {
	query := `
		CREATE trivia CONTENT {
			title: $title,
			options: $options,
			correct: $correct
		}
	`
	vars := map[string]interface{}{
		"title":   q.Title,
		"options": q.Options,
		"correct": q.Correct,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := parseTrivia(result)
	if err != nil {
		return err
	}

	q.ID = created.ID
	return nil
}

// Update merges fields into an existing question and returns the stored
// result. Returns nil, nil when no document has the given key.
func (r *TriviaRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*model.TriviaQuestion, error) {
	// WHERE form so that a missing key never creates a record
	query := `UPDATE trivia MERGE $patch WHERE id = type::thing($tb, $id) RETURN AFTER`
	vars := map[string]interface{}{
		"tb":    triviaTable,
		"id":    id,
		"patch": fields,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseTrivia(result)
}

// Delete removes a question. It reports whether a document was removed.
func (r *TriviaRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE trivia WHERE id = type::thing($tb, $id) RETURN BEFORE`
	vars := map[string]interface{}{"tb": triviaTable, "id": id}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return false, err
	}

	return len(database.Records(result)) > 0, nil
}

func parseTrivia(result interface{}) (*model.TriviaQuestion, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errUnexpectedFormat
	}

	q := &model.TriviaQuestion{
		Title:   getString(data, "title"),
		Options: getStringSlice(data, "options"),
		Correct: getString(data, "correct"),
	}
	if id, ok := data["id"]; ok && id != nil {
		q.ID = recordKey(triviaTable, id)
	}

	return q, nil
}

func parseTriviaList(records []interface{}) ([]*model.TriviaQuestion, error) {
	questions := make([]*model.TriviaQuestion, 0, len(records))
	for _, rec := range records {
		q, err := parseTrivia(rec)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}
