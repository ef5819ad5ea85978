package repository

import (
	"testing"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

func TestConvertSurrealID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   interface{}
		want string
	}{
		{"string", "trivia:abc", "trivia:abc"},
		{"record id", models.RecordID{Table: "trivia", ID: "abc"}, "trivia:abc"},
		{"record id pointer", &models.RecordID{Table: "trivia", ID: "xyz"}, "trivia:xyz"},
		{"map", map[string]interface{}{"tb": "trivia", "id": map[string]interface{}{"String": "k1"}}, "trivia:k1"},
		{"map without table", map[string]interface{}{"id": "k2"}, "k2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertSurrealID(tt.id); got != tt.want {
				t.Errorf("convertSurrealID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   interface{}
		want string
	}{
		{"prefixed", "trivia:abc", "abc"},
		{"bare", "abc", "abc"},
		{"record id", models.RecordID{Table: "trivia", ID: "q9"}, "q9"},
		{"angle escaped", "trivia:⟨a-b⟩", "a-b"},
		{"backtick escaped", "trivia:`a-b`", "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recordKey(triviaTable, tt.id); got != tt.want {
				t.Errorf("recordKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractCount(t *testing.T) {
	t.Parallel()

	if got := extractCount(nil); got != 0 {
		t.Errorf("extractCount(nil) = %d, want 0", got)
	}

	records := []interface{}{map[string]interface{}{"count": float64(3)}}
	if got := extractCount(records); got != 3 {
		t.Errorf("extractCount() = %d, want 3", got)
	}

	records = []interface{}{map[string]interface{}{"count": uint64(7)}}
	if got := extractCount(records); got != 7 {
		t.Errorf("extractCount() = %d, want 7", got)
	}
}

func TestParseTrivia(t *testing.T) {
	t.Parallel()

	q, err := parseTrivia(map[string]interface{}{
		"id":      models.RecordID{Table: "trivia", ID: "abc"},
		"title":   "What is Go?",
		"options": []interface{}{"A language", "A game"},
		"correct": "A language",
	})
	if err != nil {
		t.Fatalf("parseTrivia() error = %v", err)
	}
	if q.ID != "abc" || q.Title != "What is Go?" || q.Correct != "A language" {
		t.Errorf("parseTrivia() = %+v", q)
	}
	if len(q.Options) != 2 {
		t.Errorf("options = %v, want 2 entries", q.Options)
	}

	if _, err := parseTrivia("not a map"); err == nil {
		t.Error("parseTrivia() expected error for non-map input")
	}
}
