package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Endpoint_PrefersURL(t *testing.T) {
	t.Parallel()

	cfg := Config{URL: "wss://db.example.com/rpc", Host: "localhost", Port: "8000"}
	assert.Equal(t, "wss://db.example.com/rpc", cfg.Endpoint())
}

func TestConfig_Endpoint_FromHostPort(t *testing.T) {
	t.Parallel()

	cfg := Config{Host: "surreal", Port: "8001"}
	assert.Equal(t, "ws://surreal:8001", cfg.Endpoint())
}

func TestSurrealDB_NotConnected(t *testing.T) {
	t.Parallel()

	db := NewSurrealDB(Config{Host: "localhost", Port: "8000"})
	ctx := context.Background()

	assert.True(t, errors.Is(db.Ping(ctx), ErrConnection))

	_, err := db.Query(ctx, "SELECT * FROM trivia", nil)
	assert.True(t, errors.Is(err, ErrConnection))

	_, err = db.QueryOne(ctx, "SELECT * FROM trivia", nil)
	assert.True(t, errors.Is(err, ErrConnection))

	assert.True(t, errors.Is(db.Execute(ctx, "DELETE trivia", nil), ErrConnection))
	assert.NoError(t, db.Close())
}

func TestRecords_FlattensEnvelopes(t *testing.T) {
	t.Parallel()

	results := []interface{}{
		map[string]interface{}{
			"status": "OK",
			"result": []interface{}{
				map[string]interface{}{"title": "a"},
				map[string]interface{}{"title": "b"},
			},
		},
		map[string]interface{}{
			"status": "OK",
			"result": map[string]interface{}{"title": "c"},
		},
		map[string]interface{}{"status": "OK", "result": nil},
	}

	records := Records(results)
	require.Len(t, records, 3)
	assert.Equal(t, "c", records[2].(map[string]interface{})["title"])
}

func TestFirstRecord_Empty(t *testing.T) {
	t.Parallel()

	_, err := FirstRecord([]interface{}{
		map[string]interface{}{"status": "OK", "result": []interface{}{}},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = FirstRecord(nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
