// Package testdb provides test database utilities for the trivia API.
//
// Each TestDB connects to a real SurrealDB instance and runs in its own
// namespace, so repository tests exercise the actual SurrealQL:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    result, err := tdb.DB.Query(tdb.Ctx(), "SELECT * FROM trivia", nil)
//	}
//
// # Configuration
//
// TEST_DB_URL, or TEST_DB_HOST and TEST_DB_PORT, locate the server.
// TEST_DB_USER and TEST_DB_PASSWORD default to root/root. Tests are skipped
// when the server is unreachable; set TEST_DB_REQUIRED=true in CI to turn
// that into a failure.
//
// # Shared Database
//
// For subtests that share a connection:
//
//	tdb := testdb.NewShared(t)
//	t.Run("create", func(t *testing.T) { db := tdb.SetupSubtest(t); ... })
package testdb
