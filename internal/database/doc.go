// Package database provides the storage connector for the trivia API.
//
// The Database interface abstracts SurrealDB operations so that repositories
// never touch the client directly. A single connection is created by the
// caller, passed down explicitly and closed on shutdown:
//
//	db := database.NewSurrealDB(cfg)
//	if err := db.Connect(ctx); err != nil { ... }
//	defer db.Close()
//
// # Query Methods
//
//   - Query: Returns multiple results (for SELECT queries returning lists)
//   - QueryOne: Returns a single result (for SELECT by ID)
//   - Execute: No return value (for mutations whose output is not needed)
//
// # Error Handling
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// There are no multi-statement transactions. Every statement issued by the
// repository touches a single document and relies on the store's per-record
// atomicity.
//
// # Connection Management
//
// Connect to SurrealDB with either a full connection string or host/port:
//
//	db := database.NewSurrealDB(database.Config{
//	    URL:       "ws://localhost:8000/rpc",
//	    Namespace: "trivia",
//	    Database:  "tech_trivia",
//	    User:      "root",
//	    Password:  "secret",
//	})
//
// # Result Envelopes
//
// Query returns one {status, result} map per statement. Records and
// FirstRecord flatten those envelopes for repositories.
package database
