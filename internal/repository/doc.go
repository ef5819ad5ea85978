// Package repository implements the data access layer for the trivia API.
//
// TriviaRepository issues SurrealQL against the schemaless trivia table.
// Queries are parameterized with $variables and records are addressed with
// type::thing so that client-supplied keys are never spliced into query text.
//
// # Identifiers
//
// SurrealDB ids have the form trivia:key. Repositories strip the table
// prefix, so the rest of the application only sees the key.
//
// # Missing Records
//
// GetByID, RandomAt and Update return nil, nil when nothing matches; Delete
// reports false. Storage failures are returned unchanged and wrap the
// database package's sentinel errors.
//
//	repo := repository.NewTriviaRepository(db)
//	q, err := repo.GetByID(ctx, "abc123")
//	if err != nil {
//	    return err
//	}
//	if q == nil {
//	    // not found
//	}
package repository
