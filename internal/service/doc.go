// Package service implements the business logic layer for the trivia API.
//
// TriviaService sits between the HTTP handlers and the repository. It owns
// validation, pagination windows, the random draw and the mapping of empty
// results to domain errors.
//
// # Repository Interfaces
//
// The service defines its own TriviaRepository interface, so tests use
// function-field mocks instead of a database.
//
// # Error Handling
//
// Services return sentinel errors defined in errors.go, or a
// *model.FieldError for validation failures:
//
//	q, err := svc.Get(ctx, id)
//	if errors.Is(err, service.ErrTriviaNotFound) {
//	    // 404
//	}
//
// Any other error came from storage. It is logged here and surfaces to the
// client as a generic internal error.
package service
