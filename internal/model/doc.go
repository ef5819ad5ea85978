// Package model defines the trivia question entity, request payloads and the
// error body shared by every endpoint.
//
// # Payloads
//
// Request bodies are decoded into TriviaPayload, an untyped map, so that a
// wrong JSON type is reported by Validate in rule order (title, options,
// correct) instead of as a decoding failure. Partial updates go through
// ParseUpdate, which only checks the types of the fields that are present.
//
// # Error Body
//
// Every failure is written as a single-key object:
//
//	{"error": "Invalid or missing 'title'"}
package model
