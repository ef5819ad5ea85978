// Package handler implements the HTTP layer of the trivia API.
//
// Handlers decode requests, call the trivia service and encode responses.
// They never talk to storage directly.
//
// # Routes
//
//	GET    /quiz          paginated listing (limit, page)
//	POST   /quiz          create, requires ?pass=
//	GET    /quiz/search   paginated search (q, limit, page)
//	GET    /quiz/random   one random question
//	GET    /quiz/{id}     one question
//	PUT    /quiz/{id}     partial update, requires ?pass=
//	DELETE /quiz/{id}     delete, requires ?pass=
//
// # Errors
//
// Every failure is written as {"error": "<message>"}. MapServiceError is
// the single place that turns service errors into status codes:
//
//	if err != nil {
//	    WriteError(w, MapServiceError(err))
//	    return
//	}
package handler
