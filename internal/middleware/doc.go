// Package middleware provides HTTP middleware for the trivia API.
//
// # Available Middleware
//
//   - RequestID: Tags each request with an X-Request-ID
//   - Logger: Structured access log via slog
//   - Recovery: Converts panics into a 500 error body
//   - CORS: Origin allow-list with preflight handling
//   - RateLimit: Per-client token buckets from golang.org/x/time/rate
//   - Metrics: Prometheus request counters and latency histograms
//   - SharedSecret: Gates mutating routes on the pass query parameter
//
// # Ordering
//
// Chain applies middleware outermost first. Metrics reads the pattern the
// mux matched, so it must wrap the mux directly:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS(origins),
//	    middleware.RateLimit(limiter),
//	    middleware.Metrics,
//	)
//
// SharedSecret is applied per route rather than globally:
//
//	mux.Handle("DELETE /quiz/{id}", middleware.SharedSecret(secret)(h))
package middleware
