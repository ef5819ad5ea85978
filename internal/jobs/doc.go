// Package jobs implements background work that runs independently of
// HTTP request handling.
//
// # Collection Stats
//
// CollectionStats periodically counts the trivia collection and publishes
// the result to the trivia_total_count gauge, so the metric stays current
// between listing requests:
//
//	stats := jobs.NewCollectionStats(triviaRepo, time.Minute)
//	stats.Start()
//	defer stats.Stop()
//
// Jobs log failures and keep running. They never crash the process.
package jobs
