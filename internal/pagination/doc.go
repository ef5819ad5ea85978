// Package pagination turns page/limit query parameters into offset windows.
//
// Pages are 1-based. A window for page p with limit l starts at
// offset (p-1)*l and the total page count is ceil(total/l).
//
// Absent or non-numeric parameters fall back to the configured defaults.
// Numeric values are kept as given and rejected by Validate when they are
// not positive, so "limit=0" is an error rather than a silent default.
package pagination
