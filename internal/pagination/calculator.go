package pagination

import "math"

// CalculateOffset calculates the number of documents to skip for a page.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Examples:
//   - Page 1, Limit 10 -> Offset 0
//   - Page 2, Limit 2  -> Offset 2
//   - Page 5, Limit 2  -> Offset 8
//
// An offset too large for int saturates at math.MaxInt, which is past the
// end of any collection.
func CalculateOffset(page, limit int) int {
	if page <= 1 || limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(total / limit).
// A zero total yields zero pages; callers report an empty collection before
// reaching this point.
func CalculateTotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// InRange reports whether the window starting at offset contains any of total items
func InRange(offset int, total int64) bool {
	return offset >= 0 && int64(offset) < total
}
