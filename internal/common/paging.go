package common

import "math"

// NormalizePage clamps a 1-indexed page number to at least 1.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// PageOffset returns the number of records preceding page. Offsets that do
// not fit in an int saturate at math.MaxInt, which is past any store's end.
func PageOffset(page int) int {
	page = NormalizePage(page)
	if page-1 > math.MaxInt/PageSize {
		return math.MaxInt
	}
	return (page - 1) * PageSize
}
