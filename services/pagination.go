package services

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// normalizePage clamps the 1-indexed page and the page size into their valid
// ranges.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func hasMorePages(page, limit int, total int64) bool {
	return int64(page*limit) < total
}
