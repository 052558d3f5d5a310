package usecase

// PageRequest is the uniform pagination input of every list
// operation. Page and Limit are always ≥1 after NewPageRequest; the
// effective values are echoed back in list response envelopes.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest clamps raw pagination values: anything below 1
// (including the sentinel 0 from unparseable query params) falls back
// to page 1 and the endpoint's default limit.
func NewPageRequest(page, limit, defaultLimit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset is the row offset for the requested page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}
