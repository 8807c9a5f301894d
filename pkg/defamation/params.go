package defamation

import "strconv"

// DefaultLimit is the page size used when a caller does not supply a positive limit.
const DefaultLimit = 10

// PageQuery is the query shape of the list endpoints.
type PageQuery struct {
	Page int
	Size int
	Q    string
}

// RecentPageQuery builds the first-page query for the recent list operations.
// A non-positive limit falls back to DefaultLimit; q is passed through as-is.
func RecentPageQuery(limit int, q string) PageQuery {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return PageQuery{Page: 0, Size: limit, Q: q}
}

// Params encodes the query as request parameters. q is always sent, even when empty.
func (p PageQuery) Params() map[string]string {
	return map[string]string{
		"page": strconv.Itoa(p.Page),
		"size": strconv.Itoa(p.Size),
		"q":    p.Q,
	}
}

// PredictRequest is the body the predict endpoint expects. ClassifyText accepts
// any payload; this type only saves callers from spelling the field names.
// A nil ModelID is left out so the backend reports the missing model itself.
type PredictRequest struct {
	ModelID *int64 `json:"modelId,omitempty"`
	Inputs  string `json:"inputs"`
}
