// Package pagination implements keyset pagination helpers: opaque cursors,
// query parameters and RFC 8288 Link headers.
package pagination

// DefaultLimit is the page size used when the client sends no limit.
const DefaultLimit = 100

// MaxLimit is the largest accepted page size.
const MaxLimit = 100

// Params are the pagination query parameters shared by list endpoints.
type Params struct {
	Cursor string `query:"cursor"`
	Limit  *int   `query:"limit"  validate:"omitempty,min=1,max=100"`
}

// PageSize returns the requested limit or DefaultLimit when absent.
func (p Params) PageSize() int {
	if p.Limit == nil {
		return DefaultLimit
	}
	return *p.Limit
}
