package pagination

import "net/url"

// BuildLinkHeader renders an RFC 8288 Link header value pointing at the next
// page. The cursor parameter of query is replaced; other parameters are kept.
// Returns "" when next is empty.
func BuildLinkHeader(path string, query url.Values, next string) string {
	if next == "" {
		return ""
	}
	q := url.Values{}
	for k, vs := range query {
		q[k] = append([]string(nil), vs...)
	}
	q.Set("cursor", next)
	return "<" + path + "?" + q.Encode() + `>; rel="next"`
}
