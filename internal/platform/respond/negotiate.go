package respond

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/labstack/echo/v5"
)

const (
	mimeJSON        = "application/json"
	mimeCBOR        = "application/cbor"
	mimeProblemCBOR = "application/problem+cbor"
	mimeProblemJSON = "application/problem+json"
)

// mediaRange is one entry of an Accept header.
type mediaRange struct {
	typ     string
	subtype string
	q       float64
}

// parseAccept splits an Accept header into media ranges per RFC 9110.
// Malformed q-values fall back to 1.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		mr := mediaRange{q: 1}
		mediaType, params, _ := strings.Cut(part, ";")
		for param := range strings.SplitSeq(params, ";") {
			key, val, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || !strings.EqualFold(key, "q") {
				continue
			}
			if q, err := strconv.ParseFloat(val, 64); err == nil && q >= 0 && q <= 1 {
				mr.q = q
			}
		}

		typ, sub, ok := strings.Cut(strings.ToLower(strings.TrimSpace(mediaType)), "/")
		if !ok {
			sub = "*"
		}
		mr.typ, mr.subtype = strings.TrimSpace(typ), strings.TrimSpace(sub)
		ranges = append(ranges, mr)
	}
	return ranges
}

// specificity reports how precisely mr names the given format, 0 meaning no match.
func (mr mediaRange) specificity(format string) int {
	switch {
	case mr.typ == "*" && mr.subtype == "*":
		return 1
	case mr.typ != "application":
		return 0
	case mr.subtype == "*":
		return 2
	case mr.subtype == "problem+"+format:
		return 4
	case mr.subtype == format, strings.HasSuffix(mr.subtype, "+"+format):
		return 3
	default:
		return 0
	}
}

// preferCBOR reports whether the Accept header ranks CBOR above JSON.
// The q-value decides first and specificity breaks ties; JSON wins otherwise.
func preferCBOR(header string) bool {
	type score struct {
		q    float64
		spec int
	}
	best := func(format string) score {
		s := score{q: -1}
		for _, mr := range parseAccept(header) {
			if mr.q == 0 {
				continue
			}
			spec := mr.specificity(format)
			if spec == 0 {
				continue
			}
			if spec > s.spec || (spec == s.spec && mr.q > s.q) {
				s = score{q: mr.q, spec: spec}
			}
		}
		return s
	}

	c, j := best("cbor"), best("json")
	if c.q <= 0 {
		return false
	}
	if c.q != j.q {
		return c.q > j.q
	}
	return c.spec > j.spec
}

// ensureVary adds values to the Vary header without duplicating existing entries.
func ensureVary(h http.Header, values ...string) {
	existing := make(map[string]struct{})
	for _, v := range h.Values("Vary") {
		for part := range strings.SplitSeq(v, ",") {
			existing[strings.TrimSpace(part)] = struct{}{}
		}
	}
	for _, v := range values {
		if _, ok := existing[v]; !ok {
			h.Add("Vary", v)
			existing[v] = struct{}{}
		}
	}
}

// Negotiate writes data as JSON, or CBOR when the client prefers it.
func Negotiate(c *echo.Context, status int, data any) error {
	if preferCBOR(c.Request().Header.Get("Accept")) {
		b, err := cbor.Marshal(data)
		if err != nil {
			return err
		}
		return c.Blob(status, mimeCBOR, b)
	}
	return c.JSON(status, data)
}
