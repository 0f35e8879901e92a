package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCursor is returned when a cursor cannot be decoded or does not
// belong to the listing it was sent to.
var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor is the decoded form of an opaque page token: the kind of resource
// and the sort key of the last row on the previous page.
type Cursor struct {
	Type  string
	Value string
}

// Encode returns the URL-safe opaque token for c.
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Type + ":" + c.Value))
}

// DecodeCursor parses a token produced by Encode. The empty string decodes to
// the zero Cursor, meaning "first page".
func DecodeCursor(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}
	kind, value, ok := strings.Cut(string(raw), ":")
	if !ok || kind == "" {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Type: kind, Value: value}, nil
}

// AfterID decodes token as an integer keyset position for resources of the
// given kind. An empty token yields 0.
func AfterID(token, kind string) (int64, error) {
	c, err := DecodeCursor(token)
	if err != nil {
		return 0, err
	}
	if c == (Cursor{}) {
		return 0, nil
	}
	if c.Type != kind {
		return 0, fmt.Errorf("%w: cursor is for %q", ErrInvalidCursor, c.Type)
	}
	id, err := strconv.ParseInt(c.Value, 10, 64)
	if err != nil || id < 0 {
		return 0, ErrInvalidCursor
	}
	return id, nil
}

// IDCursor encodes an integer keyset position.
func IDCursor(kind string, id int64) string {
	return Cursor{Type: kind, Value: strconv.FormatInt(id, 10)}.Encode()
}
