package domain

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultPageSize is the number of posts per listing page.
const DefaultPageSize = 9

// Cursor marks the last post of a page in newest-first order.
// Offset is the position of the following page in the full ordering.
type Cursor struct {
	PostedAt time.Time
	ID       int64
	Offset   int
}

// Encode returns the opaque token form of the cursor.
// Format: base64url(unix_micro "|" id "|" offset).
func (c Cursor) Encode() string {
	raw := fmt.Sprintf("%d|%d|%d", c.PostedAt.UnixMicro(), c.ID, c.Offset)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by Cursor.Encode.
func DecodeCursor(token string) (Cursor, error) {
	invalid := NewValidationError("cursor", "invalid")

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, invalid
	}
	parts := strings.Split(string(raw), "|")
	if len(parts) != 3 {
		return Cursor{}, invalid
	}

	micros, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Cursor{}, invalid
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return Cursor{}, invalid
	}
	offset, err := strconv.Atoi(parts[2])
	if err != nil || offset < 0 {
		return Cursor{}, invalid
	}

	return Cursor{
		PostedAt: time.UnixMicro(micros).UTC(),
		ID:       id,
		Offset:   offset,
	}, nil
}

// PageRequest selects one page of a listing.
// When Cursor is set it wins over Number (keyset pagination);
// otherwise Number is a 1-based page index (offset pagination).
type PageRequest struct {
	Size   int
	Number int
	Cursor *Cursor
}

// Validate rejects requests whose offset cannot be represented: a page
// number or cursor so far out that offset arithmetic would overflow.
func (r PageRequest) Validate() error {
	if r.Size < 1 {
		return NewValidationError("size", "must be positive")
	}
	if r.Cursor != nil {
		if r.Cursor.Offset > math.MaxInt-2*r.Size {
			return NewValidationError("cursor", "invalid")
		}
		return nil
	}
	if r.Number > math.MaxInt/r.Size {
		return NewValidationError("page", "too large")
	}
	return nil
}

// Offset returns the index of the first post of the requested page.
func (r PageRequest) Offset() int {
	if r.Cursor != nil {
		return r.Cursor.Offset
	}
	n := r.Number
	if n < 1 {
		n = 1
	}
	return (n - 1) * r.Size
}

// Page is one materialised slice of a listing.
type Page struct {
	Posts       []*Post
	HasNext     bool
	HasPrevious bool
	Offset      int
	Number      int
	NextCursor  string
}

// NewPage builds a Page from rows fetched with limit Size+1.
// The extra row, if present, only signals that a next page exists.
func NewPage(rows []*Post, req PageRequest) *Page {
	hasNext := len(rows) > req.Size
	if hasNext {
		rows = rows[:req.Size]
	}
	if rows == nil {
		rows = []*Post{}
	}

	offset := req.Offset()
	page := &Page{
		Posts:       rows,
		HasNext:     hasNext,
		HasPrevious: offset > 0,
		Offset:      offset,
		Number:      offset/req.Size + 1,
	}

	if hasNext {
		last := rows[len(rows)-1]
		page.NextCursor = Cursor{
			PostedAt: last.PostedAt,
			ID:       last.ID,
			Offset:   offset + len(rows),
		}.Encode()
	}

	return page
}
