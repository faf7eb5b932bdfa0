// Package paging extracts limit/offset paging descriptors from query
// values, with default and maximum clamping and an opaque
// continuation cursor. Invalid input is ignored rather than rejected,
// matching the filtering layer's fail-open posture.
package paging

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Unlimited disables a limit bound when used for Options fields or
// Params.Limit.
const Unlimited = -1

// Options bound what a request may ask for.
type Options struct {
	// DefaultLimit applies when the request names no limit.
	// Unlimited (or zero) means no default.
	DefaultLimit int
	// MaxLimit caps the requested limit. Unlimited (or zero) means
	// no cap.
	MaxLimit int
}

// Params is one parsed paging descriptor.
type Params struct {
	// Limit is the page size, Unlimited when absent and no default
	// applies.
	Limit int
	// Offset is the number of leading elements to skip.
	Offset int
}

// Parse reads limit, offset and cursor keys. A valid cursor overrides
// offset. Malformed numbers and cursors are ignored, negative values
// clamp to zero, and the limit is capped by opts.MaxLimit.
func Parse(values url.Values, opts Options) Params {
	p := Params{Limit: Unlimited}

	if opts.DefaultLimit > 0 {
		p.Limit = opts.DefaultLimit
	}
	if raw := values.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			if n < 0 {
				n = 0
			}
			p.Limit = n
		}
	}
	if opts.MaxLimit > 0 && (p.Limit == Unlimited || p.Limit > opts.MaxLimit) {
		p.Limit = opts.MaxLimit
	}

	if raw := values.Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.Offset = n
		}
	}
	if raw := values.Get("cursor"); raw != "" {
		if off, ok := DecodeCursor(raw); ok {
			p.Offset = off
		}
	}
	return p
}

// EncodeCursor renders an offset as an opaque continuation token.
func EncodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf("o:%d", offset)))
}

// DecodeCursor reads a continuation token back into an offset. The
// second result is false for anything that is not a well-formed,
// non-negative token.
func DecodeCursor(s string) (int, bool) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return 0, false
	}
	rest, ok := strings.CutPrefix(string(raw), "o:")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Next returns the continuation cursor after a page of pageLen
// elements, and false when the page was short (no further pages).
func (p Params) Next(pageLen int) (string, bool) {
	if p.Limit == Unlimited || pageLen < p.Limit {
		return "", false
	}
	return EncodeCursor(p.Offset + pageLen), true
}

// Slice applies the descriptor to an in-memory slice.
func Slice[T any](p Params, items []T) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	items = items[p.Offset:]
	if p.Limit != Unlimited && p.Limit < len(items) {
		items = items[:p.Limit]
	}
	return items
}
