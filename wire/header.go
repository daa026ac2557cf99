// Package wire holds the framing primitives shared by the server and the
// client: header-terminator detection, the case-insensitive header map with
// duplicate-key merging, and the status codes of the subset.
package wire

import (
	"bytes"
	"strings"
)

const (
	// CRLF separates header lines on the wire.
	CRLF = "\r\n"

	// HeaderEnd is the 4-byte sequence terminating a header block.
	HeaderEnd = "\r\n\r\n"
)

// Header holds HTTP headers with case-insensitive keys. Keys are stored in
// canonical form (Content-Length, not content-length). Repeated keys are
// merged by appending ", " plus the new value.
type Header map[string]string

// Add inserts a header value, merging with any existing value for the key.
func (h Header) Add(key, value string) {
	k := CanonicalKey(key)
	if existing, ok := h[k]; ok {
		h[k] = existing + ", " + value
		return
	}
	h[k] = value
}

// Get returns the value for a key, or "" when absent.
func (h Header) Get(key string) string {
	return h[CanonicalKey(key)]
}

// Lookup returns the value for a key and whether it was present.
func (h Header) Lookup(key string) (string, bool) {
	v, ok := h[CanonicalKey(key)]
	return v, ok
}

// CanonicalKey normalizes a header key: the first letter and every letter
// following a hyphen are upper-cased, the rest lower-cased.
func CanonicalKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	upper := true
	for i := 0; i < len(key); i++ {
		c := key[i]
		if upper && 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		} else if !upper && 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
		upper = c == '-'
	}
	return b.String()
}

// ParseHeaderLines parses raw header lines into a Header. Lines without a
// colon, empty lines, and whitespace-only lines are skipped rather than
// treated as errors.
func ParseHeaderLines(lines [][]byte) Header {
	headers := make(Header, len(lines))
	for _, line := range lines {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		parts := bytes.SplitN(line, []byte(":"), 2)
		if len(parts) != 2 {
			continue
		}
		key := string(bytes.TrimSpace(parts[0]))
		value := string(bytes.TrimSpace(parts[1]))
		if key == "" {
			continue
		}
		headers.Add(key, value)
	}
	return headers
}
