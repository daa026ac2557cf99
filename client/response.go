package client

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/codetesla51/wirebench/wire"
)

// Response is a decoded HTTP response. A StatusCode of 0 with a diagnostic
// Reason marks a degraded response: the input could not be parsed but the
// call did not fail. RawBody is authoritative; Body is its best-effort UTF-8
// decoding, valid only when BodyDecoded is true.
type Response struct {
	Version     string
	StatusCode  int
	Reason      string
	Headers     wire.Header
	Body        string
	RawBody     []byte
	BodyDecoded bool
}

// OK reports whether the response carries a 200 status.
func (r *Response) OK() bool {
	return r.StatusCode == wire.StatusOK
}

// DecodeResponse parses the complete byte stream read from a connection
// until the peer closed it. Malformed input degrades rather than fails,
// with one exception: a header block that is not valid UTF-8 returns an
// error wrapping ErrInvalidData.
func DecodeResponse(raw []byte) (*Response, error) {
	if len(raw) == 0 {
		return &Response{
			Reason:  "Empty Response",
			Headers: wire.Header{},
		}, nil
	}

	// Without a terminator the whole payload is treated as headers.
	headerBlock := raw
	var body []byte
	if i := wire.IndexHeaderEnd(raw, 0); i >= 0 {
		headerBlock = raw[:i]
		body = raw[i+len(wire.HeaderEnd):]
	}

	if !utf8.Valid(headerBlock) {
		return nil, fmt.Errorf("response header block is not valid UTF-8: %w", ErrInvalidData)
	}

	lines := bytes.Split(headerBlock, []byte(wire.CRLF))
	resp := &Response{
		Headers: wire.ParseHeaderLines(lines[1:]),
	}

	parseStatusLine(string(lines[0]), resp)

	resp.RawBody = append([]byte(nil), body...)
	if utf8.Valid(body) {
		resp.Body = string(body)
		resp.BodyDecoded = true
	}

	return resp, nil
}

// parseStatusLine fills version, status code and reason. An unparsable code
// leaves StatusCode at 0 with a diagnostic reason.
func parseStatusLine(line string, resp *Response) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		resp.Reason = "Malformed Status Line"
		return
	}

	resp.Version = parts[0]
	code, err := strconv.Atoi(parts[1])
	if err != nil {
		resp.Reason = "Unparsable Status Code: " + parts[1]
		return
	}
	resp.StatusCode = code
	if len(parts) == 3 {
		resp.Reason = parts[2]
	}
}
