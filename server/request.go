package server

import (
	"bytes"
	"errors"
	"strings"

	"github.com/codetesla51/wirebench/wire"
)

// Request represents a decoded incoming HTTP request.
type Request struct {
	Method  string
	Path    string
	Version string
	Headers wire.Header
}

var errMalformedRequestLine = errors.New("malformed request line")

// parseRequest decodes a complete header block (without the trailing
// terminator) into a Request.
func parseRequest(block []byte) (*Request, error) {
	lines := bytes.Split(block, []byte(wire.CRLF))

	fields := strings.Fields(string(lines[0]))
	if len(fields) < 3 {
		return nil, errMalformedRequestLine
	}

	return &Request{
		Method:  fields[0],
		Path:    fields[1],
		Version: fields[2],
		Headers: wire.ParseHeaderLines(lines[1:]),
	}, nil
}

// KeepAlive decides whether the connection stays open after this request.
// An explicit Connection header always wins; without one, only HTTP/1.1
// implies keep-alive.
func (r *Request) KeepAlive() bool {
	if v, ok := r.Headers.Lookup("Connection"); ok {
		return strings.EqualFold(strings.TrimSpace(v), "keep-alive")
	}
	return r.Version == "HTTP/1.1"
}
