package client

import (
	"bytes"

	"github.com/codetesla51/wirebench/wire"
)

// UserAgent is the token sent with every request.
const UserAgent = "wirebench/0.1.0"

// EncodeRequest serializes a GET request for path against host. The client
// always asks the server to close the connection, so end-of-stream delimits
// the response. Caller-supplied headers are appended verbatim, without
// validation. A missing leading slash in path is normalized.
func EncodeRequest(path, host string, headers map[string]string) []byte {
	if path == "" {
		path = "/"
	} else if path[0] != '/' {
		path = "/" + path
	}

	var buf bytes.Buffer
	buf.WriteString("GET ")
	buf.WriteString(path)
	buf.WriteString(" HTTP/1.1")
	buf.WriteString(wire.CRLF)
	buf.WriteString("Host: ")
	buf.WriteString(host)
	buf.WriteString(wire.CRLF)
	buf.WriteString("Connection: close")
	buf.WriteString(wire.CRLF)
	buf.WriteString("User-Agent: ")
	buf.WriteString(UserAgent)
	buf.WriteString(wire.CRLF)
	buf.WriteString("Accept: */*")
	buf.WriteString(wire.CRLF)
	for key, value := range headers {
		buf.WriteString(key)
		buf.WriteString(": ")
		buf.WriteString(value)
		buf.WriteString(wire.CRLF)
	}
	buf.WriteString(wire.CRLF)
	return buf.Bytes()
}
