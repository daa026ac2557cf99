package server

import (
	"fmt"
	"strconv"
	"time"

	"github.com/valyala/bytebufferpool"

	"github.com/codetesla51/wirebench/wire"
)

// buildResponse assembles a wire-format HTTP/1.1 response with an exact
// Content-Length and a Connection header reflecting the keep-alive decision.
func buildResponse(status int, body []byte, keepAlive bool, keepAliveTimeout time.Duration) []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString("HTTP/1.1 ")
	buf.WriteString(strconv.Itoa(status))
	buf.WriteString(" ")
	buf.WriteString(wire.StatusText(status))
	buf.WriteString("\r\nContent-Type: text/html; charset=utf-8")
	buf.WriteString("\r\nContent-Length: ")
	buf.WriteString(strconv.Itoa(len(body)))
	if keepAlive {
		buf.WriteString("\r\nConnection: keep-alive")
		buf.WriteString("\r\nKeep-Alive: timeout=")
		buf.WriteString(strconv.Itoa(int(keepAliveTimeout.Seconds())))
	} else {
		buf.WriteString("\r\nConnection: close")
	}
	buf.WriteString(wire.HeaderEnd)
	buf.Write(body)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// echoPage builds the canned 200 body echoing the request path.
func echoPage(path string) []byte {
	return fmt.Appendf(nil,
		"<html><head><title>wirebench</title></head><body><h1>Hello from wirebench</h1><p>You requested: %s</p></body></html>",
		path)
}

// errorPage builds a small HTML body for an error status.
func errorPage(status int, detail string) []byte {
	return fmt.Appendf(nil,
		"<html><body><h1>%d %s</h1><p>%s</p></body></html>",
		status, wire.StatusText(status), detail)
}
