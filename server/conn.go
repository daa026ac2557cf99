package server

import (
	"errors"
	"log"
	"net"
	"time"

	"github.com/codetesla51/wirebench/wire"
)

var errHeadersTooLarge = errors.New("headers too large")

// readHeaderBlock accumulates bytes from conn until the header terminator
// appears, the buffer cap is exceeded, the per-read deadline expires, or the
// peer closes. It returns the header block without the terminator. The scan
// is incremental: bytes already examined are not rescanned on the next read.
func readHeaderBlock(conn net.Conn, cfg *Config) ([]byte, error) {
	bufPtr := headerBufferPool.Get().(*[]byte)
	acc := (*bufPtr)[:0]

	defer func() {
		if cap(acc) <= maxPoolBufferSize {
			headerBufferPool.Put(bufPtr)
		}
	}()

	scanned := 0
	for {
		conn.SetReadDeadline(time.Now().Add(cfg.KeepAliveTimeout))

		chunkPtr := chunkBufferPool.Get().(*[]byte)
		n, err := conn.Read(*chunkPtr)
		if n > 0 {
			acc = append(acc, (*chunkPtr)[:n]...)
		}
		chunkBufferPool.Put(chunkPtr)
		if err != nil {
			return nil, err
		}

		if end := wire.IndexHeaderEnd(acc, scanned); end >= 0 {
			block := make([]byte, end)
			copy(block, acc[:end])
			return block, nil
		}
		scanned = len(acc)

		if len(acc) > cfg.MaxHeaderSize {
			return nil, errHeadersTooLarge
		}
	}
}

// handleConn runs the request loop for one admitted connection:
// ReadingHeaders -> Dispatching -> Writing, looping while keep-alive holds.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	for {
		block, err := readHeaderBlock(conn, s.cfg)
		if err != nil {
			if errors.Is(err, errHeadersTooLarge) {
				// Best effort; the session ends either way.
				s.reject(conn, wire.StatusBadRequest, "headers too large")
			}
			return
		}

		req, err := parseRequest(block)
		if err != nil {
			s.reject(conn, wire.StatusBadRequest, "malformed request line")
			return
		}

		if req.Method != "GET" {
			s.reject(conn, wire.StatusNotImplemented, "only GET is supported")
			s.logIfEnabled(req.Method, req.Path, wire.StatusNotImplemented)
			return
		}

		keepAlive := req.KeepAlive()
		response, status := s.dispatch(req, keepAlive)
		s.logIfEnabled(req.Method, req.Path, status)

		if _, err := conn.Write(response); err != nil {
			return
		}

		if !keepAlive || status != wire.StatusOK {
			return
		}
	}
}

// dispatch builds the canned 200 response, converting a handler panic into
// a best-effort 500.
func (s *Server) dispatch(req *Request, keepAlive bool) (response []byte, status int) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("dispatch panic: %v", r)
			status = wire.StatusInternalError
			response = buildResponse(status, errorPage(status, "unexpected error"), false, 0)
		}
	}()

	body := echoPage(req.Path)
	return buildResponse(wire.StatusOK, body, keepAlive, s.cfg.KeepAliveTimeout), wire.StatusOK
}

// reject writes an error response with Connection: close. Write failures
// are swallowed: the session is terminating regardless.
func (s *Server) reject(conn net.Conn, status int, detail string) {
	conn.Write(buildResponse(status, errorPage(status, detail), false, 0))
}

func (s *Server) logIfEnabled(method, path string, status int) {
	if s.cfg.EnableLogging {
		logRequest(method, path, status)
	}
}
