package client

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// Client issues GET requests over raw TCP connections, one connection per
// request (the encoder always sends Connection: close).
type Client struct {
	Host        string
	Port        int
	DialTimeout time.Duration
}

func New(host string, port int) *Client {
	return &Client{
		Host:        host,
		Port:        port,
		DialTimeout: 5 * time.Second,
	}
}

func (c *Client) addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Get dials the target, writes an encoded request, reads until the peer
// closes, and decodes the result. Socket failures wrap ErrTransport;
// unparsable payloads come back as degraded Responses instead.
func (c *Client) Get(path string, headers map[string]string) (*Response, error) {
	conn, err := net.DialTimeout("tcp", c.addr(), c.DialTimeout)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %v: %w", c.addr(), err, ErrTransport)
	}
	defer conn.Close()

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		tcpConn.SetNoDelay(true)
	}

	request := EncodeRequest(path, c.Host, headers)
	if _, err := conn.Write(request); err != nil {
		return nil, fmt.Errorf("write request: %v: %w", err, ErrTransport)
	}

	raw, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("read response: %v: %w", err, ErrTransport)
	}

	return DecodeResponse(raw)
}
