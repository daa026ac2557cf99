package client

import (
	"strings"
	"testing"
)

func TestEncodeRequestShape(t *testing.T) {
	raw := string(EncodeRequest("/page", "example.com", nil))

	if !strings.HasPrefix(raw, "GET /page HTTP/1.1\r\n") {
		t.Errorf("unexpected request line: %q", raw)
	}
	for _, want := range []string{
		"Host: example.com\r\n",
		"Connection: close\r\n",
		"User-Agent: " + UserAgent + "\r\n",
		"Accept: */*\r\n",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("missing %q in %q", want, raw)
		}
	}
	if !strings.HasSuffix(raw, "\r\n\r\n") {
		t.Errorf("request not terminator-delimited: %q", raw)
	}
}

func TestEncodeRequestNormalizesPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "GET / HTTP/1.1"},
		{"page", "GET /page HTTP/1.1"},
		{"/page", "GET /page HTTP/1.1"},
	}

	for _, test := range tests {
		raw := string(EncodeRequest(test.input, "h", nil))
		line := raw[:strings.Index(raw, "\r\n")]
		if line != test.expected {
			t.Errorf("path %q: request line %q, want %q", test.input, line, test.expected)
		}
	}
}

func TestEncodeRequestAppendsCallerHeaders(t *testing.T) {
	raw := string(EncodeRequest("/", "h", map[string]string{"X-Token": "abc"}))
	if !strings.Contains(raw, "X-Token: abc\r\n") {
		t.Errorf("caller header not appended: %q", raw)
	}
}
