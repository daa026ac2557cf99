package server

import "time"

type Config struct {
	Host             string
	Port             int
	MaxConnections   int64
	KeepAliveTimeout time.Duration
	MaxHeaderSize    int
	EnableLogging    bool
}

func DefaultConfig() *Config {
	return &Config{
		Host:             "127.0.0.1",
		Port:             8080,
		MaxConnections:   256,
		KeepAliveTimeout: 5 * time.Second,
		MaxHeaderSize:    8192,
		EnableLogging:    false,
	}
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return joinHostPort(c.Host, c.Port)
}
