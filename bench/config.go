package bench

import "fmt"

// Config holds the scalar inputs of a load test run.
type Config struct {
	Host            string
	Port            int
	Path            string
	Users           int
	RequestsPerUser int
	Warmup          int
}

func DefaultConfig() *Config {
	return &Config{
		Host:            "127.0.0.1",
		Port:            8080,
		Path:            "/",
		Users:           10,
		RequestsPerUser: 100,
		Warmup:          10,
	}
}

// Validate checks the configuration bounds.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535, got %d", c.Port)
	}
	if c.Users <= 0 {
		return fmt.Errorf("concurrent users must be greater than 0")
	}
	if c.RequestsPerUser <= 0 {
		return fmt.Errorf("requests per user must be greater than 0")
	}
	if c.Warmup < 0 {
		return fmt.Errorf("warm-up count cannot be negative")
	}
	return nil
}
