package bench

import (
	"fmt"
	"os"
)

// WrkScript renders a Lua script for wrk that reproduces the request this
// harness sends, so results can be cross-checked against an external tool.
func WrkScript(cfg *Config) string {
	return fmt.Sprintf(`-- generated by wirebench
wrk.method = "GET"
wrk.path = %q
wrk.headers["Host"] = %q
wrk.headers["Accept"] = "*/*"
wrk.headers["Connection"] = "close"
`, cfg.Path, cfg.Host)
}

// WriteWrkScript writes the script to filename.
func WriteWrkScript(filename string, cfg *Config) error {
	return os.WriteFile(filename, []byte(WrkScript(cfg)), 0644)
}
