package server

import (
	"log"

	"github.com/fatih/color"
)

// logRequest logs an HTTP request with color-coded status
func logRequest(method, path string, status int) {
	switch {
	case status == 200:
		log.Print(color.GreenString("%s %s %d", method, path, status))
	case status >= 400:
		log.Print(color.RedString("%s %s %d", method, path, status))
	default:
		log.Printf("%s %s %d", method, path, status)
	}
}
