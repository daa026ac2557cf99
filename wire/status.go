package wire

// Status codes used by the server subset.
const (
	StatusOK             = 200
	StatusBadRequest     = 400
	StatusInternalError  = 500
	StatusNotImplemented = 501
)

// StatusText returns the reason phrase for a supported status code.
func StatusText(code int) string {
	switch code {
	case StatusOK:
		return "OK"
	case StatusBadRequest:
		return "Bad Request"
	case StatusInternalError:
		return "Internal Server Error"
	case StatusNotImplemented:
		return "Not Implemented"
	default:
		return "Unknown"
	}
}
