package errors

// categoryForStatus maps HTTP status codes to retry categories:
// 4xx client errors (except 408 and 429) are irrecoverable, 5xx are recoverable.
func categoryForStatus(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		// Unexpected status codes; be conservative and retry
		return Recoverable
	}
}

// NewHTTPError creates a classified error for a non-2xx response.
func NewHTTPError(op string, statusCode int, body string) *HTTPError {
	return &HTTPError{Op: op, Status: statusCode, Body: body}
}

// NewNetworkError creates a classified error for a transport-level failure.
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// NewDecodeError creates a classified error for an unparseable 2xx body.
func NewDecodeError(op string, err error) *DecodeError {
	return &DecodeError{Op: op, Err: err}
}
