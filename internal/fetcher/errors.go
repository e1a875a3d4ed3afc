package fetcher

import "fmt"

// TransportError wraps a failure to complete an HTTP exchange: dial errors,
// interrupted reads, exceeded deadlines. Timeout distinguishes deadline
// expiry from other transport faults.
type TransportError struct {
	URL     string
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request to %s timed out: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError reports a completed exchange that ended in a non-2xx status.
type UpstreamError struct {
	URL        string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d", e.URL, e.StatusCode)
}

// IsSuccess reports whether status is a 2xx code.
func IsSuccess(status int) bool { return status >= 200 && status < 300 }
