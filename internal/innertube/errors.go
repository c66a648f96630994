package innertube

import (
	"fmt"
	"time"
)

// RequestTimeoutError indicates one profile attempt exceeded its deadline.
type RequestTimeoutError struct {
	Client  string
	Timeout time.Duration
}

func (e *RequestTimeoutError) Error() string {
	return fmt.Sprintf("player request timed out after %s client=%s", e.Timeout, e.Client)
}

// HTTPStatusError indicates a non-200 player endpoint response.
type HTTPStatusError struct {
	Client     string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("player http status=%d client=%s", e.StatusCode, e.Client)
}
