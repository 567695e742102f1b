package aichat

import "fmt"

// APIError is a non-2xx answer from the completions provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ai api error: %d - %s", e.StatusCode, e.Message)
}
