package ted

import "fmt"

// ErrorCategory classifies why a remote call failed.
type ErrorCategory string

const (
	// ErrorTransport means no response was obtained: connection refused, DNS
	// failure, reset, or an unreadable body.
	ErrorTransport ErrorCategory = "transport"

	// ErrorService means the remote service answered with a non-2xx status.
	ErrorService ErrorCategory = "service"
)

// RemoteError describes a failed remote call for logging. It travels inside a
// Result and is never returned as an error from the client.
type RemoteError struct {
	Category   ErrorCategory
	Operation  string
	Status     int
	Underlying error
}

func (e *RemoteError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("ted %s [%s] status %d: %v", e.Operation, e.Category, e.Status, e.Underlying)
	}
	return fmt.Sprintf("ted %s [%s] status %d", e.Operation, e.Category, e.Status)
}

func (e *RemoteError) Unwrap() error {
	return e.Underlying
}
