package ted

// Result is the normalized outcome of one remote call. Exactly one of the two
// shapes applies: on success Body holds the remote payload; on failure
// Message holds a caller-safe description and Err the classification.
//
// Status is always the remote service's status, except for transport
// failures where no status exists and TransportFailureStatus is used.
type Result struct {
	OK      bool
	Status  int
	Body    string
	Message string
	Err     *RemoteError
}

// Success builds a successful result.
func Success(body string, status int) Result {
	return Result{OK: true, Status: status, Body: body}
}

// Failure builds a failed result.
func Failure(status int, message string, err *RemoteError) Result {
	return Result{Status: status, Message: message, Err: err}
}
