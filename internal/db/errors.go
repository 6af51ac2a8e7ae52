package db

// ConnectionError reports that a connection to the store could not be
// obtained: it is unreachable or rejected the credentials.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string { return "db connection: " + e.Err.Error() }

func (e *ConnectionError) Unwrap() error { return e.Err }
