package datasource

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when the requested document does not exist
var ErrNotFound = errors.New("not found")

// NetworkError reports a transport failure or an unexpected HTTP status
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a document that could not be decoded
type ParseError struct {
	Resource string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Resource, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// validLogin rejects identifiers that cannot name a data file
func validLogin(login string) bool {
	if login == "" || strings.Contains(login, "..") {
		return false
	}
	return !strings.ContainsAny(login, `/\`)
}
