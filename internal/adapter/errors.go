package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation indicates malformed or incomplete caller-supplied
	// arguments, detected before any network call.
	ErrValidation = errors.New("invalid arguments")
	// ErrAuth indicates a login that failed to yield a usable credential.
	ErrAuth = errors.New("authentication failed")
	// ErrNotFound indicates that name- or ID-based resolution matched zero
	// candidates, or that the remote service returned 404.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous indicates that name-based resolution matched more than
	// one candidate. Errors wrapping it are of type [AmbiguousError] and
	// carry the candidate list.
	ErrAmbiguous = errors.New("ambiguous reference")
	// ErrRemoteAPI indicates a non-2xx response from the remote service,
	// carrying the server-reported message when parseable. Never retried.
	ErrRemoteAPI = errors.New("remote api error")
)

// AmbiguousError reports a name that resolved to multiple candidates. The
// candidate labels are included in the message so the caller can retry with
// a disambiguating value (for blocks, the label carries the ID).
type AmbiguousError struct {
	Kind       string // "board" or "block"
	Name       string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%s name %q matches multiple candidates: %s; be more specific or use the ID",
		e.Kind, e.Name, strings.Join(e.Candidates, ", "))
}

func (e *AmbiguousError) Unwrap() error { return ErrAmbiguous }
