package catfact

import (
	"fmt"

	"github.com/legitimatebusiness/todo/internal/domain"
)

// FailureKind classifies why a fetch did not yield a fact.
type FailureKind string

const (
	// FailureRequest means the outbound request could not be built.
	FailureRequest FailureKind = "request"
	// FailureTransport covers network, DNS, TLS and timeout errors.
	FailureTransport FailureKind = "transport"
	// FailureStatus means the upstream answered with a non-2xx status.
	FailureStatus FailureKind = "status"
	// FailureDecode means the body was empty or not valid JSON.
	FailureDecode FailureKind = "decode"
	// FailureEmptyText means the body decoded but carried no text.
	FailureEmptyText FailureKind = "empty_text"
)

// FetchError describes a failed fetch.
type FetchError struct {
	Kind       FailureKind
	StatusCode int // set for FailureStatus
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	switch {
	case e.Kind == FailureStatus:
		return fmt.Sprintf("cat fact fetch failed (%s): unexpected status %d", e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("cat fact fetch failed (%s): %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("cat fact fetch failed (%s)", e.Kind)
	}
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a single fetch: exactly one of Fact and Err is meaningful.
type Result struct {
	Fact domain.CatFact
	Err  *FetchError
}

// OK reports whether the fetch produced a fact.
func (r Result) OK() bool {
	return r.Err == nil
}

func success(fact domain.CatFact) Result {
	return Result{Fact: fact}
}

func failure(kind FailureKind, statusCode int, err error) Result {
	return Result{Err: &FetchError{Kind: kind, StatusCode: statusCode, Err: err}}
}
