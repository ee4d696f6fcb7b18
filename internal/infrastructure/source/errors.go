package source

import (
	"errors"
	"fmt"

	"metalprices-service/internal/infrastructure/httpx"
)

// FetchError is a failed network round trip or non-200 status from one
// source endpoint. It never propagates past the fan-out collector.
type FetchError struct {
	Source string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: fetch failed: status %d", e.Source, e.Status)
	}
	return fmt.Sprintf("%s: fetch failed: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError is a response whose shape did not match expectations.
type ParseError struct {
	Source string
	Reason string
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s: %s", e.Source, e.Reason) }

func fetchErr(name string, err error) error {
	var se *httpx.StatusError
	if errors.As(err, &se) {
		return &FetchError{Source: name, Status: se.Code, Err: err}
	}
	return &FetchError{Source: name, Err: err}
}
