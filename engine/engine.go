package engine

import (
	"context"
	"fmt"
	"time"
)

// Engine is the interface that all fetch engines must implement.
type Engine interface {
	// Name returns the engine identifier (e.g. "http", "rod").
	Name() string

	// Fetch retrieves the resource described by req.
	Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error)
}

// Kind tells an engine what sort of resource is being fetched.
type Kind int

const (
	// KindDocument is an HTML page. Non-HTML responses are rejected.
	KindDocument Kind = iota
	// KindStylesheet is a linked CSS file. Any content type is accepted.
	KindStylesheet
)

func (k Kind) String() string {
	if k == KindStylesheet {
		return "stylesheet"
	}
	return "document"
}

// FetchRequest contains everything an engine needs to fetch a resource.
type FetchRequest struct {
	URL     string
	Kind    Kind
	Headers map[string]string

	// Timeout bounds this single fetch. Zero means no extra deadline
	// beyond the caller's context.
	Timeout time.Duration
}

// FetchResult is the output of a successful engine fetch.
type FetchResult struct {
	Body        string
	ContentType string
	StatusCode  int
	FinalURL    string
	EngineName  string
}

// FetchError reports a failed retrieval of one resource. Its message always
// names the URL so callers can tell the main page apart from a stylesheet.
type FetchError struct {
	URL        string
	Kind       Kind
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("could not retrieve %s %s: status %d", e.Kind, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("could not retrieve %s %s: %v", e.Kind, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
