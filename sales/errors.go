package sales

import (
	"errors"
	"fmt"
)

// Wording surfaces display when a pipeline run halts.
const (
	fetchFailedMessage = "Unable to get data. Try lowering the number of sales requested or waiting a few minutes."
	parseFailedMessage = "Unable to parse the data. Try lowering the number of sales requested or waiting a few minutes."
)

// FetchError reports that the events request failed before any sale data
// was available: a network failure, a bad status, or an undecodable body.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch sales: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) UserMessage() string { return fetchFailedMessage }

// ParseError reports a structural mismatch in a fetched payload. One bad
// event fails the whole batch; there is no partial result.
type ParseError struct {
	// Path locates the field that broke the expected shape, when known,
	// e.g. "asset_events[2].asset.collection.name".
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("parse sales: %s: %v", e.Path, e.Err)
	case e.Path != "":
		return fmt.Sprintf("parse sales: missing %s", e.Path)
	default:
		return fmt.Sprintf("parse sales: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) UserMessage() string { return parseFailedMessage }

// UserMessage maps a pipeline error to the wording a hosting surface
// should display. Anything that is not a ParseError gets the fetch
// wording.
func UserMessage(err error) string {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.UserMessage()
	}
	return fetchFailedMessage
}
