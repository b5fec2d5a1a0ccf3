package bgg

import "fmt"

// NetworkError represents a network or HTTP error.
type NetworkError struct {
	Message    string
	Cause      error
	StatusCode int
}

func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// ParseError represents a structural HTML/XML parsing error: the page
// or document did not match the expected shape.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// UpstreamError represents an unexpected message from the API, one that
// is not the rate-limit rejection. Body holds the raw response so it
// can be dumped for diagnosis.
type UpstreamError struct {
	Message string
	Body    []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("unexpected API message: %s", e.Message)
}

// MissingCategoryError indicates a vote tally without a required
// category. A tally missing "Best" is malformed upstream data, not a
// zero-vote entry, so lookups never default to zero.
type MissingCategoryError struct {
	Category string
}

func (e *MissingCategoryError) Error() string {
	return fmt.Sprintf("vote tally missing required category %q", e.Category)
}

// newNetworkError creates a new NetworkError.
func newNetworkError(message string, statusCode int, cause error) *NetworkError {
	return &NetworkError{
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// newParseError creates a new ParseError.
func newParseError(message string, cause error) *ParseError {
	return &ParseError{
		Message: message,
		Cause:   cause,
	}
}
