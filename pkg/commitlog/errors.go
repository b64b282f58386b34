package commitlog

import (
	"fmt"
)

// ParseError is returned for a log line that cannot be parsed
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// NewParseError creates a new ParseError
func NewParseError(line int, reason string) *ParseError {
	return &ParseError{
		Line:   line,
		Reason: reason,
	}
}

// UnknownHashError is returned when a hash or hash prefix does not name a
// loaded commit
type UnknownHashError struct {
	Hash      string
	Ambiguous bool
}

func (e *UnknownHashError) Error() string {
	if e.Ambiguous {
		return fmt.Sprintf("hash prefix '%s' is ambiguous", e.Hash)
	}
	return fmt.Sprintf("commit '%s' not found", e.Hash)
}

// NewUnknownHashError creates a new UnknownHashError
func NewUnknownHashError(hash string, ambiguous bool) *UnknownHashError {
	return &UnknownHashError{
		Hash:      hash,
		Ambiguous: ambiguous,
	}
}
