package errors

import (
	"errors"
	"fmt"
	"strings"
)

var ErrorValueNotInteger = errors.New("value.notInteger")
var ErrorValueOverflow = errors.New("value.overflow")
var ErrorUnknownCommand = errors.New("command.unknown")

// ParseError reports a line that matches no grammar rule.
// Trail lists the rules that were active when parsing stopped, outermost first.
type ParseError struct {
	Line     string
	Offset   int
	Trail    []string
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"parse error in %s at offset %d: expected %s in %q",
		strings.Join(e.Trail, " > "),
		e.Offset,
		e.Expected,
		e.Line,
	)
}

// Returns a copy of the error with rule pushed in front of the trail
func (e *ParseError) WithContext(rule string) *ParseError {
	trail := make([]string, 0, len(e.Trail)+1)
	trail = append(trail, rule)
	trail = append(trail, e.Trail...)

	return &ParseError{
		Line:     e.Line,
		Offset:   e.Offset,
		Trail:    trail,
		Expected: e.Expected,
	}
}

// IncrTypeError is returned when INCR targets a value that is not a signed 64-bit integer
// or that cannot be incremented without overflowing.
type IncrTypeError struct {
	Key   string
	Value string
	Cause error
}

func (e *IncrTypeError) Error() string {
	return fmt.Sprintf("INCR %s: stored value %q: %v", e.Key, e.Value, e.Cause)
}

func (e *IncrTypeError) Unwrap() error {
	return e.Cause
}

// LineError ties a failure to its position in the command log.
type LineError struct {
	Number int
	Line   string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Number, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
