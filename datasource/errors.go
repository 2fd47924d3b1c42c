package datasource

import (
	"errors"
	"fmt"
)

// Code classifies the outcome of a query.
type Code int

const (
	CodeOK Code = iota
	// CodeRequestFailed means the exchange failed or the status was not 200.
	// Nothing was parsed.
	CodeRequestFailed
	// CodeJSONParsingFailed means the body was not valid JSON, had the wrong
	// top-level shape or a record failed field validation.
	CodeJSONParsingFailed
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeRequestFailed:
		return "request failed"
	case CodeJSONParsingFailed:
		return "json parsing failed"
	}
	return fmt.Sprintf("code(%d)", int(c))
}

var (
	ErrRequestFailed     = errors.New("request failed")
	ErrJSONParsingFailed = errors.New("json parsing failed")
)

// Error is returned by every query. It matches ErrRequestFailed or
// ErrJSONParsingFailed with errors.Is, depending on Code.
type Error struct {
	Op   string
	Code Code
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrRequestFailed:
		return e.Code == CodeRequestFailed
	case ErrJSONParsingFailed:
		return e.Code == CodeJSONParsingFailed
	}
	return false
}

func requestFailed(op string, err error) error {
	return &Error{Op: op, Code: CodeRequestFailed, Err: err}
}

func parsingFailed(op string, err error) error {
	return &Error{Op: op, Code: CodeJSONParsingFailed, Err: err}
}

// CodeOf classifies err. A nil error is CodeOK. Errors that did not come out
// of a parser, such as a cancelled context, are CodeRequestFailed.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	if errors.Is(err, ErrJSONParsingFailed) {
		return CodeJSONParsingFailed
	}
	return CodeRequestFailed
}
