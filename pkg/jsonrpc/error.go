package jsonrpc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

/*
Error is the error member of a JSON-RPC response. Message always carries the
canonical text for Code so peers can match on it; whatever context the
failure site had available travels in Data, which stays off the wire when
empty.
*/
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Data    string    `json:"data,omitempty"`
}

// NewError builds an Error carrying the canonical message for code.
func NewError(code ErrorCode) Error {
	return Error{Code: code, Message: code.String()}
}

// NewErrorData builds an Error carrying the canonical message for code plus
// contextual data.
func NewErrorData(code ErrorCode, data string) Error {
	return Error{Code: code, Message: code.String(), Data: data}
}

// ErrParse reports text that could not be parsed as JSON.
func ErrParse(cause error, text string) Error {
	return NewErrorData(ParseError, describe(cause, text))
}

// ErrInvalid reports an envelope that parsed as JSON but does not form a
// valid request.
func ErrInvalid(cause error, text string) Error {
	return NewErrorData(InvalidRequest, describe(cause, text))
}

// ErrVersion reports a request whose jsonrpc member names an unsupported
// protocol revision.
func ErrVersion(presumed string) Error {
	return NewErrorData(InvalidRequest, fmt.Sprintf(
		"Invalid version: %s only supported version is %s", presumed, Version,
	))
}

// ErrMethod reports a request naming a method the server does not expose.
func ErrMethod(presumed string) Error {
	return NewErrorData(MethodNotFound, fmt.Sprintf("Method: '%s' not found", presumed))
}

/*
Error implements the error interface for Error values.
*/
func (e Error) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// IsError reports whether e carries an actual failure rather than the
// NoError zero value.
func (e Error) IsError() bool {
	return e.Code != NoError
}

// WithMessagef returns a copy of e with a formatted message. The receiver is
// left untouched, so the canonical constructors stay canonical.
func (e Error) WithMessagef(format string, args ...any) Error {
	e.Message = fmt.Sprintf(format, args...)
	return e
}

// WithData returns a copy of e with data attached.
func (e Error) WithData(data string) Error {
	e.Data = data
	return e
}

// describe renders a decode failure next to the payload that caused it. The
// payload is truncated on a rune boundary so one oversized frame cannot
// balloon the response.
func describe(cause error, text string) string {
	const window = 80

	snippet := strings.TrimSpace(text)
	if len(snippet) > window {
		cut := window

		for cut > 0 && !utf8.RuneStart(snippet[cut]) {
			cut--
		}

		snippet = snippet[:cut] + "..."
	}

	if snippet == "" {
		return cause.Error()
	}

	return fmt.Sprintf("%s in %q", cause.Error(), snippet)
}
