package jsonrpc

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeCanonicalMessages(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{code: NoError, want: "No error"},
		{code: ParseError, want: "Parse error"},
		{code: InvalidRequest, want: "Invalid request"},
		{code: MethodNotFound, want: "Method not found"},
		{code: InvalidParams, want: "Invalid params"},
		{code: InternalError, want: "Internal error"},
		{code: ServerErrorLower, want: "Server error"},
		{code: ServerErrorUpper, want: "Server error"},
		{code: ErrorCode(-32050), want: "Unknown"},
		{code: ErrorCode(12345), want: "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.String())
	}
}

func TestNewError(t *testing.T) {
	rpcErr := NewError(MethodNotFound)
	assert.Equal(t, MethodNotFound, rpcErr.Code)
	assert.Equal(t, "Method not found", rpcErr.Message)
	assert.Empty(t, rpcErr.Data)

	rpcErr = NewErrorData(InternalError, "Not implemented")
	assert.Equal(t, InternalError, rpcErr.Code)
	assert.Equal(t, "Internal error", rpcErr.Message)
	assert.Equal(t, "Not implemented", rpcErr.Data)
}

func TestErrVersion(t *testing.T) {
	rpcErr := ErrVersion("1.0")
	assert.Equal(t, InvalidRequest, rpcErr.Code)
	assert.Equal(t, "Invalid request", rpcErr.Message)
	assert.Equal(t, "Invalid version: 1.0 only supported version is 2.0", rpcErr.Data)
}

func TestErrMethod(t *testing.T) {
	rpcErr := ErrMethod("tasks/send")
	assert.Equal(t, MethodNotFound, rpcErr.Code)
	assert.Equal(t, "Method not found", rpcErr.Message)
	assert.Equal(t, "Method: 'tasks/send' not found", rpcErr.Data)
}

func TestErrParseAndErrInvalidCarryContext(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")

	rpcErr := ErrParse(cause, `{"jsonrpc":`)
	assert.Equal(t, ParseError, rpcErr.Code)
	assert.Equal(t, "Parse error", rpcErr.Message)
	assert.Contains(t, rpcErr.Data, "unexpected end of JSON input")
	assert.Contains(t, rpcErr.Data, `{\"jsonrpc\":`)

	rpcErr = ErrInvalid(cause, "")
	assert.Equal(t, InvalidRequest, rpcErr.Code)
	assert.Equal(t, cause.Error(), rpcErr.Data)
}

func TestErrParseTruncatesOversizedPayloads(t *testing.T) {
	huge := make([]byte, 4096)
	for i := range huge {
		huge[i] = 'x'
	}

	rpcErr := ErrParse(errors.New("boom"), string(huge))
	assert.Less(t, len(rpcErr.Data), 256)
	assert.Contains(t, rpcErr.Data, "...")
}

func TestErrParseTruncatesOnRuneBoundaries(t *testing.T) {
	// The cut point lands in the middle of the first multi-byte rune.
	payload := strings.Repeat("x", 79) + strings.Repeat("語", 8)

	rpcErr := ErrParse(errors.New("boom"), payload)
	assert.True(t, utf8.ValidString(rpcErr.Data))
	assert.NotContains(t, rpcErr.Data, `\x`)
	assert.Contains(t, rpcErr.Data, "boom")
	assert.Contains(t, rpcErr.Data, "...")
}

func TestErrorImplementsError(t *testing.T) {
	var err error = NewError(ParseError)
	assert.Equal(t, "RPC error -32700: Parse error", err.Error())
}

func TestErrorIsError(t *testing.T) {
	assert.False(t, Error{}.IsError())
	assert.False(t, NewError(NoError).IsError())
	assert.True(t, NewError(ParseError).IsError())
	assert.True(t, NewErrorData(ServerErrorLower, "db down").IsError())
}

func TestErrorCopyHelpers(t *testing.T) {
	base := NewError(ServerErrorLower)

	custom := base.WithMessagef("quota exceeded for %q", "tenant-1")
	assert.Equal(t, `quota exceeded for "tenant-1"`, custom.Message)
	assert.Equal(t, "Server error", base.Message)

	withData := base.WithData("retry later")
	assert.Equal(t, "retry later", withData.Data)
	assert.Empty(t, base.Data)
}

func TestErrorWireForm(t *testing.T) {
	buf, err := json.Marshal(NewError(MethodNotFound))
	assert.NoError(t, err)
	assert.Equal(t, `{"code":-32601,"message":"Method not found"}`, string(buf))

	buf, err = json.Marshal(NewErrorData(InternalError, "Not implemented"))
	assert.NoError(t, err)
	assert.Equal(t, `{"code":-32603,"message":"Internal error","data":"Not implemented"}`, string(buf))
}
