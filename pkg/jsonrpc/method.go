package jsonrpc

import (
	"encoding/json"

	"github.com/charmbracelet/log"

	"github.com/theapemachine/jsonrpc-go/pkg/codec"
)

/*
Method statically describes one RPC method: its wire name tied to its params
and result types. Declare descriptors as package-level values and share them
between server and client, so a misspelled name or a mismatched type is a
compile error instead of a runtime surprise.
*/
type Method[P, R any] struct {
	Name string
}

// NewMethod declares the descriptor for name.
func NewMethod[P, R any](name string) Method[P, R] {
	return Method[P, R]{Name: name}
}

/*
ServerMethod is one registered method of a Server: a descriptor bound to a
handler. Values come from Handle, HandleError or NotImplemented; dispatch
stays internal so the contract between Server and its methods is closed.
*/
type ServerMethod interface {
	Name() string
	dispatch(request string, id ID) *RawResponse
}

// HandlerFunc is the shape of a method handler: typed params in, typed
// result or protocol error out. Returning a non-nil *Error discards the
// result.
type HandlerFunc[P, R any] func(params P) (R, *Error)

// Handle binds handler to method.
func Handle[P, R any](method Method[P, R], handler HandlerFunc[P, R]) ServerMethod {
	return &serverMethod[P, R]{name: method.Name, handler: handler}
}

// HandleError binds a handler that can only fail, for methods whose calls
// are always rejected with a domain-specific error.
func HandleError[P, R any](method Method[P, R], handler func(params P) Error) ServerMethod {
	return Handle(method, func(params P) (R, *Error) {
		var zero R
		rpcErr := handler(params)
		return zero, &rpcErr
	})
}

// NotImplemented registers method as known but unserviced; every call
// receives an internal error carrying "Not implemented".
func NotImplemented[P, R any](method Method[P, R]) ServerMethod {
	return Handle(method, func(params P) (R, *Error) {
		var zero R
		rpcErr := NewErrorData(InternalError, "Not implemented")
		return zero, &rpcErr
	})
}

type serverMethod[P, R any] struct {
	name    string
	handler HandlerFunc[P, R]
}

func (m *serverMethod[P, R]) Name() string {
	return m.name
}

// dispatch re-decodes the request with typed params, runs the handler and
// shapes the outcome into a response envelope. A nil return means a
// notification succeeded, which produces no response at all; handler
// failures are reported even for notifications.
func (m *serverMethod[P, R]) dispatch(request string, id ID) *RawResponse {
	req, err := codec.Decode[Request[P]](request)

	if err != nil {
		resp := NewErrorResponse(id, ErrInvalid(err, request))
		return &resp
	}

	result, rpcErr := m.handler(req.Params)

	if rpcErr != nil {
		resp := NewErrorResponse(id, *rpcErr)
		return &resp
	}

	encoded, err := codec.Encode(result)

	if err != nil {
		log.Error("failed to encode result", "method", m.name, "error", err)
		resp := NewErrorResponse(id, NewErrorData(ParseError, err.Error()))
		return &resp
	}

	if id.IsNull() {
		return nil
	}

	resp := NewResponse(id, json.RawMessage(encoded))
	return &resp
}
