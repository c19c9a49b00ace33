package jsonrpc

import "encoding/json"

/*
Response is the reply envelope. A conformant response sets exactly one of
Result and Error; ID is always emitted, echoing the request it answers, or
null when no id could be recovered from a broken request.
*/
type Response[R any] struct {
	JSONRPC string `json:"jsonrpc"`
	Result  *R     `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
	ID      ID     `json:"id"`
}

// RawResponse defers result decoding so responses with different result
// types can be collected and serialized side by side.
type RawResponse = Response[json.RawMessage]

// NewResponse builds a success response echoing id.
func NewResponse[R any](id ID, result R) Response[R] {
	return Response[R]{
		JSONRPC: Version,
		Result:  &result,
		ID:      id,
	}
}

// NewErrorResponse builds a failure response echoing id.
func NewErrorResponse(id ID, rpcErr Error) RawResponse {
	return RawResponse{
		JSONRPC: Version,
		Error:   &rpcErr,
		ID:      id,
	}
}

// IsError reports whether r carries an error member.
func (r Response[R]) IsError() bool {
	return r.Error != nil
}
