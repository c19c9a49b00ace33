package jsonrpc

import "encoding/json"

/*
Request is the call envelope: the protocol version, the method being
invoked, its params, and the id the response must echo. P is the method's
params type; RawRequest covers the stretch where the method is not yet
known.
*/
type Request[P any] struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  P      `json:"params"`
	ID      ID     `json:"id"` // string | number | null
}

// RawRequest defers params decoding so an envelope can be inspected and
// routed before any method's params type enters the picture.
type RawRequest = Request[json.RawMessage]

// NewRequest builds a request for method carrying params, stamped with the
// supported protocol version.
func NewRequest[P any](id ID, method string, params P) Request[P] {
	return Request[P]{
		JSONRPC: Version,
		Method:  method,
		Params:  params,
		ID:      id,
	}
}

// IsNotification reports whether r expects no response.
func (r Request[P]) IsNotification() bool {
	return r.ID.IsNull()
}
