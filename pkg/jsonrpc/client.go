package jsonrpc

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/theapemachine/jsonrpc-go/pkg/codec"
)

// missingResultError is the data text for responses that carry neither a
// result nor an error member.
const missingResultError = `Missing key "result" or "error" in response`

// Continuation receives the outcome of one request: exactly one of result
// and callErr is set, along with the id the response carried.
type Continuation[R any] func(result *R, callErr *Error, id ID)

/*
Call is the client-side counterpart of a ServerMethod: a method descriptor
plus the table of continuations keyed by the ids of requests still in
flight. It serializes outbound requests and resolves inbound responses back
to the continuation awaiting them.

A Call holds no locks; the owner serializes access the same way it
serializes its transport.
*/
type Call[P, R any] struct {
	method  Method[P, R]
	pending map[ID]Continuation[R]
}

// NewCall builds the client-side state for method.
func NewCall[P, R any](method Method[P, R]) *Call[P, R] {
	return &Call[P, R]{
		method:  method,
		pending: make(map[ID]Continuation[R]),
	}
}

// Name returns the method name requests are sent under.
func (c *Call[P, R]) Name() string {
	return c.method.Name
}

/*
Request serializes a call for params and queues cont until a response with a
matching id arrives. The returned flag is false when nothing was queued:
either id is null, which makes the request a notification, or a request with
the same id is already in flight, in which case the original continuation
stays and this one is dropped.
*/
func (c *Call[P, R]) Request(id ID, params P, cont Continuation[R]) (string, bool) {
	req := NewRequest(id, c.method.Name, params)

	if id.IsNull() {
		return encodeRequest(req), false
	}

	queued := false

	if _, inFlight := c.pending[id]; !inFlight {
		c.pending[id] = cont
		queued = true
	}

	return encodeRequest(req), queued
}

// Notify serializes a fire-and-forget call for params. No response will
// follow, so nothing is queued.
func (c *Call[P, R]) Notify(params P) string {
	text, _ := c.Request(NullID(), params, func(*R, *Error, ID) {})
	return text
}

// PendingCount returns the number of requests awaiting a response.
func (c *Call[P, R]) PendingCount() int {
	return len(c.pending)
}

// IsPending reports whether id awaits a response.
func (c *Call[P, R]) IsPending(id ID) bool {
	_, inFlight := c.pending[id]
	return inFlight
}

// resolve consumes response if id sits in this call's pending table. The
// entry is removed before the continuation runs, so a continuation observes
// its own request as settled.
func (c *Call[P, R]) resolve(response string, id ID) (bool, Error) {
	cont, inFlight := c.pending[id]

	if !inFlight {
		return false, Error{}
	}

	delete(c.pending, id)

	typed, err := codec.Decode[Response[R]](response)

	if err != nil {
		return true, ErrParse(err, response)
	}

	switch {
	case typed.Result != nil:
		cont(typed.Result, nil, typed.ID)
	case typed.Error != nil:
		cont(nil, typed.Error, typed.ID)
	default:
		return true, NewErrorData(ParseError, missingResultError)
	}

	return true, Error{}
}

func encodeRequest[P any](req Request[P]) string {
	text, err := codec.Encode(req)

	if err != nil {
		log.Error("failed to encode request", "method", req.Method, "error", err)
		return writeErrorText
	}

	return text
}

/*
ClientMethod is the type-erased face of a Call, letting one Client route
responses across calls with different params and result types.
*/
type ClientMethod interface {
	Name() string
	resolve(response string, id ID) (bool, Error)
}

/*
Client routes response frames to the calls whose requests produced them.
Build it once per connection with every Call it should serve and feed each
inbound frame to ConsumeResponse.
*/
type Client struct {
	calls []ClientMethod
}

// NewClient builds a response router over the given calls.
func NewClient(calls ...ClientMethod) *Client {
	return &Client{
		calls: calls,
	}
}

// responseEnvelope is the router's view of a response frame. Like
// requestEnvelope, the pre-filled version pointer tells an absent jsonrpc
// member apart from an explicit null.
type responseEnvelope struct {
	JSONRPC *string          `json:"jsonrpc"`
	Result  *json.RawMessage `json:"result"`
	Error   *Error           `json:"error"`
	ID      ID               `json:"id"`
}

/*
ConsumeResponse decodes one response frame and settles the continuation
waiting on its id. The returned Error is the NoError value when a
continuation accepted the frame, a ParseError when the frame or its result
payload did not decode, and an InternalError when no pending request claims
the id.
*/
func (cl *Client) ConsumeResponse(response string) Error {
	version := Version
	envelope := responseEnvelope{JSONRPC: &version}

	if err := codec.DecodeInto(response, &envelope); err != nil {
		return ErrParse(err, response)
	}

	if envelope.JSONRPC == nil {
		return ErrParse(errNullVersion, response)
	}

	for _, call := range cl.calls {
		if found, callErr := call.resolve(response, envelope.ID); found {
			return callErr
		}
	}

	log.Debug("no pending request for response", "id", envelope.ID)

	return unmatched(envelope.ID)
}

// unmatched shapes the error for a response id nothing is waiting on:
// string ids are quoted, anything else renders as JSON.
func unmatched(id ID) Error {
	if id.IsString() {
		return NewErrorData(InternalError, fmt.Sprintf("id: '%s' not found", id.str))
	}

	encoded, err := codec.Encode(id)

	if err != nil {
		encoded = "unprintable id"
	}

	return NewErrorData(InternalError, fmt.Sprintf("id: %s not found", encoded))
}
