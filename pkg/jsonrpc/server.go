package jsonrpc

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/theapemachine/jsonrpc-go/pkg/codec"
)

// Absent envelope members fall back to defaults; explicit nulls never do.
var (
	errNullVersion = errors.New("jsonrpc member cannot be null")
	errNullMethod  = errors.New("method member cannot be null")
	errNullParams  = errors.New("params member cannot be null")
)

/*
Server dispatches JSON-RPC request text to registered methods and shapes the
reply text. It holds no transport and no locks: feed it whatever frames
arrive, send back whatever it returns, drop empty replies, and serialize
access the same way the transport is serialized.
*/
type Server struct {
	methods []ServerMethod
}

// NewServer builds a dispatcher over the given methods. The set is fixed for
// the server's lifetime and scanned in order, so on duplicate names the
// earlier registration wins.
func NewServer(methods ...ServerMethod) *Server {
	return &Server{
		methods: methods,
	}
}

/*
Call processes one request frame, single or batch, and returns the response
text. An empty string means no response is owed: the frame was a successful
notification, or a batch of them. An all-notification batch still answers
with an empty array.
*/
func (srv *Server) Call(request string) string {
	responses, batch := srv.dispatch(request)

	if batch {
		text, err := codec.Encode(responses)

		if err != nil {
			log.Error("failed to encode batch response", "error", err)
			return writeErrorText
		}

		return text
	}

	if len(responses) == 0 {
		return ""
	}

	text, err := codec.Encode(responses[0])

	if err != nil {
		log.Error("failed to encode response", "error", err)
		return writeErrorText
	}

	return text
}

/*
CallRaw processes one request frame and returns the responses still in
envelope form, one per answered request. Notifications contribute an entry
only when they fail.
*/
func (srv *Server) CallRaw(request string) []RawResponse {
	responses, _ := srv.dispatch(request)
	return responses
}

// dispatch fans a frame out to the per-request path. The flag reports
// whether the frame was a batch, which decides between array and single
// serialization even when the counts agree.
func (srv *Server) dispatch(request string) ([]RawResponse, bool) {
	if err := codec.Validate(request); err != nil {
		return []RawResponse{NewErrorResponse(NullID(), ErrParse(err, request))}, false
	}

	trimmed := strings.TrimSpace(request)

	if strings.HasPrefix(trimmed, "[") {
		// Validate guarantees the frame parses, and a leading '[' makes
		// it an array of raw elements.
		elements, _ := codec.Decode[[]json.RawMessage](trimmed)

		if len(elements) == 0 {
			return []RawResponse{NewErrorResponse(NullID(), NewError(InvalidRequest))}, false
		}

		responses := make([]RawResponse, 0, len(elements))

		for _, element := range elements {
			if resp := srv.single(string(element)); resp != nil {
				responses = append(responses, *resp)
			}
		}

		return responses, true
	}

	if resp := srv.single(trimmed); resp != nil {
		return []RawResponse{*resp}, false
	}

	return []RawResponse{}, false
}

/*
requestEnvelope is the dispatcher's view of a request before any method's
params type enters the picture. Pointer members tell an absent member, which
keeps its pre-filled default, apart from an explicit null, which clears the
pointer and gets rejected.
*/
type requestEnvelope struct {
	JSONRPC *string         `json:"jsonrpc"`
	Method  *string         `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      ID              `json:"id"` // string | number | null
}

// single runs one request envelope through decoding, version check, method
// lookup and dispatch. A nil response means a successfully handled
// notification.
func (srv *Server) single(request string) *RawResponse {
	// Missing jsonrpc and method members keep the pre-filled defaults; a
	// version mismatch is rejected after decoding.
	version, name := Version, ""
	envelope := requestEnvelope{JSONRPC: &version, Method: &name}

	if err := codec.DecodeInto(request, &envelope); err != nil {
		// The envelope is unusable as a whole; salvage the id if the
		// payload still carries a readable one.
		rpcErr := ErrInvalid(err, request)

		if id, idErr := codec.Extract[ID](request, "id"); idErr == nil {
			return respond(id, rpcErr)
		}

		return respond(NullID(), rpcErr)
	}

	if envelope.JSONRPC == nil {
		return respond(envelope.ID, ErrInvalid(errNullVersion, request))
	}

	if envelope.Method == nil {
		return respond(envelope.ID, ErrInvalid(errNullMethod, request))
	}

	if *envelope.JSONRPC != Version {
		return respond(envelope.ID, ErrVersion(*envelope.JSONRPC))
	}

	log.Debug("dispatching request", "method", *envelope.Method, "id", envelope.ID)

	for _, method := range srv.methods {
		if method.Name() == *envelope.Method {
			// Absent params decode to zero values. A literal null would
			// too, so it never reaches the typed decode.
			if string(envelope.Params) == "null" {
				return respond(envelope.ID, ErrInvalid(errNullParams, request))
			}

			return method.dispatch(request, envelope.ID)
		}
	}

	return respond(envelope.ID, ErrMethod(*envelope.Method))
}

func respond(id ID, rpcErr Error) *RawResponse {
	resp := NewErrorResponse(id, rpcErr)
	return &resp
}
