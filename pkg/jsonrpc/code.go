package jsonrpc

/*
ErrorCode is a JSON-RPC 2.0 error code. Codes in -32768..-32000 are reserved
by the protocol; applications pick their own codes outside that band, or
inside ServerErrorUpper..ServerErrorLower for implementation-defined server
errors.
*/
type ErrorCode int

// Reserved codes (JSON-RPC 2.0 §5.1).
const (
	NoError        ErrorCode = 0
	ParseError     ErrorCode = -32700
	InvalidRequest ErrorCode = -32600
	MethodNotFound ErrorCode = -32601
	InvalidParams  ErrorCode = -32602
	InternalError  ErrorCode = -32603

	// Bounds of the implementation-defined server error band.
	ServerErrorLower ErrorCode = -32000
	ServerErrorUpper ErrorCode = -32099
)

// String returns the canonical message for code. Codes without a canonical
// message render as "Unknown".
func (code ErrorCode) String() string {
	switch code {
	case NoError:
		return "No error"
	case ParseError:
		return "Parse error"
	case InvalidRequest:
		return "Invalid request"
	case MethodNotFound:
		return "Method not found"
	case InvalidParams:
		return "Invalid params"
	case InternalError:
		return "Internal error"
	case ServerErrorLower, ServerErrorUpper:
		return "Server error"
	}

	return "Unknown"
}
