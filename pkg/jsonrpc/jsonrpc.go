// Package jsonrpc implements a JSON-RPC 2.0 engine with no transport
// attached: request text goes in, response text comes out, and moving the
// bytes stays the caller's problem. Servers bind typed handlers to shared
// method descriptors; clients build request frames and route response frames
// back to the continuations awaiting them. Malformed peer input is answered
// with protocol errors, never panics.
package jsonrpc

// Version is the protocol revision this engine speaks. The server rejects
// requests carrying anything else in their jsonrpc member.
const Version = "2.0"

// writeErrorText is the fallback frame for the rare case where a response
// cannot be serialized. It is itself valid JSON so the peer always receives
// a well-formed reply.
const writeErrorText = `"write error"`
