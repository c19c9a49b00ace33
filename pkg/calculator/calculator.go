// Package calculator wires a small arithmetic and text service into the
// protocol engine. It is the demo payload behind the CLI and the examples,
// and doubles as a reference for registering methods of your own.
package calculator

import (
	"github.com/theapemachine/jsonrpc-go/pkg/jsonrpc"
)

type BinaryParams struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

type Value struct {
	Value float64 `json:"value"`
}

type TextParams struct {
	Text string `json:"text"`
}

type TextValue struct {
	Text string `json:"text"`
}

// Method descriptors shared by the server and any client talking to it.
var (
	Add      = jsonrpc.NewMethod[BinaryParams, Value]("calc/add")
	Subtract = jsonrpc.NewMethod[BinaryParams, Value]("calc/subtract")
	Multiply = jsonrpc.NewMethod[BinaryParams, Value]("calc/multiply")
	Divide   = jsonrpc.NewMethod[BinaryParams, Value]("calc/divide")
	Power    = jsonrpc.NewMethod[BinaryParams, Value]("calc/power")
	Echo     = jsonrpc.NewMethod[TextParams, TextValue]("text/echo")
	Reverse  = jsonrpc.NewMethod[TextParams, TextValue]("text/reverse")
)

// ErrDivisionByZero is what calc/divide answers for a zero divisor.
var ErrDivisionByZero = jsonrpc.NewErrorData(jsonrpc.ServerErrorLower, "division by zero")

/*
NewServer builds the dispatcher with every calculator method registered.
calc/power is declared but left unimplemented, so callers can observe how
the engine reports methods that are known but unserviced.
*/
func NewServer() *jsonrpc.Server {
	return jsonrpc.NewServer(
		jsonrpc.Handle(Add, func(params BinaryParams) (Value, *jsonrpc.Error) {
			return Value{Value: params.A + params.B}, nil
		}),
		jsonrpc.Handle(Subtract, func(params BinaryParams) (Value, *jsonrpc.Error) {
			return Value{Value: params.A - params.B}, nil
		}),
		jsonrpc.Handle(Multiply, func(params BinaryParams) (Value, *jsonrpc.Error) {
			return Value{Value: params.A * params.B}, nil
		}),
		jsonrpc.Handle(Divide, func(params BinaryParams) (Value, *jsonrpc.Error) {
			if params.B == 0 {
				rpcErr := ErrDivisionByZero
				return Value{}, &rpcErr
			}

			return Value{Value: params.A / params.B}, nil
		}),
		jsonrpc.NotImplemented(Power),
		jsonrpc.Handle(Echo, func(params TextParams) (TextValue, *jsonrpc.Error) {
			return TextValue{Text: params.Text}, nil
		}),
		jsonrpc.Handle(Reverse, func(params TextParams) (TextValue, *jsonrpc.Error) {
			runes := []rune(params.Text)

			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}

			return TextValue{Text: string(runes)}, nil
		}),
	)
}
