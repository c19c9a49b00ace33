package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/theapemachine/jsonrpc-go/pkg/calculator"
	"github.com/theapemachine/jsonrpc-go/pkg/codec"
	"github.com/theapemachine/jsonrpc-go/pkg/jsonrpc"
)

var (
	methodFlag string
	paramsFlag string
	idFlag     string
	notifyFlag bool
	sendFlag   bool

	requestCmd = &cobra.Command{
		Use:   "request",
		Short: "Build a JSON-RPC request frame",
		Long:  longRequest,
		RunE: func(cmd *cobra.Command, args []string) error {
			if methodFlag == "" {
				return errors.New("--method is required")
			}

			// An absent --params still has to fill the params member, and
			// null is not a value servers accept there.
			params := json.RawMessage(`{}`)

			if paramsFlag != "" {
				if err := codec.Validate(paramsFlag); err != nil {
					return fmt.Errorf("invalid params: %w", err)
				}

				params = json.RawMessage(paramsFlag)
			}

			call := jsonrpc.NewCall(jsonrpc.NewMethod[json.RawMessage, json.RawMessage](methodFlag))

			var frame string

			if notifyFlag {
				frame = call.Notify(params)
			} else {
				frame, _ = call.Request(requestID(), params, settle)
			}

			fmt.Println(render(frame))

			if !sendFlag {
				return nil
			}

			response := calculator.NewServer().Call(frame)

			if response == "" {
				log.Info("notification accepted, no response owed")
				return nil
			}

			fmt.Println(render(response))

			if consumeErr := jsonrpc.NewClient(call).ConsumeResponse(response); consumeErr.IsError() {
				return consumeErr
			}

			return nil
		},
	}
)

// settle reports the outcome of a sent request.
func settle(result *json.RawMessage, callErr *jsonrpc.Error, id jsonrpc.ID) {
	if callErr != nil {
		log.Error("call failed", "id", id, "code", callErr.Code, "data", callErr.Data)
		return
	}

	log.Info("call settled", "id", id, "result", string(*result))
}

/*
requestID picks the identifier for the outgoing frame: a whole-number --id
becomes a numeric id, any other --id text becomes a string id, and an empty
flag draws a random one.
*/
func requestID() jsonrpc.ID {
	if idFlag == "" {
		return jsonrpc.RandomID()
	}

	if n, err := strconv.ParseInt(idFlag, 10, 64); err == nil {
		return jsonrpc.Int64ID(n)
	}

	return jsonrpc.StringID(idFlag)
}

func init() {
	rootCmd.AddCommand(requestCmd)

	requestCmd.Flags().StringVarP(&methodFlag, "method", "m", "", "method name for the request")
	requestCmd.Flags().StringVarP(&paramsFlag, "params", "p", "", "params member as raw JSON")
	requestCmd.Flags().StringVar(&idFlag, "id", "", "request id (defaults to a random string id)")
	requestCmd.Flags().BoolVarP(&notifyFlag, "notify", "n", false, "build a notification instead of a call")
	requestCmd.Flags().BoolVarP(&sendFlag, "send", "s", false, "dispatch the frame to the demo methods and consume the response")
	requestCmd.Flags().BoolVar(&prettyFlag, "pretty", false, "pretty-print frames")
}

var longRequest = `
Build a JSON-RPC 2.0 request frame the way a client would, print it, and
optionally dispatch it to the built-in demo methods.

Examples:
  # Build a call frame with a random id
  jsonrpc-go request --method calc/add --params '{"a":1,"b":2}'

  # Build and immediately dispatch, consuming the response
  jsonrpc-go request --method calc/divide --params '{"a":1,"b":0}' --id 7 --send

  # Build a notification
  jsonrpc-go request --method text/echo --params '{"text":"hi"}' --notify
`
