package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tidwall/pretty"

	"github.com/theapemachine/jsonrpc-go/pkg/calculator"
	"github.com/theapemachine/jsonrpc-go/pkg/codec"
)

var (
	fileFlag   string
	prettyFlag bool
	rawFlag    bool

	dispatchCmd = &cobra.Command{
		Use:   "dispatch [request]",
		Short: "Dispatch a JSON-RPC request frame to the demo methods",
		Long:  longDispatch,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := readRequest(args)

			if err != nil {
				return err
			}

			srv := calculator.NewServer()

			// Raw mode normalizes everything, single frames included, to
			// the response array.
			if rawFlag {
				encoded, err := codec.Encode(srv.CallRaw(request))

				if err != nil {
					return fmt.Errorf("failed to encode responses: %w", err)
				}

				fmt.Println(render(encoded))
				return nil
			}

			response := srv.Call(request)

			// A successful notification owes no response text.
			if response == "" {
				log.Info("notification accepted, no response owed")
				return nil
			}

			fmt.Println(render(response))
			return nil
		},
	}
)

/*
readRequest resolves the request frame from the argument, the --file flag,
or stdin, in that order.
*/
func readRequest(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	if fileFlag != "" {
		buf, err := os.ReadFile(fileFlag)

		if err != nil {
			return "", fmt.Errorf("failed to read request file %s: %w", fileFlag, err)
		}

		return string(buf), nil
	}

	buf, err := io.ReadAll(os.Stdin)

	if err != nil {
		return "", fmt.Errorf("failed to read request from stdin: %w", err)
	}

	return string(buf), nil
}

/*
render applies the output settings to a frame: pretty-printed when asked
for, the engine's canonical single-line text otherwise.
*/
func render(frame string) string {
	if prettyFlag || viper.GetBool("output.pretty") {
		return strings.TrimSpace(string(pretty.Pretty([]byte(frame))))
	}

	return frame
}

func init() {
	rootCmd.AddCommand(dispatchCmd)

	dispatchCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "read the request frame from a file instead of stdin")
	dispatchCmd.Flags().BoolVar(&prettyFlag, "pretty", false, "pretty-print response frames")
	dispatchCmd.Flags().BoolVar(&rawFlag, "raw", false, "print the batch-normalized response array")
}

var longDispatch = `
Dispatch a single JSON-RPC 2.0 request frame, or a batch, to the built-in
demo methods and print the response frame.

Examples:
  # Dispatch a frame given as an argument
  jsonrpc-go dispatch '{"jsonrpc":"2.0","method":"calc/add","params":{"a":1,"b":2},"id":1}'

  # Dispatch a batch from a file, pretty-printing the response
  jsonrpc-go dispatch --file batch.json --pretty

  # Dispatch whatever arrives on stdin
  echo '{"jsonrpc":"2.0","method":"text/echo","params":{"text":"hi"},"id":1}' | jsonrpc-go dispatch

  # Normalize the response to an array even for single frames
  jsonrpc-go dispatch --raw '{"jsonrpc":"2.0","method":"calc/add","params":{"a":1,"b":2},"id":1}'
`
