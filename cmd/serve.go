package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/theapemachine/jsonrpc-go/pkg/calculator"
	"github.com/theapemachine/jsonrpc-go/pkg/service"
)

var (
	addrFlag string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo methods over HTTP",
		Long:  longServe,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := addrFlag

			if addr == "" {
				addr = viper.GetString("server.addr")
			}

			return service.NewRPCServer(calculator.NewServer(), addr).Run()
		},
	}
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&addrFlag, "addr", "a", "", "address to bind (defaults to server.addr from the config)")
}

var longServe = `
Serve the built-in demo methods over HTTP. Request frames arrive as POST
bodies on /rpc and response frames travel back as JSON; accepted
notifications answer 204 with no body.

Examples:
  # Serve on the configured address
  jsonrpc-go serve

  # Serve on an explicit address
  jsonrpc-go serve --addr :8080
`
