package service

import (
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"

	"github.com/theapemachine/jsonrpc-go/pkg/jsonrpc"
)

/*
RPCServer exposes a jsonrpc.Server over HTTP. The engine itself never sees
the transport: this façade feeds it request text from POST bodies and writes
back whatever text the engine returns. Replies are always 200 with a JSON
body, except for accepted notifications, which owe nothing and answer 204.
*/
type RPCServer struct {
	app    *fiber.App
	engine *jsonrpc.Server
	addr   string
}

// NewRPCServer wires engine to a fiber app bound to addr.
func NewRPCServer(engine *jsonrpc.Server, addr string) *RPCServer {
	srv := &RPCServer{
		app: fiber.New(fiber.Config{
			AppName:      "jsonrpc-go",
			ServerHeader: "jsonrpc-go",
		}),
		engine: engine,
		addr:   addr,
	}

	srv.app.Get("/healthz", func(ctx fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	srv.app.Post("/rpc", srv.handleRPC)

	return srv
}

// App exposes the underlying fiber app, mainly for tests.
func (srv *RPCServer) App() *fiber.App {
	return srv.app
}

// Run blocks serving requests until the listener fails or is shut down.
func (srv *RPCServer) Run() error {
	log.Info("serving JSON-RPC over HTTP", "addr", srv.addr)
	return srv.app.Listen(srv.addr)
}

func (srv *RPCServer) handleRPC(ctx fiber.Ctx) error {
	response := srv.engine.Call(string(ctx.Body()))

	// Accepted notifications produce no response text.
	if response == "" {
		return ctx.SendStatus(fiber.StatusNoContent)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return ctx.Status(fiber.StatusOK).SendString(response)
}
