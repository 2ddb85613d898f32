package main

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mcp-suite/mathserver/internal/tools"
)

const version = "1.0.0"

func main() {
	s := server.NewMCPServer("math", version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	tools.Register(s)
	// Stdout belongs to the transport; anything else goes to stderr via log.
	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
