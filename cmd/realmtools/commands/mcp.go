package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/realmtools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: realmtools mcp\n\n")
		Writef(output, "Run an MCP (Model Context Protocol) server over stdio.\n\n")
		Writef(output, "The server exposes realmtools capabilities as MCP tools:\n")
		Writef(output, "  clone      Clone a realm export under a new name with fresh identifiers\n")
		Writef(output, "  inspect    Parse a realm export and return a structural summary\n")
		Writef(output, "\nConfiguration (environment variables):\n")
		Writef(output, "  REALMTOOLS_MAX_INLINE_SIZE    max inline content size in bytes (default 4194304)\n")
		Writef(output, "  REALMTOOLS_MAX_REWRITES       max rewrite records returned per call (default 200)\n")
		Writef(output, "\nExample MCP client config:\n")
		Writef(output, "  {\"mcpServers\": {\"realmtools\": {\"command\": \"realmtools\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It blocks until the client
// disconnects or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
