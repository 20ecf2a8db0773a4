package main

import (
	"fmt"
	"os"

	realmtools "github.com/erraggy/realmtools"
	"github.com/erraggy/realmtools/cmd/realmtools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("realmtools v%s\n", realmtools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "clone":
		if err := commands.HandleClone(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "inspect":
		if err := commands.HandleInspect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists every command name for typo suggestions.
var knownCommands = []string{"clone", "inspect", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or an empty string when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`realmtools - Keycloak Realm Export Tools

Usage:
  realmtools <command> [options]

Commands:
  clone       Clone a realm export under a new name with fresh identifiers
  inspect     Parse and display a realm export summary
  mcp         Run an MCP server exposing realmtools over stdio
  version     Show version information
  help        Show this help message

Examples:
  realmtools clone -n ajax-dev ajax-realm.json
  realmtools clone -n ajax-dev -o - ajax-realm.json > dev.json
  realmtools inspect ajax-realm.json
  kcadm get realms/ajax | realmtools clone -q -n ajax-dev -o - - > dev.json

Run 'realmtools <command> --help' for more information on a command.`)
}
