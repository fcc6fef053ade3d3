package main

import (
	"fmt"
	"os"

	"github.com/spectools/specharden"
	"github.com/spectools/specharden/cmd/specharden/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("specharden v%s\n", specharden.Version())
	case "help", "-h", "--help":
		printUsage()
	case "apply":
		if err := commands.HandleApply(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`specharden - OpenAPI Security Hardening

Usage:
  specharden <command> [options]

Commands:
  apply       Merge the security fragment and enhance every operation
  version     Show version information
  help        Show this help message

Examples:
  specharden apply
  specharden apply -p api/openapi.yaml -f api/security.yaml
  specharden apply --backup /tmp/openapi-backup.yaml

Run 'specharden <command> --help' for more information on a command.`)
}
