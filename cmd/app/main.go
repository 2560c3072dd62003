// Package main is the entry point for the ignite focus timer.
package main

import (
	"fmt"
	"os"

	"github.com/joaopnk/ignite-timer/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	root := cli.NewRootCommand(version)
	root.SetArgs(args)
	return root.Execute()
}
