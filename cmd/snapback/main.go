// Package main is the entry point for the snapback demonstration binary.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/snapback/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var initialState string
	var showVersion bool

	flag.StringVar(&initialState, "state", "", "Initial document state (default \"initial_state\")")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("snapback %s (%s)\n", version, commit)
		return 0
	}

	application := app.New(app.Options{InitialState: initialState})

	if err := application.RunScenario(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
