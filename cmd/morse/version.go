package main

import (
	"fmt"
	"os"
)

// Version gets printed by the version subcommand. Overridable at build
// time via -ldflags "-X main.Version=...".
var Version = "1.0.0"

func version() {
	_, _ = fmt.Fprintln(os.Stdout, Version)
	os.Exit(exitOK)
}
