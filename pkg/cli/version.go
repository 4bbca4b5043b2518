package cli

import (
	"flag"
	"fmt"
)

// Version information set at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func newVersionCommand() *Command {
	return &Command{
		Name:        "version",
		Description: "Print version information",
		Flags:       flag.NewFlagSet("version", flag.ExitOnError),
		Run:         runVersion,
	}
}

func runVersion(args []string) error {
	fmt.Printf("protopojo %s (%s)\n", Version, GitCommit)
	return nil
}
