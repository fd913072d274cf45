// Package main provides the entry point for the injectkit CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "none"
)

// buildVersion returns the full version string including the commit.
func buildVersion() string {
	if commit == "none" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", version, shortCommit)
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(buildVersion())); err != nil {
		os.Exit(1)
	}
}
