// Package main is the entry point for the cryptokit CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/hasbyte1/go-crypto-utils/internal/cli"
)

// Set with -ldflags "-X main.version=..." at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})
	stop()
	os.Exit(code)
}
