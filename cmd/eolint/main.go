package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/endoflife-date/eolint/pkg/cli"
	"github.com/endoflife-date/eolint/pkg/console"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		console.PrintError("%v", err)
		os.Exit(1)
	}
}
