// Package main wires the HTTP server for the barbershop catalog service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:          "barbershop",
		Short:        "Barbershop site catalog service",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
