package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/factors/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Exposes the factorizer as a JSON API over HTTP.

Routes:
- GET  /factorize/{n}
- POST /factorize   {"numbers": [12, 13, 15]}
- GET  /health, /info, /metrics`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			printError(cmd, err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := cli.Serve(ctx, cli.ServeOptions{Config: cfg}); err != nil {
			printError(cmd, err)
			stop()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
}
