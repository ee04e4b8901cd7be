package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/factors/internal/cli"
	"github.com/aretw0/factors/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "factors <file>",
	Short: "Factorize numbers in a file",
	Long: `Reads one integer per line from <file> and prints "n=i*j" for every number
that splits into two factors, using trial division up to its square root.
Primes, 0 and 1 print nothing. The elapsed time is printed at the end.

A file named like a subcommand (version, serve, mcp) goes after "--":
  factors -- version`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			printError(cmd, err)
			os.Exit(1)
		}
		summary, _ := cmd.Flags().GetBool("summary")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		code := cli.RunFile(ctx, cli.RunOptions{
			Path:    args[0],
			Config:  cfg,
			Summary: summary,
		})
		if code != 0 {
			stop()
			os.Exit(code)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("cache", "", "Result cache: none, memory or redis")
	rootCmd.PersistentFlags().String("redis-addr", "", "Redis address for --cache=redis")

	rootCmd.Flags().Bool("json", false, "Print results as JSON lines")
	rootCmd.Flags().Bool("summary", false, "Render a run summary on stderr")
}

// printError writes a fatal command error to stderr; stdout carries results only.
func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}

// loadConfig reads --config and applies flag overrides on top.
func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("cache") {
		cfg.Cache.Backend, _ = flags.GetString("cache")
	}
	if flags.Changed("redis-addr") {
		cfg.Cache.Redis.Addr, _ = flags.GetString("redis-addr")
	}
	if flags.Lookup("json") != nil && flags.Changed("json") {
		if asJSON, _ := flags.GetBool("json"); asJSON {
			cfg.Output = config.OutputJSON
		} else {
			cfg.Output = config.OutputText
		}
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.Server.Port, _ = flags.GetInt("port")
	}

	return cfg, cfg.Validate()
}
