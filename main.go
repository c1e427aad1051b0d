package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

// main - is the entry point of the application. It parses flags, initializes the configuration and logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		size       int
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Play tic-tac-toe in the terminal",
		Long:         `Two players take turns at one terminal, typing the number of the cell to mark.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig(configPath)

			if cmd.Flags().Changed("size") {
				conf.Board.Size = size
			}
			if noColor {
				conf.Console.NoColor = true
			}

			if err := conf.Validate(); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			if err := app.RunApp(initLogger(conf), conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.yml (default ./config.yml)")
	cmd.Flags().IntVarP(&size, "size", "s", 3, "board size, N for an N×N board")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured marks")

	return cmd
}

// initialize config.
func initConfig(path string) *config.Config {
	return config.MustLoad(path)
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
