package main

import (
	"log/slog"
	"os"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/cli"
)

func main() {
	// Keep stdout for command output.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
