// Command assistant runs the group-message fan-out bot (spec.md section 1's
// "group assistant"): ForwardContentProcessor, GroupMessageHandler,
// GroupKeyManager and Distributor wired into one process.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimchat/assistant-go/engine"
	"github.com/dimchat/assistant-go/internal/config"
	"github.com/dimchat/assistant-go/internal/messenger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "assistant",
	Short: "Run the dimchat group-message assistant bot",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to the bot's ini configuration file")
}

func run(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		return fmt.Errorf("--config is required")
	}

	logger := logrus.StandardLogger()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The transport/crypto session is out of scope (spec.md section 1); the
	// real station wiring replaces this recorder with its own Messenger.
	msgr := messenger.NewRecorder()

	bundle, err := engine.New(cfg, msgr, logger)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	defer bundle.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("assistant bot started")
	bundle.Run(ctx)
	logger.Info("assistant bot stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
