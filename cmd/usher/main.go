// Command usher runs the liveness-driven inviter bot (spec.md section 1's
// "usher"): shares the same engine.Bundle core as assistant, but attaches
// the onNewUser hook that re-invites a returning member into its group.
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
	. "github.com/dimchat/mkm-go/protocol"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	groupID    string
)

var rootCmd = &cobra.Command{
	Use:   "usher",
	Short: "Run the dimchat liveness-invite (usher) bot",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to the bot's ini configuration file")
	rootCmd.Flags().StringVar(&groupID, "group", "", "group ID this usher re-invites members into")
}

func run(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		return fmt.Errorf("--config is required")
	}
	if groupID == "" {
		return fmt.Errorf("--group is required")
	}
	group := IDParse(groupID)
	if group == nil {
		return fmt.Errorf("invalid --group id %q", groupID)
	}

	logger := logrus.StandardLogger()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	msgr := messenger.NewRecorder()

	bundle, err := engine.New(cfg, msgr, logger)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	defer bundle.Close()
	bundle.AttachUsher(group)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("usher bot started")
	bundle.Run(ctx)
	logger.Info("usher bot stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
