package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pnmeka/nostr-terminal/internal/app"
	"github.com/pnmeka/nostr-terminal/internal/logging"
)

var (
	configPath string
	home       string
	passphrase string
	relayURL   string
	timeout    time.Duration
	logLevel   string

	cfg    *app.Config
	wire   *app.Wire
	logger *slog.Logger
)

// Execute runs the CLI until completion or until SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "nostr-terminal <message...>",
		Short:        "Sign and publish Nostr notes from the terminal",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPost(cmd, strings.Join(args, " "))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ~/.nostr-terminal/config.yaml, env "+app.ConfigEnv+")")
	pf.StringVar(&home, "home", "", "key store dir (default ~/.nostr-terminal)")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the key store (env NOSTR_PASSPHRASE)")
	pf.StringVar(&relayURL, "relay", "", "relay websocket URL (e.g. wss://relay.damus.io)")
	pf.DurationVar(&timeout, "timeout", 0, "bound on connect, send and reply (e.g. 10s)")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	addPostFlags(root)

	root.AddCommand(postCmd(), initCmd(), importCmd(), pubkeyCmd(), verifyCmd())
	return root
}

// setup builds cfg, logger and wire for the command about to run.
func setup(cmd *cobra.Command) error {
	path, explicit := configPath, cmd.Flags().Changed("config")
	if !explicit {
		if env := os.Getenv(app.ConfigEnv); env != "" {
			path, explicit = env, true
		} else if dir, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(dir, ".nostr-terminal", "config.yaml")
		}
	}

	c, err := app.LoadConfig(path, explicit)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("home") {
		if c.Home, err = app.ExpandHome(home); err != nil {
			return err
		}
	}
	if flags.Changed("relay") {
		c.Relay.URL = relayURL
	}
	if flags.Changed("timeout") {
		c.Relay.Timeout = timeout
	}
	if flags.Changed("log-level") {
		c.Log.Level = logging.ParseLevel(logLevel)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	logger = logging.Init(cmd.ErrOrStderr(), c.Log.Format, c.Log.Level)
	w, err := app.NewWire(c, logger)
	if err != nil {
		return err
	}
	cfg, wire = c, w

	logger.Debug("configuration loaded",
		slog.String("home", c.Home),
		slog.String("relay", c.Relay.URL),
		slog.Duration("timeout", c.Relay.Timeout))
	return nil
}
