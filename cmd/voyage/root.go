package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adfharrison1/go-voyage/pkg/client"
	"github.com/adfharrison1/go-voyage/pkg/config"
	"github.com/adfharrison1/go-voyage/pkg/planner"
	"github.com/adfharrison1/go-voyage/pkg/server"
)

var (
	cfgFile        string
	portFlag       int
	driverFlag     string
	pathFlag       string
	providerFlag   string
	backgroundSave time.Duration
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "voyage",
		Short: "Trip planner backend with local entity storage",
		Long: "voyage stores trips, itineraries and chat messages in a local key-value store\n" +
			"and generates itineraries through a pluggable generative backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "storage driver (memory, snapshot, badger, pebble, sqlite)")
	rootCmd.PersistentFlags().StringVar(&pathFlag, "data", "", "storage file or directory")
	rootCmd.PersistentFlags().StringVar(&providerFlag, "provider", "", "integration provider (mock, openai)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newGenerateCmd())
	return rootCmd
}

// loadConfig loads configuration, applying CLI flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if driverFlag != "" {
		cfg.Storage.Driver = driverFlag
	}
	if pathFlag != "" {
		cfg.Storage.Path = pathFlag
	}
	if providerFlag != "" {
		cfg.Integration.Provider = providerFlag
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.Server.Port = portFlag
	}
	if f := cmd.Flags().Lookup("background-save"); f != nil && f.Changed {
		cfg.Storage.BackgroundSave = backgroundSave
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)
	return cfg, nil
}

// openClient opens the configured store and wraps it in a client.
func openClient(ctx context.Context, cfg *config.Config) (*client.Client, error) {
	store, err := cfg.OpenStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Storage.Driver, err)
	}
	log.Infof("Using %s storage at %s", cfg.Storage.Driver, cfg.Storage.Path)
	return client.New(store, cfg.Invoker(), cfg.EntityOptions()...), nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c, err := openClient(ctx, cfg)
			if err != nil {
				return err
			}
			if cfg.Storage.BackgroundSave > 0 {
				log.Infof("Background save enabled: every %v", cfg.Storage.BackgroundSave)
			}
			return server.NewServer(c).ListenAndServe(ctx, cfg.Addr())
		},
	}
	cmd.Flags().IntVarP(&portFlag, "port", "p", 8080, "server port")
	cmd.Flags().DurationVar(&backgroundSave, "background-save", 0, "snapshot save interval (e.g. 5m); 0 saves after every write")
	return cmd
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Log out and clear every stored collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			c, err := openClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			redirect, err := c.Auth.Logout(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared local state, continue at %s\n", redirect)
			return nil
		},
	}
}

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <trip-id>",
		Short: "Generate and store the itinerary for a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			c, err := openClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			days, err := planner.NewService(c).GenerateItinerary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(days)
		},
	}
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
