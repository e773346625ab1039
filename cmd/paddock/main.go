// Package main provides the entry point for the paddock API.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/paddock/internal/api"
	"github.com/yourusername/paddock/internal/config"
	"github.com/yourusername/paddock/internal/database"
	"github.com/yourusername/paddock/internal/health"
	"github.com/yourusername/paddock/internal/logger"
	"github.com/yourusername/paddock/internal/metrics"
	"github.com/yourusername/paddock/internal/repository"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile   string
	migrateFirst bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigPath, "Path to configuration file")
	serveCmd.Flags().BoolVar(&migrateFirst, "migrate", false, "Apply database migrations before serving")

	rootCmd.AddCommand(serveCmd, migrateCmd, routesCmd, versionCmd)
}

var rootCmd = &cobra.Command{
	Use:          "paddock",
	Short:        "Motorsport results API",
	Long:         `Serves addresses, classes, cars, drivers, teams, races and race results over a JSON API backed by PostgreSQL.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, appLog, err := loadConfig(cmd.Context())
		if err != nil {
			return err
		}
		return database.Migrate(cmd.Context(), appLog, cfg.GetDatabaseDSN())
	},
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the API route table",
	RunE: func(cmd *cobra.Command, args []string) error {
		repos := &repository.Repositories{}
		h := api.NewHandler(repos, logrus.New())
		for _, route := range h.Routes() {
			line := fmt.Sprintf("%-7s /api%-28s %-11s %s", route.Method, route.Path, route.Tag, route.Description)
			if fields := route.Fields(); len(fields) > 0 {
				line += " [" + strings.Join(fields, ", ") + "]"
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "paddock %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// loadConfig reads the file and environment, overlays AWS secrets when
// PADDOCK_AWS_SECRETS_ENABLED is set, validates, and builds the logger.
func loadConfig(ctx context.Context) (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if os.Getenv("PADDOCK_AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("PADDOCK_AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return nil, nil, fmt.Errorf("AWS_REGION and PADDOCK_AWS_SECRET_NAME must be set when PADDOCK_AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(ctx, cfg, region, secretName); err != nil {
			return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, logger.New(os.Stdout, cfg.App.LogLevel, cfg.IsProduction()), nil
}

func serve(ctx context.Context) error {
	cfg, appLog, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"version":     Version,
	}).Info("Paddock API starting")

	if migrateFirst {
		if err := database.Migrate(ctx, appLog, cfg.GetDatabaseDSN()); err != nil {
			return err
		}
	}

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	db, err := database.NewDB(connectCtx, &cfg.Database)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	appLog.Info("Database connection established")

	repos, err := repository.NewRepositories(db)
	if err != nil {
		return fmt.Errorf("failed to initialize repositories: %w", err)
	}

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
	}

	checker := health.NewChecker(cfg.App.Name, Version, db)
	router := api.NewRouter(api.RouterConfig{
		Repositories: repos,
		Health:       checker,
		Logger:       appLog,
		Server:       cfg.Server,
		Metrics:      cfg.Metrics,
	})

	checker.SetReady(true)
	defer checker.SetReady(false)

	return api.NewServer(cfg.Server, router, appLog).Run(ctx)
}
