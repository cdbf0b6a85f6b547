package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"zoo-web/app"
	"zoo-web/config"
	"zoo-web/logger"
)

var (
	envFile      string
	portFlag     string
	logLevelFlag string
)

// rootCmd runs the server when no subcommand is given
var rootCmd = &cobra.Command{
	Use:   "zoo",
	Short: "Zoo public website service",
	Long: `Serves the zoo website API: animal directory, shop and cart,
visitor information, events, zoo map, mock sign-in and theme preferences.

Running without a subcommand is the same as "zoo serve".`,
	SilenceUsage: true,
	RunE:         runServe,
}

// serveCmd starts the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded outside production")
	rootCmd.PersistentFlags().StringVar(&portFlag, "port", "", "listen port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd, animalsCmd, productsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies the flag overrides on top of the environment
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, note, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}
	if portFlag != "" {
		cfg.Port = portFlag
		if os.Getenv("BASE_URL") == "" {
			cfg.BaseURL = "http://localhost:" + cfg.Port
		}
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}

	log, err := logger.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	if note != "" {
		log.Info(note)
	}
	return cfg, log, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize application
	a, err := app.Initialize(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize application", zap.Error(err))
		return err
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}
