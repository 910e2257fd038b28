package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Veraticus/prodchart/internal/cli"
	"github.com/Veraticus/prodchart/internal/common"
	"github.com/Veraticus/prodchart/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app carries the state shared by every command.
type app struct {
	v        *viper.Viper
	logFile  *os.File
	cfgFile  string
	settings config.Settings
}

// quietLogsAnnotation marks commands whose logs are discarded unless a
// log file is configured, so a full-screen UI stays clean.
const quietLogsAnnotation = "quiet-logs"

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "prodchart",
		Short: "📊 Product catalog dashboard",
		Long: `prodchart fetches a product catalog, lets you filter it by category,
pick products and chart a per-product report right in the terminal.`,
		PersistentPreRunE:  a.initConfig,
		PersistentPostRunE: a.closeLog,
		SilenceUsage:       true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/prodchart/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().String("catalog-url", "", "catalog endpoint (overrides catalog_url)")

	// Bind flags to viper
	_ = a.v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = a.v.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))

	rootCmd.AddCommand(a.dashboardCmd())
	rootCmd.AddCommand(a.categoriesCmd())
	rootCmd.AddCommand(a.reportCmd())
	rootCmd.AddCommand(a.configCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err.Error()))
		os.Exit(1)
	}
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	// Set up config file
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		dir, err := config.Dir()
		if err != nil {
			return err
		}

		// Search for config in standard locations
		a.v.AddConfigPath(dir)
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	// Environment variables
	a.v.SetEnvPrefix(strings.ToUpper(config.AppName))
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	// Read config file
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if url, _ := cmd.Flags().GetString("catalog-url"); url != "" {
		a.v.Set("catalog_url", url)
	}

	settings, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.settings = settings

	if err := a.setupLogging(cmd); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	return nil
}

func (a *app) setupLogging(cmd *cobra.Command) error {
	level, err := common.ParseLevel(a.settings.Logging.Level)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.ErrOrStderr()
	switch {
	case a.settings.Logging.File != "":
		f, err := os.OpenFile(a.settings.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		w = f
	case cmd.Annotations[quietLogsAnnotation] == "true":
		w = io.Discard
	}

	return common.SetupLogger(level, a.settings.Logging.Format, w)
}

func (a *app) closeLog(_ *cobra.Command, _ []string) error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "prodchart %s\n", version)
		},
	}
}
