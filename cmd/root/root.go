// Package root contains the root command for the application
package root

import (
	"dmadriz/bac-csv/internal/common"
	"dmadriz/bac-csv/internal/config"
	"dmadriz/bac-csv/internal/encoding"
	"dmadriz/bac-csv/internal/logging"
	"dmadriz/bac-csv/internal/statement"
	"dmadriz/bac-csv/internal/store"
	"dmadriz/bac-csv/internal/transfers"
	"dmadriz/bac-csv/internal/transformer"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig holds the resolved application configuration
	AppConfig *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bac-csv",
		Short: "A CLI tool to convert BAC statement exports to the Monarch Money import format.",
		Long: `bac-csv converts BAC (Costa Rica) bank statement CSV exports into the
eight-column CSV format Monarch Money imports. Transfer references (TEF and
SINPE) found in transaction descriptions are rewritten using persisted
friendly-name mappings.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bac-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize configuration and logging
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Warnf("Failed to load configuration, using defaults: %v", err)
			} else {
				AppConfig = cfg
				Log = config.ConfigureLoggingFromConfig(cfg)
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}

			// Set the configured logger for all pipeline packages
			encoding.SetLogger(Log)
			statement.SetLogger(Log)
			transfers.SetLogger(Log)
			transformer.SetLogger(Log)
			common.SetLogger(Log)
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// StorePath is the mapping database location; empty means the configured default
	StorePath string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVar(&StorePath, "db", "", "Account mapping database path")
}

// GetLogrusAdapter returns the shared logger wrapped in the logging.Logger interface
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// ResolveStorePath returns the mapping database path from the --db flag or
// the configured default.
func ResolveStorePath() string {
	if StorePath != "" {
		return StorePath
	}
	if AppConfig != nil && AppConfig.Store.Path != "" {
		return AppConfig.Store.Path
	}
	return "bac_accounts.db"
}

// OpenStore opens the account mapping store at the resolved path. Opening
// happens once per command invocation; callers own closing the handle.
func OpenStore() (*store.Store, error) {
	return store.Open(ResolveStorePath())
}

// AccountLabel returns the configured Account column value for output rows.
func AccountLabel() string {
	if AppConfig != nil && AppConfig.Convert.AccountLabel != "" {
		return AppConfig.Convert.AccountLabel
	}
	return ""
}
