// Package root contains the root command for the application
package root

import (
	"errors"
	"fmt"

	"fjacquet/financeos/internal/config"
	"fjacquet/financeos/internal/container"
	"fjacquet/financeos/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	Backend    string
	DataDir    string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// SharedFlags holds the persistent flag values
	SharedFlags = CommonFlags{}

	appContainer  *container.Container
	ownsContainer bool

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "financeos",
		Short: "A personal finance ledger for portfolios, debts and payment reminders.",
		Long: `financeos keeps income and expense transactions in named portfolios,
tracks installment debts with their amortization plan, and reminds you of
upcoming payments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if appContainer != nil {
				return nil
			}
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}
			c, err := container.NewContainer(cfg)
			if err != nil {
				return err
			}
			Log = c.GetLogger()
			appContainer = c
			ownsContainer = true
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appContainer == nil || !ownsContainer {
				return nil
			}
			err := appContainer.Close()
			appContainer = nil
			ownsContainer = false
			return err
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.ConfigFile, "config", "c", "", "Config file (default: search ./config.yaml, .financeos/, $HOME/.financeos/)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Backend, "backend", "", "Storage backend (file, sqlite, memory)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.DataDir, "data-dir", "", "Directory of the file storage backend")
}

// LoadConfig reads the configuration and applies the persistent flags that
// were set on the command line.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	if _, err := config.LoadEnv(); err != nil {
		Log.WithError(err).Warn("Failed to load .env file")
	}
	cfg, err := config.InitializeConfigFrom(SharedFlags.ConfigFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = SharedFlags.LogFormat
	}
	if flags.Changed("backend") {
		cfg.Storage.Backend = SharedFlags.Backend
	}
	if flags.Changed("data-dir") {
		cfg.Storage.Directory = SharedFlags.DataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// GetContainer returns the container built for the running command.
func GetContainer() (*container.Container, error) {
	if appContainer == nil {
		return nil, errors.New("application is not initialized")
	}
	return appContainer, nil
}

// SetContainer installs c as the application container. The caller keeps
// ownership: c is not closed when the command finishes.
func SetContainer(c *container.Container) {
	appContainer = c
	ownsContainer = false
	if c != nil {
		Log = c.GetLogger()
	}
}

// Currency returns the configured ledger currency.
func Currency(c *container.Container) string {
	return c.GetConfig().Ledger.Currency
}
