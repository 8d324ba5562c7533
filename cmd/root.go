package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/khanhnv2901/crowdrisk/internal/shared/constants"
)

var cfgFile string

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "crowdrisk",
		Short: "Cryptographic and crowd risk assessment for cryptocurrency systems",
		Long: `crowdrisk checks algorithm choices against OWASP 2025 cryptography guidance,
scores wallet, protocol and market risk, and keeps a local store of
crowd-reported risk entries.

Running crowdrisk without a command runs every analysis against the
built-in sample assessment.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initAppContext,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return getAppContext(cmd).close()
		},
		RunE: runAllAnalyses,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.crowdrisk.yaml)")
	root.PersistentFlags().String("database", constants.DefaultDatabasePath, "path to the SQLite entry store")
	root.PersistentFlags().String("format", constants.DefaultOutputFormat, "output format: text or json")
	root.PersistentFlags().String("log-level", defaultLogLevel, "log level: debug, info, warn, error")
	addFileFlag(root)

	root.AddCommand(newOwaspCmd())
	root.AddCommand(newCryptoCmd())
	root.AddCommand(newMarketCmd())
	root.AddCommand(newAllCmd())
	root.AddCommand(newEntryCmd())
	root.AddCommand(newEntryAddCmd())
	root.AddCommand(newEntryListCmd())
	root.AddCommand(newEntryStatsCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func initAppContext(cmd *cobra.Command, args []string) error {
	initViper(cfgFile)

	cliConfig = newCLIConfig()
	applyConfigDefaults(cmd)

	if _, err := parseOutputFormat(cliConfig.OutputFormat); err != nil {
		return err
	}

	logger, err := newLogger(cliConfig.LogLevel)
	if err != nil {
		return err
	}

	storeAppContext(cmd, &AppContext{
		Logger: logger,
		Config: cliConfig,
	})

	logger.Infof("command=%s database=%s format=%s", cmd.Name(), cliConfig.DatabasePath, cliConfig.OutputFormat)
	return nil
}

// newLogger builds the production JSON logger at the requested level.
func newLogger(level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return l.Sugar(), nil
}

// Execute runs the root command. The entry store is closed even when a
// command fails before its post-run hook.
func Execute() {
	err := rootCmd.Execute()
	_ = globalAppContext.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
