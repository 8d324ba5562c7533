package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/khanhnv2901/crowdrisk/internal/shared/constants"
)

const (
	envPrefix       = "CROWDRISK"
	configName      = ".crowdrisk"
	defaultLogLevel = "info"
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	DatabasePath string
	OutputFormat string
	LogLevel     string
	Defaults     DefaultValues
}

// DefaultValues are reporter-level defaults for new entries, typically
// derived from env/config.
type DefaultValues struct {
	Reporter string
}

type defaultOverrides struct {
	DatabasePath string
	OutputFormat string
	LogLevel     string
	Reporter     string
	Sentiment    string
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		DatabasePath: constants.DefaultDatabasePath,
		OutputFormat: constants.DefaultOutputFormat,
		LogLevel:     defaultLogLevel,
		Defaults: DefaultValues{
			Reporter: detectReporterFromEnv(),
		},
	}
}

func detectReporterFromEnv() string {
	if env := os.Getenv("USER"); env != "" {
		return env
	}
	if env := os.Getenv("LOGNAME"); env != "" {
		return env
	}
	return ""
}

// initViper points viper at the config file and environment. Errors reading
// the file are ignored so a missing config is not fatal.
func initViper(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func loadDefaultOverrides() defaultOverrides {
	overrides := defaultOverrides{}

	if viper.IsSet("database") {
		overrides.DatabasePath = viper.GetString("database")
	}
	if viper.IsSet("output_format") {
		overrides.OutputFormat = viper.GetString("output_format")
	}
	if viper.IsSet("log_level") {
		overrides.LogLevel = viper.GetString("log_level")
	}
	if viper.IsSet("defaults.reporter") {
		overrides.Reporter = viper.GetString("defaults.reporter")
	}
	if viper.IsSet("defaults.sentiment") {
		overrides.Sentiment = viper.GetString("defaults.sentiment")
	}

	return overrides
}

// applyConfigDefaults merges config file defaults into the runtime config when the user
// did not explicitly override the corresponding flag.
func applyConfigDefaults(cmd *cobra.Command) {
	overrides := loadDefaultOverrides()
	flags := cmd.Flags()

	applyStringDefault(flags, "database", overrides.DatabasePath, func(v string) {
		cliConfig.DatabasePath = v
	})
	applyStringDefault(flags, "format", overrides.OutputFormat, func(v string) {
		cliConfig.OutputFormat = v
	})
	applyStringDefault(flags, "log-level", overrides.LogLevel, func(v string) {
		cliConfig.LogLevel = v
	})

	if overrides.Reporter != "" {
		cliConfig.Defaults.Reporter = overrides.Reporter
	}
	// The sentiment default lands on the entry add flag itself.
	if overrides.Sentiment != "" {
		setStringFlagIfUnset(flags, "sentiment", overrides.Sentiment)
	}

	// Explicit flags win over everything.
	readStringFlag(flags, "database", &cliConfig.DatabasePath)
	readStringFlag(flags, "format", &cliConfig.OutputFormat)
	readStringFlag(flags, "log-level", &cliConfig.LogLevel)
}

func applyStringDefault(flags *pflag.FlagSet, name, value string, setter func(string)) {
	if flags == nil || setter == nil || value == "" {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func setStringFlagIfUnset(flags *pflag.FlagSet, name, value string) {
	if flags == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag == nil || flag.Changed {
		return
	}
	_ = flag.Value.Set(value)
}

func readStringFlag(flags *pflag.FlagSet, name string, dst *string) {
	if flags == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag == nil || !flag.Changed {
		return
	}
	*dst = flag.Value.String()
}
