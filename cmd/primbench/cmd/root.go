package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/primarray/foundation/core/config"
	"github.com/msto63/primarray/foundation/core/log"
	"github.com/msto63/primarray/internal/bench"
)

// EnvPrefix prefixes environment overrides, e.g. PRIMBENCH_BENCH_SIZE
const EnvPrefix = "PRIMBENCH"

var (
	cfgFile   string
	logLevel  string
	logFormat string

	appConfig *config.Config
	logger    *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "primbench",
	Short: "primarray - Primitive array benchmarks",
	Long: `primbench measures in-place operations on unboxed primitive arrays
against the same data held as boxed interface values.

Configuration is read from --config, or from bench.toml / bench.yaml in the
working directory or the user configuration directory. Every key can be
overridden by an environment variable such as PRIMBENCH_BENCH_SIZE.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports a failure on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: discovered bench.toml or bench.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json, text, console, logfmt")
}

// setup loads the configuration and builds the logger shared by subcommands
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(firstNonEmpty(logLevel, cfg.GetString("log.level")))
	if err != nil {
		return err
	}
	format, err := log.ParseFormat(firstNonEmpty(logFormat, cfg.GetString("log.format")))
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "primbench",
	})
	logger.Debug("configuration loaded", log.Fields{"source": firstNonEmpty(cfg.FilePath(), "defaults")})
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: EnvPrefix,
			Defaults:  bench.ConfigDefaults(),
		})
	}
	options := config.DefaultDiscoveryOptions("bench")
	options.EnvPrefix = EnvPrefix
	options.Defaults = bench.ConfigDefaults()
	return config.Discover(options)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
