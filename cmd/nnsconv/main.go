package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RyanBlaney/nashville/chart"
	"github.com/RyanBlaney/nashville/cmd/nnsconv/ui"
	"github.com/RyanBlaney/nashville/logging"
	"github.com/RyanBlaney/nashville/theory"
	"github.com/RyanBlaney/nashville/transpose"
	"github.com/RyanBlaney/nashville/transpose/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *logging.ZapLogger
)

var rootCmd = &cobra.Command{
	Use:   "nnsconv",
	Short: "Transpose Nashville Number System chord charts",
	Long: `nnsconv turns chord charts written in Nashville numbers (1 4 5/7 6m b7)
into chord names for a chosen key.

Charts may start with an "Original Key: X" line, which selects the initial key
when --key is not given.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.NewZapProductionLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !verbose {
			logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
		}
		logging.SetGlobalLogger(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(viewCmd)
}

// readChart reads the chart at path, or stdin for "" and "-".
func readChart(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read chart: %w", err)
	}
	return string(data), nil
}

// newConverter builds a converter for format, which overrides cfg.Format when set.
func newConverter(format config.Format) (*transpose.Converter, error) {
	c := *cfg
	if format != "" {
		c.Format = config.Format(strings.ToLower(string(format)))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var opts []transpose.Option
	if c.Format == config.FormatANSI {
		opts = append(opts, transpose.WithRenderer(ui.ANSIRenderer(ui.DefaultStyles())))
	}
	opts = append(opts, transpose.WithLogger(logger.WithFields(logging.Fields{"component": "nns_converter"})))
	return transpose.NewConverterFromConfig(&c, opts...), nil
}

// chooseKey prefers an explicit key, then the chart header, then the configured default.
func chooseKey(explicit, text string) string {
	if explicit != "" {
		return explicit
	}
	return chart.InitialKey(text, theory.SupportedKeys(), cfg.DefaultKey)
}
