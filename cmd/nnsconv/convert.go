package main

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/nashville/theory"
	"github.com/RyanBlaney/nashville/transpose/config"
	"github.com/spf13/cobra"
)

var (
	convertKey    string
	convertFormat string
	convertStrict bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a chart to chord names in a key",
	Long: `Reads a Nashville number chart from file (or stdin) and writes it with every
number chord replaced by its chord name. Text that is not a chord is copied
unchanged. An unsupported key leaves the chart untouched unless --strict is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		text, err := readChart(cmd, path)
		if err != nil {
			return err
		}

		conv, err := newConverter(config.Format(convertFormat))
		if err != nil {
			return err
		}

		key := chooseKey(convertKey, text)
		report, err := conv.ConvertReport(text, key)
		if err != nil && convertStrict {
			if errors.Is(err, theory.ErrUnsupportedKey) {
				return fmt.Errorf("%w (supported: %v)", err, theory.SupportedKeys())
			}
			return err
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), report.Text)
		return err
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertKey, "key", "k", "", "Target key (default: chart header, then config default_key)")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "Output format: html, plain, bracket, ansi (default from config)")
	convertCmd.Flags().BoolVar(&convertStrict, "strict", false, "Fail instead of echoing the chart when the key is unsupported")
}
