package main

import (
	"github.com/RyanBlaney/nashville/chart"
	"github.com/RyanBlaney/nashville/cmd/nnsconv/ui"
	"github.com/RyanBlaney/nashville/logging"
	"github.com/RyanBlaney/nashville/transpose/config"
	"github.com/spf13/cobra"
)

var (
	viewKey   string
	viewWatch bool
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse a chart in any key with an interactive key picker",
	Long: `Opens the chart in a terminal viewer. Left/right (or h/l) step through the
picker keys, the first letter of a key jumps to it, q quits. With --watch the
chart is reloaded whenever the file changes on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readChart(cmd, args[0])
		if err != nil {
			return err
		}

		conv, err := newConverter(config.FormatANSI)
		if err != nil {
			return err
		}

		session := chart.NewSession(text, conv, cfg.DisplayKeys, cfg.DefaultKey)
		if viewKey != "" {
			if _, err := session.Select(viewKey); err != nil {
				return err
			}
		}

		// The viewer owns the terminal; keep the logger off stdout.
		logger.SetLevel(logging.ErrorLevel)

		return ui.Run(ui.Options{
			Path:    args[0],
			Session: session,
			Watch:   viewWatch,
			Logger:  logger.WithFields(logging.Fields{"component": "viewer"}),
		})
	},
}

func init() {
	viewCmd.Flags().StringVarP(&viewKey, "key", "k", "", "Initial key (default: chart header, then config default_key)")
	viewCmd.Flags().BoolVarP(&viewWatch, "watch", "w", false, "Reload the chart when the file changes")
}
