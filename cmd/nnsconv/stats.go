package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/RyanBlaney/nashville/analysis"
	"github.com/RyanBlaney/nashville/logging"
	"github.com/RyanBlaney/nashville/notation"
	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Summarize the harmony of a chart",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		text, err := readChart(cmd, path)
		if err != nil {
			return err
		}

		scanner := notation.NewScanner(notation.ScannerConfig{ExtraLabels: cfg.SectionLabels})
		profile := analysis.NewAnalyzer(scanner, logger.WithFields(logging.Fields{"component": "chart_analyzer"})).Analyze(text)

		out := cmd.OutOrStdout()
		if statsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(profile)
		}

		var b bytes.Buffer
		fmt.Fprintf(&b, "tokens:     %d (%d resolved)\n", profile.Tokens, profile.Resolved)
		fmt.Fprintf(&b, "chromatic:  %d (%.0f%%)\n", profile.Chromatic, profile.ChromaticRatio()*100)
		fmt.Fprintf(&b, "slash:      %d\n", profile.Slash)
		fmt.Fprintf(&b, "degrees:    %v\n", profile.DegreeCounts)
		fmt.Fprintf(&b, "major fit:  %.3f\n", profile.MajorCorrelation)
		fmt.Fprintf(&b, "minor fit:  %.3f\n", profile.MinorCorrelation)
		fmt.Fprintf(&b, "entropy:    %.3f\n", profile.Entropy)
		fmt.Fprintf(&b, "mode:       %s\n", profile.Mode)
		for i, c := range profile.Centers {
			label := "            "
			if i == 0 {
				label = "centers:    "
			}
			fmt.Fprintf(&b, "%s%-3s %.3f\n", label, c.Label, c.Correlation)
		}
		fmt.Fprintf(&b, "clarity:    %.3f\n", profile.Clarity)

		// Writes to a bytes.Buffer cannot fail; only the final copy can.
		if _, err := b.WriteTo(out); err != nil {
			return fmt.Errorf("failed to write stats: %w", err)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print the profile as JSON")
}
