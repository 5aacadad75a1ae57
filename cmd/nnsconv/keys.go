package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/RyanBlaney/nashville/theory"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List supported target keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, key := range theory.SupportedKeys() {
			var tags []string
			if key == cfg.DefaultKey {
				tags = append(tags, "default")
			}
			if slices.Contains(cfg.DisplayKeys, key) {
				tags = append(tags, "picker")
			}
			if theory.UseFlatsForKey(key) {
				tags = append(tags, "flats")
			} else {
				tags = append(tags, "sharps")
			}

			scale, err := theory.LookupScale(key)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "%-3s %-40s %s\n", key, strings.Join(scale[:], " "), strings.Join(tags, ",")); err != nil {
				return err
			}
		}
		return nil
	},
}
