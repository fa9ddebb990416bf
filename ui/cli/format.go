// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/formkit/internal/mask"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format VALUE...",
		Short: "Apply a mask pattern to values",
		Long: `Formats every VALUE against the pattern, one result per line. Values may
be raw or already formatted; runes the pattern cannot take are dropped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := appConfig.Mask
			applyMaskFlags(cmd, &c)
			if c.Pattern == "" {
				return errors.New("no pattern given")
			}
			digits, _ := cmd.Flags().GetBool("digits")
			complete, _ := cmd.Flags().GetBool("complete")

			class := mask.AnyRune
			if digits {
				class = mask.Digits
			}
			editor := mask.NewEditor(c.Pattern, c.Rune(), class)

			var incomplete int
			for _, value := range args {
				state := editor.Set(value)
				if complete && !editor.Pattern.Complete(state.Raw) {
					incomplete++
				}
				fmt.Fprintln(cmd.OutOrStdout(), editor.Formatted(state))
			}
			if incomplete > 0 {
				return fmt.Errorf("%d of %d values do not fill the pattern", incomplete, len(args))
			}
			return nil
		},
	}
	cmd.Flags().String("pattern", "", "mask pattern (defaults to mask.pattern from the config)")
	cmd.Flags().String("input-char", "#", "pattern character that marks an input slot")
	cmd.Flags().Bool("digits", false, "only accept digits in input slots")
	cmd.Flags().Bool("complete", false, "fail unless every value fills the pattern")
	return cmd
}
