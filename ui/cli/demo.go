// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/formkit/internal/config"
	"github.com/toeirei/formkit/internal/i18n"
	"github.com/toeirei/formkit/ui/tui"
	"github.com/toeirei/formkit/ui/tui/models/views/demo"
	"github.com/toeirei/formkit/ui/tui/models/views/gallery"
)

// Single input demos take their options from the config file; the flags
// below override it when set.

func runSingle(kind string) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	model, err := demo.NewSingle(kind, appConfig)
	if err != nil {
		return err
	}
	return tui.Run(kind, model)
}

func newGalleryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gallery",
		Short: "Browse every demo from a menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTerminal(); err != nil {
				return err
			}
			return tui.Run(i18n.T("gallery.title"), gallery.New(appConfig))
		},
	}
}

func newTextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Try the plain text input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("max-length") {
				appConfig.Text.MaxLength, _ = flags.GetInt("max-length")
			}
			if flags.Changed("kind") {
				appConfig.Text.Kind, _ = flags.GetString("kind")
			}
			if flags.Changed("placeholder") {
				appConfig.Text.Placeholder, _ = flags.GetString("placeholder")
			}
			return runSingle("text")
		},
	}
	cmd.Flags().Int("max-length", 0, "maximum number of characters (0 = unlimited)")
	cmd.Flags().String("kind", "text", "text, password or email")
	cmd.Flags().String("placeholder", "", "placeholder shown while empty")
	return cmd
}

func newNumberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "number",
		Short: "Try the number input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyNumberFlags(cmd, &appConfig.Number)
			return runSingle("number")
		},
	}
	cmd.Flags().Int("max-length", 0, "maximum number of digits (0 = unlimited)")
	cmd.Flags().Int("min", 0, "minimum value, applied when the input loses focus")
	cmd.Flags().Int("max", 0, "maximum value")
	return cmd
}

func applyNumberFlags(cmd *cobra.Command, c *config.NumberConfig) {
	flags := cmd.Flags()
	if flags.Changed("max-length") {
		c.MaxLength, _ = flags.GetInt("max-length")
	}
	if flags.Changed("min") {
		v, _ := flags.GetInt("min")
		c.Min = &v
	}
	if flags.Changed("max") {
		v, _ := flags.GetInt("max")
		c.Max = &v
	}
}

func newMaskedCmd(kind string) *cobra.Command {
	what := "text"
	if kind == "masked-number" {
		what = "number"
	}
	cmd := &cobra.Command{
		Use:   kind,
		Short: fmt.Sprintf("Try the masked %s input", what),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &appConfig.Mask
			if kind == "masked-number" {
				c = &appConfig.NumberMask
			}
			applyMaskFlags(cmd, c)
			return runSingle(kind)
		},
	}
	cmd.Flags().String("pattern", "", `mask pattern, e.g. "(###) ###-####"`)
	cmd.Flags().String("input-char", "#", "pattern character that marks an input slot")
	cmd.Flags().Bool("show-pattern", true, "render the unfilled part of the pattern")
	return cmd
}

func applyMaskFlags(cmd *cobra.Command, c *config.MaskConfig) {
	flags := cmd.Flags()
	if flags.Changed("pattern") {
		c.Pattern, _ = flags.GetString("pattern")
	}
	if flags.Changed("input-char") {
		c.InputChar, _ = flags.GetString("input-char")
	}
	if flags.Changed("show-pattern") {
		c.ShowPattern, _ = flags.GetBool("show-pattern")
	}
}

func newMultiSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multiselect",
		Short: "Try the multi-select input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyMultiSelectFlags(cmd, &appConfig.MultiSelect); err != nil {
				return err
			}
			return runSingle("multiselect")
		},
	}
	cmd.Flags().Int("height", 5, "number of visible rows")
	cmd.Flags().StringArray("item", nil, `item as "value=text"; prefix with "!" to disable it (repeatable)`)
	return cmd
}

func applyMultiSelectFlags(cmd *cobra.Command, c *config.MultiSelectConfig) error {
	flags := cmd.Flags()
	if flags.Changed("height") {
		c.Height, _ = flags.GetInt("height")
	}
	if !flags.Changed("item") {
		return nil
	}
	specs, _ := flags.GetStringArray("item")
	items := make([]config.Item, 0, len(specs))
	for _, spec := range specs {
		item, err := parseItem(spec)
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	c.Items = items
	return nil
}

func parseItem(spec string) (config.Item, error) {
	item := config.Item{Enabled: true}
	if rest, ok := strings.CutPrefix(spec, "!"); ok {
		item.Enabled = false
		spec = rest
	}
	value, text, found := strings.Cut(spec, "=")
	if !found {
		text = value
	}
	if value == "" {
		return item, fmt.Errorf("invalid item %q: empty value", spec)
	}
	item.Value, item.Text = value, text
	return item, nil
}
