// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command: configuration, logging and i18n are
// initialised before any subcommand runs.

package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/formkit/buildvars"
	"github.com/toeirei/formkit/internal/config"
	"github.com/toeirei/formkit/internal/i18n"
	"github.com/toeirei/formkit/internal/logging"
	"github.com/toeirei/formkit/ui/tui"
	"github.com/toeirei/formkit/ui/tui/models/views/demo"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var appConfig config.Config
var logFile io.Closer

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := setupLogging(appConfig.Log); err != nil {
		return err
	}
	i18n.Init(appConfig.Language)
	logging.Debugf("language %s, config %+v", appConfig.Language, appConfig)
	return nil
}

// setupLogging sends log output to the configured file. Without a file the
// logger stays silent because the TUI owns the terminal.
func setupLogging(c config.LogConfig) error {
	if err := logging.SetLevel(c.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	if c.File == "" {
		return nil
	}
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	closeLog()
	logFile = f
	logging.SetOutput(f)
	return nil
}

func closeLog() {
	if logFile != nil {
		logging.SetOutput(io.Discard)
		_ = logFile.Close()
		logFile = nil
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// only an explicitly set --config counts
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// Execute runs the CLI entrypoint. The cmd/formkit-demo main package calls
// this function and handles process exit.
func Execute() error {
	defer closeLog()
	return NewRootCmd().Execute()
}

// NewRootCmd creates the root command with all subcommands. Tests create
// fresh instances to stay isolated.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formkit-demo",
		Short: "Showcase of the formkit Bubble Tea form inputs.",
		Long: `formkit-demo shows the formkit inputs (text, number, masked text,
masked number and multi-select) in a registration form. Each input can also
be tried on its own or picked from the gallery menu, and the format command
applies a mask without a TUI.

Running without a subcommand launches the showcase form.`,
		PersistentPreRunE: setupDefaultServices,
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTerminal(); err != nil {
				return err
			}
			return tui.Run(i18n.T("demo.title"), demo.NewShowcase(appConfig))
		},
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().String("log.file", "", "write logs to this file")
	cmd.PersistentFlags().String("log.level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newGalleryCmd(),
		newTextCmd(),
		newNumberCmd(),
		newMaskedCmd("masked-text"),
		newMaskedCmd("masked-number"),
		newMultiSelectCmd(),
		newFormatCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion(v, c, d string) string {
	if c != "" && c != "dev" {
		v += " (" + c + ")"
	}
	if d != "" {
		v += " built: " + d
	}
	return v
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// some build paths only record the module as a dependency
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/formkit" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
