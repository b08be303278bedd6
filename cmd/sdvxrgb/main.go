// Sdvxrgb inspects and previews LED strip configurations for the SDVX tape
// LED hook.
//
// The hook reads sdvxrgb.ini next to the game executable and applies channel
// reordering, gamma, hue, saturation, brightness and static colours to each
// of the cabinet's ten LED strips. This tool resolves the same file the same
// way, so a configuration can be checked, exported and previewed without
// starting the game.
//
// Usage:
//
//	sdvxrgb [command] [flags]
//
// See 'sdvxrgb --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/sdvxrgb/internal/config"
	"github.com/muurk/sdvxrgb/internal/logging"
	"github.com/muurk/sdvxrgb/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath   string
	logLevel     string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "sdvxrgb",
	Short: "SDVX tape LED configuration tool",
	Long: `Inspect, export and preview sdvxrgb.ini LED strip configurations.

The configuration is resolved exactly as the hook resolves it: a [global]
section provides defaults, each strip section overrides any subset of keys,
and malformed values fall back silently.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(),
		"Configuration file (env "+config.PathEnvVar+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn, error (env "+logging.LogLevelEnvVar+", default silent)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatTable,
		"Output format (table, yaml, json)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch outputFormat {
		case formatYAML, formatJSON:
			return writeEncoded(cmd.OutOrStdout(), version.Get(), outputFormat)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "sdvxrgb %s\n", version.Full())
			return nil
		}
	},
}
