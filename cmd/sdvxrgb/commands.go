package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/sdvxrgb/internal/config"
	"github.com/muurk/sdvxrgb/internal/logging"
	"github.com/muurk/sdvxrgb/internal/pipeline"
	"github.com/muurk/sdvxrgb/internal/reload"
	"github.com/muurk/sdvxrgb/internal/strip"
	"github.com/muurk/sdvxrgb/internal/ui"
)

// Output formats
const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
	formatINI   = "ini"
)

// Command flags
var (
	applyStrip string
	applyHex   string
	applyFill  string
	noWatch    bool
)

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(watchCmd)
}

// checkCmd resolves the configuration and prints every strip
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Resolve the configuration and show per-strip parameters",
	Long: `Load the configuration file and show the parameters each strip resolves to.

A missing file is not an error: the hook runs with every strip untouched.
Malformed values are shown with the defaults they fall back to.`,
	Example: `  # Check the file next to the game
  sdvxrgb check

  # Check another file
  sdvxrgb check --config ./sdvxrgb.ini

  # Machine-readable output
  sdvxrgb check --format json`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	snap, err := config.Load(configPath)
	if err != nil {
		if outputFormat == formatTable {
			p := ui.NewPrinter(cmd.OutOrStdout())
			p.PrintHeader("Config Check", "sdvxrgb check", ui.Param{Key: "Config", Value: configPath})
			p.PrintResult(ui.NewFailureResult("Configuration unreadable", err,
				"check the file is readable",
				"check no other program holds it open exclusively",
			))
		}
		return err
	}

	if outputFormat != formatTable {
		return writeEncoded(cmd.OutOrStdout(), config.NewDocument(snap, configPath), outputFormat)
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Config Check", "sdvxrgb check",
		ui.Param{Key: "Config", Value: configPath},
		ui.Param{Key: "Modified", Value: formatModTime(snap.ModTime())},
	)
	p.Println(ui.RenderSnapshot(snap))
	p.Newline()

	if snap.ModTime().IsZero() {
		p.PrintResult(ui.NewWarningResult("No configuration file",
			ui.Param{Key: "Path", Value: configPath},
			ui.Param{Key: "Effect", Value: "all strips pass through unchanged"},
		))
		return nil
	}

	active := snap.ActiveStrips()
	names := make([]string, len(active))
	for i, id := range active {
		names[i] = id.Name()
	}
	logging.LogSnapshot(configPath, names)

	result := ui.NewSuccessResult("Configuration loaded",
		ui.Param{Key: "Active strips", Value: fmt.Sprintf("%d/%d", len(active), strip.Count)},
	)
	if len(names) > 0 {
		result.AddDetail("Transformed", strings.Join(names, ", "))
	}
	p.PrintResult(result)
	return nil
}

// exportCmd writes the resolved configuration
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the resolved configuration as YAML, JSON or INI",
	Long: `Write the fully resolved configuration.

The ini format spells out every strip section in full, so inheritance from
[global] no longer matters. Loading the exported file yields the same
parameters as the original.`,
	Example: `  # Resolved view as YAML (default)
  sdvxrgb export

  # Flatten inheritance into a new file
  sdvxrgb export --format ini > flat.ini`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	snap, err := config.Load(configPath)
	if err != nil {
		return err
	}

	switch outputFormat {
	case formatINI:
		return config.WriteINI(cmd.OutOrStdout(), snap)
	case formatTable, formatYAML:
		return writeEncoded(cmd.OutOrStdout(), config.NewDocument(snap, configPath), formatYAML)
	default:
		return writeEncoded(cmd.OutOrStdout(), config.NewDocument(snap, configPath), outputFormat)
	}
}

// applyCmd runs one strip buffer through the configuration
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Transform one strip's LED data with the configuration",
	Long: `Run LED data for a single strip through the same pipeline the hook uses.

Provide either the full strip buffer with --hex, or a single RRGGBB colour
with --fill to light every LED of the strip with it.`,
	Example: `  # Light the whole title strip white
  sdvxrgb apply --strip title --fill FFFFFF

  # Transform an explicit woofer buffer (14 LEDs)
  sdvxrgb apply --strip woofer --hex "$(printf 'ff0000%.0s' $(seq 14))"`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&applyStrip, "strip", "s", "", "Strip section name (required)")
	applyCmd.Flags().StringVar(&applyHex, "hex", "", "Full strip buffer as hex")
	applyCmd.Flags().StringVar(&applyFill, "fill", "", "Colour (RRGGBB) for every LED")
	_ = applyCmd.MarkFlagRequired("strip")
	applyCmd.MarkFlagsMutuallyExclusive("hex", "fill")
	applyCmd.MarkFlagsOneRequired("hex", "fill")
}

// applyOutput is the machine-readable result of apply
type applyOutput struct {
	Strip  string `yaml:"strip" json:"strip"`
	Active bool   `yaml:"active" json:"active"`
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`
}

func runApply(cmd *cobra.Command, args []string) error {
	id, ok := strip.ByName(applyStrip)
	if !ok {
		return fmt.Errorf("unknown strip %q", applyStrip)
	}

	input, err := stripInput(id, applyHex, applyFill)
	if err != nil {
		return err
	}

	snap, err := config.Load(configPath)
	if err != nil {
		return err
	}

	output := append([]byte(nil), input...)
	if err := pipeline.NewProcessor(pipeline.NewFixed(snap)).Process(uint32(id), output); err != nil {
		return err
	}

	if outputFormat != formatTable {
		return writeEncoded(cmd.OutOrStdout(), applyOutput{
			Strip:  id.Name(),
			Active: snap.Strip(id).Active(),
			Input:  hex.EncodeToString(input),
			Output: hex.EncodeToString(output),
		}, outputFormat)
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Apply", "sdvxrgb apply",
		ui.Param{Key: "Config", Value: configPath},
		ui.Param{Key: "Strip", Value: fmt.Sprintf("%s (%d LEDs)", id.Name(), id.LEDs())},
	)
	cells := p.Width() - 10
	p.Println(ui.IdentityValueStyle.Render("in   ") + ui.RenderLEDs(input, cells))
	p.Println(ui.IdentityValueStyle.Render("out  ") + ui.RenderLEDs(output, cells))
	p.Newline()
	p.Println(hex.EncodeToString(output))
	return nil
}

// stripInput builds the input buffer for id from either a full hex buffer
// or a single fill colour.
func stripInput(id strip.ID, hexData, fill string) ([]byte, error) {
	if fill != "" {
		c, ok := config.ParseHexColor(fill)
		if !ok {
			return nil, fmt.Errorf("invalid colour %q: want RRGGBB", fill)
		}
		buf := make([]byte, id.ByteLen())
		for i := 0; i < len(buf); i += strip.BytesPerLED {
			buf[i], buf[i+1], buf[i+2] = c.R, c.G, c.B
		}
		return buf, nil
	}

	buf, err := hex.DecodeString(strings.Join(strings.Fields(hexData), ""))
	if err != nil {
		return nil, fmt.Errorf("invalid hex data: %w", err)
	}
	if len(buf) != id.ByteLen() {
		return nil, fmt.Errorf("%w: %s wants %d bytes, got %d", pipeline.ErrBufferLength, id, id.ByteLen(), len(buf))
	}
	return buf, nil
}

// watchCmd runs the live preview
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live preview that follows configuration changes",
	Long: `Render a test pattern through the configuration and redraw whenever the
file changes.

The file is reloaded with the same rules the hook uses: a deleted file
resets every strip, and a file that fails to load keeps the previous
configuration.`,
	Example: `  # Preview the file next to the game
  sdvxrgb watch

  # Poll instead of using filesystem notifications
  sdvxrgb watch --poll`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&noWatch, "poll", false, "Poll the file instead of watching it")
}

func runWatch(cmd *cobra.Command, args []string) error {
	sched := reload.NewScheduler(reload.Config{Path: configPath})

	var watcher *reload.Watcher
	if !noWatch {
		w, err := reload.NewWatcher(configPath)
		if err != nil {
			logging.Warn("File watching unavailable, polling instead", zap.Error(err))
		} else {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			w.Start(ctx)
			defer w.Stop()
			watcher = w
		}
	}

	if _, err := tea.NewProgram(ui.NewWatchModel(sched, watcher), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}

// documentEncoder is implemented by values that render themselves, such as
// config.Document.
type documentEncoder interface {
	YAML() ([]byte, error)
	JSON() ([]byte, error)
}

// writeEncoded writes v as YAML or JSON.
func writeEncoded(w io.Writer, v any, format string) error {
	var (
		data []byte
		err  error
	)
	doc, isDoc := v.(documentEncoder)
	switch {
	case format == formatYAML && isDoc:
		data, err = doc.YAML()
	case format == formatYAML:
		data, err = yaml.Marshal(v)
	case format == formatJSON && isDoc:
		data, err = doc.JSON()
	case format == formatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	if format == formatJSON {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

func formatModTime(t time.Time) string {
	if t.IsZero() {
		return "never (file missing)"
	}
	return t.Format(time.DateTime)
}
