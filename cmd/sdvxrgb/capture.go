package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/sdvxrgb/internal/capture"
	"github.com/muurk/sdvxrgb/internal/hook"
	"github.com/muurk/sdvxrgb/internal/logging"
	"github.com/muurk/sdvxrgb/internal/reload"
	"github.com/muurk/sdvxrgb/internal/strip"
	"github.com/muurk/sdvxrgb/internal/ui"
)

// Capture command flags
var replayOut string

func init() {
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(compareCmd)
}

// captureSummary is the machine-readable form of dump and replay output
type captureSummary struct {
	File   string                          `yaml:"file" json:"file"`
	Frames int                             `yaml:"frames" json:"frames"`
	Start  string                          `yaml:"start,omitempty" json:"start,omitempty"`
	End    string                          `yaml:"end,omitempty" json:"end,omitempty"`
	Strips [strip.Count]capture.StripStats `yaml:"strips" json:"strips"`
}

// readCapture loads every record of a capture file. A truncated final
// record is dropped with a warning.
func readCapture(path string) ([]capture.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture: %w", err)
	}
	defer f.Close()

	recs, err := capture.ReadAll(f)
	if errors.Is(err, capture.ErrShortFrame) && len(recs) > 0 {
		logging.Warn("Ignoring truncated capture tail", zap.String("path", path), zap.Error(err))
		err = nil
	}
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("capture %s contains no frames", path)
	}
	return recs, nil
}

func summarize(path string, recs []capture.Record) captureSummary {
	var stats capture.Stats
	for i := range recs {
		stats.Add(&recs[i].Frame)
	}
	return captureSummary{
		File:   path,
		Frames: stats.Frames(),
		Start:  recs[0].Time().Format("2006-01-02T15:04:05.000Z07:00"),
		End:    recs[len(recs)-1].Time().Format("2006-01-02T15:04:05.000Z07:00"),
		Strips: stats.Result(),
	}
}

// dumpCmd prints statistics for a capture
var dumpCmd = &cobra.Command{
	Use:   "dump CAPTURE",
	Short: "Show per-strip colour statistics of a capture file",
	Long: `Read a capture of the shared LED region and show, per strip, the average
colour, brightness and saturation together with the dominant hue.`,
	Example: `  sdvxrgb dump session` + capture.FileExtension,
	Args:    cobra.ExactArgs(1),
	RunE:    runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	recs, err := readCapture(args[0])
	if err != nil {
		return err
	}
	summary := summarize(args[0], recs)

	if outputFormat != formatTable {
		return writeEncoded(cmd.OutOrStdout(), summary, outputFormat)
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Capture Statistics", "sdvxrgb dump",
		ui.Param{Key: "File", Value: summary.File},
		ui.Param{Key: "Frames", Value: fmt.Sprintf("%d", summary.Frames)},
		ui.Param{Key: "Span", Value: recs[len(recs)-1].Time().Sub(recs[0].Time()).String()},
	)
	p.Println(ui.RenderStats(summary.Strips))
	return nil
}

// compareCmd compares two captures and suggests configuration keys
var compareCmd = &cobra.Command{
	Use:   "compare REFERENCE CAPTURE",
	Short: "Compare two captures and suggest configuration values",
	Long: `Compare per-strip statistics of two captures.

REFERENCE is how the lights should look, for example a recording made before
a game update. For every strip that differs, the suggested brightness,
saturation and hue_shift values would bring CAPTURE closer to REFERENCE.`,
	Example: `  sdvxrgb compare before` + capture.FileExtension + ` after` + capture.FileExtension,
	Args:    cobra.ExactArgs(2),
	RunE:    runCompare,
}

// comparison is the machine-readable form of compare output
type comparison struct {
	Reference captureSummary      `yaml:"reference" json:"reference"`
	Capture   captureSummary      `yaml:"capture" json:"capture"`
	Suggest   map[string][]string `yaml:"suggest" json:"suggest"`
}

func runCompare(cmd *cobra.Command, args []string) error {
	refRecs, err := readCapture(args[0])
	if err != nil {
		return err
	}
	nextRecs, err := readCapture(args[1])
	if err != nil {
		return err
	}
	ref, next := summarize(args[0], refRecs), summarize(args[1], nextRecs)

	if outputFormat != formatTable {
		out := comparison{Reference: ref, Capture: next, Suggest: map[string][]string{}}
		for i := range ref.Strips {
			if s := capture.Suggest(ref.Strips[i], next.Strips[i]); len(s) > 0 {
				out.Suggest[ref.Strips[i].Name] = s
			}
		}
		return writeEncoded(cmd.OutOrStdout(), out, outputFormat)
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Capture Comparison", "sdvxrgb compare",
		ui.Param{Key: "Reference", Value: fmt.Sprintf("%s (%d frames)", ref.File, ref.Frames)},
		ui.Param{Key: "Capture", Value: fmt.Sprintf("%s (%d frames)", next.File, next.Frames)},
	)
	p.Println(ui.RenderComparison(ref.Strips, next.Strips))
	return nil
}

// replayCmd feeds a capture through the hook
var replayCmd = &cobra.Command{
	Use:   "replay CAPTURE",
	Short: "Run a capture through the configuration as the hook would",
	Long: `Feed every frame of a capture through the hook, strip by strip, exactly as
the game would call it, and show statistics of the transformed output.

The configuration is loaded once up front and then rechecked on the hook's
own schedule, so editing the file during a long replay takes effect the same
way it would in game. Use --out to save the transformed frames.`,
	Example: `  # Preview the effect of the current configuration
  sdvxrgb replay session` + capture.FileExtension + `

  # Save the transformed frames for another tool
  sdvxrgb replay session` + capture.FileExtension + ` --out styled` + capture.FileExtension,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVarP(&replayOut, "out", "o", "", "Write transformed frames to this capture file")
}

func runReplay(cmd *cobra.Command, args []string) error {
	recs, err := readCapture(args[0])
	if err != nil {
		return err
	}

	sched := reload.NewScheduler(reload.Config{Path: configPath})
	if _, err := sched.Check(); err != nil {
		return err
	}

	var region capture.Region
	h := hook.New(sched, hook.ForwarderFunc(func(uint32, []byte) {}), &region)

	before := summarize(args[0], recs)
	out := make([]capture.Record, len(recs))
	for i := range recs {
		for _, id := range strip.All() {
			h.SetTapeLedData(uint32(id), recs[i].Frame.Strip(id))
		}
		out[i] = capture.Record{Timestamp: recs[i].Timestamp, Frame: region.Frame()}
	}
	after := summarize(args[0], out)

	if replayOut != "" {
		if err := writeCapture(replayOut, out); err != nil {
			return err
		}
	}

	if outputFormat != formatTable {
		return writeEncoded(cmd.OutOrStdout(), after, outputFormat)
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	params := []ui.Param{
		{Key: "Config", Value: configPath},
		{Key: "Capture", Value: fmt.Sprintf("%s (%d frames)", args[0], len(recs))},
	}
	if replayOut != "" {
		params = append(params, ui.Param{Key: "Output", Value: replayOut})
	}
	p.PrintHeader("Replay", "sdvxrgb replay", params...)
	p.Println(sectionLabel("Captured"))
	p.Println(ui.RenderStats(before.Strips))
	p.Newline()
	p.Println(sectionLabel("Transformed"))
	p.Println(ui.RenderStats(after.Strips))
	return nil
}

// sectionLabel renders a section label above a table.
func sectionLabel(label string) string {
	return ui.TableHeaderStyle.Render(label)
}

func writeCapture(path string, recs []capture.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create capture: %w", err)
	}
	w := capture.NewWriter(f)
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
