// Package main provides the CLI entry point for webpread.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/webpread/pkg/adapters/logger"
	"github.com/user/webpread/pkg/adapters/nullsink"
	"github.com/user/webpread/pkg/adapters/osfilesystem"
	"github.com/user/webpread/pkg/adapters/pngsink"
	"github.com/user/webpread/pkg/adapters/webpinput"
	"github.com/user/webpread/pkg/config"
	"github.com/user/webpread/pkg/extract"
	"github.com/user/webpread/pkg/ports"
	"github.com/user/webpread/pkg/report"
	"github.com/user/webpread/pkg/riff"
	"github.com/user/webpread/pkg/sheet"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Info    InfoCmd    `cmd:"" help:"Inspect a WebP file and print its structure."`
	Extract ExtractCmd `cmd:"" help:"Extract frames as PNG files."`
	Sheet   SheetCmd   `cmd:"" help:"Render all frames into a contact sheet PNG."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// InfoCmd defines the info subcommand.
type InfoCmd struct {
	Path string `arg:"" help:"WebP file to inspect."`

	JSON   bool   `short:"j" help:"Print the report as JSON."`
	Output string `short:"o" help:"Write the report to a file instead of stdout."`
}

// ExtractCmd defines the extract subcommand.
type ExtractCmd struct {
	Path string `arg:"" help:"WebP file to extract frames from."`

	// Config file; flags below override its values
	Config string  `short:"C" help:"YAML config file with extraction defaults."`
	Output *string `short:"o" help:"Output directory for PNG frames (default: ./frames)."`

	// Frame selection (override config)
	Start *int `help:"First frame to extract (0-based)."`
	End   *int `help:"Last frame to extract (-1 = last)."`
	Step  *int `help:"Stride between extracted frames."`

	// Color correction (override config)
	NoPremultiply bool     `help:"Keep unassociated alpha (skip the premultiply pass)."`
	Gamma         *float64 `help:"Gamma used to linearize before premultiplying (default: 2.2)."`

	// Miscellaneous
	DryRun bool `help:"Decode frames but write nothing."`

	// Logging options
	LogLevel *string `short:"l" help:"Log level (debug, info, warn, error, quiet)."`
	Quiet    bool    `short:"Q" help:"Suppress all log output."`
}

// SheetCmd defines the sheet subcommand.
type SheetCmd struct {
	Path string `arg:"" help:"WebP file to render."`

	// Config file; flags below override its values
	Config string  `short:"C" help:"YAML config file with sheet defaults."`
	Output *string `short:"o" help:"Output directory for the sheet PNG (default: ./frames)."`

	// Layout options (override config)
	Columns     *int    `short:"c" help:"Number of columns."`
	CellWidth   *int    `help:"Thumbnail width in pixels."`
	Gap         *int    `help:"Gap between cells in pixels."`
	Padding     *int    `help:"Outer margin in pixels."`
	BorderWidth *int    `help:"Cell border width in pixels."`
	Background  *string `help:"Background color (hex, e.g., #dcdcdc)."`

	LogLevel *string `short:"l" help:"Log level (debug, info, warn, error, quiet)."`
	Quiet    bool    `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("webpread"),
		kong.Description("Inspect WebP files and extract still or animation frames."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the info command.
func (cmd *InfoCmd) Run() error {
	fs := osfilesystem.New()

	info, err := fs.Stat(cmd.Path)
	if err != nil {
		return fmt.Errorf("stat %q: %w", cmd.Path, err)
	}
	data, err := fs.ReadFile(cmd.Path)
	if err != nil {
		return fmt.Errorf("read %q: %w", cmd.Path, err)
	}

	in, err := webpinput.OpenBytes(data, webpinput.Options{})
	if err != nil {
		return err
	}
	defer in.Close()

	dm, err := riff.Demux(data)
	if err != nil {
		return err
	}

	r := buildReport(cmd.Path, info.Size, in.Spec(), dm)

	var formatter report.Formatter
	if cmd.JSON {
		formatter = report.NewJSONFormatter()
	} else {
		formatter = report.NewTextFormatter()
	}

	if cmd.Output != "" {
		return report.NewWriter(formatter, fs).Write(cmd.Output, r)
	}
	fmt.Print(formatter.Format(r))
	return nil
}

// resolveConfig merges the config file (if any) with flag overrides.
// Flags left unset keep the config file's values.
func (cmd *ExtractCmd) resolveConfig(fs ports.FileSystem) (config.Config, error) {
	cfg, err := loadConfig(fs, cmd.Config)
	if err != nil {
		return cfg, err
	}

	if cmd.Output != nil {
		cfg.OutputDir = *cmd.Output
	}
	if cmd.Start != nil {
		cfg.Frames.Start = *cmd.Start
	}
	if cmd.End != nil {
		cfg.Frames.End = *cmd.End
	}
	if cmd.Step != nil {
		cfg.Frames.Step = *cmd.Step
	}
	if cmd.NoPremultiply {
		cfg.Color.Premultiply = false
	}
	if cmd.Gamma != nil {
		cfg.Color.Gamma = *cmd.Gamma
	}
	if cmd.LogLevel != nil {
		cfg.LogLevel = *cmd.LogLevel
	}
	return cfg, nil
}

// Run executes the extract command.
func (cmd *ExtractCmd) Run() error {
	fs := osfilesystem.New()

	cfg, err := cmd.resolveConfig(fs)
	if err != nil {
		return err
	}

	log := newLogger(cmd.Quiet, cfg.LogLevel)
	ctx, cancel := signalContext(log)
	defer cancel()

	in, err := webpinput.Open(cmd.Path, webpinput.Options{
		FileSystem:            fs,
		Logger:                log,
		Gamma:                 cfg.Color.Gamma,
		KeepUnassociatedAlpha: !cfg.Color.Premultiply,
	})
	if err != nil {
		return err
	}
	defer in.Close()

	var sink ports.FrameSink
	if cmd.DryRun {
		sink = nullsink.New()
	} else {
		if err := fs.MkdirAll(cfg.OutputDir); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		sink = pngsink.New(cfg.OutputDir, fs)
	}

	spec := in.Spec()
	log.Info(l10n.F("Extracting %d frame(s) to %s", spec.FrameCount, cfg.OutputDir))

	result, err := extract.New(sink, log).Run(ctx, in, cfg.ToExtractConfig())
	if err != nil {
		return err
	}

	log.Info(l10n.F("Output saved to %s (%d frames)", cfg.OutputDir, result.Frames))
	return nil
}

// resolveConfig merges the config file (if any) with flag overrides.
func (cmd *SheetCmd) resolveConfig(fs ports.FileSystem) (config.Config, error) {
	cfg, err := loadConfig(fs, cmd.Config)
	if err != nil {
		return cfg, err
	}

	if cmd.Output != nil {
		cfg.OutputDir = *cmd.Output
	}
	if cmd.Columns != nil {
		cfg.Sheet.Columns = *cmd.Columns
	}
	if cmd.CellWidth != nil {
		cfg.Sheet.CellWidth = *cmd.CellWidth
	}
	if cmd.Gap != nil {
		cfg.Sheet.Gap = *cmd.Gap
	}
	if cmd.Padding != nil {
		cfg.Sheet.Padding = *cmd.Padding
	}
	if cmd.BorderWidth != nil {
		cfg.Sheet.BorderWidth = *cmd.BorderWidth
	}
	if cmd.Background != nil {
		cfg.Sheet.BackgroundColor = *cmd.Background
	}
	if cmd.LogLevel != nil {
		cfg.LogLevel = *cmd.LogLevel
	}
	return cfg, nil
}

// Run executes the sheet command.
func (cmd *SheetCmd) Run() error {
	fs := osfilesystem.New()

	cfg, err := cmd.resolveConfig(fs)
	if err != nil {
		return err
	}

	log := newLogger(cmd.Quiet, cfg.LogLevel)

	in, err := webpinput.Open(cmd.Path, webpinput.Options{
		FileSystem: fs,
		Logger:     log,
	})
	if err != nil {
		return err
	}
	defer in.Close()

	frames, err := sheet.Collect(in)
	if err != nil {
		return err
	}

	sheetCfg := cfg.ToSheetConfig()
	log.Info(l10n.F("Rendering contact sheet (%d columns)", sheetCfg.Columns))
	img, err := sheet.Render(frames, sheetCfg)
	if err != nil {
		return err
	}

	if err := fs.MkdirAll(cfg.OutputDir); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	sink := pngsink.New(cfg.OutputDir, fs)
	if err := sink.SaveSheet(img); err != nil {
		return err
	}

	log.Info(l10n.F("Contact sheet saved to %s", cfg.OutputDir))
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("webpread version %s", version))
	return nil
}

// loadConfig returns the defaults, overlaid with the config file when a
// path is given.
func loadConfig(fs ports.FileSystem, path string) (config.Config, error) {
	if path == "" {
		return config.Defaults(), nil
	}
	ok, err := fs.Exists(path)
	if err != nil {
		return config.Defaults(), err
	}
	if !ok {
		return config.Defaults(), fmt.Errorf("config file %q not found", path)
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newLogger(quiet bool, level string) ports.Logger {
	if quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(level))
}

func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	return ctx, cancel
}
