// Command svgscale scales the geometry of an SVG file.
//
//	svgscale [flags] <input_file> <output_file> <scale_factor>
//
// Flags must come before the positional arguments, so that
// negative factors are not read as flags.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/benoitkugler/svgscale/svgraster"
	"github.com/benoitkugler/svgscale/svgscale"
	"github.com/benoitkugler/svgscale/svgtree"
)

const usage = "Usage: svgscale <input_file> <output_file> <scale_factor>"

var errUsage = errors.New("invalid usage")

type config struct {
	verbose        bool
	indent         int
	geometricPaths bool
	lenientText    bool
	preview        string
	previewSize    int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)

	cfg := config{indent: 2, previewSize: svgraster.DefaultMaxSize}
	cmd := &cobra.Command{
		Use:           "svgscale [flags] <input_file> <output_file> <scale_factor>",
		Short:         "Scale the geometry of an SVG document by a uniform factor",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("%w: expected 3 arguments, got %d", errUsage, len(args))
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if cfg.indent < 0 || cfg.previewSize < 0 {
				return fmt.Errorf("%w: negative size", errUsage)
			}
			if cfg.verbose {
				logger = logger.Level(zerolog.DebugLevel)
			}
			return scaleFile(cfg, args[0], args[1], args[2], logger)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %s", errUsage, err)
	})
	// help is answered like any other call without positional arguments
	helped := false
	cmd.SetHelpFunc(func(*cobra.Command, []string) { helped = true })

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "log each scaling pass")
	flags.IntVar(&cfg.indent, "indent", cfg.indent, "number of spaces used to indent the output")
	flags.BoolVar(&cfg.geometricPaths, "geometric-paths", false, "parse path data and keep arc rotations and flags")
	flags.BoolVar(&cfg.lenientText, "lenient-text", false, "skip text elements without font-size instead of failing")
	flags.StringVar(&cfg.preview, "preview", "", "also render the scaled document to this PNG file")
	flags.IntVar(&cfg.previewSize, "preview-size", cfg.previewSize, "maximum side of the preview, in pixels (0 for no limit)")

	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil && helped {
		err = fmt.Errorf("%w: help requested", errUsage)
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		logger.Debug().Err(err).Msg("bad invocation")
		fmt.Fprintln(stdout, usage)
		fmt.Fprintf(stdout, "\nFlags:\n%s", cmd.Flags().FlagUsages())
		return 1
	default:
		logger.Error().Err(err).Msg("svgscale failed")
		return 2
	}
}

// scaleFile runs the whole pipeline in memory, and only then
// writes the output (and the optional preview).
func scaleFile(cfg config, input, output, factorArg string, logger zerolog.Logger) error {
	factor, err := strconv.ParseFloat(factorArg, 64)
	if err != nil {
		return fmt.Errorf("invalid scale factor: %w", err)
	}

	doc, err := svgtree.ReadTree(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	opts := svgscale.Options{
		SkipMissingFontSize: cfg.lenientText,
		Logger:              &logger,
	}
	if cfg.geometricPaths {
		opts.PathMode = svgscale.PathGeometric
	}
	if err := svgscale.NewScaler(opts).Scale(doc, factor); err != nil {
		return fmt.Errorf("scale %s: %w", input, err)
	}

	data, err := svgtree.Marshal(doc, cfg.indent)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	var preview []byte
	if cfg.preview != "" {
		preview, err = renderPreview(data, cfg.previewSize)
		if errors.Is(err, svgraster.ErrEmptyViewport) {
			// zero and negative factors flip or collapse the viewBox
			logger.Warn().Err(err).Str("preview", cfg.preview).Float64("factor", factor).Msg("preview skipped")
		} else if err != nil {
			return err
		}
	}

	if err := svgtree.WriteFile(output, data); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	logger.Info().Str("input", input).Str("output", output).Float64("factor", factor).Msg("scaled")

	if preview != nil {
		if err := svgtree.WriteFile(cfg.preview, preview); err != nil {
			return fmt.Errorf("write preview %s: %w", cfg.preview, err)
		}
		logger.Debug().Str("preview", cfg.preview).Msg("preview written")
	}
	return nil
}

func renderPreview(svg []byte, maxSize int) ([]byte, error) {
	img, err := svgraster.RasterSVGToImage(bytes.NewReader(svg), maxSize)
	if err != nil {
		return nil, fmt.Errorf("render preview: %w", err)
	}
	var b bytes.Buffer
	if err := svgraster.WritePNG(&b, img); err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}
	return b.Bytes(), nil
}
