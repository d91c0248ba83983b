// Command fidplot renders one array of a Bruker 1D experiment to an image
// file: the real or imaginary FID, its centred magnitude spectrum, the
// processed spectrum or a simulated compressed-sensing measurement.
//
// Usage:
//
//	fidplot [flags] -root DIR -part PART -o FILE
//
// PART is one of real, imag, spectrum, processed, measured. The image format
// follows the file extension (png, svg, pdf, ...). Flags not given fall back
// to the csfid configuration file and CSFID_* environment variables.
//
// Examples:
//
//	fidplot -root /data/nmr -expno 10 -shift 138 -part real -o fid.png
//	fidplot -root /data/nmr -part spectrum -o spectrum.svg
//	fidplot -root /data/nmr -part measured -ensemble bernoulli -seed 1 -o y.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-nmr/internal/config"
	"github.com/cwbudde/algo-nmr/internal/logging"
	"github.com/cwbudde/algo-nmr/nmr/display"
	"github.com/cwbudde/algo-nmr/nmr/experiment"
	"github.com/cwbudde/algo-nmr/nmr/fid"
)

var parts = []string{"real", "imag", "spectrum", "processed", "measured"}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("fidplot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML configuration file")
	root := fs.String("root", "", "directory containing the numbered experiments")
	expNo := fs.Int("expno", 0, "experiment number")
	procNo := fs.Int("procno", 0, "processing number")
	shift := fs.Int("shift", 0, "raw samples discarded before de-interleaving")
	ensemble := fs.String("ensemble", "", "sensing ensemble for -part measured")
	sparsity := fs.Float64("sparsity", 0, "measurement fraction for -part measured")
	seed := fs.Uint64("seed", 0, "random seed for -part measured")
	part := fs.String("part", "real", "array to plot: "+strings.Join(parts, ", "))
	output := fs.String("o", "fid.png", "output image file")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	width := fs.Float64("width", 10, "image width in inches")
	height := fs.Float64("height", 5, "image height in inches")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(*configPath, func(c *config.Config) {
		if set["root"] {
			c.Experiment.Root = *root
		}
		if set["expno"] {
			c.Experiment.ExpNo = *expNo
		}
		if set["procno"] {
			c.Experiment.ProcNo = *procNo
		}
		if set["shift"] {
			c.Experiment.Shift = *shift
		}
		if set["ensemble"] {
			c.Sensing.Ensemble = *ensemble
		}
		if set["sparsity"] {
			c.Sensing.Sparsity = *sparsity
		}
		if set["seed"] {
			c.Sensing.Seed = *seed
		}
		if set["log-level"] {
			c.Logging.Level = *logLevel
		}
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	logger, err := logging.New(
		logging.WithLevel(cfg.Logging.Level),
		logging.WithDevelopment(cfg.Logging.Development),
		logging.WithFields(map[string]any{"cmd": "fidplot"}),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	params, err := cfg.Params()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	ys, title, err := series(ctx, *part, params, experiment.NewRunner(logger))
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := render(ys, title, *output, vg.Length(*width)*vg.Inch, vg.Length(*height)*vg.Inch); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

// series loads the requested array. Only "measured" runs the sensing stage.
func series(ctx context.Context, part string, p experiment.Params, runner *experiment.Runner) ([]float64, string, error) {
	if part == "measured" {
		res, err := runner.Run(ctx, p)
		if err != nil {
			return nil, "", err
		}
		title := fmt.Sprintf("%s measurement of %s (M=%d)", res.Matrix.Ensemble(), res.Target, res.Matrix.Rows())
		if res.Target == experiment.TargetFID {
			return display.Real(res.MeasuredComplex), title + ", real part", nil
		}
		return res.Measured, title, nil
	}

	opts := []fid.Option{fid.WithShift(p.Shift), fid.WithProcessed(part == "processed")}
	if p.ByteOrder != nil {
		opts = append(opts, fid.WithByteOrder(p.ByteOrder))
	}
	ds, err := fid.Open(p.Root, p.ExpNo, p.ProcNo, opts...)
	if err != nil {
		return nil, "", err
	}

	switch part {
	case "real":
		return display.Real(ds.FID), "FID real part", nil
	case "imag":
		return display.Imag(ds.FID), "FID imaginary part", nil
	case "spectrum":
		mag, err := display.MagnitudeSpectrum(ds.FID)
		if err != nil {
			return nil, "", err
		}
		return mag, "FID magnitude spectrum (centred)", nil
	case "processed":
		return display.Float64s(ds.Processed), "Processed spectrum", nil
	default:
		return nil, "", fmt.Errorf("unknown part %q (want one of %s)", part, strings.Join(parts, ", "))
	}
}

func render(ys []float64, title, path string, width, height vg.Length) error {
	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i].X = float64(i)
		pts[i].Y = y
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Index"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build line: %w", err)
	}
	p.Add(line)

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
