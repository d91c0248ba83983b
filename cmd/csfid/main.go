// Command csfid loads a Bruker 1D experiment, builds a random sensing matrix
// for the processed spectrum or the FID and prints a summary of the
// simulated compressed-sensing measurement.
//
// Usage:
//
//	csfid [flags]
//
// Configuration is read from an optional YAML file (-config), then CSFID_*
// environment variables, then flags.
//
// Examples:
//
//	csfid -root /data/nmr -expno 10 -procno 1 -shift 138
//	csfid -root /data/nmr -target fid -ensemble bernoulli -sparsity 0.25 -seed 7
//	csfid -config run.yaml -out measured.csv
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-nmr/internal/config"
	"github.com/cwbudde/algo-nmr/internal/logging"
	"github.com/cwbudde/algo-nmr/nmr/experiment"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("csfid", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML configuration file")
	root := fs.String("root", "", "directory containing the numbered experiments")
	expNo := fs.Int("expno", 0, "experiment number")
	procNo := fs.Int("procno", 0, "processing number")
	shift := fs.Int("shift", 0, "raw samples discarded before de-interleaving")
	byteOrder := fs.String("byteorder", "", "data byte order: native, little or big")
	sparsity := fs.Float64("sparsity", 0, "measurement fraction in (0, 1]")
	ensemble := fs.String("ensemble", "", "sensing ensemble: gaussian or bernoulli")
	target := fs.String("target", "", "measured array: processed or fid")
	seed := fs.Uint64("seed", 0, "random seed (0 = fresh seed)")
	workers := fs.Int("workers", 0, "rows generated concurrently")
	components := fs.Int("components", 0, "expected non-zero frequencies for the bound report")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	out := fs.String("out", "", "write the measurement vector as CSV to this file")

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
		if set["byteorder"] {
			c.Experiment.ByteOrder = *byteOrder
		}
		if set["sparsity"] {
			c.Sensing.Sparsity = *sparsity
		}
		if set["ensemble"] {
			c.Sensing.Ensemble = *ensemble
		}
		if set["target"] {
			c.Sensing.Target = *target
		}
		if set["seed"] {
			c.Sensing.Seed = *seed
		}
		if set["workers"] {
			c.Sensing.Workers = *workers
		}
		if set["components"] {
			c.Sensing.Components = *components
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
		logging.WithFields(map[string]any{"cmd": "csfid"}),
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

	res, err := experiment.NewRunner(logger).Run(ctx, params)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := printSummary(stdout, params, res); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: failed to write summary: %v\n", err)
		return 1
	}

	if *out != "" {
		if err := writeCSV(*out, res); err != nil {
			logger.Error("write measurements", zap.String("path", *out), zap.Error(err))
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		logger.Info("measurements written", zap.String("path", *out))
	}

	return 0
}

func printSummary(w io.Writer, p experiment.Params, res *experiment.Result) error {
	rows, cols := res.Matrix.Dims()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	lines := [][2]string{
		{"Experiment", res.Dataset.ExperimentDir()},
		{"Shift", strconv.Itoa(p.Shift)},
		{"FID points", strconv.Itoa(len(res.Dataset.FID))},
		{"Processed points", strconv.Itoa(len(res.Dataset.Processed))},
		{"Target", res.Target.String()},
		{"Ensemble", res.Matrix.Ensemble().String()},
		{"Sparsity", strconv.FormatFloat(p.Sparsity, 'g', -1, 64)},
		{"Matrix", fmt.Sprintf("%d x %d", rows, cols)},
	}
	if p.Components > 0 {
		lines = append(lines,
			[2]string{"Bound (k=" + strconv.Itoa(p.Components) + ")", strconv.FormatFloat(res.Bound, 'f', 2, 64)},
			[2]string{"Bound met", strconv.FormatBool(res.BoundMet)},
		)
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", l[0], l[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeCSV(path string, res *experiment.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if res.Target == experiment.TargetFID {
		if err := w.Write([]string{"index", "real", "imag"}); err != nil {
			return err
		}
		for i, v := range res.MeasuredComplex {
			rec := []string{
				strconv.Itoa(i),
				strconv.FormatFloat(real(v), 'g', -1, 64),
				strconv.FormatFloat(imag(v), 'g', -1, 64),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	} else {
		if err := w.Write([]string{"index", "value"}); err != nil {
			return err
		}
		for i, v := range res.Measured {
			if err := w.Write([]string{strconv.Itoa(i), strconv.FormatFloat(v, 'g', -1, 64)}); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}
