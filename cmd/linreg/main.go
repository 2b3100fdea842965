// Command linreg fits a simple linear regression by the normal equations and
// prints the parameters together with a table of predictions and distances.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aross50/465LinRegression/config"
	"github.com/aross50/465LinRegression/dataset"
	"github.com/aross50/465LinRegression/linear"
	"github.com/aross50/465LinRegression/pkg/errors"
	"github.com/aross50/465LinRegression/pkg/log"
	"github.com/aross50/465LinRegression/plot"
	"github.com/aross50/465LinRegression/report"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "linreg: %v\n", err)
		return exitUsage
	}

	if err := log.SetupLogger(stderr, cfg.LogLevel, cfg.LogConsole); err != nil {
		fmt.Fprintf(stderr, "linreg: %v\n", err)
		return exitUsage
	}
	logger := log.GetLoggerWithName("cmd")

	if err := execute(cfg, stdout, logger); err != nil {
		logger.Error("linreg failed", err)
		return exitError
	}
	return exitOK
}

func execute(cfg *config.Config, stdout io.Writer, logger log.Logger) error {
	samples, err := loadSamples(cfg.Data)
	if err != nil {
		return err
	}
	logger.Debug("samples loaded", log.SamplesKey, samples.Len(), log.SourceKey, sourceName(cfg.Data))

	solver, err := cfg.SolverValue()
	if err != nil {
		return err
	}
	lr := linear.NewLinearRegression(
		linear.WithSolver(solver),
		linear.WithMaxIterations(cfg.MaxIterations),
	)
	if err := lr.Fit(samples.X, samples.Y); err != nil {
		return err
	}

	theta := lr.Theta()
	if _, err := fmt.Fprintln(stdout, "Computed parameters:", theta); err != nil {
		return errors.Wrap(err, "writing parameters")
	}

	predictions, err := lr.Predict(samples.X)
	if err != nil {
		return err
	}
	formatter := report.NewFormatter(cfg.ReportOptions()...)
	if err := formatter.Write(stdout, samples.X, samples.Y, predictions); err != nil {
		return err
	}

	if cfg.Plot != "" {
		if err := plot.Render(cfg.Plot, samples.X, samples.Y, theta); err != nil {
			return err
		}
		logger.Info("plot written", log.OperationKey, log.OperationPlot, log.OutputPathKey, cfg.Plot)
	}

	if cfg.Export != "" {
		if err := exportParams(lr, cfg.Export); err != nil {
			return err
		}
		logger.Info("parameters exported", log.OperationKey, log.OperationExport, log.OutputPathKey, cfg.Export)
	}
	return nil
}

func loadSamples(path string) (dataset.Samples, error) {
	if path == "" {
		return dataset.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return dataset.Samples{}, errors.Wrapf(err, "opening data file %s", path)
	}
	defer f.Close()

	s, err := dataset.LoadCSV(f)
	if err != nil {
		return dataset.Samples{}, errors.Wrapf(err, "loading %s", path)
	}
	return s, nil
}

func exportParams(lr *linear.LinearRegression, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()
	return lr.ExportParams(f)
}

func sourceName(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
