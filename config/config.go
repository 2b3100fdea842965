// Package config resolves the driver settings from defaults, LINREG_*
// environment variables and command-line flags, in that order of precedence.
package config

import (
	"flag"
	"io"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/aross50/465LinRegression/linear"
	"github.com/aross50/465LinRegression/pkg/errors"
	"github.com/aross50/465LinRegression/pkg/log"
	"github.com/aross50/465LinRegression/plot"
	"github.com/aross50/465LinRegression/report"
)

// EnvPrefix is the prefix for environment variables, e.g. LINREG_SOLVER.
const EnvPrefix = "linreg"

// Config holds the driver settings. An empty Data uses the built-in samples;
// empty Plot and Export disable those outputs.
type Config struct {
	Data          string `envconfig:"DATA"`
	Solver        string `envconfig:"SOLVER" default:"inverse"`
	MaxIterations int    `envconfig:"MAX_ITERATIONS" default:"64"`
	Plot          string `envconfig:"PLOT"`
	Export        string `envconfig:"EXPORT"`
	Label         string `envconfig:"LABEL" default:"Go"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"warn"`
	LogConsole    bool   `envconfig:"LOG_CONSOLE" default:"true"`
}

// Load reads the environment, then applies flags from args. Usage and flag
// errors are written to output. -h returns an error matching flag.ErrHelp.
func Load(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "reading environment")
	}

	fs := flag.NewFlagSet("linreg", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Data, "data", cfg.Data, "CSV file with x,y columns (default: built-in samples)")
	fs.StringVar(&cfg.Solver, "solver", cfg.Solver, "normal-equation solver: inverse, qr or reciprocal")
	fs.IntVar(&cfg.MaxIterations, "max-iter", cfg.MaxIterations, "Newton-Raphson iteration limit for the reciprocal solver")
	fs.StringVar(&cfg.Plot, "plot", cfg.Plot, "write a plot of the fit to this file (.png, .svg, .pdf, ...)")
	fs.StringVar(&cfg.Export, "export", cfg.Export, "write the fitted parameters as JSON to this file")
	fs.StringVar(&cfg.Label, "label", cfg.Label, "implementation label in the report header")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.LogConsole, "log-console", cfg.LogConsole, "human-readable logs instead of JSON")

	if err := fs.Parse(args); err != nil {
		return nil, errors.WithStack(err)
	}
	if fs.NArg() > 0 {
		return nil, errors.NewValidationError("args", "unexpected positional arguments", strings.Join(fs.Args(), " "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and returns the first ValidationError found.
func (c *Config) Validate() error {
	if _, err := c.SolverValue(); err != nil {
		return err
	}
	if c.MaxIterations < 1 {
		return errors.NewValidationError("max_iterations", "must be at least 1", c.MaxIterations)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Plot != "" {
		if _, err := plot.Format(c.Plot); err != nil {
			return err
		}
	}
	return nil
}

// SolverValue returns the configured solver.
func (c *Config) SolverValue() (linear.Solver, error) {
	return linear.ParseSolver(c.Solver)
}

// ReportOptions returns the formatter options implied by the configuration.
func (c *Config) ReportOptions() []report.Option {
	return []report.Option{report.WithLabel(c.Label)}
}
