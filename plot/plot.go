// Package plot renders the training samples and the fitted line to an image file.
package plot

import (
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/aross50/465LinRegression/linear"
	"github.com/aross50/465LinRegression/pkg/errors"
)

const (
	defaultWidth  = 6 * vg.Inch
	defaultHeight = 4 * vg.Inch
	lineSamples   = 100
)

var supportedFormats = map[string]bool{
	"png": true, "svg": true, "pdf": true, "eps": true,
	"jpg": true, "jpeg": true, "tif": true, "tiff": true,
}

// Format returns the image format implied by path's extension, lower-cased
// and without the dot. An unsupported extension gives a ValidationError.
func Format(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !supportedFormats[ext] {
		return "", errors.NewValidationError("plot", "unsupported image format", path)
	}
	return ext, nil
}

// New builds a plot with the samples as a scatter and y = θ0 + θ1·x drawn
// across the range of x.
func New(x, y, theta []float64) (*gplot.Plot, error) {
	if len(x) == 0 {
		return nil, errors.NewModelError("plot.New", "nothing to plot", errors.ErrEmptyData)
	}
	if len(y) != len(x) {
		return nil, errors.NewDimensionError("plot.New", len(x), len(y), 0)
	}
	if len(theta) != linear.NumParams {
		return nil, errors.NewDimensionError("plot.New", linear.NumParams, len(theta), 1)
	}

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}

	p := gplot.New()
	p.Title.Text = "Linear regression"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "building scatter")
	}

	intercept, slope := theta[linear.InterceptIndex], theta[linear.SlopeIndex]
	line := plotter.NewFunction(func(v float64) float64 {
		return intercept + slope*v
	})
	line.XMin = floats.Min(x)
	line.XMax = floats.Max(x)
	line.Samples = lineSamples
	line.Width = vg.Points(1.5)

	p.Add(scatter, line)
	p.Legend.Add("training data", scatter)
	p.Legend.Add("fit", line)
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// Render draws the plot and saves it to path. A panic inside the rendering
// backend is returned as an error.
func Render(path string, x, y, theta []float64) error {
	if _, err := Format(path); err != nil {
		return err
	}
	p, err := New(x, y, theta)
	if err != nil {
		return err
	}
	return errors.SafeExecute("plot.Save", func() error {
		return errors.Wrapf(p.Save(defaultWidth, defaultHeight, path), "saving plot to %s", path)
	})
}
