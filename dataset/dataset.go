// Package dataset holds the sample sets the regression is fitted on.
package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/aross50/465LinRegression/pkg/errors"
)

// Samples is an ordered set of (x, y) pairs. X and Y have equal length.
type Samples struct {
	X []float64
	Y []float64
}

var (
	defaultX = []float64{-1.1, 0.1, 1.2, 2.3, 3.1, 4.1, 4.8, 5.7}
	defaultY = []float64{-1.7, 2.4, 5.0, 7.3, 10.9, 12.5, 16.2, 19.7}
)

// Default returns a copy of the built-in 8-point training set.
func Default() Samples {
	return Samples{
		X: append([]float64(nil), defaultX...),
		Y: append([]float64(nil), defaultY...),
	}
}

// Len returns the number of samples.
func (s Samples) Len() int {
	return len(s.X)
}

// Validate checks that the set is non-empty and that X and Y line up.
func (s Samples) Validate() error {
	if len(s.X) == 0 {
		return errors.NewModelError("Samples.Validate", "empty data", errors.ErrEmptyData)
	}
	if len(s.Y) != len(s.X) {
		return errors.NewDimensionError("Samples.Validate", len(s.X), len(s.Y), 0)
	}
	return nil
}

// LoadCSV reads two numeric columns, x then y. A first row whose fields do
// not parse as numbers is taken as a header. Blank lines are skipped.
func LoadCSV(r io.Reader) (Samples, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var s Samples
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Samples{}, errors.Wrapf(err, "reading csv line %d", line)
		}
		if len(record) != 2 {
			return Samples{}, errors.NewValueError("LoadCSV",
				"line "+strconv.Itoa(line)+": expected 2 fields, got "+strconv.Itoa(len(record)))
		}

		x, errX := parseField(record[0])
		y, errY := parseField(record[1])
		if errX != nil || errY != nil {
			if line == 1 && s.Len() == 0 {
				continue
			}
			return Samples{}, errors.NewValueError("LoadCSV",
				"line "+strconv.Itoa(line)+": non-numeric value in "+strings.Join(record, ","))
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
	}

	if err := s.Validate(); err != nil {
		return Samples{}, err
	}
	return s, nil
}

func parseField(field string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(field), 64)
}
