package metrics

import (
	"math"

	"github.com/aross50/465LinRegression/pkg/errors"
)

// Distance returns the per-point distance between actual and predicted
// values, d[i] = sqrt((actual[i] − predicted[i])²), which is |actual[i] − predicted[i]|.
// It is not a norm across points: each sample gets its own distance.
//
// Empty inputs give an empty result; inputs of different length give a
// DimensionError.
func Distance(actual, predicted []float64) ([]float64, error) {
	if len(actual) != len(predicted) {
		return nil, errors.NewDimensionError("Distance", len(actual), len(predicted), 0)
	}

	d := make([]float64, len(actual))
	for i := range actual {
		// Abs rather than Sqrt(diff*diff) so large or tiny gaps do not overflow or underflow.
		d[i] = math.Abs(actual[i] - predicted[i])
	}
	return d, nil
}
