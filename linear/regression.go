// Package linear fits simple linear regression models y = θ0 + θ1·x by
// solving the normal equations θ = (AᵗA)⁻¹Aᵗy, where A is the design matrix
// [1 | x].
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/aross50/465LinRegression/core/parallel"
	"github.com/aross50/465LinRegression/pkg/errors"
)

// NumParams is the length of θ: intercept and slope.
const NumParams = 2

// Positions of the parameters in θ.
const (
	InterceptIndex = 0
	SlopeIndex     = 1
)

// DesignMatrix は x の前に切片用の 1 の列を付けた n×2 行列を返す。
// x は空であってはならない。
func DesignMatrix(x []float64) *mat.Dense {
	n := len(x)
	a := mat.NewDense(n, NumParams, nil)

	parallel.ParallelizeWithThreshold(n, parallel.DefaultThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			a.Set(i, 0, 1.0)
			a.Set(i, 1, x[i])
		}
	})
	return a
}

// ComputeParameters は正規方程式 θ = (AᵗA)⁻¹Aᵗy を逆行列で直接解き、
// [切片, 傾き] を返す。
//
// AᵗA が特異（サンプルが2点未満、またはxが全て同じ値）の場合は
// ErrSingularMatrix をラップしたエラーを返す。NaN や Inf を黙って返すことはない。
func ComputeParameters(x, y []float64) ([]float64, error) {
	theta, _, err := solve("ComputeParameters", SolverInverse, x, y, DefaultMaxIterations)
	return theta, err
}

// Predict は各入力について θ0 + θ1·x を返す。
// 空の入力には空のスライスを返す。θ の長さが2でない場合は DimensionError。
func Predict(x []float64, theta []float64) ([]float64, error) {
	if len(theta) != NumParams {
		return nil, errors.NewDimensionError("Predict", NumParams, len(theta), 1)
	}
	if len(x) == 0 {
		return []float64{}, nil
	}

	a := DesignMatrix(x)
	var pred mat.VecDense
	pred.MulVec(a, mat.NewVecDense(NumParams, theta))

	out := make([]float64, len(x))
	for i := range out {
		out[i] = pred.AtVec(i)
	}
	return out, nil
}

func validateSamples(op string, x, y []float64) error {
	if len(x) == 0 {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if len(y) != len(x) {
		return errors.NewDimensionError(op, len(x), len(y), 0)
	}
	if err := errors.CheckNumericalStability(op+".x", x, 0); err != nil {
		return err
	}
	return errors.CheckNumericalStability(op+".y", y, 0)
}

func singular(op string, cause error) error {
	if cause == nil {
		return errors.NewModelError(op, "cannot solve normal equations", errors.ErrSingularMatrix)
	}
	return errors.NewModelError(op, "cannot solve normal equations",
		errors.Wrapf(errors.ErrSingularMatrix, "%v", cause))
}
