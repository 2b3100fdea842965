package linear

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/aross50/465LinRegression/pkg/errors"
)

// Solver selects how the normal equations are solved.
type Solver string

const (
	// SolverInverse inverts AᵗA directly.
	SolverInverse Solver = "inverse"
	// SolverQR solves Aθ = y in the least-squares sense through a QR factorisation.
	SolverQR Solver = "qr"
	// SolverReciprocal expands the 2×2 normal equations into sums over x and
	// approximates 1/det(AᵗA) with Newton-Raphson iterations.
	SolverReciprocal Solver = "reciprocal"
)

const (
	// DefaultMaxIterations bounds the Newton-Raphson reciprocal.
	DefaultMaxIterations = 64

	// IllConditionedThreshold is the condition number of AᵗA above which a
	// successful solve still raises an IllConditionedWarning.
	IllConditionedThreshold = 1e10

	reciprocalTolerance = 1e-15

	// Relative size of det(AᵗA) below which the reciprocal solver treats the
	// system as singular.
	degenerateDetRatio = 1e-12
)

// Solvers lists the supported solvers in a stable order.
func Solvers() []Solver {
	return []Solver{SolverInverse, SolverQR, SolverReciprocal}
}

// ParseSolver converts a solver name to a Solver.
func ParseSolver(name string) (Solver, error) {
	s := Solver(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Solvers() {
		if s == known {
			return s, nil
		}
	}
	return "", errors.NewValidationError("solver", "must be one of inverse, qr, reciprocal", name)
}

// solve returns θ and, for the reciprocal solver, the number of Newton-Raphson
// iterations used.
func solve(op string, solver Solver, x, y []float64, maxIter int) ([]float64, int, error) {
	if err := validateSamples(op, x, y); err != nil {
		return nil, 0, err
	}
	// AᵗA has rank at most n, and rank 1 when every x is the same.
	if len(x) < NumParams {
		return nil, 0, singular(op, nil)
	}
	if floats.Min(x) == floats.Max(x) {
		return nil, 0, singular(op, errors.Newf("all %d x values equal %g", len(x), x[0]))
	}

	var (
		theta []float64
		iters int
		err   error
	)
	switch solver {
	case SolverInverse, "":
		theta, err = solveInverse(op, x, y)
	case SolverQR:
		theta, err = solveQR(op, x, y)
	case SolverReciprocal:
		theta, iters, err = solveReciprocal(op, x, y, maxIter)
	default:
		return nil, 0, errors.NewValidationError("solver", "unknown solver", string(solver))
	}
	if err != nil {
		return nil, iters, err
	}

	if err := errors.CheckNumericalStability(op, theta, iters); err != nil {
		return nil, iters, err
	}
	return theta, iters, nil
}

func solveInverse(op string, x, y []float64) ([]float64, error) {
	a := DesignMatrix(x)

	var xtx mat.Dense
	xtx.Mul(a.T(), a)
	if err := errors.CheckMatrix(op, &xtx, 0); err != nil {
		return nil, err
	}

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, singular(op, err)
	}
	warnIfIllConditioned(op, &xtx)

	var xty mat.VecDense
	xty.MulVec(a.T(), mat.NewVecDense(len(y), y))

	var theta mat.VecDense
	theta.MulVec(&xtxInv, &xty)

	return []float64{theta.AtVec(InterceptIndex), theta.AtVec(SlopeIndex)}, nil
}

func solveQR(op string, x, y []float64) ([]float64, error) {
	a := DesignMatrix(x)

	var qr mat.QR
	qr.Factorize(a)

	var theta mat.Dense
	if err := qr.SolveTo(&theta, false, mat.NewDense(len(y), 1, y)); err != nil {
		return nil, singular(op, err)
	}

	var xtx mat.Dense
	xtx.Mul(a.T(), a)
	warnIfIllConditioned(op, &xtx)

	return []float64{theta.At(InterceptIndex, 0), theta.At(SlopeIndex, 0)}, nil
}

// solveReciprocal expands (AᵗA)⁻¹Aᵗy for the 2×2 case:
//
//	AᵗA = [n Σx; Σx Σx²], D = nΣx² − (Σx)², s ≈ 1/D
//	θ0 = Σ (Σx²·s − Σx·s·xᵢ)·yᵢ
//	θ1 = Σ (−Σx·s + n·s·xᵢ)·yᵢ
func solveReciprocal(op string, x, y []float64, maxIter int) ([]float64, int, error) {
	n := float64(len(x))
	var sx, sxx float64
	for _, v := range x {
		sx += v
		sxx += v * v
	}

	det := n*sxx - sx*sx
	if err := errors.CheckScalar(op, det, 0); err != nil {
		return nil, 0, err
	}
	if !(det > degenerateDetRatio*n*sxx) {
		return nil, 0, singular(op, errors.Newf("det(AᵗA) = %g", det))
	}

	s, iters, converged := Reciprocal(det, maxIter)
	if !converged {
		errors.Warn(errors.NewConvergenceWarning("NewtonRaphson", iters,
			"reciprocal of det(AᵗA) not within tolerance"))
	}

	c := sxx * s
	d := -sx * s
	e := n * s

	var theta0, theta1 float64
	for i, xi := range x {
		theta0 += (c + d*xi) * y[i]
		theta1 += (d + e*xi) * y[i]
	}
	return []float64{theta0, theta1}, iters, nil
}

// Reciprocal approximates 1/d for d > 0 with the Newton-Raphson update
// s ← s·(2 − d·s). The seed is 2^-k where 2^k is the smallest power of two
// greater than d, so the initial relative error 1 − d·s lies in (0, 0.5] and
// squares on every step. It stops once |1 − d·s| ≤ 1e-15 or after maxIter
// updates, and reports whether the tolerance was reached.
func Reciprocal(d float64, maxIter int) (s float64, iterations int, converged bool) {
	if !(d > 0) || math.IsInf(d, 1) {
		return math.NaN(), 0, false
	}

	_, exp := math.Frexp(d)
	s = math.Ldexp(1, -exp)

	for iterations < maxIter {
		s = s * (2 - d*s)
		iterations++
		if math.Abs(1-d*s) <= reciprocalTolerance {
			return s, iterations, true
		}
	}
	return s, iterations, math.Abs(1-d*s) <= reciprocalTolerance
}

func warnIfIllConditioned(op string, xtx *mat.Dense) {
	if cond := mat.Cond(xtx, 1); cond > IllConditionedThreshold {
		errors.Warn(errors.NewIllConditionedWarning(op, cond, IllConditionedThreshold))
	}
}
