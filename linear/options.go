package linear

import "github.com/aross50/465LinRegression/pkg/log"

// Option is a function that configures LinearRegression
type Option func(*LinearRegression)

// WithSolver selects the normal-equation solver
func WithSolver(solver Solver) Option {
	return func(lr *LinearRegression) {
		lr.solver = solver
	}
}

// WithMaxIterations bounds the Newton-Raphson iterations of SolverReciprocal.
// Values below 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(lr *LinearRegression) {
		if n >= 1 {
			lr.maxIter = n
		}
	}
}

// WithLogger sets the logger used for fit diagnostics
func WithLogger(logger log.Logger) Option {
	return func(lr *LinearRegression) {
		lr.logger = logger
	}
}
