// Package linreg fits a simple linear regression y = θ0 + θ1·x by solving the
// normal equations θ = (AᵗA)⁻¹Aᵗy, where A is the design matrix [1, x].
//
// The command in cmd/linreg fits the built-in 8-point sample set and prints
// the parameter vector followed by a table of each sample, its prediction and
// the absolute distance between the two:
//
//	$ go run ./cmd/linreg
//	Computed parameters: [1.413973518447103 3.0192184085358016]
//	Training data  Prediction     Euclidean distance
//	(x, y)         Go
//	(-1.1, -1.7)   -1.90717       0.20717
//	...
//
// # Packages
//
//   - linear: design matrix, ComputeParameters, Predict and the LinearRegression estimator
//   - metrics: per-point Distance and the MSE, RMSE, MAE and R² scores
//   - report: fixed-width table formatting and parsing
//   - dataset: the built-in samples and a CSV loader
//   - plot: scatter plus fitted line rendered with gonum/plot
//   - config: flags and LINREG_* environment variables
//   - pkg/errors, pkg/log: structured errors and zerolog-based logging
//
// # Solvers
//
// Three solvers are available through linear.WithSolver:
//
//   - inverse (default): inverts AᵗA with gonum/mat
//   - qr: least squares through a QR factorisation of A
//   - reciprocal: the 2×2 system expanded into sums, with 1/det(AᵗA)
//     approximated by Newton-Raphson iteration
//
// All three fail with a singular-matrix error when every x is identical.
//
// # Library use
//
//	theta, err := linear.ComputeParameters(x, y)
//	if err != nil {
//	    return err
//	}
//	predictions, err := linear.Predict(x, theta)
//	if err != nil {
//	    return err
//	}
//	table, err := report.Format(x, y, predictions)
package linreg
