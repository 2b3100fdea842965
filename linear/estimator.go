package linear

import (
	"io"
	"time"

	"github.com/aross50/465LinRegression/core/model"
	"github.com/aross50/465LinRegression/metrics"
	"github.com/aross50/465LinRegression/pkg/errors"
	"github.com/aross50/465LinRegression/pkg/log"
)

const modelName = "LinearRegression"

// LinearRegression は正規方程式で学習する単回帰モデル
type LinearRegression struct {
	model.BaseEstimator

	solver  Solver
	maxIter int
	logger  log.Logger

	theta      []float64
	nSamples   int
	iterations int
}

var _ model.Regressor = (*LinearRegression)(nil)

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{
		solver:  SolverInverse,
		maxIter: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(lr)
	}
	if lr.logger == nil {
		lr.logger = log.GetLoggerWithName("linear")
	}
	lr.logger = lr.logger.With(log.ModelNameKey, modelName, log.SolverKey, string(lr.solver))
	return lr
}

// Fit はモデルを訓練データで学習させる
func (lr *LinearRegression) Fit(x, y []float64) error {
	start := time.Now()
	lr.logger.Debug("fit started",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, len(x),
	)

	theta, iters, err := solve(modelName+".Fit", lr.solver, x, y, lr.maxIter)
	if err != nil {
		lr.logger.Warn("fit failed",
			"error", err,
			log.OperationKey, log.OperationFit,
			log.SamplesKey, len(x),
		)
		return err
	}

	lr.theta = theta
	lr.nSamples = len(x)
	lr.iterations = iters
	lr.SetFitted()

	fields := []any{
		log.OperationKey, log.OperationFit,
		log.SamplesKey, lr.nSamples,
		log.InterceptKey, theta[InterceptIndex],
		log.SlopeKey, theta[SlopeIndex],
		log.DurationMsKey, float64(time.Since(start).Microseconds()) / 1000,
	}
	if lr.solver == SolverReciprocal {
		fields = append(fields, log.IterationKey, iters)
	}
	lr.logger.Info("fit completed", fields...)
	return nil
}

// Predict は入力データに対する予測を行う
func (lr *LinearRegression) Predict(x []float64) ([]float64, error) {
	if err := lr.CheckFitted(modelName, "Predict"); err != nil {
		return nil, err
	}
	return Predict(x, lr.theta)
}

// Score は決定係数（R²）を返す
func (lr *LinearRegression) Score(x, y []float64) (float64, error) {
	if err := lr.CheckFitted(modelName, "Score"); err != nil {
		return 0, err
	}
	pred, err := lr.Predict(x)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(y, pred)
}

// Theta returns a copy of [intercept, slope], or nil before Fit.
func (lr *LinearRegression) Theta() []float64 {
	if !lr.IsFitted() {
		return nil
	}
	return append([]float64(nil), lr.theta...)
}

// Intercept returns θ0, or 0 before Fit.
func (lr *LinearRegression) Intercept() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.theta[InterceptIndex]
}

// Slope returns θ1, or 0 before Fit.
func (lr *LinearRegression) Slope() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.theta[SlopeIndex]
}

// Solver returns the configured solver.
func (lr *LinearRegression) Solver() Solver {
	return lr.solver
}

// Iterations returns the Newton-Raphson iterations used by the last fit; it
// is zero for the other solvers.
func (lr *LinearRegression) Iterations() int {
	return lr.iterations
}

// Params returns the serialisable parameters of a fitted model.
func (lr *LinearRegression) Params() (*model.ModelParams, error) {
	if err := lr.CheckFitted(modelName, "Params"); err != nil {
		return nil, err
	}
	return &model.ModelParams{
		ModelType:    modelName,
		Version:      model.ParamsFormatVersion,
		Solver:       string(lr.solver),
		Intercept:    lr.theta[InterceptIndex],
		Coefficients: []float64{lr.theta[SlopeIndex]},
		NSamples:     lr.nSamples,
		IsFitted:     true,
	}, nil
}

// ExportParams はモデルのパラメータをJSON形式でWriterに書き出す
func (lr *LinearRegression) ExportParams(w io.Writer) error {
	params, err := lr.Params()
	if err != nil {
		return err
	}
	return params.WriteJSON(w)
}

// ImportParams はJSON形式のパラメータを読み込み、学習済み状態にする
func (lr *LinearRegression) ImportParams(r io.Reader) error {
	params, err := model.ReadParamsJSON(r)
	if err != nil {
		return err
	}
	if params.ModelType != modelName {
		return errors.NewValueError(modelName+".ImportParams", "unexpected model type "+params.ModelType)
	}
	if len(params.Coefficients) != 1 {
		return errors.NewDimensionError(modelName+".ImportParams", 1, len(params.Coefficients), 1)
	}

	lr.theta = []float64{params.Intercept, params.Coefficients[0]}
	lr.nSamples = params.NSamples
	lr.iterations = 0
	if params.Solver != "" {
		if s, err := ParseSolver(params.Solver); err == nil {
			lr.solver = s
		}
	}
	lr.SetFitted()
	return nil
}
