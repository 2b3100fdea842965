// Standard attribute keys shared by all log records. Keys use a dotted
// hierarchy ("model.name", "data.samples") so records can be filtered.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "LinearRegression".
	ModelNameKey = "model.name"

	// SolverKey names the normal-equation solver: "inverse", "qr" or "reciprocal".
	SolverKey = "model.solver"

	// OperationKey specifies the operation being performed.
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	ComponentKey = "ml.component"
)

// Data shape.
const (
	SamplesKey  = "data.samples"
	FeaturesKey = "data.features"
	SourceKey   = "data.source"
)

// Results and performance.
const (
	DurationMsKey = "perf.duration_ms"
	InterceptKey  = "model.intercept"
	SlopeKey      = "model.slope"
	MSEKey        = "metrics.mse"
	R2ScoreKey    = "metrics.r2_score"
	IterationKey  = "training.iteration"
	ConditionKey  = "linalg.condition"
	OutputPathKey = "output.path"
)

// Error context.
const (
	ErrorCodeKey  = "error.code"
	StacktraceKey = "error.stacktrace"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
	OperationReport  = "report"
	OperationPlot    = "plot"
	OperationExport  = "export"

	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorSingularMatrix    = "SINGULAR_MATRIX"
	ErrorNotFitted         = "NOT_FITTED"
	ErrorInvalidInput      = "INVALID_INPUT"
)
