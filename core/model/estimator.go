package model

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit は説明変数 x と目的変数 y からパラメータを推定する
	Fit(x, y []float64) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力ごとに1つの予測値を返す
	Predict(x []float64) ([]float64, error)
}

// Scorer は決定係数を計算できるモデルのインターフェース
type Scorer interface {
	Score(x, y []float64) (float64, error)
}

// Regressor は単回帰モデルのインターフェース
type Regressor interface {
	Fitter
	Predictor
	Scorer
}
