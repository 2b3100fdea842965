package linear

import (
	"math/rand/v2"
	"testing"
)

// createBenchmarkData はベンチマーク用のデータを生成する（y = 0.5x + 1 + ノイズ）
func createBenchmarkData(n int) ([]float64, []float64) {
	// シードを固定して再現性を確保
	rng := rand.New(rand.NewPCG(42, 42))

	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float64()*2.0 - 1.0
		y[i] = 1.0 + 0.5*x[i] + (rng.Float64()-0.5)*0.1
	}
	return x, y
}

// BenchmarkComputeParameters は各ソルバーの学習時間を計測する
func BenchmarkComputeParameters(b *testing.B) {
	sizes := []struct {
		name string
		rows int
	}{
		{"Tiny_8", 8},
		{"Small_100", 100},
		{"Medium_1000", 1000}, // 並列処理の閾値
		{"Large_10000", 10000},
		{"XLarge_100000", 100000},
	}

	for _, solver := range Solvers() {
		for _, size := range sizes {
			b.Run(string(solver)+"/"+size.name, func(b *testing.B) {
				x, y := createBenchmarkData(size.rows)

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, _, err := solve("bench", solver, x, y, DefaultMaxIterations); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkPredict は予測の計測
func BenchmarkPredict(b *testing.B) {
	x, _ := createBenchmarkData(10000)
	theta := []float64{1.0, 0.5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Predict(x, theta); err != nil {
			b.Fatal(err)
		}
	}
}
