package classifier

import (
	"math/rand"
	"testing"
)

func TestForestSeparableData(t *testing.T) {
	samples := [][]float64{{0}, {0}, {1}, {1}}
	labels := []int{0, 0, 1, 1}

	forest := TrainForest(samples, labels, 50, rand.New(rand.NewSource(1)))

	low := forest.PredictProba([]float64{0})
	high := forest.PredictProba([]float64{1})
	if low >= 0.4 {
		t.Errorf("PredictProba(clean side) = %v, want < 0.4", low)
	}
	if high <= 0.6 {
		t.Errorf("PredictProba(defective side) = %v, want > 0.6", high)
	}
}

func TestForestPureLabels(t *testing.T) {
	samples := [][]float64{{0.1}, {0.5}, {0.9}}

	t.Run("all_clean", func(t *testing.T) {
		forest := TrainForest(samples, []int{0, 0, 0}, 10, rand.New(rand.NewSource(1)))
		if got := forest.PredictProba([]float64{0.5}); got != 0 {
			t.Errorf("PredictProba() = %v, want 0", got)
		}
	})

	t.Run("all_defective", func(t *testing.T) {
		forest := TrainForest(samples, []int{1, 1, 1}, 10, rand.New(rand.NewSource(1)))
		if got := forest.PredictProba([]float64{0.5}); got != 1 {
			t.Errorf("PredictProba() = %v, want 1", got)
		}
	})
}

func TestForestProbabilityBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	samples := make([][]float64, 30)
	labels := make([]int, 30)
	for i := range samples {
		samples[i] = []float64{rng.Float64(), rng.Float64(), rng.Float64()}
		labels[i] = rng.Intn(2)
	}

	forest := TrainForest(samples, labels, 20, rand.New(rand.NewSource(2)))
	for i := 0; i < 10; i++ {
		p := forest.PredictProba([]float64{rng.Float64(), rng.Float64(), rng.Float64()})
		if p < 0 || p > 1 {
			t.Fatalf("PredictProba() = %v, want within [0, 1]", p)
		}
	}
}
