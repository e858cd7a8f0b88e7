package trainer

import (
	"testing"

	"github.com/herbhall/tetris-ai/internal/tetris"
)

var testFeatures = []tetris.FeatureName{
	tetris.FeatureRowTransitions,
	tetris.FeatureColTransitions,
	tetris.FeaturePits,
	tetris.FeatureCumulativeWells,
	tetris.FeatureLandingHeight,
	tetris.FeatureErodedCells,
}

// fakeCriterion scores a candidate by the sum of its weight values, so
// test expectations don't depend on actually playing Tetris.
type fakeCriterion struct{}

func (fakeCriterion) Eval(w tetris.Weights) EvalResult {
	sum := 0.0
	for _, v := range w.Values() {
		sum += v
	}
	return EvalResult{Weights: w, Fitness: sum}
}

func TestNewSeedsInitialDistribution(t *testing.T) {
	tr := New(testFeatures, fakeCriterion{})
	if len(tr.candidates) != ModelsPerGen {
		t.Fatalf("candidates = %d, want %d", len(tr.candidates), ModelsPerGen)
	}
	for _, s := range tr.sigma {
		if s != initialSigma {
			t.Errorf("sigma = %v, want %v", s, initialSigma)
		}
	}
}

func TestStepAdvancesModelIndex(t *testing.T) {
	tr := New(testFeatures, fakeCriterion{})
	state := tr.Step()
	if state.ModelIndex != 0 {
		t.Errorf("first Step ModelIndex = %d, want 0", state.ModelIndex)
	}
	if state.Generation != nil {
		t.Error("expected no Generation summary before the last model")
	}
}

func TestStepEmitsGenerationSummaryOnBoundary(t *testing.T) {
	tr := New(testFeatures, fakeCriterion{})
	var last TrainState
	for i := 0; i < ModelsPerGen; i++ {
		last = tr.Step()
	}
	if last.Generation == nil {
		t.Fatal("expected a Generation summary on the last model of the generation")
	}
	if last.Generation.Max < last.Generation.Min {
		t.Errorf("Max (%v) < Min (%v)", last.Generation.Max, last.Generation.Min)
	}
	if tr.genIndex != 1 {
		t.Errorf("genIndex after one full generation = %d, want 1", tr.genIndex)
	}
}

func TestNormalizeWeightsScalesToWeightRange(t *testing.T) {
	mu := []float64{2, -20, 5}
	sigma := []float64{1, 4, 2}
	normalizeWeights(mu, sigma)

	maxAbs := 0.0
	for _, v := range mu {
		a := v
		if a < 0 {
			a = -a
		}
		if a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs != WeightRange {
		t.Errorf("max|mu| = %v, want %v", maxAbs, WeightRange)
	}
	if want := 4 * (WeightRange / 20); sigma[1] != want {
		t.Errorf("sigma[1] = %v, want %v", sigma[1], want)
	}
}

func TestNormalizeWeightsAllZeroIsNoOp(t *testing.T) {
	mu := []float64{0, 0, 0}
	sigma := []float64{1, 2, 3}
	normalizeWeights(mu, sigma)
	for i, s := range sigma {
		if s != []float64{1, 2, 3}[i] {
			t.Errorf("sigma[%d] changed for all-zero mu", i)
		}
	}
}

func TestIsStableRequiresAllSigmaBelowThreshold(t *testing.T) {
	tr := New(testFeatures, fakeCriterion{})
	if tr.IsStable() {
		t.Error("freshly seeded trainer should not be stable")
	}
	for i := range tr.sigma {
		tr.sigma[i] = StableThreshold - 0.01
	}
	if !tr.IsStable() {
		t.Error("expected IsStable once every sigma is below threshold")
	}
}

func TestCriterionByNameUnknown(t *testing.T) {
	if _, err := CriterionByName("nonexistent"); err == nil {
		t.Error("expected error for unknown criterion name")
	}
}

func TestEvaluateGenerationParallelCoversAllCandidates(t *testing.T) {
	candidates := make([]tetris.Weights, 10)
	for i := range candidates {
		w, err := tetris.NewWeights(testFeatures, make([]float64, len(testFeatures)))
		if err != nil {
			t.Fatalf("NewWeights: %v", err)
		}
		candidates[i] = w
	}
	results := EvaluateGenerationParallel(candidates, fakeCriterion{})
	if len(results) != len(candidates) {
		t.Errorf("results = %d, want %d", len(results), len(candidates))
	}
}
