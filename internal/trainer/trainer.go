package trainer

import (
	"math"

	channerics "github.com/niceyeti/channerics/channels"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/herbhall/tetris-ai/internal/tetris"
)

// Trainer tunes a tetris.Weights vector by the cross-entropy method: each
// generation samples ModelsPerGen candidates from a per-component Normal
// distribution, evaluates every candidate under a Criterion, and narrows
// the distribution toward the KeptPerGen best performers.
type Trainer struct {
	featureNames []tetris.FeatureName
	criterion    Criterion

	mu    []float64
	sigma []float64

	genIndex   int
	modelIndex int
	candidates []tetris.Weights
	results    []EvalResult
}

// New returns a Trainer over the given ordered feature list and
// criterion, with μ at zero and σ at its initial spread.
func New(features []tetris.FeatureName, criterion Criterion) *Trainer {
	mu := make([]float64, len(features))
	sigma := make([]float64, len(features))
	for i := range sigma {
		sigma[i] = initialSigma
	}
	t := &Trainer{
		featureNames: append([]tetris.FeatureName(nil), features...),
		criterion:    criterion,
		mu:           mu,
		sigma:        sigma,
	}
	t.sampleGeneration()
	return t
}

// Reset re-seeds μ at zero and σ at its initial spread and starts a fresh
// generation 0.
func (t *Trainer) Reset() {
	for i := range t.mu {
		t.mu[i] = 0
		t.sigma[i] = initialSigma
	}
	t.genIndex = 0
	t.modelIndex = 0
	t.sampleGeneration()
}

// sampleGeneration draws ModelsPerGen fresh candidate Weights vectors from
// the current Normal(mu_i, sigma_i) per component.
func (t *Trainer) sampleGeneration() {
	t.candidates = make([]tetris.Weights, ModelsPerGen)
	t.results = t.results[:0]
	for m := 0; m < ModelsPerGen; m++ {
		values := make([]float64, len(t.mu))
		for i := range values {
			dist := distuv.Normal{Mu: t.mu[i], Sigma: t.sigma[i]}
			values[i] = dist.Rand()
		}
		w, err := tetris.NewWeights(t.featureNames, values)
		if err != nil {
			// featureNames and values are always built to equal length.
			panic(err)
		}
		t.candidates[m] = w
	}
	t.modelIndex = 0
}

// IsStable reports whether every component's standard deviation has
// shrunk below StableThreshold — the signal that training has converged.
func (t *Trainer) IsStable() bool {
	for _, s := range t.sigma {
		if s >= StableThreshold {
			return false
		}
	}
	return true
}

// Step evaluates the next candidate of the current generation. When that
// candidate is the last of the generation, Step also performs the
// generation update (new mu/sigma from the top KeptPerGen, normalized to
// WeightRange) and reports it in the returned TrainState's Generation
// field before sampling the next generation.
func (t *Trainer) Step() TrainState {
	w := t.candidates[t.modelIndex]
	result := t.criterion.Eval(w)
	t.results = append(t.results, result)

	state := TrainState{
		GenIndex:   t.genIndex,
		ModelIndex: t.modelIndex,
		Eval:       result,
	}

	t.modelIndex++
	if t.modelIndex == ModelsPerGen {
		summary := t.finishGeneration()
		state.Generation = &summary
		t.genIndex++
		t.sampleGeneration()
	}
	return state
}

// finishGeneration ranks the completed generation's results, recomputes
// mu/sigma from the KeptPerGen best, normalizes so max|mu_i| ==
// WeightRange (scaling sigma identically), and returns the summary.
func (t *Trainer) finishGeneration() GenerationSummary {
	sorted := append([]EvalResult(nil), t.results...)
	sortByFitnessDesc(sorted)

	var max, min, sum float64
	max, min = sorted[0].Fitness, sorted[0].Fitness
	for _, r := range sorted {
		if r.Fitness > max {
			max = r.Fitness
		}
		if r.Fitness < min {
			min = r.Fitness
		}
		sum += r.Fitness
	}
	mean := sum / float64(len(sorted))

	kept := sorted[:KeptPerGen]
	n := len(t.mu)
	newMu := make([]float64, n)
	newSigma := make([]float64, n)
	for i := 0; i < n; i++ {
		var s float64
		for _, r := range kept {
			s += r.Weights.Values()[i]
		}
		newMu[i] = s / float64(len(kept))
	}
	for i := 0; i < n; i++ {
		var variance float64
		for _, r := range kept {
			d := r.Weights.Values()[i] - newMu[i]
			variance += d * d
		}
		newSigma[i] = math.Sqrt(variance / float64(len(kept)))
	}

	normalizeWeights(newMu, newSigma)

	copy(t.mu, newMu)
	copy(t.sigma, newSigma)

	return GenerationSummary{Max: max, Min: min, Mean: mean, NewMu: newMu, NewSigma: newSigma}
}

// normalizeWeights scales mu (and sigma identically) so that the largest
// magnitude component of mu equals WeightRange, preserving the relative
// shape of the sampling distribution across generations.
func normalizeWeights(mu, sigma []float64) {
	maxAbs := 0.0
	for _, v := range mu {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		return
	}
	scale := WeightRange / maxAbs
	for i := range mu {
		mu[i] *= scale
		sigma[i] *= scale
	}
}

func sortByFitnessDesc(results []EvalResult) {
	// insertion sort: ModelsPerGen is small (100) and this runs once per
	// generation, so a simple stable sort is plenty.
	for i := 1; i < len(results); i++ {
		for j := i; j > 0 && results[j].Fitness > results[j-1].Fitness; j-- {
			results[j], results[j-1] = results[j-1], results[j]
		}
	}
}

// EvaluateGenerationParallel evaluates every candidate concurrently,
// fanning the per-candidate worker channels into one with
// channerics.Merge. Each worker is a pure function of its own candidate
// weights and the global RNG stream, so there is no shared mutable state
// across workers beyond what math/rand/v2's default source already
// serializes internally. Results are returned in arbitrary order; callers
// that need generation bookkeeping should sort or reduce before use.
func EvaluateGenerationParallel(candidates []tetris.Weights, criterion Criterion) []EvalResult {
	done := make(chan struct{})
	defer close(done)

	workers := make([]<-chan EvalResult, len(candidates))
	for i, w := range candidates {
		workers[i] = evalWorker(w, criterion, done)
	}

	results := make([]EvalResult, 0, len(candidates))
	for r := range channerics.Merge(done, workers...) {
		results = append(results, r)
	}
	return results
}

func evalWorker(w tetris.Weights, criterion Criterion, done <-chan struct{}) <-chan EvalResult {
	out := make(chan EvalResult, 1)
	go func() {
		defer close(out)
		result := criterion.Eval(w)
		select {
		case out <- result:
		case <-done:
		}
	}()
	return out
}
