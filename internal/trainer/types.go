// Package trainer implements an evolutionary (cross-entropy method) tuner
// for tetris.Weights: sample a generation of candidate weight vectors,
// evaluate each under a selectable fitness criterion, and contract the
// sampling distribution toward the best performers until it stabilizes.
package trainer

import "github.com/herbhall/tetris-ai/internal/tetris"

// Tuning constants fixed by the training procedure.
const (
	ModelsPerGen    = 100
	KeptPerGen      = 10
	EvalIterations  = 10000
	WeightRange     = 10.0
	StableThreshold = 0.25
	initialSigma    = 10.0
	maxLevel        = 30
)

// EvalResult is the outcome of running one candidate's Simulator under a
// Criterion: the weight vector it was evaluated with, the fitness score
// the Criterion assigned, and the final tetris.Stats it produced.
type EvalResult struct {
	Weights tetris.Weights
	Fitness float64
	Stats   tetris.Stats
}

// GenerationSummary reports how a completed generation's fitness scores
// were distributed, and the μ/σ the trainer moved to in response.
type GenerationSummary struct {
	Max      float64
	Min      float64
	Mean     float64
	NewMu    []float64
	NewSigma []float64
}

// TrainState is what Trainer.Step returns: the generation and model index
// that just completed, the EvalResult for that model, and — only on the
// last model of a generation — the GenerationSummary produced by the
// update.
type TrainState struct {
	GenIndex   int
	ModelIndex int
	Eval       EvalResult
	Generation *GenerationSummary
}
