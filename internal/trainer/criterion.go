package trainer

import (
	"fmt"

	"github.com/herbhall/tetris-ai/internal/tetris"
)

// Criterion scores one candidate Weights vector by running a fresh
// Simulator under it and reducing the resulting playthrough to a single
// fitness number. Higher is always better.
type Criterion interface {
	Eval(w tetris.Weights) EvalResult
}

// ScoreCriterion runs the simulator for a fixed number of steps and uses
// the final accumulated score as fitness.
type ScoreCriterion struct{}

func (ScoreCriterion) Eval(w tetris.Weights) EvalResult {
	sim, err := simulatorWithWeights(w)
	if err != nil {
		return EvalResult{Weights: w}
	}
	sim.RunFor(EvalIterations)
	stats := sim.Stats()
	return EvalResult{Weights: w, Fitness: float64(stats.Score), Stats: stats}
}

// LevelCriterion runs until the simulator is over or reaches the level
// cap, and uses lines cleared as fitness: rewards raw survival speed over
// point efficiency.
type LevelCriterion struct{}

func (LevelCriterion) Eval(w tetris.Weights) EvalResult {
	sim, err := simulatorWithWeights(w)
	if err != nil {
		return EvalResult{Weights: w}
	}
	sim.SetTimePressure(true)
	for !sim.GameOver() && sim.Stats().Level < maxLevel {
		if !sim.Step() {
			break
		}
	}
	stats := sim.Stats()
	return EvalResult{Weights: w, Fitness: float64(stats.Lines), Stats: stats}
}

// TetrisesCriterion runs the simulator for a fixed number of steps and
// rewards a candidate's score in proportion to how many tetrises (4-line
// clears) it racked up, pushing the population toward well-focused play.
type TetrisesCriterion struct{}

func (TetrisesCriterion) Eval(w tetris.Weights) EvalResult {
	sim, err := simulatorWithWeights(w)
	if err != nil {
		return EvalResult{Weights: w}
	}
	sim.RunFor(EvalIterations)
	stats := sim.Stats()
	fitness := float64(stats.Score) * 10 * float64(stats.Tetrises+1)
	return EvalResult{Weights: w, Fitness: fitness, Stats: stats}
}

func simulatorWithWeights(w tetris.Weights) (*tetris.Simulator, error) {
	sim := tetris.NewSimulator()
	if err := sim.UpdateWeights(w.ToMap()); err != nil {
		return nil, err
	}
	return sim, nil
}

// CriterionByName resolves one of the three named criteria: "score",
// "level", or "tetrises".
func CriterionByName(name string) (Criterion, error) {
	switch name {
	case "score":
		return ScoreCriterion{}, nil
	case "level":
		return LevelCriterion{}, nil
	case "tetrises":
		return TetrisesCriterion{}, nil
	default:
		return nil, fmt.Errorf("trainer: unknown criterion %q", name)
	}
}
