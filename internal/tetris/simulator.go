package tetris

import "math/rand/v2"

// Simulator drives one headless playthrough: draw a piece, search every
// reachable landing, score each with the current Weights, commit the best
// by reservoir tie-breaking, repeat until no landing exists.
type Simulator struct {
	weights      Weights
	state        State
	timePressure bool
	prevPiece    *Piece
	lastPath     *Path
	gameOver     bool
}

// NewSimulator returns a Simulator with the zero-value Weights: every
// feature scored at coefficient 0, so every placement ties and Step's
// reservoir tie-breaking picks uniformly at random among all landings. Callers that want a tuned AI should
// use NewSimulatorWithPreset or UpdateWeights.
func NewSimulator() *Simulator {
	w, _ := NewWeightsFromValues(make([]float64, len(defaultFeatureOrder)))
	return &Simulator{weights: w, state: NewState(), timePressure: true}
}

// NewSimulatorWithPreset returns a Simulator seeded with a named fixed
// weights preset ("score" or "infinite").
func NewSimulatorWithPreset(preset string) (*Simulator, error) {
	w, err := WeightsPreset(preset)
	if err != nil {
		return nil, err
	}
	return &Simulator{weights: w, state: NewState(), timePressure: true}, nil
}

// Reset restores the Simulator to a fresh board and zeroed stats, keeping
// the current weights and time-pressure setting.
func (s *Simulator) Reset() {
	s.state = NewState()
	s.prevPiece = nil
	s.lastPath = nil
	s.gameOver = false
}

// SetTimePressure toggles whether move_dijkstra is run with the
// Simulator's current level (true, the default) or with no level cap at
// all (false): maximum input dexterity regardless of level.
func (s *Simulator) SetTimePressure(on bool) {
	s.timePressure = on
}

// UpdateWeights replaces the Simulator's weights from an exchange-format
// map, without otherwise disturbing board or stats.
func (s *Simulator) UpdateWeights(m WeightsMap) error {
	w, err := WeightsFromMap(m)
	if err != nil {
		return err
	}
	s.weights = w
	return nil
}

// Stats returns the Simulator's current running totals.
func (s *Simulator) Stats() Stats {
	return s.state.Stats
}

// Board returns the Simulator's current board.
func (s *Simulator) Board() Board {
	return s.state.Board
}

// GameOver reports whether the last Step found no legal landing.
func (s *Simulator) GameOver() bool {
	return s.gameOver
}

func (s *Simulator) levelPtr() *int {
	if !s.timePressure {
		return nil
	}
	lv := s.state.Stats.Level
	return &lv
}

// Step draws one piece, enumerates every reachable landing, scores each by
// the configured Weights against the state Future would produce, and
// commits the winner chosen via reservoir tie-breaking: ties (scores
// within strict equality) are resolved by replacing the running pick with
// probability 1/count, so every tied path has equal chance of being
// selected without materializing the whole tied set. Step returns false
// and sets GameOver when the drawn piece has no legal landing at all.
func (s *Simulator) Step() bool {
	if s.gameOver {
		return false
	}
	piece := GenRandomPiece(s.prevPiece)
	s.prevPiece = &piece

	paths := MoveDijkstra(&s.state.Board, piece, s.levelPtr())
	if len(paths) == 0 {
		s.gameOver = true
		return false
	}

	var bestPath Path
	var bestState State
	bestScore := 0.0
	tied := 0

	for _, path := range paths {
		future, delta := s.state.Future(path.FinalMove())
		features := ComputeFeatures(future, delta)
		score, err := s.weights.Evaluate(features)
		if err != nil {
			// Weights and the fixed feature set can never actually
			// diverge through the exported constructors; a mismatch
			// here would be a programming error, not a runtime one.
			panic(err)
		}

		switch {
		case tied == 0 || score > bestScore:
			bestScore = score
			bestPath, bestState = path, future
			tied = 1
		case score == bestScore:
			tied++
			if rand.IntN(tied) == 0 {
				bestPath, bestState = path, future
			}
		}
	}

	s.state = bestState
	s.lastPath = &bestPath
	return true
}

// LastPath returns the Path committed by the most recent successful Step,
// or nil if Step has never succeeded.
func (s *Simulator) LastPath() *Path {
	return s.lastPath
}

// Run steps the Simulator until GameOver.
func (s *Simulator) Run() {
	for s.Step() {
	}
}

// RunFor steps the Simulator up to n times, stopping early on GameOver.
// It returns the number of steps actually taken.
func (s *Simulator) RunFor(n int) int {
	taken := 0
	for taken < n && s.Step() {
		taken++
	}
	return taken
}
