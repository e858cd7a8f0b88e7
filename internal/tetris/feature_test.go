package tetris

import "testing"

func TestRowTransitionsFlatBoard(t *testing.T) {
	b := NewBoard()
	for c := 0; c < BoardWidth; c++ {
		b.data[BoardHeight-1][c] = 1
	}
	if got := rowTransitions(&b); got != 0 {
		t.Errorf("rowTransitions = %d, want 0 for a fully filled row", got)
	}
}

func TestRowTransitionsSingleGap(t *testing.T) {
	b := NewBoard()
	for c := 0; c < BoardWidth; c++ {
		if c != 4 {
			b.data[BoardHeight-1][c] = 1
		}
	}
	// filled..filled, gap at 4: transitions at (3,4) and (4,5) = 2
	if got := rowTransitions(&b); got != 2 {
		t.Errorf("rowTransitions = %d, want 2", got)
	}
}

func TestColTransitionsEmptyBoard(t *testing.T) {
	b := NewBoard()
	if got := colTransitions(&b); got != 0 {
		t.Errorf("colTransitions = %d, want 0 for an empty board", got)
	}
}

func TestPitsCountsBuriedEmpties(t *testing.T) {
	b := NewBoard()
	b.data[BoardHeight-5][0] = 1 // a block floating above empty cells below it
	recomputeHeightsForTest(&b)
	if got := pits(&b); got != 4 {
		t.Errorf("pits = %d, want 4", got)
	}
}

func TestWellDepthInterior(t *testing.T) {
	b := NewBoard()
	b.heights[0] = 5
	b.heights[1] = 0
	b.heights[2] = 5
	if got := wellDepth(&b, 1); got != 5 {
		t.Errorf("wellDepth(1) = %d, want 5", got)
	}
}

func TestWellDepthEdgeColumn(t *testing.T) {
	b := NewBoard()
	b.heights[0] = 0
	b.heights[1] = 7
	if got := wellDepth(&b, 0); got != 7 {
		t.Errorf("wellDepth(0) = %d, want 7", got)
	}
}

func TestCumulativeWellsSumsTriangularNumbers(t *testing.T) {
	b := NewBoard()
	b.heights[0] = 0
	b.heights[1] = 3
	if got := cumulativeWells(&b); got != 6 { // 3*(3+1)/2
		t.Errorf("cumulativeWells = %d, want 6", got)
	}
}

func TestLandingHeightClampedAtFloor(t *testing.T) {
	pattern := PieceO.Rotation(0)
	if got := landingHeight(pattern, BoardHeight-2); got != 0 {
		t.Errorf("landingHeight at the floor = %v, want 0", got)
	}
}

func TestWeightsEvaluateIsDotProduct(t *testing.T) {
	w, err := NewWeightsFromValues([]float64{1, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("NewWeightsFromValues: %v", err)
	}
	f := Features{RowTransitions: 5, ColTransitions: 100}
	score, err := w.Evaluate(f)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if score != 5 {
		t.Errorf("score = %v, want 5", score)
	}
}

func TestNewWeightsRejectsLengthMismatch(t *testing.T) {
	if _, err := NewWeightsFromValues([]float64{1, 2, 3}); err == nil {
		t.Error("expected error for mismatched weights length")
	}
}

func TestWeightsPresetUnknownName(t *testing.T) {
	if _, err := WeightsPreset("nonexistent"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestWeightsPresetRoundTripsThroughMap(t *testing.T) {
	w, err := WeightsPreset("score")
	if err != nil {
		t.Fatalf("WeightsPreset: %v", err)
	}
	back, err := WeightsFromMap(w.ToMap())
	if err != nil {
		t.Fatalf("WeightsFromMap: %v", err)
	}
	for i, name := range defaultFeatureOrder {
		want := w.ToMap()[name]
		got := back.ToMap()[name]
		if got != want {
			t.Errorf("feature %d (%s) = %v, want %v", i, name, got, want)
		}
	}
}

func TestWeightsFromMapMissingFeature(t *testing.T) {
	m := WeightsMap{FeatureRowTransitions: 1}
	if _, err := WeightsFromMap(m); err == nil {
		t.Error("expected error for an incomplete WeightsMap")
	}
}
