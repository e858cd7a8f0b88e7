package tetris

import "fmt"

// FeatureName identifies one of the six board heuristics a Weights vector
// scores against.
type FeatureName string

// The six named features, in the canonical order used by presets and by
// Weights.Names.
const (
	FeatureRowTransitions  FeatureName = "row_trans"
	FeatureColTransitions  FeatureName = "col_trans"
	FeaturePits            FeatureName = "pits"
	FeatureCumulativeWells FeatureName = "cuml_wells"
	FeatureLandingHeight   FeatureName = "landing_height"
	FeatureErodedCells     FeatureName = "eroded_cells"
)

// defaultFeatureOrder is the feature list every preset and every
// Weights built from a bare []float64 is assumed to be zipped against.
var defaultFeatureOrder = []FeatureName{
	FeatureRowTransitions,
	FeatureColTransitions,
	FeaturePits,
	FeatureCumulativeWells,
	FeatureLandingHeight,
	FeatureErodedCells,
}

// Features holds the six computed heuristic values for one candidate
// placement.
type Features struct {
	RowTransitions  float64
	ColTransitions  float64
	Pits            float64
	CumulativeWells float64
	LandingHeight   float64
	ErodedCells     float64
}

// Values returns the six features in defaultFeatureOrder.
func (f Features) Values() []float64 {
	return []float64{
		f.RowTransitions,
		f.ColTransitions,
		f.Pits,
		f.CumulativeWells,
		f.LandingHeight,
		f.ErodedCells,
	}
}

// ComputeFeatures evaluates the six board heuristics for after, the State
// Future returned alongside delta. landing_height and eroded_cells read
// directly off delta; the rest are pure functions of after's board.
func ComputeFeatures(after State, delta Delta) Features {
	pattern := delta.Move.Pattern()
	return Features{
		RowTransitions:  float64(rowTransitions(&after.Board)),
		ColTransitions:  float64(colTransitions(&after.Board)),
		Pits:            float64(pits(&after.Board)),
		CumulativeWells: float64(cumulativeWells(&after.Board)),
		LandingHeight:   landingHeight(pattern, delta.Move.Pos.Row),
		ErodedCells:     float64(delta.Eroded),
	}
}

// rowTransitions counts how many times two horizontally adjacent cells in
// the same row mismatch (one filled, one empty).
func rowTransitions(b *Board) int {
	count := 0
	for r := 0; r < BoardHeight; r++ {
		for c := 0; c < BoardWidth-1; c++ {
			if b.At(r, c).Filled() != b.At(r, c+1).Filled() {
				count++
			}
		}
	}
	return count
}

// colTransitions counts how many times two vertically adjacent cells in
// the same column mismatch.
func colTransitions(b *Board) int {
	count := 0
	for c := 0; c < BoardWidth; c++ {
		for r := 0; r < BoardHeight-1; r++ {
			if b.At(r, c).Filled() != b.At(r+1, c).Filled() {
				count++
			}
		}
	}
	return count
}

// pits counts empty cells that lie below the column's top filled cell:
// cells buried under an overhang that can't clear without first clearing
// the rows above.
func pits(b *Board) int {
	count := 0
	for c := 0; c < BoardWidth; c++ {
		for r := BoardHeight - b.Height(c); r < BoardHeight; r++ {
			if b.At(r, c).Empty() {
				count++
			}
		}
	}
	return count
}

// wellDepth returns how far one column's surface sits below the lower of
// its two neighbors, or 0 if it is not below both. The area outside the
// board counts as height BoardHeight, so edge columns are measured against
// their one real neighbor only.
func wellDepth(b *Board, col int) int {
	left := BoardHeight
	if col > 0 {
		left = b.Height(col - 1)
	}
	right := BoardHeight
	if col < BoardWidth-1 {
		right = b.Height(col + 1)
	}
	ceil := left
	if right < ceil {
		ceil = right
	}
	depth := ceil - b.Height(col)
	if depth < 0 {
		return 0
	}
	return depth
}

// cumulativeWells sums, over every column, depth*(depth+1)/2 for that
// column's well depth — deep narrow wells are penalized superlinearly,
// since filling them usually requires an I-piece dropped vertically.
func cumulativeWells(b *Board) int {
	total := 0
	for c := 0; c < BoardWidth; c++ {
		d := wellDepth(b, c)
		total += d * (d + 1) / 2
	}
	return total
}

// landingHeight is the height, measured from the floor, of the row
// containing the bottom-most cell of the bounding box of the piece that
// was just placed at row.
func landingHeight(pattern Pattern, row int) float64 {
	bottom := row + pattern.Rows()
	if bottom > BoardHeight {
		bottom = BoardHeight
	}
	return float64(BoardHeight - bottom)
}

// Weights pairs an ordered feature list with the coefficients a linear
// evaluator multiplies them by.
type Weights struct {
	names  []FeatureName
	values []float64
}

// NewWeights builds a Weights from parallel names/values slices. It
// refuses mismatched lengths and an empty feature list.
func NewWeights(names []FeatureName, values []float64) (Weights, error) {
	if len(names) == 0 {
		return Weights{}, ErrEmptyFeatureList
	}
	if len(names) != len(values) {
		return Weights{}, fmt.Errorf("%w: %d names, %d values", ErrWeightsLength, len(names), len(values))
	}
	return Weights{names: append([]FeatureName(nil), names...), values: append([]float64(nil), values...)}, nil
}

// NewWeightsFromValues builds a Weights against defaultFeatureOrder.
func NewWeightsFromValues(values []float64) (Weights, error) {
	return NewWeights(defaultFeatureOrder, values)
}

// Names returns the feature list this Weights is zipped against.
func (w Weights) Names() []FeatureName { return w.names }

// Values returns the raw coefficients, in Names order.
func (w Weights) Values() []float64 { return append([]float64(nil), w.values...) }

// Len reports how many features this Weights scores.
func (w Weights) Len() int { return len(w.values) }

// featureValue looks up the value of a named feature within a Features
// struct, honoring whatever order/subset w.names specifies.
func featureValue(f Features, name FeatureName) (float64, error) {
	switch name {
	case FeatureRowTransitions:
		return f.RowTransitions, nil
	case FeatureColTransitions:
		return f.ColTransitions, nil
	case FeaturePits:
		return f.Pits, nil
	case FeatureCumulativeWells:
		return f.CumulativeWells, nil
	case FeatureLandingHeight:
		return f.LandingHeight, nil
	case FeatureErodedCells:
		return f.ErodedCells, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
	}
}

// Evaluate scores f as the dot product of w's coefficients with the named
// feature values, in whatever order/subset w.Names specifies.
func (w Weights) Evaluate(f Features) (float64, error) {
	total := 0.0
	for i, name := range w.names {
		v, err := featureValue(f, name)
		if err != nil {
			return 0, err
		}
		total += w.values[i] * v
	}
	return total, nil
}

// presetScore and presetInfinite are the two fixed weight vectors, tuned
// respectively for raw score and for indefinite survival. Order matches
// defaultFeatureOrder: row_trans, col_trans, pits, cuml_wells,
// landing_height, eroded_cells.
var presetScore = []float64{-2.7, -6.8, -12.7, -0.4, -3.8, -10.0}
var presetInfinite = []float64{-2.4, -8.4, -10.0, -3.5, -5.0, 10.0}

// WeightsPreset builds a Weights from a named fixed preset: "score" or
// "infinite".
func WeightsPreset(name string) (Weights, error) {
	switch name {
	case "score":
		return NewWeightsFromValues(presetScore)
	case "infinite":
		return NewWeightsFromValues(presetInfinite)
	default:
		return Weights{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// WeightsMap is the name→value exchange format Weights marshals to and
// from for serialization or UI display.
type WeightsMap map[FeatureName]float64

// ToMap converts w to its name→value exchange form.
func (w Weights) ToMap() WeightsMap {
	m := make(WeightsMap, len(w.names))
	for i, name := range w.names {
		m[name] = w.values[i]
	}
	return m
}

// WeightsFromMap builds a Weights from a WeightsMap, ordered by
// defaultFeatureOrder. Every one of the six canonical features must be
// present.
func WeightsFromMap(m WeightsMap) (Weights, error) {
	values := make([]float64, len(defaultFeatureOrder))
	for i, name := range defaultFeatureOrder {
		v, ok := m[name]
		if !ok {
			return Weights{}, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
		}
		values[i] = v
	}
	return NewWeightsFromValues(values)
}
