package tetris

import "errors"

// Sentinel errors for host-supplied input that is refused outright rather
// than retried: invalid board text, an out-of-range piece index, an
// unknown preset or feature name, or a weight vector whose length doesn't
// match the feature list it's zipped against.
var (
	ErrInvalidPieceIndex = errors.New("tetris: piece index out of range")
	ErrUnknownFeature    = errors.New("tetris: unknown feature name")
	ErrUnknownPreset     = errors.New("tetris: unknown weights preset")
	ErrWeightsLength     = errors.New("tetris: weights length does not match feature list")
	ErrEmptyFeatureList  = errors.New("tetris: feature list must not be empty")
)
