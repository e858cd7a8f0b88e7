// Command tetris-train runs the evolutionary trainer for up to 20
// generations under the score criterion, stopping early once the trainer
// is stable, and prints a summary per generation.
package main

import (
	"fmt"

	"github.com/herbhall/tetris-ai/internal/tetris"
	"github.com/herbhall/tetris-ai/internal/trainer"
)

var allFeatures = []tetris.FeatureName{
	tetris.FeatureRowTransitions,
	tetris.FeatureColTransitions,
	tetris.FeaturePits,
	tetris.FeatureCumulativeWells,
	tetris.FeatureLandingHeight,
	tetris.FeatureErodedCells,
}

const generations = 20

func main() {
	t := trainer.New(allFeatures, trainer.ScoreCriterion{})

	gen := 0
	for gen < generations && !t.IsStable() {
		state := t.Step()
		if state.Generation == nil {
			continue
		}
		gen++
		g := state.Generation
		fmt.Printf("Generation %d:\n", gen)
		fmt.Println("---------------------")
		for i, name := range allFeatures {
			fmt.Printf("%-20s\t%+.4f\t(±%.4f)\n", name, g.NewMu[i], g.NewSigma[i])
		}
		fmt.Printf("max=%.1f min=%.1f mean=%.1f\n\n", g.Max, g.Min, g.Mean)
	}
}
