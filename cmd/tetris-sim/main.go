// Command tetris-sim runs the heuristic AI for one headless game using the
// "score" weights preset and prints the final stats and board.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/herbhall/tetris-ai/internal/tetris"
)

func main() {
	sim, err := tetris.NewSimulatorWithPreset("score")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	sim.Run()
	elapsed := time.Since(start)

	stats := sim.Stats()
	fmt.Printf("steps: %d, lines: %d, score: %d, level: %d, elapsed: %.2fs, steps/sec: %.0f\n",
		stats.Steps, stats.Lines, stats.Score, stats.Level, elapsed.Seconds(), float64(stats.Steps)/elapsed.Seconds())
	board := sim.Board()
	fmt.Println(board.String())
}
