// Package simulation runs batches of independent matches and aggregates
// per-strategy win statistics.
package simulation

import (
	"fmt"
	"math/rand"
	"time"

	"bancosim/engine"
)

// GameResult holds the outcome of a single simulated match.
type GameResult struct {
	WinnerArchetype engine.Archetype
	Timeout         bool
	Rounds          int
	DurationNs      uint64
	Error           string
}

// AggregatedStats summarizes a batch of match results. Wins is indexed by
// archetype.
type AggregatedStats struct {
	TotalGames    int
	Timeouts      int
	TotalRounds   int
	AvgRounds     float64
	AvgDurationNs uint64
	Wins          [engine.NumArchetypes]int
}

// WinRate returns the percentage of the batch won by the archetype.
func (s AggregatedStats) WinRate(a engine.Archetype) float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return float64(s.Wins[a]) / float64(s.TotalGames) * 100
}

// BestArchetype returns the archetype with the most wins. Ties keep the
// earlier archetype in precedence order.
func (s AggregatedStats) BestArchetype() engine.Archetype {
	best := engine.Archetypes[0]
	for _, a := range engine.Archetypes[1:] {
		if s.Wins[a] > s.Wins[best] {
			best = a
		}
	}
	return best
}

// RunSingleGame plays one match to completion: a fresh board from the
// dataset and four fresh players, one per archetype, in an order shuffled
// by the per-game rng. Nothing survives the call, so matches can never leak
// state into each other.
func RunSingleGame(records []engine.PropertyRecord, seed uint64) GameResult {
	start := time.Now()
	rng := rand.New(rand.NewSource(int64(seed)))

	board, err := engine.NewBoard(records)
	if err != nil {
		return GameResult{Error: err.Error()}
	}

	players := make([]*engine.Player, 0, engine.NumArchetypes)
	for i, a := range engine.Archetypes {
		name := fmt.Sprintf("Player%d", i+1)
		players = append(players, engine.NewPlayer(i, name, engine.StartingBalance, engine.NewStrategy(a), rng))
	}
	rng.Shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})

	game, err := engine.NewGame(players, board)
	if err != nil {
		return GameResult{Error: err.Error()}
	}

	result := game.Play()

	return GameResult{
		WinnerArchetype: result.WinnerArchetype,
		Timeout:         result.Timeout,
		Rounds:          result.Rounds,
		DurationNs:      uint64(time.Since(start).Nanoseconds()),
	}
}

// RunBatch plays numGames independent matches serially and aggregates their
// outcomes. Per-game seeds derive from the batch seed, so a batch is
// reproducible. A failed game aborts the whole batch: a malformed setup is
// a systemic bug, not a per-game condition.
func RunBatch(records []engine.PropertyRecord, numGames int, seed uint64) (AggregatedStats, error) {
	if numGames <= 0 {
		return AggregatedStats{}, fmt.Errorf("numGames must be positive, got %d", numGames)
	}

	results := make([]GameResult, numGames)

	rng := rand.New(rand.NewSource(int64(seed)))

	for i := 0; i < numGames; i++ {
		gameSeed := rng.Uint64()
		results[i] = RunSingleGame(records, gameSeed)
		if results[i].Error != "" {
			return AggregatedStats{}, fmt.Errorf("game %d: %s", i, results[i].Error)
		}
	}

	return aggregateResults(results), nil
}

// aggregateResults folds match results into batch counters.
func aggregateResults(results []GameResult) AggregatedStats {
	stats := AggregatedStats{TotalGames: len(results)}

	totalDuration := uint64(0)
	for _, result := range results {
		if result.Timeout {
			stats.Timeouts++
		}
		stats.TotalRounds += result.Rounds
		stats.Wins[result.WinnerArchetype]++
		totalDuration += result.DurationNs
	}

	if stats.TotalGames > 0 {
		stats.AvgRounds = float64(stats.TotalRounds) / float64(stats.TotalGames)
		stats.AvgDurationNs = totalDuration / uint64(stats.TotalGames)
	}

	return stats
}
