package simulation

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"bancosim/engine"
)

// gameJob is a single queued match.
type gameJob struct {
	SimID int
	Seed  uint64
}

// RunBatchParallel plays numGames independent matches on a worker pool.
// Per-game seeds are drawn exactly as in RunBatch and the aggregation is
// pure counting, so a parallel batch with the same seed produces the same
// statistics as a serial one. Each match stays single-threaded; only whole
// matches run concurrently. numWorkers <= 0 uses one worker per CPU.
func RunBatchParallel(records []engine.PropertyRecord, numGames int, seed uint64, numWorkers int) (AggregatedStats, error) {
	if numGames <= 0 {
		return AggregatedStats{}, fmt.Errorf("numGames must be positive, got %d", numGames)
	}
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	jobs := make(chan gameJob, numGames)
	results := make(chan GameResult, numGames)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go worker(&wg, jobs, results, records)
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	for i := 0; i < numGames; i++ {
		jobs <- gameJob{SimID: i, Seed: rng.Uint64()}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]GameResult, 0, numGames)
	for result := range results {
		collected = append(collected, result)
	}

	for _, result := range collected {
		if result.Error != "" {
			return AggregatedStats{}, fmt.Errorf("game failed: %s", result.Error)
		}
	}

	return aggregateResults(collected), nil
}

// worker plays matches from the jobs channel until it is drained.
func worker(wg *sync.WaitGroup, jobs <-chan gameJob, results chan<- GameResult, records []engine.PropertyRecord) {
	defer wg.Done()

	for job := range jobs {
		results <- RunSingleGame(records, job.Seed)
	}
}
