package iconcss

import (
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps workers; resolution is CPU-bound and short.
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for the host process.
	cpuDivisor = 2
)

// Result is the outcome of resolving one class name in a batch.
type Result struct {
	Class        string
	Declarations Declarations
	Err          error
}

// ResolveAll resolves class names concurrently with at most workers
// goroutines (0 = auto, see ResolvePoolSize). Results keep the input order.
// Each collection is still loaded at most once.
func (r *Resolver) ResolveAll(classes []string, workers int) []Result {
	results := make([]Result, len(classes))
	if len(classes) == 0 {
		return results
	}

	n := min(ResolvePoolSize(workers), len(classes))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				decls, err := r.ResolveClass(classes[i])
				results[i] = Result{Class: classes[i], Declarations: decls, Err: err}
			}
		}()
	}

	for i := range classes {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// ResolvePoolSize determines the worker count.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers when the CLI runs
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
