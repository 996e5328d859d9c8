// Package parallel splits row loops across goroutines for the matrix kernels.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how a row loop is split.
type Config struct {
	Enabled      bool // Split work across goroutines at all.
	NumWorkers   int  // Upper bound on goroutines per loop.
	MinChunkSize int  // Rows handed to one goroutine at minimum.
}

// DefaultConfig uses one worker per CPU and only splits loops of at least
// MinChunkSize rows, so small matrices stay on the calling goroutine.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// Sequential returns a config that never leaves the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// For calls f(i) for every i in [0, n) and returns once all calls finish.
// Each index is visited exactly once, so f may write to index-owned storage
// without synchronization.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < 2*cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
