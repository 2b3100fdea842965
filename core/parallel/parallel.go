// Package parallel splits row-wise work into contiguous chunks.
package parallel

import (
	"runtime"
	"sync"
)

// DefaultThreshold is the row count at or below which work runs on the
// calling goroutine.
const DefaultThreshold = 1000

// Parallelize splits [0, items) into at most runtime.NumCPU() contiguous
// chunks and calls fn for each chunk on its own goroutine. It returns once
// every chunk has been processed. fn must only touch rows in its own range.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > items {
		workers = items
	}
	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunk {
		end := start + chunk
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) sequentially when items is at
// most threshold, and falls back to Parallelize otherwise.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
