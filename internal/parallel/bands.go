// Package parallel splits per-pixel work across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// MinBandRows is the smallest number of rows worth handing to a goroutine.
const MinBandRows = 32

// Bands calls fn for disjoint row ranges [y0, y1) that together cover
// [0, height), and returns when all calls are done. Small heights run on the
// calling goroutine. fn must only touch rows in its range.
func Bands(height int, fn func(y0, y1 int)) {
	bandsN(height, runtime.GOMAXPROCS(0), fn)
}

// bandsN is Bands with an explicit worker count. workers <= 0 uses
// GOMAXPROCS.
func bandsN(height, workers int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, (height+MinBandRows-1)/MinBandRows)
	if workers <= 1 {
		fn(0, height)
		return
	}

	rows := (height + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += rows {
		y1 := min(y0+rows, height)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(y0, y1)
		}()
	}
	wg.Wait()
}
