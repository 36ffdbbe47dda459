package bench

import "sync"

// runIndexed runs fn(0..n-1) with at most maxWorkers concurrently. Callers
// slot results by index, so completion order never affects output order.
func runIndexed(maxWorkers, n int, fn func(i int)) {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxWorkers)

	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(i)
		}(i)
	}
	wg.Wait()
}
