package apitest

import (
	"context"
	"net/url"
	"sync"
	"time"
)

// TimedResult is the outcome of one request in a parallel batch. Response
// is nil when Err is set.
type TimedResult struct {
	Response *Response
	Err      error
	Elapsed  time.Duration
}

// ParallelGet issues n GET requests to the same endpoint through a fixed
// pool of workers, for response-time demonstrations. It waits for every
// request to finish; results carry no ordering guarantee relative to
// request start.
func ParallelGet(ctx context.Context, c *Client, path string, params url.Values, n, workers int) []TimedResult {
	if workers <= 0 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	jobs := make(chan int)
	results := make([]TimedResult, n)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				start := time.Now()
				resp, err := c.Get(ctx, path, params)
				results[i] = TimedResult{
					Response: resp,
					Err:      err,
					Elapsed:  time.Since(start),
				}
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
