package main

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	configcache "github.com/releng-tools/configcache"
)

// ================= FACTORY =================

// fastFactory builds a tiny payload with no artificial delay, so the
// benchmark measures the cache rather than the builder.
type fastFactory struct{}

func (fastFactory) Build(ctx context.Context, release string) (any, error) {
	return "config[" + release + "]", nil
}

// ================= BENCHMARK =================

func main() {
	ctx := context.Background()

	fmt.Println("\n================ CACHE LOAD BENCHMARK =================")

	// ---------------- Cache Config ----------------
	const (
		capacity   = 1000
		keySpace   = 800 // < capacity: steady state is all hits
		goroutines = 200
		opsPerG    = 5000
	)

	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Capacity     :", capacity)
	fmt.Println("Key Space    :", keySpace)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops/Goroutine:", opsPerG)
	fmt.Println("---------------------------------")

	c, err := configcache.New(capacity, 10*time.Minute, fastFactory{})
	if err != nil {
		panic(err)
	}

	// ---------------- Warmup ----------------
	fmt.Println("Warming up cache...")
	releases := make([]string, keySpace)
	for i := range releases {
		releases[i] = fmt.Sprintf("4.%d.%d", i%20, i)
	}
	if err := c.Warm(ctx, releases); err != nil {
		panic(err)
	}
	fmt.Println("Warmup complete.")

	// ---------------- Load Test ----------------
	fmt.Println("Running concurrency benchmark...")

	start := time.Now()

	wg := sync.WaitGroup{}
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(int64(id)))
			for j := 0; j < opsPerG; j++ {
				c.Get(ctx, releases[r.Intn(keySpace)])
			}
		}(i)
	}

	wg.Wait()

	duration := time.Since(start)
	totalOps := goroutines * opsPerG
	stats := c.Stats()

	fmt.Println("\n================ RESULTS =================")
	fmt.Printf("Total Operations : %d\n", totalOps)
	fmt.Printf("Total Time       : %v\n", duration)
	fmt.Printf("Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
	fmt.Printf("Hit Rate         : %.2f%%\n", stats.Metrics.HitRate)
	fmt.Println("=========================================")

	c.Close()
}
