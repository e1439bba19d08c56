package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	configcache "github.com/releng-tools/configcache"
	"github.com/releng-tools/configcache/metrics"
)

// ================= FACTORY =================

// SlowFactory stands in for the real release-configuration builder: it
// "assembles" a payload after a simulated I/O delay and counts how many
// times it actually ran.
type SlowFactory struct {
	mu     sync.Mutex
	builds int
	delay  time.Duration
}

func NewSlowFactory(delay time.Duration) *SlowFactory {
	return &SlowFactory{delay: delay}
}

func (f *SlowFactory) Build(ctx context.Context, release string) (any, error) {
	time.Sleep(f.delay)

	f.mu.Lock()
	f.builds++
	n := f.builds
	f.mu.Unlock()

	fmt.Printf("FACTORY → build #%d for release %s\n", n, release)
	return fmt.Sprintf("config[%s]", release), nil
}

func (f *SlowFactory) Builds() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.builds
}

// ================= MAIN =================

func main() {
	ctx := context.Background()

	fmt.Println("\n==================== SYSTEM BOOT ====================")
	fmt.Println("EVICTION POLICY : LRU")
	fmt.Println("TTL STRATEGY    : ExpireAfterWrite (2s)")
	fmt.Println("CAPACITY        : 3 releases")
	fmt.Println("METRICS         : prometheus on :9090")

	factory := NewSlowFactory(100 * time.Millisecond)
	exporter := metrics.NewExporter("configcache_demo")

	cache, err := configcache.New(3, 2*time.Second, factory,
		configcache.WithObserver(exporter),
		configcache.WithCleanupInterval(500*time.Millisecond),
	)
	if err != nil {
		panic(err)
	}

	promServer := metrics.NewServer(":9090")
	promServer.StartAsync()

	// ====================================================
	fmt.Println("\n==================== 1) CACHE MISS ====================")
	v, _ := cache.Get(ctx, "4.19.1")
	fmt.Println("CACHE  → GET 4.19.1 =", v)

	// ====================================================
	fmt.Println("\n==================== 2) CACHE HIT ====================")
	v, _ = cache.Get(ctx, "4.19.1")
	fmt.Println("CACHE  → GET 4.19.1 =", v)

	// ====================================================
	fmt.Println("\n==================== 3) SINGLE-FLIGHT ====================")

	wg := sync.WaitGroup{}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			val, _ := cache.Get(ctx, "4.18.5")
			fmt.Printf("GOROUTINE-%d → GET 4.18.5 = %v\n", id, val)
		}(i)
	}
	wg.Wait()
	fmt.Println("FACTORY → total builds so far:", factory.Builds())

	// ====================================================
	fmt.Println("\n==================== 4) WARM ====================")
	_ = cache.Warm(ctx, []string{"4.17.10", "4.18.5"})
	fmt.Println("CACHE  → warmed 4.17.10 (miss) and 4.18.5 (hit)")

	// ====================================================
	fmt.Println("\n==================== 5) EVICTION ====================")
	v, _ = cache.Get(ctx, "4.16.15") // 4th release, capacity 3: LRU goes
	fmt.Println("CACHE  → GET 4.16.15 =", v)

	// ====================================================
	fmt.Println("\n==================== 6) TTL EXPIRATION ====================")
	time.Sleep(3 * time.Second)
	v, _ = cache.Get(ctx, "4.16.15")
	fmt.Println("CACHE  → GET 4.16.15 after TTL =", v)

	// ====================================================
	fmt.Println("\n==================== 7) INVALIDATE ====================")
	cache.Invalidate("4.16.15")
	fmt.Println("CACHE  → INVALIDATE 4.16.15")
	cache.InvalidateAll()
	fmt.Println("CACHE  → INVALIDATE ALL")

	// ====================================================
	fmt.Println("\n==================== STATS ====================")
	stats := cache.Stats()
	fmt.Printf("SIZE       : %d / %d\n", stats.CacheSize, stats.MaxSize)
	fmt.Printf("HITS       : %d\n", stats.Metrics.Hits)
	fmt.Printf("MISSES     : %d\n", stats.Metrics.Misses)
	fmt.Printf("EVICTIONS  : %d\n", stats.Metrics.Evictions)
	fmt.Printf("INVALIDATED: %d\n", stats.Metrics.ManualInvalidations)
	fmt.Printf("HIT RATE   : %.2f%%\n", stats.Metrics.HitRate)

	// ====================================================
	fmt.Println("\n==================== SHUTDOWN ====================")
	cache.Close()
	_ = promServer.Stop()
	fmt.Println("SYSTEM → cache closed cleanly")
}
