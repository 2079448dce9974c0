// Command bench runs a synthetic push/pop workload against Deque (or,
// with -target=boundedset, an Add-only workload against BoundedOrderedSet)
// and exposes a Prometheus metrics endpoint plus an optional pprof one.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gbrey/gridgain/boundedset"
	"github.com/gbrey/gridgain/deque"
	"github.com/gbrey/gridgain/internal/util"
	pmet "github.com/gbrey/gridgain/metrics/prom"
)

func main() {
	var (
		target   = flag.String("target", "deque", "what to benchmark: deque | boundedset")
		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		pushPct  = flag.Int("push", 50, "push/add percentage [0..100] (deque only; boundedset is add-only)")
		preload  = flag.Int("preload", 10_000, "preload elements before the timed run")
		boundMax = flag.Int("max", 1_000, "BoundedOrderedSet.Max (boundedset target only)")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "random seed")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	metrics := pmet.New(nil, "gridgain", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	var ops, pushes, pops uint64
	start := time.Now()
	var wg sync.WaitGroup

	switch *target {
	case "deque":
		d := deque.NewWithMetrics[int](metrics)
		for i := 0; i < *preload; i++ {
			_ = d.PushLast(i + 1)
		}

		wg.Add(workersN)
		for w := 0; w < workersN; w++ {
			w := w
			go func() {
				defer wg.Done()
				r := rand.New(rand.NewSource(*seed + int64(w)*9973))
				i := 0
				for {
					select {
					case <-ctx.Done():
						return
					default:
					}
					atomic.AddUint64(&ops, 1)
					if int(r.Int31n(100)) < *pushPct {
						if r.Intn(2) == 0 {
							_ = d.PushFirst(i + 1)
						} else {
							_ = d.PushLast(i + 1)
						}
						atomic.AddUint64(&pushes, 1)
					} else {
						if r.Intn(2) == 0 {
							d.PollFirst()
						} else {
							d.PollLast()
						}
						atomic.AddUint64(&pops, 1)
					}
					i++
				}
			}()
		}
		wg.Wait()
		elapsed := time.Since(start)
		report(elapsed, ops, pushes, pops, workersN, *seed)
		fmt.Printf("Deque.SizeApprox()=%d\n", d.SizeApprox())

	case "boundedset":
		s := boundedset.New(boundedset.Options[int]{
			Max:        *boundMax,
			Comparator: util.Natural[int](),
			Metrics:    metrics,
		})
		for i := 0; i < *preload; i++ {
			s.Add(i)
		}

		wg.Add(workersN)
		for w := 0; w < workersN; w++ {
			w := w
			go func() {
				defer wg.Done()
				base := *preload + w*1_000_000
				i := 0
				for {
					select {
					case <-ctx.Done():
						return
					default:
					}
					atomic.AddUint64(&ops, 1)
					s.Add(base + i)
					atomic.AddUint64(&pushes, 1)
					i++
				}
			}()
		}
		wg.Wait()
		elapsed := time.Since(start)
		report(elapsed, ops, pushes, pops, workersN, *seed)
		fmt.Printf("BoundedOrderedSet.Size()=%d (Max=%d)\n", s.Size(), s.Max())

	default:
		log.Fatalf("unknown target: %q (use deque or boundedset)", *target)
	}
}

func report(elapsed time.Duration, ops, pushes, pops uint64, workers int, seed int64) {
	fmt.Printf("workers=%d dur=%v seed=%d\n", workers, elapsed, seed)
	fmt.Printf("ops=%d (%.0f ops/s)  pushes=%d  pops=%d\n",
		ops, float64(ops)/elapsed.Seconds(), pushes, pops)
}
