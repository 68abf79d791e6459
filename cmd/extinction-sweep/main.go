// Command extinction-sweep runs many random boards headlessly and reports how
// long they live: how many die out (and would trigger the recovery reseed),
// how many settle into still lifes or oscillators, and which seeds last
// longest.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"lifeboard/internal/board"
	"lifeboard/internal/core"
	"lifeboard/internal/debounce"
	"lifeboard/internal/entropy"
)

type outcome uint8

const (
	extinct outcome = iota
	settled
	running
)

func (o outcome) String() string {
	switch o {
	case extinct:
		return "extinct"
	case settled:
		return "settled"
	default:
		return "running"
	}
}

type seedResult struct {
	seed    int64
	outcome outcome
	frame   int
	period  int
	peak    int
	err     error
}

func main() {
	seeds := flag.Int("seeds", 10000, "number of random boards to simulate")
	first := flag.Int64("first", 1, "first seed")
	frames := flag.Int("frames", 512, "frame limit per board")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	fmt.Printf("Sweeping %d seeds from %d (%d workers, %d frames)\n", *seeds, *first, *workers, *frames)

	jobs := make(chan int64)
	results := make(chan seedResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(seed, *frames)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *first + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []seedResult
	counts := map[outcome]int{}
	lifetimes := map[int]int{}
	periods := map[int]int{}
	for res := range results {
		if res.err != nil {
			log.Fatalf("seed %d: %v", res.seed, res.err)
		}
		all = append(all, res)
		counts[res.outcome]++
		switch res.outcome {
		case extinct:
			lifetimes[res.frame]++
		case settled:
			periods[res.period]++
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].frame != all[j].frame {
			return all[i].frame > all[j].frame
		}
		return all[i].seed < all[j].seed
	})
	elapsed := time.Since(start)

	total := len(all)
	fmt.Printf("\nOutcomes (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, o := range []outcome{extinct, settled, running} {
		fmt.Printf("  %-8s %6d (%5.1f%%)\n", o, counts[o], percent(counts[o], total))
	}

	fmt.Println("\nGenerations until extinction:")
	for _, k := range sortedKeys(lifetimes) {
		fmt.Printf("  %4d %6d\n", k, lifetimes[k])
	}

	fmt.Println("\nSettled periods:")
	for _, k := range sortedKeys(periods) {
		fmt.Printf("  %4d %6d\n", k, periods[k])
	}

	fmt.Println("\nLongest transients:")
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) seed=%d %s at frame %d period=%d peak=%d\n",
			i+1, res.seed, res.outcome, res.frame, res.period, res.peak)
	}
}

// runSeed presses button A on the first frame so the board starts from the
// seed's random pattern, then runs until the recovery hold starts, a board
// repeats, or the frame limit is hit.
func runSeed(seed int64, limit int) seedResult {
	res := seedResult{seed: seed, outcome: running, frame: limit}
	cfg := board.Config{InvertHold: debounce.DefaultWidth, RecoveryHold: debounce.DefaultWidth}
	ctrl, err := board.New(cfg, board.Peripherals{
		ButtonA: &firstFrame{},
		ButtonB: released{},
		Display: discardDisplay{},
		Entropy: entropy.NewFixed(seed),
	})
	if err != nil {
		res.err = err
		return res
	}

	seen := map[core.Grid]int{}
	for frame := 0; frame < limit; frame++ {
		if err := ctrl.Frame(); err != nil {
			res.err = err
			return res
		}
		if ctrl.RecoveryState().Mode == debounce.Holding {
			res.outcome = extinct
			res.frame = frame
			return res
		}
		g := ctrl.Grid()
		if alive := g.Alive(); alive > res.peak {
			res.peak = alive
		}
		if prev, ok := seen[g]; ok {
			res.outcome = settled
			res.frame = prev
			res.period = frame - prev
			return res
		}
		seen[g] = frame
	}
	return res
}

type firstFrame struct{ done bool }

func (f *firstFrame) Pressed() (bool, error) {
	if f.done {
		return false, nil
	}
	f.done = true
	return true, nil
}

type released struct{}

func (released) Pressed() (bool, error) { return false, nil }

type discardDisplay struct{}

func (discardDisplay) Show(core.Grid, time.Duration) error { return nil }

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
