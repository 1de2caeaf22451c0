package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"bitlife/pkg/core"
	"bitlife/pkg/sims/life"
)

func main() {
	width := flag.Int("w", 1024, "board width in cells")
	height := flag.Int("h", 1024, "board height in cells")
	gens := flag.Int("gens", 1000, "generations to simulate per run")
	runs := flag.Int("runs", 3, "number of timed runs")
	seed := flag.Int64("seed", 1337, "seed for the random board")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	flag.Parse()

	if *gens <= 0 || *runs <= 0 {
		log.Fatalf("gens and runs must be positive (gens=%d runs=%d)", *gens, *runs)
	}

	if *cpuProfile != "" {
		stop, err := startCPUProfile(*cpuProfile)
		if err != nil {
			log.Fatalf("cpu profile: %v", err)
		}
		defer stop()
	}

	cells := float64(*width) * float64(*height)
	fmt.Printf("Benchmark: %d generations on %dx%d grid, seed %d\n\n", *gens, *width, *height, *seed)

	var best time.Duration
	for run := 1; run <= *runs; run++ {
		g, err := life.NewEmpty(*width, *height)
		if err != nil {
			log.Fatal(err)
		}
		g.RandomInit(core.NewRNG(*seed))
		initial := g.Population()

		start := time.Now()
		for i := 0; i < *gens; i++ {
			g.Advance()
		}
		elapsed := time.Since(start)
		if best == 0 || elapsed < best {
			best = elapsed
		}

		perGen := elapsed / time.Duration(*gens)
		fmt.Printf("  run %d: %v  (%v/gen, %.1f Mcells/s)  population %d -> %d\n",
			run, elapsed, perGen, cells*float64(*gens)/elapsed.Seconds()/1e6, initial, g.Population())
	}

	fmt.Printf("\n  best: %.1f generations/s\n", float64(*gens)/best.Seconds())
}

// startCPUProfile begins writing a CPU profile to path.
func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}, nil
}
