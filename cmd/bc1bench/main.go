// bc1bench benchmarks the bc1 encoder over synthetic block workloads.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/aet/icbc/bc1"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "encode":
		encodeCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  bc1bench encode [-blocks N] [-iters N] [-hq] [-three-color] [-cpuprofile file] [-memprofile file]")
}

func encodeCmd(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	var (
		numBlocks  int
		iters      int
		hq         bool
		threeColor bool
		cpuprofile string
		memprofile string
		seed       int64
	)
	fs.IntVar(&numBlocks, "blocks", 4096, "number of synthetic 4x4 blocks to generate")
	fs.IntVar(&iters, "iters", 10, "number of passes over the block set")
	fs.BoolVar(&hq, "hq", true, "run the bounded local-search refinement pass")
	fs.BoolVar(&threeColor, "three-color", true, "allow punch-through (3-color) encodings")
	fs.StringVar(&cpuprofile, "cpuprofile", "", "optional CPU profile output path")
	fs.StringVar(&memprofile, "memprofile", "", "optional memory profile output path")
	fs.Int64Var(&seed, "seed", 1, "synthetic block RNG seed")
	_ = fs.Parse(args)

	if numBlocks <= 0 || iters <= 0 {
		fmt.Fprintln(os.Stderr, "-blocks and -iters must be > 0")
		os.Exit(2)
	}

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	rng := rand.New(rand.NewSource(seed))
	blocks := make([][]bc1.Color, numBlocks)
	weights := make([]float32, 16)
	for i := range weights {
		weights[i] = 1
	}
	for i := range blocks {
		blocks[i] = syntheticBlock(rng)
	}

	bc1.Init()

	start := time.Now()
	var totalErr float64
	for iter := 0; iter < iters; iter++ {
		for _, colors := range blocks {
			_, err := bc1.Compress(colors, weights, [3]float32{1, 1, 1}, threeColor, hq, bc1.DecoderReference)
			totalErr += float64(err)
		}
	}
	elapsed := time.Since(start)

	totalBlocks := numBlocks * iters
	fmt.Printf("blocks=%d iters=%d total=%d elapsed=%s blocks/sec=%.0f avg_err=%.6f\n",
		numBlocks, iters, totalBlocks, elapsed, float64(totalBlocks)/elapsed.Seconds(), totalErr/float64(totalBlocks))

	if memprofile != "" {
		f, err := os.Create(memprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// syntheticBlock generates a plausible 4x4 block: two random endpoint
// colors blended with random per-texel interpolation weight, occasionally
// degenerating to a uniform block, exercising both the cluster-fit and
// single-color code paths.
func syntheticBlock(rng *rand.Rand) []bc1.Color {
	a := bc1.Color{R: rng.Float32(), G: rng.Float32(), B: rng.Float32()}
	if rng.Float32() < 0.1 {
		colors := make([]bc1.Color, 16)
		for i := range colors {
			colors[i] = a
		}
		return colors
	}

	b := bc1.Color{R: rng.Float32(), G: rng.Float32(), B: rng.Float32()}
	colors := make([]bc1.Color, 16)
	for i := range colors {
		t := rng.Float32()
		colors[i] = bc1.Color{
			R: a.R + (b.R-a.R)*t,
			G: a.G + (b.G-a.G)*t,
			B: a.B + (b.B-a.B)*t,
		}
	}
	return colors
}
