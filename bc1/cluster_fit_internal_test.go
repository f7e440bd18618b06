package bc1

import "testing"

func TestInitClusterTablesCountsGrowMonotonically(t *testing.T) {
	initClusterTables()
	for i := 1; i < maxInputTexels; i++ {
		if fourClusterTotal[i] < fourClusterTotal[i-1] {
			t.Fatalf("fourClusterTotal not monotonic at %d: %d < %d", i, fourClusterTotal[i], fourClusterTotal[i-1])
		}
		if threeClusterTotal[i] < threeClusterTotal[i-1] {
			t.Fatalf("threeClusterTotal not monotonic at %d: %d < %d", i, threeClusterTotal[i], threeClusterTotal[i-1])
		}
	}
	if fourClusterTotal[maxInputTexels-1] == 0 {
		t.Fatalf("expected a nonzero number of 4-cluster partitions at full count")
	}
	if threeClusterTotal[maxInputTexels-1] == 0 {
		t.Fatalf("expected a nonzero number of 3-cluster partitions at full count")
	}
}

func TestSolve4DegenerateSingleAlphaIsSingular(t *testing.T) {
	// Every weight concentrated in w0 (alpha=1 for every texel) makes the
	// 2x2 system singular: there is nothing for beta to explain.
	_, ok := solve4(rgb{0.5, 0.5, 0.5}, rgb{}, rgb{}, 4, 0, 0, 0, rgb{0.5, 0.5, 0.5}, rgb{1, 1, 1})
	if ok {
		t.Fatalf("expected a singular system when all weight sits in the first cluster")
	}
}

func TestClusterFitFourRecoversTwoDistinctColors(t *testing.T) {
	colors := []rgb{
		{1, 0, 0}, {1, 0, 0}, {1, 0, 0}, {1, 0, 0},
		{1, 0, 0}, {1, 0, 0}, {1, 0, 0}, {1, 0, 0},
		{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1},
		{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1},
	}
	weights := make([]float32, len(colors))
	for i := range weights {
		weights[i] = 1
	}

	sat, count := computeSAT(colors, weights)
	start, end := clusterFitFour(sat, count, rgb{1, 1, 1})

	// Endpoints should land on (or extremely near) the two source colors,
	// in either order.
	red := rgb{1, 0, 0}
	blue := rgb{0, 0, 1}
	okOrder1 := equalWithin(start, red, 0.05) && equalWithin(end, blue, 0.05)
	okOrder2 := equalWithin(start, blue, 0.05) && equalWithin(end, red, 0.05)
	if !okOrder1 && !okOrder2 {
		t.Fatalf("cluster fit did not recover the two source colors: start=%v end=%v", start, end)
	}
}
