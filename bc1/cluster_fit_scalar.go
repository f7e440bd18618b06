//go:build !goexperiment.simd || !amd64

package bc1

// clusterFitFour runs the 4-cluster fit over every partition of the
// count sorted colors in sat, returning the endpoints minimizing the
// weighted closed-form error. Tie-break: the first-encountered partition
// wins (the partition table's lexicographic order makes this
// deterministic), implemented by the strict `<` comparison in
// clusterFitFourScalar.
//
// This is the scalar baseline; see cluster_fit_simd_amd64.go for the
// vectorized equivalent used when built with goexperiment.simd on amd64.
//
// Ported from icbc.h's cluster_fit_four scalar path.
func clusterFitFour(sat summedAreaTable, count int, metricSqr rgb) (start, end rgb) {
	return clusterFitFourScalar(sat, count, metricSqr)
}

// clusterFitThree is the 3-cluster analog of clusterFitFour.
//
// Ported from icbc.h's cluster_fit_three scalar path.
func clusterFitThree(sat summedAreaTable, count int, metricSqr rgb) (start, end rgb) {
	return clusterFitThreeScalar(sat, count, metricSqr)
}
