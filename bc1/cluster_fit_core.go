package bc1

// clusterFitFourScalar and clusterFitThreeScalar are the scalar
// partition-evaluation loops shared by the non-SIMD build (see
// cluster_fit_scalar.go) and the SIMD build's runtime fallback on CPUs
// without AVX (see cluster_fit_simd_amd64.go), exactly mirroring the teacher's
// avg_block_core.go / avg_block_simd_amd64.go split.

func clusterFitFourScalar(sat summedAreaTable, count int, metricSqr rgb) (start, end rgb) {
	total := rgb{sat.r[count-1], sat.g[count-1], sat.b[count-1]}
	wSum := sat.w[count-1]

	bestErr := float32(inf)
	var bestStart, bestEnd rgb

	totalOrderCount := fourClusterTotal[count-1]
	for i := 0; i < totalOrderCount; i++ {
		rec := fourCluster[i]

		var x0, x1, x2 rgb
		var w0, w1, w2 float32
		if rec.c0 != 0 {
			k := int(rec.c0) - 1
			x0 = rgb{sat.r[k], sat.g[k], sat.b[k]}
			w0 = sat.w[k]
		}
		if rec.c1 != 0 {
			k := int(rec.c1) - 1
			x1 = rgb{sat.r[k], sat.g[k], sat.b[k]}
			w1 = sat.w[k]
		}
		if rec.c2 != 0 {
			k := int(rec.c2) - 1
			x2 = rgb{sat.r[k], sat.g[k], sat.b[k]}
			w2 = sat.w[k]
		}

		w3 := wSum - w2
		x2 = x2.sub(x1)
		x1 = x1.sub(x0)
		w2 = w2 - w1
		w1 = w1 - w0

		res, ok := solve4(x0, x1, x2, w0, w1, w2, w3, total, metricSqr)
		if ok && res.err < bestErr {
			bestErr = res.err
			bestStart = res.start
			bestEnd = res.end
		}
	}

	return bestStart, bestEnd
}

func clusterFitThreeScalar(sat summedAreaTable, count int, metricSqr rgb) (start, end rgb) {
	total := rgb{sat.r[count-1], sat.g[count-1], sat.b[count-1]}
	wSum := sat.w[count-1]

	bestErr := float32(inf)
	var bestStart, bestEnd rgb

	totalOrderCount := threeClusterTotal[count-1]
	for i := 0; i < totalOrderCount; i++ {
		rec := threeCluster[i]

		var x0, x1 rgb
		var w0, w1 float32
		if rec.c0 != 0 {
			k := int(rec.c0) - 1
			x0 = rgb{sat.r[k], sat.g[k], sat.b[k]}
			w0 = sat.w[k]
		}
		if rec.c1 != 0 {
			k := int(rec.c1) - 1
			x1 = rgb{sat.r[k], sat.g[k], sat.b[k]}
			w1 = sat.w[k]
		}

		w2 := wSum - w1
		x1 = x1.sub(x0)
		w1 = w1 - w0

		res, ok := solve3(x0, x1, w0, w1, w2, total, metricSqr)
		if ok && res.err < bestErr {
			bestErr = res.err
			bestStart = res.start
			bestEnd = res.end
		}
	}

	return bestStart, bestEnd
}
