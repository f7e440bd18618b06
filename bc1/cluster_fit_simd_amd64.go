//go:build goexperiment.simd && amd64

package bc1

import "simd/archsimd"

// clusterFitFour is the SIMD-accelerated equivalent of
// clusterFitFourScalar: it processes the partition table in batches of
// simdWidth records, gathering each batch's SAT lookups into vector
// lanes and evaluating the closed-form 2x2 sums across all lanes at once.
// Lanes past totalOrderCount in the last batch repeat the last valid
// partition record and are skipped by the per-lane solve loop, which
// stops at totalOrderCount.
//
// Falls back to the scalar loop when the CPU lacks AVX, exactly
// mirroring avg_block_simd_amd64.go.
//
// Ported from icbc.h's cluster_fit_four SIMD path (ICBC_USE_AVX2_PERMUTE2).
func clusterFitFour(sat summedAreaTable, count int, metricSqr rgb) (start, end rgb) {
	if !archsimd.X86.AVX() {
		return clusterFitFourScalar(sat, count, metricSqr)
	}

	total := rgb{sat.r[count-1], sat.g[count-1], sat.b[count-1]}
	wSum := sat.w[count-1]

	bestErr := float32(inf)
	var bestStart, bestEnd rgb

	totalOrderCount := fourClusterTotal[count-1]
	for base := 0; base < totalOrderCount; base += simdWidth {
		var lx0r, lx0g, lx0b, lw0 [simdWidth]float32
		var lx1r, lx1g, lx1b, lw1 [simdWidth]float32
		var lx2r, lx2g, lx2b, lw2 [simdWidth]float32

		for l := 0; l < simdWidth; l++ {
			idx := base + l
			if idx >= totalOrderCount {
				idx = totalOrderCount - 1
			}
			rec := fourCluster[idx]

			if rec.c0 != 0 {
				k := int(rec.c0) - 1
				lx0r[l], lx0g[l], lx0b[l], lw0[l] = sat.r[k], sat.g[k], sat.b[k], sat.w[k]
			}
			if rec.c1 != 0 {
				k := int(rec.c1) - 1
				lx1r[l], lx1g[l], lx1b[l], lw1[l] = sat.r[k], sat.g[k], sat.b[k], sat.w[k]
			}
			if rec.c2 != 0 {
				k := int(rec.c2) - 1
				lx2r[l], lx2g[l], lx2b[l], lw2[l] = sat.r[k], sat.g[k], sat.b[k], sat.w[k]
			}
		}

		vw0 := archsimd.LoadFloat32x8(&lw0)
		vw1 := archsimd.LoadFloat32x8(&lw1)
		vw2 := archsimd.LoadFloat32x8(&lw2)
		vwSum := archsimd.BroadcastFloat32x8(wSum)

		vw3 := vwSum.Sub(vw2)
		vw2 = vw2.Sub(vw1)
		vw1 = vw1.Sub(vw0)

		vx1r := archsimd.LoadFloat32x8(&lx1r).Sub(archsimd.LoadFloat32x8(&lx0r))
		vx1g := archsimd.LoadFloat32x8(&lx1g).Sub(archsimd.LoadFloat32x8(&lx0g))
		vx1b := archsimd.LoadFloat32x8(&lx1b).Sub(archsimd.LoadFloat32x8(&lx0b))

		vx2r := archsimd.LoadFloat32x8(&lx2r).Sub(archsimd.LoadFloat32x8(&lx1r))
		vx2g := archsimd.LoadFloat32x8(&lx2g).Sub(archsimd.LoadFloat32x8(&lx1g))
		vx2b := archsimd.LoadFloat32x8(&lx2b).Sub(archsimd.LoadFloat32x8(&lx1b))

		vx0r := archsimd.LoadFloat32x8(&lx0r)
		vx0g := archsimd.LoadFloat32x8(&lx0g)
		vx0b := archsimd.LoadFloat32x8(&lx0b)

		c29 := archsimd.BroadcastFloat32x8(2.0 / 9.0)
		c49 := archsimd.BroadcastFloat32x8(4.0 / 9.0)
		c19 := archsimd.BroadcastFloat32x8(1.0 / 9.0)
		c23 := archsimd.BroadcastFloat32x8(2.0 / 3.0)
		c13 := archsimd.BroadcastFloat32x8(1.0 / 3.0)

		alpha2Sum := vw2.Mul(c19).Add(vw1.Mul(c49)).Add(vw0)
		beta2Sum := vw1.Mul(c19).Add(vw2.Mul(c49)).Add(vw3)
		alphabetaSum := vw1.Add(vw2).Mul(c29)

		alphaxR := vx0r.Add(vx1r.Mul(c23)).Add(vx2r.Mul(c13))
		alphaxG := vx0g.Add(vx1g.Mul(c23)).Add(vx2g.Mul(c13))
		alphaxB := vx0b.Add(vx1b.Mul(c23)).Add(vx2b.Mul(c13))

		totalR := archsimd.BroadcastFloat32x8(total.r)
		totalG := archsimd.BroadcastFloat32x8(total.g)
		totalB := archsimd.BroadcastFloat32x8(total.b)

		betaxR := totalR.Sub(alphaxR)
		betaxG := totalG.Sub(alphaxG)
		betaxB := totalB.Sub(alphaxB)

		denom := alpha2Sum.Mul(beta2Sum).Sub(alphabetaSum.Mul(alphabetaSum))

		var denomArr, a2Arr, b2Arr, abArr [simdWidth]float32
		var axrArr, axgArr, axbArr [simdWidth]float32
		var bxrArr, bxgArr, bxbArr [simdWidth]float32
		denom.Store(&denomArr)
		alpha2Sum.Store(&a2Arr)
		beta2Sum.Store(&b2Arr)
		alphabetaSum.Store(&abArr)
		alphaxR.Store(&axrArr)
		alphaxG.Store(&axgArr)
		alphaxB.Store(&axbArr)
		betaxR.Store(&bxrArr)
		betaxG.Store(&bxgArr)
		betaxB.Store(&bxbArr)

		for l := 0; l < simdWidth; l++ {
			idx := base + l
			if idx >= totalOrderCount {
				break
			}
			if nearlyEqual(denomArr[l], 0) {
				continue
			}
			factor := 1 / denomArr[l]
			alphax := rgb{axrArr[l], axgArr[l], axbArr[l]}
			betax := rgb{bxrArr[l], bxgArr[l], bxbArr[l]}

			a := alphax.scale(b2Arr[l]).sub(betax.scale(abArr[l])).scale(factor)
			b := betax.scale(a2Arr[l]).sub(alphax.scale(abArr[l])).scale(factor)

			a = roundToGrid565(a.saturate())
			b = roundToGrid565(b.saturate())

			e := errorTerm(a, b, a2Arr[l], b2Arr[l], abArr[l], alphax, betax, metricSqr)
			if e < bestErr {
				bestErr = e
				bestStart = a
				bestEnd = b
			}
		}
	}

	return bestStart, bestEnd
}

// clusterFitThree is the 3-cluster analog of clusterFitFour.
//
// Ported from icbc.h's cluster_fit_three SIMD path.
func clusterFitThree(sat summedAreaTable, count int, metricSqr rgb) (start, end rgb) {
	if !archsimd.X86.AVX() {
		return clusterFitThreeScalar(sat, count, metricSqr)
	}

	total := rgb{sat.r[count-1], sat.g[count-1], sat.b[count-1]}
	wSum := sat.w[count-1]

	bestErr := float32(inf)
	var bestStart, bestEnd rgb

	totalOrderCount := threeClusterTotal[count-1]
	for base := 0; base < totalOrderCount; base += simdWidth {
		var lx0r, lx0g, lx0b, lw0 [simdWidth]float32
		var lx1r, lx1g, lx1b, lw1 [simdWidth]float32

		for l := 0; l < simdWidth; l++ {
			idx := base + l
			if idx >= totalOrderCount {
				idx = totalOrderCount - 1
			}
			rec := threeCluster[idx]

			if rec.c0 != 0 {
				k := int(rec.c0) - 1
				lx0r[l], lx0g[l], lx0b[l], lw0[l] = sat.r[k], sat.g[k], sat.b[k], sat.w[k]
			}
			if rec.c1 != 0 {
				k := int(rec.c1) - 1
				lx1r[l], lx1g[l], lx1b[l], lw1[l] = sat.r[k], sat.g[k], sat.b[k], sat.w[k]
			}
		}

		vw0 := archsimd.LoadFloat32x8(&lw0)
		vw1 := archsimd.LoadFloat32x8(&lw1)
		vwSum := archsimd.BroadcastFloat32x8(wSum)

		vw2 := vwSum.Sub(vw1)
		vw1 = vw1.Sub(vw0)

		vx1r := archsimd.LoadFloat32x8(&lx1r).Sub(archsimd.LoadFloat32x8(&lx0r))
		vx1g := archsimd.LoadFloat32x8(&lx1g).Sub(archsimd.LoadFloat32x8(&lx0g))
		vx1b := archsimd.LoadFloat32x8(&lx1b).Sub(archsimd.LoadFloat32x8(&lx0b))

		vx0r := archsimd.LoadFloat32x8(&lx0r)
		vx0g := archsimd.LoadFloat32x8(&lx0g)
		vx0b := archsimd.LoadFloat32x8(&lx0b)

		c025 := archsimd.BroadcastFloat32x8(0.25)
		c05 := archsimd.BroadcastFloat32x8(0.5)

		alphabetaSum := vw1.Mul(c025)
		alpha2Sum := vw0.Add(alphabetaSum)
		beta2Sum := vw2.Add(alphabetaSum)

		alphaxR := vx0r.Add(vx1r.Mul(c05))
		alphaxG := vx0g.Add(vx1g.Mul(c05))
		alphaxB := vx0b.Add(vx1b.Mul(c05))

		totalR := archsimd.BroadcastFloat32x8(total.r)
		totalG := archsimd.BroadcastFloat32x8(total.g)
		totalB := archsimd.BroadcastFloat32x8(total.b)

		betaxR := totalR.Sub(alphaxR)
		betaxG := totalG.Sub(alphaxG)
		betaxB := totalB.Sub(alphaxB)

		denom := alpha2Sum.Mul(beta2Sum).Sub(alphabetaSum.Mul(alphabetaSum))

		var denomArr, a2Arr, b2Arr, abArr [simdWidth]float32
		var axrArr, axgArr, axbArr [simdWidth]float32
		var bxrArr, bxgArr, bxbArr [simdWidth]float32
		denom.Store(&denomArr)
		alpha2Sum.Store(&a2Arr)
		beta2Sum.Store(&b2Arr)
		alphabetaSum.Store(&abArr)
		alphaxR.Store(&axrArr)
		alphaxG.Store(&axgArr)
		alphaxB.Store(&axbArr)
		betaxR.Store(&bxrArr)
		betaxG.Store(&bxgArr)
		betaxB.Store(&bxbArr)

		for l := 0; l < simdWidth; l++ {
			idx := base + l
			if idx >= totalOrderCount {
				break
			}
			if nearlyEqual(denomArr[l], 0) {
				continue
			}
			factor := 1 / denomArr[l]
			alphax := rgb{axrArr[l], axgArr[l], axbArr[l]}
			betax := rgb{bxrArr[l], bxgArr[l], bxbArr[l]}

			a := alphax.scale(b2Arr[l]).sub(betax.scale(abArr[l])).scale(factor)
			b := betax.scale(a2Arr[l]).sub(alphax.scale(abArr[l])).scale(factor)

			a = roundToGrid565(a.saturate())
			b = roundToGrid565(b.saturate())

			e := errorTerm(a, b, a2Arr[l], b2Arr[l], abArr[l], alphax, betax, metricSqr)
			if e < bestErr {
				bestErr = e
				bestStart = a
				bestEnd = b
			}
		}
	}

	return bestStart, bestEnd
}
