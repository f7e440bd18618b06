package bc1

import "math"

// summedAreaTable holds, at position i, the prefix sums of weighted R, G,
// B and weight over the first i+1 colors sorted by projection onto the
// principal axis. Positions [count,16) are padded with +Inf so that
// out-of-range partition lookups dominate any error comparison and are
// discarded without explicit masking.
//
// Ported from icbc.h's SummedAreaTable / compute_sat.
type summedAreaTable struct {
	r, g, b, w [maxInputTexels]float32
}

// computeSAT projects colors onto their principal component, stably sorts
// by ascending projection (ties preserve original order via insertion
// sort), and builds the four parallel prefix-sum arrays. Returns the
// (unchanged) color count for convenience.
//
// Ported from icbc.h's compute_sat.
func computeSAT(colors []rgb, weights []float32) (summedAreaTable, int) {
	count := len(colors)
	principal := computePrincipalComponent(colors, weights)

	order := make([]int, count)
	dps := make([]float32, count)
	for i, c := range colors {
		order[i] = i
		dps[i] = c.dot(principal)
	}

	// Stable insertion sort: short inputs (<=16), simplicity over
	// asymptotic complexity matches the teacher's approach of favoring
	// simple scalar loops in block-local hot paths.
	for i := 1; i < count; i++ {
		j := i
		for j > 0 && dps[j] < dps[j-1] {
			dps[j], dps[j-1] = dps[j-1], dps[j]
			order[j], order[j-1] = order[j-1], order[j]
			j--
		}
	}

	var sat summedAreaTable
	if count > 0 {
		w0 := weights[order[0]]
		c0 := colors[order[0]]
		sat.r[0] = c0.r * w0
		sat.g[0] = c0.g * w0
		sat.b[0] = c0.b * w0
		sat.w[0] = w0

		for i := 1; i < count; i++ {
			w := weights[order[i]]
			c := colors[order[i]]
			sat.r[i] = sat.r[i-1] + c.r*w
			sat.g[i] = sat.g[i-1] + c.g*w
			sat.b[i] = sat.b[i-1] + c.b*w
			sat.w[i] = sat.w[i-1] + w
		}
	}

	for i := count; i < maxInputTexels; i++ {
		sat.r[i] = float32(math.Inf(1))
		sat.g[i] = float32(math.Inf(1))
		sat.b[i] = float32(math.Inf(1))
		sat.w[i] = float32(math.Inf(1))
	}

	return sat, count
}
