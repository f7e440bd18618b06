package bc1

// maxInputTexels is the number of texels in a 4x4 BC1 block.
const maxInputTexels = 16

// isBlack reports whether c should be treated as near-black for the
// purposes of 3-color/punch-through mode eligibility. The large 1/8
// threshold (rather than a tight epsilon) improves compression in
// practice; it only controls whether a texel is excluded from PCA and
// the 3-color SAT, not whether it is literally rendered as black.
//
// Ported from icbc.h's is_black.
func isBlack(c rgb) bool {
	return c.r < 1.0/8 && c.g < 1.0/8 && c.b < 1.0/8
}

// reduceColors deduplicates near-identical input colors (within 1/256 in
// every channel), accumulating their weights, and reports whether any
// input texel with positive weight was near-black. Texels with
// non-positive weight are dropped. This is strictly a speedup for the
// O(n^2) sort and partition enumeration downstream; it is lossy only
// within the 1/256 threshold.
//
// Ported from icbc.h's reduce_colors.
func reduceColors(colors []rgb, weights []float32) (reduced []rgb, reducedWeights []float32, anyBlack bool) {
	const threshold = 1.0 / 256

	reduced = make([]rgb, 0, len(colors))
	reducedWeights = make([]float32, 0, len(colors))

	for i, c := range colors {
		w := weights[i]
		if w <= 0 {
			continue
		}

		matched := false
		for j := range reduced {
			if equalWithin(reduced[j], c, threshold) {
				reducedWeights[j] += w
				matched = true
				break
			}
		}
		if !matched {
			reduced = append(reduced, c)
			reducedWeights = append(reducedWeights, w)
		}

		if isBlack(c) {
			anyBlack = true
		}
	}

	assert(len(reduced) <= len(colors), "reduced count exceeds input count")
	return reduced, reducedWeights, anyBlack
}

// skipBlacks returns the subset of colors/weights that are not near-black,
// used to rebuild the SAT for 3-color mode when any_black is set (spec.md
// §4.9 step 5: punch-through texels are excluded from the cluster fit that
// chooses the two visible endpoints).
//
// Ported from icbc.h's skip_blacks.
func skipBlacks(colors []rgb, weights []float32) (kept []rgb, keptWeights []float32) {
	kept = make([]rgb, 0, len(colors))
	keptWeights = make([]float32, 0, len(weights))
	for i, c := range colors {
		if isBlack(c) {
			continue
		}
		kept = append(kept, c)
		keptWeights = append(keptWeights, weights[i])
	}
	return kept, keptWeights
}
