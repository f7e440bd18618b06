package bc1

// centroidEndPoints derives a quick endpoint pair from a block's
// weighted centroid and principal axis: it projects every color onto
// the axis, then sets the two endpoints to the centroid plus/minus that
// axis scaled by the extreme projections. This is a fast, non-iterative
// candidate that Compress scores against the cluster-fit result as-is
// (no least-squares refit is applied to it); it is not used as a
// default or fast-path substitute for the cluster-fit search, per
// SPEC_FULL.md's Open Question decision on that tradeoff.
//
// Ported from icbc.h's centroid_end_points.
func centroidEndPoints(colors []rgb, weights []float32) (start, end rgb) {
	centroid := computeCentroid(colors, weights)
	axis := computePrincipalComponent(colors, weights)

	if axis.lengthSquared() == 0 {
		return centroid, centroid
	}

	minProj := float32(inf)
	maxProj := float32(-inf)
	for _, c := range colors {
		p := c.sub(centroid).dot(axis)
		if p < minProj {
			minProj = p
		}
		if p > maxProj {
			maxProj = p
		}
	}

	start = centroid.add(axis.scale(minProj))
	end = centroid.add(axis.scale(maxProj))
	return start, end
}
