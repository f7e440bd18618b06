package bc1

// covariance holds the six unique upper-triangular entries of a 3x3
// weighted covariance matrix:
//
//	[ xx xy xz ]
//	[ xy yy yz ]
//	[ xz yz zz ]
type covariance struct {
	xx, xy, xz, yy, yz, zz float32
}

// computeCentroid returns the weighted centroid of points.
//
// Ported from icbc.h's computeCentroid.
func computeCentroid(points []rgb, weights []float32) rgb {
	var centroid rgb
	var total float32
	for i, p := range points {
		w := weights[i]
		total += w
		centroid = centroid.add(p.scale(w))
	}
	return centroid.scale(1 / total)
}

// computeCovariance returns the weighted centroid and the weighted
// covariance matrix of points around it.
//
// Ported from icbc.h's computeCovariance.
func computeCovariance(points []rgb, weights []float32) (rgb, covariance) {
	centroid := computeCentroid(points, weights)

	var m covariance
	for i, p := range points {
		a := p.sub(centroid)
		b := a.scale(weights[i])
		m.xx += a.r * b.r
		m.xy += a.r * b.g
		m.xz += a.r * b.b
		m.yy += a.g * b.g
		m.yz += a.g * b.b
		m.zz += a.b * b.b
	}
	return centroid, m
}

// estimatePrincipalComponent seeds the power iteration with the row of m
// having maximum squared norm — a cheap heuristic starting direction.
//
// Ported from icbc.h's estimatePrincipalComponent.
func estimatePrincipalComponent(m covariance) rgb {
	row0 := rgb{m.xx, m.xy, m.xz}
	row1 := rgb{m.xy, m.yy, m.yz}
	row2 := rgb{m.xz, m.yz, m.zz}

	r0 := row0.lengthSquared()
	r1 := row1.lengthSquared()
	r2 := row2.lengthSquared()

	if r0 > r1 && r0 > r2 {
		return row0
	}
	if r1 > r2 {
		return row1
	}
	return row2
}

// firstEigenVectorPowerMethod computes the first eigenvector of m by 8
// steps of power iteration with a simple infinity-norm scale (not a unit
// normalization — only the direction is consumed, as a sort key). If the
// diagonal of m is entirely zero the block is degenerate (all colors
// coincide after centroid removal) and the zero vector is returned. No
// bounding-box fallback follows: computeSAT then keeps the input order
// (every projection is zero) and centroidEndPoints returns the centroid
// as both endpoints.
//
// Eight iterations suffice because only the direction is consumed, not
// the magnitude, and the method is robust on the near-collinear
// distributions typical of DXT blocks.
//
// Ported from icbc.h's firstEigenVector_PowerMethod.
func firstEigenVectorPowerMethod(m covariance) rgb {
	if m.xx == 0 && m.yy == 0 && m.zz == 0 {
		return rgb{}
	}

	v := estimatePrincipalComponent(m)

	const iterations = 8
	for i := 0; i < iterations; i++ {
		x := v.r*m.xx + v.g*m.xy + v.b*m.xz
		y := v.r*m.xy + v.g*m.yy + v.b*m.yz
		z := v.r*m.xz + v.g*m.yz + v.b*m.zz

		norm := max32(max32(absf(x), absf(y)), absf(z))
		if norm == 0 {
			return rgb{}
		}

		v = rgb{x, y, z}.scale(1 / norm)
	}

	return v
}

// computePrincipalComponent returns the principal axis of points under
// weights, used by the SAT builder as the projection/sort axis.
//
// Ported from icbc.h's computePrincipalComponent_PowerMethod.
func computePrincipalComponent(points []rgb, weights []float32) rgb {
	_, m := computeCovariance(points, weights)
	return firstEigenVectorPowerMethod(m)
}
