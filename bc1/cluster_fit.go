package bc1

// clusterFitResult is the winning endpoint pair and closed-form error for
// one cluster-fit search (3-color or 4-color).
type clusterFitResult struct {
	start, end rgb
	err        float32
}

// solve4 evaluates the weighted least-squares closed-form endpoint pair
// and residual error for one 4-cluster partition, given the cluster sums
// (x0, x1, x2 — already cluster-local, not cumulative) and weights (w0,
// w1, w2, w3), the block's color total, and the squared channel-weight
// metric. ok is false iff the 2x2 system is singular (the partition
// assigns every texel the same alpha), in which case start/end/err are
// unusable.
//
// The four-cluster interpolation coefficients are alpha = 1, 2/3, 1/3, 0;
// this closed form is the spec.md §4.5 2x2 system specialized to that
// table.
//
// Ported from icbc.h's cluster_fit_four inner loop.
func solve4(x0, x1, x2 rgb, w0, w1, w2, w3 float32, total rgb, metricSqr rgb) (result clusterFitResult, ok bool) {
	alpha2Sum := w2/9 + w1*4/9 + w0
	beta2Sum := w1/9 + w2*4/9 + w3
	alphabetaSum := (w1 + w2) * (2.0 / 9.0)

	denom := alpha2Sum*beta2Sum - alphabetaSum*alphabetaSum
	if nearlyEqual(denom, 0) {
		return clusterFitResult{}, false
	}
	factor := 1 / denom

	alphaxSum := x0.add(x1.scale(2.0 / 3.0)).add(x2.scale(1.0 / 3.0))
	betaxSum := total.sub(alphaxSum)

	a := alphaxSum.scale(beta2Sum).sub(betaxSum.scale(alphabetaSum)).scale(factor)
	b := betaxSum.scale(alpha2Sum).sub(alphaxSum.scale(alphabetaSum)).scale(factor)

	a = roundToGrid565(a.saturate())
	b = roundToGrid565(b.saturate())

	e := errorTerm(a, b, alpha2Sum, beta2Sum, alphabetaSum, alphaxSum, betaxSum, metricSqr)
	return clusterFitResult{start: a, end: b, err: e}, true
}

// solve3 is the 3-cluster analog of solve4, for interpolation
// coefficients alpha = 1, 1/2, 0.
//
// Ported from icbc.h's cluster_fit_three inner loop.
func solve3(x0, x1 rgb, w0, w1, w2 float32, total rgb, metricSqr rgb) (result clusterFitResult, ok bool) {
	alphabetaSum := w1 * 0.25
	alpha2Sum := w0 + alphabetaSum
	beta2Sum := w2 + alphabetaSum

	denom := alpha2Sum*beta2Sum - alphabetaSum*alphabetaSum
	if nearlyEqual(denom, 0) {
		return clusterFitResult{}, false
	}
	factor := 1 / denom

	alphaxSum := x0.add(x1.scale(0.5))
	betaxSum := total.sub(alphaxSum)

	a := alphaxSum.scale(beta2Sum).sub(betaxSum.scale(alphabetaSum)).scale(factor)
	b := betaxSum.scale(alpha2Sum).sub(alphaxSum.scale(alphabetaSum)).scale(factor)

	a = roundToGrid565(a.saturate())
	b = roundToGrid565(b.saturate())

	e := errorTerm(a, b, alpha2Sum, beta2Sum, alphabetaSum, alphaxSum, betaxSum, metricSqr)
	return clusterFitResult{start: a, end: b, err: e}, true
}

// errorTerm evaluates the closed-form weighted residual
//
//	E = alpha2Sum*|a|^2 + beta2Sum*|b|^2 + 2*(alphabetaSum*(a.b) - a.alphaxSum - b.betaxSum)
//
// dotted with the squared channel-weight metric.
func errorTerm(a, b rgb, alpha2Sum, beta2Sum, alphabetaSum float32, alphaxSum, betaxSum rgb, metricSqr rgb) float32 {
	e1 := a.mul(a).scale(alpha2Sum).
		add(b.mul(b).scale(beta2Sum)).
		add(a.mul(b).scale(alphabetaSum).sub(a.mul(alphaxSum)).sub(b.mul(betaxSum)).scale(2))
	return e1.dot(metricSqr)
}

// roundToGrid565 quantizes each channel of v to the 5-6-5 lattice and
// returns the result still expressed as a float in [0,1] (level/scale),
// matching icbc.h's vround_ept: the rounding happens in integer-level
// space but the result stays in continuous color space for the
// subsequent error computation.
func roundToGrid565(v rgb) rgb {
	r := round565(v.r, 31, midpoints5[:])
	g := round565(v.g, 63, midpoints6[:])
	b := round565(v.b, 31, midpoints5[:])
	return rgb{float32(r) / 31, float32(g) / 63, float32(b) / 31}
}

func nearlyEqual(a, b float32) bool {
	const eps = 1e-4
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

const inf = 1e38
