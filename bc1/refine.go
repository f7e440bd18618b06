package bc1

// refineDeltas are the 16 fixed single-texel-level perturbations tried
// against one endpoint at a time during bounded local search. Each is a
// signed step in the 5-6-5 integer lattice (r, g, b), chosen to cover
// every axis direction plus the diagonals most likely to reduce error
// after a cluster-fit solve has already found a good starting point.
//
// Ported from icbc.h's optimize_end_points4's fixed step table.
var refineDeltas = [16][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
	{1, 1, 0}, {-1, -1, 0},
	{1, -1, 0}, {-1, 1, 0},
	{1, 0, 1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, -1},
	{1, 1, 1}, {-1, -1, -1},
}

const (
	refineMaxSteps        = 256
	refineStallLimit       = 32
	refineAlternateEvery  = 16
)

// refineEndpoints performs a bounded local search around a candidate
// endpoint pair, alternating which endpoint the 16 fixed deltas perturb
// every refineAlternateEvery steps, accepting only strictly-improving
// moves, and stopping early after refineStallLimit consecutive
// non-improving steps. fourColor selects evaluatePalette4/3 scoring; in
// four-color mode the returned pair is also fixed up so that col0 > col1
// (no fixup is applied in three-color mode).
//
// Ported from icbc.h's optimize_end_points4 / optimize_end_points3.
func refineEndpoints(colors []rgb, weights []float32, metricSqr rgb, start, end rgb, fourColor bool, decoder Decoder) (rgb, rgb, float32) {
	c0 := colorFromGrid(start)
	c1 := colorFromGrid(end)

	bestErr := evaluateCandidate(colors, weights, c0, c1, fourColor, metricSqr, decoder)
	stall := 0

	for step := 0; step < refineMaxSteps && stall < refineStallLimit; step++ {
		perturbEnd := (step/refineAlternateEvery)%2 == 1
		delta := refineDeltas[step%16]

		var cand0, cand1 color16
		if perturbEnd {
			cand0 = c0
			cand1 = perturbColor16(c1, delta)
		} else {
			cand0 = perturbColor16(c0, delta)
			cand1 = c1
		}

		if fourColor && cand0 == cand1 {
			continue
		}

		err := evaluateCandidate(colors, weights, cand0, cand1, fourColor, metricSqr, decoder)
		if err < bestErr {
			bestErr = err
			c0, c1 = cand0, cand1
			stall = 0
		} else {
			stall++
		}
	}

	if fourColor {
		if c0 == c1 {
			c1 = bumpGreen(c1)
		}
		if !(block{col0: c0, col1: c1}).fourColorMode() {
			c0, c1 = c1, c0
		}
	}

	return colorToRGB(bitexpandColor16ToColor32(c0)), colorToRGB(bitexpandColor16ToColor32(c1)), bestErr
}

func colorFromGrid(v rgb) color16 {
	return vector3ToColor16(v)
}

func perturbColor16(c color16, delta [3]int) color16 {
	r := clampLevel(int(c.r5())+delta[0], 31)
	g := clampLevel(int(c.g6())+delta[1]*2, 63)
	b := clampLevel(int(c.b5())+delta[2], 31)
	return packColor16(r, g, b)
}

func clampLevel(v, max int) uint8 {
	if v < 0 {
		return 0
	}
	if v > max {
		return uint8(max)
	}
	return uint8(v)
}

func bumpGreen(c color16) color16 {
	g := c.g6()
	if g < 63 {
		g++
	} else {
		g--
	}
	return packColor16(c.r5(), g, c.b5())
}

func evaluateCandidate(colors []rgb, weights []float32, c0, c1 color16, fourColor bool, metricSqr rgb, decoder Decoder) float32 {
	if fourColor {
		pal := evaluatePalette4(c0, c1, decoder)
		_, err := assignIndices4(colors, weights, pal, metricSqr)
		return err
	}
	pal := evaluatePalette3(c0, c1, decoder)
	_, err := assignIndices3(colors, weights, pal, metricSqr)
	return err
}
