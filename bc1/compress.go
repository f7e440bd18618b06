package bc1

// Compress encodes one 4x4 (or fewer, for partial edge blocks) group of
// colors into a single BC1 block. colors and weights must have the same
// length, at most maxInputTexels; weights are typically 1 for opaque
// texels and 0 for texels outside the image bounds on a partial block.
// channelWeights lets callers bias the error metric per channel (e.g.
// perceptual luma weighting); {1,1,1} reproduces an unweighted metric.
// threeColorMode allows the search to also consider punch-through
// (3-color plus transparent-black) encodings and keep whichever scores
// lower; hq additionally runs the bounded local-search refinement pass.
//
// Ported from icbc.h's compress_dxt1.
func Compress(colors []Color, weights []float32, channelWeights [3]float32, threeColorMode, hq bool, decoder Decoder) ([BlockBytes]byte, float32) {
	return compress(fromColors(colors), weights, channelWeights, threeColorMode, hq, decoder)
}

func compress(colors []rgb, weights []float32, channelWeights [3]float32, threeColorMode, hq bool, decoder Decoder) ([BlockBytes]byte, float32) {
	Init()

	metricSqr := rgb{channelWeights[0] * channelWeights[0], channelWeights[1] * channelWeights[1], channelWeights[2] * channelWeights[2]}

	reduced, reducedWeights, anyBlack := reduceColors(colors, weights)

	if len(reduced) == 0 {
		var b block
		return b.encode(), 0
	}
	if len(reduced) == 1 {
		b := compressSingleColorOptimal(rgbToColor32(reduced[0]))
		pal := evaluatePalette4(b.col0, b.col1, decoder)
		indices, err := assignIndices4(colors, weights, pal, metricSqr)
		b.indices = packIndices(indices)
		return b.encode(), err
	}

	sat, count := computeSAT(reduced, reducedWeights)

	start4, end4 := clusterFitFour(sat, count, metricSqr)
	pal4 := evaluatePalette4(vector3ToColor16(start4), vector3ToColor16(end4), decoder)
	_, err4 := assignIndices4(colors, weights, pal4, metricSqr)

	bestStart, bestEnd, bestErr, fourColor := start4, end4, err4, true

	// The centroid/principal-axis endpoint pair is a cheap extra candidate
	// relative to the exhaustive cluster-fit search and occasionally wins
	// on blocks where the sorted-axis partitioning misses the best split;
	// keep it only if it actually scores lower. It is used as-is: no
	// least-squares refit is solved for it.
	cStart, cEnd := centroidEndPoints(reduced, reducedWeights)
	cPal := evaluatePalette4(vector3ToColor16(cStart), vector3ToColor16(cEnd), decoder)
	_, cErr := assignIndices4(colors, weights, cPal, metricSqr)
	if cErr < bestErr {
		bestStart, bestEnd, bestErr = cStart, cEnd, cErr
	}

	if threeColorMode {
		kept, keptWeights := reduced, reducedWeights
		if anyBlack {
			kept, keptWeights = skipBlacks(reduced, reducedWeights)
		}
		if len(kept) >= 1 {
			var start3, end3 rgb
			if len(kept) == 1 {
				start3, end3 = kept[0], kept[0]
			} else {
				sat3, count3 := computeSAT(kept, keptWeights)
				start3, end3 = clusterFitThree(sat3, count3, metricSqr)
			}
			pal3 := evaluatePalette3(vector3ToColor16(start3), vector3ToColor16(end3), decoder)
			_, err3 := assignIndices3(colors, weights, pal3, metricSqr)
			if err3 < bestErr {
				bestStart, bestEnd, bestErr, fourColor = start3, end3, err3, false
			}
		}
	}

	if hq {
		rStart, rEnd, rErr := refineEndpoints(colors, weights, metricSqr, bestStart, bestEnd, fourColor, decoder)
		if rErr < bestErr {
			bestStart, bestEnd, bestErr = rStart, rEnd, rErr
		}
	}

	c0 := vector3ToColor16(bestStart)
	c1 := vector3ToColor16(bestEnd)

	var indices []uint32
	if fourColor {
		if c0 == c1 {
			c1 = bumpGreen(c1)
		}
		if c0 <= c1 {
			c0, c1 = c1, c0
		}
		pal := evaluatePalette4(c0, c1, decoder)
		indices, bestErr = assignIndices4(colors, weights, pal, metricSqr)
	} else {
		if c0 > c1 {
			c0, c1 = c1, c0
		}
		pal := evaluatePalette3(c0, c1, decoder)
		indices, bestErr = assignIndices3(colors, weights, pal, metricSqr)
	}

	b := block{col0: c0, col1: c1, indices: packIndices(indices)}
	return b.encode(), bestErr
}

// CompressFast is a non-iterative, single-pass encoder: it seeds
// endpoints directly from the bounding-box diagonal of the input colors
// (no cluster-fit search), trading quality for speed.
//
// Ported from icbc.h's compress_dxt1_fast.
func CompressFast(colors []Color, weights []float32) [BlockBytes]byte {
	return compressFast(fromColors(colors), weights)
}

func compressFast(colors []rgb, weights []float32) [BlockBytes]byte {
	Init()

	lo, hi := rgb{1, 1, 1}, rgb{0, 0, 0}
	for i, c := range colors {
		if weights[i] <= 0 {
			continue
		}
		lo = rgbMin(lo, c)
		hi = rgbMax(hi, c)
	}

	inset := hi.sub(lo).scale(1.0 / 16.0)
	lo = lo.add(inset).saturate()
	hi = hi.sub(inset).saturate()

	c0 := vector3ToColor16(hi)
	c1 := vector3ToColor16(lo)
	if c0 == c1 {
		c1 = bumpGreen(c1)
	}
	if c0 <= c1 {
		c0, c1 = c1, c0
	}

	metricSqr := rgb{1, 1, 1}
	pal := evaluatePalette4(c0, c1, DecoderReference)
	indices, _ := assignIndices4(colors, weights, pal, metricSqr)

	b := block{col0: c0, col1: c1, indices: packIndices(indices)}
	return b.encode()
}

// CompressFastRGBA8 is CompressFast specialized for packed 8-bit RGBA
// input (16 texels, 4 bytes each); texels with alpha 0 get weight 0 so
// fully transparent padding on partial edge blocks does not bias the
// fit.
//
// Ported from icbc.h's compress_dxt1_fast (RGBA8 overload).
func CompressFastRGBA8(rgba []byte) [BlockBytes]byte {
	colors := make([]rgb, maxInputTexels)
	weights := make([]float32, maxInputTexels)
	for i := 0; i < maxInputTexels; i++ {
		off := i * 4
		colors[i] = colorToRGB(color32{r: rgba[off], g: rgba[off+1], b: rgba[off+2], a: rgba[off+3]})
		if rgba[off+3] == 0 {
			weights[i] = 0
		} else {
			weights[i] = 1
		}
	}
	return compressFast(colors, weights)
}

func packIndices(indices []uint32) uint32 {
	var packed uint32
	for i, idx := range indices {
		packed |= idx << uint(2*i)
	}
	return packed
}
