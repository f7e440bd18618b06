package bc1

// EvaluateError decodes block under the given decoder rule and returns
// the unweighted sum (not average) of squared per-channel differences
// against rawRGBA over all 16 texels (4 bytes each, row-major). rawRGBA
// must hold exactly 64 bytes (else ErrBadBlock) and block at least
// BlockBytes bytes (else ErrShortBuffer; only the first BlockBytes are
// read). An unrecognized decoder yields ErrBadDecoder.
//
// Ported from icbc.h's evaluate_dxt1_error.
func EvaluateError(rawRGBA []byte, blockBytes []byte, decoder Decoder) (float32, error) {
	if len(rawRGBA) != maxInputTexels*4 {
		return 0, newError(ErrBadBlock, "rawRGBA must be 64 bytes (16 RGBA texels)")
	}
	if decoder < DecoderReference || decoder > DecoderVendorB {
		return 0, newError(ErrBadDecoder, "unknown decoder")
	}
	b, err := decodeBlock(blockBytes)
	if err != nil {
		return 0, err
	}

	var pal4 palette4
	var pal3 palette3
	fourColor := b.fourColorMode()
	if fourColor {
		pal4 = evaluatePalette4(b.col0, b.col1, decoder)
	} else {
		pal3 = evaluatePalette3(b.col0, b.col1, decoder)
	}

	var sum float32
	for i := 0; i < maxInputTexels; i++ {
		idx := b.index(i)
		var rc color32
		if fourColor {
			rc = pal4[idx]
		} else if idx == 3 {
			rc = color32{}
		} else {
			rc = pal3[idx]
		}

		off := i * 4
		dr := float32(rawRGBA[off]) - float32(rc.r)
		dg := float32(rawRGBA[off+1]) - float32(rc.g)
		db := float32(rawRGBA[off+2]) - float32(rc.b)
		sum += dr*dr + dg*dg + db*db
	}

	return sum, nil
}
