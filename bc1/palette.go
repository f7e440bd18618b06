package bc1

// Decoder selects which hardware vendor's interpolation rule is used to
// synthesize the 4-entry (or 3-entry, for punch-through black blocks)
// palette from a block's two endpoints. The three rules agree on the two
// stored endpoints but differ in how the two interpolated palette
// entries are rounded, which changes which reconstructed color is
// nearest to a given source pixel.
//
// Ported from icbc.h's decode_dxt1_* family.
type Decoder int

const (
	// DecoderReference follows the D3D10 functional spec: exact integer
	// weights 2/3 and 1/3, truncated rather than rounded.
	DecoderReference Decoder = iota
	// DecoderVendorA follows NVIDIA hardware's fixed-point green-channel
	// bias.
	DecoderVendorA
	// DecoderVendorB follows AMD hardware's 43/21/8 weighted blend.
	DecoderVendorB
)

func (d Decoder) String() string {
	switch d {
	case DecoderReference:
		return "reference"
	case DecoderVendorA:
		return "vendor-a"
	case DecoderVendorB:
		return "vendor-b"
	default:
		return "unknown"
	}
}

// palette4 holds the four synthesized RGB entries of a 4-color block.
type palette4 [4]color32

// palette3 holds the three synthesized RGB entries of a 3-color
// (punch-through black) block; the fourth index always decodes to black
// with alpha 0 and is handled separately by callers.
type palette3 [3]color32

// evaluatePalette4 synthesizes the 4-entry palette for endpoints c0, c1
// under the given decoder rule: slot 0 is c0 exact, slot 1 is c1 exact,
// slots 2 and 3 are the two interpolated entries, computed by whichever
// hardware vendor's rounding rule decoder selects. This is the hardware
// palette order the packed 2-bit indices are written against; it is not
// a gradient 0..3 ordering.
//
// Ported from icbc.h's evaluate_palette4_{d3d10,nv,amd}.
func evaluatePalette4(c0, c1 color16, decoder Decoder) palette4 {
	e0 := bitexpandColor16ToColor32(c0)
	e1 := bitexpandColor16ToColor32(c1)

	var pal palette4
	pal[0] = e0
	pal[1] = e1

	switch decoder {
	case DecoderVendorA:
		pal[2], pal[3] = lerpNV4(c0, c1, e0, e1)
	case DecoderVendorB:
		pal[2], pal[3] = lerpAMD4(e0, e1)
	default:
		pal[2], pal[3] = lerpReference4(e0, e1)
	}
	return pal
}

// evaluatePalette3 synthesizes the 3-entry palette of a punch-through
// block in hardware order: slot 0 is c0 exact, slot 1 is c1 exact, and
// slot 2 (the single interpolated entry) is computed by the given
// decoder's own rounding rule; the three vendors disagree on it just as
// they do in four-color mode.
//
// Ported from icbc.h's evaluate_palette3_{d3d10,nv,amd}.
func evaluatePalette3(c0, c1 color16, decoder Decoder) palette3 {
	e0 := bitexpandColor16ToColor32(c0)
	e1 := bitexpandColor16ToColor32(c1)

	var pal palette3
	pal[0] = e0
	pal[1] = e1

	switch decoder {
	case DecoderVendorA:
		pal[2] = lerpNV3(c0, c1, e0, e1)
	case DecoderVendorB:
		pal[2] = color32{
			r: uint8((int(e0.r) + int(e1.r) + 1) / 2),
			g: uint8((int(e0.g) + int(e1.g) + 1) / 2),
			b: uint8((int(e0.b) + int(e1.b) + 1) / 2),
			a: 255,
		}
	default:
		pal[2] = color32{
			r: uint8((int(e0.r) + int(e1.r)) / 2),
			g: uint8((int(e0.g) + int(e1.g)) / 2),
			b: uint8((int(e0.b) + int(e1.b)) / 2),
			a: 255,
		}
	}
	return pal
}

// lerpReference4 implements the D3D10 functional-spec blend: each
// interpolated entry is (2*near + far) / 3 with integer truncation, no
// rounding bias.
func lerpReference4(e0, e1 color32) (p2, p3 color32) {
	p2 = color32{
		r: uint8((2*int(e0.r) + int(e1.r)) / 3),
		g: uint8((2*int(e0.g) + int(e1.g)) / 3),
		b: uint8((2*int(e0.b) + int(e1.b)) / 3),
		a: 255,
	}
	p3 = color32{
		r: uint8((2*int(e1.r) + int(e0.r)) / 3),
		g: uint8((2*int(e1.g) + int(e0.g)) / 3),
		b: uint8((2*int(e1.b) + int(e0.b)) / 3),
		a: 255,
	}
	return p2, p3
}

// lerpNV4 reproduces NVIDIA's fixed-point interpolation. Red and blue
// are computed directly from the raw 5-bit endpoint fields scaled by
// 22/8; green is computed from the expanded 8-bit endpoints with a
// separate fixed-point bias term driven by the raw green delta.
func lerpNV4(c0, c1 color16, e0, e1 color32) (p2, p3 color32) {
	gdiff := int(e1.g) - int(e0.g)
	p2 = color32{
		r: uint8(((2*int(c0.r5()) + int(c1.r5())) * 22) / 8),
		g: uint8((256*int(e0.g) + gdiff/4 + 128 + gdiff*80) / 256),
		b: uint8(((2*int(c0.b5()) + int(c1.b5())) * 22) / 8),
		a: 255,
	}
	p3 = color32{
		r: uint8(((2*int(c1.r5()) + int(c0.r5())) * 22) / 8),
		g: uint8((256*int(e1.g) - gdiff/4 + 128 - gdiff*80) / 256),
		b: uint8(((2*int(c1.b5()) + int(c0.b5())) * 22) / 8),
		a: 255,
	}
	return p2, p3
}

// lerpNV3 is NVIDIA's single interpolated entry for 3-color mode.
func lerpNV3(c0, c1 color16, e0, e1 color32) color32 {
	gdiff := int(e1.g) - int(e0.g)
	return color32{
		r: uint8(((int(c0.r5()) + int(c1.r5())) * 33) / 8),
		g: uint8((256*int(e0.g) + gdiff/4 + 128 + gdiff*128) / 256),
		b: uint8(((int(c0.b5()) + int(c1.b5())) * 33) / 8),
		a: 255,
	}
}

// lerpAMD4 reproduces AMD's 43/21/8 weighted-average palette rule.
func lerpAMD4(e0, e1 color32) (p2, p3 color32) {
	p2 = color32{
		r: uint8((43*int(e0.r) + 21*int(e1.r) + 32) / 8),
		g: uint8((43*int(e0.g) + 21*int(e1.g) + 32) / 8),
		b: uint8((43*int(e0.b) + 21*int(e1.b) + 32) / 8),
		a: 255,
	}
	p3 = color32{
		r: uint8((43*int(e1.r) + 21*int(e0.r) + 32) / 8),
		g: uint8((43*int(e1.g) + 21*int(e0.g) + 32) / 8),
		b: uint8((43*int(e1.b) + 21*int(e0.b) + 32) / 8),
		a: 255,
	}
	return p2, p3
}

// nearestIndex4 returns the palette entry nearest to c under the squared
// metric-weighted distance, and that squared distance.
//
// Ported from icbc.h's compute_index4's scalar fallback.
func nearestIndex4(c rgb, pal palette4, metricSqr rgb) (index uint32, distSqr float32) {
	best := float32(inf)
	for i, p := range pal {
		d := c.sub(colorToRGB(p))
		ds := d.mul(d).dot(metricSqr)
		if ds < best {
			best = ds
			index = uint32(i)
		}
	}
	return index, best
}

// nearestIndex3 picks the nearest of the palette's 3 color entries plus
// the implicit 4th entry, transparent black, which index 3 always
// decodes to. A texel genuinely closest to black must be able to select
// it.
//
// Ported from icbc.h's compute_indices (3-color branch).
func nearestIndex3(c rgb, pal palette3, metricSqr rgb) (index uint32, distSqr float32) {
	best := float32(inf)
	for i, p := range pal {
		d := c.sub(colorToRGB(p))
		ds := d.mul(d).dot(metricSqr)
		if ds < best {
			best = ds
			index = uint32(i)
		}
	}

	dBlack := c.mul(c).dot(metricSqr)
	if dBlack < best {
		best = dBlack
		index = 3
	}

	return index, best
}

// assignIndices4 picks, for every input color, the nearest of the four
// palette entries and returns the per-texel indices (unpacked; see
// packIndices) plus the accumulated weighted squared error.
func assignIndices4(colors []rgb, weights []float32, pal palette4, metricSqr rgb) (indices []uint32, totalErr float32) {
	indices = make([]uint32, len(colors))
	for i, c := range colors {
		idx, d := nearestIndex4(c, pal, metricSqr)
		indices[i] = idx
		totalErr += d * weights[i]
	}
	return indices, totalErr
}

func assignIndices3(colors []rgb, weights []float32, pal palette3, metricSqr rgb) (indices []uint32, totalErr float32) {
	indices = make([]uint32, len(colors))
	for i, c := range colors {
		idx, d := nearestIndex3(c, pal, metricSqr)
		indices[i] = idx
		totalErr += d * weights[i]
	}
	return indices, totalErr
}
