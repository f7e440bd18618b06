package bc1

import "sync"

// match5 and match6 each hold, for every possible 8-bit channel target
// value, the quantized (max, min) 5-bit or 6-bit endpoint pair that
// minimizes |Lerp13(expand(max), expand(min)) - target|*100 +
// |max-min|*3 once re-expanded to 8 bits. The *100 scale lets the small
// DX10-tolerance spread bias (|max-min|*3) break near-ties toward a
// narrower-spread endpoint pair without ever overriding a strictly better
// reconstruction. Built once by buildMatchTables.
//
// Ported from icbc.h's PrepareOptTable.
var (
	match5 [256][2]uint8
	match6 [256][2]uint8

	matchTablesOnce sync.Once
)

func buildMatchTables() {
	matchTablesOnce.Do(func() {
		buildMatchTable(&match5, expand5, 32)
		buildMatchTable(&match6, expand6, 64)
	})
}

func buildMatchTable(table *[256][2]uint8, expand func(uint8) uint8, levels int) {
	for v := 0; v < 256; v++ {
		bestErr := 1 << 30
		var bestMax, bestMin uint8

		for lo := 0; lo < levels; lo++ {
			for hi := 0; hi < levels; hi++ {
				mine := int(expand(uint8(lo)))
				maxe := int(expand(uint8(hi)))

				recon := lerp13(maxe, mine)
				err := recon - v
				if err < 0 {
					err = -err
				}
				err *= 100

				spread := hi - lo
				if spread < 0 {
					spread = -spread
				}
				err += spread * 3

				if err < bestErr {
					bestErr = err
					bestMax = uint8(hi)
					bestMin = uint8(lo)
				}
			}
		}

		table[v][0] = bestMax
		table[v][1] = bestMin
	}
}

// lerp13 returns (2*a + b) / 3 with integer truncation, the DXT1
// 1/3-step interpolated value used throughout the single-color and
// match-table construction.
//
// Ported from icbc.h's Lerp13.
func lerp13(a, b int) int {
	return (2*a + b) / 3
}

// compressSingleColorOptimal builds the optimal 4-color block for a
// uniform (or averaged-to-uniform) block color using the precomputed
// match tables. col0 is built from each channel's matched max value,
// col1 from the matched min value, and every texel is set to index 2
// (the (2*col0+col1)/3 palette entry), which by construction reconstructs
// closest to c. If that leaves col0 < col1, the endpoints are swapped and
// the indices flipped (idx^1 per texel, i.e. XOR by 0x55555555) to stay
// in four-color mode. If col0 == col1 the swap changes nothing and the
// block stays in three-color mode, where index 2 decodes to that same
// single color.
//
// Ported from icbc.h's compress_dxt1_single_color_optimal.
func compressSingleColorOptimal(c color32) block {
	buildMatchTables()

	col0 := packColor16(match5[c.r][0], match6[c.g][0], match5[c.b][0])
	col1 := packColor16(match5[c.r][1], match6[c.g][1], match5[c.b][1])
	indices := uint32(0xAAAAAAAA)

	if col0 <= col1 {
		col0, col1 = col1, col0
		indices ^= 0x55555555
	}

	return block{col0: col0, col1: col1, indices: indices}
}

// compressSingleColor is an un-optimized single-color encoder: it rounds
// the color directly to the 5-6-5 grid with no table lookup. Neither
// Compress nor CompressFast calls it.
//
// Ported from icbc.h's compress_dxt1_single_color.
func compressSingleColor(c color32) block {
	col := vector3ToColor16(colorToRGB(c))
	return block{col0: col, col1: col, indices: 0}
}
