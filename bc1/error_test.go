package bc1_test

import (
	"testing"

	"github.com/aet/icbc/bc1"
)

func TestEvaluateError_RejectsWrongSizedBuffers(t *testing.T) {
	colors := make([]bc1.Color, 16)
	buf, _ := bc1.Compress(colors, make([]float32, 16), [3]float32{1, 1, 1}, false, false, bc1.DecoderReference)

	_, err := bc1.EvaluateError(make([]byte, 10), buf[:], bc1.DecoderReference)
	if bc1.ErrorCodeOf(err) != bc1.ErrBadBlock {
		t.Fatalf("expected ErrBadBlock for a short raw buffer, got %v", err)
	}
}

func TestEvaluateError_SmallForUniformGrayBlock(t *testing.T) {
	colors := make([]bc1.Color, 16)
	for i := range colors {
		colors[i] = bc1.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	weights := make([]float32, 16)
	for i := range weights {
		weights[i] = 1
	}

	buf, _ := bc1.Compress(colors, weights, [3]float32{1, 1, 1}, false, true, bc1.DecoderReference)

	raw := make([]byte, 64)
	for i := 0; i < 16; i++ {
		raw[i*4] = 128
		raw[i*4+1] = 128
		raw[i*4+2] = 128
		raw[i*4+3] = 255
	}

	errSq, err := bc1.EvaluateError(raw, buf[:], bc1.DecoderReference)
	if err != nil {
		t.Fatalf("EvaluateError: %v", err)
	}
	if errSq > 16 {
		t.Fatalf("expected small reconstruction error, got %v", errSq)
	}
}

func TestEvaluateError_MatchesHandComputedVendorPalette(t *testing.T) {
	// col0 = RGB-565(31,63,0), col1 = RGB-565(0,0,31); four-color since
	// col0 > col1. pal[2]/pal[3] per decoder hand-derived from icbc.h's
	// evaluate_palette4_nv and evaluate_palette4_amd, independent of
	// bc1's own evaluatePalette4.
	block := []byte{
		0xE0, 0xFF, // col0 little-endian: 0xFFE0 = RGB-565(31,63,0)
		0x1F, 0x00, // col1 little-endian: 0x001F = RGB-565(0,0,31)
		0xE4, 0x00, 0x00, 0x00, // indices: texel0=0,1=1,2=2,3=3, rest=0
	}

	cases := []struct {
		decoder  bc1.Decoder
		entry2   [3]byte
		entry3   [3]byte
	}{
		{bc1.DecoderVendorA, [3]byte{170, 175, 85}, [3]byte{85, 80, 170}},
		{bc1.DecoderVendorB, [3]byte{94, 94, 161}, [3]byte{161, 161, 94}},
	}

	for _, c := range cases {
		raw := make([]byte, 16*4)
		want := [][3]byte{{255, 255, 0}, {0, 0, 255}, c.entry2, c.entry3}
		for i := 0; i < 16; i++ {
			var rgb [3]byte
			if i < len(want) {
				rgb = want[i]
			} else {
				rgb = want[0]
			}
			raw[i*4], raw[i*4+1], raw[i*4+2], raw[i*4+3] = rgb[0], rgb[1], rgb[2], 255
		}

		errSq, err := bc1.EvaluateError(raw, block, c.decoder)
		if err != nil {
			t.Fatalf("decoder %v: EvaluateError: %v", c.decoder, err)
		}
		if errSq != 0 {
			t.Fatalf("decoder %v: expected exact match against hand-computed palette, got error %v", c.decoder, errSq)
		}
	}
}
