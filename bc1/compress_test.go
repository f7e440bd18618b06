package bc1_test

import (
	"testing"

	"github.com/aet/icbc/bc1"
)

func uniformWeights(n int) []float32 {
	w := make([]float32, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

func TestCompress_UniformBlockIsLossless(t *testing.T) {
	colors := make([]bc1.Color, 16)
	for i := range colors {
		colors[i] = bc1.Color{R: 0.5, G: 0.25, B: 0.75}
	}

	_, err := bc1.Compress(colors, uniformWeights(16), [3]float32{1, 1, 1}, false, true, bc1.DecoderReference)
	if err > 1e-3 {
		t.Fatalf("expected near-zero error for a uniform block, got %v", err)
	}
}

func TestCompress_TwoClusterBlockPicksBothColors(t *testing.T) {
	colors := make([]bc1.Color, 16)
	for i := range colors {
		if i < 8 {
			colors[i] = bc1.Color{R: 1}
		} else {
			colors[i] = bc1.Color{G: 1}
		}
	}

	_, err := bc1.Compress(colors, uniformWeights(16), [3]float32{1, 1, 1}, false, true, bc1.DecoderReference)
	if err > 1e-2 {
		t.Fatalf("expected low error for a clean two-cluster block, got %v", err)
	}
}

func TestCompress_GradientBlockStaysBounded(t *testing.T) {
	colors := make([]bc1.Color, 16)
	for i := range colors {
		v := float32(i) / 15
		colors[i] = bc1.Color{R: v, G: v, B: v}
	}

	_, err := bc1.Compress(colors, uniformWeights(16), [3]float32{1, 1, 1}, false, true, bc1.DecoderReference)
	if err > 0.05 {
		t.Fatalf("gradient block error too high: %v", err)
	}
}

func TestCompress_BlackPlusColorThreeColorModeStaysBounded(t *testing.T) {
	colors := make([]bc1.Color, 16)
	for i := range colors {
		if i < 8 {
			colors[i] = bc1.Color{}
		} else {
			colors[i] = bc1.Color{R: 1, G: 0.5}
		}
	}

	_, err := bc1.Compress(colors, uniformWeights(16), [3]float32{1, 1, 1}, true, true, bc1.DecoderReference)
	if err > 0.05 {
		t.Fatalf("black-plus-color block error too high: %v", err)
	}
}

func TestCompress_SingleOutlierDoesNotBlowUpError(t *testing.T) {
	colors := make([]bc1.Color, 16)
	for i := range colors {
		colors[i] = bc1.Color{R: 0.4, G: 0.4, B: 0.4}
	}
	colors[0] = bc1.Color{R: 1}

	_, err := bc1.Compress(colors, uniformWeights(16), [3]float32{1, 1, 1}, false, true, bc1.DecoderReference)
	if err > 0.2 {
		t.Fatalf("single-outlier block error unexpectedly high: %v", err)
	}
}

func TestEvaluateError_RoundTripsAgainstHandComputedPalette(t *testing.T) {
	// col0 = RGB-565(31,0,0) = pure red, col1 = RGB-565(0,0,31) = pure
	// blue; col0 > col1 numerically, so this is a four-color block.
	// pal[0]=e(col0)=(255,0,0), pal[1]=e(col1)=(0,0,255),
	// pal[2]=(2*pal0+pal1)/3=(170,0,85), pal[3]=(pal0+2*pal1)/3=(85,0,170),
	// computed by hand against the D3D10 reference rounding rule, not
	// against bc1's own evaluatePalette4.
	block := []byte{
		0x00, 0xF8, // col0 little-endian: 0xF800 = RGB-565(31,0,0)
		0x1F, 0x00, // col1 little-endian: 0x001F = RGB-565(0,0,31)
		0xE4, 0x00, 0x00, 0x00, // indices: texel0=0,1=1,2=2,3=3, rest=0
	}

	raw := make([]byte, 16*4)
	want := [][4]byte{
		{255, 0, 0, 255},
		{0, 0, 255, 255},
		{170, 0, 85, 255},
		{85, 0, 170, 255},
	}
	for i := 0; i < 16; i++ {
		var c [4]byte
		if i < len(want) {
			c = want[i]
		} else {
			c = want[0]
		}
		copy(raw[i*4:i*4+4], c[:])
	}

	err, decodeErr := bc1.EvaluateError(raw, block, bc1.DecoderReference)
	if decodeErr != nil {
		t.Fatalf("EvaluateError: %v", decodeErr)
	}
	if err != 0 {
		t.Fatalf("expected exact round-trip against hand-computed palette, got error %v", err)
	}
}

func TestCompress_DegenerateSingleTexelWeightSet(t *testing.T) {
	colors := make([]bc1.Color, 16)
	weights := make([]float32, 16)
	colors[0] = bc1.Color{R: 0.2, G: 0.6, B: 0.9}
	weights[0] = 1

	buf, err := bc1.Compress(colors, weights, [3]float32{1, 1, 1}, false, false, bc1.DecoderReference)
	if len(buf) != bc1.BlockBytes {
		t.Fatalf("expected an %d-byte block, got %d", bc1.BlockBytes, len(buf))
	}
	if err < 0 {
		t.Fatalf("error should never be negative, got %v", err)
	}
}
