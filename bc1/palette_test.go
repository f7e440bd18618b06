package bc1

import "testing"

func TestEvaluatePalette4EndpointsAreExact(t *testing.T) {
	c0 := packColor16(31, 63, 0)
	c1 := packColor16(0, 0, 31)
	for _, d := range []Decoder{DecoderReference, DecoderVendorA, DecoderVendorB} {
		pal := evaluatePalette4(c0, c1, d)
		if pal[0] != bitexpandColor16ToColor32(c0) {
			t.Fatalf("decoder %v: pal[0] should equal expanded c0", d)
		}
		if pal[1] != bitexpandColor16ToColor32(c1) {
			t.Fatalf("decoder %v: pal[1] should equal expanded c1", d)
		}
	}
}

func TestEvaluatePalette4ReferenceInterpolants(t *testing.T) {
	c0 := packColor16(31, 63, 0)
	c1 := packColor16(0, 0, 31)
	pal := evaluatePalette4(c0, c1, DecoderReference)

	want2 := color32{r: 170, g: 170, b: 85, a: 255}
	want3 := color32{r: 85, g: 85, b: 170, a: 255}
	if pal[2] != want2 {
		t.Fatalf("reference pal[2] = %+v, want %+v", pal[2], want2)
	}
	if pal[3] != want3 {
		t.Fatalf("reference pal[3] = %+v, want %+v", pal[3], want3)
	}
}

func TestEvaluatePalette4VendorAInterpolants(t *testing.T) {
	c0 := packColor16(31, 63, 0)
	c1 := packColor16(0, 0, 31)
	pal := evaluatePalette4(c0, c1, DecoderVendorA)

	// Hand-derived from icbc.h's evaluate_palette4_nv: red/blue from the
	// raw 5-bit endpoint fields scaled by 22/8, green from the expanded
	// 8-bit endpoints with the fixed-point gdiff bias term.
	want2 := color32{r: 170, g: 175, b: 85, a: 255}
	want3 := color32{r: 85, g: 80, b: 170, a: 255}
	if pal[2] != want2 {
		t.Fatalf("vendor-a pal[2] = %+v, want %+v", pal[2], want2)
	}
	if pal[3] != want3 {
		t.Fatalf("vendor-a pal[3] = %+v, want %+v", pal[3], want3)
	}
}

func TestEvaluatePalette4VendorBInterpolants(t *testing.T) {
	c0 := packColor16(31, 63, 0)
	c1 := packColor16(0, 0, 31)
	pal := evaluatePalette4(c0, c1, DecoderVendorB)

	// Hand-derived from icbc.h's evaluate_palette4_amd:
	// (43*near + 21*far + 32) / 8, truncated to uint8 (the AMD rule
	// deliberately overshoots 255 before wrapping, matching the C
	// implementation's implicit uint8_t truncation on assignment).
	want2 := color32{r: 94, g: 94, b: 161, a: 255}
	want3 := color32{r: 161, g: 161, b: 94, a: 255}
	if pal[2] != want2 {
		t.Fatalf("vendor-b pal[2] = %+v, want %+v", pal[2], want2)
	}
	if pal[3] != want3 {
		t.Fatalf("vendor-b pal[3] = %+v, want %+v", pal[3], want3)
	}
}

func TestEvaluatePalette3MidpointIsArithmeticAverage(t *testing.T) {
	c0 := packColor16(20, 40, 10)
	c1 := packColor16(0, 0, 0)
	pal := evaluatePalette3(c0, c1, DecoderReference)

	e0 := bitexpandColor16ToColor32(c0)
	e1 := bitexpandColor16ToColor32(c1)
	wantR := uint8((int(e0.r) + int(e1.r)) / 2)
	if pal[2].r != wantR {
		t.Fatalf("expected midpoint red %d, got %d", wantR, pal[2].r)
	}
}

func TestEvaluatePalette3VendorEntries(t *testing.T) {
	c0 := packColor16(31, 63, 0)
	c1 := packColor16(0, 0, 31)

	nv := evaluatePalette3(c0, c1, DecoderVendorA)
	wantNV := color32{r: 127, g: 127, b: 127, a: 255}
	if nv[2] != wantNV {
		t.Fatalf("vendor-a pal[2] = %+v, want %+v", nv[2], wantNV)
	}

	amd := evaluatePalette3(c0, c1, DecoderVendorB)
	wantAMD := color32{r: 128, g: 128, b: 128, a: 255}
	if amd[2] != wantAMD {
		t.Fatalf("vendor-b pal[2] = %+v, want %+v", amd[2], wantAMD)
	}
}

func TestNearestIndex4PicksClosestEntry(t *testing.T) {
	pal := palette4{
		{r: 0, g: 0, b: 0, a: 255},
		{r: 85, g: 85, b: 85, a: 255},
		{r: 170, g: 170, b: 170, a: 255},
		{r: 255, g: 255, b: 255, a: 255},
	}
	idx, _ := nearestIndex4(rgb{0.9, 0.9, 0.9}, pal, rgb{1, 1, 1})
	if idx != 3 {
		t.Fatalf("expected nearest entry 3, got %d", idx)
	}
}

func TestNearestIndex3PicksTransparentBlack(t *testing.T) {
	pal := palette3{
		{r: 200, g: 200, b: 200, a: 255},
		{r: 100, g: 100, b: 100, a: 255},
		{r: 50, g: 50, b: 50, a: 255},
	}
	idx, _ := nearestIndex3(rgb{0.01, 0.01, 0.01}, pal, rgb{1, 1, 1})
	if idx != 3 {
		t.Fatalf("expected transparent-black entry 3, got %d", idx)
	}
}
