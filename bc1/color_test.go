package bc1

import "testing"

func TestExpand5And6SpanFullRangeAndAreMonotonic(t *testing.T) {
	var prev5, prev6 uint8
	for v := 0; v < 64; v++ {
		if v < 32 {
			e5 := expand5(uint8(v))
			if v > 0 && e5 < prev5 {
				t.Fatalf("expand5 not monotonic at %d: %d < %d", v, e5, prev5)
			}
			prev5 = e5
		}
		e6 := expand6(uint8(v))
		if v > 0 && e6 < prev6 {
			t.Fatalf("expand6 not monotonic at %d: %d < %d", v, e6, prev6)
		}
		prev6 = e6
	}
	if expand5(0) != 0 || expand5(31) != 255 {
		t.Fatalf("expand5 endpoints: got %d, %d", expand5(0), expand5(31))
	}
	if expand6(0) != 0 || expand6(63) != 255 {
		t.Fatalf("expand6 endpoints: got %d, %d", expand6(0), expand6(63))
	}
}

func TestPackColor16RoundTrip(t *testing.T) {
	c := packColor16(17, 42, 9)
	if c.r5() != 17 || c.g6() != 42 || c.b5() != 9 {
		t.Fatalf("round trip mismatch: got r=%d g=%d b=%d", c.r5(), c.g6(), c.b5())
	}
}

func TestRound565PicksNearestLatticePoint(t *testing.T) {
	for _, v := range []float32{0, 0.01, 0.5, 0.99, 1} {
		r := round565(v, 31, midpoints5[:])
		if r > 31 {
			t.Fatalf("round565(%v) out of range: %d", v, r)
		}
	}
}

func TestVector3ToColor16Saturates(t *testing.T) {
	c := vector3ToColor16(rgb{2, -1, 0.5})
	if c.r5() != 31 || c.g6() != 0 {
		t.Fatalf("expected saturation at extremes, got r=%d g=%d", c.r5(), c.g6())
	}
}
