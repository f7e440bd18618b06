package bc1

import "encoding/binary"

// BlockBytes is the size in bytes of a single encoded BC1 block.
const BlockBytes = 8

// block is the in-memory representation of a BC1 block: two packed 5-6-5
// endpoints and a 32-bit array of sixteen 2-bit palette indices (texel 0
// in the least-significant two bits).
//
// Ported from icbc.h's BlockDXT1.
type block struct {
	col0    color16
	col1    color16
	indices uint32
}

// fourColorMode reports whether the block uses 4-color mode: numerically,
// col0 > col1. Otherwise the block is in 3-color mode and palette entry 3
// decodes as transparent black.
func (b block) fourColorMode() bool {
	return b.col0 > b.col1
}

// index returns the 2-bit palette index for texel i (0..15).
func (b block) index(i int) uint32 {
	return (b.indices >> (2 * uint(i))) & 3
}

// encode packs a block into the little-endian 8-byte wire format described
// in spec.md §6: col0, col1, indices, all little-endian.
func (b block) encode() [BlockBytes]byte {
	var out [BlockBytes]byte
	binary.LittleEndian.PutUint16(out[0:2], uint16(b.col0))
	binary.LittleEndian.PutUint16(out[2:4], uint16(b.col1))
	binary.LittleEndian.PutUint32(out[4:8], b.indices)
	return out
}

// decodeBlock unpacks an 8-byte little-endian BC1 block.
func decodeBlock(buf []byte) (block, error) {
	if len(buf) < BlockBytes {
		return block{}, newError(ErrShortBuffer, "block buffer shorter than 8 bytes")
	}
	return block{
		col0:    color16(binary.LittleEndian.Uint16(buf[0:2])),
		col1:    color16(binary.LittleEndian.Uint16(buf[2:4])),
		indices: binary.LittleEndian.Uint32(buf[4:8]),
	}, nil
}
