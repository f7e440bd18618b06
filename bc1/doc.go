// Package bc1 implements a high-quality encoder for the BC1 (DXT1) GPU
// texture block format: two 5-6-5 endpoints plus sixteen 2-bit palette
// indices packed into 8 bytes per 4x4 texel block.
//
// The search engine is a direct port of Ignacio Castano's icbc encoder:
// principal-component sort axis, summed-area-table-accelerated cluster
// fit over all partitions of the sorted colors into 3 or 4 ordered runs,
// single-color optimal tables, and a bounded local-search refinement
// pass. Tiling an image into blocks, container formats (DDS/KTX), and
// decoding are deliberately out of scope — see cmd/bc1enc for a caller
// that handles those concerns.
package bc1
