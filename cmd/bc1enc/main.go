// bc1enc encodes an image file into a raw BC1 (DXT1) block stream or a
// minimal DDS container, tiling the source image into 4x4 texel blocks.
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/aet/icbc/bc1"
)

func main() {
	var (
		inPath        string
		outPath       string
		container     string
		decoderName   string
		threeColor    bool
		hq            bool
		dumpFirstHex  bool
	)
	flag.StringVar(&inPath, "in", "", "input image file")
	flag.StringVar(&outPath, "out", "", "output file")
	flag.StringVar(&container, "container", "dds", "output container: dds|raw")
	flag.StringVar(&decoderName, "decoder", "reference", "error-guidance decoder: reference|vendor-a|vendor-b")
	flag.BoolVar(&threeColor, "three-color", true, "allow punch-through (3-color) block encodings")
	flag.BoolVar(&hq, "hq", true, "run the bounded local-search refinement pass")
	flag.BoolVar(&dumpFirstHex, "dump-first-block", false, "print the first encoded block as hex and exit")
	flag.Parse()

	if inPath == "" || outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: bc1enc -in <input> -out <output> [-container dds|raw] [-decoder reference|vendor-a|vendor-b]")
		os.Exit(2)
	}

	decoder, err := parseDecoder(decoderName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	inData, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	img, _, err := image.Decode(bytes.NewReader(inData))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	blocksX, blocksY := (w+3)/4, (h+3)/4

	stream := make([]byte, 0, blocksX*blocksY*bc1.BlockBytes)
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			colors, weights := gatherBlock(rgba, bx*4, by*4, w, h)
			enc, _ := bc1.Compress(colors, weights, [3]float32{1, 1, 1}, threeColor, hq, decoder)
			stream = append(stream, enc[:]...)
		}
	}

	if dumpFirstHex {
		fmt.Printf("%x\n", stream[:bc1.BlockBytes])
		return
	}

	var out []byte
	switch container {
	case "raw":
		out = stream
	case "dds":
		out = wrapDDS(stream, w, h)
	default:
		fmt.Fprintln(os.Stderr, "unknown -container:", container)
		os.Exit(2)
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func gatherBlock(img *image.RGBA, x0, y0, w, h int) ([]bc1.Color, []float32) {
	colors := make([]bc1.Color, 16)
	weights := make([]float32, 16)
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 4; dx++ {
			i := dy*4 + dx
			x, y := x0+dx, y0+dy
			if x >= w || y >= h {
				continue
			}
			c := img.RGBAAt(x, y)
			colors[i] = bc1.Color{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255}
			weights[i] = 1
		}
	}
	return colors, weights
}

func parseDecoder(s string) (bc1.Decoder, error) {
	switch s {
	case "reference":
		return bc1.DecoderReference, nil
	case "vendor-a":
		return bc1.DecoderVendorA, nil
	case "vendor-b":
		return bc1.DecoderVendorB, nil
	default:
		return 0, fmt.Errorf("bc1enc: unknown decoder %q", s)
	}
}

const (
	ddsMagic         = 0x20534444 // "DDS "
	ddsHeaderSize    = 124
	ddsPixelFormatDXT1 = 0x31545844 // "DXT1"
)

// wrapDDS builds the minimal DDS header required for BC1-compressed
// content: no mipmaps, no cubemap faces, linear-size pitch.
func wrapDDS(blocks []byte, w, h int) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, uint32(ddsMagic))
	binary.Write(buf, binary.LittleEndian, uint32(ddsHeaderSize))
	binary.Write(buf, binary.LittleEndian, uint32(0x1|0x2|0x4|0x1000)) // CAPS|HEIGHT|WIDTH|PIXELFORMAT
	binary.Write(buf, binary.LittleEndian, uint32(h))
	binary.Write(buf, binary.LittleEndian, uint32(w))
	binary.Write(buf, binary.LittleEndian, uint32(len(blocks)))
	binary.Write(buf, binary.LittleEndian, uint32(0)) // depth
	binary.Write(buf, binary.LittleEndian, uint32(1)) // mip count
	buf.Write(make([]byte, 11*4)) // reserved

	// DDS_PIXELFORMAT
	binary.Write(buf, binary.LittleEndian, uint32(32)) // size
	binary.Write(buf, binary.LittleEndian, uint32(0x4)) // FOURCC
	binary.Write(buf, binary.LittleEndian, uint32(ddsPixelFormatDXT1))
	buf.Write(make([]byte, 5*4)) // RGB bit counts + masks, unused for compressed formats

	binary.Write(buf, binary.LittleEndian, uint32(0x1000)) // caps: TEXTURE
	buf.Write(make([]byte, 4*4))                           // caps2/3/4 + reserved2

	buf.Write(blocks)
	return buf.Bytes()
}
