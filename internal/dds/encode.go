package dds

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"
)

// EncodeLuminance writes m as an uncompressed 8-bit luminance DDS.
// Non-gray images go through color.GrayModel.
func EncodeLuminance(w io.Writer, m image.Image) error {
	b := m.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return errors.New("dds: empty image")
	}

	var hdr [fileHeader]byte
	copy(hdr[:], magic)
	h := hdr[len(magic):]
	put := func(off int, v uint32) {
		binary.LittleEndian.PutUint32(h[off:], v)
	}

	put(0, headerSize)
	put(flagsOffset, DDSD_CAPS|DDSD_HEIGHT|DDSD_WIDTH|DDSD_PIXELFORMAT|DDSD_PITCH)
	put(heightOffset, uint32(height))
	put(widthOffset, uint32(width))
	put(pitchOffset, uint32(width))

	put(pixelFormat, pfSize)
	put(pixelFormat+4, DDPF_LUMINANCE)
	put(pixelFormat+12, 8)          // bpp
	put(pixelFormat+16, 0x000000FF) // luminance mask

	put(capsOffset, DDSCAPS_TEXTURE)

	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	row := make([]byte, width)
	gray, isGray := m.(*image.Gray)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if isGray {
			copy(row, gray.Pix[gray.PixOffset(b.Min.X, y):])
		} else {
			for i := range row {
				row[i] = color.GrayModel.Convert(m.At(b.Min.X+i, y)).(color.Gray).Y
			}
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
