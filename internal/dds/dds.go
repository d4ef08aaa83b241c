// Package dds reads DirectDraw Surface textures and writes uncompressed
// 8-bit luminance ones.
package dds

import (
	"encoding/binary"
	"fmt"
)

const (
	magic = "DDS "

	// MaxDimension bounds width and height so size arithmetic cannot overflow.
	MaxDimension = 1 << 16

	headerSize   = 124
	fileHeader   = len(magic) + headerSize // 128
	pixelFormat  = 72                      // offset of DDS_PIXELFORMAT inside the header
	pfSize       = 32
	capsOffset   = 104
	flagsOffset  = 4
	heightOffset = 8
	widthOffset  = 12
	pitchOffset  = 16

	// DDSD flags
	DDSD_CAPS        = 0x1
	DDSD_HEIGHT      = 0x2
	DDSD_WIDTH       = 0x4
	DDSD_PITCH       = 0x8
	DDSD_PIXELFORMAT = 0x1000

	// Pixel format flags
	DDPF_ALPHAPIXELS = 0x1
	DDPF_FOURCC      = 0x4
	DDPF_RGB         = 0x40
	DDPF_LUMINANCE   = 0x20000

	// Caps
	DDSCAPS_TEXTURE = 0x1000
)

// header holds the fields of the 124-byte DDS header that decoding needs.
type header struct {
	width, height uint32
	pitch         uint32
	pfFlags       uint32
	fourCC        string
	bitCount      uint32
}

func parseHeader(data []byte) (header, error) {
	if len(data) < fileHeader {
		return header{}, fmt.Errorf("dds: data too short for header: %d < %d", len(data), fileHeader)
	}
	if string(data[:len(magic)]) != magic {
		return header{}, fmt.Errorf("dds: missing magic %q", magic)
	}

	hdr := data[len(magic):fileHeader]
	if size := binary.LittleEndian.Uint32(hdr); size != headerSize {
		return header{}, fmt.Errorf("dds: header size %d, want %d", size, headerSize)
	}
	pf := hdr[pixelFormat : pixelFormat+pfSize]

	h := header{
		height:   binary.LittleEndian.Uint32(hdr[heightOffset:]),
		width:    binary.LittleEndian.Uint32(hdr[widthOffset:]),
		pitch:    binary.LittleEndian.Uint32(hdr[pitchOffset:]),
		pfFlags:  binary.LittleEndian.Uint32(pf[4:]),
		fourCC:   string(pf[8:12]),
		bitCount: binary.LittleEndian.Uint32(pf[12:]),
	}
	if h.width == 0 || h.height == 0 {
		return header{}, fmt.Errorf("dds: empty image %dx%d", h.width, h.height)
	}
	if h.width > MaxDimension || h.height > MaxDimension {
		return header{}, fmt.Errorf("dds: image %dx%d exceeds %d pixels per side", h.width, h.height, MaxDimension)
	}

	body := uint64(len(data) - fileHeader)
	if body == 0 {
		return header{}, fmt.Errorf("dds: no image data")
	}
	if need := h.dataSize(); body < need {
		return header{}, fmt.Errorf("dds: pixel data too small (%d < %d)", body, need)
	}
	return h, nil
}

// dataSize is the number of pixel bytes the header promises, or 0 for
// formats Decode rejects anyway.
func (h header) dataSize() uint64 {
	w, ht := uint64(h.width), uint64(h.height)
	if h.compressed() {
		blocks := ((w + 3) / 4) * ((ht + 3) / 4)
		switch h.fourCC {
		case "DXT1":
			return blocks * 8
		case "DXT3", "DXT5":
			return blocks * 16
		}
		return 0
	}

	switch {
	case h.pfFlags&DDPF_LUMINANCE != 0 && h.bitCount == 8:
		pitch := max(uint64(h.pitch), w)
		return pitch*(ht-1) + w
	case h.bitCount == 24 || h.bitCount == 32:
		return w * ht * uint64(h.bitCount/8)
	}
	return 0
}

func (h header) compressed() bool {
	return h.pfFlags&DDPF_FOURCC != 0 || h.fourCC != "\x00\x00\x00\x00"
}
