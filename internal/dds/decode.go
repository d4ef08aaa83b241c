package dds

import (
	"fmt"
	"image"

	"github.com/mauserzjeh/dxt"
)

// Decode parses a DDS file from the provided bytes and returns an image.Image.
// Supports DXT1, DXT3, DXT5, uncompressed 24/32-bit BGR(A) and 8-bit
// luminance. Luminance textures come back as *image.Gray, everything else
// as *image.RGBA.
func Decode(data []byte) (image.Image, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	body := data[fileHeader:]
	w, ht := uint(h.width), uint(h.height)

	if h.compressed() {
		var rgba []byte
		switch h.fourCC {
		case "DXT1":
			rgba, err = dxt.DecodeDXT1(body, w, ht)
		case "DXT3":
			rgba, err = dxt.DecodeDXT3(body, w, ht)
		case "DXT5":
			rgba, err = dxt.DecodeDXT5(body, w, ht)
		default:
			return nil, fmt.Errorf("dds: unsupported FourCC %q", h.fourCC)
		}
		if err != nil {
			return nil, fmt.Errorf("dds: decode %s: %w", h.fourCC, err)
		}
		return rgbaImage(rgba, int(w), int(ht))
	}

	switch {
	case h.pfFlags&DDPF_LUMINANCE != 0 && h.bitCount == 8:
		return decodeLuminance(body, int(w), int(ht), int(h.pitch))
	case h.bitCount == 24 || h.bitCount == 32:
		rgba, err := decodeUncompressedRGB(body, w, ht, h.bitCount)
		if err != nil {
			return nil, err
		}
		return rgbaImage(rgba, int(w), int(ht))
	default:
		return nil, fmt.Errorf("dds: unsupported pixel format flags=%#x bits=%d", h.pfFlags, h.bitCount)
	}
}

func rgbaImage(pix []byte, w, h int) (image.Image, error) {
	if want := w * h * 4; len(pix) != want {
		return nil, fmt.Errorf("dds: unexpected decoded byte length %d, want %d", len(pix), want)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pix)
	return img, nil
}

// decodeLuminance copies one byte per pixel. A pitch wider than the row is
// honoured; a zero or short pitch means tightly packed rows. The sizes have
// been bounded by parseHeader.
func decodeLuminance(body []byte, w, h, pitch int) (image.Image, error) {
	if pitch < w {
		pitch = w
	}
	if need := pitch*(h-1) + w; len(body) < need {
		return nil, fmt.Errorf("dds luminance: data too small (%d < %d)", len(body), need)
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		copy(img.Pix[y*img.Stride:][:w], body[y*pitch:])
	}
	return img, nil
}

// decodeUncompressedRGB decodes contiguous scanlines stored in BGR or BGRA
// order into RGBA bytes.
func decodeUncompressedRGB(data []byte, width, height uint, bits uint32) ([]byte, error) {
	bytesPerPixel := int(bits / 8)
	expected := int(width) * int(height) * bytesPerPixel
	if len(data) < expected {
		return nil, fmt.Errorf("dds uncompressed: data too small (%d < %d)", len(data), expected)
	}

	out := make([]byte, int(width)*int(height)*4)
	for src, dst := 0, 0; dst < len(out); src, dst = src+bytesPerPixel, dst+4 {
		out[dst+0] = data[src+2]
		out[dst+1] = data[src+1]
		out[dst+2] = data[src+0]
		out[dst+3] = 255
		if bytesPerPixel == 4 {
			out[dst+3] = data[src+3]
		}
	}
	return out, nil
}
