// Package imageio picks a decoder or encoder from a file's extension.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dblezek/tga"
	"github.com/spartajet/clahe/internal/dds"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// JPEGQuality is used for .jpg and .jpeg output.
const JPEGQuality = 95

// ErrUnknownFormat is returned by Save for an extension it has no encoder for.
var ErrUnknownFormat = errors.New("unknown image format")

type encoder func(w io.Writer, img image.Image) error

var encoders = map[string]encoder{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
	".dds":  dds.EncodeLuminance,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Load decodes the image at path. DDS and TGA are recognised by extension;
// every other file is sniffed by image.Decode.
func Load(path string) (image.Image, error) {
	switch ext(path) {
	case ".dds":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", path, err)
		}
		img, err := dds.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("decode %q: %w", path, err)
		}
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	if ext(path) == ".tga" {
		img, err = tga.Decode(bufio.NewReader(f))
	} else {
		img, _, err = image.Decode(bufio.NewReader(f))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return img, nil
}

// Save encodes img to path in the format named by its extension. The file
// is not created when the extension is unknown.
func Save(path string, img image.Image) error {
	enc, ok := encoders[ext(path)]
	if !ok {
		return fmt.Errorf("save %q: %w %q", path, ErrUnknownFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := enc(w, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %q: %w", path, err)
	}
	return f.Close()
}
