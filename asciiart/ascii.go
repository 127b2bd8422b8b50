// Package asciiart renders images as ASCII art by mapping pixel brightness
// onto a character ramp (dark characters first).
package asciiart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	// registered decoders for RenderFile
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Character ramps ordered from darkest to lightest.
const (
	// CharsetVeryDetailed is the longest ramp, for large outputs.
	CharsetVeryDetailed = "@QB#NgWM8RDHdOKq9$6khEPXwmeZaoS2yjufF]}{tx1zv7lciL/\\|?*>r^;:_\"~,'.-` "
	// CharsetDetailed is the default ramp.
	CharsetDetailed = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^ "
	// CharsetMedium is a medium-density ramp.
	CharsetMedium = "@%#*+=-:;,.~ "
	// CharsetSimple is a minimal ramp.
	CharsetSimple = "@#*+:. "
)

// ErrEmptyCharset is returned when the configured ramp has no characters.
var ErrEmptyCharset = errors.New("asciiart: empty charset")

// Config controls the rendering.
type Config struct {
	// Width is the output width in characters.
	Width int
	// Height caps the output height in characters.
	Height int
	// AspectCompensation corrects for terminal cells being taller than
	// wide. 0 means the default of 2.
	AspectCompensation float64
	// Scaler resamples the image; nil means draw.CatmullRom.
	Scaler draw.Scaler
	// Charset is the brightness ramp, darkest first.
	Charset []rune
}

// DefaultConfig returns a 100x50 configuration with the detailed ramp.
func DefaultConfig() *Config {
	return &Config{
		Width:              100,
		Height:             50,
		AspectCompensation: 2,
		Scaler:             draw.CatmullRom,
		Charset:            []rune(CharsetDetailed),
	}
}

// Render converts img to ASCII art. The image is scaled to cfg.Width
// columns, with the row count derived from the image aspect ratio (adjusted
// by AspectCompensation) and capped at cfg.Height. Rows are separated by
// '\n'; the output ends with a trailing newline.
func Render(img image.Image, cfg *Config) (string, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if len(cfg.Charset) == 0 {
		return "", ErrEmptyCharset
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return "", fmt.Errorf("asciiart: non-positive target size %dx%d", cfg.Width, cfg.Height)
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return "", errors.New("asciiart: empty image")
	}

	comp := cfg.AspectCompensation
	if comp <= 0 {
		comp = 2
	}
	aspect := float64(bounds.Dx()) / float64(bounds.Dy())
	w := cfg.Width
	h := int(float64(w) / aspect / comp)
	if h > cfg.Height {
		h = cfg.Height
	}
	if h < 1 {
		h = 1
	}

	scaler := cfg.Scaler
	if scaler == nil {
		scaler = draw.CatmullRom
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)

	var sb strings.Builder
	sb.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := int(Brightness(dst.RGBAAt(x, y)) * float64(len(cfg.Charset)-1))
			if idx >= len(cfg.Charset) {
				idx = len(cfg.Charset) - 1
			}
			sb.WriteRune(cfg.Charset[idx])
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// RenderFile decodes the PNG or JPEG at path and renders it with the given
// size and ramp.
func RenderFile(path string, width, height int, charset string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("asciiart: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("asciiart: decode %s: %w", path, err)
	}

	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Charset = []rune(charset)
	return Render(img, cfg)
}

// Brightness returns the perceived luminance of c in [0,1], using the
// standard 0.299R + 0.587G + 0.114B weighting.
func Brightness(c color.RGBA) float64 {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	v := 0.299*r + 0.587*g + 0.114*b
	if v > 1 {
		v = 1
	}
	return v
}
