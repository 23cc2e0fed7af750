// Package icon renders small placeholder icons for report tool assets.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Size is the icon edge length in pixels.
const Size = 24

// Palette pairs a fill color with its outline color.
type Palette struct {
	Fill    color.RGBA
	Outline color.RGBA
}

var (
	// CategoryPalette is the green palette used for category icons.
	CategoryPalette = Palette{
		Fill:    color.RGBA{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF},
		Outline: color.RGBA{R: 0x05, G: 0x96, B: 0x69, A: 0xFF},
	}
	// ProviderPalette is the blue palette used for provider icons.
	ProviderPalette = Palette{
		Fill:    color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF},
		Outline: color.RGBA{R: 0x25, G: 0x63, B: 0xEB, A: 0xFF},
	}

	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// base returns a transparent Size×Size canvas with the circular
// background filled and outlined in the given palette.
func base(p Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))

	// Circle inscribed in the box (2,2)-(22,22), 2px outline.
	fillCircle(img, 12.5, 12.5, 10, p.Fill)
	strokeCircle(img, 12.5, 12.5, 10, 2, p.Outline)

	return img
}

// Category renders the default category icon: a green circle with three
// white horizontal bars suggesting a list.
func Category() *image.RGBA {
	img := base(CategoryPalette)

	fillRect(img, 7, 8, 17, 9, white)
	fillRect(img, 7, 12, 17, 13, white)
	fillRect(img, 7, 16, 17, 17, white)

	return img
}

// Provider renders the default provider icon: a blue circle with a white
// triangle and dot forming a stylized glyph.
func Provider() *image.RGBA {
	img := base(ProviderPalette)

	fillTriangle(img, point{8, 14}, point{12, 8}, point{16, 14}, white)
	fillEllipse(img, 10, 16, 14, 20, white)

	return img
}

// WritePNG encodes img as PNG at path, overwriting any existing file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
