// Package raster - image decoding into cost fields.
//
// Costs come from 8-bit grayscale luma, so a dark pixel is cheap terrain
// and a pure-white pixel (255) is an impassable wall.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	// Registered decoders for the two supported input formats.
	_ "image/jpeg"
	_ "image/png"

	"github.com/katalvlaran/heatpath/field"
)

// Sentinel errors for frame stacking. Wrap with %w upstream and test with
// errors.Is.
var (
	// ErrNoFrames reports an empty frame list passed to LoadVolume.
	ErrNoFrames = errors.New("raster: no input frames")
	// ErrFrameMismatch reports a frame whose size differs from the first.
	ErrFrameMismatch = errors.New("raster: frame dimensions mismatch")
)

// Decode reads one PNG or JPEG image and converts it to a cost field.
// Every pixel becomes its grayscale luma value, one byte per cell.
func Decode(r io.Reader) (*field.Field, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("raster: decode image: %w", err)
	}

	return fromImage(img)
}

// Load opens and decodes a single image file.
func Load(path string) (*field.Field, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open %s: %w", path, err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}

	return f, nil
}

// LoadImage opens a PNG or JPEG file without cost conversion, for callers
// that draw on the original pixels.
func LoadImage(path string) (image.Image, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open %s: %w", path, err)
	}
	defer fh.Close()

	img, _, err := image.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("raster: decode image: %w (%s)", err, path)
	}

	return img, nil
}

// LoadVolume decodes a frame sequence into a volume, one layer per path in
// the given order. All frames must share the first frame's dimensions.
func LoadVolume(paths []string) (*field.Volume, error) {
	if len(paths) == 0 {
		return nil, ErrNoFrames
	}

	frames := make([]*field.Field, 0, len(paths))
	for i, path := range paths {
		f, err := Load(path)
		if err != nil {
			return nil, err
		}
		if i > 0 && (f.Width() != frames[0].Width() || f.Height() != frames[0].Height()) {
			return nil, fmt.Errorf("%w: frame %d is %d×%d, want %d×%d (%s)",
				ErrFrameMismatch, i, f.Width(), f.Height(), frames[0].Width(), frames[0].Height(), path)
		}
		frames = append(frames, f)
	}

	return field.NewVolumeFromFields(frames)
}

// FieldImage renders cost data back into a grayscale image, the inverse of
// Decode for grayscale inputs.
func FieldImage(f *field.Field) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width(), f.Height()))
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			img.SetGray(x, y, color.Gray{Y: f.Cost(x, y)})
		}
	}

	return img
}

// fromImage flattens any decoded image into luma cost cells.
func fromImage(img image.Image) (*field.Field, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	// Grayscale sources keep their bytes untouched.
	if g, ok := img.(*image.Gray); ok {
		cells := make([]uint8, 0, w*h)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := g.Pix[(y-b.Min.Y)*g.Stride : (y-b.Min.Y)*g.Stride+w]
			cells = append(cells, row...)
		}
		return field.NewFieldFlat(w, h, cells)
	}

	cells := make([]uint8, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			luma := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			cells = append(cells, luma.Y)
		}
	}

	return field.NewFieldFlat(w, h, cells)
}
