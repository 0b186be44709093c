package raster_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatpath/field"
	"github.com/katalvlaran/heatpath/raster"
)

// grayPNG encodes a w×h grayscale image with the given row-major bytes.
func grayPNG(t *testing.T, w, h int, cells []uint8) []byte {
	t.Helper()
	require.Len(t, cells, w*h)

	img := image.NewGray(image.Rect(0, 0, w, h))
	copy(img.Pix, cells)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

// writePNG drops an encoded image into dir and returns its path.
func writePNG(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

// TestDecode_GrayBytes verifies that grayscale pixels become cost cells
// byte for byte, walls included.
func TestDecode_GrayBytes(t *testing.T) {
	cells := []uint8{0, 50, 255, 100, 200, 30}
	f, err := raster.Decode(bytes.NewReader(grayPNG(t, 3, 2, cells)))
	require.NoError(t, err)

	require.Equal(t, 3, f.Width())
	require.Equal(t, 2, f.Height())
	for i, want := range cells {
		x, y := f.Coord(i)
		require.Equal(t, want, f.Cost(x, y), "cell (%d,%d)", x, y)
	}
	require.False(t, f.Passable(2, 0), "a 255 pixel is a wall")
}

// TestDecode_ColorLuma verifies the luma conversion for color inputs: a
// pure gray keeps its value and pure red lands on its standard luma.
func TestDecode_ColorLuma(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 100, G: 100, B: 100, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	f, err := raster.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, uint8(100), f.Cost(0, 0))
	require.Equal(t, uint8(76), f.Cost(1, 0), "ITU-R 601 luma of pure red")
}

// TestDecode_Garbage rejects non-image bytes.
func TestDecode_Garbage(t *testing.T) {
	_, err := raster.Decode(bytes.NewReader([]byte("not an image")))
	require.Error(t, err)
}

// TestLoad_MissingFile surfaces the underlying file error with its path.
func TestLoad_MissingFile(t *testing.T) {
	_, err := raster.Load(filepath.Join(t.TempDir(), "absent.png"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadVolume_Frames stacks two frames into layers in argument order.
func TestLoadVolume_Frames(t *testing.T) {
	dir := t.TempDir()
	p0 := writePNG(t, dir, "frame0.png", grayPNG(t, 2, 2, []uint8{1, 2, 3, 4}))
	p1 := writePNG(t, dir, "frame1.png", grayPNG(t, 2, 2, []uint8{5, 6, 7, 8}))

	v, err := raster.LoadVolume([]string{p0, p1})
	require.NoError(t, err)
	require.Equal(t, 2, v.Layers())
	require.Equal(t, uint8(1), v.Cost(field.Pos3{X: 0, Y: 0, Layer: 0}))
	require.Equal(t, uint8(4), v.Cost(field.Pos3{X: 1, Y: 1, Layer: 0}))
	require.Equal(t, uint8(5), v.Cost(field.Pos3{X: 0, Y: 0, Layer: 1}))
	require.Equal(t, uint8(8), v.Cost(field.Pos3{X: 1, Y: 1, Layer: 1}))
}

// TestLoadVolume_Mismatch rejects a frame whose size differs from frame 0.
func TestLoadVolume_Mismatch(t *testing.T) {
	dir := t.TempDir()
	p0 := writePNG(t, dir, "frame0.png", grayPNG(t, 2, 2, []uint8{1, 2, 3, 4}))
	p1 := writePNG(t, dir, "frame1.png", grayPNG(t, 3, 1, []uint8{5, 6, 7}))

	_, err := raster.LoadVolume([]string{p0, p1})
	require.ErrorIs(t, err, raster.ErrFrameMismatch)
}

// TestLoadVolume_Empty rejects an empty path list.
func TestLoadVolume_Empty(t *testing.T) {
	_, err := raster.LoadVolume(nil)
	require.ErrorIs(t, err, raster.ErrNoFrames)
}

// TestFieldImage_RoundTrip renders a field and decodes it back unchanged.
func TestFieldImage_RoundTrip(t *testing.T) {
	f, err := field.NewField([][]uint8{
		{0, 128, 255},
		{17, 99, 1},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, raster.FieldImage(f)))

	back, err := raster.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, f.Width(), back.Width())
	require.Equal(t, f.Height(), back.Height())
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			require.Equal(t, f.Cost(x, y), back.Cost(x, y), "cell (%d,%d)", x, y)
		}
	}
}

// TestOverlay_MarksPoints paints red markers without touching the source.
func TestOverlay_MarksPoints(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range src.Pix {
		src.Pix[i] = 255
	}

	out := raster.Overlay(src, []field.Pos2{{X: 5, Y: 5}})

	require.Equal(t, color.RGBA{R: 255, A: 255}, out.RGBAAt(5, 5), "marker center is pure red")
	require.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, out.RGBAAt(0, 0), "far corner keeps the background")
	require.Equal(t, uint8(255), src.GrayAt(5, 5).Y, "source stays untouched")
}

// TestSavePNG_WritesReadableFile writes a file Load can decode again.
func TestSavePNG_WritesReadableFile(t *testing.T) {
	f, err := field.NewField([][]uint8{{10, 20}, {30, 40}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, raster.SavePNG(path, raster.FieldImage(f)))

	back, err := raster.Load(path)
	require.NoError(t, err)
	require.Equal(t, uint8(40), back.Cost(1, 1))
}
