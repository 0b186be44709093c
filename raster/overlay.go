// Package raster - route overlays and PNG output.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/heatpath/field"
)

// overlayRadius is the radius in pixels of one route marker.
const overlayRadius = 3

// Overlay copies the source frame and marks every given position with a
// filled red circle of overlayRadius pixels. The source is left untouched.
func Overlay(src image.Image, pts []field.Pos2) *image.RGBA {
	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	dc := gg.NewContextForRGBA(rgba)
	dc.SetRGB255(255, 0, 0)
	for _, p := range pts {
		dc.DrawCircle(float64(p.X), float64(p.Y), overlayRadius)
		dc.Fill()
	}

	return rgba
}

// SavePNG writes any image to path in PNG format.
func SavePNG(path string, img image.Image) error {
	return save(path, func(fh *os.File) error { return png.Encode(fh, img) })
}

// Save writes the image in the format its extension names: .jpg and .jpeg
// encode JPEG at default quality, everything else encodes PNG.
func Save(path string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return save(path, func(fh *os.File) error { return jpeg.Encode(fh, img, nil) })
	default:
		return SavePNG(path, img)
	}
}

func save(path string, encode func(*os.File) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}

	if err = encode(fh); err != nil {
		fh.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	if err = fh.Close(); err != nil {
		return fmt.Errorf("raster: close %s: %w", path, err)
	}

	return nil
}
