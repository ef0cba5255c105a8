package internal

import (
	"errors"
	"image"
	"io"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// RasterizeSVG renders an SVG document to an RGBA image of the given size.
// A non-positive width or height falls back to the document's own viewbox
// dimensions.
func RasterizeSVG(r io.Reader, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}

	if width <= 0 {
		width = int(icon.ViewBox.W)
	}
	if height <= 0 {
		height = int(icon.ViewBox.H)
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("svg has no intrinsic size; width and height required")
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return rgba, nil
}

// RasterizeSVGFile is RasterizeSVG reading from a file path.
func RasterizeSVGFile(path string, width, height int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return RasterizeSVG(f, width, height)
}
