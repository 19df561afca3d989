package guide

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/tsawler/ergscan/model"
)

// Crop cuts the guide region out of a captured frame and rescales it
// to the requested pixel size, so the recognizer only sees the
// instrument's display. The region is given in normalized 0-1
// coordinates of the frame.
func Crop(frame image.Image, region model.BBox, width, height int) (image.Image, error) {
	if !region.IsValid() {
		return nil, fmt.Errorf("crop region %+v has no area", region)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid crop target size %dx%d", width, height)
	}

	frameBounds := frame.Bounds()
	frameWidth := float64(frameBounds.Dx())
	frameHeight := float64(frameBounds.Dy())

	src := image.Rect(
		frameBounds.Min.X+int(region.Left()*frameWidth),
		frameBounds.Min.Y+int(region.Top()*frameHeight),
		frameBounds.Min.X+int(region.Right()*frameWidth),
		frameBounds.Min.Y+int(region.Bottom()*frameHeight),
	)
	src = src.Intersect(frameBounds)
	if src.Empty() {
		return nil, fmt.Errorf("crop region %+v falls outside the frame", region)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), frame, src, draw.Src, nil)
	return dst, nil
}
