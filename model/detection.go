package model

// Detection is one raw output of an external text recognizer: the
// recognized string, the recognizer's confidence, and the bounding box
// in a normalized 0-1 coordinate space whose origin convention is
// defined by the producer (see the guide package for mapping).
//
// Detections are value types; the pipeline never mutates them.
type Detection struct {
	Text       string
	Confidence float64 // 0-1
	Box        BBox
}

// GuideRelativeDetection is a Detection re-expressed in the canonical
// top-left-origin 0-1 space local to the instrument's display region.
// All pipeline stages after the guide mapping operate on these.
type GuideRelativeDetection struct {
	Text       string
	Confidence float64 // 0-1
	Box        BBox
}

// Center returns the center point of the detection's bounding box.
func (d GuideRelativeDetection) Center() Point {
	return d.Box.Center()
}
