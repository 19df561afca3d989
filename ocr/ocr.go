//go:build ocr

// Package ocr provides OCR (Optical Character Recognition) of the
// instrument's display, producing word-level detections for the
// parsing pipeline.
//
// This package wraps the Tesseract OCR engine via gosseract. It
// requires Tesseract to be installed on the system. On macOS, install
// via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/ergscan/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string
// (e.g., "eng+fra"). Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetWhitelist restricts recognition to the given characters. The
// display's vocabulary is small, so a whitelist cuts down confusions
// considerably.
func (c *Client) SetWhitelist(chars string) error {
	return c.client.SetWhitelist(chars)
}

// RecognizeWords performs OCR on image data (PNG or JPEG) and returns
// one detection per recognized word, with bounding boxes normalized to
// the image's own 0-1 top-left space and confidences scaled to [0,1].
func (c *Client) RecognizeWords(imageData []byte) ([]model.Detection, error) {
	config, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to read image dimensions: %w", err)
	}
	if config.Width == 0 || config.Height == 0 {
		return nil, fmt.Errorf("image has no area")
	}

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	width := float64(config.Width)
	height := float64(config.Height)

	detections := make([]model.Detection, 0, len(boxes))
	for _, box := range boxes {
		detections = append(detections, model.Detection{
			Text:       box.Word,
			Confidence: box.Confidence / 100,
			Box: model.NewBBox(
				float64(box.Box.Min.X)/width,
				float64(box.Box.Min.Y)/height,
				float64(box.Box.Dx())/width,
				float64(box.Box.Dy())/height,
			),
		})
	}
	return detections, nil
}
