// Package hocr parses hOCR output (the HTML-based OCR result format
// Tesseract emits) into recognizer detections, so stored recognizer
// runs can be replayed through the parsing pipeline.
//
// Only the parts of the hOCR hierarchy this pipeline needs are read:
// the page bounding box (for coordinate normalization) and the
// word spans ("ocrx_word") with their bounding boxes and confidences.
package hocr

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/ergscan/model"
)

// Open reads detections from an hOCR file.
func Open(filename string) ([]model.Detection, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads detections from hOCR data. Word bounding boxes are
// normalized against the page bounding box into the 0-1 top-left
// space the pipeline expects; confidences (x_wconf, 0-100) scale to
// [0,1].
func Parse(r io.Reader) ([]model.Detection, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	page := findClass(doc, "ocr_page")
	if page == nil {
		return nil, fmt.Errorf("hOCR data has no ocr_page element")
	}

	pageBox, ok := parseBBox(attr(page, "title"))
	if !ok || pageBox.w() == 0 || pageBox.h() == 0 {
		return nil, fmt.Errorf("ocr_page element has no usable bbox")
	}

	var detections []model.Detection
	walk(page, func(n *html.Node) {
		if !hasClass(n, "ocrx_word") {
			return
		}
		title := attr(n, "title")
		box, ok := parseBBox(title)
		if !ok {
			return
		}
		text := strings.TrimSpace(textContent(n))
		if text == "" {
			return
		}
		detections = append(detections, model.Detection{
			Text:       text,
			Confidence: parseWordConfidence(title),
			Box: model.NewBBox(
				float64(box.x0-pageBox.x0)/float64(pageBox.w()),
				float64(box.y0-pageBox.y0)/float64(pageBox.h()),
				float64(box.w())/float64(pageBox.w()),
				float64(box.h())/float64(pageBox.h()),
			),
		})
	})

	return detections, nil
}

// pixelBox is an hOCR bbox in page pixel coordinates
type pixelBox struct {
	x0, y0, x1, y1 int
}

func (b pixelBox) w() int { return b.x1 - b.x0 }
func (b pixelBox) h() int { return b.y1 - b.y0 }

// parseBBox extracts the "bbox x0 y0 x1 y1" property from an hOCR
// title attribute.
func parseBBox(title string) (pixelBox, bool) {
	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(prop))
		if len(fields) != 5 || fields[0] != "bbox" {
			continue
		}
		var coords [4]int
		ok := true
		for i, field := range fields[1:] {
			v, err := strconv.Atoi(field)
			if err != nil {
				ok = false
				break
			}
			coords[i] = v
		}
		if ok {
			return pixelBox{coords[0], coords[1], coords[2], coords[3]}, true
		}
	}
	return pixelBox{}, false
}

// parseWordConfidence extracts the "x_wconf N" property from an hOCR
// title attribute, scaled to [0,1]. Words without one get 0.
func parseWordConfidence(title string) float64 {
	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(prop))
		if len(fields) == 2 && fields[0] == "x_wconf" {
			v, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return 0
			}
			return v / 100
		}
	}
	return 0
}

// walk visits every node under n in document order
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// findClass returns the first element under n carrying the given class
func findClass(n *html.Node, class string) *html.Node {
	if hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

// hasClass reports whether an element node carries the given class
func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// attr returns the value of the named attribute, or ""
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent returns the concatenated text under a node
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
