package hocr

import (
	"math"
	"strings"
	"testing"
)

const sampleHOCR = `<!DOCTYPE html>
<html>
<body>
  <div class="ocr_page" id="page_1" title="image &quot;frame.png&quot;; bbox 0 0 1000 500; ppageno 0">
    <div class="ocr_carea" title="bbox 50 40 950 460">
      <span class="ocr_line" title="bbox 100 50 400 80; baseline 0 0">
        <span class="ocrx_word" title="bbox 100 50 200 80; x_wconf 91">2000m</span>
        <span class="ocrx_word" title="bbox 250 50 400 80; x_wconf 87">4:00.0</span>
      </span>
      <span class="ocr_line" title="bbox 100 100 200 130">
        <span class="ocrx_word" title="bbox 100 100 200 130; x_wconf 63">  time </span>
        <span class="ocrx_word" title="bbox 210 100 260 130; x_wconf 40">   </span>
        <span class="ocrx_word" title="not a bbox">noise</span>
        <span class="ocrx_word" title="bbox 300 100 360 130">25</span>
      </span>
    </div>
  </div>
</body>
</html>`

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParse(t *testing.T) {
	detections, err := Parse(strings.NewReader(sampleHOCR))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(detections) != 4 {
		t.Fatalf("Expected 4 detections, got %d", len(detections))
	}

	first := detections[0]
	if first.Text != "2000m" {
		t.Errorf("Expected text 2000m, got %q", first.Text)
	}
	if first.Confidence != 0.91 {
		t.Errorf("Expected confidence 0.91, got %v", first.Confidence)
	}
	// page is 1000x500, word bbox 100 50 200 80
	if !approxEqual(first.Box.X, 0.1) || !approxEqual(first.Box.Y, 0.1) {
		t.Errorf("Unexpected box origin (%v, %v)", first.Box.X, first.Box.Y)
	}
	if !approxEqual(first.Box.Width, 0.1) || !approxEqual(first.Box.Height, 0.06) {
		t.Errorf("Unexpected box size (%v, %v)", first.Box.Width, first.Box.Height)
	}

	if detections[2].Text != "time" {
		t.Errorf("Expected whitespace-trimmed text, got %q", detections[2].Text)
	}
	if detections[3].Text != "25" || detections[3].Confidence != 0 {
		t.Errorf("Expected word without x_wconf to default to 0, got %q %v",
			detections[3].Text, detections[3].Confidence)
	}
}

func TestParse_NoPage(t *testing.T) {
	_, err := Parse(strings.NewReader(`<html><body><p>hello</p></body></html>`))
	if err == nil {
		t.Error("Expected error for document without ocr_page")
	}
}

func TestParse_PageWithoutBBox(t *testing.T) {
	_, err := Parse(strings.NewReader(`<html><body><div class="ocr_page" title="ppageno 0"></div></body></html>`))
	if err == nil {
		t.Error("Expected error for page without bbox")
	}
}

func TestParseBBox(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected pixelBox
		ok       bool
	}{
		{"plain", "bbox 1 2 3 4", pixelBox{1, 2, 3, 4}, true},
		{"after other props", `image "x.png"; bbox 10 20 30 40; ppageno 0`, pixelBox{10, 20, 30, 40}, true},
		{"missing", "ppageno 0", pixelBox{}, false},
		{"malformed", "bbox 1 2 three 4", pixelBox{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseBBox(tt.title)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("parseBBox(%q) = %+v, %v; expected %+v, %v", tt.title, got, ok, tt.expected, tt.ok)
			}
		})
	}
}
