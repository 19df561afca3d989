// Package ergscan turns noisy OCR detections of a rowing ergometer's
// workout summary screen into a structured, typed table.
//
// One-shot parsing of already guide-relative detections:
//
//	table := ergscan.Parse(detections)
//	fmt.Println(table.WorkoutType, table.AverageConfidence)
//
// Screens rarely parse fully from a single frame, so the usual shape
// is a capture session that accumulates attempts until the table is
// complete:
//
//	session := ergscan.NewSession().GuideOrigin(guide.OriginBottomLeft)
//	for !session.Complete() {
//	    detections := recognizeNextFrame() // external recognizer
//	    session.Observe(detections)
//	    fmt.Printf("progress: %.0f%%\n", session.Progress()*100)
//	}
//	table := session.Table()
//
// The pipeline packages (layout, normalize, match, classify, tables,
// guide) are also usable directly for lower-level control.
package ergscan

import (
	"github.com/tsawler/ergscan/model"
	"github.com/tsawler/ergscan/tables"
)

// Parse parses one capture's guide-relative detections into a table
// using default options. Detections must already be in the canonical
// top-left 0-1 guide space; use a Session or the guide package to map
// raw recognizer output first.
func Parse(detections []model.GuideRelativeDetection) *model.RecognizedTable {
	return tables.NewBuilder().Build(detections)
}
