// Command ergscan runs the workout-screen parsing pipeline over a
// stored recognizer result and prints or exports the recognized table.
//
// Input is either an hOCR file (Tesseract's HTML output, always
// available) or an image (requires building with -tags ocr and a local
// Tesseract install):
//
//	ergscan -hocr capture.hocr
//	ergscan -image screen.png -format csv -o workout.csv
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tsawler/ergscan"
	"github.com/tsawler/ergscan/export"
	"github.com/tsawler/ergscan/guide"
	"github.com/tsawler/ergscan/hocr"
	"github.com/tsawler/ergscan/model"
	"github.com/tsawler/ergscan/ocr"
)

func main() {
	var (
		hocrPath   = flag.String("hocr", "", "path to an hOCR file to parse")
		imagePath  = flag.String("image", "", "path to an image to recognize (requires -tags ocr)")
		format     = flag.String("format", "text", "output format: text, csv or xlsx")
		outPath    = flag.String("o", "", "output file (default stdout; required for xlsx)")
		bottomLeft = flag.Bool("bottom-left", false, "detections use a bottom-left origin")
		verbose    = flag.Bool("v", false, "log pipeline phase decisions")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*hocrPath, *imagePath, *format, *outPath, *bottomLeft, logger); err != nil {
		logger.Error("ergscan failed", "error", err)
		os.Exit(1)
	}
}

func run(hocrPath, imagePath, format, outPath string, bottomLeft bool, logger *slog.Logger) error {
	detections, err := loadDetections(hocrPath, imagePath)
	if err != nil {
		return err
	}
	logger.Debug("loaded detections", "count", len(detections))

	session := ergscan.NewSession().Logger(logger)
	if bottomLeft {
		session.GuideOrigin(guide.OriginBottomLeft)
	}
	table := session.Observe(detections)
	logger.Info("parsed capture",
		"session", session.ID().String(),
		"complete", session.Complete(),
		"progress", fmt.Sprintf("%.0f%%", session.Progress()*100),
		"confidence", fmt.Sprintf("%.2f", table.AverageConfidence))

	return writeTable(table, format, outPath)
}

// loadDetections reads detections from whichever input was given
func loadDetections(hocrPath, imagePath string) ([]model.Detection, error) {
	switch {
	case hocrPath != "" && imagePath != "":
		return nil, fmt.Errorf("pass either -hocr or -image, not both")
	case hocrPath != "":
		return hocr.Open(hocrPath)
	case imagePath != "":
		return recognizeImage(imagePath)
	default:
		return nil, fmt.Errorf("one of -hocr or -image is required")
	}
}

// recognizeImage runs Tesseract over an image file
func recognizeImage(path string) ([]model.Detection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return client.RecognizeWords(data)
}

// writeTable renders the table in the requested format
func writeTable(table *model.RecognizedTable, format, outPath string) error {
	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "text":
		_, err := fmt.Fprintln(out, table.String())
		return err
	case "csv":
		return export.WriteCSV(out, table)
	case "xlsx":
		if outPath == "" {
			return fmt.Errorf("xlsx output requires -o")
		}
		return export.WriteXLSX(out, table)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
