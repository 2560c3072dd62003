package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/joaopnk/ignite-timer/internal/models"
)

// WritePDF renders the cycle history to w.
func WritePDF(w io.Writer, cycles []models.Cycle, generatedAt time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Focus Report: %s", generatedAt.Format("2006-01-02")))
	pdf.Ln(12)

	if len(cycles) == 0 {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, "No cycles recorded.")
		pdf.Ln(8)
	}

	for _, c := range cycles {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, tr(fmt.Sprintf("#%d %s", c.ID, c.Task)))
		pdf.Ln(6)

		pdf.SetFont("Arial", "", 11)
		line := fmt.Sprintf("  %s - %d min, started %s", c.Status().Display(), c.MinutesAmount, c.StartDate.Format("15:04"))
		if at, ok := c.EndedAt(); ok {
			line += fmt.Sprintf(", ended %s", at.Format("15:04"))
		}
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	sum := Summarize(cycles)
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Finished: %d  Interrupted: %d  Focused: %s",
		sum.Finished, sum.Interrupted, FormatDuration(sum.Focused)))
	pdf.Ln(10)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// writeReport renders the document; tests replace it to simulate failures.
var writeReport = WritePDF

// ExportPDF writes the report into dir and returns the absolute file path.
func ExportPDF(dir string, cycles []models.Cycle, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("report_%s.pdf", now.Format("2006-01-02_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	if err := writeReport(f, cycles, now); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
