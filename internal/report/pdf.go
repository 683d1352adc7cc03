// Package report writes the stats PDF and the JSON data export.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/pomo/internal/stats"
	"github.com/go-pdf/fpdf"
)

// Stats is the content of one PDF statistics report.
type Stats struct {
	Title       string
	Range       stats.Range
	Category    string
	GeneratedAt time.Time
	Buckets     []stats.Bucket
	Totals      []stats.CategoryTotal
}

const (
	barMaxWidth = 110.0
	rowHeight   = 6.0
)

// WriteStatsPDF renders s as an A4 PDF at path.
func WriteStatsPDF(path string, s Stats) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(s.Title))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Range: %s   Category: %s   Generated: %s",
		s.Range, s.Category, s.GeneratedAt.Format("2006-01-02 15:04"))))
	pdf.Ln(10)

	count, minutes := stats.Summary(s.Buckets)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %d sessions, %d minutes", count, minutes))
	pdf.Ln(10)

	maxCount := 0
	for _, b := range s.Buckets {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	pdf.SetFont("Arial", "", 9)
	pdf.SetFillColor(255, 99, 71)
	for _, b := range s.Buckets {
		x, y := pdf.GetXY()
		pdf.CellFormat(25, rowHeight, b.Label, "", 0, "R", false, 0, "")
		if b.Count > 0 && maxCount > 0 {
			w := barMaxWidth * float64(b.Count) / float64(maxCount)
			pdf.Rect(x+28, y+1, w, rowHeight-2, "F")
		}
		pdf.SetXY(x+28+barMaxWidth+4, y)
		pdf.CellFormat(30, rowHeight, fmt.Sprintf("%d / %dm", b.Count, b.Minutes), "", 0, "L", false, 0, "")
		pdf.Ln(rowHeight)
	}

	if len(s.Totals) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "By category")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		for _, t := range s.Totals {
			share := 0.0
			if count > 0 {
				share = 100 * float64(t.Count) / float64(count)
			}
			pdf.Cell(0, rowHeight, tr(fmt.Sprintf("%s: %d (%.0f%%)", t.Name, t.Count, share)))
			pdf.Ln(rowHeight)
		}
	}
	return pdf.OutputFileAndClose(path)
}

// FileName builds a timestamped report file name.
func FileName(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, now.Format("20060102-150405"), ext)
}
