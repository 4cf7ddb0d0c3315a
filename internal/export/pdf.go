package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives the download filename stem from a report title:
// lowercased, runs of non-alphanumerics collapsed to single dashes.
// Titles with no usable characters fall back to "grafico".
func Slug(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "grafico"
	}
	return slug
}

// ChartPDF renders a single landscape page with the report title and an
// embedded PNG capture of the chart.
func ChartPDF(title string, chartPNG []byte) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")

	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader("chart", opts, bytes.NewReader(chartPNG))
	if pdf.Err() {
		return nil, fmt.Errorf("register chart image: %v", pdf.Error())
	}

	// A4 landscape is 297x210mm; leave margins around the capture.
	pdf.ImageOptions("chart", 15, 25, 267, 0, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
