package split

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/jackzampolin/chapsplit/internal/chapters"
)

var summaryHeader = []string{"Chapter Number", "Chapter Name", "Start Page", "End Page", "Total Pages"}

// writeSummaryCSV writes the chapter summary table. Gap records carry "-"
// in the number column.
func writeSummaryCSV(path string, chs []chapters.Chapter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(summaryHeader); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	for _, ch := range chs {
		if err := w.Write(summaryRow(ch)); err != nil {
			return fmt.Errorf("failed to write summary row for %q: %w", ch.Title, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush summary: %w", err)
	}
	return nil
}

func summaryRow(ch chapters.Chapter) []string {
	number := "-"
	if !ch.Gap {
		number = strconv.Itoa(ch.Number)
	}
	return []string{
		number,
		ch.Title,
		strconv.Itoa(ch.Start),
		strconv.Itoa(ch.End),
		strconv.Itoa(ch.Pages()),
	}
}

// writeReportHTML renders the summary as an HTML page, going through a
// markdown table so the layout matches the CSV columns.
func writeReportHTML(path, title string, chs []chapters.Chapter) error {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s: chapter summary\n\n", title)
	md.WriteString("| " + strings.Join(summaryHeader, " | ") + " |\n")
	md.WriteString("|" + strings.Repeat(" --- |", len(summaryHeader)) + "\n")
	for _, ch := range chs {
		cells := summaryRow(ch)
		for i, c := range cells {
			cells[i] = strings.ReplaceAll(c, "|", `\|`)
		}
		md.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	renderer := goldmark.New(goldmark.WithExtensions(extension.Table))
	var body bytes.Buffer
	if err := renderer.Convert([]byte(md.String()), &body); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", title)
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	if err := os.WriteFile(path, page.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
