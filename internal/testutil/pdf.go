// Package testutil builds small PDF fixtures for tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// WritePDF writes a minimal PDF with the given number of blank pages.
func WritePDF(t *testing.T, path string, pages int) {
	t.Helper()
	if pages < 1 {
		t.Fatalf("page count must be positive, got %d", pages)
	}

	var buf bytes.Buffer
	offsets := make([]int, 0, pages+3)

	buf.WriteString("%PDF-1.4\n")

	// Object 1: catalog
	offsets = append(offsets, buf.Len())
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	// Object 2: page tree
	offsets = append(offsets, buf.Len())
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [")
	for i := 0; i < pages; i++ {
		if i > 0 {
			buf.WriteString(" ")
		}
		fmt.Fprintf(&buf, "%d 0 R", i+3)
	}
	fmt.Fprintf(&buf, "] /Count %d >>\nendobj\n", pages)

	// Objects 3..pages+2: blank pages
	for i := 0; i < pages; i++ {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf,
			"%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n",
			i+3)
	}

	xrefOffset := buf.Len()
	size := pages + 3
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d %05d n \n", off, 0)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefOffset)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write fixture PDF: %v", err)
	}
}

// AddBookmarks attaches an outline to the PDF at path, in place.
func AddBookmarks(t *testing.T, path string, bms []pdfcpu.Bookmark) {
	t.Helper()

	tmp := filepath.Join(t.TempDir(), "with-bookmarks.pdf")
	conf := model.NewDefaultConfiguration()
	if err := api.AddBookmarksFile(path, tmp, bms, true, conf); err != nil {
		t.Fatalf("failed to add bookmarks: %v", err)
	}

	data, err := os.ReadFile(tmp)
	if err != nil {
		t.Fatalf("failed to read bookmarked PDF: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to replace fixture PDF: %v", err)
	}
}
