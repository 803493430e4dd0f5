// Package outline reads a PDF's bookmark tree and flattens it into an
// ordered list of entries with resolved physical page numbers.
package outline

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrNoOutline indicates the source PDF carries no bookmarks at all.
var ErrNoOutline = errors.New("pdf has no outline")

// Entry is a single flattened bookmark: title, nesting level (0 = top)
// and the 1-based physical page its target resolves to.
type Entry struct {
	Title string
	Level int
	Page  int
}

// Document is a loaded source PDF: its page count and flattened outline
// in document order.
type Document struct {
	Path      string
	PageCount int
	Entries   []Entry
}

// Load opens the PDF at path read-only, reads its page count and bookmark
// tree, and flattens the tree. Bookmarks whose targets don't resolve to a
// page inside the document are skipped with a warning.
func Load(path string, logger *slog.Logger) (*Document, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()

	pageCount, err := api.PageCount(f, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF %s: %w", path, err)
	}
	if pageCount == 0 {
		return nil, fmt.Errorf("PDF %s has no pages", path)
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to rewind PDF: %w", err)
	}

	bms, err := api.Bookmarks(f, conf)
	if err != nil {
		// pdfcpu reports an outline-free PDF as a plain error rather
		// than an exported sentinel.
		if strings.Contains(err.Error(), "no bookmarks") {
			return nil, ErrNoOutline
		}
		return nil, fmt.Errorf("failed to read outline from %s: %w", path, err)
	}
	if len(bms) == 0 {
		return nil, ErrNoOutline
	}

	return &Document{
		Path:      path,
		PageCount: pageCount,
		Entries:   Flatten(bms, pageCount, logger),
	}, nil
}

// Flatten walks the bookmark tree iteratively and returns entries in
// document order. An explicit stack bounds depth on pathological outlines.
func Flatten(bms []pdfcpu.Bookmark, pageCount int, logger *slog.Logger) []Entry {
	if logger == nil {
		logger = slog.Default()
	}

	type frame struct {
		bm    pdfcpu.Bookmark
		level int
	}

	var entries []Entry
	stack := make([]frame, 0, len(bms))

	// Seed in reverse so pops come off in document order.
	for i := len(bms) - 1; i >= 0; i-- {
		stack = append(stack, frame{bm: bms[i], level: 0})
	}

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if fr.bm.PageFrom < 1 || fr.bm.PageFrom > pageCount {
			logger.Warn("skipping bookmark with unresolvable target",
				"title", fr.bm.Title,
				"page", fr.bm.PageFrom,
			)
		} else {
			entries = append(entries, Entry{
				Title: fr.bm.Title,
				Level: fr.level,
				Page:  fr.bm.PageFrom,
			})
		}

		for i := len(fr.bm.Kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{bm: fr.bm.Kids[i], level: fr.level + 1})
		}
	}

	return entries
}
