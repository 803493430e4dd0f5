// Package chapters turns a flattened PDF outline into an ordered,
// gap-free list of chapter page ranges.
package chapters

import "errors"

// ErrNoChapters indicates no chapter could be resolved from the outline,
// even after falling back to all top-level bookmarks.
var ErrNoChapters = errors.New("no chapters detected")

// Chapter is a resolved page range. Start and End are 1-based and
// inclusive. Gap records are synthesized fillers for pages not claimed by
// any detected chapter; they carry Number 0.
type Chapter struct {
	Number int
	Title  string
	Start  int
	End    int
	Gap    bool
}

// Pages returns the number of pages the chapter spans.
func (c Chapter) Pages() int {
	return c.End - c.Start + 1
}
