package chapters

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/jackzampolin/chapsplit/internal/outline"
)

// Patterns holds the compiled classification pattern sets. Exclusions win
// over inclusions.
type Patterns struct {
	include []*regexp.Regexp
	exclude []*regexp.Regexp
}

// CompilePatterns compiles the include/exclude regex lists.
func CompilePatterns(include, exclude []string) (*Patterns, error) {
	p := &Patterns{}
	for _, expr := range include {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", expr, err)
		}
		p.include = append(p.include, re)
	}
	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}
		p.exclude = append(p.exclude, re)
	}
	return p, nil
}

// Matches reports whether a bookmark title looks like a chapter: it must
// match an include pattern and no exclude pattern.
func (p *Patterns) Matches(title string) bool {
	if p.Excluded(title) {
		return false
	}
	for _, re := range p.include {
		if re.MatchString(title) {
			return true
		}
	}
	return false
}

// Excluded reports whether a title matches an exclude pattern.
func (p *Patterns) Excluded(title string) bool {
	for _, re := range p.exclude {
		if re.MatchString(title) {
			return true
		}
	}
	return false
}

// Classification is the outcome of sifting the flattened outline.
// Boundaries are all candidate entries (deduped, page order) and bound
// chapter extents whether or not they were kept as chapters; Chapters is
// the subset that will become output files.
type Classification struct {
	Chapters   []outline.Entry
	Boundaries []outline.Entry
	Fallback   bool
}

// Classify selects the chapter entries from a flattened outline.
//
// Normally only level-0 entries are considered and the pattern heuristics
// apply; if nothing matches, every level-0 entry is kept rather than
// producing an empty result. With includeAll, entries at every depth
// become chapters and the heuristics are skipped.
func Classify(entries []outline.Entry, p *Patterns, includeAll bool) Classification {
	var candidates []outline.Entry
	for _, e := range entries {
		if includeAll || e.Level == 0 {
			candidates = append(candidates, e)
		}
	}
	candidates = dedupeByPage(candidates)

	if includeAll {
		return Classification{Chapters: candidates, Boundaries: candidates}
	}

	var matched []outline.Entry
	for _, e := range candidates {
		if p.Matches(e.Title) {
			matched = append(matched, e)
		}
	}

	if len(matched) == 0 {
		return Classification{Chapters: candidates, Boundaries: candidates, Fallback: true}
	}
	return Classification{Chapters: matched, Boundaries: candidates}
}

// dedupeByPage sorts entries by page (stable, so document order breaks
// ties) and drops entries resolving to an already-claimed page.
func dedupeByPage(entries []outline.Entry) []outline.Entry {
	sorted := make([]outline.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Page < sorted[j].Page
	})

	var out []outline.Entry
	seen := make(map[int]bool, len(sorted))
	for _, e := range sorted {
		if seen[e.Page] {
			continue
		}
		seen[e.Page] = true
		out = append(out, e)
	}
	return out
}
