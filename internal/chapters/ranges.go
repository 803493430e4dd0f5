package chapters

import "fmt"

// ComputeRanges assigns a page range to each classified chapter and fills
// uncovered pages with synthesized gap records.
//
// A chapter runs from its own start page up to the page before the next
// boundary (any candidate bookmark, kept or not), or to the last page of
// the document. Pages before the first chapter, or claimed only by
// excluded bookmarks, become "unidentified" gap records so that the
// returned ranges cover exactly [1, pageCount] with no overlaps.
func ComputeRanges(c Classification, pageCount int, gapTitle string) ([]Chapter, error) {
	if len(c.Chapters) == 0 {
		return nil, ErrNoChapters
	}
	if pageCount < 1 {
		return nil, fmt.Errorf("invalid page count %d", pageCount)
	}

	// Boundaries and chapters are already page-sorted and deduped by
	// Classify. Every chapter start is also a boundary.
	isChapter := make(map[int]bool, len(c.Chapters))
	for _, e := range c.Chapters {
		isChapter[e.Page] = true
	}

	var ranged []Chapter
	num := 0
	for i, e := range c.Boundaries {
		end := pageCount
		if i+1 < len(c.Boundaries) {
			end = c.Boundaries[i+1].Page - 1
		}
		if !isChapter[e.Page] {
			continue
		}
		num++
		ranged = append(ranged, Chapter{
			Number: num,
			Title:  e.Title,
			Start:  e.Page,
			End:    end,
		})
	}

	if len(ranged) == 0 {
		return nil, ErrNoChapters
	}

	return fillGaps(ranged, pageCount, gapTitle), nil
}

// fillGaps inserts gap records so the result covers [1, pageCount].
func fillGaps(ranged []Chapter, pageCount int, gapTitle string) []Chapter {
	var out []Chapter
	cursor := 1
	for _, ch := range ranged {
		if ch.Start > cursor {
			out = append(out, Chapter{
				Title: gapTitle,
				Start: cursor,
				End:   ch.Start - 1,
				Gap:   true,
			})
		}
		out = append(out, ch)
		cursor = ch.End + 1
	}
	if cursor <= pageCount {
		out = append(out, Chapter{
			Title: gapTitle,
			Start: cursor,
			End:   pageCount,
			Gap:   true,
		})
	}
	return out
}

// Validate checks the coverage invariant: ordered, non-overlapping ranges
// whose union is exactly [1, pageCount].
func Validate(chs []Chapter, pageCount int) error {
	cursor := 1
	for _, ch := range chs {
		if ch.Start != cursor {
			return fmt.Errorf("range %q starts at %d, want %d", ch.Title, ch.Start, cursor)
		}
		if ch.End < ch.Start {
			return fmt.Errorf("range %q ends at %d before start %d", ch.Title, ch.End, ch.Start)
		}
		cursor = ch.End + 1
	}
	if cursor != pageCount+1 {
		return fmt.Errorf("ranges cover pages 1-%d, want 1-%d", cursor-1, pageCount)
	}
	return nil
}
