package chapters

import (
	"errors"
	"testing"

	"github.com/jackzampolin/chapsplit/internal/outline"
)

const gapTitle = "Unidentified Pages"

func mustRanges(t *testing.T, c Classification, pageCount int) []Chapter {
	t.Helper()
	chs, err := ComputeRanges(c, pageCount, gapTitle)
	if err != nil {
		t.Fatalf("ComputeRanges failed: %v", err)
	}
	if err := Validate(chs, pageCount); err != nil {
		t.Fatalf("coverage invariant violated: %v", err)
	}
	return chs
}

func TestComputeRanges(t *testing.T) {
	t.Run("excluded bookmark becomes a gap", func(t *testing.T) {
		// 300-page book where "Solutions" is a boundary but not a chapter.
		chapters := []outline.Entry{
			{Title: "Chapter 1", Level: 0, Page: 1},
			{Title: "Chapter 2", Level: 0, Page: 45},
			{Title: "Chapter 3", Level: 0, Page: 95},
		}
		boundaries := []outline.Entry{
			{Title: "Chapter 1", Level: 0, Page: 1},
			{Title: "Chapter 2", Level: 0, Page: 45},
			{Title: "Solutions", Level: 0, Page: 90},
			{Title: "Chapter 3", Level: 0, Page: 95},
		}

		chs := mustRanges(t, Classification{Chapters: chapters, Boundaries: boundaries}, 300)

		want := []Chapter{
			{Number: 1, Title: "Chapter 1", Start: 1, End: 44},
			{Number: 2, Title: "Chapter 2", Start: 45, End: 89},
			{Title: gapTitle, Start: 90, End: 94, Gap: true},
			{Number: 3, Title: "Chapter 3", Start: 95, End: 300},
		}
		if len(chs) != len(want) {
			t.Fatalf("expected %d records, got %d: %+v", len(want), len(chs), chs)
		}
		for i := range want {
			if chs[i] != want[i] {
				t.Errorf("record %d = %+v, want %+v", i, chs[i], want[i])
			}
		}
	})

	t.Run("front matter becomes a leading gap", func(t *testing.T) {
		entries := []outline.Entry{
			{Title: "Chapter 1", Level: 0, Page: 9},
			{Title: "Chapter 2", Level: 0, Page: 20},
		}

		chs := mustRanges(t, Classification{Chapters: entries, Boundaries: entries}, 30)

		if !chs[0].Gap || chs[0].Start != 1 || chs[0].End != 8 {
			t.Errorf("expected leading gap 1-8, got %+v", chs[0])
		}
		if chs[1].Number != 1 || chs[1].Start != 9 || chs[1].End != 19 {
			t.Errorf("unexpected first chapter: %+v", chs[1])
		}
		if chs[2].End != 30 {
			t.Errorf("last chapter should run to page 30, got %+v", chs[2])
		}
	})

	t.Run("single chapter covers whole document", func(t *testing.T) {
		entries := []outline.Entry{{Title: "Chapter 1", Level: 0, Page: 1}}

		chs := mustRanges(t, Classification{Chapters: entries, Boundaries: entries}, 10)
		if len(chs) != 1 {
			t.Fatalf("expected 1 record, got %d", len(chs))
		}
		if chs[0].Start != 1 || chs[0].End != 10 {
			t.Errorf("expected range 1-10, got %+v", chs[0])
		}
	})

	t.Run("bookmark on the last page", func(t *testing.T) {
		entries := []outline.Entry{
			{Title: "Chapter 1", Level: 0, Page: 1},
			{Title: "Chapter 2", Level: 0, Page: 10},
		}

		chs := mustRanges(t, Classification{Chapters: entries, Boundaries: entries}, 10)
		last := chs[len(chs)-1]
		if last.Start != 10 || last.End != 10 || last.Pages() != 1 {
			t.Errorf("expected single-page final chapter, got %+v", last)
		}
	})

	t.Run("no chapters is an error", func(t *testing.T) {
		_, err := ComputeRanges(Classification{}, 100, gapTitle)
		if !errors.Is(err, ErrNoChapters) {
			t.Errorf("expected ErrNoChapters, got %v", err)
		}
	})

	t.Run("gap records carry number zero", func(t *testing.T) {
		entries := []outline.Entry{{Title: "Chapter 1", Level: 0, Page: 5}}

		chs := mustRanges(t, Classification{Chapters: entries, Boundaries: entries}, 10)
		if chs[0].Number != 0 || !chs[0].Gap {
			t.Errorf("expected unnumbered gap record, got %+v", chs[0])
		}
		if chs[1].Number != 1 {
			t.Errorf("expected chapter number 1, got %+v", chs[1])
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		chs       []Chapter
		pageCount int
		wantErr   bool
	}{
		{
			name:      "exact cover",
			chs:       []Chapter{{Start: 1, End: 5}, {Start: 6, End: 10}},
			pageCount: 10,
		},
		{
			name:      "hole",
			chs:       []Chapter{{Start: 1, End: 4}, {Start: 6, End: 10}},
			pageCount: 10,
			wantErr:   true,
		},
		{
			name:      "overlap",
			chs:       []Chapter{{Start: 1, End: 6}, {Start: 6, End: 10}},
			pageCount: 10,
			wantErr:   true,
		},
		{
			name:      "short cover",
			chs:       []Chapter{{Start: 1, End: 8}},
			pageCount: 10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.chs, tt.pageCount)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
