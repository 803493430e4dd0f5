// Package split writes per-chapter PDFs and the chapter summary for a
// computed chapter plan.
package split

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/jackzampolin/chapsplit/internal/chapters"
)

// Options control the export.
type Options struct {
	OutputBase       string // base directory; empty means next to the input
	SequencePrefixes bool
	WriteReport      bool // also render the HTML report
	Logger           *slog.Logger
}

// Result describes what was written.
type Result struct {
	Dir         string
	Files       []string // chapter PDF filenames, in page order
	SummaryPath string
	ReportPath  string // empty unless WriteReport
}

// Export slices each chapter's page range out of the source PDF and
// writes the results plus the summary table.
//
// All files are written into a staging directory first and moved into the
// final "<stem>_chapters" directory only after every write succeeded, so
// a failed run leaves no partial output behind.
func Export(inputPath string, chs []chapters.Chapter, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if len(chs) == 0 {
		return nil, chapters.ErrNoChapters
	}

	finalDir := OutputDir(inputPath, opts.OutputBase)
	stagingDir := filepath.Join(filepath.Dir(finalDir),
		fmt.Sprintf(".chapsplit-%s", uuid.New().String()[:8]))

	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	conf := model.NewDefaultConfiguration()
	namer := NewNamer(len(chs), opts.SequencePrefixes)

	res := &Result{Dir: finalDir}
	for _, ch := range chs {
		name := namer.Name(ch.Title)
		outPath := filepath.Join(stagingDir, name)
		pages := []string{fmt.Sprintf("%d-%d", ch.Start, ch.End)}

		if err := api.TrimFile(inputPath, outPath, pages, conf); err != nil {
			return nil, fmt.Errorf("failed to extract pages %d-%d for %q: %w",
				ch.Start, ch.End, ch.Title, err)
		}
		log.Info("wrote chapter", "file", name, "pages", fmt.Sprintf("%d-%d", ch.Start, ch.End))
		res.Files = append(res.Files, name)
	}

	summaryName := Stem(inputPath) + "_chapter_summary.csv"
	if err := writeSummaryCSV(filepath.Join(stagingDir, summaryName), chs); err != nil {
		return nil, err
	}
	res.SummaryPath = filepath.Join(finalDir, summaryName)

	if opts.WriteReport {
		reportName := Stem(inputPath) + "_chapter_summary.html"
		title := Stem(inputPath)
		if err := writeReportHTML(filepath.Join(stagingDir, reportName), title, chs); err != nil {
			return nil, err
		}
		res.ReportPath = filepath.Join(finalDir, reportName)
	}

	if err := promote(stagingDir, finalDir); err != nil {
		return nil, err
	}

	log.Info("split complete", "dir", finalDir, "files", len(res.Files))
	return res, nil
}

// promote moves the fully-written staging directory into place. When the
// final directory already exists, entries are moved in individually.
func promote(stagingDir, finalDir string) error {
	if _, err := os.Stat(finalDir); os.IsNotExist(err) {
		if err := os.Rename(stagingDir, finalDir); err == nil {
			return nil
		}
		// Fall through to per-entry moves (e.g. rename raced with an
		// external mkdir).
	}

	if err := os.MkdirAll(finalDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	entries, err := os.ReadDir(stagingDir)
	if err != nil {
		return fmt.Errorf("failed to read staging directory: %w", err)
	}
	for _, e := range entries {
		src := filepath.Join(stagingDir, e.Name())
		dst := filepath.Join(finalDir, e.Name())
		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf("failed to move %s into place: %w", e.Name(), err)
		}
	}
	return nil
}
