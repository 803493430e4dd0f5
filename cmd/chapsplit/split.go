package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/chapsplit/internal/chapters"
	"github.com/jackzampolin/chapsplit/internal/config"
	"github.com/jackzampolin/chapsplit/internal/console"
	"github.com/jackzampolin/chapsplit/internal/outline"
	"github.com/jackzampolin/chapsplit/internal/split"
)

// plan bundles everything needed between classification and export.
type plan struct {
	doc      *outline.Document
	chapters []chapters.Chapter
	cfg      *config.Config
}

// buildPlan runs load -> flatten -> classify -> ranges. Shared by the
// split and inspect commands; writes nothing.
func buildPlan(inputPath string, includeAll bool, logger *slog.Logger) (*plan, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	pats, err := chapters.CompilePatterns(cfg.Patterns.Include, cfg.Patterns.Exclude)
	if err != nil {
		return nil, err
	}

	doc, err := outline.Load(inputPath, logger)
	if err != nil {
		if errors.Is(err, outline.ErrNoOutline) {
			return nil, fmt.Errorf("%s has no bookmarks; cannot split by chapters", inputPath)
		}
		return nil, err
	}
	logger.Debug("outline loaded", "pages", doc.PageCount, "bookmarks", len(doc.Entries))

	cls := chapters.Classify(doc.Entries, pats, includeAll)
	if cls.Fallback {
		logger.Warn("no bookmarks matched the chapter patterns; using all top-level bookmarks")
	}

	chs, err := chapters.ComputeRanges(cls, doc.PageCount, cfg.Output.UnidentifiedTitle)
	if err != nil {
		if errors.Is(err, chapters.ErrNoChapters) {
			return nil, fmt.Errorf("no chapters could be resolved from %s", inputPath)
		}
		return nil, err
	}
	if err := chapters.Validate(chs, doc.PageCount); err != nil {
		return nil, fmt.Errorf("internal range computation error: %w", err)
	}

	return &plan{doc: doc, chapters: chs, cfg: cfg}, nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	inputPath := args[0]

	p, err := buildPlan(inputPath, includeAll, logger)
	if err != nil {
		return err
	}

	fmt.Print(console.PlanTable(p.chapters, p.doc.PageCount))

	if !assumeYes {
		ok, err := console.Confirm(os.Stdin, os.Stdout, "Split into these files?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted. No files were written.")
			return nil
		}
	}

	res, err := split.Export(inputPath, p.chapters, split.Options{
		OutputBase:       outputBase,
		SequencePrefixes: p.cfg.Output.SequencePrefixes && !noSequence,
		WriteReport:      writeReport,
		Logger:           logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d chapter files and %s to %s\n",
		len(res.Files), split.Stem(inputPath)+"_chapter_summary.csv", res.Dir)
	return nil
}
