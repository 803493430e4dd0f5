package config

// DefaultConfig returns the built-in configuration.
//
// The include list accepts the usual front-of-book chapter spellings; the
// exclude list rejects subsection numbering and back-matter sections that
// commonly carry top-level bookmarks of their own.
func DefaultConfig() Config {
	return Config{
		Patterns: PatternConfig{
			Include: []string{
				`(?i)^chapter\s+\d+`,
				`(?i)^chapter\s+[ivxlc]+\b`,
				`(?i)^appendix\s*[a-z0-9]?\b`,
				`(?i)^part\s+[\divxlc]+\b`,
			},
			Exclude: []string{
				`^\d+\.\d+`,
				`(?i)^(glossary|references|index|solutions|key concepts)\b`,
				`(?i)^(review questions|critical thinking questions|self-check questions)\b`,
			},
		},
		Output: OutputConfig{
			SequencePrefixes:  true,
			UnidentifiedTitle: "Unidentified Pages",
		},
	}
}
