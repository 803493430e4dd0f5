package split

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// illegalChars are characters that cannot appear in filenames on at least
// one supported filesystem.
var illegalChars = regexp.MustCompile(`[\\/:*?"<>|]`)

// SanitizeTitle strips filesystem-illegal characters from a bookmark
// title and trims the leftovers. An empty result becomes "Untitled".
func SanitizeTitle(title string) string {
	s := illegalChars.ReplaceAllString(title, "")
	s = strings.Trim(s, " .")
	if s == "" {
		s = "Untitled"
	}
	return s
}

// Namer produces output filenames for chapter PDFs. With sequence
// prefixes enabled, names carry a zero-padded ordinal so lexicographic
// order matches page order. Distinct titles that sanitize to the same
// string get a numeric suffix instead of silently overwriting.
type Namer struct {
	sequence bool
	width    int
	next     int
	used     map[string]bool
}

// NewNamer creates a Namer for total output files.
func NewNamer(total int, sequence bool) *Namer {
	width := len(fmt.Sprintf("%d", total))
	if width < 2 {
		width = 2
	}
	return &Namer{
		sequence: sequence,
		width:    width,
		used:     make(map[string]bool),
	}
}

// Name returns the filename for the next chapter in order.
func (n *Namer) Name(title string) string {
	n.next++
	base := SanitizeTitle(title)
	if n.sequence {
		base = fmt.Sprintf("%0*d_%s", n.width, n.next, base)
	}

	name := base
	for i := 2; n.used[name]; i++ {
		name = fmt.Sprintf("%s (%d)", base, i)
	}
	n.used[name] = true
	return name + ".pdf"
}

// OutputDir returns the conventional output directory for inputPath:
// a "<stem>_chapters" subfolder of either the input's directory or, when
// non-empty, baseDir.
func OutputDir(inputPath, baseDir string) string {
	dir := filepath.Dir(inputPath)
	if baseDir != "" {
		dir = baseDir
	}
	return filepath.Join(dir, Stem(inputPath)+"_chapters")
}

// Stem returns the input filename without directory or extension.
func Stem(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
