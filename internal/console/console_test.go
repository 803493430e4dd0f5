package console

import (
	"errors"
	"strings"
	"testing"

	"github.com/jackzampolin/chapsplit/internal/chapters"
)

func TestPlanTable(t *testing.T) {
	chs := []chapters.Chapter{
		{Number: 1, Title: "Chapter 1", Start: 1, End: 44},
		{Title: "Unidentified Pages", Start: 45, End: 49, Gap: true},
		{Number: 2, Title: "Chapter 2", Start: 50, End: 100},
	}

	out := PlanTable(chs, 100)

	for _, want := range []string{"Chapter 1", "Chapter 2", "Unidentified Pages", "3 ranges covering 100 pages"} {
		if !strings.Contains(out, want) {
			t.Errorf("plan table missing %q:\n%s", want, out)
		}
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"yes", "yes\n", true},
		{"uppercase", "YES\n", true},
		{"padded", "  y  \n", true},
		{"n", "n\n", false},
		{"empty line declines", "\n", false},
		{"closed stdin declines", "", false},
		{"garbage declines", "sure\n", false},
		{"yes without newline accepts", "y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			got, err := Confirm(strings.NewReader(tt.input), &out, "Proceed?")
			if err != nil {
				t.Fatalf("Confirm returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "Proceed?") {
				t.Errorf("prompt not written: %q", out.String())
			}
		})
	}

	t.Run("read error is surfaced", func(t *testing.T) {
		var out strings.Builder
		_, err := Confirm(failingReader{}, &out, "Proceed?")
		if err == nil {
			t.Fatal("expected error from broken input")
		}
	})
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("terminal went away")
}
