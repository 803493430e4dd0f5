// Package console renders the chapter plan preview and handles the
// pre-write confirmation prompt.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jackzampolin/chapsplit/internal/chapters"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	gapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFAA00"))
)

// PlanTable renders the computed chapter plan as an aligned table.
func PlanTable(chs []chapters.Chapter, pageCount int) string {
	titleWidth := len("Title")
	for _, ch := range chs {
		if len(ch.Title) > titleWidth {
			titleWidth = len(ch.Title)
		}
	}

	var b strings.Builder
	format := fmt.Sprintf("%%-4s  %%-%ds  %%5s  %%5s  %%5s\n", titleWidth)

	b.WriteString(headerStyle.Render(strings.TrimRight(
		fmt.Sprintf(format, "#", "Title", "Start", "End", "Pages"), "\n")))
	b.WriteString("\n")

	for _, ch := range chs {
		number := "-"
		if !ch.Gap {
			number = strconv.Itoa(ch.Number)
		}
		row := strings.TrimRight(fmt.Sprintf(format,
			number,
			ch.Title,
			strconv.Itoa(ch.Start),
			strconv.Itoa(ch.End),
			strconv.Itoa(ch.Pages()),
		), "\n")
		if ch.Gap {
			row = gapStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString(totalStyle.Render(fmt.Sprintf("%d ranges covering %d pages", len(chs), pageCount)))
	b.WriteString("\n")
	return b.String()
}

// Confirm prints the prompt and reads a yes/no answer from r. Anything
// other than "y" or "yes" (case-insensitive) declines.
func Confirm(r io.Reader, w io.Writer, prompt string) (bool, error) {
	fmt.Fprint(w, promptStyle.Render(prompt+" [y/N]")+" ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
