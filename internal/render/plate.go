package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/seedplate/internal/punch"
	"github.com/jask/seedplate/internal/session"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	legendStyle = lipgloss.NewStyle().Faint(true)
)

// Markers configures the glyphs drawn in a plate grid.
type Markers struct {
	Punch string
	Empty string
}

// Plate renders one engraving grid: a header row of descending bit
// weights, then one row per word marking the weights to punch. Word
// rows are numbered globally starting at startWord and annotated with
// the raw wordlist index. Pure; renders any block the session produced.
func Plate(indices []int, plateNo, startWord int, m Markers) (string, error) {
	if len(indices) == 0 {
		return "", fmt.Errorf("render: empty plate block")
	}

	var b strings.Builder
	title := fmt.Sprintf("=== PLATE %d — words %d–%d ===", plateNo, startWord, startWord+len(indices)-1)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	cells := make([]string, len(punch.Weights))
	for i, w := range punch.Weights {
		cells[i] = fmt.Sprintf("%4d", w)
	}
	b.WriteString(legendStyle.Render("     " + strings.Join(cells, " ")))
	b.WriteString("\n")
	for i := range cells {
		cells[i] = "----"
	}
	b.WriteString(legendStyle.Render("     " + strings.Join(cells, " ")))
	b.WriteString("\n")

	for r, idx := range indices {
		weights, err := punch.Decompose(idx)
		if err != nil {
			return "", fmt.Errorf("render: word %d: %w", startWord+r, err)
		}
		punched := make(map[int]bool, len(weights))
		for _, w := range weights {
			punched[w] = true
		}
		marks := make([]string, len(punch.Weights))
		for i, w := range punch.Weights {
			glyph := m.Empty
			if punched[w] {
				glyph = m.Punch
			}
			marks[i] = "  " + glyph + " "
		}
		fmt.Fprintf(&b, "%3d |%s  (%d)\n", startWord+r, strings.Join(marks, " "), idx)
	}
	return b.String(), nil
}

// Summary renders the full session as one table: word number, word,
// raw index, and the weight list to punch.
func Summary(entries []session.Entry) (string, error) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("=== SUMMARY (%d words) ===", len(entries))))
	b.WriteString("\n")
	for i, e := range entries {
		weights, err := punch.Decompose(e.Index)
		if err != nil {
			return "", fmt.Errorf("render: word %d: %w", i+1, err)
		}
		fmt.Fprintf(&b, "%2d. %-10s -> %4d   punch: %v\n", i+1, e.Word, e.Index, weights)
	}
	return b.String(), nil
}
