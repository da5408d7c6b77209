package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bonsai/internal/tree"
)

type styledRune struct {
	r     rune
	color lipgloss.Color
}

// Frame is a w x h grid of styled runes the cell trace is blitted into.
// Later cells overwrite earlier ones, so replaying an ordered trace gives
// the same picture growth produced live.
type Frame struct {
	width, height int
	grid          [][]styledRune
}

func NewFrame(w, h int) *Frame {
	f := &Frame{width: w, height: h, grid: make([][]styledRune, h)}
	for y := range f.grid {
		f.grid[y] = make([]styledRune, w)
		for x := range f.grid[y] {
			f.grid[y][x] = styledRune{r: ' '}
		}
	}
	return f
}

// Blit draws the drawable cells into the grid. Glyphs wider than one cell
// spill rightward and are truncated at the frame edge.
func (f *Frame) Blit(cells []tree.Cell, leaves []string, th Theme) {
	for _, c := range cells {
		if c.Y < 0 || c.Y >= f.height {
			continue
		}
		color := th.KindColor(c.Kind, c.Style)
		for i, r := range []rune(Glyph(c, leaves)) {
			x := c.X + i
			if x < 0 || x >= f.width {
				continue
			}
			f.grid[c.Y][x] = styledRune{r: r, color: color}
		}
	}
}

// String renders the grid, batching runs of equal color into single styled
// segments.
func (f *Frame) String() string {
	var b strings.Builder
	for y := 0; y < f.height; y++ {
		var run []rune
		var runColor lipgloss.Color
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(string(run))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(runColor).Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < f.width; x++ {
			sr := f.grid[y][x]
			if sr.color != runColor {
				flush()
				runColor = sr.color
			}
			run = append(run, sr.r)
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

// Pot art, wide and narrow. Drawn centered under the trunk.
var (
	baseWide = []string{
		`:___________./~~~\.___________:`,
		` \                           / `,
		`  \_________________________/  `,
		`  (_)                     (_)  `,
	}
	baseNarrow = []string{
		`(---./~~~\.---)`,
		` (           ) `,
		`  (_________)  `,
	}
)

// BaseHeight returns how many rows the pot adds below a tree of the given
// viewport width.
func BaseHeight(w int) int {
	return len(baseFor(w))
}

func baseFor(w int) []string {
	if w >= len(baseWide[0])+4 {
		return baseWide
	}
	return baseNarrow
}

// RenderBase draws the pot centered for the given viewport width.
func RenderBase(w int, th Theme) string {
	art := baseFor(w)
	style := lipgloss.NewStyle().Foreground(th.Pot)

	var b strings.Builder
	for _, line := range art {
		pad := (w - len(line)) / 2
		if pad < 0 {
			pad = 0
		}
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(style.Render(line))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render draws a full tree: the cell trace over the viewport with the pot
// beneath it.
func Render(cells []tree.Cell, w, h int, leaves []string, th Theme) string {
	f := NewFrame(w, h)
	f.Blit(cells, leaves, th)
	return f.String() + RenderBase(w, th)
}
