package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/bonsai/internal/tree"
)

func TestFrameDimensions(t *testing.T) {
	f := NewFrame(20, 10)
	lines := strings.Split(strings.TrimRight(f.String(), "\n"), "\n")
	if len(lines) != 10 {
		t.Errorf("expected 10 rows, got %d", len(lines))
	}
}

func TestBlitPlacesGlyph(t *testing.T) {
	f := NewFrame(20, 10)
	cells := []tree.Cell{{X: 5, Y: 5, DX: 0, DY: -1, Kind: tree.Trunk}}
	f.Blit(cells, nil, ThemeMono)

	row := f.grid[5]
	// "/|\" spans three cells starting at x=5.
	if row[5].r != '/' || row[6].r != '|' || row[7].r != '\\' {
		t.Errorf("glyph not blitted: got %q %q %q", row[5].r, row[6].r, row[7].r)
	}
}

func TestBlitOverwrites(t *testing.T) {
	f := NewFrame(20, 10)
	cells := []tree.Cell{
		{X: 5, Y: 5, DX: 1, DY: -1, Kind: tree.Trunk},
		{X: 5, Y: 5, Kind: tree.Dead, Style: 0},
	}
	f.Blit(cells, []string{"&"}, ThemeMono)

	if f.grid[5][5].r != '&' {
		t.Errorf("later cell should overwrite: got %q", f.grid[5][5].r)
	}
}

func TestBlitClipsAtEdges(t *testing.T) {
	f := NewFrame(10, 5)
	cells := []tree.Cell{
		{X: 9, Y: 4, DX: 0, DY: -1, Kind: tree.Trunk}, // glyph spills past right edge
		{X: 0, Y: 0, Kind: tree.Dead},
		{X: 3, Y: -1, Kind: tree.Dead}, // out of frame entirely
		{X: 3, Y: 5, Kind: tree.Dead},
	}
	f.Blit(cells, []string{"&"}, ThemeMono) // must not panic

	if f.grid[4][9].r != '/' {
		t.Errorf("edge glyph start missing: got %q", f.grid[4][9].r)
	}
}

func TestRenderBaseCentered(t *testing.T) {
	out := RenderBase(60, ThemeMono)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != BaseHeight(60) {
		t.Errorf("expected %d base rows, got %d", BaseHeight(60), len(lines))
	}
}

func TestRenderBaseNarrow(t *testing.T) {
	if BaseHeight(20) != len(baseNarrow) {
		t.Errorf("narrow viewport should use the small pot")
	}
	if BaseHeight(80) != len(baseWide) {
		t.Errorf("wide viewport should use the large pot")
	}
}

func TestRenderFullTree(t *testing.T) {
	e, err := tree.New(tree.Options{Width: 30, Height: 12, Life: 20, Multiplier: 3, Seed: 9})
	if err != nil {
		t.Fatal(err)
	}
	for e.Grow() {
	}

	out := Render(e.Cells(), 30, 12, []string{"&"}, ThemeClassic)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := 12 + BaseHeight(30)
	if len(lines) != want {
		t.Errorf("expected %d rows, got %d", want, len(lines))
	}
}

func TestThemeLookup(t *testing.T) {
	if GetTheme("sakura").Name != "sakura" {
		t.Error("expected sakura theme")
	}
	if GetTheme("nope").Name != "classic" {
		t.Error("unknown theme should fall back to classic")
	}
	if NextTheme("classic").Name == "classic" {
		t.Error("next theme should advance")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme name list incomplete")
	}
}

func TestKindColorStable(t *testing.T) {
	th := ThemeClassic
	a := th.KindColor(tree.Dead, 3)
	b := th.KindColor(tree.Dead, 3)
	if a != b {
		t.Error("color must be stable for a given kind and style")
	}
	if th.KindColor(tree.Trunk, 0) == th.KindColor(tree.Dead, 0) {
		t.Error("wood and leaf palettes should differ in the classic theme")
	}
}
