package devtools

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/game/layer"
)

func TestDumpText(t *testing.T) {
	g := grid.New()
	g.Set(0, 0, grid.NewCell('A', grid.White, grid.Opaque(grid.Black)))
	g.Set(24, 79, grid.NewCell('Z', grid.White, grid.Opaque(grid.Black)))

	lines := strings.Split(strings.TrimSuffix(DumpText(g), "\n"), "\n")
	if len(lines) != grid.Height {
		t.Fatalf("DumpText() has %d lines, want %d", len(lines), grid.Height)
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != grid.Width {
			t.Errorf("line %d has %d runes, want %d", i, n, grid.Width)
		}
	}
	if lines[0][0] != 'A' || lines[24][79] != 'Z' {
		t.Errorf("corners = %q %q, want A Z", lines[0][0], lines[24][79])
	}
}

func TestDumpText_Holes(t *testing.T) {
	if got := DumpText(grid.NewClear()); strings.ContainsRune(got, 0) {
		t.Error("DumpText() leaked NUL runes for unwritten cells")
	}
}

func TestWriteDump(t *testing.T) {
	var b strings.Builder
	layers := []layer.Info{
		{ID: "bg", Name: "Backdrop", Type: "drawn", Visible: true, Tags: []string{"a", "b"}, Frames: 2},
		{ID: "t", Name: "Title", Type: "text", Visible: false, Tags: []string{}},
	}
	if err := WriteDump(&b, 3, grid.New(), layers); err != nil {
		t.Fatalf("WriteDump() error = %v", err)
	}

	out := b.String()
	for _, want := range []string{
		"screen: 3",
		"layers: 2",
		"0: id=bg name=\"Backdrop\" type=drawn visible tags=[a,b] frames=2\n",
		"1: id=t name=\"Title\" type=text hidden tags=[]\n",
		"+" + strings.Repeat("-", grid.Width) + "+",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteDump() output missing %q", want)
		}
	}
}

func TestScreenshotHTML(t *testing.T) {
	g := grid.New()
	red := grid.RGB{R: 255}
	g.Set(0, 0, grid.NewCell('<', red, grid.Opaque(grid.Black)))
	g.Set(0, 1, grid.NewCell('&', red, grid.Opaque(grid.Black)))
	g.Set(1, 0, grid.NewCell('x', red, grid.Transparent))

	page := ScreenshotHTML(g, "Title <1>")

	if !strings.Contains(page, "<title>Title &lt;1&gt;</title>") {
		t.Error("title not escaped")
	}
	if !strings.Contains(page, `<span style="color:#ff0000;background-color:#000000">&lt;&amp;</span>`) {
		t.Error("same-style run not merged into one escaped span")
	}
	if !strings.Contains(page, `<span style="color:#ff0000">x</span>`) {
		t.Error("transparent background emitted a background color")
	}
	if n := strings.Count(page, `<div class="row">`); n != grid.Height {
		t.Errorf("row count = %d, want %d", n, grid.Height)
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.html")
	got, err := SaveScreenshotHTML(grid.New(), "shot", path)
	if err != nil {
		t.Fatalf("SaveScreenshotHTML() error = %v", err)
	}
	if got != path {
		t.Errorf("SaveScreenshotHTML() = %q, want %q", got, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") {
		t.Error("file is not an HTML page")
	}
}
