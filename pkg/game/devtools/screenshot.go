// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"ansiscreen/pkg/engine/grid"
)

// ScreenshotHTML renders a grid as a standalone HTML page. Runs of cells
// with the same colors share one span.
func ScreenshotHTML(g *grid.Grid, title string) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>`)
	b.WriteString(html.EscapeString(title))
	b.WriteString(`</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .screen {
            background-color: #000000;
            padding: 8px;
            display: inline-block;
        }
        .row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
    </style>
</head>
<body>
`)
	fmt.Fprintf(&b, `    <div class="header">%s</div>`+"\n", html.EscapeString(title))
	b.WriteString(`    <div class="screen">` + "\n")

	for row := 0; row < g.Rows(); row++ {
		b.WriteString(`        <div class="row">`)
		writeRow(&b, g.Row(row))
		b.WriteString("</div>\n")
	}

	b.WriteString(`    </div>
</body>
</html>
`)
	return b.String()
}

func writeRow(b *strings.Builder, cells []grid.Cell) {
	var run strings.Builder
	style := ""
	flush := func() {
		if run.Len() == 0 {
			return
		}
		fmt.Fprintf(b, `<span style="%s">%s</span>`, style, html.EscapeString(run.String()))
		run.Reset()
	}

	for _, c := range cells {
		s := cellStyle(c)
		if s != style {
			flush()
			style = s
		}
		ch := c.Ch
		if ch == 0 {
			ch = ' '
		}
		run.WriteRune(ch)
	}
	flush()
}

// cellStyle returns the inline CSS of a cell. A transparent background
// shows the screen background.
func cellStyle(c grid.Cell) string {
	if c.BG.IsTransparent() {
		return "color:" + c.FG.String()
	}
	return "color:" + c.FG.String() + ";background-color:" + c.BG.RGB.String()
}

// SaveScreenshotHTML writes ScreenshotHTML to path. An empty path picks a
// timestamped name in the working directory. Returns the file written.
func SaveScreenshotHTML(g *grid.Grid, title, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("screenshot-%s.html", time.Now().Format("20060102-150405"))
	}
	if err := os.WriteFile(path, []byte(ScreenshotHTML(g, title)), 0644); err != nil {
		return "", err
	}
	return path, nil
}
