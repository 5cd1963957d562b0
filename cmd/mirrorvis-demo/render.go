package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/mirrorvis/geom"
	"github.com/lixenwraith/mirrorvis/trajectory"
)

// viewport maps world-space points (float64, y-down screen convention)
// onto terminal cell coordinates, padding the world rectangle on every
// side and keeping the bottom rows free for the status/report text
// drawn by drawReport.
type viewport struct {
	minX, maxX, minY, maxY float64
	originX, originY       int
	cols, rows             int
}

func newViewport(scn Scenario, termW, termH int) viewport {
	minX, maxX := scn.Player.X, scn.Player.X
	minY, maxY := scn.Player.Y, scn.Player.Y
	grow := func(p geom.Point) {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	grow(scn.Cursor)
	if scn.PlayerAlt != nil {
		grow(*scn.PlayerAlt)
	}
	for _, c := range scn.Scene.Chains {
		for _, v := range c.Vertices {
			grow(v)
		}
	}
	padX, padY := (maxX-minX)*0.1+10, (maxY-minY)*0.1+10
	minX -= padX
	maxX += padX
	minY -= padY
	maxY += padY

	reportRows := 10
	rows := termH - reportRows
	if rows < 5 {
		rows = 5
	}
	return viewport{minX: minX, maxX: maxX, minY: minY, maxY: maxY, originX: 0, originY: 0, cols: termW, rows: rows}
}

func (v viewport) project(p geom.Point) (int, int) {
	spanX := v.maxX - v.minX
	spanY := v.maxY - v.minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	x := v.originX + int((p.X-v.minX)/spanX*float64(v.cols-1))
	y := v.originY + int((p.Y-v.minY)/spanY*float64(v.rows-1))
	return x, y
}

// drawLine walks a parametric sample of the segment a-b and plots each
// cell it lands on. Coarse but sufficient for a terminal-scale demo;
// this is not a Bresenham rasterizer.
func drawLine(screen tcell.Screen, v viewport, a, b geom.Point, r rune, style tcell.Style) {
	x0, y0 := v.project(a)
	x1, y1 := v.project(b)
	steps := abs(x1-x0) + abs(y1-y0)
	if steps == 0 {
		screen.SetContent(x0, y0, r, nil, style)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(t*float64(x1-x0))
		y := y0 + int(t*float64(y1-y0))
		screen.SetContent(x, y, r, nil, style)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// cascadeColor returns a distinct hue per cascade depth, cycling
// through the color wheel so deeper stages stay visually distinguishable
// regardless of how many reflections a plan carries.
func cascadeColor(depth int) tcell.Style {
	hue := float64((depth*67)%360)
	c := colorful.Hsv(hue, 0.65, 0.95).Clamped()
	r, g, b := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

var (
	styleMirror = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCursor = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleActual = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePlan   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleBad    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func drawScenario(screen tcell.Screen, scn Scenario, result *trajectory.Result) {
	screen.Clear()
	w, h := screen.Size()
	v := newViewport(scn, w, h)

	for _, c := range scn.Scene.Chains {
		for _, surf := range c.Surfaces() {
			style := styleWall
			if surf.IsPlannable() {
				style = styleMirror
			}
			drawLine(screen, v, surf.Seg.Start, surf.Seg.End, surfaceGlyph(style), style)
		}
	}

	for i, stage := range result.Polygons {
		style := cascadeColor(i)
		poly := stage.Polygon
		for j := range poly {
			a := poly[j].XY()
			b := poly[(j+1)%len(poly)].XY()
			drawLine(screen, v, a, b, '.', style)
		}
	}

	if len(result.PlannedPath) > 1 {
		for i := 0; i+1 < len(result.PlannedPath); i++ {
			drawLine(screen, v, result.PlannedPath[i], result.PlannedPath[i+1], '-', stylePlan)
		}
	}

	if result.ActualPath != nil {
		for _, step := range result.ActualPath.Steps {
			drawLine(screen, v, step.From, step.To, '*', styleActual)
		}
	}

	px, py := v.project(scn.Player)
	screen.SetContent(px, py, 'P', nil, stylePlayer)
	cx, cy := v.project(scn.Cursor)
	screen.SetContent(cx, cy, 'C', nil, styleCursor)
	if scn.PlayerAlt != nil {
		ax, ay := v.project(*scn.PlayerAlt)
		screen.SetContent(ax, ay, 'p', nil, stylePlayer)
	}

	drawReport(screen, w, h, scn, result)
	screen.Show()
}

func surfaceGlyph(style tcell.Style) rune {
	if style == styleMirror {
		return '='
	}
	return '#'
}

func drawReport(screen tcell.Screen, w, h int, scn Scenario, result *trajectory.Result) {
	row := h - 9
	putStyled := func(s string, style tcell.Style) {
		for i, r := range s {
			if i >= w {
				break
			}
			screen.SetContent(i, row, r, nil, style)
		}
		row++
	}
	put := func(s string) { putStyled(s, tcell.StyleDefault) }

	put(fmt.Sprintf("[%s] %s", scn.Name, scn.Description))
	put(fmt.Sprintf("query %s", result.QueryID))
	if result.CursorCoincidesWithPlayer {
		put("player and cursor coincide: trivial single-waypoint result")
		return
	}
	status := "divergent"
	style := styleBad
	if result.Alignment.FullyAligned {
		status, style = "fully aligned", styleCursor
	}
	putStyled(fmt.Sprintf("alignment: %s (%d segments aligned)", status, result.Alignment.AlignedSegmentCount), style)
	if result.Alignment.HasDivergencePoint {
		p := result.Alignment.DivergencePoint
		if result.Alignment.HasDivergenceSurface {
			put(fmt.Sprintf("diverged at (%.1f, %.1f) on surface %s", p.X, p.Y, result.Alignment.DivergenceSurface.ID))
		} else {
			put(fmt.Sprintf("diverged at (%.1f, %.1f)", p.X, p.Y))
		}
	}
	if result.ActualPath != nil {
		put(fmt.Sprintf("actual path terminal status: %s, %d steps", result.ActualPath.Status, len(result.ActualPath.Steps)))
	}
	put(fmt.Sprintf("active surfaces: %d, bypassed: %d", len(result.Bypass.Active), len(result.Bypass.Bypassed)))
	for _, by := range result.Bypass.Bypassed {
		put(fmt.Sprintf("  bypassed %s: %s", by.Surface.ID, by.Reason))
	}
}
