package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/zeusync/marblecatch/internal/config"
	"github.com/zeusync/marblecatch/internal/core/game"
	"github.com/zeusync/marblecatch/internal/core/systems/physics"
)

// HUDRows is the number of terminal rows below the playfield.
const HUDRows = 2

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

var (
	styleWater    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleParticle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleMarble   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHUD      = tcell.StyleDefault
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleFlash    = tcell.StyleDefault.Reverse(true)
)

var identityColors = map[game.Identity]tcell.Color{
	game.Bulbasaur:  tcell.ColorGreen,
	game.Charmander: tcell.ColorOrangeRed,
	game.Pikachu:    tcell.ColorYellow,
	game.Squirtle:   tcell.ColorAqua,
}

// Renderer maps world units onto terminal cells.
type Renderer struct {
	cellW float64
	cellH float64
}

func NewRenderer(cfg config.FrontendConfig) *Renderer {
	return &Renderer{cellW: cfg.CellWidth, cellH: cfg.CellHeight}
}

// Bounds is the playfield size for a terminal of cols x rows cells.
func (r *Renderer) Bounds(cols, rows int) physics.Bounds {
	rows -= HUDRows
	if cols <= 0 || rows <= 0 {
		return physics.Bounds{}
	}
	return physics.Bounds{Width: float64(cols) * r.cellW, Height: float64(rows) * r.cellH}
}

// Cell returns the terminal cell containing world point p.
func (r *Renderer) Cell(p physics.Vec2) (col, row int) {
	return int(p.X() / r.cellW), int(p.Y() / r.cellH)
}

func (r *Renderer) center(col, row int) physics.Vec2 {
	return physics.V((float64(col)+0.5)*r.cellW, (float64(row)+0.5)*r.cellH)
}

// Draw paints a full frame. flash highlights the HUD right after a hit.
func (r *Renderer) Draw(c Canvas, s game.Snapshot, flash bool) {
	cols, rows := c.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}

	fieldRows := rows - HUDRows
	if !s.Ready || fieldRows <= 0 {
		drawText(c, 0, 0, cols, "waiting for playfield...", styleHUD)
		return
	}

	for row := 0; row < fieldRows; row++ {
		for col := 0; col < cols; col++ {
			p := r.center(col, row)
			switch {
			case inAny(s.Obstacles, p):
				c.SetContent(col, row, '#', nil, styleObstacle)
			case inAny(s.Water, p):
				c.SetContent(col, row, '~', nil, styleWater)
			}
		}
	}

	put := func(p physics.Vec2, ch rune, st tcell.Style) {
		col, row := r.Cell(p)
		if col >= 0 && col < cols && row >= 0 && row < fieldRows {
			c.SetContent(col, row, ch, nil, st)
		}
	}

	for _, p := range s.Particles {
		st := styleParticle
		if p.Alpha() < 0.25 {
			st = st.Dim(true)
		}
		put(p.Position, '.', st)
	}

	put(s.Target.Position, targetGlyph(s.Target.Identity), targetStyle(s))
	put(s.Marble.Position, 'o', styleMarble)

	r.drawHUD(c, s, cols, fieldRows, flash)
}

func (r *Renderer) drawHUD(c Canvas, s game.Snapshot, cols, top int, flash bool) {
	names := make([]string, 0, len(s.Caught))
	for _, id := range s.Caught {
		names = append(names, id.String())
	}
	status := fmt.Sprintf("%s  hits %d/%d  caught %d/%d [%s]",
		s.Selected, s.HitCount, s.HitsToCatch, len(s.Caught), game.IdentityCount, strings.Join(names, " "))
	st := styleHUD
	if flash {
		st = styleFlash
	}
	drawText(c, 0, top, cols, status, st)

	if msg, action, ok := s.Banner(); ok {
		drawText(c, 0, top+1, cols, fmt.Sprintf("%s  [r] %s", msg, action), styleBanner)
		return
	}
	drawText(c, 0, top+1, cols, "arrows tilt  space level  r reset  q quit", styleHUD)
}

func targetGlyph(id game.Identity) rune {
	name := id.String()
	return rune(name[0])
}

func targetStyle(s game.Snapshot) tcell.Style {
	st := tcell.StyleDefault.Foreground(identityColors[s.Target.Identity]).Bold(true)
	if s.TargetCaught {
		return st.Reverse(true)
	}
	if s.Invincible {
		return st.Blink(true)
	}
	return st
}

func inAny(circles []physics.Circle, p physics.Vec2) bool {
	for _, c := range circles {
		if c.Contains(p) {
			return true
		}
	}
	return false
}

func drawText(c Canvas, x, y, maxWidth int, text string, st tcell.Style) {
	for _, ch := range text {
		if x >= maxWidth {
			return
		}
		c.SetContent(x, y, ch, nil, st)
		x++
	}
}
