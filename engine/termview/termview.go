package termview

import (
	"fmt"
	"math"

	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/gdamore/tcell/v2"
)

// HeaderRows are reserved at the top of the terminal for the status line
const HeaderRows = 1

var (
	styleBase     = tcell.StyleDefault.Background(tcell.NewRGBColor(12, 16, 28)).Foreground(tcell.NewRGBColor(200, 210, 240))
	styleHeader   = styleBase.Background(tcell.NewRGBColor(30, 43, 84))
	styleFort     = styleBase.Foreground(tcell.NewRGBColor(90, 120, 255)).Bold(true)
	styleTree     = styleBase.Foreground(tcell.NewRGBColor(127, 255, 148))
	styleRock     = styleBase.Foreground(tcell.NewRGBColor(199, 214, 255))
	styleGatherer = styleBase.Foreground(tcell.NewRGBColor(130, 255, 176)).Bold(true)
	styleWarrior  = styleBase.Foreground(tcell.NewRGBColor(255, 140, 89)).Bold(true)
	styleDefender = styleBase.Foreground(tcell.NewRGBColor(127, 176, 255)).Bold(true)
	styleRaider   = styleBase.Foreground(tcell.NewRGBColor(255, 90, 90)).Bold(true)
	styleGameOver = tcell.StyleDefault.Background(tcell.NewRGBColor(120, 20, 20)).Foreground(tcell.ColorWhite).Bold(true)
)

// Glyphs used on the map
const (
	GlyphFort     = '#'
	GlyphTree     = 'T'
	GlyphRock     = 'o'
	GlyphGatherer = 'g'
	GlyphWarrior  = 'w'
	GlyphDefender = 'd'
	GlyphRaider   = 'R'
	GlyphPing     = '*'
)

// View draws a whole-world overview of a snapshot onto a terminal screen
type View struct {
	Screen tcell.Screen
}

func New(screen tcell.Screen) *View {
	return &View{Screen: screen}
}

// Cell maps a world position onto the map area of a cols x rows terminal
func Cell(s *core.Snapshot, cols, rows int, x, y float64) (int, int) {
	mapRows := rows - HeaderRows
	if cols <= 0 || mapRows <= 0 || s.Width <= 0 || s.Height <= 0 {
		return 0, HeaderRows
	}
	c := int(math.Floor(x / s.Width * float64(cols)))
	r := int(math.Floor(y / s.Height * float64(mapRows)))
	c = max(0, min(cols-1, c))
	r = max(0, min(mapRows-1, r))
	return c, r + HeaderRows
}

// Draw renders one frame. Later layers overwrite earlier ones in a cell:
// resources, pings, fort, units, raiders.
func (v *View) Draw(s *core.Snapshot) {
	scr := v.Screen
	scr.SetStyle(styleBase)
	scr.Clear()
	cols, rows := scr.Size()

	for _, r := range s.Resources {
		g, st := GlyphTree, styleTree
		if r.Kind == core.Rock {
			g, st = GlyphRock, styleRock
		}
		v.put(s, cols, rows, r.X, r.Y, g, st)
	}
	for _, p := range s.Pings {
		v.put(s, cols, rows, p.X, p.Y, GlyphPing, styleBase.Foreground(tcell.NewHexColor(int32(p.Color))))
	}

	f := s.Fort
	c0, r0 := Cell(s, cols, rows, f.X-f.W/2, f.Y-f.H/2)
	c1, r1 := Cell(s, cols, rows, f.X+f.W/2, f.Y+f.H/2)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			scr.SetContent(c, r, GlyphFort, nil, styleFort)
		}
	}

	for _, u := range s.Units {
		g, st := GlyphGatherer, styleGatherer
		switch u.Type {
		case core.Warrior:
			g, st = GlyphWarrior, styleWarrior
		case core.Defender:
			g, st = GlyphDefender, styleDefender
		}
		if u.Selected {
			st = st.Reverse(true)
		}
		v.put(s, cols, rows, u.X, u.Y, g, st)
	}
	for _, e := range s.Enemies {
		v.put(s, cols, rows, e.X, e.Y, GlyphRaider, styleRaider)
	}

	v.drawHeader(s, cols)
	if s.GameOver {
		msg := " Fort destroyed! "
		drawText(scr, (cols-len(msg))/2, rows/2, msg, styleGameOver)
	}
	scr.Show()
}

func (v *View) put(s *core.Snapshot, cols, rows int, x, y float64, g rune, st tcell.Style) {
	c, r := Cell(s, cols, rows, x, y)
	v.Screen.SetContent(c, r, g, nil, st)
}

func (v *View) drawHeader(s *core.Snapshot, cols int) {
	for c := 0; c < cols; c++ {
		v.Screen.SetContent(c, 0, ' ', nil, styleHeader)
	}
	wood, stone := s.Balance.Display()
	counts := s.Counts()
	line := fmt.Sprintf(" wood %d  stone %d | fort %.0f | g%d w%d d%d | raiders %d | %.0fs | [1/2/3] train [a] auto [p] pause [q] quit",
		wood, stone, math.Max(0, s.Fort.HP),
		counts[core.Gatherer], counts[core.Warrior], counts[core.Defender],
		len(s.Enemies), s.Time)
	drawText(v.Screen, 0, 0, line, styleHeader)
}

func drawText(scr tcell.Screen, x, y int, text string, st tcell.Style) {
	cols, _ := scr.Size()
	for _, r := range text {
		if x >= cols {
			return
		}
		if x >= 0 {
			scr.SetContent(x, y, r, nil, st)
		}
		x++
	}
}
