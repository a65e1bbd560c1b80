package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const gridSpacing = 64

var (
	backgroundColor = color.RGBA{12, 16, 28, 255}
	gridColor       = color.RGBA{10, 12, 20, 20}
	fortColor       = color.RGBA{30, 43, 84, 255}
	fortDoorColor   = color.RGBA{47, 65, 126, 255}
	hpBackColor     = color.RGBA{0, 0, 0, 90}
	hpFillColor     = color.RGBA{142, 247, 184, 255}
	outlineColor    = color.RGBA{0, 0, 0, 140}
	selectionColor  = color.RGBA{126, 162, 230, 230}
	hudTextColor    = color.RGBA{220, 230, 255, 255}
	overlayColor    = color.RGBA{0, 0, 0, 115}
	gameOverColor   = color.RGBA{255, 209, 209, 255}
)

// SceneRenderer draws a world snapshot through a camera
type SceneRenderer struct {
	Camera *Camera
	// TechTree supplies unit colors and the training menu
	TechTree *systems.TechTree
}

// NewSceneRenderer creates a renderer whose camera starts on the fort
func NewSceneRenderer(screenW, screenH int, s *core.Snapshot, tt *systems.TechTree) *SceneRenderer {
	cam := NewCamera(screenW, screenH, s.Width, s.Height)
	cam.CenterOn(s.Fort.X, s.Fort.Y)
	return &SceneRenderer{Camera: cam, TechTree: tt}
}

func (r *SceneRenderer) unitColor(t core.UnitType) color.RGBA {
	if def, ok := r.TechTree.Units[t]; ok {
		return rgb(def.Color)
	}
	return hudTextColor
}

func (r *SceneRenderer) enemyColor(t core.EnemyType) color.RGBA {
	if def, ok := r.TechTree.Enemies[t]; ok {
		return rgb(def.Color)
	}
	return gameOverColor
}

func (r *SceneRenderer) resourceColor(k core.ResourceKind) color.RGBA {
	if def, ok := r.TechTree.Resources[k]; ok {
		return rgb(def.Color)
	}
	return hpFillColor
}

// Draw renders one frame
func (r *SceneRenderer) Draw(screen *ebiten.Image, s *core.Snapshot) {
	screen.Fill(backgroundColor)
	r.drawGrid(screen)
	r.drawFort(screen, &s.Fort)
	for i := range s.Resources {
		r.drawResource(screen, &s.Resources[i])
	}
	for i := range s.Units {
		r.drawUnit(screen, &s.Units[i])
	}
	for i := range s.Enemies {
		r.drawEnemy(screen, &s.Enemies[i])
	}
	for i := range s.Pings {
		r.drawPing(screen, &s.Pings[i])
	}
	r.drawHUD(screen, s)
	if s.GameOver {
		r.drawGameOver(screen)
	}
}

func (r *SceneRenderer) drawGrid(screen *ebiten.Image) {
	c := r.Camera
	w, h := float32(c.ScreenW), float32(c.ScreenH)
	x0 := math.Floor(c.X/gridSpacing) * gridSpacing
	y0 := math.Floor(c.Y/gridSpacing) * gridSpacing
	for x := x0; x <= c.X+float64(c.ScreenW); x += gridSpacing {
		sx, _ := c.WorldToScreen(x, 0)
		vector.StrokeLine(screen, sx, 0, sx, h, 1, gridColor, false)
	}
	for y := y0; y <= c.Y+float64(c.ScreenH); y += gridSpacing {
		_, sy := c.WorldToScreen(0, y)
		vector.StrokeLine(screen, 0, sy, w, sy, 1, gridColor, false)
	}
}

func (r *SceneRenderer) drawFort(screen *ebiten.Image, f *core.Fort) {
	sx, sy := r.Camera.WorldToScreen(f.X, f.Y)
	w, h := float32(f.W), float32(f.H)
	vector.DrawFilledRect(screen, sx-w/2, sy-h/2, w, h, fortColor, false)
	vector.StrokeRect(screen, sx-w/2, sy-h/2, w, h, 2, selectionColor, false)
	vector.DrawFilledRect(screen, sx-10, sy+h/2-24, 20, 18, fortDoorColor, false)
	drawBar(screen, sx-w/2, sy-h/2-16, w, 8, f.Ratio(), hpFillColor)
}

func (r *SceneRenderer) drawResource(screen *ebiten.Image, res *core.Resource) {
	sx, sy := r.Camera.WorldToScreen(res.X, res.Y)
	rad := float32(res.Radius)
	switch res.Kind {
	case core.Tree:
		vector.DrawFilledCircle(screen, sx, sy, rad, rgb(0x2a8554), true)
		vector.StrokeCircle(screen, sx, sy, rad, 2, outlineColor, true)
		vector.DrawFilledCircle(screen, sx-4, sy-3, rad*0.6, r.resourceColor(res.Kind), true)
	default:
		drawPolygon(screen, sx, sy, 6, rad, 2, rgb(0xb0c2ea))
		vector.DrawFilledCircle(screen, sx, sy, rad*0.6, r.resourceColor(res.Kind), true)
	}
	drawBar(screen, sx-18, sy+rad+8, 36, 6, res.Ratio(), r.resourceColor(res.Kind))
}

func (r *SceneRenderer) drawUnit(screen *ebiten.Image, u *core.Unit) {
	sx, sy := r.Camera.WorldToScreen(u.X, u.Y)
	rad := float32(u.Radius)
	if u.Selected {
		vector.StrokeCircle(screen, sx, sy, rad+6, 2, selectionColor, true)
	}
	switch u.Type {
	case core.Gatherer:
		vector.DrawFilledCircle(screen, sx, sy, rad, rgb(0x2a8554), true)
		vector.StrokeCircle(screen, sx, sy, rad, 2, outlineColor, true)
		vector.DrawFilledCircle(screen, sx-3, sy-3, rad*0.6, r.unitColor(u.Type), true)
	case core.Warrior:
		drawTriangle(screen, sx, sy, rad+2, 2, rgb(0xa3471f))
		vector.DrawFilledCircle(screen, sx, sy+1, rad*0.45, r.unitColor(u.Type), true)
	default:
		vector.DrawFilledRect(screen, sx-rad, sy-rad, rad*2, rad*2, rgb(0x1b2d59), false)
		vector.StrokeRect(screen, sx-rad, sy-rad, rad*2, rad*2, 2, outlineColor, false)
		vector.DrawFilledRect(screen, sx-rad*0.6, sy-rad*0.6, rad*1.2, rad*1.2, r.unitColor(u.Type), false)
	}
	if u.Type == core.Gatherer && u.CarryCapacity > 0 {
		drawBar(screen, sx-12, sy+rad+8, 24, 5, u.Carrying/u.CarryCapacity, hpFillColor)
	}
}

func (r *SceneRenderer) drawEnemy(screen *ebiten.Image, e *core.Enemy) {
	sx, sy := r.Camera.WorldToScreen(e.X, e.Y)
	rad := float32(e.Radius)
	drawTriangle(screen, sx, sy, rad+2, 2, rgb(0x771b1b))
	vector.DrawFilledCircle(screen, sx, sy+1, rad*0.45, r.enemyColor(e.Type), true)
}

func (r *SceneRenderer) drawPing(screen *ebiten.Image, p *core.Ping) {
	sx, sy := r.Camera.WorldToScreen(p.X, p.Y)
	t := p.Progress()
	c := fade(rgb(p.Color), 1-t)
	vector.StrokeCircle(screen, sx, sy, float32(10+t*26), 2, c, true)
}

func (r *SceneRenderer) drawHUD(screen *ebiten.Image, s *core.Snapshot) {
	wood, stone := s.Balance.Display()
	counts := s.Counts()
	lines := []string{
		fmt.Sprintf("Wood: %d   Stone: %d", wood, stone),
		fmt.Sprintf("Gatherers: %d  Warriors: %d  Defenders: %d  Raiders: %d",
			counts[core.Gatherer], counts[core.Warrior], counts[core.Defender], len(s.Enemies)),
		fmt.Sprintf("Fort: %.0f/%.0f   Time: %.0fs", math.Max(0, s.Fort.HP), s.Fort.MaxHP, s.Time),
		r.TechTree.TrainMenu(),
		"[LClick] Select  [Shift] Add  [RClick/Alt] Command  [WASD] Pan",
	}
	vector.DrawFilledRect(screen, 0, 0, float32(r.Camera.ScreenW), float32(len(lines)*16+8), overlayColor, false)
	for i, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, 10, 18+i*16, hudTextColor)
	}
}

func (r *SceneRenderer) drawGameOver(screen *ebiten.Image) {
	w, h := r.Camera.ScreenW, r.Camera.ScreenH
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)
	msg := "Fort destroyed!"
	text.Draw(screen, msg, basicfont.Face7x13, w/2-len(msg)*7/2, h/2, gameOverColor)
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, frac float64, fill color.RGBA) {
	frac = math.Max(0, math.Min(1, frac))
	vector.DrawFilledRect(screen, x, y, w, h, hpBackColor, false)
	vector.DrawFilledRect(screen, x, y, w*float32(frac), h, fill, false)
}

func drawTriangle(screen *ebiten.Image, cx, cy, size, width float32, clr color.RGBA) {
	ax, ay := cx, cy-size
	bx, by := cx+size*0.86, cy+size*0.6
	dx, dy := cx-size*0.86, cy+size*0.6
	vector.StrokeLine(screen, ax, ay, bx, by, width, clr, true)
	vector.StrokeLine(screen, bx, by, dx, dy, width, clr, true)
	vector.StrokeLine(screen, dx, dy, ax, ay, width, clr, true)
}

func drawPolygon(screen *ebiten.Image, cx, cy float32, corners int, radius, width float32, clr color.RGBA) {
	px, py := cx, cy-radius
	for i := 1; i <= corners; i++ {
		a := float64(i)/float64(corners)*math.Pi*2 - math.Pi/2
		x := cx + float32(math.Cos(a))*radius
		y := cy + float32(math.Sin(a))*radius
		vector.StrokeLine(screen, px, py, x, y, width, clr, true)
		px, py = x, y
	}
}

func rgb(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 255}
}

// fade scales a color by alpha, keeping it premultiplied
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.RGBA{R: uint8(float64(c.R) * a), G: uint8(float64(c.G) * a), B: uint8(float64(c.B) * a), A: uint8(float64(c.A) * a)}
}
