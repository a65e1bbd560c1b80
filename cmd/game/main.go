package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/1siamBot/fort-defense/engine/command"
	"github.com/1siamBot/fort-defense/engine/core"
	"github.com/1siamBot/fort-defense/engine/game"
	"github.com/1siamBot/fort-defense/engine/input"
	"github.com/1siamBot/fort-defense/engine/render"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Game implements ebiten.Game interface
type Game struct {
	match    *game.Match
	input    *input.InputState
	renderer *render.SceneRenderer
	snapshot core.Snapshot
}

func NewGame(cfg core.Config) *Game {
	m := game.New(cfg)
	m.Loop.Play()
	snap := m.World.Snapshot()
	g := &Game{
		match:    m,
		input:    input.NewInputState(),
		renderer: render.NewSceneRenderer(ScreenWidth, ScreenHeight, &snap, m.TechTree),
		snapshot: snap,
	}
	m.World.Events.On(core.EvtGameOver, func(e core.Event) {
		log.Printf("match %s: fort destroyed at %.1fs", m.World.MatchID, e.Time)
	})
	return g
}

func (g *Game) Update() error {
	g.input.Update()
	f := g.input.Frame()

	cam := g.renderer.Camera
	for _, c := range command.Intents(f, cam.ScreenToWorld) {
		g.match.Dispatcher.Submit(c)
	}

	dt := g.match.Loop.Frame(time.Now())
	cam.Pan(f.PanX, f.PanY, dt)
	g.snapshot = g.match.World.Snapshot()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, &g.snapshot)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.renderer.Camera.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "RNG seed for resource placement and waves")
	flag.Parse()

	cfg := core.DefaultConfig()
	cfg.Seed = *seed

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("Fort Defense (seed %d)", cfg.Seed))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
