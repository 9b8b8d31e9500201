package main

import (
	"errors"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/pazzles/config"
	"github.com/OpticalFlyer/pazzles/input"
	"github.com/OpticalFlyer/pazzles/network"
	"github.com/OpticalFlyer/pazzles/ui"
)

var clearColor = color.RGBA{30, 30, 40, 255}

// Pazzles implements ebiten.Game interface.
type Pazzles struct {
	cfg   config.Config
	mouse *input.Mouse
	ui    *ui.Controller
	relay *network.Relay

	events []input.Event
	quit   bool

	outsideWidth, outsideHeight int
}

func newPazzles(cfg config.Config) (*Pazzles, error) {
	g := &Pazzles{
		cfg:   cfg,
		mouse: &input.Mouse{},
		relay: network.New(),
	}
	g.ui = ui.NewController(ui.NewArena(), g.mouse)
	if cfg.App.Debug {
		g.ui.SetDebugMode(ui.DebugFull)
	}

	screens := []ui.Screen{
		newMenuScreen(g.ui, cfg, func() { g.quit = true }),
		newPeerRoomScreen(g.ui, cfg, g.relay),
		newHostRoomScreen(g.ui, cfg, g.relay),
		newGameScreen(g.ui, cfg, g.relay),
	}
	for _, s := range screens {
		if err := g.ui.AddScreen(s); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Pazzles) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.mouse.Sample()
	g.events = input.AppendEvents(g.events)
	for _, e := range g.events {
		if e.Type == input.EventKeyPress && e.Key == ebiten.KeyF3 {
			g.ui.CycleDebug()
		}
		g.ui.ProcessEvent(e)
	}
	g.events = g.events[:0]

	return g.ui.Update()
}

func (g *Pazzles) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	g.ui.Draw(screen)
	g.ui.ShowDebugInfo(screen)
}

// Layout keeps the UI on a fixed logical surface; ebiten scales it to the
// window and reports the cursor in surface coordinates.
func (g *Pazzles) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outsideWidth || outsideHeight != g.outsideHeight {
		g.outsideWidth, g.outsideHeight = outsideWidth, outsideHeight
		g.events = append(g.events, input.Event{
			Type:   input.EventResize,
			Width:  outsideWidth,
			Height: outsideHeight,
		})
	}
	return g.cfg.App.SurfaceWidth, g.cfg.App.SurfaceHeight
}

func main() {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		log.Fatal(err)
	}

	app, err := newPazzles(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.App.DisplayWidth, cfg.App.DisplayHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.App.Title)
	ebiten.SetTPS(cfg.App.MaxTPS)

	err = ebiten.RunGame(app)
	if cerr := app.relay.Close(); cerr != nil {
		log.Printf("close relay: %v", cerr)
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
