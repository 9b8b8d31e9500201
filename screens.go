package main

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/pazzles/config"
	"github.com/OpticalFlyer/pazzles/geom"
	"github.com/OpticalFlyer/pazzles/input"
	"github.com/OpticalFlyer/pazzles/network"
	"github.com/OpticalFlyer/pazzles/ui"
)

const fadeTicks = 20

var (
	buttonColor = color.RGBA{70, 90, 140, 255}
	buttonSize  = geom.Pt(200, 32)
)

// membersUpdate is sent by the host whenever the room size changes.
type membersUpdate struct {
	Members int `msgpack:"members"`
}

// fader fades a screen in when it loads and out before it hands over to
// the next one.
type fader struct {
	ui.ScreenBase
	ctrl  *ui.Controller
	timer *ui.Timer
	next  string
}

func newFader(ctrl *ui.Controller) fader {
	f := fader{ctrl: ctrl}
	f.timer = ui.NewTimer(fadeTicks, 1, nil, nil)
	return f
}

// init wires the timer callback once the fader has its final address.
func (f *fader) init() {
	f.timer.OnEnd = func() {
		if f.next != "" {
			f.ctrl.RequestSwitch(f.next)
			f.next = ""
		}
	}
}

func (f *fader) Load() {
	f.next = ""
	f.timer.Start()
}

func (f *fader) changeTo(name string) {
	f.next = name
	f.timer.Start()
}

func (f *fader) Render(dst *ebiten.Image) {
	if f.timer.Works() {
		p := float64(f.timer.Ticks()) / float64(f.timer.Interval)
		if f.next == "" {
			p = 1 - p
		}
		b := dst.Bounds()
		vector.DrawFilledRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{A: uint8(p * 255)}, false)
	}
	f.timer.Update()
}

// column builds the vertical layout every screen centers its widgets in.
func column(a *ui.Arena, cfg config.Config) (*ui.Float, *ui.Vertical, error) {
	root := ui.NewFloat(a, geom.Pt(0, 0))
	center := geom.RectFromSize(float64(cfg.App.SurfaceWidth), float64(cfg.App.SurfaceHeight)).At(cfg.UI.MenuAnchor)
	col, err := ui.NewVertical(a, center, ui.Line{Padding: cfg.UI.Padding}, ui.WithAnchor(cfg.UI.MenuAnchor))
	if err != nil {
		return nil, nil, err
	}
	return root, col, root.Add(col)
}

func newButton(a *ui.Arena, text string, onClick func()) (*ui.Button, error) {
	plate, err := ui.RoundedRect(buttonSize.X, buttonSize.Y, 8, buttonColor)
	if err != nil {
		return nil, err
	}
	b := ui.NewButton(a, geom.Point{}, plate)
	if err := b.SetLabel(ui.NewLabel(a, geom.Point{}, text), geom.Point{}); err != nil {
		return nil, err
	}
	b.Connect().Click(func(ui.Widget, ui.Event) { onClick() })
	b.Connect().HoverIn(func(ui.Widget, ui.Event) { plate.SetColor(color.RGBA{90, 115, 175, 255}) })
	b.Connect().HoverOut(func(ui.Widget, ui.Event) { plate.SetColor(buttonColor) })
	return b, nil
}

type menuScreen struct {
	fader
	cfg  config.Config
	quit func()
}

func newMenuScreen(ctrl *ui.Controller, cfg config.Config, quit func()) *menuScreen {
	s := &menuScreen{fader: newFader(ctrl), cfg: cfg, quit: quit}
	s.fader.init()
	return s
}

func (s *menuScreen) Name() string { return "menu" }

func (s *menuScreen) Build(a *ui.Arena) (ui.Parent, error) {
	root, col, err := column(a, s.cfg)
	if err != nil {
		return nil, err
	}
	items := []struct {
		text string
		fn   func()
	}{
		{"Join room", func() { s.changeTo("peer-room") }},
		{"Create room", func() { s.changeTo("host-room") }},
		{"Quit", s.quit},
	}
	for _, it := range items {
		b, err := newButton(a, it.text, it.fn)
		if err != nil {
			return nil, err
		}
		if err := col.Add(b); err != nil {
			return nil, err
		}
	}
	return root, nil
}

type hostRoomScreen struct {
	fader
	cfg   config.Config
	relay *network.Relay

	address *ui.Label
	members *ui.Label
	peers   int
}

func newHostRoomScreen(ctrl *ui.Controller, cfg config.Config, relay *network.Relay) *hostRoomScreen {
	s := &hostRoomScreen{fader: newFader(ctrl), cfg: cfg, relay: relay}
	s.fader.init()
	return s
}

func (s *hostRoomScreen) Name() string { return "host-room" }

func (s *hostRoomScreen) Build(a *ui.Arena) (ui.Parent, error) {
	root, col, err := column(a, s.cfg)
	if err != nil {
		return nil, err
	}
	s.address = ui.NewLabel(a, geom.Point{}, "")
	s.members = ui.NewLabel(a, geom.Point{}, "Connected: 1")
	start, err := newButton(a, "Start game", func() {
		if err := s.relay.Send("game-started", nil); err != nil {
			log.Printf("start game: %v", err)
			return
		}
		s.changeTo("game")
	})
	if err != nil {
		return nil, err
	}
	return root, col.Add(s.address, s.members, start)
}

func (s *hostRoomScreen) Load() {
	s.fader.Load()
	s.peers = 0
	if err := s.relay.StartHost(context.Background(), s.cfg.Network.Addr()); err != nil {
		log.Printf("host room: %v", err)
		s.address.SetText("Could not open the room")
		return
	}
	s.address.SetText(fmt.Sprintf("Your address: %v", s.relay.Addr()))
	s.members.SetText("Connected: 1")
}

func (s *hostRoomScreen) Update(*ui.Frame) {
	s.relay.Messages()
	if n := s.relay.Peers(); n != s.peers {
		s.peers = n
		s.members.SetText(fmt.Sprintf("Connected: %d", n+1))
		if err := s.relay.Send("members", membersUpdate{Members: n + 1}); err != nil {
			log.Printf("host room: %v", err)
		}
	}
}

type peerRoomScreen struct {
	fader
	cfg   config.Config
	relay *network.Relay

	connect *ui.Button
	status  *ui.Label
	members *ui.Label
}

func newPeerRoomScreen(ctrl *ui.Controller, cfg config.Config, relay *network.Relay) *peerRoomScreen {
	s := &peerRoomScreen{fader: newFader(ctrl), cfg: cfg, relay: relay}
	s.fader.init()
	return s
}

func (s *peerRoomScreen) Name() string { return "peer-room" }

func (s *peerRoomScreen) Build(a *ui.Arena) (ui.Parent, error) {
	root, col, err := column(a, s.cfg)
	if err != nil {
		return nil, err
	}
	s.status = ui.NewLabel(a, geom.Point{}, "")
	s.members = ui.NewLabel(a, geom.Point{}, "Connected: 0", ui.WithActive(false))
	s.connect, err = newButton(a, "Connect", s.join)
	if err != nil {
		return nil, err
	}
	return root, col.Add(s.status, s.members, s.connect)
}

func (s *peerRoomScreen) Load() {
	s.fader.Load()
	s.status.SetText("Host: " + s.cfg.Network.Addr())
	s.members.SetActive(false)
	s.connect.SetActive(true)
}

func (s *peerRoomScreen) join() {
	if err := s.relay.StartPeer(context.Background(), s.cfg.Network.Addr()); err != nil {
		log.Printf("peer room: %v", err)
		s.status.SetText("Could not reach " + s.cfg.Network.Addr())
		return
	}
	s.status.SetText("Wait for the game to start")
	s.connect.SetActive(false)
	s.members.SetActive(true)
}

func (s *peerRoomScreen) Update(*ui.Frame) {
	for _, m := range s.relay.Messages() {
		switch m.Key {
		case "game-started":
			s.changeTo("game")
		case "members":
			var u membersUpdate
			if err := m.Bind(&u); err != nil {
				log.Printf("peer room: %v", err)
				continue
			}
			s.members.SetText(fmt.Sprintf("Connected: %d", u.Members))
		}
	}
}

type gameScreen struct {
	fader
	cfg   config.Config
	relay *network.Relay

	arena *ui.Arena
	last  *ui.Label
	log   *ui.Vertical
	sent  int
}

const logLines = 6

func newGameScreen(ctrl *ui.Controller, cfg config.Config, relay *network.Relay) *gameScreen {
	s := &gameScreen{fader: newFader(ctrl), cfg: cfg, relay: relay}
	s.fader.init()
	return s
}

func (s *gameScreen) Name() string { return "game" }

func (s *gameScreen) Build(a *ui.Arena) (ui.Parent, error) {
	root, col, err := column(a, s.cfg)
	if err != nil {
		return nil, err
	}
	s.arena = a
	s.last = ui.NewLabel(a, geom.Point{}, "")
	send, err := newButton(a, "Send", func() {
		s.sent++
		if err := s.relay.Send("ping", s.sent); err != nil {
			log.Printf("game: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if err := col.Add(s.last, send); err != nil {
		return nil, err
	}

	panel := ui.NewPanel(a, geom.Pt(8, 8), 160, 120, "Messages")
	panel.SetBounds(float64(s.cfg.App.SurfaceWidth), float64(s.cfg.App.SurfaceHeight))
	s.log, err = ui.NewVertical(a, geom.Pt(4, 24), ui.Line{Padding: 2}, ui.WithAnchor(geom.TopLeft))
	if err != nil {
		return nil, err
	}
	if err := panel.Add(s.log); err != nil {
		return nil, err
	}
	return root, root.Add(panel)
}

func (s *gameScreen) Load() {
	s.fader.Load()
	s.last.SetText(fmt.Sprintf("Playing as %v", s.relay.Role()))
	ebiten.SetWindowTitle(fmt.Sprintf("%s (%v)", s.cfg.App.Title, s.relay.Role()))
}

// Clear leaves the session; the relay is restarted from the room screens.
func (s *gameScreen) Clear() {
	if err := s.relay.Close(); err != nil {
		log.Printf("game: %v", err)
	}
	for _, w := range s.log.Children(false) {
		w.Destroy()
	}
	ebiten.SetWindowTitle(s.cfg.App.Title)
}

func (s *gameScreen) ProcessEvent(e input.Event) {
	if e.Type == input.EventKeyPress && e.Key == ebiten.KeyEscape {
		s.changeTo("menu")
	}
}

func (s *gameScreen) Update(*ui.Frame) {
	for _, m := range s.relay.Messages() {
		var n int
		line := fmt.Sprintf("%q", m.Key)
		if err := m.Bind(&n); err == nil {
			line = fmt.Sprintf("%q #%d", m.Key, n)
		}
		s.last.SetText("Received " + line)
		s.appendLog(line)
	}
}

func (s *gameScreen) appendLog(line string) {
	if s.log.Len() >= logLines {
		s.log.Children(false)[0].Destroy()
	}
	if err := s.log.Add(ui.NewLabel(s.arena, geom.Point{}, line)); err != nil {
		log.Printf("game: %v", err)
	}
}
