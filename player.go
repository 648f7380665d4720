package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/engine/input"
	"ansiscreen/pkg/game/devtools"
	"ansiscreen/pkg/game/menu"
	"ansiscreen/pkg/game/renderer"
	"ansiscreen/pkg/game/screen"
)

// player drives a controller from key presses and ticks. It cycles through
// the loaded screens, one of which is active at a time.
type player struct {
	ctrl    *screen.Controller
	screens []screen.ID
	current int

	// help is shown over the current screen until the next key
	help      screen.ID
	helpShown bool

	keymap *input.Keymap
	device input.Device
	log    *zap.Logger

	// outDir receives screenshots and dumps
	outDir string
}

func newPlayer(ctrl *screen.Controller, screens []screen.ID, keymap *input.Keymap, device input.Device, l *zap.Logger) (*player, error) {
	if len(screens) == 0 {
		return nil, fmt.Errorf("no screens loaded")
	}
	help, err := ctrl.CreateScreen(menu.Help(keymap).Definition())
	if err != nil {
		return nil, fmt.Errorf("help screen: %w", err)
	}
	p := &player{
		ctrl:    ctrl,
		screens: screens,
		help:    help,
		keymap:  keymap,
		device:  device,
		log:     l,
		outDir:  ".",
	}
	return p, p.show(0)
}

func (p *player) active() screen.ID {
	return p.screens[p.current]
}

func (p *player) show(i int) error {
	n := len(p.screens)
	p.current = ((i % n) + n) % n
	p.helpShown = false
	return p.ctrl.SetScreen(p.active())
}

// frame returns the active composite
func (p *player) frame() *grid.Grid {
	g, ok := p.ctrl.ActiveGrid()
	if !ok {
		return grid.New()
	}
	return g
}

// tick advances playback by one frame
func (p *player) tick() error {
	p.ctrl.Tick()
	return nil
}

// handleKey maps a key code to an intent and applies it. Returns
// renderer.ErrQuit when the player should stop.
func (p *player) handleKey(code string) error {
	intent := p.keymap.Resolve(p.device, code)
	return p.apply(intent.Action)
}

func (p *player) apply(action input.Action) error {
	if p.helpShown && action != input.ActionQuit {
		return p.show(p.current)
	}

	id := p.active()
	switch action {
	case input.ActionQuit:
		return renderer.ErrQuit

	case input.ActionTogglePlay:
		playing, err := p.ctrl.IsPlaying(id)
		if err != nil {
			return err
		}
		if playing {
			return p.ctrl.Pause(id)
		}
		return p.ctrl.Play(id)

	case input.ActionStep:
		return p.ctrl.Step(id)

	case input.ActionNextScreen:
		return p.show(p.current + 1)

	case input.ActionPrevScreen:
		return p.show(p.current - 1)

	case input.ActionHelp:
		p.helpShown = true
		return p.ctrl.SetScreen(p.help)

	case input.ActionScreenshot:
		path, err := devtools.SaveScreenshotHTML(p.frame(), fmt.Sprintf("Screen %d", id), p.outPath("screenshot", "html"))
		if err != nil {
			return err
		}
		p.log.Debug("saved screenshot", zap.String("path", path))

	case input.ActionDump:
		path := p.outPath("dump", "txt")
		if err := p.dump(path); err != nil {
			return err
		}
		p.log.Debug("saved dump", zap.String("path", path))
	}
	return nil
}

func (p *player) dump(path string) error {
	id := p.active()
	layers, err := p.ctrl.Layers(id)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return devtools.WriteDump(f, int(id), p.frame(), layers)
}

func (p *player) outPath(kind, ext string) string {
	return fmt.Sprintf("%s/%s-%d-%s.%s", p.outDir, kind, p.active(), time.Now().Format("20060102-150405.000"), ext)
}
