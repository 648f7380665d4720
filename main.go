package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/engine/input"
	"ansiscreen/pkg/engine/terminal"
	"ansiscreen/pkg/game/config"
	"ansiscreen/pkg/game/definition"
	"ansiscreen/pkg/game/devtools"
	"ansiscreen/pkg/game/layer"
	"ansiscreen/pkg/game/renderer"
	ebitenrenderer "ansiscreen/pkg/game/renderer/ebiten"
	"ansiscreen/pkg/game/renderer/tui"
	"ansiscreen/pkg/game/screen"
)

func main() {
	configFile := flag.String("config", "ansiscreen.yaml", "player configuration file (missing file uses defaults)")
	fps := flag.Int("fps", 0, "animation ticks per second (overrides config)")
	debug := flag.Bool("debug", false, "verbose logging")
	gui := flag.Bool("gui", false, "open a window instead of drawing in the terminal")
	dump := flag.Bool("dump", false, "print the first screen as text and exit")
	htmlOut := flag.String("html", "", "write the first screen as an HTML screenshot to this file and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] definition.json...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	var l *zap.Logger
	if *debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer l.Sync() //nolint:errcheck

	cfg, err := config.Load(*configFile)
	if err != nil {
		l.Fatal("load config", zap.String("path", *configFile), zap.Error(err))
	}
	if *fps > 0 {
		cfg.FPS = *fps
		if err := cfg.Validate(); err != nil {
			l.Fatal("invalid -fps", zap.Error(err))
		}
	}
	if cfg.Locale != "" {
		gotext.Configure(cfg.Locale, cfg.Language, cfg.Domain)
	}

	ctrl, err := newController(cfg, l)
	if err != nil {
		l.Fatal("configure", zap.Error(err))
	}

	var ids []screen.ID
	for _, path := range flag.Args() {
		def, err := definition.ParseFile(path)
		if err != nil {
			l.Fatal("load definition", zap.String("path", path), zap.Error(err))
		}
		id, err := ctrl.CreateScreen(def)
		if err != nil {
			l.Fatal("create screen", zap.String("path", path), zap.Error(err))
		}
		if err := ctrl.Play(id); err != nil {
			l.Fatal("play", zap.Error(err))
		}
		l.Debug("loaded screen", zap.String("path", path), zap.Int("screen", int(id)))
		ids = append(ids, id)
	}

	device := input.DeviceTerminal
	if *gui {
		device = input.DeviceKeyboard
	}
	p, err := newPlayer(ctrl, ids, keymap(cfg, l), device, l)
	if err != nil {
		l.Fatal("start", zap.Error(err))
	}

	switch {
	case *dump:
		if err := devtools.WriteDump(os.Stdout, int(p.active()), p.frame(), mustLayers(ctrl, p.active(), l)); err != nil {
			l.Fatal("dump", zap.Error(err))
		}
	case *htmlOut != "":
		if _, err := devtools.SaveScreenshotHTML(p.frame(), flag.Arg(0), *htmlOut); err != nil {
			l.Fatal("screenshot", zap.Error(err))
		}
	case *gui:
		if err := runWindow(p, cfg.FPS); err != nil {
			l.Fatal("window", zap.Error(err))
		}
	default:
		if err := runTerminal(p, cfg.FPS); err != nil {
			l.Fatal("terminal", zap.Error(err))
		}
	}
}

func newController(cfg config.Config, l *zap.Logger) (*screen.Controller, error) {
	palette, err := cfg.ColorPalette()
	if err != nil {
		return nil, err
	}
	fg, err := cfg.Foreground()
	if err != nil {
		return nil, err
	}
	return screen.NewController(
		screen.WithLogger(l),
		screen.WithPalette(palette),
		screen.WithDefaultForeground(fg),
	), nil
}

// keymap applies configured bindings over the defaults
func keymap(cfg config.Config, l *zap.Logger) *input.Keymap {
	k := input.DefaultKeymap()
	for name, code := range cfg.Bindings {
		action, ok := input.ParseAction(name)
		if !ok {
			l.Warn("unknown action in bindings", zap.String("action", name))
			continue
		}
		k.SetSingleBinding(action, code)
	}
	return k
}

func mustLayers(ctrl *screen.Controller, id screen.ID, l *zap.Logger) []layer.Info {
	layers, err := ctrl.Layers(id)
	if err != nil {
		l.Fatal("layers", zap.Error(err))
	}
	return layers
}

// runTerminal draws in the terminal until a quit key, Ctrl+C or a signal.
func runTerminal(p *player, fps int) error {
	if !terminal.IsTerminal() {
		return errors.New("stdout is not a terminal, use -gui, -dump or -html")
	}
	if err := terminal.CheckSize(grid.Width, grid.Height); err != nil {
		return err
	}
	restore, err := terminal.MakeRaw()
	if err != nil {
		return err
	}
	defer restore()

	renderer.SetRenderer(tui.New(os.Stdout))
	if err := renderer.Init(); err != nil {
		return err
	}
	defer renderer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keys := make(chan string, 16)
	go func() {
		r := bufio.NewReader(os.Stdin)
		for {
			code, err := input.ReadKey(r)
			if err != nil {
				close(keys)
				return
			}
			if code != "" {
				keys <- code
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	if err := renderer.Present(p.frame()); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case code, ok := <-keys:
			if !ok {
				return nil
			}
			if err := p.handleKey(code); err != nil {
				if errors.Is(err, renderer.ErrQuit) {
					return nil
				}
				return err
			}
		case <-ticker.C:
			if err := p.tick(); err != nil {
				return err
			}
		}
		if err := renderer.Present(p.frame()); err != nil {
			return err
		}
	}
}

// runWindow opens an ebiten window; its update loop drives ticks.
func runWindow(p *player, fps int) error {
	win := ebitenrenderer.New("ansiscreen")
	renderer.SetRenderer(win)
	if err := renderer.Init(); err != nil {
		return err
	}
	defer renderer.Close()

	if err := renderer.Present(p.frame()); err != nil {
		return err
	}
	return win.Run(fps, ebitenrenderer.Callbacks{
		Tick: func() error {
			if err := p.tick(); err != nil {
				return err
			}
			return renderer.Present(p.frame())
		},
		Key: p.handleKey,
	})
}
