package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/term-life/audio"
	"github.com/lixenwraith/term-life/config"
	"github.com/lixenwraith/term-life/engine"
	"github.com/lixenwraith/term-life/parameter"
	"github.com/lixenwraith/term-life/render"
	"github.com/lixenwraith/term-life/terminal"
	"github.com/lixenwraith/term-life/terminal/tcellterm"
	"github.com/lixenwraith/term-life/world"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML config file")
	presetFlag   = flag.String("preset", "", "Preset: rusty or tidy (overrides the config file)")
	backendFlag  = flag.String("backend", "", "Terminal backend: ansi or tcell")
	delayFlag    = flag.Duration("delay", 0, "Initial delay between generations")
	minDelayFlag = flag.Duration("min-delay", 0, "Shortest delay reachable with speed up")
	soundFlag    = flag.Bool("sound", false, "Play clicks for actions")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
)

// console is what the session needs from a terminal backend
type console interface {
	engine.Console
	Init() error
	Fini()
	Abort()
	Size() (int, int, error)
}

func main() {
	// Panic Recovery: reset the terminal even if the session crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERM-LIFE CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

func run() int {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	con, err := newConsole(cfg.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		return 1
	}
	if err := con.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	log.Printf("term-life: preset %s, backend %s", cfg.Preset, cfg.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := session(ctx, cfg, con); err != nil {
		con.Abort()
		log.Printf("term-life: %v", err)
		fmt.Fprintf(os.Stderr, "term-life: %v\n", err)
		return 1
	}

	con.Fini()
	return 0
}

// loadConfig resolves the config file and applies flags the user set explicitly
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag, *presetFlag)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["backend"] {
		cfg.Backend = *backendFlag
	}
	if set["delay"] {
		cfg.Timing.Delay.Duration = *delayFlag
	}
	if set["min-delay"] {
		cfg.Timing.MinDelay.Duration = *minDelayFlag
	}
	if set["sound"] {
		cfg.Audio.Enabled = *soundFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newConsole(backend string) (console, error) {
	if backend == config.BackendTcell {
		return tcellterm.New()
	}
	return terminal.New(), nil
}

// session sizes the world, shows the fallback notice when needed and runs the game
func session(ctx context.Context, cfg *config.Config, con console) error {
	margin := cfg.Layout.Margin

	screenW, screenH, sizeErr := con.Size()
	width, height := screenW-2*margin, screenH-2*margin
	fallback := sizeErr != nil || width <= 0 || height <= 0
	if fallback {
		log.Printf("term-life: terminal size unusable (%dx%d, %v), using %dx%d",
			screenW, screenH, sizeErr, parameter.FallbackWidth, parameter.FallbackHeight)
		width, height = parameter.FallbackWidth, parameter.FallbackHeight
		screenW, screenH = width+2*margin, height+2*margin
	}

	grid, err := world.New(width, height)
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(render.Config{
		Glyphs: render.Glyphs{
			Alive:    config.Rune(cfg.Glyphs.Alive),
			DeadEdit: config.Rune(cfg.Glyphs.DeadEdit),
			DeadRun:  config.Rune(cfg.Glyphs.DeadRun),
			Cursor:   config.Rune(cfg.Glyphs.Cursor),
		},
		Texts: render.Texts{
			SplashTitle:  cfg.Text.SplashTitle,
			SplashPrompt: cfg.Text.SplashPrompt,
			EditBar:      cfg.Text.EditBar,
			PauseBar:     cfg.Text.PauseBar,
			RunHint:      cfg.Text.RunHint,
		},
		Layout: render.Layout{
			Margin:       margin,
			BarRow:       cfg.Layout.BarRow,
			ScreenWidth:  screenW,
			ScreenHeight: screenH,
		},
		CellFg: cfg.Glyphs.CellColor,
	})

	if fallback {
		if err := renderer.NoticeFrame(con, cfg.Text.SizeNotice); err != nil {
			return fmt.Errorf("notice: %w", err)
		}
		select {
		case <-time.After(cfg.Timing.NoticeDuration.Duration):
		case <-ctx.Done():
		}
	}

	gameCfg := engine.Config{
		Console:  con,
		Renderer: renderer,
		Keys:     cfg.KeyTable,
		Timing: engine.Timing{
			Delay:        cfg.Timing.Delay.Duration,
			DelayStep:    cfg.Timing.DelayStep.Duration,
			MinDelay:     cfg.Timing.MinDelay.Duration,
			EditInterval: cfg.Timing.EditInterval.Duration,
			PollInterval: cfg.Timing.PollInterval.Duration,
		},
	}

	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio.Volume)
		if err := player.Initialize(); err != nil {
			// Non-fatal, the session runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer player.Cleanup()
			gameCfg.Sound = player
		}
	}

	return engine.NewGame(grid, gameCfg).Run(ctx)
}
