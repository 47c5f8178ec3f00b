package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/simon/audio"
	"github.com/lixenwraith/simon/config"
	"github.com/lixenwraith/simon/constants"
	"github.com/lixenwraith/simon/engine"
	"github.com/lixenwraith/simon/game"
	"github.com/lixenwraith/simon/identity"
	"github.com/lixenwraith/simon/input"
	"github.com/lixenwraith/simon/render"
)

// app wires the screen, board, controller and input translation
type app struct {
	screen  tcell.Screen
	board   *render.Board
	ctrl    *engine.Controller
	machine *input.Machine
	log     zerolog.Logger
}

func newApp(screen tcell.Screen, sched engine.Scheduler, sound engine.Sound, src game.Source, timings engine.Timings, player string, log zerolog.Logger) *app {
	w, h := screen.Size()
	board := render.NewBoard(w, h)
	session := game.NewSession(src)
	ctrl := engine.NewController(session, sched, engine.Compose(board, sound), timings, player, log)
	ctrl.Init()

	return &app{
		screen:  screen,
		board:   board,
		ctrl:    ctrl,
		machine: input.NewMachine(nil, board),
		log:     log,
	}
}

// handleEvent applies one terminal event, returns false on quit
func (a *app) handleEvent(ev tcell.Event) bool {
	intent := a.machine.Translate(ev, a.ctrl.Session().Status())

	switch intent.Type {
	case input.IntentQuit:
		return false
	case input.IntentStart:
		a.ctrl.Trigger()
	case input.IntentPress:
		a.ctrl.Press(intent.Color)
	case input.IntentResize:
		a.board.Resize(intent.Width, intent.Height)
		a.screen.Sync()
	}
	return true
}

// draw renders the board and flushes the screen
func (a *app) draw() {
	a.board.Draw(a.screen, a.ctrl.Session().Snapshot())
	a.screen.Show()
}

// runGame owns the terminal until the player quits
func runGame(cfg *config.Config) error {
	log, logFile, err := setupLogging(cfg.LogDir, cfg.Debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	// Prompt before the screen takes over stdin
	player := identity.Resolve(cfg.Player)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Error().Interface("panic", r).Str("stack", string(debug.Stack())).Msg("crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSIMON CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	sound := audio.NewSoundManager(&cfg.Audio, log)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the game runs without sound
		log.Warn().Err(err).Msg("audio unavailable")
	}
	defer sound.Cleanup()

	loop := engine.NewLoop(constants.EventQueueSize)
	defer loop.Stop()

	a := newApp(screen, loop, sound, game.NewSource(cfg.Seed), cfg.Timings, player, log)
	defer a.ctrl.Shutdown()

	log.Info().Str("player", player).Uint64("seed", cfg.Seed).Msg("simon started")

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	go func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	a.draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.handleEvent(ev) {
				log.Info().Int("best", a.ctrl.Session().Best()).Msg("simon exiting")
				return nil
			}
		case f := <-loop.Events():
			f()
		}
		a.draw()
	}
}
