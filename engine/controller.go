package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/simon/constants"
	"github.com/lixenwraith/simon/game"
)

// Timings holds the delays of the round cycle
type Timings struct {
	PresentDelay  time.Duration `yaml:"present_delay" env:"PRESENT_DELAY"`   // Before the new color is shown
	FlashDuration time.Duration `yaml:"flash_duration" env:"FLASH_DURATION"` // Pad lit after a press or presentation
	AdvanceDelay  time.Duration `yaml:"advance_delay" env:"ADVANCE_DELAY"`   // Between a completed round and the next
	FailureFlash  time.Duration `yaml:"failure_flash" env:"FAILURE_FLASH"`   // Board flash after a wrong press
}

// DefaultTimings returns the stock round timings
func DefaultTimings() Timings {
	return Timings{
		PresentDelay:  constants.PresentDelay,
		FlashDuration: constants.FlashDuration,
		AdvanceDelay:  constants.AdvanceDelay,
		FailureFlash:  constants.FailureFlashDuration,
	}
}

// Validate rejects non-positive delays
func (t Timings) Validate() error {
	switch {
	case t.PresentDelay <= 0:
		return errors.New("present delay must be positive")
	case t.FlashDuration <= 0:
		return errors.New("flash duration must be positive")
	case t.AdvanceDelay <= 0:
		return errors.New("advance delay must be positive")
	case t.FailureFlash <= 0:
		return errors.New("failure flash must be positive")
	}
	return nil
}

// Controller binds the session to input events and presentation feedback
// All methods must be called from the game goroutine, the one draining the scheduler
type Controller struct {
	session *game.Session
	sched   Scheduler
	view    Presenter
	timings Timings
	player  string
	log     zerolog.Logger

	gameID string

	// Outstanding tasks, canceled on game over and shutdown
	present   *Task
	advance   *Task
	unflash   *Task
	unfailure *Task
}

// NewController creates a controller, call Init before the first event
func NewController(session *game.Session, sched Scheduler, view Presenter, timings Timings, player string, log zerolog.Logger) *Controller {
	if player == "" {
		player = constants.DefaultPlayerName
	}
	return &Controller{
		session: session,
		sched:   sched,
		view:    view,
		timings: timings,
		player:  player,
		log:     log,
	}
}

// Init shows the start message
func (c *Controller) Init() {
	c.view.ShowMessage(constants.MessageStart)
}

// Player returns the display name
func (c *Controller) Player() string { return c.player }

// GameID returns the identifier of the current or last game
func (c *Controller) GameID() string { return c.gameID }

// Session exposes the owned session for rendering
func (c *Controller) Session() *game.Session { return c.session }

// Trigger handles the start input, returns true if a new game started
func (c *Controller) Trigger() bool {
	if c.session.Status() != game.StatusNotStarted {
		return false
	}

	color, err := c.session.StartOrAdvance()
	if err != nil {
		c.log.Warn().Err(err).Msg("start rejected")
		return false
	}

	c.gameID = uuid.NewString()
	c.log.Info().
		Str("game", c.gameID).
		Str("player", c.player).
		Msg("game started")

	c.roundStarted(color)
	return true
}

// Press handles a pad input and returns how the session classified it
func (c *Controller) Press(color game.Color) game.Outcome {
	if !color.Valid() {
		return game.OutcomeIgnored
	}

	out := c.session.SubmitColor(color)
	switch out {
	case game.OutcomeContinue:
		c.flash(color)

	case game.OutcomeRoundComplete:
		c.flash(color)
		c.advance.Cancel()
		c.advance = c.sched.AfterFunc(c.timings.AdvanceDelay, c.advanceRound)

	case game.OutcomeMismatch:
		c.fail(color)
	}
	return out
}

// Shutdown cancels every outstanding task
func (c *Controller) Shutdown() {
	c.cancelRound()
	c.unflash.Cancel()
	c.unfailure.Cancel()
}

// advanceRound extends the sequence once the advance delay elapsed
func (c *Controller) advanceRound() {
	c.advance = nil

	color, err := c.session.StartOrAdvance()
	if err != nil {
		c.log.Warn().Err(err).Str("game", c.gameID).Msg("advance rejected")
		return
	}

	c.log.Debug().
		Str("game", c.gameID).
		Int("round", c.session.Round()).
		Msg("round advanced")

	c.roundStarted(color)
}

// roundStarted updates the message and schedules the presentation of the new color
func (c *Controller) roundStarted(color game.Color) {
	c.view.ShowMessage(fmt.Sprintf(constants.MessageLevel, c.player, c.session.Round()))

	c.present.Cancel()
	c.present = c.sched.AfterFunc(c.timings.PresentDelay, func() {
		c.present = nil
		c.flash(color)
	})
}

// flash lights a pad and plays its tone, restarting the unflash timer
func (c *Controller) flash(color game.Color) {
	c.view.Highlight(color)
	c.view.PlayColor(color)
	c.scheduleUnflash()
}

// scheduleUnflash clears the highlight after the flash duration, replacing any earlier clear
func (c *Controller) scheduleUnflash() {
	c.unflash.Cancel()
	c.unflash = c.sched.AfterFunc(c.timings.FlashDuration, func() {
		c.unflash = nil
		c.view.ClearHighlight()
	})
}

// fail presents the game over state, the session already reset itself
func (c *Controller) fail(color game.Color) {
	c.cancelRound()

	if f, ok := c.session.LastFailure(); ok {
		c.log.Info().
			Str("game", c.gameID).
			Int("round", f.Round).
			Int("index", f.Index).
			Stringer("expected", f.Expected).
			Stringer("got", f.Got).
			Int("best", c.session.Best()).
			Msg("game over")
	}

	c.view.Highlight(color)
	c.view.PlayWrong()
	c.view.SetFailure(true)
	c.view.ShowMessage(constants.MessageGameOver)
	c.scheduleUnflash()

	c.unfailure.Cancel()
	c.unfailure = c.sched.AfterFunc(c.timings.FailureFlash, func() {
		c.unfailure = nil
		c.view.SetFailure(false)
	})
}

// cancelRound drops pending presentation and advance tasks so nothing stale fires after a reset
func (c *Controller) cancelRound() {
	c.present.Cancel()
	c.present = nil
	c.advance.Cancel()
	c.advance = nil
}
