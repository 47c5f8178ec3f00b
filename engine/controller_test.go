package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/simon/constants"
	"github.com/lixenwraith/simon/game"
)

// recorder captures presenter calls in order
type recorder struct {
	calls     []string
	message   string
	highlight game.Color
	lit       bool
	failure   bool
}

func (r *recorder) Highlight(c game.Color) {
	r.calls = append(r.calls, "highlight:"+c.String())
	r.highlight, r.lit = c, true
}

func (r *recorder) ClearHighlight() {
	r.calls = append(r.calls, "clear")
	r.lit = false
}

func (r *recorder) SetFailure(on bool) {
	r.calls = append(r.calls, fmt.Sprintf("failure:%t", on))
	r.failure = on
}

func (r *recorder) ShowMessage(msg string) {
	r.calls = append(r.calls, "message")
	r.message = msg
}

func (r *recorder) PlayColor(c game.Color) {
	r.calls = append(r.calls, "tone:"+c.String())
}

func (r *recorder) PlayWrong() {
	r.calls = append(r.calls, "wrong")
}

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func newTestController(src game.Source) (*Controller, *ManualScheduler, *recorder) {
	sched := NewManualScheduler()
	rec := &recorder{}
	ctrl := NewController(game.NewSession(src), sched, rec, DefaultTimings(), "Ada", zerolog.Nop())
	ctrl.Init()
	return ctrl, sched, rec
}

// TestControllerInitMessage verifies the idle message
func TestControllerInitMessage(t *testing.T) {
	_, _, rec := newTestController(game.NewSequenceSource(0))
	if rec.message != constants.MessageStart {
		t.Errorf("Expected %q, got %q", constants.MessageStart, rec.message)
	}
}

// TestControllerTriggerStartsGame verifies the start trigger and delayed presentation
func TestControllerTriggerStartsGame(t *testing.T) {
	ctrl, sched, rec := newTestController(game.NewSequenceSource(1))

	if !ctrl.Trigger() {
		t.Fatal("Expected trigger to start a game")
	}
	if ctrl.GameID() == "" {
		t.Error("Expected a game ID after start")
	}
	if rec.message != "Ada, You are on Level 1" {
		t.Errorf("Unexpected message: %q", rec.message)
	}

	// Nothing shown before the present delay
	sched.Advance(constants.PresentDelay - time.Millisecond)
	if rec.lit {
		t.Error("Pad lit before present delay")
	}

	sched.Advance(time.Millisecond)
	if !rec.lit || rec.highlight != game.Blue {
		t.Errorf("Expected blue lit, got lit=%v color=%v", rec.lit, rec.highlight)
	}
	if rec.count("tone:blue") != 1 {
		t.Errorf("Expected one blue tone, got %d", rec.count("tone:blue"))
	}

	sched.Advance(constants.FlashDuration)
	if rec.lit {
		t.Error("Expected highlight cleared after flash duration")
	}
}

// TestControllerTriggerIgnoredWhilePlaying verifies mid-game triggers are not valid
func TestControllerTriggerIgnoredWhilePlaying(t *testing.T) {
	ctrl, _, _ := newTestController(game.NewSequenceSource(0))
	ctrl.Trigger()
	id := ctrl.GameID()

	if ctrl.Trigger() {
		t.Error("Expected second trigger to be ignored")
	}
	if ctrl.Session().Round() != 1 {
		t.Errorf("Expected round 1, got %d", ctrl.Session().Round())
	}
	if ctrl.GameID() != id {
		t.Error("Game ID changed on ignored trigger")
	}
}

// TestControllerRoundAdvance verifies a completed round extends after the advance delay
func TestControllerRoundAdvance(t *testing.T) {
	ctrl, sched, rec := newTestController(game.NewSequenceSource(0, 1))
	ctrl.Trigger()
	sched.Advance(constants.PresentDelay + constants.FlashDuration)

	if out := ctrl.Press(game.Red); out != game.OutcomeRoundComplete {
		t.Fatalf("Expected round complete, got %v", out)
	}
	if rec.count("tone:red") != 2 {
		t.Errorf("Expected presentation and press tones, got %d", rec.count("tone:red"))
	}

	sched.Advance(constants.AdvanceDelay - time.Millisecond)
	if ctrl.Session().Round() != 1 {
		t.Fatalf("Advanced too early, round %d", ctrl.Session().Round())
	}

	sched.Advance(time.Millisecond)
	if ctrl.Session().Round() != 2 {
		t.Fatalf("Expected round 2, got %d", ctrl.Session().Round())
	}
	if rec.message != "Ada, You are on Level 2" {
		t.Errorf("Unexpected message: %q", rec.message)
	}

	sched.Advance(constants.PresentDelay)
	if !rec.lit || rec.highlight != game.Blue {
		t.Errorf("Expected new color blue presented, got lit=%v color=%v", rec.lit, rec.highlight)
	}
}

// TestControllerMismatch verifies game over feedback and reset
func TestControllerMismatch(t *testing.T) {
	ctrl, sched, rec := newTestController(game.NewSequenceSource(0, 1))
	ctrl.Trigger()
	sched.Advance(constants.PresentDelay + constants.FlashDuration)
	ctrl.Press(game.Red)
	sched.Advance(constants.AdvanceDelay + constants.PresentDelay + constants.FlashDuration)

	ctrl.Press(game.Red)
	if out := ctrl.Press(game.Green); out != game.OutcomeMismatch {
		t.Fatalf("Expected mismatch, got %v", out)
	}

	s := ctrl.Session()
	if s.Status() != game.StatusNotStarted || s.Round() != 0 || len(s.GameSequence()) != 0 || len(s.PlayerSequence()) != 0 {
		t.Errorf("Expected reset session, got %+v", s.Snapshot())
	}
	if rec.message != constants.MessageGameOver {
		t.Errorf("Expected game over message, got %q", rec.message)
	}
	if rec.count("wrong") != 1 {
		t.Errorf("Expected one wrong cue, got %d", rec.count("wrong"))
	}
	if !rec.failure {
		t.Error("Expected failure flash on")
	}

	sched.Advance(constants.FailureFlashDuration)
	if rec.failure {
		t.Error("Expected failure flash off after its duration")
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected no pending tasks, got %d", sched.Pending())
	}
}

// TestControllerPressIgnoredWhenIdle verifies presses before start produce no feedback
func TestControllerPressIgnoredWhenIdle(t *testing.T) {
	ctrl, sched, rec := newTestController(game.NewSequenceSource(0))
	before := len(rec.calls)

	if out := ctrl.Press(game.Green); out != game.OutcomeIgnored {
		t.Errorf("Expected ignored, got %v", out)
	}
	if len(rec.calls) != before {
		t.Errorf("Expected no presenter calls, got %v", rec.calls[before:])
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected no scheduled tasks, got %d", sched.Pending())
	}
}

// TestControllerRestartDropsStalePresentation verifies a presentation scheduled before a reset never fires into the next game
func TestControllerRestartDropsStalePresentation(t *testing.T) {
	ctrl, sched, rec := newTestController(game.NewSequenceSource(2, 0))
	ctrl.Trigger() // green scheduled

	ctrl.Press(game.Red) // wrong before the presentation
	ctrl.Trigger()       // red scheduled for the new game

	sched.Advance(constants.PresentDelay + constants.FlashDuration)

	if rec.count("tone:green") != 0 {
		t.Error("Stale presentation from the previous game fired")
	}
	if rec.count("tone:red") != 1 {
		t.Errorf("Expected only the red presentation tone, got %d", rec.count("tone:red"))
	}
	if got := ctrl.Session().GameSequence(); len(got) != 1 || got[0] != game.Red {
		t.Errorf("Expected [red], got %v", got)
	}
}

// TestControllerFailureCancelsPresentation verifies game over drops the scheduled presentation
func TestControllerFailureCancelsPresentation(t *testing.T) {
	ctrl, sched, rec := newTestController(game.NewSequenceSource(2))
	ctrl.Trigger()

	// Wrong press during the present delay
	ctrl.Press(game.Red)
	sched.Advance(constants.PresentDelay + constants.FlashDuration + constants.FailureFlashDuration)

	if rec.count("tone:green") != 0 {
		t.Error("Canceled presentation still played")
	}
}

// TestControllerShutdown verifies all tasks are canceled
func TestControllerShutdown(t *testing.T) {
	ctrl, sched, _ := newTestController(game.NewSequenceSource(0))
	ctrl.Trigger()
	ctrl.Press(game.Red)

	if sched.Pending() == 0 {
		t.Fatal("Expected pending tasks before shutdown")
	}
	ctrl.Shutdown()
	if sched.Pending() != 0 {
		t.Errorf("Expected no pending tasks after shutdown, got %d", sched.Pending())
	}
}

// TestControllerDefaultPlayer verifies the fallback name
func TestControllerDefaultPlayer(t *testing.T) {
	ctrl := NewController(game.NewSession(nil), NewManualScheduler(), Compose(&recorder{}, nil), DefaultTimings(), "", zerolog.Nop())
	if ctrl.Player() != constants.DefaultPlayerName {
		t.Errorf("Expected %q, got %q", constants.DefaultPlayerName, ctrl.Player())
	}
}

// TestTimingsValidate verifies non-positive delays are rejected
func TestTimingsValidate(t *testing.T) {
	if err := DefaultTimings().Validate(); err != nil {
		t.Errorf("Default timings invalid: %v", err)
	}
	tm := DefaultTimings()
	tm.AdvanceDelay = 0
	if err := tm.Validate(); err == nil {
		t.Error("Expected error for zero advance delay")
	}
}
