package game

import "errors"

// Status is the session lifecycle state
type Status uint8

const (
	StatusNotStarted Status = iota
	StatusPlaying
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome classifies the result of a submitted color
type Outcome uint8

const (
	OutcomeIgnored       Outcome = iota // Not playing, or a round advance is pending
	OutcomeContinue                     // Correct, more input expected this round
	OutcomeRoundComplete                // Correct, the round's sequence is reproduced
	OutcomeMismatch                     // Wrong color, game ended and reset
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeContinue:
		return "continue"
	case OutcomeRoundComplete:
		return "round_complete"
	case OutcomeMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// ErrRoundInProgress is returned when StartOrAdvance is called mid-round
var ErrRoundInProgress = errors.New("round in progress")

// Failure describes the input that ended the last game
type Failure struct {
	Index    int   // Position in the sequence where the mismatch happened
	Expected Color // Color the sequence held at Index
	Got      Color // Color the player submitted
	Round    int   // Round reached when the game ended
}

// Session owns the sequences and counters of one player's games
// Not safe for concurrent use, callers serialize access on one goroutine
type Session struct {
	palette Palette
	src     Source

	status  Status
	game    []Color
	player  []Color
	round   int
	best    int
	pending bool // Round reproduced, waiting for StartOrAdvance to extend

	lastFailure *Failure
}

// NewSession creates a session drawing colors from src
func NewSession(src Source) *Session {
	if src == nil {
		src = NewSource(0)
	}
	return &Session{
		palette: DefaultPalette(),
		src:     src,
		status:  StatusNotStarted,
	}
}

// StartOrAdvance starts a game when not started, or extends the sequence after a completed round
// Returns the newly appended color, which the caller presents to the player
func (s *Session) StartOrAdvance() (Color, error) {
	switch s.status {
	case StatusNotStarted:
		s.status = StatusPlaying
		s.lastFailure = nil
	case StatusPlaying:
		if !s.pending {
			return 0, ErrRoundInProgress
		}
	default:
		return 0, ErrRoundInProgress
	}

	s.pending = false
	s.player = s.player[:0]

	c := s.palette[s.src.IntN(s.palette.Len())]
	s.game = append(s.game, c)
	s.round++
	if s.round > s.best {
		s.best = s.round
	}
	return c, nil
}

// SubmitColor records one player input and checks it against the sequence
func (s *Session) SubmitColor(c Color) Outcome {
	if s.status != StatusPlaying || s.pending {
		return OutcomeIgnored
	}

	s.player = append(s.player, c)
	idx := len(s.player) - 1

	if s.game[idx] != c {
		s.lastFailure = &Failure{
			Index:    idx,
			Expected: s.game[idx],
			Got:      c,
			Round:    s.round,
		}
		s.status = StatusGameOver
		s.reset()
		return OutcomeMismatch
	}

	if len(s.player) == len(s.game) {
		s.pending = true
		return OutcomeRoundComplete
	}
	return OutcomeContinue
}

// reset clears the game and returns to NotStarted
func (s *Session) reset() {
	s.game = s.game[:0]
	s.player = s.player[:0]
	s.round = 0
	s.pending = false
	s.status = StatusNotStarted
}

// Status returns the lifecycle state
func (s *Session) Status() Status { return s.status }

// Round returns the round counter, always equal to the game sequence length
func (s *Session) Round() int { return s.round }

// Best returns the highest round reached since the process started
func (s *Session) Best() int { return s.best }

// AdvancePending reports whether the current round is reproduced and awaiting extension
func (s *Session) AdvancePending() bool { return s.pending }

// GameSequence returns a copy of the target sequence
func (s *Session) GameSequence() []Color {
	return append([]Color(nil), s.game...)
}

// PlayerSequence returns a copy of the player's current attempt
func (s *Session) PlayerSequence() []Color {
	return append([]Color(nil), s.player...)
}

// LastFailure returns the mismatch that ended the previous game, if any
func (s *Session) LastFailure() (Failure, bool) {
	if s.lastFailure == nil {
		return Failure{}, false
	}
	return *s.lastFailure, true
}

// Snapshot is a value copy of the session used for rendering
type Snapshot struct {
	Status         Status
	Round          int
	Best           int
	GameSequence   []Color
	PlayerSequence []Color
	AdvancePending bool
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Status:         s.status,
		Round:          s.round,
		Best:           s.best,
		GameSequence:   s.GameSequence(),
		PlayerSequence: s.PlayerSequence(),
		AdvancePending: s.pending,
	}
}
