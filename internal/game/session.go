// internal/game/session.go
//
// Session is the top-level state machine for one play-through:
//
//	Setup ──Start──▶ Playing ──terminal guess──▶ Finished ──Reset──▶ Setup
//
// No other transitions are legal; they return ErrWrongPhase and leave the
// session untouched. On the terminal guess the session records the result
// with its StatsTracker exactly once.

package game

import "fmt"

// Phase tags the active SessionState variant.
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// SessionState is a read-only snapshot of a session.
// Playing fills CurrentRow/CurrentCol/Pending; Finished fills Won,
// CompletedCount and Outcome. Boards are filled in both.
type SessionState struct {
	Phase          Phase          `json:"phase"`
	Config         GameConfig     `json:"config"`
	Title          string         `json:"title"`
	MaxAttempts    int            `json:"maxAttempts"`
	CurrentRow     int            `json:"currentRow"`
	CurrentCol     int            `json:"currentCol"`
	Pending        string         `json:"pending,omitempty"`
	Boards         []BoardState   `json:"boards,omitempty"`
	Keyboard       KeyboardHint   `json:"-"`
	Won            bool           `json:"won"`
	CompletedCount int            `json:"completedCount"`
	Outcome        *SubmitOutcome `json:"outcome,omitempty"`
}

// Session owns at most one BoardSet at a time.
type Session struct {
	phase   Phase
	boards  *BoardSet
	outcome *SubmitOutcome
	tracker *StatsTracker
}

// NewSession returns a session in Setup. tracker may be nil, in which case
// results are not recorded.
func NewSession(tracker *StatsTracker) *Session {
	return &Session{phase: PhaseSetup, tracker: tracker}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Start configures a BoardSet from cfg and externally supplied targets and
// moves Setup → Playing.
func (s *Session) Start(cfg GameConfig, targets []Word) error {
	if s.phase != PhaseSetup {
		return ErrWrongPhase
	}
	bs, err := NewBoardSet(cfg, targets)
	if err != nil {
		return err
	}
	s.boards = bs
	s.outcome = nil
	s.phase = PhasePlaying
	return nil
}

// SubmitGuess forwards a guess to the BoardSet. A terminal outcome moves the
// session to Finished and records the result. If recording fails the session
// is still Finished and the outcome is returned with the error.
func (s *Session) SubmitGuess(guess string) (SubmitOutcome, error) {
	if s.phase != PhasePlaying {
		return SubmitOutcome{}, ErrWrongPhase
	}
	out, err := s.boards.SubmitGuess(guess)
	if err != nil {
		return SubmitOutcome{}, err
	}
	if out.Terminal() {
		return out, s.finish(out)
	}
	return out, nil
}

// SubmitPending submits the letters typed with AddLetter.
func (s *Session) SubmitPending() (SubmitOutcome, error) {
	if s.phase != PhasePlaying {
		return SubmitOutcome{}, ErrWrongPhase
	}
	return s.SubmitGuess(s.boards.Pending())
}

// AddLetter types one letter into the current row.
func (s *Session) AddLetter(r rune) error {
	if s.phase != PhasePlaying {
		return ErrWrongPhase
	}
	return s.boards.AddLetter(r)
}

// DeleteLetter removes the last typed letter.
func (s *Session) DeleteLetter() error {
	if s.phase != PhasePlaying {
		return ErrWrongPhase
	}
	s.boards.DeleteLetter()
	return nil
}

// Reset discards all Playing/Finished state and returns to Setup.
// Resetting a game in progress is not allowed.
func (s *Session) Reset() error {
	if s.phase == PhasePlaying {
		return ErrWrongPhase
	}
	s.boards = nil
	s.outcome = nil
	s.phase = PhaseSetup
	return nil
}

func (s *Session) finish(out SubmitOutcome) error {
	s.outcome = &out
	s.phase = PhaseFinished
	if s.tracker == nil {
		return nil
	}
	if _, err := s.tracker.RecordResult(out.CountsAsWin(), out.AttemptsUsed); err != nil {
		return fmt.Errorf("record stats: %w", err)
	}
	return nil
}

// Outcome returns the terminal outcome, or nil before Finished.
func (s *Session) Outcome() *SubmitOutcome {
	if s.outcome == nil {
		return nil
	}
	o := *s.outcome
	return &o
}

// Targets returns the target words, or nil in Setup.
func (s *Session) Targets() []Word {
	if s.boards == nil {
		return nil
	}
	return s.boards.Targets()
}

// Keyboard returns the shared keyboard hint, empty in Setup.
func (s *Session) Keyboard() KeyboardHint {
	if s.boards == nil {
		return KeyboardHint{}
	}
	return s.boards.Keyboard()
}

// Title returns the mode name for the configured board count.
func (s *Session) Title() string {
	if s.boards == nil {
		return ""
	}
	return ModeName(s.boards.Config().BoardCount)
}

// State returns a snapshot of the active variant.
func (s *Session) State() SessionState {
	st := SessionState{Phase: s.phase}
	if s.boards == nil {
		return st
	}
	st.Config = s.boards.Config()
	st.Title = ModeName(st.Config.BoardCount)
	st.MaxAttempts = s.boards.MaxAttempts()
	st.Boards = s.boards.Boards()
	st.Keyboard = s.boards.Keyboard()
	st.CompletedCount = s.boards.CompletedCount()
	switch s.phase {
	case PhasePlaying:
		st.CurrentRow = s.boards.CurrentRow()
		st.CurrentCol = s.boards.CurrentCol()
		st.Pending = s.boards.Pending()
	case PhaseFinished:
		st.CurrentRow = s.boards.CurrentRow()
		st.Outcome = s.Outcome()
		st.Won = st.Outcome != nil && st.Outcome.Won()
	}
	return st
}
