package trainer

import (
	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// Session is a single flashcard run. The deck repeats cyclically; the run
// ends when the answered count reaches the target. Session is not safe for
// concurrent use.
type Session struct {
	deck     []domain.Card
	index    int
	revealed bool
	points   int
	answered int
	target   int
	done     bool
}

// NewSession starts a run over deck with the given baseline. answered is
// clamped into [0, target].
func NewSession(deck []domain.Card, answered, target, points int) *Session {
	answered = min(max(answered, 0), target)
	return &Session{
		deck:     deck,
		answered: answered,
		target:   target,
		points:   points,
		done:     answered >= target,
	}
}

// Card returns the card currently shown.
func (s *Session) Card() domain.Card {
	if len(s.deck) == 0 {
		return domain.Card{}
	}
	return s.deck[s.index%len(s.deck)]
}

// Reveal shows the answer of the current card. Calling it twice is harmless.
func (s *Session) Reveal() {
	s.revealed = true
}

// Grade scores the current card and advances to the next one. Grading a
// hidden card reveals it and returns ErrPrematureGrade without scoring.
func (s *Session) Grade(tier domain.GradeTier) (domain.GradeResult, error) {
	if !tier.IsValid() {
		return domain.GradeResult{}, domain.NewValidationError("tier", "must be again, good or perfect")
	}
	if s.done {
		return domain.GradeResult{}, domain.ErrNoActiveSession
	}
	if !s.revealed {
		s.revealed = true
		return s.result(0), domain.ErrPrematureGrade
	}

	gained := tier.Points()
	s.points += gained
	s.answered = min(s.answered+1, s.target)
	s.index++
	if len(s.deck) > 0 {
		s.index %= len(s.deck)
	}
	s.revealed = false
	s.done = s.answered >= s.target

	return s.result(gained), nil
}

// State returns a snapshot of the run.
func (s *Session) State() domain.TrainerState {
	return domain.TrainerState{
		Card:      s.Card(),
		CardIndex: s.index,
		Revealed:  s.revealed,
		Points:    s.points,
		Answered:  s.answered,
		Target:    s.target,
		Completed: s.done,
	}
}

func (s *Session) result(gained int) domain.GradeResult {
	return domain.GradeResult{
		Gained:    gained,
		Points:    s.points,
		Answered:  s.answered,
		Target:    s.target,
		Completed: s.done,
	}
}
