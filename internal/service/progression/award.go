package progression

import (
	"context"
	"log/slog"
	"math"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// Award adds points to the learner's XP, recomputes the level and saves.
// A level-up event is published once when the award crosses a level boundary.
func (s *Service) Award(ctx context.Context, points int) (domain.AwardResult, error) {
	if points < 0 {
		return domain.AwardResult{}, domain.NewValidationError("points", "must be >= 0")
	}

	s.mu.Lock()
	if points > math.MaxInt-s.state.XP {
		s.mu.Unlock()
		return domain.AwardResult{}, domain.NewValidationError("points", "exceeds the remaining XP range")
	}
	result := s.awardLocked(points)
	s.store.SaveProgression(ctx, s.state)
	s.mu.Unlock()

	s.afterAward(ctx, result)
	return result, nil
}

// AwardAction awards the reward registered for the activity; unknown
// activities get a small flat reward.
func (s *Service) AwardAction(ctx context.Context, activity domain.Activity) (domain.AwardResult, error) {
	result, err := s.Award(ctx, activity.Points())
	if err != nil {
		return result, err
	}
	s.log.DebugContext(ctx, "activity rewarded",
		slog.String("activity", activity.String()),
		slog.Int("points", result.Gained),
	)
	return result, nil
}

// awardLocked applies the award to s.state, saturating at math.MaxInt.
// Caller holds s.mu.
func (s *Service) awardLocked(points int) domain.AwardResult {
	before := s.state.XP / s.perLevel
	points = min(points, math.MaxInt-s.state.XP)
	s.state.XP += points
	after := s.state.XP / s.perLevel
	s.state.Level = after + 1

	return domain.AwardResult{
		Gained:    points,
		XP:        s.state.XP,
		Level:     s.state.Level,
		LeveledUp: after > before,
	}
}

func (s *Service) afterAward(ctx context.Context, result domain.AwardResult) {
	if !result.LeveledUp {
		return
	}
	s.log.InfoContext(ctx, "level up", slog.Int("level", result.Level), slog.Int("xp", result.XP))
	if s.listener != nil {
		s.listener.LevelUp(ctx, domain.LevelUpEvent{Level: result.Level, XP: result.XP})
	}
}
