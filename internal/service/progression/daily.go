package progression

import (
	"context"
	"log/slog"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// CheckDailyBonus awards the daily login bonus at most once per calendar day
// in the configured timezone. The streak grows on consecutive days and
// restarts at 1 after a gap.
func (s *Service) CheckDailyBonus(ctx context.Context) (domain.DailyBonusResult, error) {
	now := s.clock.Now()
	today := domain.DateOf(now, s.loc)
	next := NextDayStart(now, s.loc)

	s.mu.Lock()
	if s.state.LastActionDate.Same(today) {
		streak := s.state.Streak
		s.mu.Unlock()
		return domain.DailyBonusResult{Awarded: false, Streak: streak, NextAt: next}, nil
	}

	if !s.state.LastActionDate.IsZero() && s.state.LastActionDate.DaysUntil(today) == 1 {
		s.state.Streak++
	} else {
		s.state.Streak = 1
	}
	s.state.LastActionDate = today
	award := s.awardLocked(domain.ActivityDailyLogin.Points())
	s.store.SaveProgression(ctx, s.state)
	streak := s.state.Streak
	s.mu.Unlock()

	s.log.InfoContext(ctx, "daily bonus awarded",
		slog.String("date", today.String()),
		slog.Int("streak", streak),
	)
	s.afterAward(ctx, award)

	return domain.DailyBonusResult{Awarded: true, Streak: streak, Award: award, NextAt: next}, nil
}
