package domain

import "time"

// DefaultXPPerLevel is the XP span of a single level.
const DefaultXPPerLevel = 1000

// Progression is the learner's persisted gamification state.
type Progression struct {
	XP             int
	Level          int
	Streak         int
	LastActionDate Date
}

// LevelFor returns the level implied by xp: every perLevel points is one level,
// starting at level 1.
func LevelFor(xp, perLevel int) int {
	if perLevel <= 0 {
		perLevel = DefaultXPPerLevel
	}
	if xp < 0 {
		xp = 0
	}
	return xp/perLevel + 1
}

// Normalized returns p with Level recomputed from XP.
func (p Progression) Normalized(perLevel int) Progression {
	if p.XP < 0 {
		p.XP = 0
	}
	p.Level = LevelFor(p.XP, perLevel)
	return p
}

// Activity names a rewarded user action.
type Activity string

const (
	ActivityReadSummary        Activity = "read_summary"
	ActivityCompleteFlashcards Activity = "complete_flashcards"
	ActivityUploadPDF          Activity = "upload_pdf"
	ActivityDailyLogin         Activity = "daily_login"
	ActivityGenerateSummary    Activity = "generate_summary"
	ActivityGenerateFlashcards Activity = "generate_flashcards"
)

// UnknownActivityPoints is awarded for an activity without a reward entry.
const UnknownActivityPoints = 10

func (a Activity) String() string { return string(a) }

// Points returns the XP reward for the activity.
func (a Activity) Points() int {
	switch a {
	case ActivityReadSummary:
		return 20
	case ActivityCompleteFlashcards:
		return 100
	case ActivityUploadPDF:
		return 50
	case ActivityDailyLogin:
		return 150
	case ActivityGenerateSummary:
		return 50
	case ActivityGenerateFlashcards:
		return 75
	}
	return UnknownActivityPoints
}

// AwardResult describes the effect of a single XP award.
type AwardResult struct {
	Gained    int
	XP        int
	Level     int
	LeveledUp bool
}

// LevelUpEvent is published once per level crossing.
type LevelUpEvent struct {
	Level int
	XP    int
}

// DailyBonusResult reports what CheckDailyBonus did.
type DailyBonusResult struct {
	Awarded bool
	Streak  int
	Award   AwardResult
	// NextAt is when the next bonus becomes available.
	NextAt time.Time
}
