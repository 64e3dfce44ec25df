package domain

// GradeTier is the learner's self-assessment of a flashcard answer.
type GradeTier string

const (
	GradeAgain   GradeTier = "again"
	GradeGood    GradeTier = "good"
	GradePerfect GradeTier = "perfect"
)

func (g GradeTier) String() string { return string(g) }

func (g GradeTier) IsValid() bool {
	switch g {
	case GradeAgain, GradeGood, GradePerfect:
		return true
	}
	return false
}

// Points returns the session points awarded for the tier.
func (g GradeTier) Points() int {
	switch g {
	case GradeAgain:
		return 5
	case GradeGood:
		return 15
	case GradePerfect:
		return 25
	}
	return 0
}

// Card is one flashcard of the training deck.
type Card struct {
	Level    string
	Subject  string
	Question string
	Hint     string
	Answer   string
	Detail   string
}

// TrainerState is a snapshot of a training session.
type TrainerState struct {
	Card      Card
	CardIndex int
	Revealed  bool
	Points    int
	Answered  int
	Target    int
	Completed bool
}

// Percent is the session progress toward the target, rounded to an integer.
func (s TrainerState) Percent() int { return ProgressPercent(s.Answered, s.Target) }

// GradeResult reports the outcome of grading one card.
type GradeResult struct {
	Gained    int
	Points    int
	Answered  int
	Target    int
	Completed bool
	// Award is set when completion granted progression XP.
	Award *AwardResult
}

// Percent is the session progress toward the target after grading.
func (r GradeResult) Percent() int { return ProgressPercent(r.Answered, r.Target) }

// ProgressPercent returns answered/target as a rounded percentage.
func ProgressPercent(answered, target int) int {
	if target <= 0 {
		return 0
	}
	return (answered*100 + target/2) / target
}
