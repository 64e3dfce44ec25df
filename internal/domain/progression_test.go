package domain

import "testing"

func TestLevelFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		xp, perLevel, want int
	}{
		{0, 1000, 1},
		{999, 1000, 1},
		{1000, 1000, 2},
		{2840, 1000, 3},
		{-5, 1000, 1},
		{500, 0, 1},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.xp, tt.perLevel); got != tt.want {
			t.Errorf("LevelFor(%d, %d) = %d, want %d", tt.xp, tt.perLevel, got, tt.want)
		}
	}
}

func TestProgression_Normalized(t *testing.T) {
	t.Parallel()

	p := Progression{XP: 2840, Level: 1, Streak: 14}.Normalized(DefaultXPPerLevel)
	if p.Level != 3 {
		t.Errorf("Level = %d, want 3", p.Level)
	}
	if p.Streak != 14 {
		t.Errorf("Streak changed to %d", p.Streak)
	}
}

func TestActivity_Points(t *testing.T) {
	t.Parallel()

	tests := map[Activity]int{
		ActivityReadSummary:        20,
		ActivityCompleteFlashcards: 100,
		ActivityUploadPDF:          50,
		ActivityDailyLogin:         150,
		ActivityGenerateSummary:    50,
		ActivityGenerateFlashcards: 75,
		Activity("anything_else"):  UnknownActivityPoints,
	}
	for a, want := range tests {
		if got := a.Points(); got != want {
			t.Errorf("%s.Points() = %d, want %d", a, got, want)
		}
	}
}

func TestGradeTier_Points(t *testing.T) {
	t.Parallel()

	if GradeAgain.Points() != 5 || GradeGood.Points() != 15 || GradePerfect.Points() != 25 {
		t.Fatal("unexpected tier points")
	}
	if GradeTier("meh").IsValid() {
		t.Error("unknown tier should be invalid")
	}
}

func TestViewState_Level(t *testing.T) {
	t.Parallel()

	if got := (ViewState{}).Level(); got != ViewLevelGrid {
		t.Errorf("empty state level = %s", got)
	}
	if got := (ViewState{SelectedSubjectID: "maths"}).Level(); got != ViewLevelHub {
		t.Errorf("selected state level = %s", got)
	}
	if got := (ViewState{SelectedSubjectID: "maths", SubView: SubViewSummaries}).Level(); got != ViewLevelSubView {
		t.Errorf("sub-view state level = %s", got)
	}
	if SubViewNone.IsValid() {
		t.Error("none is not a selectable sub-view")
	}
}
