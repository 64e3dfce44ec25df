package domain

// SubView selects a panel inside the subject hub.
type SubView string

const (
	SubViewNone       SubView = ""
	SubViewFlashcards SubView = "flashcards"
	SubViewSummaries  SubView = "summaries"
)

func (v SubView) String() string { return string(v) }

// IsValid reports whether v is one of the selectable sub-views.
func (v SubView) IsValid() bool {
	switch v {
	case SubViewFlashcards, SubViewSummaries:
		return true
	}
	return false
}

// ViewLevel is the depth of the library navigation.
type ViewLevel string

const (
	ViewLevelGrid    ViewLevel = "GRID"
	ViewLevelHub     ViewLevel = "HUB"
	ViewLevelSubView ViewLevel = "SUBVIEW"
)

func (l ViewLevel) String() string { return string(l) }

// ViewState is a snapshot of the transient navigation state.
type ViewState struct {
	SelectedSubjectID string
	SubView           SubView
}

// Level derives the navigation depth from the snapshot.
func (s ViewState) Level() ViewLevel {
	switch {
	case s.SelectedSubjectID == "":
		return ViewLevelGrid
	case s.SubView == SubViewNone:
		return ViewLevelHub
	default:
		return ViewLevelSubView
	}
}

// BackResult reports what GoBack did.
type BackResult struct {
	State         ViewState
	ExitedLibrary bool
}
