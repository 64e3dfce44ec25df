package render

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type libraryReader interface {
	Subjects() []*domain.Subject
	IsOpen(id string) bool
	TotalStorageBytes() int64
	DocumentCount() int
	SubjectCount() int
}

type viewReader interface {
	State() domain.ViewState
}

type progressionReader interface {
	Snapshot() domain.Progression
	XPPerLevel() int
}

type trainerReader interface {
	Current() (domain.TrainerState, error)
}

// ---------------------------------------------------------------------------
// Builder
// ---------------------------------------------------------------------------

// Builder assembles a Screen from the services. Trainer may be nil.
type Builder struct {
	Library     libraryReader
	View        viewReader
	Progression progressionReader
	Trainer     trainerReader
}

// Build returns the screen for the current view state. filter narrows the
// grid; it has no effect on the detail page.
func (b *Builder) Build(filter string) Screen {
	state := b.View.State()
	screen := Screen{
		View:        state.Level(),
		Filter:      filter,
		Recap:       b.recap(),
		Progression: b.progression(),
	}

	subjects := b.Library.Subjects()
	if state.SelectedSubjectID != "" {
		for _, s := range subjects {
			if s.ID == state.SelectedSubjectID {
				screen.Detail = detail(s, state.SubView)
				break
			}
		}
	}
	if screen.Detail == nil {
		screen.View = domain.ViewLevelGrid
		screen.Grid = b.grid(subjects, filter)
	}

	if b.Trainer != nil {
		if ts, err := b.Trainer.Current(); err == nil {
			screen.Trainer = trainerView(ts)
		}
	}
	return screen
}

func (b *Builder) grid(subjects []*domain.Subject, filter string) *GridScreen {
	if len(subjects) == 0 {
		return &GridScreen{Empty: true, Message: EmptyLibraryMessage, Folders: []Folder{}}
	}

	q := domain.NormalizeText(filter)
	folders := make([]Folder, 0, len(subjects))
	for _, s := range subjects {
		docs := s.Documents
		if q != "" && !strings.Contains(domain.NormalizeText(s.Name), q) {
			docs = matching(docs, q)
			if len(docs) == 0 {
				continue
			}
		}
		folders = append(folders, Folder{
			ID:            s.ID,
			Name:          s.Name,
			Icon:          s.Icon,
			Gradient:      s.Gradient,
			Mastery:       s.Mastery,
			Open:          b.Library.IsOpen(s.ID),
			DocumentCount: len(s.Documents),
			Documents:     documentViews(docs),
		})
	}
	return &GridScreen{Folders: folders}
}

func matching(docs []domain.Document, q string) []domain.Document {
	var out []domain.Document
	for _, d := range docs {
		if strings.Contains(domain.NormalizeText(d.Name), q) {
			out = append(out, d)
		}
	}
	return out
}

func detail(s *domain.Subject, sub domain.SubView) *DetailScreen {
	d := &DetailScreen{
		SubjectID:      s.ID,
		Name:           s.Name,
		Icon:           s.Icon,
		Gradient:       s.Gradient,
		Mastery:        s.Mastery,
		SubView:        sub,
		FlashcardCount: len(s.Documents) * CardsPerDocument,
		SummaryCount:   SummarySheetsShown,
	}

	switch sub {
	case domain.SubViewFlashcards:
		d.Chapters = make([]Chapter, len(s.Documents))
		for i, doc := range s.Documents {
			d.Chapters[i] = Chapter{Title: chapterTitle(doc.Name), Date: doc.Date.String(), Cards: CardsPerDocument}
		}
	case domain.SubViewSummaries:
		sorted := s.SortedDocuments()
		if len(sorted) > summariesListLimit {
			sorted = sorted[:summariesListLimit]
		}
		d.Summaries = documentViews(sorted)
	default:
		d.Documents = documentViews(s.Documents)
	}
	return d
}

func (b *Builder) recap() Recap {
	total := b.Library.TotalStorageBytes()
	return Recap{
		Documents:    b.Library.DocumentCount(),
		Subjects:     b.Library.SubjectCount(),
		StorageBytes: total,
		Storage:      sizeLabel(total),
	}
}

func (b *Builder) progression() ProgressionView {
	p := b.Progression.Snapshot()
	per := b.Progression.XPPerLevel()
	if per <= 0 {
		per = domain.DefaultXPPerLevel
	}
	into := p.XP % per
	return ProgressionView{
		XP:            p.XP,
		XPLabel:       humanize.Comma(int64(p.XP)) + " XP",
		Level:         p.Level,
		Streak:        p.Streak,
		LevelProgress: into * 100 / per,
		NextLevelXP:   p.Level * per,
	}
}

func trainerView(ts domain.TrainerState) *TrainerView {
	v := &TrainerView{
		Level:     ts.Card.Level,
		Subject:   ts.Card.Subject,
		Question:  ts.Card.Question,
		Hint:      ts.Card.Hint,
		Revealed:  ts.Revealed,
		Points:    ts.Points,
		Answered:  ts.Answered,
		Target:    ts.Target,
		Percent:   ts.Percent(),
		CardIndex: ts.CardIndex,
	}
	if ts.Revealed {
		v.Answer = ts.Card.Answer
		v.Detail = ts.Card.Detail
	}
	return v
}
