package persistence

import (
	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// Domain types carry no JSON tags; the persisted shape lives here and keeps
// the field names of the browser storage format.

type libraryRecord struct {
	Subjects    map[string]subjectRecord `json:"subjects"`
	OpenFolders []string                 `json:"openFolders"`
}

type subjectRecord struct {
	Name     string           `json:"name"`
	Icon     string           `json:"icon"`
	Gradient string           `json:"gradient"`
	Mastery  int              `json:"mastery"`
	Position int              `json:"position"`
	Files    []documentRecord `json:"files"`
}

type documentRecord struct {
	Name          string         `json:"name"`
	Size          int64          `json:"size"`
	Date          string         `json:"date"`
	IsAIGenerated bool           `json:"isAIGenerated,omitempty"`
	Content       *contentRecord `json:"content,omitempty"`
}

type contentRecord struct {
	Chapter   string   `json:"chapter"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
	Formula   string   `json:"formula"`
	Warning   string   `json:"warning"`
}

type progressionRecord struct {
	XP             int    `json:"xp"`
	Level          int    `json:"level"`
	Streak         int    `json:"streak"`
	LastActionDate string `json:"lastActionDate"`
}

func toLibraryRecord(lib *domain.Library) libraryRecord {
	rec := libraryRecord{
		Subjects:    make(map[string]subjectRecord, len(lib.Subjects)),
		OpenFolders: lib.OpenFolderIDs(),
	}
	for id, s := range lib.Subjects {
		files := make([]documentRecord, 0, len(s.Documents))
		for _, d := range s.Documents {
			files = append(files, toDocumentRecord(d))
		}
		rec.Subjects[id] = subjectRecord{
			Name:     s.Name,
			Icon:     s.Icon,
			Gradient: s.Gradient,
			Mastery:  s.Mastery,
			Position: s.Position,
			Files:    files,
		}
	}
	return rec
}

func toDocumentRecord(d domain.Document) documentRecord {
	rec := documentRecord{Name: d.Name, Size: d.Size, Date: d.Date.String()}
	if d.IsGenerated() && d.Content != nil {
		rec.IsAIGenerated = true
		rec.Content = &contentRecord{
			Chapter:   d.Content.Chapter,
			Summary:   d.Content.Summary,
			KeyPoints: d.Content.KeyPoints,
			Formula:   d.Content.Formula,
			Warning:   d.Content.Warning,
		}
	}
	return rec
}

// toDomainLibrary converts a decoded record. Unparseable dates become the
// zero date rather than failing the whole load.
func toDomainLibrary(rec libraryRecord) *domain.Library {
	lib := domain.NewLibrary()
	for id, sr := range rec.Subjects {
		docs := make([]domain.Document, 0, len(sr.Files))
		for _, f := range sr.Files {
			docs = append(docs, toDomainDocument(f))
		}
		lib.Subjects[id] = &domain.Subject{
			ID:        id,
			Name:      sr.Name,
			Icon:      sr.Icon,
			Gradient:  sr.Gradient,
			Mastery:   sr.Mastery,
			Position:  sr.Position,
			Documents: docs,
		}
	}
	for _, id := range rec.OpenFolders {
		lib.OpenFolders[id] = true
	}
	return lib
}

func toDomainDocument(f documentRecord) domain.Document {
	date, _ := domain.ParseDate(f.Date)
	if f.IsAIGenerated && f.Content != nil {
		return domain.NewGeneratedDocument(f.Name, f.Size, date, domain.SummaryContent{
			Chapter:   f.Content.Chapter,
			Summary:   f.Content.Summary,
			KeyPoints: f.Content.KeyPoints,
			Formula:   f.Content.Formula,
			Warning:   f.Content.Warning,
		})
	}
	return domain.NewPlainDocument(f.Name, f.Size, date)
}

func toProgressionRecord(p domain.Progression) progressionRecord {
	return progressionRecord{
		XP:             p.XP,
		Level:          p.Level,
		Streak:         p.Streak,
		LastActionDate: p.LastActionDate.String(),
	}
}

func toDomainProgression(rec progressionRecord) domain.Progression {
	date, _ := domain.ParseDate(rec.LastActionDate)
	return domain.Progression{
		XP:             rec.XP,
		Level:          rec.Level,
		Streak:         rec.Streak,
		LastActionDate: date,
	}
}
