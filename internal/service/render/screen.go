// Package render turns service state into screen models and fans them out
// to live subscribers.
package render

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// Hub counts shown on the subject detail page.
const (
	CardsPerDocument   = 12
	SummarySheetsShown = 4
	summariesListLimit = 10
)

// EmptyLibraryMessage is shown on the grid when there are no subjects.
const EmptyLibraryMessage = "No subjects."

// Screen is everything a renderer needs to draw the current page.
type Screen struct {
	View        domain.ViewLevel `json:"view"`
	Filter      string           `json:"filter"`
	Grid        *GridScreen      `json:"grid,omitempty"`
	Detail      *DetailScreen    `json:"detail,omitempty"`
	Recap       Recap            `json:"recap"`
	Progression ProgressionView  `json:"progression"`
	Trainer     *TrainerView     `json:"trainer,omitempty"`
}

type GridScreen struct {
	Empty   bool     `json:"empty"`
	Message string   `json:"message,omitempty"`
	Folders []Folder `json:"folders"`
}

type Folder struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Icon          string         `json:"icon"`
	Gradient      string         `json:"gradient"`
	Mastery       int            `json:"mastery"`
	Open          bool           `json:"open"`
	DocumentCount int            `json:"documentCount"`
	Documents     []DocumentView `json:"documents"`
}

type DocumentView struct {
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	SizeLabel string `json:"sizeLabel"`
	Date      string `json:"date"`
	Generated bool   `json:"generated"`
}

type DetailScreen struct {
	SubjectID      string         `json:"subjectId"`
	Name           string         `json:"name"`
	Icon           string         `json:"icon"`
	Gradient       string         `json:"gradient"`
	Mastery        int            `json:"mastery"`
	SubView        domain.SubView `json:"subView"`
	FlashcardCount int            `json:"flashcardCount"`
	SummaryCount   int            `json:"summaryCount"`
	Documents      []DocumentView `json:"documents,omitempty"`
	Chapters       []Chapter      `json:"chapters,omitempty"`
	Summaries      []DocumentView `json:"summaries,omitempty"`
}

// Chapter is one row of the flashcards sub-view.
type Chapter struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Cards int    `json:"cards"`
}

type Recap struct {
	Documents    int    `json:"documents"`
	Subjects     int    `json:"subjects"`
	StorageBytes int64  `json:"storageBytes"`
	Storage      string `json:"storage"`
}

type ProgressionView struct {
	XP            int    `json:"xp"`
	XPLabel       string `json:"xpLabel"`
	Level         int    `json:"level"`
	Streak        int    `json:"streak"`
	LevelProgress int    `json:"levelProgress"`
	NextLevelXP   int    `json:"nextLevelXp"`
}

type TrainerView struct {
	Level     string `json:"level"`
	Subject   string `json:"subject"`
	Question  string `json:"question"`
	Hint      string `json:"hint"`
	Answer    string `json:"answer,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Revealed  bool   `json:"revealed"`
	Points    int    `json:"points"`
	Answered  int    `json:"answered"`
	Target    int    `json:"target"`
	Percent   int    `json:"percent"`
	CardIndex int    `json:"cardIndex"`
}

func documentView(d domain.Document) DocumentView {
	return DocumentView{
		Name:      d.Name,
		Size:      d.Size,
		SizeLabel: sizeLabel(d.Size),
		Date:      d.Date.String(),
		Generated: d.IsGenerated(),
	}
}

func documentViews(docs []domain.Document) []DocumentView {
	out := make([]DocumentView, len(docs))
	for i, d := range docs {
		out[i] = documentView(d)
	}
	return out
}

func sizeLabel(n int64) string {
	if n <= 0 {
		return "—"
	}
	return humanize.IBytes(uint64(n))
}

func chapterTitle(name string) string {
	return strings.TrimSuffix(name, ".pdf")
}
