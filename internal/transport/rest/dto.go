package rest

import (
	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

type documentResponse struct {
	Name          string                  `json:"name"`
	Size          int64                   `json:"size"`
	Date          string                  `json:"date"`
	IsAIGenerated bool                    `json:"isAIGenerated"`
	Content       *summaryContentResponse `json:"content,omitempty"`
}

type summaryContentResponse struct {
	Chapter   string   `json:"chapter"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
	Formula   string   `json:"formula"`
	Warning   string   `json:"warning"`
}

type subjectResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Icon      string             `json:"icon"`
	Gradient  string             `json:"gradient"`
	Mastery   int                `json:"mastery"`
	Position  int                `json:"position"`
	Documents []documentResponse `json:"files"`
}

type libraryResponse struct {
	Subjects     []subjectResponse `json:"subjects"`
	OpenFolders  []string          `json:"openFolders"`
	Documents    int               `json:"documents"`
	StorageBytes int64             `json:"storageBytes"`
}

type fileCandidateRequest struct {
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	MediaType string `json:"mediaType"`
}

type importRequest struct {
	Files []fileCandidateRequest `json:"files"`
}

type importResponse struct {
	SubjectID  string `json:"subjectId"`
	Added      int    `json:"added"`
	Duplicates int    `json:"duplicates"`
	Rejected   int    `json:"rejected"`
}

type searchHitResponse struct {
	SubjectID   string           `json:"subjectId"`
	SubjectName string           `json:"subjectName"`
	Document    documentResponse `json:"file"`
}

type expertSheetResponse struct {
	Chapter  string   `json:"chapter"`
	Context  string   `json:"context"`
	Theorems []string `json:"theorems"`
	Methods  []string `json:"methods"`
	Errors   []string `json:"errors"`
}

type openSheetResponse struct {
	Sheet expertSheetResponse `json:"sheet"`
	Award *awardResponse      `json:"award,omitempty"`
}

type viewStateResponse struct {
	Level             domain.ViewLevel `json:"level"`
	SelectedSubjectID string           `json:"selectedSubjectId,omitempty"`
	SubView           domain.SubView   `json:"subView,omitempty"`
}

type backResponse struct {
	viewStateResponse
	ExitedLibrary bool `json:"exitedLibrary"`
}

type progressionResponse struct {
	XP             int    `json:"xp"`
	Level          int    `json:"level"`
	Streak         int    `json:"streak"`
	LastActionDate string `json:"lastActionDate"`
}

type awardResponse struct {
	Gained    int  `json:"gained"`
	XP        int  `json:"xp"`
	Level     int  `json:"level"`
	LeveledUp bool `json:"leveledUp"`
}

type dailyBonusResponse struct {
	Awarded bool          `json:"awarded"`
	Streak  int           `json:"streak"`
	Award   awardResponse `json:"award"`
	NextAt  string        `json:"nextAt"`
}

type cardResponse struct {
	Level    string `json:"level"`
	Subject  string `json:"subject"`
	Question string `json:"question"`
	Hint     string `json:"hint"`
	Answer   string `json:"answer,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

type trainerStateResponse struct {
	Card      cardResponse `json:"card"`
	CardIndex int          `json:"cardIndex"`
	Revealed  bool         `json:"revealed"`
	Points    int          `json:"points"`
	Answered  int          `json:"answered"`
	Target    int          `json:"target"`
	Percent   int          `json:"percent"`
	Completed bool         `json:"completed"`
}

type gradeResponse struct {
	Gained    int            `json:"gained"`
	Points    int            `json:"points"`
	Answered  int            `json:"answered"`
	Target    int            `json:"target"`
	Percent   int            `json:"percent"`
	Completed bool           `json:"completed"`
	Award     *awardResponse `json:"award,omitempty"`
}

func toDocumentResponse(d domain.Document) documentResponse {
	resp := documentResponse{
		Name:          d.Name,
		Size:          d.Size,
		Date:          d.Date.String(),
		IsAIGenerated: d.IsGenerated(),
	}
	if d.Content != nil {
		resp.Content = &summaryContentResponse{
			Chapter:   d.Content.Chapter,
			Summary:   d.Content.Summary,
			KeyPoints: d.Content.KeyPoints,
			Formula:   d.Content.Formula,
			Warning:   d.Content.Warning,
		}
	}
	return resp
}

func toSubjectResponse(s *domain.Subject) subjectResponse {
	docs := make([]documentResponse, len(s.Documents))
	for i, d := range s.Documents {
		docs[i] = toDocumentResponse(d)
	}
	return subjectResponse{
		ID:        s.ID,
		Name:      s.Name,
		Icon:      s.Icon,
		Gradient:  s.Gradient,
		Mastery:   s.Mastery,
		Position:  s.Position,
		Documents: docs,
	}
}

func toFileCandidates(files []fileCandidateRequest) []domain.FileCandidate {
	out := make([]domain.FileCandidate, len(files))
	for i, f := range files {
		out[i] = domain.FileCandidate{Name: f.Name, Size: f.Size, MediaType: f.MediaType}
	}
	return out
}

func toImportResponse(r domain.ImportResult) importResponse {
	return importResponse{SubjectID: r.SubjectID, Added: r.Added, Duplicates: r.Duplicates, Rejected: r.Rejected}
}

func toExpertSheetResponse(s domain.ExpertSheet) expertSheetResponse {
	return expertSheetResponse{
		Chapter:  s.Chapter,
		Context:  s.Context,
		Theorems: s.Theorems,
		Methods:  s.Methods,
		Errors:   s.Errors,
	}
}

func toViewStateResponse(s domain.ViewState) viewStateResponse {
	return viewStateResponse{Level: s.Level(), SelectedSubjectID: s.SelectedSubjectID, SubView: s.SubView}
}

func toAwardResponse(a domain.AwardResult) awardResponse {
	return awardResponse{Gained: a.Gained, XP: a.XP, Level: a.Level, LeveledUp: a.LeveledUp}
}

func toTrainerStateResponse(s domain.TrainerState) trainerStateResponse {
	card := cardResponse{
		Level:    s.Card.Level,
		Subject:  s.Card.Subject,
		Question: s.Card.Question,
		Hint:     s.Card.Hint,
	}
	if s.Revealed {
		card.Answer = s.Card.Answer
		card.Detail = s.Card.Detail
	}
	return trainerStateResponse{
		Card:      card,
		CardIndex: s.CardIndex,
		Revealed:  s.Revealed,
		Points:    s.Points,
		Answered:  s.Answered,
		Target:    s.Target,
		Percent:   s.Percent(),
		Completed: s.Completed,
	}
}

func toGradeResponse(r domain.GradeResult) gradeResponse {
	resp := gradeResponse{
		Gained:    r.Gained,
		Points:    r.Points,
		Answered:  r.Answered,
		Target:    r.Target,
		Percent:   r.Percent(),
		Completed: r.Completed,
	}
	if r.Award != nil {
		a := toAwardResponse(*r.Award)
		resp.Award = &a
	}
	return resp
}
