package domain

// NoticeKind tags a transient notification for the renderer.
type NoticeKind string

const (
	NoticeSummaryReady     NoticeKind = "summary_ready"
	NoticeAlreadyGenerated NoticeKind = "already_generated"
	NoticeFlashcardsReady  NoticeKind = "flashcards_ready"
	NoticeNothingImported  NoticeKind = "nothing_imported"
	NoticeSessionComplete  NoticeKind = "session_complete"
)

func (k NoticeKind) String() string { return string(k) }

// Notice is a one-shot message such as a toast or an alert.
type Notice struct {
	Kind      NoticeKind
	SubjectID string
	Message   string
}
