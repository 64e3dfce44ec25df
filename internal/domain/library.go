package domain

import (
	"slices"
	"sort"
)

// MediaTypePDF is the only media type the library accepts on import.
const MediaTypePDF = "application/pdf"

// DocumentKind tags the two document variants.
type DocumentKind string

const (
	DocumentKindPlain     DocumentKind = "PLAIN"
	DocumentKindGenerated DocumentKind = "GENERATED"
)

func (k DocumentKind) String() string { return string(k) }

// SummaryContent is the structured payload carried by generated documents.
type SummaryContent struct {
	Chapter   string
	Summary   string
	KeyPoints []string
	Formula   string
	Warning   string
}

// ExpertSheet is the long-form revision sheet shown when a summary is opened.
type ExpertSheet struct {
	Chapter  string
	Context  string
	Theorems []string
	Methods  []string
	Errors   []string
}

// Document is a single file record within a subject. Content is set only
// for DocumentKindGenerated; use the constructors to keep the two in step.
type Document struct {
	Name    string
	Size    int64
	Date    Date
	Kind    DocumentKind
	Content *SummaryContent
}

// NewPlainDocument creates an imported document.
func NewPlainDocument(name string, size int64, date Date) Document {
	return Document{Name: name, Size: size, Date: date, Kind: DocumentKindPlain}
}

// NewGeneratedDocument creates a document produced by the content generator.
func NewGeneratedDocument(name string, size int64, date Date, content SummaryContent) Document {
	c := content
	return Document{Name: name, Size: size, Date: date, Kind: DocumentKindGenerated, Content: &c}
}

// IsGenerated reports whether the document came from the generator.
func (d Document) IsGenerated() bool {
	return d.Kind == DocumentKindGenerated
}

// Subject is a top-level folder owning an ordered list of documents.
type Subject struct {
	ID        string
	Name      string
	Icon      string
	Gradient  string
	Mastery   int
	Position  int
	Documents []Document
}

// HasDocument reports whether a document with exactly this name exists.
func (s *Subject) HasDocument(name string) bool {
	return slices.ContainsFunc(s.Documents, func(d Document) bool { return d.Name == name })
}

// StorageBytes sums the sizes of all documents in the subject.
func (s *Subject) StorageBytes() int64 {
	var total int64
	for _, d := range s.Documents {
		total += d.Size
	}
	return total
}

// SortedDocuments returns a copy of the documents ordered by date, newest
// first. Documents sharing a date keep their insertion order.
func (s *Subject) SortedDocuments() []Document {
	docs := slices.Clone(s.Documents)
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Date.After(docs[j].Date.Time)
	})
	return docs
}

// Clone returns a deep copy safe to hand outside the owning store.
func (s *Subject) Clone() *Subject {
	c := *s
	c.Documents = make([]Document, len(s.Documents))
	for i, d := range s.Documents {
		if d.Content != nil {
			content := *d.Content
			content.KeyPoints = slices.Clone(d.Content.KeyPoints)
			d.Content = &content
		}
		c.Documents[i] = d
	}
	return &c
}

// Library is the whole persisted document tree plus the open-folder set.
type Library struct {
	Subjects    map[string]*Subject
	OpenFolders map[string]bool
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{
		Subjects:    make(map[string]*Subject),
		OpenFolders: make(map[string]bool),
	}
}

// Ordered returns subjects in presentation order (creation position, then id).
func (l *Library) Ordered() []*Subject {
	out := make([]*Subject, 0, len(l.Subjects))
	for _, s := range l.Subjects {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// NextPosition returns a position greater than any existing subject's.
func (l *Library) NextPosition() int {
	next := 0
	for _, s := range l.Subjects {
		if s.Position >= next {
			next = s.Position + 1
		}
	}
	return next
}

// OpenFolderIDs returns the open-folder set as a sorted slice.
func (l *Library) OpenFolderIDs() []string {
	ids := make([]string, 0, len(l.OpenFolders))
	for id, open := range l.OpenFolders {
		if open {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// TotalStorageBytes sums document sizes across all subjects.
func (l *Library) TotalStorageBytes() int64 {
	var total int64
	for _, s := range l.Subjects {
		total += s.StorageBytes()
	}
	return total
}

// DocumentCount counts documents across all subjects.
func (l *Library) DocumentCount() int {
	n := 0
	for _, s := range l.Subjects {
		n += len(s.Documents)
	}
	return n
}

// SubjectCount returns the number of subjects.
func (l *Library) SubjectCount() int {
	return len(l.Subjects)
}

// FileCandidate is one file offered for import by a file pick or drop.
type FileCandidate struct {
	Name      string
	Size      int64
	MediaType string
}

// ImportResult summarises an AddDocuments call. Duplicates and Rejected
// (wrong media type) are skipped silently and only counted here.
type ImportResult struct {
	SubjectID  string
	Added      int
	Duplicates int
	Rejected   int
}

// NothingImported reports the "0 added" outcome the caller must surface.
func (r ImportResult) NothingImported() bool {
	return r.Added == 0
}

// SearchHit is a document matched by a library search.
type SearchHit struct {
	SubjectID   string
	SubjectName string
	Document    Document
}

// GeneratedDocumentSize is the nominal size recorded for generated summaries.
const GeneratedDocumentSize int64 = 45000

// GeneratedDocumentName derives the file name of a generated summary.
func GeneratedDocumentName(chapter string) string {
	return "Synthèse - " + chapter + ".pdf"
}
