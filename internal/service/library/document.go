package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// AddDocuments imports PDF candidates into a subject. Files of another media
// type or whose name already exists (including earlier in the same batch)
// are skipped and counted. The subject's folder is opened either way; an
// upload reward is granted when at least one file was added.
func (s *Service) AddDocuments(ctx context.Context, subjectID string, files []domain.FileCandidate) (domain.ImportResult, error) {
	result := domain.ImportResult{SubjectID: subjectID}

	s.mu.Lock()
	subject, ok := s.lib.Subjects[subjectID]
	if !ok {
		s.mu.Unlock()
		return result, fmt.Errorf("library.AddDocuments %q: %w", subjectID, domain.ErrNotFound)
	}

	today := s.today()
	for _, f := range files {
		switch {
		case f.MediaType != domain.MediaTypePDF:
			result.Rejected++
		case subject.HasDocument(f.Name):
			result.Duplicates++
		default:
			subject.Documents = append(subject.Documents, domain.NewPlainDocument(f.Name, f.Size, today))
			result.Added++
		}
	}
	s.lib.OpenFolders[subjectID] = true
	s.commitLocked(ctx)
	s.mu.Unlock()

	s.log.InfoContext(ctx, "documents imported",
		slog.String("subject_id", subjectID),
		slog.Int("added", result.Added),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("rejected", result.Rejected),
	)

	if result.Added > 0 {
		s.award(ctx, domain.ActivityUploadPDF)
	} else if len(files) > 0 && s.notifier != nil {
		s.notifier.Notify(ctx, domain.Notice{
			Kind:      domain.NoticeNothingImported,
			SubjectID: subjectID,
			Message:   "Aucun nouveau PDF importé.",
		})
	}
	s.render(ctx)
	return result, nil
}

// ImportIntoSelection imports into the subject currently open in the view.
func (s *Service) ImportIntoSelection(ctx context.Context, files []domain.FileCandidate) (domain.ImportResult, error) {
	if s.selection == nil {
		return domain.ImportResult{}, domain.ErrNoSubjectSelected
	}
	subjectID, err := s.selection.RequireSelection()
	if err != nil {
		return domain.ImportResult{}, err
	}
	return s.AddDocuments(ctx, subjectID, files)
}

// DeleteDocument removes a document by exact name and reports whether
// anything was removed. A missing subject or document is not an error.
func (s *Service) DeleteDocument(ctx context.Context, subjectID, name string) bool {
	s.mu.Lock()
	subject, ok := s.lib.Subjects[subjectID]
	if !ok {
		s.mu.Unlock()
		return false
	}

	idx := -1
	for i, d := range subject.Documents {
		if d.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	subject.Documents = append(subject.Documents[:idx], subject.Documents[idx+1:]...)
	s.commitLocked(ctx)
	s.mu.Unlock()

	s.log.InfoContext(ctx, "document deleted", slog.String("subject_id", subjectID), slog.String("name", name))
	s.render(ctx)
	return true
}
