package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// GenerateDocument commits a generated summary into a subject. The duplicate
// check runs here, at commit time, so concurrent requests for the same
// subject yield a single document.
func (s *Service) GenerateDocument(ctx context.Context, subjectID string) (domain.Document, error) {
	content := s.content.Summary(subjectID)
	name := domain.GeneratedDocumentName(content.Chapter)

	s.mu.Lock()
	subject, ok := s.lib.Subjects[subjectID]
	if !ok {
		s.mu.Unlock()
		return domain.Document{}, fmt.Errorf("library.GenerateDocument %q: %w", subjectID, domain.ErrNotFound)
	}
	if subject.HasDocument(name) {
		s.mu.Unlock()
		return domain.Document{}, fmt.Errorf("library.GenerateDocument %q: %w", subjectID, domain.ErrAlreadyGenerated)
	}

	doc := domain.NewGeneratedDocument(name, domain.GeneratedDocumentSize, s.today(), content)
	subject.Documents = append(subject.Documents, doc)
	s.commitLocked(ctx)
	s.mu.Unlock()

	s.log.InfoContext(ctx, "summary generated", slog.String("subject_id", subjectID), slog.String("name", name))
	s.award(ctx, domain.ActivityGenerateSummary)
	s.render(ctx)
	return doc, nil
}
