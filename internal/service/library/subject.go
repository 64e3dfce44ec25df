package library

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// AddSubject creates a subject from a display name. The id is the slug of the
// name; a blank name or an existing slug leaves the library untouched.
func (s *Service) AddSubject(ctx context.Context, name string) (*domain.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	id := domain.Slugify(name)

	s.mu.Lock()
	if _, exists := s.lib.Subjects[id]; exists {
		s.mu.Unlock()
		return nil, fmt.Errorf("library.AddSubject %q: %w", id, domain.ErrDuplicateSubject)
	}

	gradient, icon := themeFor(s.lib.SubjectCount())
	subject := &domain.Subject{
		ID:        id,
		Name:      name,
		Icon:      icon,
		Gradient:  gradient,
		Mastery:   0,
		Position:  s.lib.NextPosition(),
		Documents: []domain.Document{},
	}
	s.lib.Subjects[id] = subject
	s.lib.OpenFolders[id] = true
	s.commitLocked(ctx)
	out := subject.Clone()
	s.mu.Unlock()

	s.log.InfoContext(ctx, "subject added", slog.String("subject_id", id))
	s.render(ctx)
	return out, nil
}

// ToggleFolder flips the subject's folder between open and closed and
// returns the new state.
func (s *Service) ToggleFolder(ctx context.Context, subjectID string) (bool, error) {
	s.mu.Lock()
	if _, ok := s.lib.Subjects[subjectID]; !ok {
		s.mu.Unlock()
		return false, fmt.Errorf("library.ToggleFolder %q: %w", subjectID, domain.ErrNotFound)
	}

	open := !s.lib.OpenFolders[subjectID]
	if open {
		s.lib.OpenFolders[subjectID] = true
	} else {
		delete(s.lib.OpenFolders, subjectID)
	}
	s.commitLocked(ctx)
	s.mu.Unlock()

	s.render(ctx)
	return open, nil
}
