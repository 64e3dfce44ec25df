package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// HasSubject reports whether a subject with this id exists.
func (s *Service) HasSubject(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.lib.Subjects[id]
	return ok
}

// Subject returns a copy of one subject.
func (s *Service) Subject(id string) (*domain.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	subject, ok := s.lib.Subjects[id]
	if !ok {
		return nil, fmt.Errorf("subject %q: %w", id, domain.ErrNotFound)
	}
	return subject.Clone(), nil
}

// Subjects returns copies of all subjects in presentation order.
func (s *Service) Subjects() []*domain.Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ordered := s.lib.Ordered()
	out := make([]*domain.Subject, len(ordered))
	for i, subject := range ordered {
		out[i] = subject.Clone()
	}
	return out
}

// SortedDocuments returns a subject's documents newest first.
func (s *Service) SortedDocuments(id string) ([]domain.Document, error) {
	subject, err := s.Subject(id)
	if err != nil {
		return nil, err
	}
	return subject.SortedDocuments(), nil
}

// TotalStorageBytes sums all document sizes.
func (s *Service) TotalStorageBytes() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lib.TotalStorageBytes()
}

// DocumentCount counts all documents.
func (s *Service) DocumentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lib.DocumentCount()
}

// SubjectCount counts subjects.
func (s *Service) SubjectCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lib.SubjectCount()
}

// OpenFolders returns the ids of unfolded subjects, sorted.
func (s *Service) OpenFolders() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lib.OpenFolderIDs()
}

// IsOpen reports whether a subject's folder is unfolded.
func (s *Service) IsOpen(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lib.OpenFolders[id]
}

// Search returns documents whose name contains query, case-insensitively,
// in subject presentation order. A blank query matches nothing.
func (s *Service) Search(query string) []domain.SearchHit {
	q := domain.NormalizeText(query)
	if q == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var hits []domain.SearchHit
	for _, subject := range s.lib.Ordered() {
		for _, d := range subject.Documents {
			if strings.Contains(domain.NormalizeText(d.Name), q) {
				hits = append(hits, domain.SearchHit{
					SubjectID:   subject.ID,
					SubjectName: subject.Name,
					Document:    d,
				})
			}
		}
	}
	return hits
}

// SetFilter stores the search filter handed to the renderer and re-renders.
func (s *Service) SetFilter(ctx context.Context, filter string) {
	s.mu.Lock()
	s.filter = filter
	s.mu.Unlock()
	s.render(ctx)
}

// Filter returns the current search filter.
func (s *Service) Filter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}
