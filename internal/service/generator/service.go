// Package generator serves canned study content and commits generated
// artifacts after a simulated delay.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dauchezhenri-coder/praxis-backend/internal/config"
	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
	"github.com/dauchezhenri-coder/praxis-backend/pkg/delay"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type documentCommitter interface {
	HasSubject(id string) bool
	GenerateDocument(ctx context.Context, subjectID string) (domain.Document, error)
}

type awarder interface {
	AwardAction(ctx context.Context, activity domain.Activity) (domain.AwardResult, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notice)
}

type scheduler interface {
	After(d time.Duration, name string, fn delay.Func) *delay.Task
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service schedules summary and flashcard generation.
type Service struct {
	tables    Tables
	library   documentCommitter
	awards    awarder
	notifier  notifier
	scheduler scheduler
	delay     time.Duration
	log       *slog.Logger
}

// NewService creates a generator. notifier may be nil.
func NewService(
	log *slog.Logger,
	library documentCommitter,
	awards awarder,
	notifier notifier,
	scheduler scheduler,
	cfg config.GeneratorConfig,
) *Service {
	return &Service{
		library:   library,
		awards:    awards,
		notifier:  notifier,
		scheduler: scheduler,
		delay:     cfg.Delay,
		log:       log.With("service", "generator"),
	}
}

// RequestSummary schedules a generated summary for the subject. The
// duplicate check happens when the document is committed, so two requests
// in quick succession produce one document.
func (s *Service) RequestSummary(ctx context.Context, subjectID string) error {
	if !s.library.HasSubject(subjectID) {
		return fmt.Errorf("generator.RequestSummary %q: %w", subjectID, domain.ErrNotFound)
	}

	s.scheduler.After(s.delay, "summary:"+subjectID, func(ctx context.Context) {
		doc, err := s.library.GenerateDocument(ctx, subjectID)
		switch {
		case errors.Is(err, domain.ErrAlreadyGenerated):
			s.log.InfoContext(ctx, "summary already generated", slog.String("subject_id", subjectID))
			s.notify(ctx, domain.Notice{
				Kind:      domain.NoticeAlreadyGenerated,
				SubjectID: subjectID,
				Message:   "Cette synthèse a déjà été générée.",
			})
		case err != nil:
			s.log.ErrorContext(ctx, "generate summary", slog.String("subject_id", subjectID), slog.Any("error", err))
		default:
			s.notify(ctx, domain.Notice{
				Kind:      domain.NoticeSummaryReady,
				SubjectID: subjectID,
				Message:   doc.Name,
			})
		}
	})

	s.log.InfoContext(ctx, "summary requested", slog.String("subject_id", subjectID), slog.Duration("delay", s.delay))
	return nil
}

// RequestFlashcards schedules flashcard generation for the subject, which
// only grants its reward.
func (s *Service) RequestFlashcards(ctx context.Context, subjectID string) error {
	if !s.library.HasSubject(subjectID) {
		return fmt.Errorf("generator.RequestFlashcards %q: %w", subjectID, domain.ErrNotFound)
	}

	s.scheduler.After(s.delay, "flashcards:"+subjectID, func(ctx context.Context) {
		if _, err := s.awards.AwardAction(ctx, domain.ActivityGenerateFlashcards); err != nil {
			s.log.ErrorContext(ctx, "award flashcards", slog.String("subject_id", subjectID), slog.Any("error", err))
			return
		}
		s.notify(ctx, domain.Notice{
			Kind:      domain.NoticeFlashcardsReady,
			SubjectID: subjectID,
			Message:   "Flashcards générées.",
		})
	})
	return nil
}

// Summary returns the canned summary for a subject.
func (s *Service) Summary(subjectID string) domain.SummaryContent {
	return s.tables.Summary(subjectID)
}

// ExpertSheet returns the revision sheet for a subject.
func (s *Service) ExpertSheet(subjectID string) domain.ExpertSheet {
	return s.tables.ExpertSheet(subjectID)
}

// OpenSheet returns the revision sheet of a summary being opened and grants
// the read_summary reward. A failed award is logged; the sheet is still
// returned with a nil award.
func (s *Service) OpenSheet(ctx context.Context, subjectID string) (domain.ExpertSheet, *domain.AwardResult, error) {
	if !s.library.HasSubject(subjectID) {
		return domain.ExpertSheet{}, nil, fmt.Errorf("generator.OpenSheet %q: %w", subjectID, domain.ErrNotFound)
	}

	sheet := s.tables.ExpertSheet(subjectID)
	res, err := s.awards.AwardAction(ctx, domain.ActivityReadSummary)
	if err != nil {
		s.log.WarnContext(ctx, "award read summary", slog.String("subject_id", subjectID), slog.Any("error", err))
		return sheet, nil, nil
	}
	return sheet, &res, nil
}

func (s *Service) notify(ctx context.Context, n domain.Notice) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, n)
	}
}
