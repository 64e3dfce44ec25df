package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// LoadLibrary reads the library blob. When the key is absent or the blob
// cannot be decoded, the default catalog is seeded and written back.
func (s *Service) LoadLibrary(ctx context.Context) (*domain.Library, error) {
	raw, err := s.store.Get(ctx, s.libraryKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.InfoContext(ctx, "no library found, seeding defaults", slog.String("key", s.libraryKey))
		return s.seedLibrary(ctx), nil
	case err != nil:
		return nil, fmt.Errorf("persistence.LoadLibrary: %w", err)
	}

	var rec libraryRecord
	if err := json.Unmarshal(raw, &rec); err != nil || rec.Subjects == nil {
		s.log.WarnContext(ctx, "library blob unreadable, reseeding",
			slog.String("key", s.libraryKey), slog.Any("error", err))
		return s.seedLibrary(ctx), nil
	}

	lib := toDomainLibrary(rec)
	if rec.OpenFolders == nil {
		lib.OpenFolders["maths"] = true
	}
	return lib, nil
}

func (s *Service) seedLibrary(ctx context.Context) *domain.Library {
	lib := DefaultLibrary()
	s.SaveLibrary(ctx, lib)
	return lib
}

// SaveLibrary writes the library blob. Failures are logged and swallowed so
// the in-memory state stays authoritative.
func (s *Service) SaveLibrary(ctx context.Context, lib *domain.Library) {
	s.put(ctx, s.libraryKey, toLibraryRecord(lib))
}

// LoadProgression reads the progression blob, seeding it when absent or
// unreadable. Level is always recomputed from XP.
func (s *Service) LoadProgression(ctx context.Context) (domain.Progression, error) {
	raw, err := s.store.Get(ctx, s.progressKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.InfoContext(ctx, "no progression found, seeding defaults", slog.String("key", s.progressKey))
		return s.seedProgression(ctx), nil
	case err != nil:
		return domain.Progression{}, fmt.Errorf("persistence.LoadProgression: %w", err)
	}

	var rec progressionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.log.WarnContext(ctx, "progression blob unreadable, reseeding",
			slog.String("key", s.progressKey), slog.Any("error", err))
		return s.seedProgression(ctx), nil
	}

	return toDomainProgression(rec).Normalized(s.progression.XPPerLevel), nil
}

func (s *Service) seedProgression(ctx context.Context) domain.Progression {
	p := s.defaultProgression()
	s.SaveProgression(ctx, p)
	return p
}

// SaveProgression writes the progression blob. Failures are logged and swallowed.
func (s *Service) SaveProgression(ctx context.Context, p domain.Progression) {
	s.put(ctx, s.progressKey, toProgressionRecord(p))
}

// Reseed overwrites both blobs with the defaults. Unlike the Save methods it
// reports write failures, since it is an explicit administrative action.
func (s *Service) Reseed(ctx context.Context) error {
	if err := s.write(ctx, s.libraryKey, toLibraryRecord(DefaultLibrary())); err != nil {
		return fmt.Errorf("persistence.Reseed: %w", err)
	}
	if err := s.write(ctx, s.progressKey, toProgressionRecord(s.defaultProgression())); err != nil {
		return fmt.Errorf("persistence.Reseed: %w", err)
	}
	s.log.InfoContext(ctx, "storage reseeded")
	return nil
}

func (s *Service) put(ctx context.Context, key string, v any) {
	if err := s.write(ctx, key, v); err != nil {
		s.log.WarnContext(ctx, "save failed, state kept in memory only",
			slog.String("key", key), slog.Any("error", err))
	}
}

func (s *Service) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.store.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageWrite, err)
	}
	return nil
}
