package library

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockRenderer struct {
	mu      sync.Mutex
	filters []string
}

func (m *mockRenderer) Render(_ context.Context, filter string) {
	m.mu.Lock()
	m.filters = append(m.filters, filter)
	m.mu.Unlock()
}

func (m *mockRenderer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.filters)
}

type mockSelection struct {
	id string
}

func (m mockSelection) RequireSelection() (string, error) {
	if m.id == "" {
		return "", domain.ErrNoSubjectSelected
	}
	return m.id, nil
}

type stubContent struct{}

func (stubContent) Summary(subjectID string) domain.SummaryContent {
	return domain.SummaryContent{Chapter: "Chapitre " + subjectID, Summary: "texte"}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type fixture struct {
	svc      *Service
	store    *libraryStoreMock
	awards   *awarderMock
	renderer *mockRenderer
	clock    *clockwork.FakeClock
}

func newFixture(t *testing.T, initial *domain.Library, selected string) fixture {
	t.Helper()
	f := fixture{
		store:    &libraryStoreMock{},
		awards:   &awarderMock{},
		renderer: &mockRenderer{},
		clock:    clockwork.NewFakeClockAt(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)),
	}
	f.svc = NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), initial, Deps{
		Store:     f.store,
		Awards:    f.awards,
		Renderer:  f.renderer,
		Selection: mockSelection{id: selected},
		Content:   stubContent{},
		Clock:     f.clock,
		Location:  time.UTC,
	})
	return f
}

func seededLibrary() *domain.Library {
	lib := domain.NewLibrary()
	lib.Subjects["maths"] = &domain.Subject{
		ID: "maths", Name: "Mathématiques", Position: 0,
		Documents: []domain.Document{
			domain.NewPlainDocument("Analyse.pdf", 1000, domain.MustDate("2026-01-10")),
			domain.NewPlainDocument("Algèbre.pdf", 2000, domain.MustDate("2026-02-01")),
		},
	}
	lib.Subjects["philo"] = &domain.Subject{
		ID: "philo", Name: "Philosophie", Position: 1,
		Documents: []domain.Document{
			domain.NewPlainDocument("Kant.pdf", 500, domain.MustDate("2026-01-05")),
		},
	}
	lib.OpenFolders["maths"] = true
	return lib
}

func pdf(name string) domain.FileCandidate {
	return domain.FileCandidate{Name: name, Size: 1024, MediaType: domain.MediaTypePDF}
}

// ---------------------------------------------------------------------------
// AddSubject
// ---------------------------------------------------------------------------

func TestService_AddSubject(t *testing.T) {
	t.Parallel()
	f := newFixture(t, seededLibrary(), "")
	ctx := context.Background()

	subject, err := f.svc.AddSubject(ctx, "  Histoire Géo  ")
	require.NoError(t, err)
	assert.Equal(t, "histoire_g_o", subject.ID)
	assert.Equal(t, "Histoire Géo", subject.Name)
	assert.Equal(t, 0, subject.Mastery)
	assert.Equal(t, 2, subject.Position)
	assert.Empty(t, subject.Documents)
	assert.Equal(t, themeGradients[2], subject.Gradient)
	assert.Equal(t, themeIcons[2], subject.Icon)

	assert.True(t, f.svc.IsOpen("histoire_g_o"))
	assert.Equal(t, 3, f.svc.SubjectCount())
	assert.Len(t, f.store.SaveLibraryCalls(), 1)
	assert.Equal(t, 1, f.renderer.count())

	subjects := f.svc.Subjects()
	assert.Equal(t, "histoire_g_o", subjects[len(subjects)-1].ID, "new subjects go last")
}

func TestService_AddSubject_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"blank", "   ", domain.ErrValidation},
		{"empty", "", domain.ErrValidation},
		{"duplicate slug", "MATHS", domain.ErrDuplicateSubject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t, seededLibrary(), "")

			_, err := f.svc.AddSubject(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 2, f.svc.SubjectCount())
			assert.Empty(t, f.store.SaveLibraryCalls())
		})
	}
}

// ---------------------------------------------------------------------------
// AddDocuments
// ---------------------------------------------------------------------------

func TestService_AddDocuments(t *testing.T) {
	t.Parallel()
	f := newFixture(t, seededLibrary(), "")
	ctx := context.Background()

	res, err := f.svc.AddDocuments(ctx, "philo", []domain.FileCandidate{
		pdf("Hegel.pdf"),
		pdf("Hegel.pdf"),
		pdf("Kant.pdf"),
		{Name: "notes.txt", Size: 10, MediaType: "text/plain"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ImportResult{SubjectID: "philo", Added: 1, Duplicates: 2, Rejected: 1}, res)

	subject, err := f.svc.Subject("philo")
	require.NoError(t, err)
	require.Len(t, subject.Documents, 2)
	added := subject.Documents[1]
	assert.Equal(t, "Hegel.pdf", added.Name)
	assert.Equal(t, "2026-03-14", added.Date.String())
	assert.Equal(t, domain.DocumentKindPlain, added.Kind)

	assert.True(t, f.svc.IsOpen("philo"))
	calls := f.awards.AwardActionCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.ActivityUploadPDF, calls[0].Activity)
}

func TestService_AddDocuments_NothingAdded(t *testing.T) {
	t.Parallel()
	f := newFixture(t, seededLibrary(), "")

	res, err := f.svc.AddDocuments(context.Background(), "philo", []domain.FileCandidate{pdf("Kant.pdf")})
	require.NoError(t, err)
	assert.True(t, res.NothingImported())
	assert.Empty(t, f.awards.AwardActionCalls())
	assert.True(t, f.svc.IsOpen("philo"), "folder opens even without additions")
}

func TestService_AddDocuments_UnknownSubject(t *testing.T) {
	t.Parallel()
	f := newFixture(t, seededLibrary(), "")

	_, err := f.svc.AddDocuments(context.Background(), "nope", []domain.FileCandidate{pdf("a.pdf")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.store.SaveLibraryCalls())
}

func TestService_AddDocuments_NamesStayUnique(t *testing.T) {
	t.Parallel()
	f := newFixture(t, seededLibrary(), "")
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.svc.AddDocuments(ctx, "maths", []domain.FileCandidate{pdf("Topologie.pdf"), pdf("Analyse.pdf")})
		}()
	}
	wg.Wait()

	subject, err := f.svc.Subject("maths")
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, d := range subject.Documents {
		assert.False(t, seen[d.Name], "duplicate %s", d.Name)
		seen[d.Name] = true
	}
	assert.Len(t, subject.Documents, 3)
}

func TestService_ImportIntoSelection(t *testing.T) {
	t.Parallel()

	t.Run("selected", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, seededLibrary(), "maths")

		res, err := f.svc.ImportIntoSelection(context.Background(), []domain.FileCandidate{pdf("Probas.pdf")})
		require.NoError(t, err)
		assert.Equal(t, "maths", res.SubjectID)
		assert.Equal(t, 1, res.Added)
	})

	t.Run("no selection", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, seededLibrary(), "")

		_, err := f.svc.ImportIntoSelection(context.Background(), []domain.FileCandidate{pdf("Probas.pdf")})
		assert.ErrorIs(t, err, domain.ErrNoSubjectSelected)
		assert.Equal(t, 3, f.svc.DocumentCount())
	})
}

// ---------------------------------------------------------------------------
// DeleteDocument / ToggleFolder
// ---------------------------------------------------------------------------

func TestService_DeleteDocument(t *testing.T) {
	t.Parallel()
	f := newFixture(t, seededLibrary(), "")
	ctx := context.Background()

	assert.True(t, f.svc.DeleteDocument(ctx, "maths", "Analyse.pdf"))
	assert.False(t, f.svc.DeleteDocument(ctx, "maths", "Analyse.pdf"))
	assert.False(t, f.svc.DeleteDocument(ctx, "nope", "Analyse.pdf"))

	docs, err := f.svc.SortedDocuments("maths")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Algèbre.pdf", docs[0].Name)
	assert.Len(t, f.store.SaveLibraryCalls(), 1)
}

func TestService_ToggleFolder(t *testing.T) {
	t.Parallel()
	f := newFixture(t, seededLibrary(), "")
	ctx := context.Background()

	open, err := f.svc.ToggleFolder(ctx, "maths")
	require.NoError(t, err)
	assert.False(t, open)
	assert.Empty(t, f.svc.OpenFolders())

	open, err = f.svc.ToggleFolder(ctx, "maths")
	require.NoError(t, err)
	assert.True(t, open)
	assert.Equal(t, []string{"maths"}, f.svc.OpenFolders())

	_, err = f.svc.ToggleFolder(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// GenerateDocument
// ---------------------------------------------------------------------------

func TestService_GenerateDocument(t *testing.T) {
	t.Parallel()
	f := newFixture(t, seededLibrary(), "")
	ctx := context.Background()

	doc, err := f.svc.GenerateDocument(ctx, "philo")
	require.NoError(t, err)
	assert.Equal(t, "Synthèse - Chapitre philo.pdf", doc.Name)
	assert.Equal(t, domain.GeneratedDocumentSize, doc.Size)
	assert.True(t, doc.IsGenerated())
	require.NotNil(t, doc.Content)
	assert.Equal(t, "texte", doc.Content.Summary)

	_, err = f.svc.GenerateDocument(ctx, "philo")
	assert.ErrorIs(t, err, domain.ErrAlreadyGenerated)
	assert.True(t, errors.Is(err, domain.ErrAlreadyExists))

	subject, err := f.svc.Subject("philo")
	require.NoError(t, err)
	assert.Len(t, subject.Documents, 2)

	calls := f.awards.AwardActionCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.ActivityGenerateSummary, calls[0].Activity)

	_, err = f.svc.GenerateDocument(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_AwardFailureDoesNotFailMutation(t *testing.T) {
	t.Parallel()
	f := newFixture(t, seededLibrary(), "")
	f.awards.AwardActionFunc = func(context.Context, domain.Activity) (domain.AwardResult, error) {
		return domain.AwardResult{}, errors.New("boom")
	}

	res, err := f.svc.AddDocuments(context.Background(), "maths", []domain.FileCandidate{pdf("x.pdf")})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Added)
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func TestService_Aggregates(t *testing.T) {
	t.Parallel()
	f := newFixture(t, seededLibrary(), "")

	assert.Equal(t, int64(3500), f.svc.TotalStorageBytes())
	assert.Equal(t, 3, f.svc.DocumentCount())
	assert.Equal(t, 2, f.svc.SubjectCount())
	assert.True(t, f.svc.HasSubject("maths"))
	assert.False(t, f.svc.HasSubject("nope"))

	docs, err := f.svc.SortedDocuments("maths")
	require.NoError(t, err)
	assert.Equal(t, "Algèbre.pdf", docs[0].Name, "newest first")

	_, err = f.svc.SortedDocuments("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_SubjectReturnsCopy(t *testing.T) {
	t.Parallel()
	f := newFixture(t, seededLibrary(), "")

	subject, err := f.svc.Subject("maths")
	require.NoError(t, err)
	subject.Documents[0].Name = "changed.pdf"

	again, err := f.svc.Subject("maths")
	require.NoError(t, err)
	assert.Equal(t, "Analyse.pdf", again.Documents[0].Name)
}

func TestService_Search(t *testing.T) {
	t.Parallel()
	f := newFixture(t, seededLibrary(), "")

	hits := f.svc.Search("AN")
	require.Len(t, hits, 2)
	assert.Equal(t, "Analyse.pdf", hits[0].Document.Name)
	assert.Equal(t, "Mathématiques", hits[0].SubjectName)
	assert.Equal(t, "Kant.pdf", hits[1].Document.Name)

	assert.Empty(t, f.svc.Search("   "))
	assert.Empty(t, f.svc.Search("zzz"))
}

func TestService_Search_CollapsesSpacesInNames(t *testing.T) {
	t.Parallel()
	lib := seededLibrary()
	lib.Subjects["philo"].Documents = append(lib.Subjects["philo"].Documents,
		domain.NewPlainDocument("Critique  de la raison.pdf", 800, domain.MustDate("2026-02-10")))
	f := newFixture(t, lib, "")

	hits := f.svc.Search("critique de")
	require.Len(t, hits, 1)
	assert.Equal(t, "Critique  de la raison.pdf", hits[0].Document.Name)

	hits = f.svc.Search("CRITIQUE   DE")
	assert.Len(t, hits, 1)
}

func TestService_SetFilter(t *testing.T) {
	t.Parallel()
	f := newFixture(t, seededLibrary(), "")

	f.svc.SetFilter(context.Background(), "kant")
	assert.Equal(t, "kant", f.svc.Filter())
	assert.Equal(t, []string{"kant"}, f.renderer.filters)
}

type mockNotifier struct {
	notices []domain.Notice
}

func (m *mockNotifier) Notify(_ context.Context, n domain.Notice) { m.notices = append(m.notices, n) }

func TestService_AddDocuments_NotifiesWhenNothingImported(t *testing.T) {
	t.Parallel()
	f := newFixture(t, seededLibrary(), "")
	n := &mockNotifier{}
	f.svc.notifier = n
	ctx := context.Background()

	_, err := f.svc.AddDocuments(ctx, "maths", []domain.FileCandidate{pdf("Analyse.pdf")})
	require.NoError(t, err)
	require.Len(t, n.notices, 1)
	assert.Equal(t, domain.NoticeNothingImported, n.notices[0].Kind)

	_, err = f.svc.AddDocuments(ctx, "maths", nil)
	require.NoError(t, err)
	assert.Len(t, n.notices, 1, "an empty batch is silent")
}
