package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
)

type libraryService interface {
	Subjects() []*domain.Subject
	OpenFolders() []string
	DocumentCount() int
	TotalStorageBytes() int64
	HasSubject(id string) bool
	Search(query string) []domain.SearchHit
	AddSubject(ctx context.Context, name string) (*domain.Subject, error)
	AddDocuments(ctx context.Context, subjectID string, files []domain.FileCandidate) (domain.ImportResult, error)
	ImportIntoSelection(ctx context.Context, files []domain.FileCandidate) (domain.ImportResult, error)
	DeleteDocument(ctx context.Context, subjectID, name string) bool
	ToggleFolder(ctx context.Context, subjectID string) (bool, error)
	SetFilter(ctx context.Context, filter string)
}

type generatorService interface {
	RequestSummary(ctx context.Context, subjectID string) error
	RequestFlashcards(ctx context.Context, subjectID string) error
	ExpertSheet(subjectID string) domain.ExpertSheet
	OpenSheet(ctx context.Context, subjectID string) (domain.ExpertSheet, *domain.AwardResult, error)
}

// LibraryHandler serves the document library endpoints.
type LibraryHandler struct {
	lib libraryService
	gen generatorService
	log *slog.Logger
}

// NewLibraryHandler creates a LibraryHandler.
func NewLibraryHandler(lib libraryService, gen generatorService, logger *slog.Logger) *LibraryHandler {
	return &LibraryHandler{lib: lib, gen: gen, log: logger.With("handler", "library")}
}

// Get handles GET /api/library.
func (h *LibraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	subjects := h.lib.Subjects()
	resp := libraryResponse{
		Subjects:     make([]subjectResponse, len(subjects)),
		OpenFolders:  h.lib.OpenFolders(),
		Documents:    h.lib.DocumentCount(),
		StorageBytes: h.lib.TotalStorageBytes(),
	}
	for i, s := range subjects {
		resp.Subjects[i] = toSubjectResponse(s)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Search handles GET /api/library/search?q=.
func (h *LibraryHandler) Search(w http.ResponseWriter, r *http.Request) {
	hits := h.lib.Search(r.URL.Query().Get("q"))
	resp := make([]searchHitResponse, len(hits))
	for i, hit := range hits {
		resp[i] = searchHitResponse{
			SubjectID:   hit.SubjectID,
			SubjectName: hit.SubjectName,
			Document:    toDocumentResponse(hit.Document),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type addSubjectRequest struct {
	Name string `json:"name"`
}

// AddSubject handles POST /api/library/subjects.
func (h *LibraryHandler) AddSubject(w http.ResponseWriter, r *http.Request) {
	var req addSubjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	subject, err := h.lib.AddSubject(r.Context(), req.Name)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubjectResponse(subject))
}

// AddDocuments handles POST /api/library/subjects/{id}/documents.
func (h *LibraryHandler) AddDocuments(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.lib.AddDocuments(r.Context(), r.PathValue("id"), toFileCandidates(req.Files))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toImportResponse(res))
}

// Import handles POST /api/library/import, targeting the selected subject.
func (h *LibraryHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.lib.ImportIntoSelection(r.Context(), toFileCandidates(req.Files))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toImportResponse(res))
}

// DeleteDocument handles DELETE /api/library/subjects/{id}/documents/{name}.
func (h *LibraryHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	deleted := h.lib.DeleteDocument(r.Context(), r.PathValue("id"), r.PathValue("name"))
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

// ToggleFolder handles POST /api/library/subjects/{id}/toggle.
func (h *LibraryHandler) ToggleFolder(w http.ResponseWriter, r *http.Request) {
	open, err := h.lib.ToggleFolder(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"open": open})
}

// Generate handles POST /api/library/subjects/{id}/generate.
func (h *LibraryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := h.gen.RequestSummary(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "scheduled"})
}

// Flashcards handles POST /api/library/subjects/{id}/flashcards.
func (h *LibraryHandler) Flashcards(w http.ResponseWriter, r *http.Request) {
	if err := h.gen.RequestFlashcards(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "scheduled"})
}

// ExpertSheet handles GET /api/library/subjects/{id}/sheet.
func (h *LibraryHandler) ExpertSheet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.lib.HasSubject(id) {
		handleError(w, r, h.log, domain.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toExpertSheetResponse(h.gen.ExpertSheet(id)))
}

// OpenSheet handles POST /api/library/subjects/{id}/sheet/open: the learner
// opened the summary, which earns the read_summary reward.
func (h *LibraryHandler) OpenSheet(w http.ResponseWriter, r *http.Request) {
	sheet, award, err := h.gen.OpenSheet(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := openSheetResponse{Sheet: toExpertSheetResponse(sheet)}
	if award != nil {
		a := toAwardResponse(*award)
		resp.Award = &a
	}
	writeJSON(w, http.StatusOK, resp)
}

type filterRequest struct {
	Filter string `json:"filter"`
}

// SetFilter handles PUT /api/library/filter.
func (h *LibraryHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter := strings.TrimSpace(req.Filter)
	h.lib.SetFilter(r.Context(), filter)
	writeJSON(w, http.StatusOK, filterRequest{Filter: filter})
}
