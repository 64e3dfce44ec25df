package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecovery_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/library/subjects/maths/generate", nil)
	rec := httptest.NewRecorder()
	Recovery(logger)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Errorf("expected status %d, got %d", http.StatusAccepted, rec.Code)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no log output, got %q", buf.String())
	}
}

func TestRecovery_PanicLogsRequestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))

	grade := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("deck exhausted")
	})

	// Same order as the application chain: the id is set before recovery runs.
	wrapped := Chain(RequestID(), Recovery(logger))(grade)

	req := httptest.NewRequest(http.MethodPost, "/api/trainer/grade", nil)
	req.Header.Set(RequestIDHeader, "grade-req-42")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "internal server error" {
		t.Errorf("expected body %q, got %q", "internal server error", body)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "grade-req-42" {
		t.Errorf("expected response request id %q, got %q", "grade-req-42", got)
	}

	logOutput := buf.String()
	for _, want := range []string{
		"panic recovered",
		"deck exhausted",
		"request_id=grade-req-42",
		"path=/api/trainer/grade",
		"method=POST",
	} {
		if !strings.Contains(logOutput, want) {
			t.Errorf("expected log to contain %q, got %q", want, logOutput)
		}
	}
}

func TestRecovery_PanicWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("nil subject"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/library/subjects/maths/sheet", nil)
	rec := httptest.NewRecorder()
	Recovery(logger)(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if !strings.Contains(buf.String(), "nil subject") {
		t.Errorf("expected log to contain panic error, got %q", buf.String())
	}
}

func TestRecovery_AbortHandlerIsRepanicked(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	events := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	defer func() {
		rec := recover()
		if rec != http.ErrAbortHandler {
			t.Errorf("expected http.ErrAbortHandler to propagate, got %v", rec)
		}
		if buf.Len() != 0 {
			t.Errorf("expected aborted stream not to be logged, got %q", buf.String())
		}
	}()

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	Recovery(logger)(events).ServeHTTP(httptest.NewRecorder(), req)
	t.Error("expected panic to escape the middleware")
}
