package ctxutil

import (
	"context"
	"testing"
)

func TestWithSubject_And_SubjectFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithSubject(context.Background(), "learner")

	got, ok := SubjectFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for non-empty subject")
	}
	if got != "learner" {
		t.Fatalf("expected learner, got %q", got)
	}
}

func TestSubjectFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := SubjectFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != "" {
		t.Fatalf("expected empty subject, got %q", got)
	}
}

func TestSubjectFromCtx_EmptyString(t *testing.T) {
	t.Parallel()

	_, ok := SubjectFromCtx(WithSubject(context.Background(), ""))
	if ok {
		t.Fatal("expected ok=false for empty subject")
	}
}

func TestSubjectFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), subjectKey, 42)
	if _, ok := SubjectFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}

	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromCtx(ctx); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
}
