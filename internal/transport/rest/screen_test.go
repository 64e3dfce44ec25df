package rest

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dauchezhenri-coder/praxis-backend/internal/domain"
	"github.com/dauchezhenri-coder/praxis-backend/internal/service/render"
)

type stubBuilder struct{}

func (stubBuilder) Build(filter string) render.Screen {
	return render.Screen{View: domain.ViewLevelGrid, Filter: filter}
}

func TestScreenHandler_Get_NotReady(t *testing.T) {
	t.Parallel()

	h := NewScreenHandler(render.NewHub(testLogger()), testLogger())

	rec := doRequest(h.Get, http.MethodGet, "/api/screen", "", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

func TestScreenHandler_Get_Filter(t *testing.T) {
	t.Parallel()

	hub := render.NewHub(testLogger())
	hub.Attach(stubBuilder{})
	hub.Render(context.Background(), "maths")
	h := NewScreenHandler(hub, testLogger())

	rec := doRequest(h.Get, http.MethodGet, "/api/screen", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeBody[render.Screen](t, rec); got.Filter != "maths" {
		t.Errorf("expected last filter %q, got %q", "maths", got.Filter)
	}

	rec = doRequest(h.Get, http.MethodGet, "/api/screen?filter=kant", "", nil)
	if got := decodeBody[render.Screen](t, rec); got.Filter != "kant" {
		t.Errorf("expected query filter %q, got %q", "kant", got.Filter)
	}
}

func TestScreenHandler_Events(t *testing.T) {
	t.Parallel()

	hub := render.NewHub(testLogger())
	hub.Attach(stubBuilder{})
	h := NewScreenHandler(hub, testLogger())

	srv := httptest.NewServer(http.HandlerFunc(h.Events))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected event stream, got %q", ct)
	}

	lines := bufio.NewScanner(resp.Body)
	readEvent := func() (string, string) {
		t.Helper()
		var event, data string
		for lines.Scan() {
			line := lines.Text()
			switch {
			case strings.HasPrefix(line, "event: "):
				event = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				data = strings.TrimPrefix(line, "data: ")
			case line == "" && event != "":
				return event, data
			}
		}
		t.Fatalf("stream ended: %v", lines.Err())
		return "", ""
	}

	event, data := readEvent()
	if event != string(render.EventScreen) || !strings.Contains(data, `"view":"GRID"`) {
		t.Fatalf("expected initial screen, got %s %s", event, data)
	}

	hub.Notify(context.Background(), domain.Notice{Kind: domain.NoticeSummaryReady, SubjectID: "maths", Message: "ok"})

	event, data = readEvent()
	if event != string(render.EventNotice) || !strings.Contains(data, `"subjectId":"maths"`) {
		t.Errorf("expected notice, got %s %s", event, data)
	}

	cancel()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Subscribers() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if n := hub.Subscribers(); n != 0 {
		t.Errorf("expected subscriber removed after disconnect, got %d", n)
	}
}
