package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/studyaid/internal/domain"
)

// RecordedRequest is a request received by FakeStudyService.
type RecordedRequest struct {
	Method      string
	Path        string
	RequestID   string
	ContentType string
	Body        []byte
}

// DecodeBody unmarshals the recorded body into v.
func (r RecordedRequest) DecodeBody(v any) error {
	return json.Unmarshal(r.Body, v)
}

// FakeStudyService is an in-process study service for tests.
type FakeStudyService struct {
	server *httptest.Server

	mu        sync.Mutex
	overrides map[string]http.HandlerFunc
	requests  []RecordedRequest
	projects  []domain.Project
}

// NewFakeStudyService starts a fake service; it is closed on test cleanup.
func NewFakeStudyService(t *testing.T) *FakeStudyService {
	t.Helper()

	f := &FakeStudyService{
		overrides: make(map[string]http.HandlerFunc),
		projects:  []domain.Project{},
	}

	r := chi.NewRouter()
	r.Use(f.record)
	r.Get("/health", f.route(http.MethodGet, "/health", f.health))
	r.Get("/projects", f.route(http.MethodGet, "/projects", f.listProjects))
	r.Post("/createPro", f.route(http.MethodPost, "/createPro", f.createProject))
	r.Post("/mnemonics", f.route(http.MethodPost, "/mnemonics", cannedResult(SampleMnemonicsJSON)))
	r.Post("/flashcards", f.route(http.MethodPost, "/flashcards", cannedResult(SampleFlashcardsJSON)))
	r.Post("/blurt", f.route(http.MethodPost, "/blurt", cannedResult(SampleBlurtJSON)))

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)
	return f
}

// URL returns the base URL of the fake service.
func (f *FakeStudyService) URL() string {
	return f.server.URL
}

// Handle replaces the handler for method and path.
func (f *FakeStudyService) Handle(method, path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overrides[method+" "+path] = h
}

// Respond makes method and path answer with a fixed status and JSON body.
func (f *FakeStudyService) Respond(method, path string, status int, body string) {
	f.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status, body)
	})
}

// SetProjects replaces the stored projects.
func (f *FakeStudyService) SetProjects(projects ...domain.Project) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects = append([]domain.Project{}, projects...)
}

// Projects returns a copy of the stored projects.
func (f *FakeStudyService) Projects() []domain.Project {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Project{}, f.projects...)
}

// Requests returns every recorded request, or only those to path when one
// is given.
func (f *FakeStudyService) Requests(path ...string) []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]RecordedRequest, 0, len(f.requests))
	for _, r := range f.requests {
		if len(path) == 0 || r.Path == path[0] {
			out = append(out, r)
		}
	}
	return out
}

func (f *FakeStudyService) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			RequestID:   r.Header.Get("X-Request-ID"),
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		})
		f.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// route dispatches to an override when one is registered.
func (f *FakeStudyService) route(method, path string, fallback http.HandlerFunc) http.HandlerFunc {
	key := method + " " + path
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		h, ok := f.overrides[key]
		f.mu.Unlock()
		if ok {
			h(w, r)
			return
		}
		fallback(w, r)
	}
}

func (f *FakeStudyService) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, `{"ok": true}`)
}

func (f *FakeStudyService) listProjects(w http.ResponseWriter, _ *http.Request) {
	data, err := json.Marshal(f.Projects())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, `{"detail": "encode failed"}`)
		return
	}
	writeJSON(w, http.StatusOK, string(data))
}

func (f *FakeStudyService) createProject(w http.ResponseWriter, r *http.Request) {
	var p domain.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, `{"detail": "invalid project"}`)
		return
	}

	f.mu.Lock()
	f.projects = append(f.projects, p)
	f.mu.Unlock()

	data, _ := json.Marshal(p)
	writeJSON(w, http.StatusOK, string(data))
}

func cannedResult(payload string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Envelope(payload))
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
