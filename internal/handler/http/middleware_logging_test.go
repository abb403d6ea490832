package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request whose context logger writes to buf, the
// way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		path            string
		handlerStatus   int
		handlerResponse string
		wantLog         []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			wantLog:         []string{`"level":"info"`, `"method":"GET"`, `"uri":"/"`, `"route":"unmatched"`, `"status":200`, `"duration":`, `"size":2`, `"message":"request served"`},
		},
		{
			name:            "POST 201",
			method:          http.MethodPost,
			path:            "/api/v1/todos",
			handlerStatus:   http.StatusCreated,
			handlerResponse: "Created",
			wantLog:         []string{`"method":"POST"`, `"uri":"/api/v1/todos"`, `"status":201`},
		},
		{
			name:          "DELETE 204 without body",
			method:        http.MethodDelete,
			path:          "/api/v1/todos/1",
			handlerStatus: http.StatusNoContent,
			wantLog:       []string{`"status":204`, `"size":0`},
		},
		{
			name:            "query string is kept in uri",
			method:          http.MethodGet,
			path:            "/api/v1/todos?page=2&per_page=10",
			handlerStatus:   http.StatusOK,
			handlerResponse: "[]",
			wantLog:         []string{`"uri":"/api/v1/todos?page=2&per_page=10"`},
		},
		{
			name:            "404",
			method:          http.MethodGet,
			path:            "/missing",
			handlerStatus:   http.StatusNotFound,
			handlerResponse: "Not Found",
			wantLog:         []string{`"level":"warn"`, `"status":404`},
		},
		{
			name:            "503",
			method:          http.MethodGet,
			path:            "/healthz",
			handlerStatus:   http.StatusServiceUnavailable,
			handlerResponse: "down",
			wantLog:         []string{`"level":"error"`, `"status":503`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			newTestHandler().withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.wantLog {
				assert.Contains(t, buf.String(), expected)
			}
		})
	}
}

// TestWithLogging_RoutePattern verifies that the access line names the
// matched pattern rather than the concrete path.
func TestWithLogging_RoutePattern(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler()

	router := chi.NewRouter()
	router.Use(h.withLogging)
	router.Get("/api/v1/todos/{id}", func(w http.ResponseWriter, r *http.Request) {})

	router.ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/api/v1/todos/42", &buf))

	assert.Contains(t, buf.String(), `"route":"/api/v1/todos/{id}"`)
	assert.Contains(t, buf.String(), `"uri":"/api/v1/todos/42"`)
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))

	assert.Contains(t, buf.String(), `"size":1024`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestWithLogging_NoWritesLogs200(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))
	})
}
