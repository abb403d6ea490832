package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/the-todo-way/internal/config"
	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/MKhiriev/the-todo-way/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const allowedOrigin = "http://localhost:5173"

func testConfig() config.Server {
	return config.Server{
		HTTPAddress:    ":8000",
		RequestTimeout: 5 * time.Second,
		CORSOrigins:    config.Origins{allowedOrigin},
	}
}

// newTestHandler returns a handler with a nop logger and empty services.
func newTestHandler(features ...FeatureRouter) *Handler {
	return NewHandler(&service.Services{}, testConfig(), logger.Nop(), features...)
}

// newBufferedHandler returns a handler whose logger writes JSON lines to buf.
func newBufferedHandler(buf *bytes.Buffer, services *service.Services, features ...FeatureRouter) *Handler {
	l := &logger.Logger{Logger: zerolog.New(buf).With().Timestamp().Logger()}
	return NewHandler(services, testConfig(), l, features...)
}

func serve(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *string         `json:"error"`
	Meta  json.RawMessage `json:"meta"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "body: %s", rr.Body.String())
	return env
}
