package http

import (
	"testing"

	"github.com/MKhiriev/the-todo-way/internal/logger"
	"github.com/MKhiriev/the-todo-way/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	cfg := testConfig()

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, cfg, h.cfg)
	assert.Empty(t, h.features)
	assert.NotNil(t, h.metrics)
}

// TestNewHandler_IndependentRegistries verifies that two handlers can be
// built in one process without colliding metric registrations.
func TestNewHandler_IndependentRegistries(t *testing.T) {
	h1 := newTestHandler()
	h2 := newTestHandler()

	assert.NotSame(t, h1.metrics.registry, h2.metrics.registry)
}
