package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/go-qa/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRequiresHTTPServer(t *testing.T) {
	log := zerolog.Nop()
	s := &Server{Config: &config.Config{}, Logger: &log}

	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}

func TestSetupHTTPServerAppliesTimeouts(t *testing.T) {
	log := zerolog.Nop()
	s := &Server{
		Config: &config.Config{Server: config.ServerConfig{
			Port:         "9999",
			ReadTimeout:  1,
			WriteTimeout: 2,
			IdleTimeout:  3,
		}},
		Logger: &log,
	}

	s.SetupHTTPServer(http.NotFoundHandler())

	require.NotNil(t, s.httpServer)
	assert.Equal(t, ":9999", s.httpServer.Addr)
	assert.Equal(t, time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 2*time.Second, s.httpServer.WriteTimeout)
	assert.Equal(t, 3*time.Second, s.httpServer.IdleTimeout)
}

func TestShutdownWithoutResources(t *testing.T) {
	log := zerolog.Nop()
	s := &Server{Config: &config.Config{}, Logger: &log}

	assert.NoError(t, s.Shutdown(context.Background()))
}
