package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/punura-itd/CIC-AGRI-IMS/config"
)

func TestServerPortFallsBackToConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "")

	cfg := &config.Config{ServerPort: "5000"}
	port := serverPort(cfg)
	assert.Equal(t, "5000", port)

	// The listen address must be a plain port, never a formatting artifact
	assert.NotContains(t, ":"+port, "%!")
}

func TestServerPortEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")

	cfg := &config.Config{ServerPort: "5000"}
	assert.Equal(t, "8080", serverPort(cfg))
}
