package main

import (
	"testing"

	"github.com/deppfellow/go-qa/internal/config"
	"github.com/deppfellow/go-qa/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "migrate")

	serveCmd, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)

	flag := serveCmd.Flags().Lookup("migrate")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestWithLoggerStopsOnConfigError(t *testing.T) {
	t.Setenv(config.DatabaseURLEnv, "")
	t.Setenv("QA_DATABASE__URL", "")

	called := false
	err := withLogger(func(*config.Config, *zerolog.Logger, *logger.LoggerService) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestMigrateCommandFailsWithoutDatabaseURL(t *testing.T) {
	t.Setenv(config.DatabaseURLEnv, "")
	t.Setenv("QA_DATABASE__URL", "")

	root := newRootCmd()
	root.SetArgs([]string{"migrate"})
	assert.Error(t, root.Execute())
}
