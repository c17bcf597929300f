package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clarivuserrors "github.com/alexisbeaulieu97/clarivus/pkg/errors"
)

func TestComponentsCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "components")
	require.NoError(t, err)
	assert.Contains(t, stdout, "COMPONENT")
	assert.Regexp(t, `button\s+variant\s+primary\s+primary, secondary`, stdout)
	assert.Regexp(t, `button\s+size\s+md\s+sm, md, lg, xl, icon`, stdout)

	stdout, _, err = executeCommand(t, "components", "--json")
	require.NoError(t, err)

	var entries []componentJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "button", entries[0].Name)
	assert.Len(t, entries[0].Axes, 2)
}

func TestGalleryRequiresTerminal(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "gallery")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a terminal")
}

func TestConfigErrorsStopCommands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		content  string
		contains string
	}{
		{name: "bad log level", content: "log_level: chatty\n", contains: "Failed to load configuration"},
		{name: "incompatible tokens", content: "min_token_version: 2.0.0\n", contains: "Failed to check token version"},
		{name: "missing table file", content: "tables: [missing.yaml]\n", contains: "Failed to load component tables"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, t.TempDir(), tc.content)

			_, _, err := executeCommand(t, "--config", path, "components")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "--config", "/nonexistent/clarivus.yaml", "version")

	var parseErr *clarivuserrors.ParseError
	require.ErrorAs(t, err, &parseErr)

	var cmdErr *commandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Contains(t, cmdErr.suggestion, "--config")
}

func TestLogsGoToStderr(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "log_level: debug\nhuman_readable: false\n")

	stdout, stderr, err := executeCommand(t, "--config", path, "resolve")
	require.NoError(t, err)
	assert.Equal(t, defaultButtonClasses+"\n", stdout)

	lines := bytes.Split(bytes.TrimSpace([]byte(stderr)), []byte("\n"))
	require.NotEmpty(t, lines)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	assert.Equal(t, "resolved", entry["message"])
	assert.Equal(t, "clarivus resolve", entry["command"])
}
