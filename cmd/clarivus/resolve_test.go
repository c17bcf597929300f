package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/clarivus/internal/variants"
)

const defaultButtonClasses = "inline-flex items-center justify-center whitespace-nowrap rounded-md font-medium transition-all disabled:pointer-events-none disabled:opacity-50 outline-none focus-visible:ring-2 focus-visible:ring-primary-500 focus-visible:ring-offset-2 [&_svg]:pointer-events-none [&_svg]:shrink-0 bg-primary-500 text-white hover:bg-primary-600 active:bg-primary-700 h-10 px-4 gap-2 text-base [&_svg]:w-5 [&_svg]:h-5"

func TestResolveCommandDefaults(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "resolve")
	require.NoError(t, err)
	assert.Equal(t, defaultButtonClasses+"\n", stdout)

	stdout, _, err = executeCommand(t, "resolve", "button")
	require.NoError(t, err)
	assert.Equal(t, defaultButtonClasses+"\n", stdout)
}

func TestResolveCommandSelections(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "resolve", "--variant", "secondary", "--set", "size=sm", "--class", "w-full")
	require.NoError(t, err)

	classes := strings.TrimSpace(stdout)
	assert.Contains(t, classes, "border-primary-500")
	assert.True(t, strings.HasSuffix(classes, "h-8 px-3 gap-2 text-sm [&_svg]:w-4 [&_svg]:h-4 w-full"))
}

func TestResolveCommandJSON(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "resolve", "--loading", "--icon", "+", "--json")
	require.NoError(t, err)

	var result variants.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, "button", result.Component)
	assert.True(t, result.InteractionBlocked)
	assert.True(t, result.ShowSpinner)
	assert.False(t, result.ShowIcon)
	assert.Contains(t, result.Classes, "cursor-wait")
	assert.Equal(t, "md", result.Value("size"))
}

func TestResolveCommandErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "unknown value",
			args:     []string{"resolve", "--size", "huge"},
			contains: []string{"Failed to resolve: button", `unknown value "huge"`, "Use one of: sm, md, lg, xl, icon."},
		},
		{
			name:     "unknown axis",
			args:     []string{"resolve", "--set", "tone=loud"},
			contains: []string{`unknown axis "tone"`, "clarivus components"},
		},
		{
			name:     "malformed selection",
			args:     []string{"resolve", "--set", "size"},
			contains: []string{`invalid selection "size"`},
		},
		{
			name:     "unknown component",
			args:     []string{"resolve", "carousel"},
			contains: []string{`unknown component "carousel"`},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := executeCommand(t, tc.args...)
			require.Error(t, err)
			for _, want := range tc.contains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestResolveCommandLoadsConfiguredTables(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "badge.yaml"), []byte(`components:
  - name: badge
    base: rounded-full
    variants:
      - name: tone
        default: neutral
        values:
          neutral: bg-gray-100
          error: bg-error-100
    modifiers:
      disabled: opacity-50
`), 0o600))
	path := writeConfig(t, dir, "tables:\n  - badge.yaml\n")

	stdout, _, err := executeCommand(t, "--config", path, "resolve", "badge", "--set", "tone=error", "--disabled")
	require.NoError(t, err)
	assert.Equal(t, "rounded-full bg-error-100 opacity-50\n", stdout)

	stdout, _, err = executeCommand(t, "--config", path, "components")
	require.NoError(t, err)
	assert.Contains(t, stdout, "badge")
	assert.Contains(t, stdout, "neutral, error")
}
