package variants

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clarivuserrors "github.com/alexisbeaulieu97/clarivus/pkg/errors"
)

const badgeYAML = `components:
  - name: badge
    base: inline-flex items-center rounded-full px-2
    variants:
      - name: tone
        default: neutral
        values:
          neutral: bg-gray-100 text-gray-700
          success: bg-success-100 text-success-700
          error: bg-error-100 text-error-700
      - name: size
        default: sm
        values:
          sm: text-xs
          md: text-sm
    compounds:
      - when: {tone: error, size: md}
        classes: font-semibold
    modifiers:
      disabled: opacity-50
`

func TestParseTables(t *testing.T) {
	t.Parallel()

	tables, err := ParseTables("badge.yaml", []byte(badgeYAML))
	require.NoError(t, err)
	require.Len(t, tables, 1)

	badge := tables[0]
	assert.Equal(t, "badge", badge.Component())

	tone, ok := badge.Axis("tone")
	require.True(t, ok)
	assert.Equal(t, []string{"neutral", "success", "error"}, tone.Values, "value order follows the document")

	result, err := Resolve(badge, Config{Values: map[string]string{"tone": "error", "size": "md"}, Disabled: true})
	require.NoError(t, err)
	assert.Equal(t, "inline-flex items-center rounded-full px-2 bg-error-100 text-error-700 text-sm font-semibold opacity-50", result.String())
}

func TestParseTablesErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		assert func(t *testing.T, err error)
	}{
		{
			name:  "malformed yaml",
			input: "components:\n  - name: [badge\n",
			assert: func(t *testing.T, err error) {
				var parseErr *clarivuserrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, "tables.yaml", parseErr.Path)
			},
		},
		{
			name:  "values must be a mapping",
			input: "components:\n  - name: badge\n    variants:\n      - name: tone\n        default: a\n        values: [a, b]\n",
			assert: func(t *testing.T, err error) {
				var parseErr *clarivuserrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, 6, parseErr.Line)
			},
		},
		{
			name:  "empty document",
			input: "components: []\n",
			assert: func(t *testing.T, err error) {
				var validationErr *clarivuserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Field, "components")
			},
		},
		{
			name:  "invalid component name",
			input: "components:\n  - name: Badge!\n",
			assert: func(t *testing.T, err error) {
				var validationErr *clarivuserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Message, "ident")
			},
		},
		{
			name:  "default outside values",
			input: "components:\n  - name: badge\n    variants:\n      - name: tone\n        default: loud\n        values:\n          quiet: text-sm\n",
			assert: func(t *testing.T, err error) {
				var validationErr *clarivuserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Message, `default "loud"`)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseTables("tables.yaml", []byte(tc.input))
			require.Error(t, err)
			tc.assert(t, err)
		})
	}
}

func TestLoadTables(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(badgeYAML), 0o600))

	tables, err := LoadTables(path)
	require.NoError(t, err)
	require.Len(t, tables, 1)

	_, err = LoadTables(filepath.Join(dir, "missing.yaml"))
	var parseErr *clarivuserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
