package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clarivuserrors "github.com/alexisbeaulieu97/clarivus/pkg/errors"
)

func TestCatalogResolve(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(sampleTable(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"button"}, catalog.Names())

	result, err := catalog.Resolve("button", Config{Values: map[string]string{"size": "sm"}})
	require.NoError(t, err)
	assert.Equal(t, "button", result.Component)
	assert.Contains(t, result.Classes, "h-8")

	_, err = catalog.Resolve("card", Config{})
	var validationErr *clarivuserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, `"card"`)
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := NewCatalog(sampleTable(t), sampleTable(t))
	var validationErr *clarivuserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = NewCatalog(nil)
	require.ErrorAs(t, err, &validationErr)
}

func TestCatalogWithLeavesReceiverUntouched(t *testing.T) {
	t.Parallel()

	base, err := NewCatalog(sampleTable(t))
	require.NoError(t, err)

	divider := MustTable(TableSpec{Component: "divider", Base: "h-px"})
	extended, err := base.With(divider)
	require.NoError(t, err)

	assert.Equal(t, []string{"button"}, base.Names())
	assert.Equal(t, []string{"button", "divider"}, extended.Names())

	_, err = extended.With(sampleTable(t))
	require.Error(t, err)
}
