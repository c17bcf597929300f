package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/clarivus/internal/tokens"
	clarivuserrors "github.com/alexisbeaulieu97/clarivus/pkg/errors"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Same(t, tokens.Default(), theme.Registry())

	color, err := theme.Color(TokenRef{Scale: "primary", Shade: "500"})
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#2a6ff5"), color)

	color, err = theme.Color(TokenRef{Scale: "white"})
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#ffffff"), color)

	_, err = theme.Color(TokenRef{Scale: "teal"})
	var scaleErr *clarivuserrors.UnknownScaleError
	require.ErrorAs(t, err, &scaleErr)
}

func TestThemeCoversButtonTable(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	variantAxis, ok := ButtonTable().Axis("variant")
	require.True(t, ok)
	sizeAxis, ok := ButtonTable().Axis("size")
	require.True(t, ok)

	for _, variant := range variantAxis.Values {
		for _, size := range sizeAxis.Values {
			plan, err := ResolveButton(ButtonProps{Variant: ButtonVariant(variant), Size: ButtonSize(size), Label: "ok"})
			require.NoError(t, err)
			_, err = theme.RenderButton(plan, "")
			assert.NoError(t, err, "%s/%s", variant, size)
		}
	}
}

func TestButtonStyle(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	cases := []struct {
		name  string
		props ButtonProps
		check func(t *testing.T, style lipgloss.Style)
	}{
		{
			name:  "primary medium",
			props: ButtonProps{},
			check: func(t *testing.T, style lipgloss.Style) {
				assert.Equal(t, lipgloss.Color("#2a6ff5"), style.GetBackground())
				assert.Equal(t, lipgloss.Color("#ffffff"), style.GetForeground())
				assert.Equal(t, 2, style.GetPaddingLeft())
				assert.False(t, style.GetFaint())
			},
		},
		{
			name:  "outline has border",
			props: ButtonProps{Variant: ButtonVariantOutline, Size: ButtonSizeExtraLarge},
			check: func(t *testing.T, style lipgloss.Style) {
				assert.Equal(t, lipgloss.RoundedBorder(), style.GetBorderStyle())
				assert.Equal(t, lipgloss.Color("#cbd5e1"), style.GetBorderTopForeground())
				assert.Equal(t, 4, style.GetPaddingRight())
			},
		},
		{
			name:  "link underlines",
			props: ButtonProps{Variant: ButtonVariantLink, Size: ButtonSizeSmall},
			check: func(t *testing.T, style lipgloss.Style) {
				assert.True(t, style.GetUnderline())
				assert.Equal(t, 1, style.GetPaddingLeft())
			},
		},
		{
			name:  "blocked renders faint",
			props: ButtonProps{Loading: true},
			check: func(t *testing.T, style lipgloss.Style) {
				assert.True(t, style.GetFaint())
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			plan, err := ResolveButton(tc.props)
			require.NoError(t, err)
			style, err := theme.ButtonStyle(plan)
			require.NoError(t, err)
			tc.check(t, style)
		})
	}
}

func TestRenderButtonSpinnerFrame(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	plan, err := ResolveButton(ButtonProps{Loading: true, Icon: "+", Label: "Saving"})
	require.NoError(t, err)

	out, err := theme.RenderButton(plan, "⣾")
	require.NoError(t, err)
	assert.Contains(t, out, "⣾ Saving")

	out, err = theme.RenderButton(plan, "")
	require.NoError(t, err)
	assert.Contains(t, out, "◌ Saving")
	assert.False(t, strings.Contains(out, "+"))
}
