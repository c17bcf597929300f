package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.0.0", TokenVersion())
	assert.Equal(t, TokenVersion(), Default().Version())
}

func TestIsTokenVersionCompatible(t *testing.T) {
	t.Parallel()

	cases := []struct {
		min  string
		want bool
	}{
		{"1.0.0", true},
		{"1.9.9", true},
		{"0.4.2", true},
		{"1", true},
		{"v1.2", true},
		{" 1.0.0 ", true},
		{"2.0.0", false},
		{"10.0.0", false},
		{"", false},
		{"latest", false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.min, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsTokenVersionCompatible(tc.min))
		})
	}
}
