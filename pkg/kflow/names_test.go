package kflow

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPathNames_AssignsBitsInOrder(t *testing.T) {
	t.Parallel()

	pn, err := NewPathNames("normal", "express", "international")
	require.NoError(t, err)

	m, ok := pn.Mask("express")
	assert.True(t, ok)
	assert.Equal(t, Bit(1), m)

	_, ok = pn.Mask("missing")
	assert.False(t, ok)

	assert.Equal(t, Of(7), pn.All())
	assert.Equal(t, []string{"normal", "express", "international"}, pn.Names())
}

func TestNewPathNames_Invalid(t *testing.T) {
	t.Parallel()

	tooMany := make([]string, 65)
	for i := range tooMany {
		tooMany[i] = strings.Repeat("p", i+1)
	}

	cases := map[string][]string{
		"empty":     {"a", " "},
		"duplicate": {"a", "b", "a"},
		"reserved":  {"a", "All"},
		"too many":  tooMany,
	}
	for name, names := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewPathNames(names...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPaths), "got %v", err)
		})
	}
}

func TestPathNames_Parse(t *testing.T) {
	t.Parallel()

	pn, err := NewPathNames("a", "b", "c")
	require.NoError(t, err)

	cases := map[string]PathMask{
		"a":       Bit(0),
		" a | c ": Bit(0) | Bit(2),
		"b|b":     Bit(1),
		"*":       pn.All(),
		"ALL":     pn.All(),
		"":        0,
		"a||":     Bit(0),
	}
	for expr, want := range cases {
		got, err := pn.Parse(expr)
		require.NoError(t, err, expr)
		assert.Equal(t, want, got, expr)
	}
}

func TestPathNames_ParseUnknown(t *testing.T) {
	t.Parallel()

	pn, err := NewPathNames("a", "b")
	require.NoError(t, err)

	_, err = pn.Parse("a|z")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPath))
	assert.Contains(t, err.Error(), `"z"`)
}

func TestPathNames_Format(t *testing.T) {
	t.Parallel()

	pn, err := NewPathNames("a", "b", "c")
	require.NoError(t, err)

	assert.Equal(t, "a|c", pn.Format(Bit(0)|Bit(2)))
	assert.Equal(t, "", pn.Format(0))
	assert.Equal(t, "b", pn.Format(Bit(1)|Bit(9)))
	assert.Equal(t, "a|b|c", pn.Format(pn.All()))
}
