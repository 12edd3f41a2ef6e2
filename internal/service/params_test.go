package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireParam(t *testing.T) {
	got, err := requireParam("  The Matrix \t", msgTitleRequired)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", got)

	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := requireParam(raw, msgTitleRequired)
		var inputErr *InputError
		require.True(t, errors.As(err, &inputErr), "raw %q", raw)
		assert.Equal(t, msgTitleRequired, inputErr.Message)
	}
}

func TestSplitNames(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Keanu Reeves", []string{"Keanu Reeves"}},
		{"Leonardo DiCaprio, Brad Pitt", []string{"Leonardo DiCaprio", "Brad Pitt"}},
		// 只去掉前导空白
		{"Johnny Depp ,  Helena Bonham Carter", []string{"Johnny Depp ", "Helena Bonham Carter"}},
		{"A,,B", []string{"A", "", "B"}},
		{"A,", []string{"A", ""}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitNames(tt.in), tt.in)
	}
}

func TestParseTop(t *testing.T) {
	top, err := parseTop("", false)
	require.NoError(t, err)
	assert.Equal(t, DefaultTop, top)

	top, err = parseTop(" 5 ", true)
	require.NoError(t, err)
	assert.Equal(t, 5, top)

	top, err = parseTop("0", true)
	require.NoError(t, err)
	assert.Equal(t, 0, top)

	// 负数不限条数，交给存储层处理
	top, err = parseTop("-3", true)
	require.NoError(t, err)
	assert.Equal(t, -3, top)

	for _, raw := range []string{"abc", "", "5.5", "-"} {
		_, err := parseTop(raw, true)
		var inputErr *InputError
		require.True(t, errors.As(err, &inputErr), "raw %q", raw)
		assert.Equal(t, msgInvalidTop, inputErr.Message)
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1999", 1999, true},
		{"+1999", 1999, true},
		{"1999.0", 1999, true},
		{"1999.", 1999, true},
		{"1.999e3", 1999, true},
		{"1999.5", 0, false},
		{"last year", 0, false},
		{"0x7CF", 0, false},
		{"1_999", 0, false},
		{"Inf", 0, false},
		{"NaN", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseYear(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
