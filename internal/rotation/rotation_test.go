package rotation

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"L68", -68},
		{"R48", 48},
		{"R0", 0},
		{"L0", 0},
		{"L007", -7},
		{"R1000", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmpty},
		{"X5", ErrDirection},
		{"l5", ErrDirection},
		{" R5", ErrDirection},
		{"L", ErrDistance},
		{"R-5", ErrDistance},
		{"R+5", ErrDistance},
		{"R5 ", ErrDistance},
		{"R5x", ErrDistance},
		{"R99999999999999999999999", ErrDistance},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, tt.in, perr.Text)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestRead(t *testing.T) {
	got, err := Read(strings.NewReader("L68\nL30\nR48\r\nL5\nR60"))
	require.NoError(t, err)
	assert.Equal(t, []int{-68, -30, 48, -5, 60}, got)

	got, err = Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadReportsLine(t *testing.T) {
	_, err := Read(strings.NewReader("R2\nL3\n\nR4\n"))
	var perr *ParseError
	require.True(t, errors.As(err, &perr), "got %v", err)
	assert.Equal(t, 3, perr.Line)
	assert.True(t, errors.Is(err, ErrEmpty))
	assert.Contains(t, err.Error(), "line 3")

	_, err = Read(strings.NewReader("R2\nU3\n"))
	require.True(t, errors.As(err, &perr), "got %v", err)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, "U3", perr.Text)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("R2\nL3\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{2, -3}, got)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
