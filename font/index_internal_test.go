package font

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleFromSubfamily(t *testing.T) {
	cases := []struct {
		sub    string
		weight int
		italic bool
	}{
		{"Regular", 400, false},
		{"Bold", 700, false},
		{"Bold Italic", 700, true},
		{"SemiBold", 600, false},
		{"Extra Light Oblique", 200, true},
		{"W3", 400, false},
		{"", 400, false},
	}
	for _, c := range cases {
		weight, italic := styleFromSubfamily(c.sub)
		require.Equal(t, c.weight, weight, c.sub)
		require.Equal(t, c.italic, italic, c.sub)
	}
}

func TestIdentityOf(t *testing.T) {
	h, err := ParseBytes([]byte("nope"), 0, "nope.ttf")
	require.Error(t, err)
	require.Nil(t, h)
	require.Equal(t, InvalidID, IdentityOf(nil, nil))

	var warned error
	require.Equal(t, InvalidID, IdentityOf(&Handle{path: "x.ttf"}, func(err error) bool {
		warned = err
		return true
	}))
	require.IsType(t, (*WarningMsg)(nil), warned)
}

func TestFindFontFilesKeepsCallerSlice(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ttf"), []byte("x"), 0644))

	backing := make([]string, 1, 8)
	backing[0] = dir
	paths, err := findFontFiles(backing, true)
	require.NoError(t, err)
	require.Contains(t, paths, filepath.Join(dir, "a.ttf"))
	for _, s := range backing[1:cap(backing)] {
		require.Empty(t, s)
	}
}
