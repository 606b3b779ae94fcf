package font_test

import (
	"testing"

	"github.com/AkimioJR/fontcompat/font"
	"github.com/stretchr/testify/require"
)

type SelectBestTestCase struct {
	name   string
	fonts  []font.FileEntry
	italic bool
	weight int
	expect string
}

var selectBestTestCases = []SelectBestTestCase{
	{
		name: "字重完全匹配",
		fonts: []font.FileEntry{
			{FileName: "regular.ttf", Weight: 400},
			{FileName: "bold.ttf", Weight: 700},
		},
		weight: 400,
		expect: "regular.ttf",
	},
	{
		name: "斜体打破平局",
		fonts: []font.FileEntry{
			{FileName: "regular.ttf", Weight: 400},
			{FileName: "italic.ttf", Weight: 400, Italic: true},
		},
		italic: true,
		weight: 400,
		expect: "italic.ttf",
	},
	{
		name: "字重优先于斜体",
		fonts: []font.FileEntry{
			{FileName: "italic.ttf", Weight: 400, Italic: true},
			{FileName: "bold.ttf", Weight: 500},
		},
		weight: 400,
		expect: "italic.ttf",
	},
	{
		name: "误差相同时取先出现的",
		fonts: []font.FileEntry{
			{FileName: "light.ttf", Weight: 300},
			{FileName: "medium.ttf", Weight: 500},
		},
		weight: 400,
		expect: "light.ttf",
	},
	{
		name: "最近的字重",
		fonts: []font.FileEntry{
			{FileName: "thin.ttf", Weight: 100},
			{FileName: "black.ttf", Weight: 900},
			{FileName: "semibold.ttf", Weight: 600},
		},
		weight: 700,
		expect: "semibold.ttf",
	},
}

func TestSelectBest(t *testing.T) {
	for _, tc := range selectBestTestCases {
		t.Run(tc.name, func(t *testing.T) {
			best, ok := font.SelectBest(tc.fonts, tc.italic, tc.weight)
			require.True(t, ok)
			require.Equal(t, tc.expect, best.FileName)
			require.Contains(t, tc.fonts, best)
		})
	}
}

func TestSelectBestEmpty(t *testing.T) {
	best, ok := font.SelectBest([]font.FileEntry(nil), false, 400)
	require.False(t, ok)
	require.Zero(t, best)

	_, ok = font.SelectBest([]font.ProviderFont{}, true, 700)
	require.False(t, ok)
}

func TestSelectBestStableTie(t *testing.T) {
	fonts := []font.ProviderFont{
		{URI: "a", Weight: 400},
		{URI: "b", Weight: 400},
		{URI: "c", Weight: 400},
	}
	for range 10 {
		best, ok := font.SelectBest(fonts, false, 400)
		require.True(t, ok)
		require.Equal(t, "a", best.URI)
	}
}

func TestScore(t *testing.T) {
	require.Equal(t, 0, font.Score(font.FileEntry{Weight: 400}, false, 400))
	require.Equal(t, 600, font.Score(font.FileEntry{Weight: 700}, false, 400))
	require.Equal(t, 1, font.Score(font.FileEntry{Weight: 400}, true, 400))
	require.Equal(t, 201, font.Score(font.ProviderFont{Weight: 300, Italic: true}, false, 400))
}

func TestStyleString(t *testing.T) {
	require.Equal(t, "(400,false)", font.Style{Weight: font.WeightNormal}.String())
	require.Equal(t, "(700,true)", font.Style{Weight: font.WeightBold, Italic: true}.String())
}

func BenchmarkSelectBest(b *testing.B) {
	fonts := make([]font.FileEntry, 0, 18)
	for w := 100; w <= 900; w += 100 {
		fonts = append(fonts, font.FileEntry{Weight: w}, font.FileEntry{Weight: w, Italic: true})
	}
	for b.Loop() {
		font.SelectBest(fonts, true, 650)
	}
}
