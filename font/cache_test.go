package font_test

import (
	"sync"
	"testing"

	"github.com/AkimioJR/fontcompat/font"
	"github.com/stretchr/testify/require"
)

func TestFamilyCache(t *testing.T) {
	var c font.FamilyCache
	fam := &font.FamilyEntry{Name: "Go"}

	require.False(t, c.Store(font.InvalidID, fam))
	require.False(t, c.Store(1, nil))
	_, ok := c.Load(font.InvalidID)
	require.False(t, ok)

	require.True(t, c.Store(1, fam))
	got, ok := c.Load(1)
	require.True(t, ok)
	require.Same(t, fam, got)

	_, ok = c.Load(2)
	require.False(t, ok)
	require.Equal(t, 1, c.Len())
}

func TestFamilyCacheConcurrent(t *testing.T) {
	var c font.FamilyCache
	fams := make([]*font.FamilyEntry, 64)
	for i := range fams {
		fams[i] = &font.FamilyEntry{Name: "family"}
	}

	var wg sync.WaitGroup
	for i, fam := range fams {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Store(uint64(i+1), fam)
		}()
		go func() {
			defer wg.Done()
			c.Load(uint64(i + 1))
		}()
	}
	wg.Wait()

	require.Equal(t, len(fams), c.Len())
	for i, fam := range fams {
		got, ok := c.Load(uint64(i + 1))
		require.True(t, ok)
		require.Same(t, fam, got)
	}
}
