package versionlog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daycast-app/daycast/internal/client/models"
)

func gen(id string) models.Generation {
	return models.Generation{ID: id, Results: []models.GenerationResult{
		{ID: id + "-blog", ChannelID: "blog"},
		{ID: id + "-diary", ChannelID: "diary"},
	}}
}

func TestLog_EmptyHasNoCurrent(t *testing.T) {
	l := New()

	_, ok := l.Current()
	require.False(t, ok)
	require.Equal(t, -1, l.Cursor())
	require.Equal(t, 0, l.Len())

	// Navigation on an empty log is a no-op.
	l.Navigate(+1)
	l.Navigate(-1)
	require.Equal(t, -1, l.Cursor())
}

func TestLog_LoadSetsCursorToLast(t *testing.T) {
	l := New()
	l.Load([]models.Generation{gen("g1"), gen("g2"), gen("g3")})

	require.Equal(t, 2, l.Cursor())
	cur, ok := l.Current()
	require.True(t, ok)
	require.Equal(t, "g3", cur.ID)
}

func TestLog_LoadEmptyResetsCursor(t *testing.T) {
	l := New()
	l.Append(gen("g1"))

	l.Load(nil)
	require.Equal(t, -1, l.Cursor())
	_, ok := l.Current()
	require.False(t, ok)
}

func TestLog_AppendAlwaysMovesCursorToNewEntry(t *testing.T) {
	l := New()
	for i := 1; i <= 5; i++ {
		l.Append(gen(fmt.Sprintf("g%d", i)))
		require.Equal(t, l.Len()-1, l.Cursor())
	}

	// Appending while parked on an older entry still jumps to the end.
	l.Navigate(-3)
	require.Equal(t, 1, l.Cursor())
	l.Append(gen("g6"))
	require.Equal(t, 5, l.Cursor())
	cur, _ := l.Current()
	require.Equal(t, "g6", cur.ID)
}

func TestLog_NavigateClampsAtBoundaries(t *testing.T) {
	l := New()
	l.Load([]models.Generation{gen("g1"), gen("g2")})

	// Repeated forward navigation at the last index is idempotent.
	l.Navigate(+1)
	l.Navigate(+1)
	require.Equal(t, 1, l.Cursor())

	l.Navigate(-1)
	require.Equal(t, 0, l.Cursor())
	l.Navigate(-1)
	require.Equal(t, 0, l.Cursor())
}

func TestLog_GenerateThenSingleChannelRegenerate(t *testing.T) {
	// Day starts with zero generations.
	l := New()
	_, ok := l.Current()
	require.False(t, ok)

	// First generate returns G1 for [blog, diary].
	l.Append(gen("g1"))
	require.Equal(t, 1, l.Len())
	require.Equal(t, 0, l.Cursor())

	// Single-channel regenerate still returns a complete snapshot, which
	// becomes a new entry; nothing is merged into G1.
	l.Append(gen("g2"))
	require.Equal(t, 2, l.Len())
	require.Equal(t, 1, l.Cursor())

	cur, _ := l.Current()
	require.Equal(t, "g2", cur.ID)
	require.Len(t, cur.Results, 2)

	l.Navigate(-1)
	prev, _ := l.Current()
	require.Equal(t, "g1", prev.ID)
}

func TestLog_LoadCopiesInput(t *testing.T) {
	src := []models.Generation{gen("g1")}
	l := New()
	l.Load(src)

	src[0].ID = "mutated"
	cur, _ := l.Current()
	require.Equal(t, "g1", cur.ID)
}

func TestLog_At(t *testing.T) {
	l := New()
	l.Load([]models.Generation{gen("g1"), gen("g2")})

	first, ok := l.At(0)
	require.True(t, ok)
	require.Equal(t, "g1", first.ID)

	_, ok = l.At(2)
	require.False(t, ok)
	_, ok = l.At(-1)
	require.False(t, ok)
}
