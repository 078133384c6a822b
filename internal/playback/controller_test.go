package playback

import (
	"testing"

	"github.com/dmitrijs2005/deckkeeper/internal/deck"
	"github.com/dmitrijs2005/deckkeeper/internal/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	n       int
	editing bool
}

func (f *fakeSource) SlideCount() int { return f.n }
func (f *fakeSource) Editing() bool   { return f.editing }

func TestTotal(t *testing.T) {
	src := &fakeSource{n: 13}
	c := New(src)
	assert.Equal(t, 17, c.Total())

	src.n = 0
	assert.Equal(t, 4, c.Total())
}

func TestPaginate_StaysInBounds(t *testing.T) {
	c := New(&fakeSource{n: 2})

	assert.False(t, c.Prev())
	assert.Equal(t, 0, c.Current())

	for i := 0; i < 10; i++ {
		c.Next()
		assert.GreaterOrEqual(t, c.Current(), 0)
		assert.Less(t, c.Current(), c.Total())
	}
	assert.Equal(t, c.Total()-1, c.Current())
	assert.False(t, c.Next())
	assert.Equal(t, 1, c.Direction())

	require.True(t, c.Prev())
	assert.Equal(t, -1, c.Direction())
}

func TestPaginate_LargeDeltaRejected(t *testing.T) {
	c := New(&fakeSource{n: 2})
	assert.False(t, c.Paginate(100))
	assert.False(t, c.Paginate(0))
	assert.Equal(t, 0, c.Current())
	assert.Equal(t, 0, c.Direction())
}

func TestPaginate_IgnoredWhileEditing(t *testing.T) {
	src := &fakeSource{n: 3}
	c := New(src)
	require.True(t, c.Next())

	src.editing = true
	assert.False(t, c.Next())
	assert.False(t, c.Prev())
	assert.Equal(t, 1, c.Current())
}

func TestToggleEditingTwice_LeavesPositionUnchanged(t *testing.T) {
	s := editor.NewSession(deck.Default())
	c := New(s)
	require.True(t, c.Next())
	require.True(t, c.Next())

	s.ToggleEditing()
	s.ToggleEditing()

	assert.Equal(t, 2, c.Current())
	assert.True(t, c.Next())
}

func TestClamp(t *testing.T) {
	src := &fakeSource{n: 5}
	c := New(src)
	for c.Next() {
	}
	require.Equal(t, 8, c.Current())

	src.n = 1
	c.Clamp()
	assert.Equal(t, 4, c.Current())

	src.n = 10
	c.Clamp()
	assert.Equal(t, 4, c.Current())
}

func TestFrame(t *testing.T) {
	c := New(&fakeSource{n: 2})

	tests := []struct {
		i    int
		want Frame
		ok   bool
	}{
		{i: -1, ok: false},
		{i: 0, want: Frame{Kind: FrameHero}, ok: true},
		{i: 1, want: Frame{Kind: FrameContent, Slide: 0}, ok: true},
		{i: 2, want: Frame{Kind: FrameContent, Slide: 1}, ok: true},
		{i: 3, want: Frame{Kind: FrameBibliography, Slide: 1}, ok: true},
		{i: 4, want: Frame{Kind: FrameBibliography, Slide: 2}, ok: true},
		{i: 5, want: Frame{Kind: FrameFooter}, ok: true},
		{i: 6, ok: false},
	}
	for _, tt := range tests {
		got, ok := c.Frame(tt.i)
		assert.Equal(t, tt.ok, ok, "index %d", tt.i)
		assert.Equal(t, tt.want, got, "index %d", tt.i)
	}

	f, ok := c.CurrentFrame()
	require.True(t, ok)
	assert.Equal(t, FrameHero, f.Kind)
}
