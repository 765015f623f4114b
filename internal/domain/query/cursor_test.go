package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_MoveDownClampsAtEnd(t *testing.T) {
	var c Cursor
	for i := 0; i < 5; i++ {
		c = c.Move(Down, 3)
		assert.LessOrEqual(t, int(c), 2)
	}
	assert.Equal(t, Cursor(2), c)
}

func TestCursor_MoveUpAtStartStays(t *testing.T) {
	var c Cursor
	assert.Equal(t, Cursor(0), c.Move(Up, 3))
}

func TestCursor_MoveOnEmptySet(t *testing.T) {
	assert.Equal(t, Cursor(0), Cursor(0).Move(Down, 0))
	assert.Equal(t, Cursor(0), Cursor(0).Move(Up, 0))
}

func TestCursor_Clamp(t *testing.T) {
	assert.Equal(t, Cursor(1), Cursor(4).Clamp(2))
	assert.Equal(t, Cursor(0), Cursor(-1).Clamp(2))
	assert.Equal(t, Cursor(0), Cursor(3).Clamp(0))
}

func TestNewRemoteSuggestions_Truncates(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	got := NewRemoteSuggestions("x", items)

	assert.Equal(t, MaxSuggestions, got.Len())
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, got.Items)
	assert.Equal(t, "x", got.Query)
}
