package carousel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var heroes = []string{"a.jpg", "b.jpg", "c.jpg"}

func TestNewClampsStart(t *testing.T) {
	c, err := New(heroes, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, "b.jpg", c.Current())

	c, err = New(heroes, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Index())

	c, err = New(heroes, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Index())
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil, 0)
	assert.Error(t, err)
}

func TestNextPrevWrap(t *testing.T) {
	c, _ := New(heroes, 2)
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 2, c.Prev())
	assert.Equal(t, 1, c.Prev())
}

func TestSelect(t *testing.T) {
	c, _ := New(heroes, 0)
	require.NoError(t, c.Select(2))
	assert.Equal(t, "c.jpg", c.Current())

	err := c.Select(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, 2, c.Index())
	assert.ErrorIs(t, c.Select(-1), ErrOutOfRange)
}

func TestIndexStaysInRange(t *testing.T) {
	c, _ := New(heroes, 1)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 {
			c.Next()
		} else {
			c.Prev()
		}
		require.GreaterOrEqual(t, c.Index(), 0)
		require.Less(t, c.Index(), c.Len())
	}
}

func TestSlidesIsCopy(t *testing.T) {
	src := []string{"x", "y"}
	c, _ := New(src, 0)
	src[0] = "mutated"
	assert.Equal(t, "x", c.Current())
	s := c.Slides()
	s[1] = "mutated"
	c.Next()
	assert.Equal(t, "y", c.Current())
}
