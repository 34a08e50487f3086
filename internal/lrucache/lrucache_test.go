package lrucache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMissingKey(t *testing.T) {
	c := New[string, int](4)
	_, ok := c.Get("absent")
	assert.False(t, ok)
}

func TestAddThenGet(t *testing.T) {
	c := New[string, int](4)
	c.Add("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Get("a")
	c.Add("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestAddExistingKeyUpdates(t *testing.T) {
	c := New[string, int](2)
	c.Add("a", 1)
	c.Add("a", 9)
	v, _ := c.Get("a")
	assert.Equal(t, 9, v)
	assert.Equal(t, 1, c.Len())
}

func TestZeroCapacityStillHoldsOne(t *testing.T) {
	c := New[string, int](0)
	c.Add("a", 1)
	_, ok := c.Get("a")
	assert.True(t, ok)
}
