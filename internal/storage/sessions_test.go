package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestStore(clock *fakeClock) *SessionStore[string] {
	s := NewSessionStore[string]()
	s.now = clock.now
	return s
}

func TestSessionStore_PutGetDelete(t *testing.T) {
	s := NewSessionStore[string]()

	_, ok := s.Get(1)
	assert.False(t, ok)

	s.Put(1, "geo")
	v, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "geo", v)
	assert.Equal(t, 1, s.Len())

	s.Delete(1)
	_, ok = s.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestSessionStore_GetOrCreate(t *testing.T) {
	s := NewSessionStore[string]()

	calls := 0
	create := func() string {
		calls++
		return "new"
	}

	assert.Equal(t, "new", s.GetOrCreate(7, create))
	assert.Equal(t, "new", s.GetOrCreate(7, create))
	assert.Equal(t, 1, calls)
}

func TestSessionStore_EvictIdle(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := newTestStore(clock)

	s.Put(1, "old")
	s.Put(2, "touched")

	clock.t = clock.t.Add(time.Hour)
	s.Touch(2)
	s.Put(3, "fresh")

	evicted := s.EvictIdle(clock.t.Add(-30 * time.Minute))
	assert.Equal(t, 1, evicted)

	_, ok := s.Get(1)
	assert.False(t, ok)
	_, ok = s.Get(2)
	assert.True(t, ok)
	_, ok = s.Get(3)
	assert.True(t, ok)
}

func TestSessionStore_TouchMissingIsNoop(t *testing.T) {
	s := NewSessionStore[string]()
	s.Touch(42)
	assert.Equal(t, 0, s.Len())
}
