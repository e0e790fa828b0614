package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStore_PutGet(t *testing.T) {
	s := NewRunStore(4)

	run := &Run{ID: "a"}
	s.Put(run)

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Same(t, run, got)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestRunStore_EvictsOldest(t *testing.T) {
	s := NewRunStore(2)

	for i := 0; i < 3; i++ {
		s.Put(&Run{ID: fmt.Sprintf("run-%d", i)})
	}

	assert.Equal(t, 2, s.Len())
	_, ok := s.Get("run-0")
	assert.False(t, ok)
	_, ok = s.Get("run-2")
	assert.True(t, ok)
}

func TestRunStore_UpdateKeepsSlot(t *testing.T) {
	s := NewRunStore(2)

	s.Put(&Run{ID: "a"})
	s.Put(&Run{ID: "a"})
	s.Put(&Run{ID: "b"})

	assert.Equal(t, 2, s.Len())
	_, ok := s.Get("a")
	assert.True(t, ok)
}
