package store

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInstrumentedStore_Counters checks that each timed operation bumps
// its counter and that delegation preserves results.
func TestInstrumentedStore_Counters(t *testing.T) {
	t.Parallel()

	s := NewInstrumentedStore(NewMemStore(hclog.NewNullLogger(), LoadMerge))

	require.NoError(t, s.Set("name", "Abhishek"))
	require.NoError(t, s.Set("lang", "C++"))

	got, ok := s.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Abhishek", got)

	_, ok = s.Get("missing")
	assert.False(t, ok)

	require.NoError(t, s.Delete("lang"))

	m := s.GetMetrics()
	assert.EqualValues(t, 2, m.SetCount)
	assert.EqualValues(t, 2, m.GetCount)
	assert.EqualValues(t, 1, m.DeleteCount)

	// Untimed operations still delegate.
	assert.True(t, s.Exists("name"))
	assert.Equal(t, 1, s.Len())
	assert.Len(t, s.List(), 1)

	require.NoError(t, s.Clear())
	assert.Zero(t, s.Len())
}

// TestInstrumentedStore_Reset verifies ResetMetrics zeroes every counter.
func TestInstrumentedStore_Reset(t *testing.T) {
	t.Parallel()

	s := NewInstrumentedStore(NewMemStore(hclog.NewNullLogger(), LoadMerge))

	require.NoError(t, s.Set("a", "1"))
	s.Get("a")

	s.ResetMetrics()

	m := s.GetMetrics()
	assert.Zero(t, m.SetCount)
	assert.Zero(t, m.GetCount)
	assert.Zero(t, m.SetAvgLatency)
	assert.Zero(t, m.GetAvgLatency)
}
