package snapshotmodel

import "testing"
import "time"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"


func TestRemoteSnapshotGetBlocksUntilResolved(t *testing.T) {
	placeholder := NewRemoteSnapshot()

	assert.False(t, placeholder.IsResolved())
	assert.Equal(t, int64(-1), placeholder.LastIndex())
	assert.Equal(t, KindRemote, placeholder.Kind())

	resolved := make(chan Snapshot, 1)
	go func() { resolved <- placeholder.Get() }()

	time.Sleep(10 * time.Millisecond)
	placeholder.Resolve(NewSimpleSnapshot(nil, nil, 7, 2))

	select {
		case snap := <- resolved:
			assert.Equal(t, int64(7), snap.LastIndex())
		case <- time.After(time.Second):
			t.Fatal("Get never returned after Resolve")
	}

	assert.True(t, placeholder.IsResolved())
}

func TestRemoteSnapshotResolveIsIdempotent(t *testing.T) {
	placeholder := NewRemoteSnapshot()

	placeholder.Resolve(NewSimpleSnapshot(nil, nil, 1, 1))
	placeholder.Resolve(NewSimpleSnapshot(nil, nil, 99, 99))

	require.True(t, placeholder.IsResolved())
	assert.Equal(t, int64(1), placeholder.Get().LastIndex())
}
