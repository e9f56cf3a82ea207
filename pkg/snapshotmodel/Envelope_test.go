package snapshotmodel

import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/latticedb/dgm/pkg/cluster"
import "github.com/latticedb/dgm/pkg/logmgr"


func TestEncodeDecodeSimpleSnapshotRoundTrips(t *testing.T) {
	original := NewSimpleSnapshot(
		[]([]byte){ []byte("schema-1") },
		[]*logmgr.LogEntry{ { Index: 1, Term: 1, Command: []byte("op") } },
		42, 3,
	)

	raw, encodeErr := EncodeBytes(original)
	require.NoError(t, encodeErr)

	decoded, decodeErr := DecodeBytes(raw)
	require.NoError(t, decodeErr)

	simple, ok := decoded.(*SimpleSnapshot)
	require.True(t, ok)
	assert.Equal(t, int64(42), simple.LastIndex())
	assert.Equal(t, int64(3), simple.LastTerm())
	assert.Len(t, simple.Operations, 1)
}

func TestEncodeDecodePartitionedSnapshotRecursesPerSlot(t *testing.T) {
	perSlot := map[cluster.Slot]Snapshot{
		cluster.Slot(1): NewSimpleSnapshot(nil, nil, 10, 1),
		cluster.Slot(2): NewFileSnapshot(nil, []*RemoteFileRef{ { RemotePath: "/sequence/sg/file.tsm" } }, 20, 2),
	}

	original := NewPartitionedSnapshot(perSlot, 20, 2)

	raw, encodeErr := EncodeBytes(original)
	require.NoError(t, encodeErr)

	decoded, decodeErr := DecodeBytes(raw)
	require.NoError(t, decodeErr)

	partitioned, ok := decoded.(*PartitionedSnapshot)
	require.True(t, ok)

	slotOne, found := partitioned.GetSnapshot(cluster.Slot(1))
	require.True(t, found)
	assert.Equal(t, KindSimple, slotOne.Kind())

	slotTwo, found := partitioned.GetSnapshot(cluster.Slot(2))
	require.True(t, found)
	assert.Equal(t, KindFile, slotTwo.Kind())
}

func TestEncodeRemoteSnapshotIsUnsupported(t *testing.T) {
	_, err := EncodeBytes(NewRemoteSnapshot())
	assert.Error(t, err)
}

func TestDecodeUnknownKindIsUnsupported(t *testing.T) {
	_, err := DecodeBytes([]byte(`{"kind":99,"payload":null}`))
	assert.Error(t, err)
}
