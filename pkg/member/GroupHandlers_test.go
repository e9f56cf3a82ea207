package member

import "context"
import "path/filepath"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/latticedb/dgm/pkg/clog"
import "github.com/latticedb/dgm/pkg/cluster"
import "github.com/latticedb/dgm/pkg/grouprpc"
import "github.com/latticedb/dgm/pkg/logmgr"
import "github.com/latticedb/dgm/pkg/snapshotmodel"


func newTestMemberWithGroup(t *testing.T, role cluster.Role) *Member {
	dir := t.TempDir()
	lm, openErr := logmgr.NewLogManager(logmgr.LogManagerOpts{ DBPath: filepath.Join(dir, "log.db") })
	require.NoError(t, openErr)
	t.Cleanup(func() { lm.Close() })

	self := cluster.Node{ NodeId: 1 }

	return &Member{
		self: self,
		role: role,
		logManager: lm,
		collaborators: Collaborators{ Storage: &fakeStorageEngine{}, Schemas: &fakeSchemaRegistry{}, PartitionTable: allLocalPartitionTable(self) },
		log: *clog.NewCustomLog("test"),
	}
}

func TestSendSnapshotDecodesAndAppliesThePushedEnvelope(t *testing.T) {
	m := newTestMemberWithGroup(t, cluster.Leader)

	payload, encodeErr := snapshotmodel.EncodeBytes(snapshotmodel.NewSimpleSnapshot(nil, nil, 4, 1))
	require.NoError(t, encodeErr)

	resp, err := m.SendSnapshot(context.Background(), &grouprpc.SendSnapshotRequest{
		Envelope: &grouprpc.SnapshotEnvelope{ Slot: 3, Payload: payload },
	})

	require.NoError(t, err)
	assert.True(t, resp.Accepted)

	_, ok := m.logManager.GetSlotSnapshot(cluster.Slot(3))
	assert.True(t, ok)
}

func TestSendSnapshotRejectsAnUndecodableEnvelope(t *testing.T) {
	m := newTestMemberWithGroup(t, cluster.Leader)

	resp, err := m.SendSnapshot(context.Background(), &grouprpc.SendSnapshotRequest{
		Envelope: &grouprpc.SnapshotEnvelope{ Slot: 3, Payload: []byte("not json") },
	})

	assert.Error(t, err)
	assert.False(t, resp.Accepted)
}

func TestPullSnapshotServesLocallyWhenLeader(t *testing.T) {
	m := newTestMemberWithGroup(t, cluster.Leader)

	m.logManager.Lock()
	m.logManager.SetSlotSnapshotLocked(cluster.Slot(2), snapshotmodel.NewSimpleSnapshot(nil, nil, 9, 1))
	m.logManager.Unlock()

	resp, err := m.PullSnapshot(context.Background(), &grouprpc.PullSnapshotRequest{ Slots: []int64{ 2 } })

	require.NoError(t, err)
	require.Len(t, resp.Envelopes, 1)
	assert.Equal(t, int64(9), resp.Envelopes[0].LastIndex)
	assert.Empty(t, resp.ForwardedFromAddr)
}

func TestPullSnapshotSkipsSlotsNotHeldLocallyOrNotCached(t *testing.T) {
	m := newTestMemberWithGroup(t, cluster.Leader)

	m.logManager.Lock()
	m.logManager.SetSlotSnapshotLocked(cluster.Slot(2), snapshotmodel.NewSimpleSnapshot(nil, nil, 9, 1))
	m.logManager.Unlock()

	m.collaborators.PartitionTable = &fakePartitionTable{
		held: map[cluster.Slot]cluster.Node{ cluster.Slot(2): m.self },
		elsewhere: cluster.Node{ NodeId: 99 },
	}

	resp, err := m.PullSnapshot(context.Background(), &grouprpc.PullSnapshotRequest{ Slots: []int64{ 2, 5, 99 } })

	require.NoError(t, err)
	require.Len(t, resp.Envelopes, 1)
	assert.Equal(t, int64(2), resp.Envelopes[0].Slot)
}

func TestPullSnapshotFailsWhenNotLeaderAndNoLeaderKnown(t *testing.T) {
	m := newTestMemberWithGroup(t, cluster.Follower)

	_, err := m.PullSnapshot(context.Background(), &grouprpc.PullSnapshotRequest{ Slots: []int64{ 2 } })
	assert.ErrorIs(t, err, errNoLeader)
}
