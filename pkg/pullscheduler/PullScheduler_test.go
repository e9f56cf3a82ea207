package pullscheduler

import "context"
import "errors"
import "path/filepath"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/latticedb/dgm/pkg/cluster"
import "github.com/latticedb/dgm/pkg/grouprpc"
import "github.com/latticedb/dgm/pkg/logmgr"
import "github.com/latticedb/dgm/pkg/snapshotmodel"


type fakeGroupServiceClient struct {
	envelopes []*grouprpc.SnapshotEnvelope
	err error
}

func (f *fakeGroupServiceClient) SendSnapshot(ctx context.Context, in *grouprpc.SendSnapshotRequest) (*grouprpc.SendSnapshotResponse, error) {
	return &grouprpc.SendSnapshotResponse{}, nil
}

func (f *fakeGroupServiceClient) PullSnapshot(ctx context.Context, in *grouprpc.PullSnapshotRequest) (*grouprpc.PullSnapshotResponse, error) {
	if f.err != nil { return nil, f.err }

	return &grouprpc.PullSnapshotResponse{ Envelopes: f.envelopes }, nil
}

func newTestScheduler(t *testing.T) *PullScheduler {
	dir := t.TempDir()
	lm, openErr := logmgr.NewLogManager(logmgr.LogManagerOpts{ DBPath: filepath.Join(dir, "log.db") })
	require.NoError(t, openErr)
	t.Cleanup(func() { lm.Close() })

	return NewPullScheduler(PullSchedulerOpts{
		LogManager: lm,
		LocalNode: cluster.Node{ NodeId: 1 },
		Width: 1,
	})
}

func installPlaceholder(ps *PullScheduler, slot cluster.Slot) *snapshotmodel.RemoteSnapshot {
	placeholder := snapshotmodel.NewRemoteSnapshot()

	ps.placeholdersMutex.Lock()
	ps.placeholders[slot] = placeholder
	ps.placeholdersMutex.Unlock()

	ps.logManager.Lock()
	ps.logManager.SetSlotSnapshotLocked(slot, placeholder)
	ps.logManager.Unlock()

	return placeholder
}

func TestPullBatchResolvesEveryPlaceholderOnSuccessfulPull(t *testing.T) {
	ps := newTestScheduler(t)

	p5 := installPlaceholder(ps, cluster.Slot(5))
	p7 := installPlaceholder(ps, cluster.Slot(7))

	raw5, encodeErr := snapshotmodel.EncodeBytes(snapshotmodel.NewSimpleSnapshot(nil, nil, 11, 2))
	require.NoError(t, encodeErr)
	raw7, encodeErr := snapshotmodel.EncodeBytes(snapshotmodel.NewSimpleSnapshot(nil, nil, 22, 3))
	require.NoError(t, encodeErr)

	client := &fakeGroupServiceClient{ envelopes: []*grouprpc.SnapshotEnvelope{
		{ Slot: 5, Payload: raw5 },
		{ Slot: 7, Payload: raw7 },
	} }

	ps.pullBatch(context.Background(), client, cluster.Node{ Addr: "peer" }, []cluster.Slot{ 5, 7 })

	require.True(t, p5.IsResolved())
	assert.Equal(t, int64(11), p5.Get().LastIndex())
	require.True(t, p7.IsResolved())
	assert.Equal(t, int64(22), p7.Get().LastIndex())

	stored, ok := ps.logManager.GetSlotSnapshot(cluster.Slot(5))
	require.True(t, ok)
	assert.Equal(t, int64(11), stored.LastIndex())
}

func TestPullBatchResolvesToFallbackSnapshotOnExhaustedRetries(t *testing.T) {
	ps := newTestScheduler(t)

	placeholder := installPlaceholder(ps, cluster.Slot(6))

	client := &fakeGroupServiceClient{ err: errors.New("peer unreachable") }

	ps.pullBatch(context.Background(), client, cluster.Node{ Addr: "peer" }, []cluster.Slot{ 6 })

	require.True(t, placeholder.IsResolved())
	assert.Equal(t, int64(-1), placeholder.Get().LastIndex())
}

func TestPullBatchFallsBackOnlyForSlotsMissingFromTheResponse(t *testing.T) {
	ps := newTestScheduler(t)

	present := installPlaceholder(ps, cluster.Slot(8))
	missing := installPlaceholder(ps, cluster.Slot(9))

	raw, encodeErr := snapshotmodel.EncodeBytes(snapshotmodel.NewSimpleSnapshot(nil, nil, 30, 4))
	require.NoError(t, encodeErr)

	client := &fakeGroupServiceClient{ envelopes: []*grouprpc.SnapshotEnvelope{ { Slot: 8, Payload: raw } } }

	ps.pullBatch(context.Background(), client, cluster.Node{ Addr: "peer" }, []cluster.Slot{ 8, 9 })

	require.True(t, present.IsResolved())
	assert.Equal(t, int64(30), present.Get().LastIndex())

	require.True(t, missing.IsResolved())
	assert.Equal(t, int64(-1), missing.Get().LastIndex())
}

func TestPullBatchIsANoOpWhenNoSlotWasTracked(t *testing.T) {
	ps := newTestScheduler(t)

	client := &fakeGroupServiceClient{ err: errors.New("should never be called in a useful way") }

	assert.NotPanics(t, func() {
		ps.pullBatch(context.Background(), client, cluster.Node{ Addr: "peer" }, []cluster.Slot{ 99 })
	})
}
