package member

import "context"

import "github.com/latticedb/dgm/pkg/cluster"
import "github.com/latticedb/dgm/pkg/grouprpc"
import "github.com/latticedb/dgm/pkg/snapshotmodel"
import "github.com/latticedb/dgm/pkg/utils"


//=========================================== Group RPC Handlers


// SendSnapshot applies a pushed snapshot directly -- used when a leader proactively
// replicates a newly materialised slot to a peer rather than waiting for that peer's
// Pull-Snapshot Scheduler to ask for it.
func (m *Member) SendSnapshot(ctx context.Context, req *grouprpc.SendSnapshotRequest) (*grouprpc.SendSnapshotResponse, error) {
	snap, decodeErr := snapshotmodel.DecodeBytes(req.Envelope.Payload)
	if decodeErr != nil { return &grouprpc.SendSnapshotResponse{ Accepted: false }, decodeErr }

	applyErr := m.ApplySnapshot(cluster.Slot(req.Envelope.Slot), snap)
	if applyErr != nil { return &grouprpc.SendSnapshotResponse{ Accepted: false }, applyErr }

	return &grouprpc.SendSnapshotResponse{ Accepted: true }, nil
}

/*
	PullSnapshot serves the Pull-Snapshot Scheduler's batched request for every slot
	it lists. A non-leader member forwards the request to its own group leader rather
	than answering from a possibly stale local cache -- the same forward-if-not-leader
	pattern used for client writes, applied here to reads that must reflect the most
	up to date materialised state.
*/

func (m *Member) PullSnapshot(ctx context.Context, req *grouprpc.PullSnapshotRequest) (*grouprpc.PullSnapshotResponse, error) {
	if m.isLeader() {
		return m.servePullSnapshotLocally(req)
	}

	leader, ok := m.leaderNode()
	if ! ok { return nil, errNoLeader }

	conn, connErr := m.connPool.GetConnection(leader.Addr, utils.NormalizePort(m.ports.Group))
	if connErr != nil { return nil, connErr }

	client := grouprpc.NewGroupServiceClient(conn)

	resp, err := client.PullSnapshot(ctx, req)
	if err != nil { return nil, err }

	resp.ForwardedFromAddr = leader.Addr
	return resp, nil
}

/*
	servePullSnapshotLocally takes the log manager's exclusive lock so the snapshot it
	serves reflects every append already committed at the moment of the request --
	the same interlock that guards log append and snapshot install everywhere else.
	For each requested slot still held by the local header (per the Partition Table),
	its per-slot snapshot is extracted and serialised; slots not held locally are
	silently skipped rather than failing the whole request.
*/

func (m *Member) servePullSnapshotLocally(req *grouprpc.PullSnapshotRequest) (*grouprpc.PullSnapshotResponse, error) {
	m.logManager.Lock()
	defer m.logManager.Unlock()

	cached, _, _ := m.logManager.SnapshotAllLocked()

	envelopes := make([]*grouprpc.SnapshotEnvelope, 0, len(req.Slots))

	for _, slotId := range req.Slots {
		slot := cluster.Slot(slotId)
		if m.collaborators.PartitionTable.HeaderFor(slot) != m.self { continue }

		held, ok := cached[slot]
		if ! ok { continue }

		asSnapshot, ok := held.(snapshotmodel.Snapshot)
		if ! ok { continue }

		if remote, isRemote := asSnapshot.(*snapshotmodel.RemoteSnapshot); isRemote {
			asSnapshot = remote.Get()
		}

		payload, encodeErr := snapshotmodel.EncodeBytes(asSnapshot)
		if encodeErr != nil {
			m.log.Warn("failed to encode snapshot for slot", slot, ":", encodeErr.Error())
			continue
		}

		envelopes = append(envelopes, &grouprpc.SnapshotEnvelope{
			Kind: int32(asSnapshot.Kind()),
			Slot: slotId,
			LastIndex: asSnapshot.LastIndex(),
			LastTerm: asSnapshot.LastTerm(),
			Payload: payload,
		})
	}

	return &grouprpc.PullSnapshotResponse{ Envelopes: envelopes }, nil
}
