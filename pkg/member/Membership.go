package member

import "github.com/latticedb/dgm/pkg/cluster"


//=========================================== Membership


/*
	AddNode inserts n into the member's view of its partition group. A successful
	insertion always destabilises the group's agreement on who leads it, so the member
	bumps its term, clears any known leader, and reverts to Elector regardless of
	whether it was the node the ring dropped -- this forces a fresh election rather than
	letting a possibly-stale leader continue to commit. A dropped local node gets no
	further handling here: droppedIsLocal is only reported to the caller, and the
	election-timeout loop keeps running.
*/

func (m *Member) AddNode(n cluster.Node) (inserted bool, droppedIsLocal bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	inserted, droppedIsLocal = m.group.AddNode(n, m.self.NodeId)
	if ! inserted { return inserted, droppedIsLocal }

	m.term++
	m.currentLeader = nil
	m.role = cluster.Elector
	m.votedFor = 0

	m.log.Info("node", n.NodeId, "added to partition group, term advanced to", m.term)

	return inserted, droppedIsLocal
}

func (m *Member) Group() cluster.PartitionGroup {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.group
}

func (m *Member) Self() cluster.Node {
	return m.self
}
