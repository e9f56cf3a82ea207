package cluster


//=========================================== Membership Insertion


/*
	Add Node:
		synchronous, idempotent with respect to insertion position; inserts n into the
		ring-sorted membership sequence at the first index i+1 such that either
			(i)   id(prev) < id(n) < id(next)
			(ii)  id(prev) < id(n) and id(next) < id(prev)          -- wrap at prev
			(iii) id(n) < id(next) < id(prev)                       -- wrap at next

		if inserted, the last element is dropped to preserve the replication factor; the
		return value signals whether the dropped element is localNodeId (the local node must
		then leave the group)

		a match always yields insertIndex = i+1 >= 1, so the header at position 0 is never
		displaced; the insertIndex <= 0 guard only rejects the case where no pair of
		neighbours matched (see Open Questions)
*/

func (pg *PartitionGroup) AddNode(n Node, localNodeId int64) (inserted bool, droppedIsLocal bool) {
	members := pg.Members
	size := len(members)
	if size == 0 { return false, false }

	insertIndex := -1
	for i := 0; i < size; i++ {
		prev := members[i]
		next := members[(i + 1) % size]

		switch {
		case prev.NodeId < n.NodeId && n.NodeId < next.NodeId:
			insertIndex = i + 1
		case prev.NodeId < n.NodeId && next.NodeId < prev.NodeId:
			insertIndex = i + 1
		case n.NodeId < next.NodeId && next.NodeId < prev.NodeId:
			insertIndex = i + 1
		}

		if insertIndex != -1 { break }
	}

	if insertIndex <= 0 { return false, false }

	grown := make([]Node, 0, size + 1)
	grown = append(grown, members[:insertIndex]...)
	grown = append(grown, n)
	grown = append(grown, members[insertIndex:]...)

	dropped := grown[len(grown) - 1]
	pg.Members = grown[:len(grown) - 1]

	return true, dropped.NodeId == localNodeId
}
