package member

import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/latticedb/dgm/pkg/clog"
import "github.com/latticedb/dgm/pkg/cluster"


func newTestMember(self cluster.Node, members []cluster.Node) *Member {
	return &Member{
		self: self,
		group: cluster.PartitionGroup{ Members: members },
		role: cluster.Leader,
		term: 1,
		log: *clog.NewCustomLog("test"),
	}
}

func TestAddNodeRevertsToElectorAndBumpsTermOnInsertion(t *testing.T) {
	m := newTestMember(
		cluster.Node{ NodeId: 1 },
		[]cluster.Node{ { NodeId: 1 }, { NodeId: 10 }, { NodeId: 20 } },
	)

	leader := cluster.Node{ NodeId: 15 }
	m.currentLeader = &leader

	inserted, droppedIsLocal := m.AddNode(cluster.Node{ NodeId: 12 })

	require.True(t, inserted)
	assert.False(t, droppedIsLocal)
	assert.Equal(t, cluster.Elector, m.role)
	assert.Equal(t, int64(2), m.term)
	assert.Nil(t, m.currentLeader)
	assert.Len(t, m.Group().Members, 3)
}

func TestSelfReturnsTheConfiguredLocalNode(t *testing.T) {
	self := cluster.Node{ NodeId: 42, Addr: "local" }
	m := newTestMember(self, []cluster.Node{ self })

	assert.Equal(t, self, m.Self())
}
