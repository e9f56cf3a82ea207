package member

import "testing"

import "github.com/stretchr/testify/assert"

import "github.com/latticedb/dgm/pkg/cluster"


func TestIsLeaderReflectsRole(t *testing.T) {
	m := &Member{ role: cluster.Follower }
	assert.False(t, m.isLeader())

	m.role = cluster.Leader
	assert.True(t, m.isLeader())
}

func TestLeaderNodeIsAbsentUntilKnown(t *testing.T) {
	m := &Member{}

	_, ok := m.leaderNode()
	assert.False(t, ok)

	leader := cluster.Node{ NodeId: 9, Addr: "peer" }
	m.currentLeader = &leader

	got, ok := m.leaderNode()
	assert.True(t, ok)
	assert.Equal(t, leader, got)
}
