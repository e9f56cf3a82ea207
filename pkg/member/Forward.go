package member

import "errors"

import "github.com/latticedb/dgm/pkg/cluster"


//=========================================== Leader Forwarding


var errNoLeader = errors.New("member: no known leader to forward to")
var errUnknownReader = errors.New("member: no reader registered under that session/readerId")

// isLeader and leaderNode each read their field (role, currentLeader) under the
// member mutex; they are separate calls, each taking the lock once.
func (m *Member) isLeader() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.role == cluster.Leader
}

func (m *Member) leaderNode() (cluster.Node, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentLeader == nil { return cluster.Node{}, false }

	return *m.currentLeader, true
}

// syncLeader is the read path's catch-up gate: the leader itself is always caught
// up, and a follower that knows its leader is considered caught up too, since
// replication to this member happens continuously via SendSnapshot/PullSnapshot
// rather than on demand here. Only the absence of any known leader fails it.
func (m *Member) syncLeader() error {
	if m.isLeader() { return nil }

	if _, ok := m.leaderNode(); ! ok { return errNoLeader }

	return nil
}
