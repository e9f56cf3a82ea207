package member

import "context"
import "path/filepath"
import "testing"
import "time"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/latticedb/dgm/pkg/clog"
import "github.com/latticedb/dgm/pkg/cluster"
import "github.com/latticedb/dgm/pkg/electionrpc"
import "github.com/latticedb/dgm/pkg/logmgr"


func newTestMemberForElection(t *testing.T, metaLog cluster.LogPosition) *Member {
	dir := t.TempDir()
	lm, openErr := logmgr.NewLogManager(logmgr.LogManagerOpts{ DBPath: filepath.Join(dir, "log.db") })
	require.NoError(t, openErr)
	t.Cleanup(func() { lm.Close() })

	return &Member{
		self: cluster.Node{ NodeId: 1 },
		role: cluster.Follower,
		term: 5,
		metaLog: metaLog,
		logManager: lm,
		resetElectionTimeout: make(chan struct{}, 1),
		log: *clog.NewCustomLog("test"),
	}
}

func TestRequestVoteGrantsWhenBothLogsAreFresh(t *testing.T) {
	m := newTestMemberForElection(t, cluster.LogPosition{ LastLogIndex: 10, LastLogTerm: 5 })

	resp, err := m.RequestVote(context.Background(), &electionrpc.ElectionRequest{
		Term: 6,
		MetaLastLogIndex: 10, MetaLastLogTerm: 5,
		DataLastLogIndex: 0, DataLastLogTerm: 0,
		ElectorNodeId: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, int32(cluster.Agree), resp.Verdict)
	assert.Equal(t, int64(6), resp.Term)
	assert.Equal(t, int64(6), m.term)
	assert.Equal(t, cluster.Follower, m.role)
	assert.Equal(t, int64(2), m.votedFor)

	require.NotNil(t, m.currentLeader)
	assert.Equal(t, int64(2), m.currentLeader.NodeId)
}

func TestRequestVoteRejectsOnStaleMetaLogWithoutGrantingVote(t *testing.T) {
	m := newTestMemberForElection(t, cluster.LogPosition{ LastLogIndex: 100, LastLogTerm: 5 })

	resp, err := m.RequestVote(context.Background(), &electionrpc.ElectionRequest{
		Term: 6,
		MetaLastLogIndex: 1, MetaLastLogTerm: 5,
		ElectorNodeId: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, int32(cluster.MetaLogStale), resp.Verdict)
	assert.Equal(t, int64(5), m.term) // unchanged, vote was not granted
}

func TestRequestVoteGrantingAVoteResetsElectionTimeout(t *testing.T) {
	m := newTestMemberForElection(t, cluster.LogPosition{})

	_, err := m.RequestVote(context.Background(), &electionrpc.ElectionRequest{
		Term: 6, ElectorNodeId: 2,
	})
	require.NoError(t, err)

	select {
		case <- m.resetElectionTimeout:
		case <- time.After(time.Second):
			t.Fatal("expected resetElectionTimeout to receive a signal")
	}
}

func TestElectionTimeoutFallsWithinConfiguredBounds(t *testing.T) {
	m := &Member{
		electionTimeoutMin: 100 * time.Millisecond,
		electionTimeoutMax: 200 * time.Millisecond,
	}

	for i := 0; i < 20; i++ {
		got := m.electionTimeout()
		assert.GreaterOrEqual(t, got, int64(100))
		assert.Less(t, got, int64(200))
	}
}

func TestElectionTimeoutHandlesZeroSpan(t *testing.T) {
	m := &Member{
		electionTimeoutMin: 150 * time.Millisecond,
		electionTimeoutMax: 150 * time.Millisecond,
	}

	assert.Equal(t, int64(150), m.electionTimeout())
}
