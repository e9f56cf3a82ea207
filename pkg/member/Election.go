package member

import "context"
import "math/rand"
import "sync"
import "sync/atomic"

import "github.com/latticedb/dgm/pkg/cluster"
import "github.com/latticedb/dgm/pkg/electionrpc"
import "github.com/latticedb/dgm/pkg/utils"


//=========================================== Election


/*
	RequestVote is the election RPC server handler: processElectionRequest. A vote is
	granted only once the candidate clears both gates -- it must not be behind on the
	metadata group's log, and cluster.VerifyElector must agree its data group log is at
	least as fresh as this member's own. Granting a vote resets this member's own
	election timeout, since a live candidate it just voted for is reason enough to not
	also start a competing election.
*/

func (m *Member) RequestVote(ctx context.Context, req *electionrpc.ElectionRequest) (*electionrpc.ElectionResponse, error) {
	m.mutex.Lock()

	localData := cluster.LogPosition{ Term: m.term }
	localData.LastLogIndex, localData.LastLogTerm = m.logManager.Last()

	candidateData := cluster.LogPosition{
		Term: req.Term,
		LastLogIndex: req.DataLastLogIndex,
		LastLogTerm: req.DataLastLogTerm,
	}

	candidateMeta := cluster.LogPosition{
		LastLogIndex: req.MetaLastLogIndex,
		LastLogTerm: req.MetaLastLogTerm,
	}

	verdict := cluster.GateElection(m.metaLog, candidateMeta, localData, candidateData)

	if verdict == cluster.Agree {
		m.term = req.Term
		m.votedFor = req.ElectorNodeId
		m.role = cluster.Follower

		leader := cluster.Node{ Addr: req.ElectorAddr, NodeId: req.ElectorNodeId }
		m.currentLeader = &leader
	}

	responseTerm := m.term
	m.mutex.Unlock()

	if verdict == cluster.Agree {
		select {
			case m.resetElectionTimeout <- struct{}{}:
			default:
		}
	}

	return &electionrpc.ElectionResponse{ Verdict: int32(verdict), Term: responseTerm }, nil
}

/*
	RunElection transitions to Elector, bumps the term, votes for itself, and broadcasts
	RequestVote in parallel to every other member of the partition group, counting
	concrete Verdict values rather than a bare VoteGranted flag. Once every peer has
	answered (or failed), any response carrying a higher term reverts to Follower;
	otherwise a quorum of Agree verdicts transitions to Leader.
*/

func (m *Member) RunElection() {
	m.mutex.Lock()
	m.role = cluster.Elector
	m.term++
	m.votedFor = m.self.NodeId
	candidateTerm := m.term

	localData := cluster.LogPosition{ Term: candidateTerm }
	localData.LastLogIndex, localData.LastLogTerm = m.logManager.Last()
	localMeta := m.metaLog

	members := append([]cluster.Node{}, m.group.Members...)
	m.mutex.Unlock()

	votes := int64(1)
	quorum := int64(len(members) / 2 + 1)

	var wg sync.WaitGroup
	higherTermSeen := make(chan int64, len(members))

	for _, peer := range members {
		if peer.NodeId == m.self.NodeId { continue }

		wg.Add(1)
		go func(peer cluster.Node) {
			defer wg.Done()

			verdict, peerTerm, err := m.requestVoteFrom(peer, candidateTerm, localMeta, localData)
			if err != nil {
				m.log.Warn("vote request to", peer.Addr, "failed:", err.Error())
				return
			}

			if verdict == cluster.Agree {
				atomic.AddInt64(&votes, 1)
			}

			if peerTerm > candidateTerm {
				higherTermSeen <- peerTerm
			}
		}(peer)
	}

	wg.Wait()
	close(higherTermSeen)

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.term != candidateTerm || m.role != cluster.Elector {
		return // superseded while the broadcast was in flight
	}

	select {
		case higherTerm, ok := <- higherTermSeen:
			if ok {
				m.term = higherTerm
				m.role = cluster.Follower
				return
			}
		default:
	}

	if votes >= quorum {
		m.role = cluster.Leader
		self := m.self
		m.currentLeader = &self
		m.log.Info("elected leader for term", m.term, "with", votes, "/", len(members), "votes")
	} else {
		m.role = cluster.Follower
		m.log.Info("election for term", m.term, "failed, got", votes, "/", quorum, "required votes")
	}
}

func (m *Member) requestVoteFrom(peer cluster.Node, term int64, localMeta cluster.LogPosition, localData cluster.LogPosition) (cluster.Verdict, int64, error) {
	conn, connErr := m.connPool.GetConnection(peer.Addr, utils.NormalizePort(m.ports.Election))
	if connErr != nil { return cluster.TermStale, 0, connErr }

	client := electionrpc.NewElectionServiceClient(conn)

	req := &electionrpc.ElectionRequest{
		Term: term,
		MetaLastLogIndex: localMeta.LastLogIndex,
		MetaLastLogTerm: localMeta.LastLogTerm,
		DataLastLogIndex: localData.LastLogIndex,
		DataLastLogTerm: localData.LastLogTerm,
		ElectorAddr: m.self.Addr,
		ElectorNodeId: m.self.NodeId,
	}

	resp, err := client.RequestVote(context.Background(), req)
	if err != nil { return cluster.TermStale, 0, err }

	return cluster.Verdict(resp.Verdict), resp.Term, nil
}

// electionTimeout returns a random duration in [min, max), a jittered-timeout idiom
// that avoids split-vote convergence failures.
func (m *Member) electionTimeout() int64 {
	span := m.electionTimeoutMax.Milliseconds() - m.electionTimeoutMin.Milliseconds()
	if span <= 0 { return m.electionTimeoutMin.Milliseconds() }

	return m.electionTimeoutMin.Milliseconds() + rand.Int63n(span)
}
