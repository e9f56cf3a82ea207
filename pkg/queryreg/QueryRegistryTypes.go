package queryreg

import "sync"
import "sync/atomic"

import "github.com/latticedb/dgm/pkg/external"


//=========================================== Query Session Registry Types


/*
	the registry is keyed by (requesterNode, queryId) -- the same queryId minted by two
	different requesters never collides, since a requester only ever learns about its
	own readers. within a session, readers are assigned monotonically increasing local
	ids starting at 1, scoped to that session alone.
*/

type sessionKey struct {
	requesterNode string
	queryId string
}

type session struct {
	mutex sync.Mutex
	readers map[int64]external.PointReader
	nextReaderId int64
}

type QueryRegistry struct {
	sessions sync.Map // sessionKey -> *session
	sessionCount atomic.Int64
}

func NewQueryRegistry() *QueryRegistry {
	return &QueryRegistry{}
}
