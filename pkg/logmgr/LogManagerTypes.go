package logmgr

import "sync"

import bolt "go.etcd.io/bbolt"

import "github.com/latticedb/dgm/pkg/cluster"


const LogBucket = "log"
const MetaBucket = "meta"
const LastIndexKey = "lastIndex"
const LastTermKey = "lastTerm"


// SlotSnapshot is the minimal surface the log manager needs from a materialised
// per-slot snapshot in order to enforce the replace-only-on-strictly-greater-index
// invariant, without importing the snapshot package's tagged union.
type SlotSnapshot interface {
	LastIndex() int64
	LastTerm() int64
}

// LogManager is the Partitioned Log Manager: an ordered, durably-persisted log store
// plus a per-slot snapshot cache and last-log bookkeeping. Log append and snapshot
// application for a given log manager are strictly serialised under mutex.
type LogManager struct {
	mutex sync.Mutex

	db *bolt.DB

	lastIndex int64
	lastTerm int64

	slotSnapshots map[cluster.Slot]SlotSnapshot
}

type LogManagerOpts struct {
	DBPath string
}
