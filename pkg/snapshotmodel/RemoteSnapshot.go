package snapshotmodel

import "sync"


//=========================================== Remote Snapshot Placeholder


/*
	RemoteSnapshot is a placeholder installed in the log manager's per-slot cache the
	moment the Pull-Snapshot Scheduler accepts a slot for migration; it is resolved
	lazily once the scheduler's task for that slot's previous holder completes.

	modeled as a one-shot future: Resolve is idempotent and thread-safe, and Get blocks
	the caller until resolution -- accessing a remote variant's contents resolves the
	handle, per the design notes on dynamic dispatch over snapshot variants
*/

type RemoteSnapshot struct {
	mutex sync.Mutex
	resolved Snapshot
	done chan struct{}
}

func NewRemoteSnapshot() *RemoteSnapshot {
	return &RemoteSnapshot{ done: make(chan struct{}) }
}

func (r *RemoteSnapshot) Kind() Kind { return KindRemote }

// LastIndex/LastTerm return a sentinel below any real snapshot's index, so the log
// manager's "replace only on strictly greater lastIndex" rule always lets the
// resolved snapshot supersede the placeholder once Resolve runs.
func (r *RemoteSnapshot) LastIndex() int64 { return -1 }
func (r *RemoteSnapshot) LastTerm() int64 { return -1 }

func (r *RemoteSnapshot) Resolve(snap Snapshot) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	select {
		case <- r.done:
			return // already resolved, idempotent
		default:
			r.resolved = snap
			close(r.done)
	}
}

// Get blocks until the placeholder resolves, then returns the materialised snapshot.
func (r *RemoteSnapshot) Get() Snapshot {
	<- r.done

	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.resolved
}

func (r *RemoteSnapshot) IsResolved() bool {
	select {
		case <- r.done:
			return true
		default:
			return false
	}
}
