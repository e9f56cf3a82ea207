package pullscheduler

import "context"
import "sync"

import "github.com/latticedb/dgm/pkg/clog"
import "github.com/latticedb/dgm/pkg/cluster"
import "github.com/latticedb/dgm/pkg/connpool"
import "github.com/latticedb/dgm/pkg/logmgr"
import "github.com/latticedb/dgm/pkg/snapshotmodel"


//=========================================== Pull Snapshot Scheduler


/*
	the Pull-Snapshot Scheduler materialises RemoteSnapshot placeholders installed in
	the log manager's per-slot cache when a membership change hands this member slots
	it does not yet hold data for.

	work is grouped by the slot's previous holder rather than one task per slot: each
	worker pulls every reassigned slot from a single source member over one task,
	following the same bounded-worker-pool idiom the pack's chunking examples use, sized
	to hardware parallelism rather than to the number of outstanding slots
*/

const NAME = "Pull-Snapshot Scheduler"

type pullTask struct {
	holder cluster.Node
	slots []cluster.Slot
}

type PullSchedulerOpts struct {
	LogManager *logmgr.LogManager
	ConnectionPool *connpool.ConnectionPool
	Port int
	LocalNode cluster.Node
	Width int
}

type PullScheduler struct {
	logManager *logmgr.LogManager
	connPool *connpool.ConnectionPool
	port string
	localNode cluster.Node

	taskQueue chan pullTask
	width int

	wg sync.WaitGroup
	stopOnce sync.Once
	cancel context.CancelFunc

	placeholders map[cluster.Slot]*snapshotmodel.RemoteSnapshot
	placeholdersMutex sync.Mutex

	log clog.CustomLog
}
