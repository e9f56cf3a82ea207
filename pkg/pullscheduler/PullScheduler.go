package pullscheduler

import "context"
import "errors"
import "runtime"
import "time"

import "github.com/google/uuid"

import "github.com/latticedb/dgm/pkg/clog"
import "github.com/latticedb/dgm/pkg/cluster"
import "github.com/latticedb/dgm/pkg/grouprpc"
import "github.com/latticedb/dgm/pkg/snapshotmodel"
import "github.com/latticedb/dgm/pkg/utils"


const pullRPCTimeout = 5 * time.Second

var errDecodeFailed = errors.New("pullscheduler: could not decode snapshot envelope")

func NewPullScheduler(opts PullSchedulerOpts) *PullScheduler {
	width := opts.Width
	if width <= 0 { width = runtime.NumCPU() }

	return &PullScheduler{
		logManager: opts.LogManager,
		connPool: opts.ConnectionPool,
		port: utils.NormalizePort(opts.Port),
		localNode: opts.LocalNode,
		taskQueue: make(chan pullTask, 1024),
		width: width,
		placeholders: make(map[cluster.Slot]*snapshotmodel.RemoteSnapshot),
		log: *clog.NewCustomLog(NAME),
	}
}

/*
	Start launches the bounded worker pool. Each worker pulls tasks off the shared
	queue until the scheduler is stopped -- width is fixed for the scheduler's
	lifetime, matching the pack's fixed-size worker-pool idiom rather than growing
	with outstanding work.
*/

func (ps *PullScheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	ps.cancel = cancel

	for i := 0; i < ps.width; i++ {
		ps.wg.Add(1)
		go ps.worker(ctx)
	}
}

// Stop force-terminates every in-flight pull: queued and in-progress RPCs are
// abandoned immediately rather than drained, per the member shutdown contract.
func (ps *PullScheduler) Stop() {
	ps.stopOnce.Do(func() {
		if ps.cancel != nil { ps.cancel() }
		ps.wg.Wait()
	})
}

func (ps *PullScheduler) worker(ctx context.Context) {
	defer ps.wg.Done()

	for {
		select {
			case <- ctx.Done():
				return
			case task := <- ps.taskQueue:
				ps.runTask(ctx, task)
		}
	}
}

/*
	Schedule accepts a map of previous-holder -> reassigned slots, computed by the
	caller from a partition table diff after a membership change. For every slot with
	no cached snapshot yet, a RemoteSnapshot placeholder is installed in the log
	manager's per-slot cache under Lock() before the task is queued, so a concurrent
	pullSnapshot RPC handler observing the slot sees a resolvable placeholder rather
	than a cache miss. A slot that already has a cached snapshot keeps it (the
	placeholder's lastIndex of -1 never replaces an entry); its placeholder is still
	tracked and resolved by the task.
*/

func (ps *PullScheduler) Schedule(reassigned map[cluster.Node][]cluster.Slot) {
	ps.logManager.Lock()
	for _, slots := range reassigned {
		for _, slot := range slots {
			placeholder := snapshotmodel.NewRemoteSnapshot()

			ps.placeholdersMutex.Lock()
			ps.placeholders[slot] = placeholder
			ps.placeholdersMutex.Unlock()

			ps.logManager.SetSlotSnapshotLocked(slot, placeholder)
		}
	}
	ps.logManager.Unlock()

	for holder, slots := range reassigned {
		ps.taskQueue <- pullTask{ holder: holder, slots: slots }
	}
}

func (ps *PullScheduler) runTask(ctx context.Context, task pullTask) {
	conn, connErr := ps.connPool.GetConnection(task.holder.Addr, ps.port)
	if connErr != nil {
		ps.log.Error("cannot reach previous holder", task.holder.Addr, "for", len(task.slots), "slots:", connErr.Error())
		return
	}

	client := grouprpc.NewGroupServiceClient(conn)

	ps.pullBatch(ctx, client, task.holder, task.slots)
}

/*
	pullBatch issues one pullSnapshot RPC covering every slot previously held by
	holder, retrying the whole batch with exponential backoff before giving up.
	A RemoteSnapshot placeholder is a one-shot future, so every slot this task
	tracks must be resolved by the end of this call: any slot the holder's
	response doesn't carry an envelope for (because it no longer holds it, or
	every retry failed) resolves to an empty SimpleSnapshot rather than being
	left pending, so a caller blocked on RemoteSnapshot.Get() is never stuck
	forever.
*/

func (ps *PullScheduler) pullBatch(ctx context.Context, client grouprpc.GroupServiceClient, holder cluster.Node, slots []cluster.Slot) {
	tracked := make(map[cluster.Slot]*snapshotmodel.RemoteSnapshot, len(slots))

	ps.placeholdersMutex.Lock()
	for _, slot := range slots {
		if placeholder, ok := ps.placeholders[slot]; ok { tracked[slot] = placeholder }
		delete(ps.placeholders, slot)
	}
	ps.placeholdersMutex.Unlock()

	if len(tracked) == 0 { return }

	wireSlots := make([]int64, 0, len(tracked))
	for slot := range tracked {
		wireSlots = append(wireSlots, int64(slot))
	}

	attempt := func() (map[cluster.Slot]snapshotmodel.Snapshot, error) {
		rpcCtx, cancel := context.WithTimeout(ctx, pullRPCTimeout)
		defer cancel()

		resp, err := client.PullSnapshot(rpcCtx, &grouprpc.PullSnapshotRequest{
			Slots: wireSlots,
			RequesterNodeId: ps.localNode.NodeId,
			CorrelationId: uuid.NewString(),
		})
		if err != nil { return nil, err }

		resolved := make(map[cluster.Slot]snapshotmodel.Snapshot, len(resp.Envelopes))
		for _, env := range resp.Envelopes {
			snap := decodeEnvelope(env)
			if snap == nil { continue }

			resolved[cluster.Slot(env.Slot)] = snap
		}

		if len(resolved) == 0 { return nil, errDecodeFailed }

		return resolved, nil
	}

	maxRetries := utils.DefaultMaxRetries
	backoff := utils.NewExponentialBackoffStrat[map[cluster.Slot]snapshotmodel.Snapshot](utils.ExpBackoffOpts{ MaxRetries: &maxRetries, TimeoutInMilliseconds: 50 })

	resolved, err := backoff.PerformBackoff(attempt)
	if err != nil {
		ps.log.Error("pullSnapshot exhausted retries for", len(tracked), "slots against", holder.Addr, ":", err.Error())
		resolved = nil
	}

	// placeholders are resolved before taking the log manager's lock: a pullSnapshot
	// handler or snapshot apply may be blocked in Get() while holding that lock
	final := make(map[cluster.Slot]snapshotmodel.Snapshot, len(tracked))
	for slot, placeholder := range tracked {
		snap, ok := resolved[slot]
		if ! ok { snap = snapshotmodel.NewSimpleSnapshot(nil, nil, -1, -1) }

		placeholder.Resolve(snap)
		final[slot] = snap
	}

	ps.logManager.Lock()
	for slot, snap := range final {
		ps.logManager.SetSlotSnapshotLocked(slot, snap)
	}
	ps.logManager.Unlock()
}
