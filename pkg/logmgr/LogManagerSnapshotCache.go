package logmgr

import bolt "go.etcd.io/bbolt"

import "github.com/latticedb/dgm/pkg/cluster"


//=========================================== Per-Slot Snapshot Cache


/*
	Set Slot Snapshot Locked:
		a slot's snapshot, once materialised from a non-remote variant, is authoritative:
		subsequent applies to the same slot replace it only if they carry a strictly
		greater lastIndex; assumes the caller already holds Lock()
*/

func (lm *LogManager) SetSlotSnapshotLocked(slot cluster.Slot, snap SlotSnapshot) {
	current, exists := lm.slotSnapshots[slot]
	if ! exists || snap.LastIndex() > current.LastIndex() {
		lm.slotSnapshots[slot] = snap
	}
}

func (lm *LogManager) GetSlotSnapshotLocked(slot cluster.Slot) (SlotSnapshot, bool) {
	snap, ok := lm.slotSnapshots[slot]
	return snap, ok
}

func (lm *LogManager) GetSlotSnapshot(slot cluster.Slot) (SlotSnapshot, bool) {
	lm.mutex.Lock()
	defer lm.mutex.Unlock()

	return lm.GetSlotSnapshotLocked(slot)
}

// SnapshotAllLocked returns a shallow copy of every cached per-slot snapshot along
// with the current last-log position, for materialising a PartitionedSnapshot reply
// to the pullSnapshot RPC. Assumes the caller already holds Lock().
func (lm *LogManager) SnapshotAllLocked() (map[cluster.Slot]SlotSnapshot, int64, int64) {
	copied := make(map[cluster.Slot]SlotSnapshot, len(lm.slotSnapshots))
	for slot, snap := range lm.slotSnapshots { copied[slot] = snap }

	return copied, lm.lastIndex, lm.lastTerm
}

/*
	Install Last Locked:
		the log manager's lastIndex is monotonic non-decreasing; on snapshot install it is
		set to the snapshot's lastIndex and never decreases thereafter -- concurrent
		installs observe a total order under Lock(), so the post-state always equals
		max(pre-state, installed lastIndex)
*/

func (lm *LogManager) InstallLastLocked(lastIndex int64, lastTerm int64) {
	if lastIndex >= lm.lastIndex {
		lm.lastIndex = lastIndex
		lm.lastTerm = lastTerm

		lm.persistLastLocked()
	}
}

func (lm *LogManager) LastLocked() (int64, int64) {
	return lm.lastIndex, lm.lastTerm
}

func (lm *LogManager) Last() (int64, int64) {
	lm.mutex.Lock()
	defer lm.mutex.Unlock()

	return lm.LastLocked()
}

func (lm *LogManager) persistLastLocked() {
	transaction := func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(MetaBucket))

		putErr := bucket.Put([]byte(LastIndexKey), encodeIndex(lm.lastIndex))
		if putErr != nil { return putErr }

		return bucket.Put([]byte(LastTermKey), encodeIndex(lm.lastTerm))
	}

	// best-effort: in-memory lastIndex/lastTerm remain authoritative for this process
	// even if the meta bucket write below fails; the next successful install retries it
	_ = lm.db.Update(transaction)
}
