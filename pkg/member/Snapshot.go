package member

import "context"
import "errors"
import "path/filepath"

import "github.com/latticedb/dgm/pkg/cluster"
import "github.com/latticedb/dgm/pkg/snapshotmodel"


//=========================================== Snapshot Apply


/*
	ApplySnapshot dispatches exhaustively over Kind() and installs the result into the
	log manager under one critical section, per the mutual-exclusion guarantee between
	log append and snapshot install: a RemoteSnapshot is resolved (blocking) before its
	contents are applied, so the caller never observes a half-applied placeholder.
*/

func (m *Member) ApplySnapshot(slot cluster.Slot, snap snapshotmodel.Snapshot) error {
	m.logManager.Lock()
	defer m.logManager.Unlock()

	return m.applySnapshotLocked(slot, snap)
}

func (m *Member) applySnapshotLocked(slot cluster.Slot, snap snapshotmodel.Snapshot) error {
	switch s := snap.(type) {
		case *snapshotmodel.SimpleSnapshot:
			return m.applySimpleLocked(slot, s)

		case *snapshotmodel.FileSnapshot:
			return m.applyFileLocked(slot, s)

		case *snapshotmodel.PartitionedSnapshot:
			for subSlot, sub := range s.PerSlot {
				if m.collaborators.PartitionTable.HeaderFor(subSlot) != m.self { continue }

				if err := m.applySnapshotLocked(subSlot, sub); err != nil { return err }
			}

			m.logManager.InstallLastLocked(s.LastIndex(), s.LastTerm())
			return nil

		case *snapshotmodel.RemoteSnapshot:
			resolved := s.Get()
			return m.applySnapshotLocked(slot, resolved)

		default:
			return errors.New("member: unsupported snapshot kind during apply")
	}
}

func (m *Member) applySimpleLocked(slot cluster.Slot, s *snapshotmodel.SimpleSnapshot) error {
	for _, schema := range s.Schemas {
		if err := m.collaborators.Schemas.Register(schema); err != nil { return err }
	}

	for _, op := range s.Operations {
		if err := m.collaborators.Storage.Apply(op.Command); err != nil {
			m.log.Warn("dropping log entry", op.Index, "from simple snapshot for slot", slot, ":", err.Error())
			continue
		}
	}

	m.logManager.SetSlotSnapshotLocked(slot, s)
	m.logManager.InstallLastLocked(s.LastIndex(), s.LastTerm())

	return nil
}

func (m *Member) applyFileLocked(slot cluster.Slot, s *snapshotmodel.FileSnapshot) error {
	for _, schema := range s.Schemas {
		if err := m.collaborators.Schemas.Register(schema); err != nil { return err }
	}

	for _, ref := range s.Files {
		group, name := refStorageGroupAndName(ref)
		if m.collaborators.Storage.AlreadyPulled(group, name) {
			ref.MarkLocal()
			continue
		}

		localPath, pullErr := m.filePuller.PullRemoteFile(context.Background(), ref, m.candidatesFor(slot, ref))
		if pullErr != nil { return pullErr }

		if ingestErr := m.collaborators.Storage.IngestFile(localPath, group); ingestErr != nil { return ingestErr }
	}

	m.logManager.SetSlotSnapshotLocked(slot, s)
	m.logManager.InstallLastLocked(s.LastIndex(), s.LastTerm())

	return nil
}

// refStorageGroupAndName recovers the storage group and file name from a remote
// file reference's path tail -- the same two-segment assumption the file puller's
// staging path derivation relies on.
func refStorageGroupAndName(ref *snapshotmodel.RemoteFileRef) (storageGroup string, fileName string) {
	fileName = filepath.Base(ref.RemotePath)
	storageGroup = filepath.Base(filepath.Dir(ref.RemotePath))

	return storageGroup, fileName
}

// candidatesFor is the list of nodes a file is pulled from: the reference's own
// source first, then every other member of this member's own partition group, so an
// unreachable single replica does not stall the pull. slot is not consulted.
func (m *Member) candidatesFor(slot cluster.Slot, ref *snapshotmodel.RemoteFileRef) []cluster.Node {
	group := m.Group()

	candidates := []cluster.Node{ ref.Source }
	for _, peer := range group.Members {
		if peer.NodeId != ref.Source.NodeId { candidates = append(candidates, peer) }
	}

	return candidates
}
