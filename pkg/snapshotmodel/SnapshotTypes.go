package snapshotmodel

import "github.com/latticedb/dgm/pkg/cluster"
import "github.com/latticedb/dgm/pkg/external"
import "github.com/latticedb/dgm/pkg/logmgr"


//=========================================== Snapshot Model


/*
	Snapshot is modeled as a tagged union with variants {Simple, File, Partitioned,
	Remote}. The single Remote variant (RemoteSnapshot) is a future/handle that may
	resolve to any of the other variants; accessing its contents resolves the handle,
	blocking the caller. The application function in pkg/member switches over the
	concrete types.
*/

type Kind int

const (
	KindSimple Kind = iota
	KindFile
	KindPartitioned
	KindRemote
)

type Snapshot interface {
	Kind() Kind
	LastIndex() int64
	LastTerm() int64
}

// RemoteFileRef names an immutable data file owned by another member of the cluster.
// Path segments end in .../{sequence|unsequence}/{storageGroup}/{fileName} -- the only
// positional information relied on when translating a remote path to a local staging path.
type RemoteFileRef struct {
	Source cluster.Node
	RemotePath string
	Md5 string
	HasModifications bool
	ModificationsPath string

	local bool
}

func (ref *RemoteFileRef) MarkLocal() { ref.local = true }
func (ref *RemoteFileRef) IsLocal() bool { return ref.local }

// SimpleSnapshot carries schemas plus an ordered batch of log operations.
type SimpleSnapshot struct {
	Schemas []external.MeasurementSchema
	Operations []*logmgr.LogEntry
	lastIndex int64
	lastTerm int64
}

func NewSimpleSnapshot(schemas []external.MeasurementSchema, ops []*logmgr.LogEntry, lastIndex int64, lastTerm int64) *SimpleSnapshot {
	return &SimpleSnapshot{ Schemas: schemas, Operations: ops, lastIndex: lastIndex, lastTerm: lastTerm }
}

func (s *SimpleSnapshot) Kind() Kind { return KindSimple }
func (s *SimpleSnapshot) LastIndex() int64 { return s.lastIndex }
func (s *SimpleSnapshot) LastTerm() int64 { return s.lastTerm }

// FileSnapshot carries schemas plus a set of remote file references.
type FileSnapshot struct {
	Schemas []external.MeasurementSchema
	Files []*RemoteFileRef
	lastIndex int64
	lastTerm int64
}

func NewFileSnapshot(schemas []external.MeasurementSchema, files []*RemoteFileRef, lastIndex int64, lastTerm int64) *FileSnapshot {
	return &FileSnapshot{ Schemas: schemas, Files: files, lastIndex: lastIndex, lastTerm: lastTerm }
}

func (f *FileSnapshot) Kind() Kind { return KindFile }
func (f *FileSnapshot) LastIndex() int64 { return f.lastIndex }
func (f *FileSnapshot) LastTerm() int64 { return f.lastTerm }

// PartitionedSnapshot maps slot -> (SimpleSnapshot | FileSnapshot).
type PartitionedSnapshot struct {
	PerSlot map[cluster.Slot]Snapshot
	lastIndex int64
	lastTerm int64
}

func NewPartitionedSnapshot(perSlot map[cluster.Slot]Snapshot, lastIndex int64, lastTerm int64) *PartitionedSnapshot {
	return &PartitionedSnapshot{ PerSlot: perSlot, lastIndex: lastIndex, lastTerm: lastTerm }
}

func (p *PartitionedSnapshot) Kind() Kind { return KindPartitioned }
func (p *PartitionedSnapshot) LastIndex() int64 { return p.lastIndex }
func (p *PartitionedSnapshot) LastTerm() int64 { return p.lastTerm }

func (p *PartitionedSnapshot) GetSnapshot(slot cluster.Slot) (Snapshot, bool) {
	snap, ok := p.PerSlot[slot]
	return snap, ok
}
