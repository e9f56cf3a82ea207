package external

import "github.com/latticedb/dgm/pkg/cluster"


//=========================================== External Collaborators


/*
	the core never constructs or imports a concrete implementation of any of these --
	they are injected into the Data Group Member's Factory as capability handles, per the
	cyclic-reference and singleton design notes: the metadata-group member owns the data
	group members by header key, and the data group member only borrows it back as a
	read-only capability
*/

// MeasurementSchema is opaque to the core; it is registered with the SchemaRegistry and
// carried inside Simple/File snapshots without being interpreted here.
type MeasurementSchema = []byte

// LogOperation is the opaque payload of a LogEntry; only the storage engine interprets it.
type LogOperation = []byte

// StorageEngine is the local storage engine collaborator: the core hands it committed
// operations to apply and pulled files to ingest, and never reads its file layout.
type StorageEngine interface {
	Apply(op LogOperation) error
	IngestFile(localPath string, storageGroup string) error
	AlreadyPulled(storageGroup string, fileName string) bool
}

// SchemaRegistry is the schema-registry collaborator.
type SchemaRegistry interface {
	Register(schema MeasurementSchema) error
	MatchPrefix(prefix string) ([]MeasurementSchema, error)
	AllPaths(prefix string) ([]string, error)
}

// DirectoryManager resolves sequence/unsequence storage directories used when
// translating a RemoteFileRef's remote path into a local staging path.
type DirectoryManager interface {
	SequenceDir(storageGroup string) string
	UnsequenceDir(storageGroup string) string
}

// FileReaderManager serves chunked reads of local files to remote peers; it is the
// server-side counterpart invoked by the File Puller's chunked transfer protocol.
type FileReaderManager interface {
	ReadChunk(path string, offset int64, length int32) ([]byte, error)
}

// PartitionTable is the metadata-group member's read-only capability: the single
// source of truth for slot -> header ownership, consulted on every snapshot apply
// and membership-driven slot migration.
type PartitionTable interface {
	HeaderFor(slot cluster.Slot) cluster.Node
	SlotsHeldBy(header cluster.Node) []cluster.Slot
	PreChangeHeaderFor(slot cluster.Slot) cluster.Node
}

// PointReader is the query-path collaborator returned by the storage engine for a
// single series, combining leader-synchronised local data with an optional time filter.
type PointReader interface {
	Next(n int) (times []int64, values [][]byte, dataType byte, err error)
}

// QueryEngine is the read-path collaborator: it opens PointReaders over a single
// series and applies non-query operations that must run on the leader. It is
// distinct from StorageEngine, which is the write/ingest-path collaborator.
type QueryEngine interface {
	OpenReader(path string, startTime int64, endTime int64) (PointReader, error)
	ExecuteNonQuery(op LogOperation) error
}
