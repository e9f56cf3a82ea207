package logmgr

import "encoding/binary"

import "github.com/latticedb/dgm/pkg/external"


// LogEntry is an opaque operation with a monotonic (term, index). Committed entries
// are applied to local storage in index order.
type LogEntry struct {
	Index int64
	Term int64
	Command external.LogOperation
}

func encodeIndex(index int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(index))

	return key
}

func decodeIndex(key []byte) int64 {
	if len(key) != 8 { return 0 }
	return int64(binary.BigEndian.Uint64(key))
}

func encodeEntry(entry *LogEntry) []byte {
	buf := make([]byte, 16 + len(entry.Command))
	binary.BigEndian.PutUint64(buf[0:8], uint64(entry.Index))
	binary.BigEndian.PutUint64(buf[8:16], uint64(entry.Term))
	copy(buf[16:], entry.Command)

	return buf
}

func decodeEntry(val []byte) *LogEntry {
	if len(val) < 16 { return nil }

	return &LogEntry{
		Index: int64(binary.BigEndian.Uint64(val[0:8])),
		Term: int64(binary.BigEndian.Uint64(val[8:16])),
		Command: val[16:],
	}
}
