package logmgr

import "path/filepath"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"


type fakeSlotSnapshot struct {
	lastIndex int64
	lastTerm int64
}

func (f fakeSlotSnapshot) LastIndex() int64 { return f.lastIndex }
func (f fakeSlotSnapshot) LastTerm() int64 { return f.lastTerm }

func newTestLogManager(t *testing.T) *LogManager {
	dir := t.TempDir()
	lm, openErr := NewLogManager(LogManagerOpts{ DBPath: filepath.Join(dir, "log.db") })
	require.NoError(t, openErr)

	t.Cleanup(func() { lm.Close() })

	return lm
}

func TestAppendAndRead(t *testing.T) {
	lm := newTestLogManager(t)

	appendErr := lm.Append(&LogEntry{ Index: 1, Term: 1, Command: []byte("op-1") })
	require.NoError(t, appendErr)

	entry, readErr := lm.Read(1)
	require.NoError(t, readErr)
	require.NotNil(t, entry)
	assert.Equal(t, []byte("op-1"), []byte(entry.Command))
}

func TestGetRange(t *testing.T) {
	lm := newTestLogManager(t)

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, lm.Append(&LogEntry{ Index: i, Term: 1, Command: []byte("op") }))
	}

	entries, rangeErr := lm.GetRange(2, 4)
	require.NoError(t, rangeErr)
	assert.Len(t, entries, 3)
}

func TestInstallLastIsMonotonic(t *testing.T) {
	lm := newTestLogManager(t)

	lm.Lock()
	lm.InstallLastLocked(10, 1)
	lm.InstallLastLocked(5, 1) // must not regress
	lm.Unlock()

	index, term := lm.Last()
	assert.Equal(t, int64(10), index)
	assert.Equal(t, int64(1), term)
}

func TestSlotSnapshotReplacedOnlyOnStrictlyGreaterIndex(t *testing.T) {
	lm := newTestLogManager(t)

	lm.Lock()
	lm.SetSlotSnapshotLocked(3, fakeSlotSnapshot{ lastIndex: 10 })
	lm.SetSlotSnapshotLocked(3, fakeSlotSnapshot{ lastIndex: 10 }) // equal index, not replaced
	lm.Unlock()

	snap, ok := lm.GetSlotSnapshot(3)
	require.True(t, ok)
	assert.Equal(t, int64(10), snap.LastIndex())

	lm.Lock()
	lm.SetSlotSnapshotLocked(3, fakeSlotSnapshot{ lastIndex: 20 })
	lm.Unlock()

	snap, _ = lm.GetSlotSnapshot(3)
	assert.Equal(t, int64(20), snap.LastIndex())
}

