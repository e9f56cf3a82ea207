package member

import "context"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/latticedb/dgm/pkg/clog"
import "github.com/latticedb/dgm/pkg/filerpc"


type fakeDirectoryManager struct {
	sequenceDir string
	unsequenceDir string
}

func (f *fakeDirectoryManager) SequenceDir(storageGroup string) string { return f.sequenceDir }
func (f *fakeDirectoryManager) UnsequenceDir(storageGroup string) string { return f.unsequenceDir }

type fakeFileReaderManager struct {
	byPath map[string][]byte
}

func (f *fakeFileReaderManager) ReadChunk(path string, offset int64, length int32) ([]byte, error) {
	data, ok := f.byPath[path]
	if ! ok { return nil, nil }

	end := offset + int64(length)
	if end > int64(len(data)) { end = int64(len(data)) }
	if offset >= int64(len(data)) { return nil, nil }

	return data[offset:end], nil
}

func newTestMemberForFile(dirs *fakeDirectoryManager, reader *fakeFileReaderManager) *Member {
	return &Member{
		collaborators: Collaborators{ Directories: dirs, FileReader: reader },
		log: *clog.NewCustomLog("test"),
	}
}

func TestReadFileServesFromSequenceDirWhenPresent(t *testing.T) {
	dirs := &fakeDirectoryManager{ sequenceDir: "/seq", unsequenceDir: "/unseq" }
	reader := &fakeFileReaderManager{ byPath: map[string][]byte{ "/seq/file.tsm": []byte("hello") } }
	m := newTestMemberForFile(dirs, reader)

	resp, err := m.ReadFile(context.Background(), &filerpc.ReadFileRequest{
		StorageGroup: "sg", FileName: "file.tsm", Offset: 0, ChunkSize: 64,
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), resp.Data)
	assert.True(t, resp.Eof)
}

func TestReadFileFallsBackToUnsequenceDirWhenSequenceDirIsEmpty(t *testing.T) {
	dirs := &fakeDirectoryManager{ sequenceDir: "/seq", unsequenceDir: "/unseq" }
	reader := &fakeFileReaderManager{ byPath: map[string][]byte{ "/unseq/file.tsm": []byte("fallback") } }
	m := newTestMemberForFile(dirs, reader)

	resp, err := m.ReadFile(context.Background(), &filerpc.ReadFileRequest{
		StorageGroup: "sg", FileName: "file.tsm", Offset: 0, ChunkSize: 64,
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("fallback"), resp.Data)
}

func TestReadFileMarksEofOnlyOnceDataIsShorterThanChunkSize(t *testing.T) {
	dirs := &fakeDirectoryManager{ sequenceDir: "/seq", unsequenceDir: "/unseq" }
	reader := &fakeFileReaderManager{ byPath: map[string][]byte{ "/seq/file.tsm": []byte("0123456789") } }
	m := newTestMemberForFile(dirs, reader)

	resp, err := m.ReadFile(context.Background(), &filerpc.ReadFileRequest{
		StorageGroup: "sg", FileName: "file.tsm", Offset: 0, ChunkSize: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("01234"), resp.Data)
	assert.False(t, resp.Eof)
}
