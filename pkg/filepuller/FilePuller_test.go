package filepuller

import "os"
import "path/filepath"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/latticedb/dgm/pkg/snapshotmodel"


func TestExistingSizeIsZeroForMissingFile(t *testing.T) {
	size, err := existingSize(filepath.Join(t.TempDir(), "missing.tsm"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)
}

func TestExistingSizeReportsPartiallyStagedBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.tsm")
	require.NoError(t, os.WriteFile(path, []byte("abcde"), 0o644))

	size, err := existingSize(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)
}

func TestPullRemoteFileSkipsTransferWhenAlreadyLocal(t *testing.T) {
	fp := NewFilePuller(FilePullerOpts{ StagingRoot: t.TempDir() })

	ref := &snapshotmodel.RemoteFileRef{ RemotePath: "/data/sequence/measurements/000001.tsm" }
	ref.MarkLocal()

	path, err := fp.PullRemoteFile(nil, ref, nil)
	require.NoError(t, err)
	assert.Equal(t, stagingPath(fp.stagingRoot, ref), path)
}

func TestPullRemoteFileFailsWithNoCandidates(t *testing.T) {
	fp := NewFilePuller(FilePullerOpts{ StagingRoot: t.TempDir() })

	ref := &snapshotmodel.RemoteFileRef{ RemotePath: "/data/sequence/measurements/000001.tsm" }

	_, err := fp.PullRemoteFile(nil, ref, nil)
	assert.Error(t, err)
}
