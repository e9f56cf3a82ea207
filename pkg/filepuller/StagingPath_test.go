package filepuller

import "path/filepath"
import "testing"

import "github.com/stretchr/testify/assert"

import "github.com/latticedb/dgm/pkg/cluster"
import "github.com/latticedb/dgm/pkg/snapshotmodel"


func TestSplitTailRecoversStorageGroupAndFileName(t *testing.T) {
	storageGroup, fileName := splitTail("/data/sequence/measurements/000001.tsm")

	assert.Equal(t, "measurements", storageGroup)
	assert.Equal(t, "000001.tsm", fileName)
}

func TestStagingPathIsKeyedByNodeIdThenStorageGroupThenFileName(t *testing.T) {
	ref := &snapshotmodel.RemoteFileRef{
		Source: cluster.Node{ NodeId: 7 },
		RemotePath: "/data/sequence/measurements/000001.tsm",
	}

	got := stagingPath("/staging", ref)
	assert.Equal(t, filepath.Join("/staging", "7", "measurements", "000001.tsm"), got)
}
