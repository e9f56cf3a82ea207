package filepuller

import "path/filepath"
import "strconv"

import "github.com/latticedb/dgm/pkg/snapshotmodel"


//=========================================== Staging Path


/*
	stagingPath mirrors a remote data file's position under this member's local staging
	tree, keyed by the id of the node the file is being pulled from, then its storage
	group and file name: {stagingRoot}/{nodeId}/{storageGroup}/{fileName}

	storageGroup/fileName are recovered from the tail of RemotePath; exactly two path
	segments are assumed, which is the limit of the duplicate-file detection this module
	performs -- two distinct remote paths that share their final two segments but differ
	further up the tree collide onto the same staging path
*/

func stagingPath(root string, ref *snapshotmodel.RemoteFileRef) string {
	storageGroup, fileName := splitTail(ref.RemotePath)
	return filepath.Join(root, strconv.FormatInt(ref.Source.NodeId, 10), storageGroup, fileName)
}

func splitTail(remotePath string) (storageGroup string, fileName string) {
	fileName = filepath.Base(remotePath)
	storageGroup = filepath.Base(filepath.Dir(remotePath))

	return storageGroup, fileName
}
