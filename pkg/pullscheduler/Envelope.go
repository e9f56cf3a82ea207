package pullscheduler

import "github.com/latticedb/dgm/pkg/grouprpc"
import "github.com/latticedb/dgm/pkg/snapshotmodel"


// decodeEnvelope turns a wire-level SnapshotEnvelope back into the tagged-union
// Snapshot the pulled slot's placeholder resolves to. A nil envelope or a decode
// failure returns nil; pullBatch skips that envelope, so its slot resolves to the
// fallback snapshot like any slot missing from the response. Only a response in
// which no envelope decodes is retried.
func decodeEnvelope(env *grouprpc.SnapshotEnvelope) snapshotmodel.Snapshot {
	if env == nil { return nil }

	snap, err := snapshotmodel.DecodeBytes(env.Payload)
	if err != nil { return nil }

	return snap
}
