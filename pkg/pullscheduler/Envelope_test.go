package pullscheduler

import "testing"

import "github.com/stretchr/testify/assert"

import "github.com/latticedb/dgm/pkg/grouprpc"
import "github.com/latticedb/dgm/pkg/snapshotmodel"

func TestDecodeEnvelopeReturnsNilForNilEnvelope(t *testing.T) {
	assert.Nil(t, decodeEnvelope(nil))
}

func TestDecodeEnvelopeReturnsNilForBadPayload(t *testing.T) {
	assert.Nil(t, decodeEnvelope(&grouprpc.SnapshotEnvelope{ Payload: []byte("not json") }))
}

func TestDecodeEnvelopeDecodesAValidEnvelope(t *testing.T) {
	raw, err := snapshotmodel.EncodeBytes(snapshotmodel.NewSimpleSnapshot(nil, nil, 3, 1))
	assert.NoError(t, err)

	snap := decodeEnvelope(&grouprpc.SnapshotEnvelope{ Payload: raw })
	assert.Equal(t, int64(3), snap.LastIndex())
}
