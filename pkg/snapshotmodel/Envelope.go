package snapshotmodel

import "encoding/json"

import "github.com/latticedb/dgm/pkg/cluster"
import "github.com/latticedb/dgm/pkg/external"
import "github.com/latticedb/dgm/pkg/logmgr"


//=========================================== Snapshot Envelope Codec


/*
	EncodeBytes/DecodeBytes translate a Snapshot to and from the opaque payload carried
	on the wire by grouprpc.SnapshotEnvelope. RemoteSnapshot placeholders are never
	encoded directly -- the caller resolves or unwraps one before serialising, since a
	placeholder carries no materialised content of its own.
*/

type wireSimple struct {
	Schemas []external.MeasurementSchema `json:"schemas"`
	Operations []*logmgr.LogEntry `json:"operations"`
	LastIndex int64 `json:"last_index"`
	LastTerm int64 `json:"last_term"`
}

type wireFile struct {
	Schemas []external.MeasurementSchema `json:"schemas"`
	Files []*RemoteFileRef `json:"files"`
	LastIndex int64 `json:"last_index"`
	LastTerm int64 `json:"last_term"`
}

type wirePartitioned struct {
	PerSlot map[cluster.Slot]wireTagged `json:"per_slot"`
	LastIndex int64 `json:"last_index"`
	LastTerm int64 `json:"last_term"`
}

type wireTagged struct {
	Kind Kind `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

func EncodeBytes(snap Snapshot) ([]byte, error) {
	tagged, err := toTagged(snap)
	if err != nil { return nil, err }

	return json.Marshal(tagged)
}

func DecodeBytes(raw []byte) (Snapshot, error) {
	var tagged wireTagged
	if err := json.Unmarshal(raw, &tagged); err != nil { return nil, err }

	return fromTagged(tagged)
}

func toTagged(snap Snapshot) (wireTagged, error) {
	switch s := snap.(type) {
		case *SimpleSnapshot:
			payload, err := json.Marshal(wireSimple{ Schemas: s.Schemas, Operations: s.Operations, LastIndex: s.lastIndex, LastTerm: s.lastTerm })
			if err != nil { return wireTagged{}, err }
			return wireTagged{ Kind: KindSimple, Payload: payload }, nil

		case *FileSnapshot:
			payload, err := json.Marshal(wireFile{ Schemas: s.Schemas, Files: s.Files, LastIndex: s.lastIndex, LastTerm: s.lastTerm })
			if err != nil { return wireTagged{}, err }
			return wireTagged{ Kind: KindFile, Payload: payload }, nil

		case *PartitionedSnapshot:
			perSlot := make(map[cluster.Slot]wireTagged, len(s.PerSlot))
			for slot, sub := range s.PerSlot {
				subTagged, err := toTagged(sub)
				if err != nil { return wireTagged{}, err }
				perSlot[slot] = subTagged
			}

			payload, err := json.Marshal(wirePartitioned{ PerSlot: perSlot, LastIndex: s.lastIndex, LastTerm: s.lastTerm })
			if err != nil { return wireTagged{}, err }
			return wireTagged{ Kind: KindPartitioned, Payload: payload }, nil

		default:
			return wireTagged{}, errUnsupportedSnapshotKind(snap)
	}
}

func fromTagged(tagged wireTagged) (Snapshot, error) {
	switch tagged.Kind {
		case KindSimple:
			var w wireSimple
			if err := json.Unmarshal(tagged.Payload, &w); err != nil { return nil, err }
			return NewSimpleSnapshot(w.Schemas, w.Operations, w.LastIndex, w.LastTerm), nil

		case KindFile:
			var w wireFile
			if err := json.Unmarshal(tagged.Payload, &w); err != nil { return nil, err }
			return NewFileSnapshot(w.Schemas, w.Files, w.LastIndex, w.LastTerm), nil

		case KindPartitioned:
			var w wirePartitioned
			if err := json.Unmarshal(tagged.Payload, &w); err != nil { return nil, err }

			perSlot := make(map[cluster.Slot]Snapshot, len(w.PerSlot))
			for slot, sub := range w.PerSlot {
				decoded, err := fromTagged(sub)
				if err != nil { return nil, err }
				perSlot[slot] = decoded
			}

			return NewPartitionedSnapshot(perSlot, w.LastIndex, w.LastTerm), nil

		default:
			return nil, errUnsupportedWireKind(tagged.Kind)
	}
}
