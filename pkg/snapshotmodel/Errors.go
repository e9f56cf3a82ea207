package snapshotmodel

import "fmt"


func errUnsupportedSnapshotKind(snap Snapshot) error {
	return fmt.Errorf("snapshotmodel: cannot encode snapshot of kind %d onto the wire", snap.Kind())
}

func errUnsupportedWireKind(kind Kind) error {
	return fmt.Errorf("snapshotmodel: cannot decode wire snapshot of kind %d", kind)
}
