package logmgr

import "bytes"

import bolt "go.etcd.io/bbolt"


//=========================================== Log Append/Read


/*
	Append:
		append a single entry to the durable log, taking the log manager's exclusive lock
*/

func (lm *LogManager) Append(entry *LogEntry) error {
	lm.mutex.Lock()
	defer lm.mutex.Unlock()

	return lm.appendLocked(entry)
}

func (lm *LogManager) appendLocked(entry *LogEntry) error {
	transaction := func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(LogBucket))
		return bucket.Put(encodeIndex(entry.Index), encodeEntry(entry))
	}

	return lm.db.Update(transaction)
}

// RangeAppend appends a batch of entries in the order given, in one critical
// section; it takes the log manager's lock itself.
func (lm *LogManager) RangeAppend(entries []*LogEntry) error {
	lm.mutex.Lock()
	defer lm.mutex.Unlock()

	for _, entry := range entries {
		appendErr := lm.appendLocked(entry)
		if appendErr != nil { return appendErr }
	}

	return nil
}

func (lm *LogManager) Read(index int64) (*LogEntry, error) {
	var entry *LogEntry

	transaction := func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(LogBucket))
		val := bucket.Get(encodeIndex(index))
		if val != nil { entry = decodeEntry(val) }

		return nil
	}

	readErr := lm.db.View(transaction)
	if readErr != nil { return nil, readErr }

	return entry, nil
}

func (lm *LogManager) GetRange(startIndex int64, endIndex int64) ([]*LogEntry, error) {
	var entries []*LogEntry

	transaction := func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(LogBucket))
		cursor := bucket.Cursor()

		startKey := encodeIndex(startIndex)
		endKey := encodeIndex(endIndex)

		for key, val := cursor.Seek(startKey); key != nil && bytes.Compare(key, endKey) <= 0; key, val = cursor.Next() {
			if val != nil { entries = append(entries, decodeEntry(val)) }
		}

		return nil
	}

	readErr := lm.db.View(transaction)
	if readErr != nil { return nil, readErr }

	return entries, nil
}

func (lm *LogManager) DeleteLogs(endIndex int64) error {
	lm.mutex.Lock()
	defer lm.mutex.Unlock()

	transaction := func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(LogBucket))
		cursor := bucket.Cursor()

		endKey := encodeIndex(endIndex)

		for key, _ := cursor.First(); key != nil && bytes.Compare(key, endKey) <= 0; key, _ = cursor.Next() {
			delErr := bucket.Delete(key)
			if delErr != nil { return delErr }
		}

		return nil
	}

	return lm.db.Update(transaction)
}
