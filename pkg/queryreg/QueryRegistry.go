package queryreg

import "github.com/latticedb/dgm/pkg/external"


//=========================================== Query Session Registry


// getOrCreateSession returns the session for (requesterNode, queryId), creating it on
// first access -- querySingleSeries is the only caller expected to create one.
func (qr *QueryRegistry) getOrCreateSession(requesterNode string, queryId string) *session {
	key := sessionKey{ requesterNode: requesterNode, queryId: queryId }

	existing, loaded := qr.sessions.Load(key)
	if loaded { return existing.(*session) }

	fresh := &session{ readers: make(map[int64]external.PointReader) }
	actual, loaded := qr.sessions.LoadOrStore(key, fresh)
	if ! loaded { qr.sessionCount.Add(1) }

	return actual.(*session)
}

func (qr *QueryRegistry) getSession(requesterNode string, queryId string) (*session, bool) {
	key := sessionKey{ requesterNode: requesterNode, queryId: queryId }

	existing, loaded := qr.sessions.Load(key)
	if ! loaded { return nil, false }

	return existing.(*session), true
}

/*
	RegisterReader assigns the next local reader-id within the (requesterNode, queryId)
	session and stores the reader under it, creating the session if this is its first
	reader.
*/

func (qr *QueryRegistry) RegisterReader(requesterNode string, queryId string, reader external.PointReader) int64 {
	sess := qr.getOrCreateSession(requesterNode, queryId)

	sess.mutex.Lock()
	defer sess.mutex.Unlock()

	sess.nextReaderId++
	readerId := sess.nextReaderId
	sess.readers[readerId] = reader

	return readerId
}

func (qr *QueryRegistry) GetReader(requesterNode string, queryId string, readerId int64) (external.PointReader, bool) {
	sess, ok := qr.getSession(requesterNode, queryId)
	if ! ok { return nil, false }

	sess.mutex.Lock()
	defer sess.mutex.Unlock()

	reader, ok := sess.readers[readerId]
	return reader, ok
}

// EndQuery releases every reader registered under the session and drops the session
// itself, returning how many readers were released.
func (qr *QueryRegistry) EndQuery(requesterNode string, queryId string) int {
	key := sessionKey{ requesterNode: requesterNode, queryId: queryId }

	existing, loaded := qr.sessions.LoadAndDelete(key)
	if ! loaded { return 0 }

	qr.sessionCount.Add(-1)

	sess := existing.(*session)
	sess.mutex.Lock()
	defer sess.mutex.Unlock()

	released := len(sess.readers)
	sess.readers = make(map[int64]external.PointReader)

	return released
}

func (qr *QueryRegistry) SessionCount() int64 {
	return qr.sessionCount.Load()
}
