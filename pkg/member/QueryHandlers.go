package member

import "context"
import "encoding/json"
import "strconv"

import "github.com/latticedb/dgm/pkg/queryrpc"
import "github.com/latticedb/dgm/pkg/utils"


//=========================================== Query RPC Handlers


/*
	QuerySingleSeries opens a reader over path and registers it under the caller's
	(requesterNode, queryId) session, returning the local reader-id the caller must
	present to every subsequent fetchSingleSeries/endQuery call for this reader. It
	fails outright rather than forwarding when this member cannot confirm it is
	caught up with the leader, since a registered reader is local state a forwarded
	retry could not pick back up.
*/

func (m *Member) QuerySingleSeries(ctx context.Context, req *queryrpc.QuerySingleSeriesRequest) (*queryrpc.QuerySingleSeriesResponse, error) {
	if syncErr := m.syncLeader(); syncErr != nil { return nil, syncErr }

	reader, openErr := m.collaborators.Query.OpenReader(req.Path, req.StartTime, req.EndTime)
	if openErr != nil { return nil, openErr }

	readerId := m.queryRegistry.RegisterReader(strconv.FormatInt(req.RequesterNodeId, 10), req.QueryId, reader)

	return &queryrpc.QuerySingleSeriesResponse{ ReaderId: readerId }, nil
}

func (m *Member) FetchSingleSeries(ctx context.Context, req *queryrpc.FetchSingleSeriesRequest) (*queryrpc.FetchSingleSeriesResponse, error) {
	reader, ok := m.queryRegistry.GetReader(strconv.FormatInt(req.RequesterNodeId, 10), req.QueryId, req.ReaderId)
	if ! ok { return nil, errUnknownReader }

	batchSize := int(req.BatchSize)
	if batchSize <= 0 { batchSize = defaultFetchBatchSize }

	times, values, _, nextErr := reader.Next(batchSize)
	if nextErr != nil { return nil, nextErr }

	points := make([][]byte, 0, len(times))
	for i := range times {
		// fetchedPoint carries a []byte field, which rules out utils.EncodeStructToBytes's
		// comparable type constraint -- encoding/json is used directly here instead.
		encoded, encodeErr := json.Marshal(fetchedPoint{ Time: times[i], Value: values[i] })
		if encodeErr != nil { return nil, encodeErr }

		points = append(points, encoded)
	}

	return &queryrpc.FetchSingleSeriesResponse{ Points: points, Exhausted: len(times) < batchSize }, nil
}

func (m *Member) EndQuery(ctx context.Context, req *queryrpc.EndQueryRequest) (*queryrpc.EndQueryResponse, error) {
	released := m.queryRegistry.EndQuery(strconv.FormatInt(req.RequesterNodeId, 10), req.QueryId)

	return &queryrpc.EndQueryResponse{ ReleasedReaders: int32(released) }, nil
}

func (m *Member) GetAllPaths(ctx context.Context, req *queryrpc.GetAllPathsRequest) (*queryrpc.GetAllPathsResponse, error) {
	paths, err := m.collaborators.Schemas.AllPaths(req.PathPrefix)
	if err != nil { return nil, err }

	return &queryrpc.GetAllPathsResponse{ Paths: paths }, nil
}

// PullTimeSeriesSchema serves matching schemas from local state when this member
// can confirm it is caught up with the leader, and forwards to the leader otherwise
// -- unlike QuerySingleSeries, this read carries no local session state, so a
// forwarded retry loses nothing.
func (m *Member) PullTimeSeriesSchema(ctx context.Context, req *queryrpc.PullTimeSeriesSchemaRequest) (*queryrpc.PullTimeSeriesSchemaResponse, error) {
	if syncErr := m.syncLeader(); syncErr != nil {
		return m.forwardPullTimeSeriesSchema(ctx, req)
	}

	schemas, err := m.collaborators.Schemas.MatchPrefix(req.PathPrefix)
	if err != nil { return nil, err }

	return &queryrpc.PullTimeSeriesSchemaResponse{ Schemas: schemas }, nil
}

func (m *Member) forwardPullTimeSeriesSchema(ctx context.Context, req *queryrpc.PullTimeSeriesSchemaRequest) (*queryrpc.PullTimeSeriesSchemaResponse, error) {
	leader, ok := m.leaderNode()
	if ! ok { return nil, errNoLeader }

	conn, connErr := m.connPool.GetConnection(leader.Addr, utils.NormalizePort(m.ports.Query))
	if connErr != nil { return nil, connErr }

	client := queryrpc.NewQueryServiceClient(conn)

	return client.PullTimeSeriesSchema(ctx, req)
}

/*
	ExecuteNonQuery forwards a write/administrative operation to the group leader when
	this member is not the leader, otherwise applies it directly -- the same
	forward-if-not-leader pattern used by PullSnapshot, applied to the write path this
	time instead of the read path.
*/

func (m *Member) ExecuteNonQuery(ctx context.Context, req *queryrpc.ExecuteNonQueryRequest) (*queryrpc.ExecuteNonQueryResponse, error) {
	if m.isLeader() {
		applyErr := m.collaborators.Query.ExecuteNonQuery(req.Operation)
		if applyErr != nil { return &queryrpc.ExecuteNonQueryResponse{ Applied: false }, applyErr }

		return &queryrpc.ExecuteNonQueryResponse{ Applied: true }, nil
	}

	leader, ok := m.leaderNode()
	if ! ok { return nil, errNoLeader }

	conn, connErr := m.connPool.GetConnection(leader.Addr, utils.NormalizePort(m.ports.Query))
	if connErr != nil { return nil, connErr }

	client := queryrpc.NewQueryServiceClient(conn)

	resp, err := client.ExecuteNonQuery(ctx, req)
	if err != nil { return nil, err }

	resp.ForwardedFromAddr = leader.Addr
	return resp, nil
}

type fetchedPoint struct {
	Time int64 `json:"time"`
	Value []byte `json:"value"`
}

const defaultFetchBatchSize = 256
