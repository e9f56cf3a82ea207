package queryrpc

import "context"

import "google.golang.org/grpc"


//=========================================== Query RPC


/*
	wire surface for the query path: querySingleSeries opens a reader and
	registers it in the Query Session Registry, fetchSingleSeries pages through it,
	endQuery releases every reader registered under a (requesterNode, queryId) pair,
	getAllPaths and pullTimeSeriesSchema serve schema/path discovery, and
	executeNonQuery forwards a write/administrative operation to the leader
*/

type QuerySingleSeriesRequest struct {
	QueryId string `protobuf:"bytes,1,opt,name=query_id,proto3" json:"query_id,omitempty"`
	RequesterNodeId int64 `protobuf:"varint,2,opt,name=requester_node_id,proto3" json:"requester_node_id,omitempty"`
	Path string `protobuf:"bytes,3,opt,name=path,proto3" json:"path,omitempty"`
	StartTime int64 `protobuf:"varint,4,opt,name=start_time,proto3" json:"start_time,omitempty"`
	EndTime int64 `protobuf:"varint,5,opt,name=end_time,proto3" json:"end_time,omitempty"`
}

func (m *QuerySingleSeriesRequest) Reset() { *m = QuerySingleSeriesRequest{} }
func (m *QuerySingleSeriesRequest) String() string { return "QuerySingleSeriesRequest" }
func (m *QuerySingleSeriesRequest) ProtoMessage() {}

type QuerySingleSeriesResponse struct {
	ReaderId int64 `protobuf:"varint,1,opt,name=reader_id,proto3" json:"reader_id,omitempty"`
}

func (m *QuerySingleSeriesResponse) Reset() { *m = QuerySingleSeriesResponse{} }
func (m *QuerySingleSeriesResponse) String() string { return "QuerySingleSeriesResponse" }
func (m *QuerySingleSeriesResponse) ProtoMessage() {}

type FetchSingleSeriesRequest struct {
	QueryId string `protobuf:"bytes,1,opt,name=query_id,proto3" json:"query_id,omitempty"`
	RequesterNodeId int64 `protobuf:"varint,2,opt,name=requester_node_id,proto3" json:"requester_node_id,omitempty"`
	ReaderId int64 `protobuf:"varint,3,opt,name=reader_id,proto3" json:"reader_id,omitempty"`
	BatchSize int32 `protobuf:"varint,4,opt,name=batch_size,proto3" json:"batch_size,omitempty"`
}

func (m *FetchSingleSeriesRequest) Reset() { *m = FetchSingleSeriesRequest{} }
func (m *FetchSingleSeriesRequest) String() string { return "FetchSingleSeriesRequest" }
func (m *FetchSingleSeriesRequest) ProtoMessage() {}

type FetchSingleSeriesResponse struct {
	Points [][]byte `protobuf:"bytes,1,rep,name=points,proto3" json:"points,omitempty"`
	Exhausted bool `protobuf:"varint,2,opt,name=exhausted,proto3" json:"exhausted,omitempty"`
}

func (m *FetchSingleSeriesResponse) Reset() { *m = FetchSingleSeriesResponse{} }
func (m *FetchSingleSeriesResponse) String() string { return "FetchSingleSeriesResponse" }
func (m *FetchSingleSeriesResponse) ProtoMessage() {}

type EndQueryRequest struct {
	QueryId string `protobuf:"bytes,1,opt,name=query_id,proto3" json:"query_id,omitempty"`
	RequesterNodeId int64 `protobuf:"varint,2,opt,name=requester_node_id,proto3" json:"requester_node_id,omitempty"`
}

func (m *EndQueryRequest) Reset() { *m = EndQueryRequest{} }
func (m *EndQueryRequest) String() string { return "EndQueryRequest" }
func (m *EndQueryRequest) ProtoMessage() {}

type EndQueryResponse struct {
	ReleasedReaders int32 `protobuf:"varint,1,opt,name=released_readers,proto3" json:"released_readers,omitempty"`
}

func (m *EndQueryResponse) Reset() { *m = EndQueryResponse{} }
func (m *EndQueryResponse) String() string { return "EndQueryResponse" }
func (m *EndQueryResponse) ProtoMessage() {}

type GetAllPathsRequest struct {
	PathPrefix string `protobuf:"bytes,1,opt,name=path_prefix,proto3" json:"path_prefix,omitempty"`
}

func (m *GetAllPathsRequest) Reset() { *m = GetAllPathsRequest{} }
func (m *GetAllPathsRequest) String() string { return "GetAllPathsRequest" }
func (m *GetAllPathsRequest) ProtoMessage() {}

type GetAllPathsResponse struct {
	Paths []string `protobuf:"bytes,1,rep,name=paths,proto3" json:"paths,omitempty"`
}

func (m *GetAllPathsResponse) Reset() { *m = GetAllPathsResponse{} }
func (m *GetAllPathsResponse) String() string { return "GetAllPathsResponse" }
func (m *GetAllPathsResponse) ProtoMessage() {}

type PullTimeSeriesSchemaRequest struct {
	PathPrefix string `protobuf:"bytes,1,opt,name=path_prefix,proto3" json:"path_prefix,omitempty"`
}

func (m *PullTimeSeriesSchemaRequest) Reset() { *m = PullTimeSeriesSchemaRequest{} }
func (m *PullTimeSeriesSchemaRequest) String() string { return "PullTimeSeriesSchemaRequest" }
func (m *PullTimeSeriesSchemaRequest) ProtoMessage() {}

type PullTimeSeriesSchemaResponse struct {
	Schemas [][]byte `protobuf:"bytes,1,rep,name=schemas,proto3" json:"schemas,omitempty"`
}

func (m *PullTimeSeriesSchemaResponse) Reset() { *m = PullTimeSeriesSchemaResponse{} }
func (m *PullTimeSeriesSchemaResponse) String() string { return "PullTimeSeriesSchemaResponse" }
func (m *PullTimeSeriesSchemaResponse) ProtoMessage() {}

type ExecuteNonQueryRequest struct {
	Operation []byte `protobuf:"bytes,1,opt,name=operation,proto3" json:"operation,omitempty"`
}

func (m *ExecuteNonQueryRequest) Reset() { *m = ExecuteNonQueryRequest{} }
func (m *ExecuteNonQueryRequest) String() string { return "ExecuteNonQueryRequest" }
func (m *ExecuteNonQueryRequest) ProtoMessage() {}

type ExecuteNonQueryResponse struct {
	Applied bool `protobuf:"varint,1,opt,name=applied,proto3" json:"applied,omitempty"`
	ForwardedFromAddr string `protobuf:"bytes,2,opt,name=forwarded_from_addr,proto3" json:"forwarded_from_addr,omitempty"`
}

func (m *ExecuteNonQueryResponse) Reset() { *m = ExecuteNonQueryResponse{} }
func (m *ExecuteNonQueryResponse) String() string { return "ExecuteNonQueryResponse" }
func (m *ExecuteNonQueryResponse) ProtoMessage() {}

type QueryServiceServer interface {
	QuerySingleSeries(context.Context, *QuerySingleSeriesRequest) (*QuerySingleSeriesResponse, error)
	FetchSingleSeries(context.Context, *FetchSingleSeriesRequest) (*FetchSingleSeriesResponse, error)
	EndQuery(context.Context, *EndQueryRequest) (*EndQueryResponse, error)
	GetAllPaths(context.Context, *GetAllPathsRequest) (*GetAllPathsResponse, error)
	PullTimeSeriesSchema(context.Context, *PullTimeSeriesSchemaRequest) (*PullTimeSeriesSchemaResponse, error)
	ExecuteNonQuery(context.Context, *ExecuteNonQueryRequest) (*ExecuteNonQueryResponse, error)
}

type UnimplementedQueryServiceServer struct{}

func (UnimplementedQueryServiceServer) QuerySingleSeries(context.Context, *QuerySingleSeriesRequest) (*QuerySingleSeriesResponse, error) {
	return nil, grpc.ErrServerStopped
}

func (UnimplementedQueryServiceServer) FetchSingleSeries(context.Context, *FetchSingleSeriesRequest) (*FetchSingleSeriesResponse, error) {
	return nil, grpc.ErrServerStopped
}

func (UnimplementedQueryServiceServer) EndQuery(context.Context, *EndQueryRequest) (*EndQueryResponse, error) {
	return nil, grpc.ErrServerStopped
}

func (UnimplementedQueryServiceServer) GetAllPaths(context.Context, *GetAllPathsRequest) (*GetAllPathsResponse, error) {
	return nil, grpc.ErrServerStopped
}

func (UnimplementedQueryServiceServer) PullTimeSeriesSchema(context.Context, *PullTimeSeriesSchemaRequest) (*PullTimeSeriesSchemaResponse, error) {
	return nil, grpc.ErrServerStopped
}

func (UnimplementedQueryServiceServer) ExecuteNonQuery(context.Context, *ExecuteNonQueryRequest) (*ExecuteNonQueryResponse, error) {
	return nil, grpc.ErrServerStopped
}

func buildMethodDesc(name string, handler func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error)) grpc.MethodDesc {
	return grpc.MethodDesc{ MethodName: name, Handler: handler }
}

var QueryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "queryrpc.QueryService",
	HandlerType: (*QueryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		buildMethodDesc("QuerySingleSeries", func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			req := new(QuerySingleSeriesRequest)
			if err := dec(req); err != nil { return nil, err }

			if interceptor == nil { return srv.(QueryServiceServer).QuerySingleSeries(ctx, req) }

			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(QueryServiceServer).QuerySingleSeries(ctx, req.(*QuerySingleSeriesRequest))
			}

			return interceptor(ctx, req, &grpc.UnaryServerInfo{ Server: srv, FullMethod: "/queryrpc.QueryService/QuerySingleSeries" }, handler)
		}),
		buildMethodDesc("FetchSingleSeries", func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			req := new(FetchSingleSeriesRequest)
			if err := dec(req); err != nil { return nil, err }

			if interceptor == nil { return srv.(QueryServiceServer).FetchSingleSeries(ctx, req) }

			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(QueryServiceServer).FetchSingleSeries(ctx, req.(*FetchSingleSeriesRequest))
			}

			return interceptor(ctx, req, &grpc.UnaryServerInfo{ Server: srv, FullMethod: "/queryrpc.QueryService/FetchSingleSeries" }, handler)
		}),
		buildMethodDesc("EndQuery", func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			req := new(EndQueryRequest)
			if err := dec(req); err != nil { return nil, err }

			if interceptor == nil { return srv.(QueryServiceServer).EndQuery(ctx, req) }

			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(QueryServiceServer).EndQuery(ctx, req.(*EndQueryRequest))
			}

			return interceptor(ctx, req, &grpc.UnaryServerInfo{ Server: srv, FullMethod: "/queryrpc.QueryService/EndQuery" }, handler)
		}),
		buildMethodDesc("GetAllPaths", func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			req := new(GetAllPathsRequest)
			if err := dec(req); err != nil { return nil, err }

			if interceptor == nil { return srv.(QueryServiceServer).GetAllPaths(ctx, req) }

			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(QueryServiceServer).GetAllPaths(ctx, req.(*GetAllPathsRequest))
			}

			return interceptor(ctx, req, &grpc.UnaryServerInfo{ Server: srv, FullMethod: "/queryrpc.QueryService/GetAllPaths" }, handler)
		}),
		buildMethodDesc("PullTimeSeriesSchema", func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			req := new(PullTimeSeriesSchemaRequest)
			if err := dec(req); err != nil { return nil, err }

			if interceptor == nil { return srv.(QueryServiceServer).PullTimeSeriesSchema(ctx, req) }

			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(QueryServiceServer).PullTimeSeriesSchema(ctx, req.(*PullTimeSeriesSchemaRequest))
			}

			return interceptor(ctx, req, &grpc.UnaryServerInfo{ Server: srv, FullMethod: "/queryrpc.QueryService/PullTimeSeriesSchema" }, handler)
		}),
		buildMethodDesc("ExecuteNonQuery", func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			req := new(ExecuteNonQueryRequest)
			if err := dec(req); err != nil { return nil, err }

			if interceptor == nil { return srv.(QueryServiceServer).ExecuteNonQuery(ctx, req) }

			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(QueryServiceServer).ExecuteNonQuery(ctx, req.(*ExecuteNonQueryRequest))
			}

			return interceptor(ctx, req, &grpc.UnaryServerInfo{ Server: srv, FullMethod: "/queryrpc.QueryService/ExecuteNonQuery" }, handler)
		}),
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterQueryServiceServer(s grpc.ServiceRegistrar, srv QueryServiceServer) {
	s.RegisterService(&QueryService_ServiceDesc, srv)
}

type QueryServiceClient interface {
	QuerySingleSeries(ctx context.Context, in *QuerySingleSeriesRequest) (*QuerySingleSeriesResponse, error)
	FetchSingleSeries(ctx context.Context, in *FetchSingleSeriesRequest) (*FetchSingleSeriesResponse, error)
	EndQuery(ctx context.Context, in *EndQueryRequest) (*EndQueryResponse, error)
	GetAllPaths(ctx context.Context, in *GetAllPathsRequest) (*GetAllPathsResponse, error)
	PullTimeSeriesSchema(ctx context.Context, in *PullTimeSeriesSchemaRequest) (*PullTimeSeriesSchemaResponse, error)
	ExecuteNonQuery(ctx context.Context, in *ExecuteNonQueryRequest) (*ExecuteNonQueryResponse, error)
}

type queryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewQueryServiceClient(cc grpc.ClientConnInterface) QueryServiceClient {
	return &queryServiceClient{ cc: cc }
}

func (c *queryServiceClient) QuerySingleSeries(ctx context.Context, in *QuerySingleSeriesRequest) (*QuerySingleSeriesResponse, error) {
	out := new(QuerySingleSeriesResponse)
	err := c.cc.Invoke(ctx, "/queryrpc.QueryService/QuerySingleSeries", in, out)
	if err != nil { return nil, err }

	return out, nil
}

func (c *queryServiceClient) FetchSingleSeries(ctx context.Context, in *FetchSingleSeriesRequest) (*FetchSingleSeriesResponse, error) {
	out := new(FetchSingleSeriesResponse)
	err := c.cc.Invoke(ctx, "/queryrpc.QueryService/FetchSingleSeries", in, out)
	if err != nil { return nil, err }

	return out, nil
}

func (c *queryServiceClient) EndQuery(ctx context.Context, in *EndQueryRequest) (*EndQueryResponse, error) {
	out := new(EndQueryResponse)
	err := c.cc.Invoke(ctx, "/queryrpc.QueryService/EndQuery", in, out)
	if err != nil { return nil, err }

	return out, nil
}

func (c *queryServiceClient) GetAllPaths(ctx context.Context, in *GetAllPathsRequest) (*GetAllPathsResponse, error) {
	out := new(GetAllPathsResponse)
	err := c.cc.Invoke(ctx, "/queryrpc.QueryService/GetAllPaths", in, out)
	if err != nil { return nil, err }

	return out, nil
}

func (c *queryServiceClient) PullTimeSeriesSchema(ctx context.Context, in *PullTimeSeriesSchemaRequest) (*PullTimeSeriesSchemaResponse, error) {
	out := new(PullTimeSeriesSchemaResponse)
	err := c.cc.Invoke(ctx, "/queryrpc.QueryService/PullTimeSeriesSchema", in, out)
	if err != nil { return nil, err }

	return out, nil
}

func (c *queryServiceClient) ExecuteNonQuery(ctx context.Context, in *ExecuteNonQueryRequest) (*ExecuteNonQueryResponse, error) {
	out := new(ExecuteNonQueryResponse)
	err := c.cc.Invoke(ctx, "/queryrpc.QueryService/ExecuteNonQuery", in, out)
	if err != nil { return nil, err }

	return out, nil
}
