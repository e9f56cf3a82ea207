package electionrpc

import "context"

import "google.golang.org/grpc"


//=========================================== Election RPC


/*
	wire messages for the election RPC -- term, meta log position, data log position,
	elector identity in; a vote verdict enum out. these types carry the data gRPC
	needs, following the same Register*ServiceServer / New*ServiceClient shape the
	rest of this module's RPC surfaces use
*/

type ElectionRequest struct {
	Term int64 `protobuf:"varint,1,opt,name=term,proto3" json:"term,omitempty"`
	MetaLastLogIndex int64 `protobuf:"varint,2,opt,name=meta_last_log_index,proto3" json:"meta_last_log_index,omitempty"`
	MetaLastLogTerm int64 `protobuf:"varint,3,opt,name=meta_last_log_term,proto3" json:"meta_last_log_term,omitempty"`
	DataLastLogIndex int64 `protobuf:"varint,4,opt,name=data_last_log_index,proto3" json:"data_last_log_index,omitempty"`
	DataLastLogTerm int64 `protobuf:"varint,5,opt,name=data_last_log_term,proto3" json:"data_last_log_term,omitempty"`
	ElectorAddr string `protobuf:"bytes,6,opt,name=elector_addr,proto3" json:"elector_addr,omitempty"`
	ElectorNodeId int64 `protobuf:"varint,7,opt,name=elector_node_id,proto3" json:"elector_node_id,omitempty"`
}

func (m *ElectionRequest) Reset() { *m = ElectionRequest{} }
func (m *ElectionRequest) String() string { return "ElectionRequest" }
func (m *ElectionRequest) ProtoMessage() {}

type ElectionResponse struct {
	Verdict int32 `protobuf:"varint,1,opt,name=verdict,proto3" json:"verdict,omitempty"`
	Term int64 `protobuf:"varint,2,opt,name=term,proto3" json:"term,omitempty"`
}

func (m *ElectionResponse) Reset() { *m = ElectionResponse{} }
func (m *ElectionResponse) String() string { return "ElectionResponse" }
func (m *ElectionResponse) ProtoMessage() {}

type ElectionServiceServer interface {
	RequestVote(context.Context, *ElectionRequest) (*ElectionResponse, error)
}

type UnimplementedElectionServiceServer struct{}

func (UnimplementedElectionServiceServer) RequestVote(context.Context, *ElectionRequest) (*ElectionResponse, error) {
	return nil, grpc.ErrServerStopped
}

var ElectionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "electionrpc.ElectionService",
	HandlerType: (*ElectionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RequestVote",
			Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
				req := new(ElectionRequest)
				if err := dec(req); err != nil { return nil, err }

				if interceptor == nil { return srv.(ElectionServiceServer).RequestVote(ctx, req) }

				handler := func(ctx context.Context, req interface{}) (interface{}, error) {
					return srv.(ElectionServiceServer).RequestVote(ctx, req.(*ElectionRequest))
				}

				return interceptor(ctx, req, &grpc.UnaryServerInfo{ Server: srv, FullMethod: "/electionrpc.ElectionService/RequestVote" }, handler)
			},
		},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterElectionServiceServer(s grpc.ServiceRegistrar, srv ElectionServiceServer) {
	s.RegisterService(&ElectionService_ServiceDesc, srv)
}

type ElectionServiceClient interface {
	RequestVote(ctx context.Context, in *ElectionRequest) (*ElectionResponse, error)
}

type electionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewElectionServiceClient(cc grpc.ClientConnInterface) ElectionServiceClient {
	return &electionServiceClient{ cc: cc }
}

func (c *electionServiceClient) RequestVote(ctx context.Context, in *ElectionRequest) (*ElectionResponse, error) {
	out := new(ElectionResponse)
	err := c.cc.Invoke(ctx, "/electionrpc.ElectionService/RequestVote", in, out)
	if err != nil { return nil, err }

	return out, nil
}
