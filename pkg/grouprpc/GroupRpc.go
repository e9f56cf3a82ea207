package grouprpc

import "context"

import "google.golang.org/grpc"


//=========================================== Group RPC


/*
	wire surface for intra-group snapshot exchange: sendSnapshot pushes a materialised
	snapshot to a group peer (used when a leader proactively replicates to a newly
	joined member); pullSnapshot is the request a Pull-Snapshot Scheduler task issues
	against a slot's previous holder, and the handler on the receiving end forwards to
	its own group leader when it isn't the leader itself
*/

type SnapshotEnvelope struct {
	Kind int32 `protobuf:"varint,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Slot int64 `protobuf:"varint,2,opt,name=slot,proto3" json:"slot,omitempty"`
	LastIndex int64 `protobuf:"varint,3,opt,name=last_index,proto3" json:"last_index,omitempty"`
	LastTerm int64 `protobuf:"varint,4,opt,name=last_term,proto3" json:"last_term,omitempty"`
	Payload []byte `protobuf:"bytes,5,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *SnapshotEnvelope) Reset() { *m = SnapshotEnvelope{} }
func (m *SnapshotEnvelope) String() string { return "SnapshotEnvelope" }
func (m *SnapshotEnvelope) ProtoMessage() {}

type SendSnapshotRequest struct {
	Envelope *SnapshotEnvelope `protobuf:"bytes,1,opt,name=envelope,proto3" json:"envelope,omitempty"`
}

func (m *SendSnapshotRequest) Reset() { *m = SendSnapshotRequest{} }
func (m *SendSnapshotRequest) String() string { return "SendSnapshotRequest" }
func (m *SendSnapshotRequest) ProtoMessage() {}

type SendSnapshotResponse struct {
	Accepted bool `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
}

func (m *SendSnapshotResponse) Reset() { *m = SendSnapshotResponse{} }
func (m *SendSnapshotResponse) String() string { return "SendSnapshotResponse" }
func (m *SendSnapshotResponse) ProtoMessage() {}

type PullSnapshotRequest struct {
	Slots []int64 `protobuf:"varint,1,rep,name=slots,proto3" json:"slots,omitempty"`
	RequesterNodeId int64 `protobuf:"varint,2,opt,name=requester_node_id,proto3" json:"requester_node_id,omitempty"`
	CorrelationId string `protobuf:"bytes,3,opt,name=correlation_id,proto3" json:"correlation_id,omitempty"`
}

func (m *PullSnapshotRequest) Reset() { *m = PullSnapshotRequest{} }
func (m *PullSnapshotRequest) String() string { return "PullSnapshotRequest" }
func (m *PullSnapshotRequest) ProtoMessage() {}

// PullSnapshotResponse carries one SnapshotEnvelope per requested slot the
// responding header actually holds -- slots not held locally are simply absent,
// standing in for a map from slot to serialised per-slot snapshot, since each
// envelope already carries its own Slot field.
type PullSnapshotResponse struct {
	Envelopes []*SnapshotEnvelope `protobuf:"bytes,1,rep,name=envelopes,proto3" json:"envelopes,omitempty"`
	ForwardedFromAddr string `protobuf:"bytes,2,opt,name=forwarded_from_addr,proto3" json:"forwarded_from_addr,omitempty"`
}

func (m *PullSnapshotResponse) Reset() { *m = PullSnapshotResponse{} }
func (m *PullSnapshotResponse) String() string { return "PullSnapshotResponse" }
func (m *PullSnapshotResponse) ProtoMessage() {}

type GroupServiceServer interface {
	SendSnapshot(context.Context, *SendSnapshotRequest) (*SendSnapshotResponse, error)
	PullSnapshot(context.Context, *PullSnapshotRequest) (*PullSnapshotResponse, error)
}

type UnimplementedGroupServiceServer struct{}

func (UnimplementedGroupServiceServer) SendSnapshot(context.Context, *SendSnapshotRequest) (*SendSnapshotResponse, error) {
	return nil, grpc.ErrServerStopped
}

func (UnimplementedGroupServiceServer) PullSnapshot(context.Context, *PullSnapshotRequest) (*PullSnapshotResponse, error) {
	return nil, grpc.ErrServerStopped
}

var GroupService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "grouprpc.GroupService",
	HandlerType: (*GroupServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SendSnapshot",
			Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
				req := new(SendSnapshotRequest)
				if err := dec(req); err != nil { return nil, err }

				if interceptor == nil { return srv.(GroupServiceServer).SendSnapshot(ctx, req) }

				handler := func(ctx context.Context, req interface{}) (interface{}, error) {
					return srv.(GroupServiceServer).SendSnapshot(ctx, req.(*SendSnapshotRequest))
				}

				return interceptor(ctx, req, &grpc.UnaryServerInfo{ Server: srv, FullMethod: "/grouprpc.GroupService/SendSnapshot" }, handler)
			},
		},
		{
			MethodName: "PullSnapshot",
			Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
				req := new(PullSnapshotRequest)
				if err := dec(req); err != nil { return nil, err }

				if interceptor == nil { return srv.(GroupServiceServer).PullSnapshot(ctx, req) }

				handler := func(ctx context.Context, req interface{}) (interface{}, error) {
					return srv.(GroupServiceServer).PullSnapshot(ctx, req.(*PullSnapshotRequest))
				}

				return interceptor(ctx, req, &grpc.UnaryServerInfo{ Server: srv, FullMethod: "/grouprpc.GroupService/PullSnapshot" }, handler)
			},
		},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterGroupServiceServer(s grpc.ServiceRegistrar, srv GroupServiceServer) {
	s.RegisterService(&GroupService_ServiceDesc, srv)
}

type GroupServiceClient interface {
	SendSnapshot(ctx context.Context, in *SendSnapshotRequest) (*SendSnapshotResponse, error)
	PullSnapshot(ctx context.Context, in *PullSnapshotRequest) (*PullSnapshotResponse, error)
}

type groupServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGroupServiceClient(cc grpc.ClientConnInterface) GroupServiceClient {
	return &groupServiceClient{ cc: cc }
}

func (c *groupServiceClient) SendSnapshot(ctx context.Context, in *SendSnapshotRequest) (*SendSnapshotResponse, error) {
	out := new(SendSnapshotResponse)
	err := c.cc.Invoke(ctx, "/grouprpc.GroupService/SendSnapshot", in, out)
	if err != nil { return nil, err }

	return out, nil
}

func (c *groupServiceClient) PullSnapshot(ctx context.Context, in *PullSnapshotRequest) (*PullSnapshotResponse, error) {
	out := new(PullSnapshotResponse)
	err := c.cc.Invoke(ctx, "/grouprpc.GroupService/PullSnapshot", in, out)
	if err != nil { return nil, err }

	return out, nil
}
