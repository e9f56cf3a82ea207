package filerpc

import "context"

import "google.golang.org/grpc"


//=========================================== File RPC


/*
	readFile serves one chunk of an immutable data file at a time -- the caller
	(pkg/filepuller) drives the offset across repeated calls, resuming from wherever a
	prior attempt against this or another source replica left off
*/

type ReadFileRequest struct {
	StorageGroup string `protobuf:"bytes,1,opt,name=storage_group,proto3" json:"storage_group,omitempty"`
	FileName string `protobuf:"bytes,2,opt,name=file_name,proto3" json:"file_name,omitempty"`
	Offset int64 `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	ChunkSize int32 `protobuf:"varint,4,opt,name=chunk_size,proto3" json:"chunk_size,omitempty"`
}

func (m *ReadFileRequest) Reset() { *m = ReadFileRequest{} }
func (m *ReadFileRequest) String() string { return "ReadFileRequest" }
func (m *ReadFileRequest) ProtoMessage() {}

type ReadFileResponse struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	Eof bool `protobuf:"varint,2,opt,name=eof,proto3" json:"eof,omitempty"`
	Md5 string `protobuf:"bytes,3,opt,name=md5,proto3" json:"md5,omitempty"`
}

func (m *ReadFileResponse) Reset() { *m = ReadFileResponse{} }
func (m *ReadFileResponse) String() string { return "ReadFileResponse" }
func (m *ReadFileResponse) ProtoMessage() {}

type FileServiceServer interface {
	ReadFile(context.Context, *ReadFileRequest) (*ReadFileResponse, error)
}

type UnimplementedFileServiceServer struct{}

func (UnimplementedFileServiceServer) ReadFile(context.Context, *ReadFileRequest) (*ReadFileResponse, error) {
	return nil, grpc.ErrServerStopped
}

var FileService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "filerpc.FileService",
	HandlerType: (*FileServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ReadFile",
			Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
				req := new(ReadFileRequest)
				if err := dec(req); err != nil { return nil, err }

				if interceptor == nil { return srv.(FileServiceServer).ReadFile(ctx, req) }

				handler := func(ctx context.Context, req interface{}) (interface{}, error) {
					return srv.(FileServiceServer).ReadFile(ctx, req.(*ReadFileRequest))
				}

				return interceptor(ctx, req, &grpc.UnaryServerInfo{ Server: srv, FullMethod: "/filerpc.FileService/ReadFile" }, handler)
			},
		},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterFileServiceServer(s grpc.ServiceRegistrar, srv FileServiceServer) {
	s.RegisterService(&FileService_ServiceDesc, srv)
}

type FileServiceClient interface {
	ReadFile(ctx context.Context, in *ReadFileRequest) (*ReadFileResponse, error)
}

type fileServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFileServiceClient(cc grpc.ClientConnInterface) FileServiceClient {
	return &fileServiceClient{ cc: cc }
}

func (c *fileServiceClient) ReadFile(ctx context.Context, in *ReadFileRequest) (*ReadFileResponse, error) {
	out := new(ReadFileResponse)
	err := c.cc.Invoke(ctx, "/filerpc.FileService/ReadFile", in, out)
	if err != nil { return nil, err }

	return out, nil
}
