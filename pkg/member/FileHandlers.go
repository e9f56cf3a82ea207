package member

import "context"
import "errors"
import "io"
import "path/filepath"

import "github.com/latticedb/dgm/pkg/filerpc"


//=========================================== File RPC Handlers


/*
	ReadFile serves one chunk of a local, immutable data file at a time, resolving
	storageGroup/fileName against the sequence directory first and the unsequence
	directory second -- a file that has been compacted out of the sequence tree but not
	yet removed is still served from wherever the directory manager says it lives.
*/

func (m *Member) ReadFile(ctx context.Context, req *filerpc.ReadFileRequest) (*filerpc.ReadFileResponse, error) {
	chunkSize := req.ChunkSize
	if chunkSize <= 0 { chunkSize = filepullerDefaultChunkSize }

	path := filepath.Join(m.collaborators.Directories.SequenceDir(req.StorageGroup), req.FileName)

	data, readErr := m.collaborators.FileReader.ReadChunk(path, req.Offset, chunkSize)
	if errors.Is(readErr, io.EOF) || (readErr == nil && len(data) == 0) {
		altPath := filepath.Join(m.collaborators.Directories.UnsequenceDir(req.StorageGroup), req.FileName)
		data, readErr = m.collaborators.FileReader.ReadChunk(altPath, req.Offset, chunkSize)
	}

	if readErr != nil && ! errors.Is(readErr, io.EOF) { return nil, readErr }

	return &filerpc.ReadFileResponse{
		Data: data,
		Eof: errors.Is(readErr, io.EOF) || int32(len(data)) < chunkSize,
	}, nil
}

const filepullerDefaultChunkSize = 64 * 1024
