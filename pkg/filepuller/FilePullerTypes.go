package filepuller

import "time"

import "github.com/latticedb/dgm/pkg/clog"
import "github.com/latticedb/dgm/pkg/connpool"
import "github.com/latticedb/dgm/pkg/utils"


//=========================================== File Puller Types


const NAME = "File Puller"

// default chunk size used when a caller does not override it -- matches the
// RemoteFileConfig default wired through pkg/config
const DefaultChunkSize = 64 * 1024

type FilePullerOpts struct {
	ConnectionPool *connpool.ConnectionPool
	Port int
	StagingRoot string
	ChunkSize int32
	ConnectionTimeout time.Duration
}

type FilePuller struct {
	connPool *connpool.ConnectionPool
	port string
	stagingRoot string
	chunkSize int32
	connectionTimeout time.Duration

	log clog.CustomLog
}

func NewFilePuller(opts FilePullerOpts) *FilePuller {
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 { chunkSize = DefaultChunkSize }

	return &FilePuller{
		connPool: opts.ConnectionPool,
		port: utils.NormalizePort(opts.Port),
		stagingRoot: opts.StagingRoot,
		chunkSize: chunkSize,
		connectionTimeout: opts.ConnectionTimeout,
		log: *clog.NewCustomLog(NAME),
	}
}
