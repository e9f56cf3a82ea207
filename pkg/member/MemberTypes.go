package member

import "sync"
import "time"

import "github.com/latticedb/dgm/pkg/clog"
import "github.com/latticedb/dgm/pkg/cluster"
import "github.com/latticedb/dgm/pkg/config"
import "github.com/latticedb/dgm/pkg/connpool"
import "github.com/latticedb/dgm/pkg/external"
import "github.com/latticedb/dgm/pkg/filepuller"
import "github.com/latticedb/dgm/pkg/logmgr"
import "github.com/latticedb/dgm/pkg/pullscheduler"
import "github.com/latticedb/dgm/pkg/queryreg"


//=========================================== Data Group Member


const NAME = "Data Group Member"

/*
	Collaborators groups the out-of-scope capability handles the Factory injects into a
	Member -- the core never constructs any of these, matching the singleton/cyclic
	reference design notes on how the metadata-group member owns and lends these out.
*/

type Collaborators struct {
	Storage external.StorageEngine
	Schemas external.SchemaRegistry
	Directories external.DirectoryManager
	FileReader external.FileReaderManager
	PartitionTable external.PartitionTable
	Query external.QueryEngine
}

type MemberOpts struct {
	Config *config.MemberConfig
	Collaborators Collaborators
	LogManager *logmgr.LogManager
}

type Member struct {
	mutex sync.Mutex

	self cluster.Node
	group cluster.PartitionGroup

	role cluster.Role
	term int64
	currentLeader *cluster.Node
	votedFor int64
	metaLog cluster.LogPosition

	electionTimeoutMin time.Duration
	electionTimeoutMax time.Duration
	heartbeatInterval time.Duration

	resetElectionTimeout chan struct{}
	stopHeartbeat chan struct{}
	stopped chan struct{}

	logManager *logmgr.LogManager
	collaborators Collaborators

	connPool *connpool.ConnectionPool
	filePuller *filepuller.FilePuller
	pullScheduler *pullscheduler.PullScheduler
	queryRegistry *queryreg.QueryRegistry

	ports config.PortConfig

	log clog.CustomLog
}
