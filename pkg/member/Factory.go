package member

import "time"

import "github.com/latticedb/dgm/pkg/clog"
import "github.com/latticedb/dgm/pkg/cluster"
import "github.com/latticedb/dgm/pkg/connpool"
import "github.com/latticedb/dgm/pkg/filepuller"
import "github.com/latticedb/dgm/pkg/pullscheduler"
import "github.com/latticedb/dgm/pkg/queryreg"


/*
	NewMember wires a Data Group Member's sub-components together the way a composed
	service wires its leader-election, replicated-log, relay and snapshot modules.
	It builds two connection pools: one for the file puller's chunk pulls, and one
	shared by the member's election, group and query RPCs and the pull scheduler, so
	pool exhaustion on file transfers never starves the other RPCs (or vice versa).
*/

func NewMember(opts MemberOpts) *Member {
	cfg := opts.Config

	self := cluster.Node{
		Addr: cfg.LocalNode.Addr,
		MetaPort: cfg.LocalNode.MetaPort,
		NodeId: cfg.LocalNode.NodeId,
	}

	initialMembers := []cluster.Node{ self }
	for _, peer := range cfg.InitialPeers {
		initialMembers = append(initialMembers, cluster.Node{ Addr: peer.Addr, MetaPort: peer.MetaPort, NodeId: peer.NodeId })
	}

	groupConnPool := connpool.NewConnectionPool(connpool.ConnectionPoolOpts{ MinConn: cfg.ConnPool.MinConn, MaxConn: cfg.ConnPool.MaxConn })
	fileConnPool := connpool.NewConnectionPool(connpool.ConnectionPoolOpts{ MinConn: cfg.ConnPool.MinConn, MaxConn: cfg.ConnPool.MaxConn })

	puller := filepuller.NewFilePuller(filepuller.FilePullerOpts{
		ConnectionPool: fileConnPool,
		Port: cfg.Ports.File,
		StagingRoot: cfg.RemoteFile.StagingRoot,
		ChunkSize: cfg.RemoteFile.ChunkSizeBytes,
		ConnectionTimeout: cfg.RemoteFile.ConnectionTimeout(),
	})

	scheduler := pullscheduler.NewPullScheduler(pullscheduler.PullSchedulerOpts{
		LogManager: opts.LogManager,
		ConnectionPool: groupConnPool,
		Port: cfg.Ports.Group,
		LocalNode: self,
	})

	return &Member{
		self: self,
		group: cluster.PartitionGroup{ Members: initialMembers },
		role: cluster.Follower,
		term: 0,
		electionTimeoutMin: time.Duration(cfg.Heartbeat.ElectionTimeoutMinMs) * time.Millisecond,
		electionTimeoutMax: time.Duration(cfg.Heartbeat.ElectionTimeoutMaxMs) * time.Millisecond,
		heartbeatInterval: cfg.Heartbeat.Interval(),
		resetElectionTimeout: make(chan struct{}, 1),
		stopHeartbeat: make(chan struct{}),
		stopped: make(chan struct{}),
		logManager: opts.LogManager,
		collaborators: opts.Collaborators,
		connPool: groupConnPool,
		filePuller: puller,
		pullScheduler: scheduler,
		queryRegistry: queryreg.NewQueryRegistry(),
		ports: cfg.Ports,
		log: *clog.NewCustomLog(NAME),
	}
}
