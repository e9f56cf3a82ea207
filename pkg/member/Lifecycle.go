package member

import "net"
import "time"

import "google.golang.org/grpc"

import "github.com/latticedb/dgm/pkg/electionrpc"
import "github.com/latticedb/dgm/pkg/filerpc"
import "github.com/latticedb/dgm/pkg/grouprpc"
import "github.com/latticedb/dgm/pkg/queryrpc"
import "github.com/latticedb/dgm/pkg/utils"


//=========================================== Lifecycle


/*
	Start launches the four gRPC surfaces on their configured ports and the heartbeat
	loop: one net.Listen + go srv.Serve per surface, then a single goroutine driving
	the election timeout the way a jittered-timeout leader election loop does.
*/

func (m *Member) Start() error {
	if err := m.startServer("election", m.ports.Election, func(s *grpc.Server) { electionrpc.RegisterElectionServiceServer(s, m) }); err != nil { return err }
	if err := m.startServer("group", m.ports.Group, func(s *grpc.Server) { grouprpc.RegisterGroupServiceServer(s, m) }); err != nil { return err }
	if err := m.startServer("query", m.ports.Query, func(s *grpc.Server) { queryrpc.RegisterQueryServiceServer(s, m) }); err != nil { return err }
	if err := m.startServer("file", m.ports.File, func(s *grpc.Server) { filerpc.RegisterFileServiceServer(s, m) }); err != nil { return err }

	m.pullScheduler.Start()

	go m.runElectionTimeoutLoop()

	return nil
}

func (m *Member) Stop() {
	close(m.stopHeartbeat)
	m.pullScheduler.Stop()
}

func (m *Member) startServer(name string, port int, register func(*grpc.Server)) error {
	listener, listenErr := net.Listen("tcp", utils.NormalizePort(port))
	if listenErr != nil { return listenErr }

	srv := grpc.NewServer()
	register(srv)

	m.log.Info(name, "gRPC server listening on port:", port)

	go func() {
		if serveErr := srv.Serve(listener); serveErr != nil {
			m.log.Error("gRPC server", name, "stopped serving:", serveErr.Error())
		}
	}()

	return nil
}

/*
	runElectionTimeoutLoop is the member's own election-timeout-driven candidacy: a
	jittered timer resets whenever RequestVote grants a vote (the only sender on
	resetElectionTimeout), and fires RunElection on expiry. The loop returns once Stop
	closes stopHeartbeat.
*/

func (m *Member) runElectionTimeoutLoop() {
	timer := time.NewTimer(time.Duration(m.electionTimeout()) * time.Millisecond)
	defer timer.Stop()

	for {
		select {
			case <- m.stopHeartbeat:
				return

			case <- m.resetElectionTimeout:
				timer.Reset(time.Duration(m.electionTimeout()) * time.Millisecond)

			case <- timer.C:
				m.RunElection()
				timer.Reset(time.Duration(m.electionTimeout()) * time.Millisecond)
		}
	}
}
