package main

import "flag"
import "os"
import "os/signal"
import "path/filepath"
import "syscall"

import "github.com/latticedb/dgm/pkg/clog"
import "github.com/latticedb/dgm/pkg/config"
import "github.com/latticedb/dgm/pkg/logmgr"
import "github.com/latticedb/dgm/pkg/member"


const NAME = "Member Main"

var log = clog.NewCustomLog(NAME)

func main() {
	configPath := flag.String("config", "./member.yaml", "path to the member config YAML document")
	dataDir := flag.String("data-dir", "./data", "directory the log manager's bbolt store lives under")
	flag.Parse()

	cfg, loadErr := config.Load(*configPath)
	if loadErr != nil { log.Fatal("unable to load config:", loadErr.Error()) }

	logManager, logErr := logmgr.NewLogManager(logmgr.LogManagerOpts{ DBPath: filepath.Join(*dataDir, "log.db") })
	if logErr != nil { log.Fatal("unable to open log manager:", logErr.Error()) }
	defer logManager.Close()

	m := member.NewMember(member.MemberOpts{
		Config: cfg,
		LogManager: logManager,
		Collaborators: member.Collaborators{},
	})

	startErr := m.Start()
	if startErr != nil { log.Fatal("unable to start member:", startErr.Error()) }

	log.Info("member", cfg.LocalNode.NodeId, "started for cluster", cfg.ClusterId)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<- signals

	m.Stop()
}
