package config

import "os"
import "time"

import "github.com/goccy/go-yaml"


//=========================================== Member Configuration


/*
	Load:
		1.) read the YAML document at path
		2.) unmarshal onto a config seeded with defaults, so a minimal document (just the
			local node and initial peers) is sufficient to start a member for local development
*/

func Load(path string) (*MemberConfig, error) {
	raw, readErr := os.ReadFile(path)
	if readErr != nil { return nil, readErr }

	cfg := Default()
	decodeErr := yaml.Unmarshal(raw, &cfg)
	if decodeErr != nil { return nil, decodeErr }

	return &cfg, nil
}

type MemberConfig struct {
	ClusterId string `yaml:"clusterId"`

	LocalNode NodeConfig `yaml:"localNode"`
	InitialPeers []NodeConfig `yaml:"initialPeers"`

	SlotCount int64 `yaml:"slotCount"`
	ReplicationFactor int `yaml:"replicationFactor"`

	Heartbeat HeartbeatConfig `yaml:"heartbeat"`
	Ports PortConfig `yaml:"ports"`
	ConnPool ConnPoolConfig `yaml:"connPool"`
	RemoteFile RemoteFileConfig `yaml:"remoteFile"`
}

type NodeConfig struct {
	Addr string `yaml:"addr"`
	MetaPort int `yaml:"metaPort"`
	NodeId int64 `yaml:"nodeId"`
}

type HeartbeatConfig struct {
	IntervalMs int `yaml:"intervalMs"`
	ElectionTimeoutMinMs int `yaml:"electionTimeoutMinMs"`
	ElectionTimeoutMaxMs int `yaml:"electionTimeoutMaxMs"`
}

type PortConfig struct {
	Election int `yaml:"election"`
	Group int `yaml:"group"`
	Query int `yaml:"query"`
	File int `yaml:"file"`
}

type ConnPoolConfig struct {
	MinConn int `yaml:"minConn"`
	MaxConn int `yaml:"maxConn"`
}

type RemoteFileConfig struct {
	StagingRoot string `yaml:"stagingRoot"`
	ChunkSizeBytes int32 `yaml:"chunkSizeBytes"`
	ConnectionTimeoutMs int `yaml:"connectionTimeoutMs"`
}

func (h HeartbeatConfig) Interval() time.Duration {
	return time.Duration(h.IntervalMs) * time.Millisecond
}

func (r RemoteFileConfig) ConnectionTimeout() time.Duration {
	return time.Duration(r.ConnectionTimeoutMs) * time.Millisecond
}

// Default returns a baseline development config; Load unmarshals onto this so any
// field omitted from the YAML document keeps a usable value.
func Default() MemberConfig {
	return MemberConfig{
		ClusterId: "dev-cluster",
		SlotCount: 1024,
		ReplicationFactor: 3,
		Heartbeat: HeartbeatConfig{
			IntervalMs: 50,
			ElectionTimeoutMinMs: 150,
			ElectionTimeoutMaxMs: 300,
		},
		Ports: PortConfig{
			Election: 9091,
			Group: 9092,
			Query: 9093,
			File: 9094,
		},
		ConnPool: ConnPoolConfig{
			MinConn: 1,
			MaxConn: 8,
		},
		RemoteFile: RemoteFileConfig{
			StagingRoot: "./data/remote",
			ChunkSizeBytes: 64 * 1024,
			ConnectionTimeoutMs: 5000,
		},
	}
}
