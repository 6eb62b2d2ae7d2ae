package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"time"

	dhtv1 "chorddht/internal/api/dht/v1"
	"chorddht/internal/client"
	"chorddht/internal/domain"
)

// Usage: chorddht-client host:port <command> [args...]
// Commands: put <k> <v>, get <k>, delete <k>, find <id>, stats, ping.
func main() {
	timeout := flag.Duration("timeout", 5*time.Second, "request timeout")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(1)
	}
	addr, cmd, rest := args[0], args[1], args[2:]

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if cmd == "find" {
		os.Exit(runFind(ctx, addr, rest))
	}
	os.Exit(runClientCommand(ctx, addr, cmd, rest))
}

func runClientCommand(ctx context.Context, addr, cmd string, rest []string) int {
	api, conn, err := client.ConnectClient(addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to %s: %v\n", addr, err)
		return 1
	}
	defer conn.Close()

	switch cmd {
	case "put":
		if len(rest) < 2 {
			fmt.Fprintln(os.Stderr, "usage: put <key> <value>")
			return 1
		}
		version, latency, err := client.Put(ctx, api, rest[0], rest[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "put failed: %v | latency=%s\n", err, latency)
			return 1
		}
		fmt.Printf("put ok (version=%d) | latency=%s\n", version, latency)
		return 0

	case "get":
		if len(rest) < 1 {
			fmt.Fprintln(os.Stderr, "usage: get <key>")
			return 1
		}
		value, found, latency, err := client.Get(ctx, api, rest[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "get failed: %v | latency=%s\n", err, latency)
			return 1
		}
		if !found {
			fmt.Printf("key not found: %s | latency=%s\n", rest[0], latency)
			return 1
		}
		fmt.Printf("%s | latency=%s\n", value, latency)
		return 0

	case "delete":
		if len(rest) < 1 {
			fmt.Fprintln(os.Stderr, "usage: delete <key>")
			return 1
		}
		deleted, latency, err := client.Delete(ctx, api, rest[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "delete failed: %v | latency=%s\n", err, latency)
			return 1
		}
		if !deleted {
			fmt.Printf("key not found: %s | latency=%s\n", rest[0], latency)
			return 1
		}
		fmt.Printf("delete ok | latency=%s\n", latency)
		return 0

	case "stats":
		stats, latency, err := client.GetStats(ctx, api)
		if err != nil {
			fmt.Fprintf(os.Stderr, "stats failed: %v | latency=%s\n", err, latency)
			return 1
		}
		fmt.Printf("node=%s status=%s successor=%s predecessor=%s lookups=%d totalHops=%d avgHops=%.2f "+
			"primaryKeys=%d replicaKeys=%d replicationFactor=%d aliveSuccessors=%d | latency=%s\n",
			hex.EncodeToString(stats.GetNodeId()), stats.GetStatus(), hex.EncodeToString(stats.GetSuccessorId()),
			hex.EncodeToString(stats.GetPredecessorId()), stats.GetLookupCount(), stats.GetTotalHops(),
			stats.GetAvgHops(), stats.GetPrimaryKeys(), stats.GetReplicaKeys(),
			stats.GetReplicationFactor(), stats.GetAliveSuccessors(), latency)
		return 0

	case "ping":
		latency, err := client.Ping(ctx, api)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ping failed: %v | latency=%s\n", err, latency)
			return 1
		}
		fmt.Printf("pong | latency=%s\n", latency)
		return 0

	default:
		usage()
		return 1
	}
}

// runFind dials the peer-facing DHT service directly: client.v1.ClientAPI
// has no FindSuccessor RPC of its own, since routing belongs to the
// inter-node protocol surface rather than the operator-facing one.
func runFind(ctx context.Context, addr string, rest []string) int {
	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "usage: find <id>")
		return 1
	}
	target, err := hex.DecodeString(rest[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid id %q: %v\n", rest[0], err)
		return 1
	}

	dhtAPI, conn, err := client.Connect(addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to %s: %v\n", addr, err)
		return 1
	}
	defer conn.Close()

	start := time.Now()
	resp, err := dhtAPI.FindSuccessor(ctx, &dhtv1.FindSuccessorRequest{TargetId: target, Hops: 0})
	latency := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "find failed: %v | latency=%s\n", err, latency)
		return 1
	}
	succ := domain.NodeFromProto(resp.GetSuccessor())
	fmt.Printf("successor=%s hops=%d | latency=%s\n", succ, resp.GetHops(), latency)
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: chorddht-client host:port <put|get|delete|find|stats|ping> [args...]")
}
