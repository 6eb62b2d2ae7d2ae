package node

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	dhtv1 "chorddht/internal/api/dht/v1"
	"chorddht/internal/domain"
	"chorddht/internal/logger"
)

// Put writes key/value through this node. isReplica distinguishes a
// replica-tagged write (applied to replica_store at the supplied version,
// never routed further) from a normal client write (routed to the owner,
// applied to primary_store, and fanned out to replicas). Returns the
// version assigned, whether the write had to be forwarded, and a
// human-readable status message mirroring the one carried on the wire.
func (n *Node) Put(ctx context.Context, key, value string, isReplica bool, version uint64) (uint64, bool, string, error) {
	id := n.rt.Space().HashString(key)

	if !isReplica && !n.isOwner(id) {
		owner, _, err := n.FindSuccessor(ctx, id)
		if err != nil {
			return 0, false, "", fmt.Errorf("Routing failed: %w", err)
		}
		v, _, msg, err := n.rpc.Put(ctx, owner.Addr(), key, value, false, 0)
		if err != nil {
			return 0, true, "", fmt.Errorf("Routing failed: %w", err)
		}
		return v, true, msg, nil
	}

	if isReplica {
		if version == 0 {
			version = 1
		}
		item := domain.Item{Key: key, ID: id, Value: value, Version: version, Timestamp: time.Now().UnixMilli()}
		n.store.PutReplica(item)
		return version, false, "replica stored", nil
	}

	item := n.store.PutPrimary(key, value, time.Now().UnixMilli())
	replicas := 0
	if n.isInitialized() {
		replicas = n.fanOutReplica(item)
	}
	return item.Version, false, fmt.Sprintf("Stored with %d replicas", replicas), nil
}

// SyncReplica applies an incoming replica write from an owner node. The
// wire message carries no identifier, so the item's ID is recomputed from
// its key before it is stored.
func (n *Node) SyncReplica(item domain.Item) error {
	item.ID = n.rt.Space().HashString(item.Key)
	n.store.PutReplica(item)
	return nil
}

// Get resolves key: locally, then via the successor list, then by routing
// to the owner if none of the above answered.
func (n *Node) Get(ctx context.Context, key string) (string, uint64, bool, error) {
	if item, ok := n.store.Get(key); ok {
		return item.Value, item.Version, true, nil
	}

	self := n.rt.Self()
	for _, s := range n.rt.SuccessorList() {
		if s.Equal(self) {
			continue
		}
		hopCtx, cancel := context.WithTimeout(ctx, maintenanceTimeout)
		value, version, found, err := n.rpc.Get(hopCtx, s.Addr(), key)
		cancel()
		if err == nil && found {
			return value, version, true, nil
		}
	}

	id := n.rt.Space().HashString(key)
	if !n.isOwner(id) {
		owner, _, err := n.FindSuccessor(ctx, id)
		if err != nil {
			return "", 0, false, nil
		}
		value, version, found, err := n.rpc.Get(ctx, owner.Addr(), key)
		if err != nil || !found {
			return "", 0, false, nil
		}
		return value, version, true, nil
	}

	return "", 0, false, nil
}

// Delete is the client-facing entry point: it routes to the owner when this
// node isn't it, then performs a primary delete there (DeleteLocal fans out
// the replica cleanup itself).
func (n *Node) Delete(ctx context.Context, key string) (bool, error) {
	id := n.rt.Space().HashString(key)
	if !n.isOwner(id) {
		owner, _, err := n.FindSuccessor(ctx, id)
		if err != nil {
			return false, fmt.Errorf("routing failed: %w", err)
		}
		deleted, err := n.rpc.Delete(ctx, owner.Addr(), key, false)
		if err != nil {
			return false, fmt.Errorf("routing failed: %w", err)
		}
		return deleted, nil
	}

	return n.DeleteLocal(key, false), nil
}

// DeleteLocal is the wire-level Delete RPC's entire policy for one node: a
// replica delete touches only replica_store; a primary delete touches only
// primary_store and, if the key was present, fans out a best-effort
// replica-cleanup Delete(is_replica=true) to every successor-list entry so
// their copies don't outlive the primary.
func (n *Node) DeleteLocal(key string, isReplica bool) bool {
	if isReplica {
		return n.store.DeleteReplica(key)
	}
	deleted := n.store.DeletePrimary(key)
	if deleted {
		n.fanOutDelete(key)
	}
	return deleted
}

// GetStats returns the operational counters exposed over the wire, including
// a liveness probe of the successor list so alive_successors reflects the
// ring as observed at call time rather than the raw (possibly stale) list
// length.
func (n *Node) GetStats(ctx context.Context) *dhtv1.GetStatsResponse {
	self := n.rt.Self()

	n.mu.Lock()
	lookups, hops := n.lookupCount, n.totalHops
	n.mu.Unlock()

	avg := 0.0
	if lookups > 0 {
		avg = float64(hops) / float64(lookups)
	}

	var succID, predID []byte
	if succ, ok := n.rt.FirstSuccessor(); ok {
		succID = []byte(succ.ID)
	}
	if pred, ok := n.rt.GetPredecessor(); ok {
		predID = []byte(pred.ID)
	}

	primaryCount, replicaCount := n.store.PrimaryCount(), n.store.ReplicaCount()
	alive := n.countAliveSuccessors(ctx)

	return &dhtv1.GetStatsResponse{
		NodeId:            []byte(self.ID),
		SuccessorId:       succID,
		PredecessorId:     predID,
		LookupCount:       lookups,
		TotalHops:         hops,
		OperationsCount:   uint64(primaryCount + replicaCount),
		AvgHops:           avg,
		PrimaryKeys:       uint64(primaryCount),
		ReplicaKeys:       uint64(replicaCount),
		ReplicationFactor: int32(n.replicationFactor),
		AliveSuccessors:   int32(alive),
		Status:            "active",
	}
}

// countAliveSuccessors pings every successor-list entry (skipping self) and
// reports how many answered. Each ping is bounded by its own liveness
// timeout, so a dead peer delays GetStats by at most that timeout.
func (n *Node) countAliveSuccessors(ctx context.Context) int {
	self := n.rt.Self()
	alive := 0
	for _, s := range n.rt.SuccessorList() {
		if s.Equal(self) {
			continue
		}
		if n.probe(ctx, s) {
			alive++
		}
	}
	return alive
}

// Ping always succeeds; liveness is defined as "the process can answer".
func (n *Node) Ping() domain.NodeRef {
	return n.rt.Self()
}

// fanOutReplica pushes item to the first replicationFactor-1 entries of the
// successor list (excluding self), with a bounded timeout per peer, and
// returns how many acknowledged the write — the count reported to the
// client as part of Put's "Stored with K replicas" message.
func (n *Node) fanOutReplica(item domain.Item) int {
	self := n.rt.Self()
	var acked int64
	var wg sync.WaitGroup
	targets := 0
	for _, s := range n.rt.SuccessorList() {
		if targets >= n.replicationFactor-1 {
			break
		}
		if s.Equal(self) {
			continue
		}
		targets++
		wg.Add(1)
		go func(target domain.NodeRef) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), replicaFanoutTimeout)
			defer cancel()
			if err := n.rpc.SyncReplica(ctx, target.Addr(), item); err != nil {
				n.lgr.Debug("replica fan-out failed", logger.FNode("to", target), logger.F("key", item.Key), logger.F("err", err))
				return
			}
			atomic.AddInt64(&acked, 1)
		}(s)
	}
	wg.Wait()
	return int(acked)
}

// fanOutDelete pushes a best-effort replica-cleanup delete to every
// successor-list entry once a primary delete has succeeded locally.
func (n *Node) fanOutDelete(key string) {
	self := n.rt.Self()
	for _, s := range n.rt.SuccessorList() {
		if s.Equal(self) {
			continue
		}
		go func(target domain.NodeRef) {
			ctx, cancel := context.WithTimeout(context.Background(), replicaFanoutTimeout)
			defer cancel()
			if _, err := n.rpc.Delete(ctx, target.Addr(), key, true); err != nil {
				n.lgr.Debug("replica delete fan-out failed", logger.FNode("to", target), logger.F("key", key), logger.F("err", err))
			}
		}(s)
	}
}
