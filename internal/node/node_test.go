package node

import (
	"context"
	"testing"
	"time"

	"chorddht/internal/client"
	"chorddht/internal/domain"
	"chorddht/internal/logger"
	"chorddht/internal/routingtable"
	"chorddht/internal/storage"
)

// singleNodeRing builds a Node that is the sole member of its own ring: its
// own successor, predecessor, and every finger. No RPC ever needs to be
// issued against such a node, since it always owns every key.
func singleNodeRing(t *testing.T) *Node {
	t.Helper()
	sp, err := domain.NewSpace(16)
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	self := domain.NodeRef{ID: sp.FromUint64(100), Host: "127.0.0.1", Port: 5000}
	rt := routingtable.New(self, sp, 3)
	rt.InitSingleNode()

	store := storage.NewMemoryStore(&logger.NopLogger{}, sp)
	pool := client.New(&logger.NopLogger{}, time.Second)
	return New(rt, store, pool, 3)
}

func TestPutGetDeleteSingleNodeRing(t *testing.T) {
	n := singleNodeRing(t)
	ctx := context.Background()

	version, forwarded, _, err := n.Put(ctx, "alpha", "1", false, 0)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if forwarded {
		t.Errorf("Put forwarded = true on a single-node ring, want false")
	}
	if version != 1 {
		t.Errorf("Put version = %d, want 1", version)
	}

	value, gotVersion, found, err := n.Get(ctx, "alpha")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found || value != "1" || gotVersion != 1 {
		t.Errorf("Get = %q, %d, %v; want 1, 1, true", value, gotVersion, found)
	}

	deleted, err := n.Delete(ctx, "alpha")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Errorf("Delete = false, want true")
	}

	if _, _, found, _ := n.Get(ctx, "alpha"); found {
		t.Errorf("Get after Delete found = true, want false")
	}
}

func TestPutVersionMonotonic(t *testing.T) {
	n := singleNodeRing(t)
	ctx := context.Background()

	v1, _, _, err := n.Put(ctx, "k", "v1", false, 0)
	if err != nil {
		t.Fatalf("Put 1: %v", err)
	}
	v2, _, _, err := n.Put(ctx, "k", "v2", false, 0)
	if err != nil {
		t.Fatalf("Put 2: %v", err)
	}
	if v1 != 1 || v2 != 2 {
		t.Errorf("versions = %d, %d; want 1, 2", v1, v2)
	}
}

func TestGetNotFound(t *testing.T) {
	n := singleNodeRing(t)
	if _, _, found, err := n.Get(context.Background(), "missing"); found || err != nil {
		t.Errorf("Get(missing) = found=%v err=%v; want false, nil", found, err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	n := singleNodeRing(t)
	deleted, err := n.Delete(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Delete(missing): %v", err)
	}
	if deleted {
		t.Errorf("Delete(missing) = true, want false")
	}
}

func TestGetStatsReflectsLookupsAndKeys(t *testing.T) {
	n := singleNodeRing(t)
	ctx := context.Background()

	if _, _, _, err := n.Put(ctx, "a", "1", false, 0); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, _, _, err := n.Get(ctx, "a"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, _, err := n.FindSuccessor(ctx, n.Space().HashString("a")); err != nil {
		t.Fatalf("FindSuccessor: %v", err)
	}

	stats := n.GetStats(ctx)
	if stats.GetLookupCount() == 0 {
		t.Errorf("GetStats.LookupCount = 0, want > 0 after a FindSuccessor call")
	}
	if stats.GetOperationsCount() != 1 {
		t.Errorf("GetStats.OperationsCount = %d, want 1", stats.GetOperationsCount())
	}
	if stats.GetPrimaryKeys() != 1 {
		t.Errorf("GetStats.PrimaryKeys = %d, want 1", stats.GetPrimaryKeys())
	}
	if stats.GetReplicationFactor() != 3 {
		t.Errorf("GetStats.ReplicationFactor = %d, want 3", stats.GetReplicationFactor())
	}
	if stats.GetStatus() != "active" {
		t.Errorf("GetStats.Status = %q, want active", stats.GetStatus())
	}
}

func TestPingReturnsSelf(t *testing.T) {
	n := singleNodeRing(t)
	if got := n.Ping(); !got.Equal(n.Self()) {
		t.Errorf("Ping() = %v, want %v", got, n.Self())
	}
}

func TestFindSuccessorTerminatesLocallyOnSingleNodeRing(t *testing.T) {
	n := singleNodeRing(t)
	target := n.Space().HashString("whatever")

	succ, hops, err := n.FindSuccessor(context.Background(), target)
	if err != nil {
		t.Fatalf("FindSuccessor: %v", err)
	}
	if !succ.Equal(n.Self()) {
		t.Errorf("FindSuccessor successor = %v, want self %v", succ, n.Self())
	}
	if hops != 1 {
		t.Errorf("FindSuccessor hops = %d, want 1", hops)
	}
}

func TestContinueFindSuccessorDoesNotRecordTotalHops(t *testing.T) {
	n := singleNodeRing(t)
	target := n.Space().HashString("whatever")

	before := n.GetStats(context.Background()).GetTotalHops()
	if _, _, err := n.ContinueFindSuccessor(context.Background(), target, 5); err != nil {
		t.Fatalf("ContinueFindSuccessor: %v", err)
	}
	after := n.GetStats(context.Background()).GetTotalHops()
	if after != before {
		t.Errorf("ContinueFindSuccessor changed TotalHops from %d to %d, want unchanged", before, after)
	}
}
