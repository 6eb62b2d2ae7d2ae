package storage

import (
	"testing"

	"chorddht/internal/domain"
	"chorddht/internal/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	sp, err := domain.NewSpace(16)
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	return NewMemoryStore(&logger.NopLogger{}, sp)
}

func TestPutPrimaryVersionMonotonic(t *testing.T) {
	s := newTestStore(t)

	first := s.PutPrimary("k", "v1", 1000)
	if first.Version != 1 {
		t.Fatalf("first PutPrimary version = %d, want 1", first.Version)
	}
	second := s.PutPrimary("k", "v2", 1001)
	if second.Version != 2 {
		t.Fatalf("second PutPrimary version = %d, want 2", second.Version)
	}

	got, ok := s.GetPrimary("k")
	if !ok || got.Value != "v2" || got.Version != 2 {
		t.Errorf("GetPrimary after two puts = %+v, %v; want v2/2", got, ok)
	}
}

func TestPutReplicaRejectsStaleVersion(t *testing.T) {
	s := newTestStore(t)

	s.PutReplica(domain.Item{Key: "k", Value: "v2", Version: 2, Timestamp: 10})
	s.PutReplica(domain.Item{Key: "k", Value: "v1-stale", Version: 1, Timestamp: 20})

	got, ok := s.GetReplica("k")
	if !ok || got.Value != "v2" || got.Version != 2 {
		t.Errorf("GetReplica after stale write = %+v, %v; want v2/2 unchanged", got, ok)
	}
}

func TestPutReplicaIdempotentOnEqualVersion(t *testing.T) {
	s := newTestStore(t)

	item := domain.Item{Key: "k", Value: "v1", Version: 1, Timestamp: 10}
	s.PutReplica(item)
	s.PutReplica(item)

	got, ok := s.GetReplica("k")
	if !ok || got.Value != item.Value || got.Version != item.Version {
		t.Errorf("GetReplica after repeated identical write = %+v, %v; want unchanged %+v", got, ok, item)
	}
}

func TestGetFallsBackFromPrimaryToReplica(t *testing.T) {
	s := newTestStore(t)

	s.PutReplica(domain.Item{Key: "repl-only", Value: "r", Version: 1})
	got, ok := s.Get("repl-only")
	if !ok || got.Value != "r" {
		t.Fatalf("Get(repl-only) = %+v, %v; want r, true", got, ok)
	}

	s.PutPrimary("both", "primary-value", 0)
	s.PutReplica(domain.Item{Key: "both", Value: "replica-value", Version: 1})
	got, ok = s.Get("both")
	if !ok || got.Value != "primary-value" {
		t.Errorf("Get(both) = %+v, %v; want primary value to win", got, ok)
	}

	if _, ok := s.Get("missing"); ok {
		t.Errorf("Get(missing) ok = true, want false")
	}
}

func TestDeletePrimaryAndReplicaAreIndependent(t *testing.T) {
	s := newTestStore(t)

	s.PutPrimary("p", "v", 0)
	if !s.DeletePrimary("p") {
		t.Errorf("DeletePrimary(p) = false, want true")
	}
	if _, ok := s.GetPrimary("p"); ok {
		t.Errorf("GetPrimary(p) still present after DeletePrimary")
	}

	s.PutReplica(domain.Item{Key: "r", Value: "v", Version: 1})
	if !s.DeleteReplica("r") {
		t.Errorf("DeleteReplica(r) = false, want true")
	}
	if _, ok := s.GetReplica("r"); ok {
		t.Errorf("GetReplica(r) still present after DeleteReplica")
	}

	if s.DeletePrimary("missing") {
		t.Errorf("DeletePrimary(missing) = true, want false")
	}
	if s.DeleteReplica("missing") {
		t.Errorf("DeleteReplica(missing) = true, want false")
	}

	// A key present in one tier is untouched by deleting the other.
	s.PutPrimary("both", "v", 0)
	s.PutReplica(domain.Item{Key: "both", Value: "v", Version: 1})
	s.DeleteReplica("both")
	if _, ok := s.GetPrimary("both"); !ok {
		t.Errorf("GetPrimary(both) missing after DeleteReplica; tiers should be independent")
	}
}

func TestPromoteReplicasInRange(t *testing.T) {
	s := newTestStore(t)
	sp, _ := domain.NewSpace(16)

	inRange := domain.Item{Key: "in", ID: sp.FromUint64(50), Value: "v", Version: 1}
	outOfRange := domain.Item{Key: "out", ID: sp.FromUint64(500), Value: "v", Version: 1}
	s.PutReplica(inRange)
	s.PutReplica(outOfRange)

	promoted := s.PromoteReplicasInRange(sp.FromUint64(0), sp.FromUint64(100), true)
	if len(promoted) != 1 || promoted[0].Key != "in" {
		t.Fatalf("PromoteReplicasInRange = %+v, want exactly [in]", promoted)
	}

	if _, ok := s.GetReplica("in"); ok {
		t.Errorf("promoted key still present in replica store")
	}
	if _, ok := s.GetPrimary("in"); !ok {
		t.Errorf("promoted key not present in primary store")
	}
	if _, ok := s.GetReplica("out"); !ok {
		t.Errorf("out-of-range key was incorrectly promoted/removed")
	}
}

func TestPrimaryUpTo(t *testing.T) {
	s := newTestStore(t)
	sp, _ := domain.NewSpace(16)

	low := domain.Item{Key: "low", ID: sp.FromUint64(10), Value: "v"}
	high := domain.Item{Key: "high", ID: sp.FromUint64(1000), Value: "v"}
	s.primary["low"] = low
	s.primary["high"] = high

	got := s.PrimaryUpTo(sp.FromUint64(100))
	if len(got) != 1 || got[0].Key != "low" {
		t.Fatalf("PrimaryUpTo = %+v, want exactly [low]", got)
	}
	if _, ok := s.GetPrimary("low"); ok {
		t.Errorf("PrimaryUpTo did not remove transferred key")
	}
	if _, ok := s.GetPrimary("high"); !ok {
		t.Errorf("PrimaryUpTo removed a key above the bound")
	}
}

func TestCounts(t *testing.T) {
	s := newTestStore(t)
	s.PutPrimary("a", "1", 0)
	s.PutPrimary("b", "2", 0)
	s.PutReplica(domain.Item{Key: "c", Value: "3", Version: 1})

	if got := s.PrimaryCount(); got != 2 {
		t.Errorf("PrimaryCount = %d, want 2", got)
	}
	if got := s.ReplicaCount(); got != 1 {
		t.Errorf("ReplicaCount = %d, want 1", got)
	}
}
