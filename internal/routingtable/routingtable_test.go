package routingtable

import (
	"testing"

	"chorddht/internal/domain"
)

func mkSelf(t *testing.T, id uint64) (domain.NodeRef, domain.Space) {
	t.Helper()
	sp, err := domain.NewSpace(8)
	if err != nil {
		t.Fatalf("NewSpace: %v", err)
	}
	return domain.NodeRef{ID: sp.FromUint64(id), Host: "127.0.0.1", Port: 5000}, sp
}

func TestInitSingleNode(t *testing.T) {
	self, sp := mkSelf(t, 10)
	rt := New(self, sp, 3)
	rt.InitSingleNode()

	if succ, ok := rt.FirstSuccessor(); !ok || !succ.Equal(self) {
		t.Errorf("FirstSuccessor = %v, %v; want self, true", succ, ok)
	}
	if pred, ok := rt.GetPredecessor(); !ok || !pred.Equal(self) {
		t.Errorf("GetPredecessor = %v, %v; want self, true", pred, ok)
	}
	for i := 0; i < rt.NumFingers(); i++ {
		if f, ok := rt.GetFinger(i); !ok || !f.Equal(self) {
			t.Errorf("GetFinger(%d) = %v, %v; want self, true", i, f, ok)
		}
	}
}

func TestSuccessorListRoundTrip(t *testing.T) {
	self, sp := mkSelf(t, 10)
	rt := New(self, sp, 3)

	a := domain.NodeRef{ID: sp.FromUint64(20), Host: "h1", Port: 1}
	b := domain.NodeRef{ID: sp.FromUint64(30), Host: "h2", Port: 2}
	rt.SetSuccessorList([]domain.NodeRef{a, b})

	list := rt.SuccessorList()
	if len(list) != 2 {
		t.Fatalf("SuccessorList length = %d, want 2", len(list))
	}
	if !list[0].Equal(a) || !list[1].Equal(b) {
		t.Errorf("SuccessorList = %v, want [%v %v]", list, a, b)
	}

	succ, ok := rt.FirstSuccessor()
	if !ok || !succ.Equal(a) {
		t.Errorf("FirstSuccessor = %v, %v; want %v, true", succ, ok, a)
	}
}

func TestPromoteCandidate(t *testing.T) {
	self, sp := mkSelf(t, 10)
	rt := New(self, sp, 4)

	a := domain.NodeRef{ID: sp.FromUint64(20), Host: "dead", Port: 1}
	b := domain.NodeRef{ID: sp.FromUint64(30), Host: "alive1", Port: 2}
	c := domain.NodeRef{ID: sp.FromUint64(40), Host: "alive2", Port: 3}
	rt.SetSuccessorList([]domain.NodeRef{a, b, c})

	rt.PromoteCandidate(1)

	list := rt.SuccessorList()
	if len(list) != 2 {
		t.Fatalf("SuccessorList length after promote = %d, want 2", len(list))
	}
	if !list[0].Equal(b) || !list[1].Equal(c) {
		t.Errorf("SuccessorList after promote = %v, want [%v %v]", list, b, c)
	}
}

func TestPromoteCandidateInvalidIndex(t *testing.T) {
	self, sp := mkSelf(t, 10)
	rt := New(self, sp, 3)
	a := domain.NodeRef{ID: sp.FromUint64(20), Host: "h", Port: 1}
	rt.SetSuccessorList([]domain.NodeRef{a})

	rt.PromoteCandidate(0)
	rt.PromoteCandidate(99)

	list := rt.SuccessorList()
	if len(list) != 1 || !list[0].Equal(a) {
		t.Errorf("SuccessorList after invalid promote = %v, want unchanged [%v]", list, a)
	}
}

func TestFingerTable(t *testing.T) {
	self, sp := mkSelf(t, 10)
	rt := New(self, sp, 3)

	f := domain.NodeRef{ID: sp.FromUint64(50), Host: "finger", Port: 9}
	rt.SetFinger(3, f)

	got, ok := rt.GetFinger(3)
	if !ok || !got.Equal(f) {
		t.Errorf("GetFinger(3) = %v, %v; want %v, true", got, ok, f)
	}

	if _, ok := rt.GetFinger(999); ok {
		t.Errorf("GetFinger(999) ok = true, want false for out-of-range index")
	}

	list := rt.FingerList()
	if len(list) != 1 || !list[0].Equal(f) {
		t.Errorf("FingerList = %v, want [%v]", list, f)
	}
}

func TestClearPredecessor(t *testing.T) {
	self, sp := mkSelf(t, 10)
	rt := New(self, sp, 3)

	other := domain.NodeRef{ID: sp.FromUint64(5), Host: "p", Port: 1}
	rt.SetPredecessor(other)
	if _, ok := rt.GetPredecessor(); !ok {
		t.Fatalf("GetPredecessor not set after SetPredecessor")
	}

	rt.ClearPredecessor()
	if _, ok := rt.GetPredecessor(); ok {
		t.Errorf("GetPredecessor still set after ClearPredecessor")
	}
}
