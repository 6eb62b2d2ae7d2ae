package routingtable

import (
	"fmt"
	"sync"

	"chorddht/internal/domain"
	"chorddht/internal/logger"
)

// routingEntry holds one node pointer behind its own lock, so readers of
// one finger or successor-list slot never block on another.
type routingEntry struct {
	node domain.NodeRef
	set  bool
	mu   sync.RWMutex
}

func (e *routingEntry) get() (domain.NodeRef, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.node, e.set
}

func (e *routingEntry) set_(n domain.NodeRef, ok bool) {
	e.mu.Lock()
	e.node, e.set = n, ok
	e.mu.Unlock()
}

// RoutingTable holds the routing state of one ring member: its successor
// list (fault tolerance) and finger table (O(log N) routing), plus its
// predecessor pointer.
type RoutingTable struct {
	logger logger.Logger
	space  domain.Space
	self   domain.NodeRef

	successorList []*routingEntry
	succListSize  int

	predecessor *routingEntry

	// fingers[i] routes to the successor of (self.ID + 2^i) mod N,
	// i in [0, space.Bits).
	fingers []*routingEntry
}

// New creates a RoutingTable for self, with succListSize successor slots
// and space.Bits finger slots, all initially empty.
func New(self domain.NodeRef, space domain.Space, succListSize int, opts ...Option) *RoutingTable {
	rt := &RoutingTable{
		self:          self,
		space:         space,
		successorList: make([]*routingEntry, succListSize),
		succListSize:  succListSize,
		predecessor:   &routingEntry{},
		fingers:       make([]*routingEntry, space.Bits),
		logger:        &logger.NopLogger{},
	}
	for i := range rt.successorList {
		rt.successorList[i] = &routingEntry{}
	}
	for i := range rt.fingers {
		rt.fingers[i] = &routingEntry{}
	}
	for _, opt := range opts {
		opt(rt)
	}
	rt.logger.Debug("routing table initialized")
	return rt
}

// InitSingleNode configures the table for a freshly bootstrapped one-node
// ring: every pointer (successors, predecessor, fingers) resolves to self.
func (rt *RoutingTable) InitSingleNode() {
	rt.successorList[0].set_(rt.self, true)
	rt.predecessor.set_(rt.self, true)
	for _, f := range rt.fingers {
		f.set_(rt.self, true)
	}
	rt.logger.Debug("routing table initialized as single-node ring")
}

// Space returns the identifier space this table routes over.
func (rt *RoutingTable) Space() domain.Space {
	return rt.space
}

// Self returns the local node owning this routing table.
func (rt *RoutingTable) Self() domain.NodeRef {
	return rt.self
}

// SuccListSize returns the configured successor-list length.
func (rt *RoutingTable) SuccListSize() int {
	return rt.succListSize
}

// GetSuccessor returns the i-th entry of the successor list and whether it
// is set.
func (rt *RoutingTable) GetSuccessor(i int) (domain.NodeRef, bool) {
	if i < 0 || i >= len(rt.successorList) {
		rt.logger.Warn("GetSuccessor: index out of range",
			logger.F("requested", i), logger.F("valid_range", fmt.Sprintf("[0..%d]", len(rt.successorList)-1)))
		return domain.NodeRef{}, false
	}
	return rt.successorList[i].get()
}

// FirstSuccessor is GetSuccessor(0).
func (rt *RoutingTable) FirstSuccessor() (domain.NodeRef, bool) {
	return rt.GetSuccessor(0)
}

// SetSuccessor updates the i-th successor-list slot.
func (rt *RoutingTable) SetSuccessor(i int, node domain.NodeRef) {
	if i < 0 || i >= len(rt.successorList) {
		rt.logger.Warn("SetSuccessor: index out of range",
			logger.F("requested", i), logger.F("valid_range", fmt.Sprintf("[0..%d]", len(rt.successorList)-1)))
		return
	}
	rt.successorList[i].set_(node, true)
	rt.logger.Debug("SetSuccessor: updated", logger.F("index", i), logger.FNode("successor", node))
}

// ClearSuccessor empties the i-th successor-list slot.
func (rt *RoutingTable) ClearSuccessor(i int) {
	if i < 0 || i >= len(rt.successorList) {
		return
	}
	rt.successorList[i].set_(domain.NodeRef{}, false)
}

// SuccessorList returns a snapshot of the currently set successors, in
// order, skipping empty slots.
func (rt *RoutingTable) SuccessorList() []domain.NodeRef {
	out := make([]domain.NodeRef, 0, len(rt.successorList))
	for _, entry := range rt.successorList {
		if n, ok := entry.get(); ok {
			out = append(out, n)
		}
	}
	return out
}

// SetSuccessorList overwrites the whole successor list. nodes may be
// shorter than the configured size; remaining slots are cleared.
func (rt *RoutingTable) SetSuccessorList(nodes []domain.NodeRef) {
	for i := range rt.successorList {
		if i < len(nodes) {
			rt.successorList[i].set_(nodes[i], true)
		} else {
			rt.successorList[i].set_(domain.NodeRef{}, false)
		}
	}
	rt.logger.Debug("SetSuccessorList: successor list replaced", logger.F("count", len(nodes)))
}

// PromoteCandidate drops the dead successor at index 0 (and any entries
// before i), shifting the successor currently at index i to the front, and
// pads the tail with empty slots. Used by HandleSuccessorFailure.
func (rt *RoutingTable) PromoteCandidate(i int) {
	if i <= 0 || i >= rt.succListSize {
		rt.logger.Warn("PromoteCandidate: invalid index",
			logger.F("requested", i), logger.F("valid_range", fmt.Sprintf("[1..%d]", rt.succListSize-1)))
		return
	}
	candidate, ok := rt.GetSuccessor(i)
	if !ok {
		rt.logger.Warn("PromoteCandidate: candidate slot empty", logger.F("index", i))
		return
	}
	newList := make([]domain.NodeRef, 0, rt.succListSize)
	newList = append(newList, candidate)
	for j := i + 1; j < rt.succListSize; j++ {
		if n, ok := rt.GetSuccessor(j); ok {
			newList = append(newList, n)
		}
	}
	rt.SetSuccessorList(newList)
	rt.logger.Debug("PromoteCandidate: successor promoted", logger.F("from_index", i), logger.FNode("candidate", candidate))
}

// GetPredecessor returns the current predecessor, if any.
func (rt *RoutingTable) GetPredecessor() (domain.NodeRef, bool) {
	n, ok := rt.predecessor.get()
	rt.logger.Debug("GetPredecessor: retrieved", logger.FNode("predecessor", n))
	return n, ok
}

// SetPredecessor updates the predecessor pointer.
func (rt *RoutingTable) SetPredecessor(node domain.NodeRef) {
	rt.predecessor.set_(node, true)
	rt.logger.Debug("SetPredecessor: updated", logger.FNode("predecessor", node))
}

// ClearPredecessor unsets the predecessor pointer (used when it is found
// to have failed and no replacement is known yet).
func (rt *RoutingTable) ClearPredecessor() {
	rt.predecessor.set_(domain.NodeRef{}, false)
}

// GetFinger returns the i-th finger-table entry.
func (rt *RoutingTable) GetFinger(i int) (domain.NodeRef, bool) {
	if i < 0 || i >= len(rt.fingers) {
		rt.logger.Warn("GetFinger: index out of range",
			logger.F("requested", i), logger.F("valid_range", fmt.Sprintf("[0..%d]", len(rt.fingers)-1)))
		return domain.NodeRef{}, false
	}
	return rt.fingers[i].get()
}

// SetFinger updates the i-th finger-table entry.
func (rt *RoutingTable) SetFinger(i int, node domain.NodeRef) {
	if i < 0 || i >= len(rt.fingers) {
		rt.logger.Warn("SetFinger: index out of range",
			logger.F("requested", i), logger.F("valid_range", fmt.Sprintf("[0..%d]", len(rt.fingers)-1)))
		return
	}
	rt.fingers[i].set_(node, true)
	rt.logger.Debug("SetFinger: updated", logger.F("index", i), logger.FNode("node", node))
}

// FingerStart returns (self.ID + 2^i) mod N, the identifier finger i routes
// towards.
func (rt *RoutingTable) FingerStart(i int) domain.ID {
	return rt.space.FingerStart(rt.self.ID, i)
}

// FingerList returns a snapshot of all currently set finger entries, in
// table order, skipping empty slots.
func (rt *RoutingTable) FingerList() []domain.NodeRef {
	out := make([]domain.NodeRef, 0, len(rt.fingers))
	for _, entry := range rt.fingers {
		if n, ok := entry.get(); ok {
			out = append(out, n)
		}
	}
	return out
}

// NumFingers returns the configured finger-table length (space.Bits).
func (rt *RoutingTable) NumFingers() int {
	return len(rt.fingers)
}
