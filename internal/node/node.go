// Package node implements the Chord protocol logic running on one ring
// member: lookups, stabilization, join/key hand-off, and the key-value
// operations exposed over the wire by internal/server.
package node

import (
	"sync"
	"time"

	"chorddht/internal/client"
	"chorddht/internal/domain"
	"chorddht/internal/logger"
	"chorddht/internal/routingtable"
	"chorddht/internal/storage"
)

// Timeouts for the various classes of outbound RPC, per the node's
// concurrency model: every blocking point carries an explicit deadline.
const (
	lookupHopTimeout    = 5 * time.Second
	maintenanceTimeout  = 2 * time.Second
	livenessPingTimeout = 1 * time.Second
	replicaFanoutTimeout = 3 * time.Second
	keyTransferTimeout  = 3 * time.Second
	initializationGate  = 5 * time.Second
)

// Node holds the routing and storage state of one Chord ring member plus
// the bookkeeping (lookup/hop counters, initialization gate) needed to
// answer GetStats and to gate replication during bootstrap.
type Node struct {
	lgr   logger.Logger
	rt    *routingtable.RoutingTable
	store *storage.Store
	pool  *client.Pool
	rpc   *client.Handler

	replicationFactor int // R: successors replicated to and counted in stats

	mu           sync.Mutex
	initialized  bool
	fingerCursor int
	lookupCount  uint64
	totalHops    uint64

	startedAt time.Time
}

// New builds a Node bound to rt/store/pool. The node starts uninitialized;
// call CreateSingleNodeRing or JoinRing before serving traffic, then
// StartMaintenance to begin the background loops.
func New(rt *routingtable.RoutingTable, store *storage.Store, pool *client.Pool, replicationFactor int, opts ...Option) *Node {
	n := &Node{
		rt:                rt,
		store:             store,
		pool:              pool,
		rpc:               client.NewHandler(pool),
		replicationFactor: replicationFactor,
		lgr:               &logger.NopLogger{},
		startedAt:         time.Now(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Self returns this node's own identity.
func (n *Node) Self() domain.NodeRef {
	return n.rt.Self()
}

// Predecessor returns the current predecessor, if known.
func (n *Node) Predecessor() (domain.NodeRef, bool) {
	return n.rt.GetPredecessor()
}

// SuccessorList returns a snapshot of the current successor list.
func (n *Node) SuccessorList() []domain.NodeRef {
	return n.rt.SuccessorList()
}

// Space returns the identifier space this node routes over.
func (n *Node) Space() domain.Space {
	return n.rt.Space()
}

// isOwner reports whether this node is responsible for id: true when there
// is no predecessor (bootstrap / single-node ring), or when id falls in
// (predecessor, self].
func (n *Node) isOwner(id domain.ID) bool {
	self := n.rt.Self()
	pred, ok := n.rt.GetPredecessor()
	if !ok {
		return true
	}
	return n.rt.Space().InRange(id, pred.ID, self.ID, true)
}

// isInitialized reports whether the post-bootstrap gate (4.4) has opened,
// i.e. whether Put should fan out replicas yet.
func (n *Node) isInitialized() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.initialized
}

// markInitializedAfterGate flips the initialization flag once
// initializationGate has elapsed since this call (made by StartMaintenance).
func (n *Node) markInitializedAfterGate() {
	time.AfterFunc(initializationGate, func() {
		n.mu.Lock()
		n.initialized = true
		n.mu.Unlock()
		n.lgr.Info("node initialization gate elapsed, replication active")
	})
}

func (n *Node) recordLookup(hops uint64) {
	n.mu.Lock()
	n.lookupCount++
	n.totalHops += hops
	n.mu.Unlock()
}
