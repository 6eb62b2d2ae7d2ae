package node

import (
	"context"
	"time"

	"chorddht/internal/domain"
	"chorddht/internal/logger"
)

// StartMaintenance launches the two long-running background workers
// (stabilize, fix-fingers) and the initialization gate. It returns
// immediately; both loops run until ctx is cancelled.
func (n *Node) StartMaintenance(ctx context.Context, stabilizeInterval, fixFingersInterval time.Duration) {
	n.markInitializedAfterGate()
	go n.stabilizeLoop(ctx, stabilizeInterval)
	go n.fixFingersLoop(ctx, fixFingersInterval)
}

func (n *Node) stabilizeLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.Stabilize(ctx)
		}
	}
}

func (n *Node) fixFingersLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.FixFingers(ctx)
		}
	}
}

// Stabilize runs one tick of the stabilization protocol (4.4): it verifies
// the successor is alive, possibly adopts a better successor discovered
// through it, notifies it of self, and rebuilds the successor list.
func (n *Node) Stabilize(ctx context.Context) {
	self := n.rt.Self()
	space := n.rt.Space()

	succ, ok := n.rt.FirstSuccessor()
	if !ok || succ.Equal(self) {
		return
	}

	probeCtx, cancel := context.WithTimeout(ctx, livenessPingTimeout)
	alive := n.rpc.Ping(probeCtx, succ.Addr()) == nil
	cancel()
	if !alive {
		n.lgr.Warn("stabilize: successor unreachable", logger.FNode("successor", succ))
		n.HandleSuccessorFailure()
		n.PromoteReplicasOnFailure(succ.ID)
		return
	}

	predCtx, cancel := context.WithTimeout(ctx, maintenanceTimeout)
	pred, found, err := n.rpc.GetPredecessor(predCtx, succ.Addr())
	cancel()
	if err == nil && found && !pred.ID.Equal(self.ID) && space.InRange(pred.ID, self.ID, succ.ID, false) {
		succ = pred
	}

	notifyCtx, cancel := context.WithTimeout(ctx, maintenanceTimeout)
	if err := n.rpc.Notify(notifyCtx, succ.Addr(), self); err != nil {
		n.lgr.Debug("stabilize: notify failed", logger.FNode("successor", succ), logger.F("err", err))
	}
	cancel()

	n.rebuildSuccessorList(ctx, succ)
}

// rebuildSuccessorList walks clockwise from first via GetSuccessor RPCs,
// filling the routing table's successor list up to its configured
// capacity, stopping on a cycle or after twice that many attempts.
func (n *Node) rebuildSuccessorList(ctx context.Context, first domain.NodeRef) {
	self := n.rt.Self()
	capacity := n.rt.SuccListSize()
	list := []domain.NodeRef{first}
	seen := map[string]bool{self.Addr(): true, first.Addr(): true}

	current := first
	maxAttempts := 2 * capacity
	for attempt := 0; attempt < maxAttempts && len(list) < capacity; attempt++ {
		hopCtx, cancel := context.WithTimeout(ctx, maintenanceTimeout)
		next, err := n.rpc.GetSuccessor(hopCtx, current.Addr())
		cancel()
		if err != nil {
			break
		}
		if next.Equal(self) || seen[next.Addr()] {
			break // cycle: the ring is smaller than capacity
		}
		list = append(list, next)
		seen[next.Addr()] = true
		current = next
	}

	n.rt.SetSuccessorList(list)
}

// HandleSuccessorFailure promotes the first alive entry of the current
// successor list (other than self) to be the new successor, falling back
// to a self-loop if none survive.
func (n *Node) HandleSuccessorFailure() {
	self := n.rt.Self()
	list := n.rt.SuccessorList()
	for i, candidate := range list {
		if i == 0 {
			continue // index 0 is the failed successor itself
		}
		if candidate.Equal(self) {
			continue
		}
		if !n.probe(context.Background(), candidate) {
			continue
		}
		n.rt.PromoteCandidate(i)
		n.lgr.Info("successor failure handled", logger.FNode("promoted", candidate))
		return
	}
	n.rt.SetSuccessorList([]domain.NodeRef{self})
	n.lgr.Warn("successor failure handled: no surviving candidate, falling back to self")
}

// PromoteReplicasOnFailure moves every replica-store entry that falls
// within this node's own ownership range into the primary store (the data
// the failed node failedID was replicating on our behalf, now ours to
// own), and re-replicates each promoted item to the current successors.
func (n *Node) PromoteReplicasOnFailure(failedID domain.ID) {
	self := n.rt.Self()
	pred, ok := n.rt.GetPredecessor()
	if !ok {
		pred = self
	}
	promoted := n.store.PromoteReplicasInRange(pred.ID, self.ID, true)
	if len(promoted) == 0 {
		return
	}
	n.lgr.Info("promoted replicas after successor failure",
		logger.F("failedId", failedID.ToHexString()), logger.F("count", len(promoted)))
	for _, item := range promoted {
		n.fanOutReplica(item)
	}
}

// FixFingers advances the round-robin finger cursor by one tick, resolving
// the current index's start identifier through a local lookup and storing
// the result. Errors are swallowed, per 4.4.
func (n *Node) FixFingers(ctx context.Context) {
	n.mu.Lock()
	i := n.fingerCursor
	n.fingerCursor = (n.fingerCursor + 1) % n.rt.NumFingers()
	n.mu.Unlock()

	start := n.rt.FingerStart(i)
	succ, _, err := n.routeFindSuccessor(ctx, start, 0)
	if err != nil {
		return
	}
	n.rt.SetFinger(i, succ)
}
