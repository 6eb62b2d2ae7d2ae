package node

import (
	"context"

	"chorddht/internal/domain"
	"chorddht/internal/logger"
)

// FindSuccessor resolves the node responsible for target, originating from
// this node: it runs the routing algorithm and, once it concludes, folds
// the final hop count into this node's own stats. Used by the exported
// Put/Get/Delete paths — the single place total_hops is recorded, so a
// hop relayed on behalf of another node's lookup never inflates this
// node's own average.
func (n *Node) FindSuccessor(ctx context.Context, target domain.ID) (domain.NodeRef, int32, error) {
	succ, hops, err := n.routeFindSuccessor(ctx, target, 0)
	if err == nil {
		n.recordLookup(uint64(hops))
	}
	return succ, hops, err
}

// ContinueFindSuccessor answers a peer's forwarded FindSuccessor RPC: it
// resumes routing at the hop count carried on the wire and never touches
// total_hops, since this node is relaying someone else's lookup rather than
// originating one. Used by the dht_service wire handler.
func (n *Node) ContinueFindSuccessor(ctx context.Context, target domain.ID, hops int32) (domain.NodeRef, int32, error) {
	return n.routeFindSuccessor(ctx, target, hops)
}

// routeFindSuccessor implements the routing algorithm itself (4.3): it
// never touches total_hops, only lookup_count, and only when it terminates
// the search locally. It is called both for a node's own lookups and by
// the DHT service when answering a peer's FindSuccessor RPC.
func (n *Node) routeFindSuccessor(ctx context.Context, target domain.ID, hops int32) (domain.NodeRef, int32, error) {
	self := n.rt.Self()
	space := n.rt.Space()

	succ, ok := n.rt.FirstSuccessor()
	if !ok {
		// Not yet part of any ring; only self is known.
		n.bumpLookupCount()
		return self, hops + 1, nil
	}

	if space.InRange(target, self.ID, succ.ID, true) {
		n.bumpLookupCount()
		return succ, hops + 1, nil
	}

	next := n.closestPrecedingFinger(ctx, target)
	if next.Equal(self) {
		n.bumpLookupCount()
		return succ, hops + 1, nil
	}

	hopCtx, cancel := context.WithTimeout(ctx, lookupHopTimeout)
	defer cancel()
	res, newHops, err := n.rpc.FindSuccessor(hopCtx, next.Addr(), target, hops+1)
	if err != nil {
		n.lgr.Warn("FindSuccessor: forward failed, falling back to local successor",
			logger.FNode("next", next), logger.F("err", err))
		n.bumpLookupCount()
		return succ, hops + 1, nil
	}
	return res, newHops, nil
}

func (n *Node) bumpLookupCount() {
	n.mu.Lock()
	n.lookupCount++
	n.mu.Unlock()
}

// closestPrecedingFinger scans the finger table from the widest reach down
// to the narrowest, returning the first live finger strictly between self
// and target. Falling back to the successor list, and finally to self,
// exactly as 4.3 describes.
func (n *Node) closestPrecedingFinger(ctx context.Context, target domain.ID) domain.NodeRef {
	self := n.rt.Self()
	space := n.rt.Space()

	for i := space.Bits - 1; i >= 0; i-- {
		f, ok := n.rt.GetFinger(i)
		if !ok || f.Equal(self) {
			continue
		}
		if !space.InRange(f.ID, self.ID, target, false) {
			continue
		}
		if n.probe(ctx, f) {
			return f
		}
	}

	for _, s := range n.rt.SuccessorList() {
		if s.Equal(self) {
			continue
		}
		if !space.InRange(s.ID, self.ID, target, false) {
			continue
		}
		if n.probe(ctx, s) {
			return s
		}
	}

	return self
}

// probe issues a short-timeout Ping at candidate, used to keep routing
// resilient against stale finger/successor entries.
func (n *Node) probe(ctx context.Context, candidate domain.NodeRef) bool {
	pingCtx, cancel := context.WithTimeout(ctx, livenessPingTimeout)
	defer cancel()
	return n.rpc.Ping(pingCtx, candidate.Addr()) == nil
}
