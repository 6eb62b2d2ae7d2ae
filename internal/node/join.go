package node

import (
	"context"
	"fmt"

	"chorddht/internal/domain"
	"chorddht/internal/logger"
)

// CreateSingleNodeRing bootstraps this node as the sole member of a new
// ring: every routing pointer resolves to self. The initialization gate
// starts counting later, in StartMaintenance.
func (n *Node) CreateSingleNodeRing() {
	n.rt.InitSingleNode()
	n.lgr.Info("bootstrapped single-node ring", logger.FNode("self", n.rt.Self()))
}

// JoinRing is the client-initiated half of 4.5: it tries each known peer
// address in turn, issuing Join until one admits it, then seeds its own
// successor and successor list from the reply.
func (n *Node) JoinRing(ctx context.Context, peers []string) error {
	self := n.rt.Self()
	var lastErr error
	for _, addr := range peers {
		joinCtx, cancel := context.WithTimeout(ctx, maintenanceTimeout)
		oldSuccessor, _, err := n.rpc.Join(joinCtx, addr, self)
		cancel()
		if err != nil {
			n.lgr.Warn("join attempt failed", logger.F("peer", addr), logger.F("err", err))
			lastErr = err
			continue
		}
		n.rebuildSuccessorList(ctx, oldSuccessor)
		n.lgr.Info("joined ring", logger.F("via", addr), logger.FNode("successor", oldSuccessor))
		return nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no peers supplied")
	}
	return fmt.Errorf("join ring: %w", lastErr)
}

// Join is the handler side of 4.5: it decides whether joining falls
// between self and the current successor, admitting it directly, or
// forwards the request further along the ring.
func (n *Node) Join(ctx context.Context, joining domain.NodeRef) (domain.NodeRef, error) {
	self := n.rt.Self()
	space := n.rt.Space()

	succ, ok := n.rt.FirstSuccessor()
	if !ok || succ.Equal(self) || space.InRange(joining.ID, self.ID, succ.ID, false) {
		old := succ
		if !ok {
			old = self
		}
		n.rt.SetSuccessor(0, joining)
		n.rt.SetSuccessorList([]domain.NodeRef{joining})
		n.lgr.Info("admitted joining node", logger.FNode("joining", joining), logger.FNode("oldSuccessor", old))
		return old, nil
	}

	fwdCtx, cancel := context.WithTimeout(ctx, maintenanceTimeout)
	defer cancel()
	old, _, err := n.rpc.Join(fwdCtx, succ.Addr(), joining)
	if err != nil {
		return domain.NodeRef{}, fmt.Errorf("forward join to %s: %w", succ, err)
	}
	return old, nil
}

// Notify is the handler side of 4.5's predecessor update: it adopts
// candidate as predecessor when appropriate, and if a different
// predecessor existed before, spawns a detached goroutine to hand off the
// keys candidate now owns.
func (n *Node) Notify(candidate domain.NodeRef) {
	self := n.rt.Self()
	space := n.rt.Space()

	oldPred, hadPred := n.rt.GetPredecessor()
	if hadPred && !space.InRange(candidate.ID, oldPred.ID, self.ID, false) {
		return
	}
	n.rt.SetPredecessor(candidate)

	if !hadPred || oldPred.Equal(candidate) {
		return
	}
	go n.handOffKeys(oldPred.ID, candidate)
}

// handOffKeys transfers every primary-store item in (oldPredID, candidate.id]
// to candidate via Put RPCs, deleting each entry locally once acknowledged.
// Runs on its own goroutine per Notify call, never blocking the RPC that
// triggered it.
func (n *Node) handOffKeys(oldPredID domain.ID, candidate domain.NodeRef) {
	items := n.store.PrimaryInRange(oldPredID, candidate.ID, true)
	if len(items) == 0 {
		return
	}
	var transferred []string
	for _, item := range items {
		ctx, cancel := context.WithTimeout(context.Background(), keyTransferTimeout)
		_, _, _, err := n.rpc.Put(ctx, candidate.Addr(), item.Key, item.Value, false, item.Version)
		cancel()
		if err != nil {
			n.lgr.Warn("key hand-off failed", logger.F("key", item.Key), logger.FNode("to", candidate), logger.F("err", err))
			continue
		}
		transferred = append(transferred, item.Key)
	}
	if len(transferred) > 0 {
		n.store.RemovePrimaryKeys(transferred)
		n.lgr.Info("keys handed off", logger.FNode("to", candidate), logger.F("count", len(transferred)))
	}
}

// TransferKeys is the handler side of the bulk hand-off path: every
// primary-store item whose id falls in [start, end] is removed locally and
// returned to the caller in one batch. target identifies who the caller
// intends to hand the batch to; this node doesn't push the items there
// itself (the caller already holds the batch after this call returns), but
// the identity is logged so a hand-off can be traced end to end.
func (n *Node) TransferKeys(start, end domain.ID, target domain.NodeRef) []domain.Item {
	space := n.rt.Space()
	from := start
	if space.IsValidID(start) == nil && !start.Equal(end) {
		// PrimaryInRange's inclusive arc is (from, end]; starting one below
		// start (adding 2^Bits-1 subtracts one) makes it [start, end].
		minusOne := make(domain.ID, space.ByteLen)
		for i := range minusOne {
			minusOne[i] = 0xFF
		}
		from = space.AddMod(start, minusOne)
	}
	items := n.store.PrimaryInRange(from, end, true)
	if len(items) == 0 {
		return items
	}
	keys := make([]string, 0, len(items))
	for _, it := range items {
		keys = append(keys, it.Key)
	}
	n.store.RemovePrimaryKeys(keys)
	n.lgr.Info("transferred keys", logger.FNode("to", target), logger.F("count", len(items)))
	return items
}
