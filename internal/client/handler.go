// Package client wraps the generated gRPC stubs with a connection pool and
// sentinel-error translation, so the node package never touches
// codes.Code or *status.Status directly.
package client

import (
	"context"
	"errors"
	"fmt"

	dhtv1 "chorddht/internal/api/dht/v1"
	"chorddht/internal/domain"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sentinel errors surfaced by Handler methods, translated from gRPC status
// codes by normalizeError.
var (
	ErrUnavailable      = errors.New("peer unavailable")
	ErrDeadlineExceeded = errors.New("peer call deadline exceeded")
	ErrNotFound         = errors.New("not found")
	ErrInternal         = errors.New("internal peer error")
)

// Handler issues RPCs against peer nodes through a Pool, translating
// transport errors into the sentinels above.
type Handler struct {
	pool *Pool
}

// NewHandler builds a Handler backed by pool.
func NewHandler(pool *Pool) *Handler {
	return &Handler{pool: pool}
}

func normalizeError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.Unavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrDeadlineExceeded, st.Message())
	default:
		return fmt.Errorf("%w: %s", ErrInternal, st.Message())
	}
}

func (h *Handler) client(addr string) (dhtv1.DHTClient, error) {
	c, err := h.pool.Get(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return c, nil
}

// Ping checks liveness of the peer at addr.
func (h *Handler) Ping(ctx context.Context, addr string) error {
	c, err := h.client(addr)
	if err != nil {
		return err
	}
	_, err = c.Ping(ctx, &dhtv1.PingRequest{})
	return normalizeError(err)
}

// FindSuccessor asks the peer at addr for the successor of target, carrying
// and returning the accumulated hop count for GetStats bookkeeping.
func (h *Handler) FindSuccessor(ctx context.Context, addr string, target domain.ID, hops int32) (domain.NodeRef, int32, error) {
	c, err := h.client(addr)
	if err != nil {
		return domain.NodeRef{}, hops, err
	}
	resp, err := c.FindSuccessor(ctx, &dhtv1.FindSuccessorRequest{TargetId: []byte(target), Hops: hops})
	if err != nil {
		return domain.NodeRef{}, hops, normalizeError(err)
	}
	return domain.NodeFromProto(resp.GetSuccessor()), resp.GetHops(), nil
}

// GetPredecessor asks the peer at addr for its current predecessor.
func (h *Handler) GetPredecessor(ctx context.Context, addr string) (domain.NodeRef, bool, error) {
	c, err := h.client(addr)
	if err != nil {
		return domain.NodeRef{}, false, err
	}
	resp, err := c.GetPredecessor(ctx, &dhtv1.Empty{})
	if err != nil {
		return domain.NodeRef{}, false, normalizeError(err)
	}
	return domain.NodeFromProto(resp.GetPredecessor()), resp.GetFound(), nil
}

// GetSuccessor asks the peer at addr for its immediate successor.
func (h *Handler) GetSuccessor(ctx context.Context, addr string) (domain.NodeRef, error) {
	c, err := h.client(addr)
	if err != nil {
		return domain.NodeRef{}, err
	}
	resp, err := c.GetSuccessor(ctx, &dhtv1.Empty{})
	if err != nil {
		return domain.NodeRef{}, normalizeError(err)
	}
	return domain.NodeFromProto(resp.GetSuccessor()), nil
}

// GetSuccessorList asks the peer at addr for its full successor list.
func (h *Handler) GetSuccessorList(ctx context.Context, addr string) ([]domain.NodeRef, error) {
	c, err := h.client(addr)
	if err != nil {
		return nil, err
	}
	resp, err := c.GetSuccessorList(ctx, &dhtv1.Empty{})
	if err != nil {
		return nil, normalizeError(err)
	}
	out := make([]domain.NodeRef, 0, len(resp.GetSuccessors()))
	for _, p := range resp.GetSuccessors() {
		out = append(out, domain.NodeFromProto(p))
	}
	return out, nil
}

// Notify informs the peer at addr that candidate believes it may be its
// predecessor.
func (h *Handler) Notify(ctx context.Context, addr string, candidate domain.NodeRef) error {
	c, err := h.client(addr)
	if err != nil {
		return err
	}
	_, err = c.Notify(ctx, &dhtv1.NotifyRequest{Candidate: candidate.ToProto()})
	return normalizeError(err)
}

// Join asks the peer at addr (an existing ring member) to admit joining.
func (h *Handler) Join(ctx context.Context, addr string, joining domain.NodeRef) (domain.NodeRef, domain.NodeRef, error) {
	c, err := h.client(addr)
	if err != nil {
		return domain.NodeRef{}, domain.NodeRef{}, err
	}
	resp, err := c.Join(ctx, &dhtv1.JoinRequest{Joining: joining.ToProto()})
	if err != nil {
		return domain.NodeRef{}, domain.NodeRef{}, normalizeError(err)
	}
	if !resp.GetSuccess() {
		return domain.NodeRef{}, domain.NodeRef{}, fmt.Errorf("%w: %s", ErrInternal, resp.GetMessage())
	}
	return domain.NodeFromProto(resp.GetSuccessor()), domain.NodeFromProto(resp.GetPredecessor()), nil
}

// TransferKeys asks the peer at addr for every item it holds with an
// identifier in [start, end], as part of a hand-off to target.
func (h *Handler) TransferKeys(ctx context.Context, addr string, start, end domain.ID, target domain.NodeRef) ([]domain.Item, error) {
	c, err := h.client(addr)
	if err != nil {
		return nil, err
	}
	resp, err := c.TransferKeys(ctx, &dhtv1.TransferKeysRequest{
		StartId: []byte(start), EndId: []byte(end), TargetNode: target.ToProto(),
	})
	if err != nil {
		return nil, normalizeError(err)
	}
	if !resp.GetSuccess() {
		return nil, fmt.Errorf("%w: %s", ErrInternal, resp.GetMessage())
	}
	out := make([]domain.Item, 0, len(resp.GetItems()))
	for _, p := range resp.GetItems() {
		out = append(out, domain.Item{Key: p.GetKey(), Value: p.GetValue(), Version: p.GetVersion(), Timestamp: p.GetTimestamp()})
	}
	return out, nil
}

// Put writes key/value at the peer addr, which may itself forward the
// write if it isn't the owner. isReplica/version carry a replica-tagged
// write through unchanged; a normal client write passes isReplica=false and
// version=0, letting the owner assign the next version.
func (h *Handler) Put(ctx context.Context, addr, key, value string, isReplica bool, version uint64) (uint64, bool, string, error) {
	c, err := h.client(addr)
	if err != nil {
		return 0, false, "", err
	}
	resp, err := c.Put(ctx, &dhtv1.PutRequest{Key: key, Value: value, IsReplica: isReplica, Version: version})
	if err != nil {
		return 0, false, "", normalizeError(err)
	}
	if !resp.GetSuccess() {
		return 0, false, resp.GetMessage(), fmt.Errorf("%w: %s", ErrInternal, resp.GetMessage())
	}
	return resp.GetVersion(), resp.GetForwarded(), resp.GetMessage(), nil
}

// SyncReplica pushes a versioned replica write to the peer at addr.
func (h *Handler) SyncReplica(ctx context.Context, addr string, item domain.Item) error {
	c, err := h.client(addr)
	if err != nil {
		return err
	}
	resp, err := c.SyncReplica(ctx, &dhtv1.SyncReplicaRequest{
		Key: item.Key, Value: item.Value, Version: item.Version, Timestamp: item.Timestamp,
	})
	if err != nil {
		return normalizeError(err)
	}
	if !resp.GetSuccess() {
		return fmt.Errorf("%w: replica write not acknowledged", ErrInternal)
	}
	return nil
}

// Get reads key from the peer at addr.
func (h *Handler) Get(ctx context.Context, addr, key string) (string, uint64, bool, error) {
	c, err := h.client(addr)
	if err != nil {
		return "", 0, false, err
	}
	resp, err := c.Get(ctx, &dhtv1.GetRequest{Key: key})
	if err != nil {
		return "", 0, false, normalizeError(err)
	}
	return resp.GetValue(), resp.GetVersion(), resp.GetFound(), nil
}

// Delete removes key at the peer addr. isReplica selects a replica-store
// delete (no further routing or fan-out) versus a primary delete (which the
// peer fans out to its own successor list).
func (h *Handler) Delete(ctx context.Context, addr, key string, isReplica bool) (bool, error) {
	c, err := h.client(addr)
	if err != nil {
		return false, err
	}
	resp, err := c.Delete(ctx, &dhtv1.DeleteRequest{Key: key, IsReplica: isReplica})
	if err != nil {
		return false, normalizeError(err)
	}
	return resp.GetSuccess(), nil
}

// GetStats retrieves operational counters from the peer at addr.
func (h *Handler) GetStats(ctx context.Context, addr string) (*dhtv1.GetStatsResponse, error) {
	c, err := h.client(addr)
	if err != nil {
		return nil, err
	}
	resp, err := c.GetStats(ctx, &dhtv1.Empty{})
	if err != nil {
		return nil, normalizeError(err)
	}
	return resp, nil
}
