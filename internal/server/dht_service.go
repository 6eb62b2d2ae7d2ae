package server

import (
	"context"
	"fmt"

	dhtv1 "chorddht/internal/api/dht/v1"
	"chorddht/internal/ctxutil"
	"chorddht/internal/domain"
	"chorddht/internal/node"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// dhtService implements the peer-to-peer RPC surface (dht.v1.DHT) backing
// routing, stabilization, and replication between ring members.
type dhtService struct {
	dhtv1.UnimplementedDHTServer
	node *node.Node
}

// NewDHTService creates a new DHT service bound to n.
func NewDHTService(n *node.Node) dhtv1.DHTServer {
	return &dhtService{node: n}
}

func (s *dhtService) Ping(ctx context.Context, _ *dhtv1.PingRequest) (*dhtv1.PingResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	s.node.Ping()
	return &dhtv1.PingResponse{}, nil
}

func (s *dhtService) FindSuccessor(ctx context.Context, req *dhtv1.FindSuccessorRequest) (*dhtv1.FindSuccessorResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if req == nil || len(req.GetTargetId()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "missing target_id")
	}
	succ, hops, err := s.node.ContinueFindSuccessor(ctx, domain.ID(req.GetTargetId()), req.GetHops())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "find successor: %v", err)
	}
	return &dhtv1.FindSuccessorResponse{Successor: succ.ToProto(), Hops: hops}, nil
}

func (s *dhtService) GetPredecessor(ctx context.Context, _ *dhtv1.Empty) (*dhtv1.GetPredecessorResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	pred, ok := s.node.Predecessor()
	if !ok {
		return &dhtv1.GetPredecessorResponse{Found: false}, nil
	}
	return &dhtv1.GetPredecessorResponse{Predecessor: pred.ToProto(), Found: true}, nil
}

func (s *dhtService) GetSuccessor(ctx context.Context, _ *dhtv1.Empty) (*dhtv1.GetSuccessorResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	list := s.node.SuccessorList()
	if len(list) == 0 {
		return nil, status.Error(codes.NotFound, "no successor set")
	}
	return &dhtv1.GetSuccessorResponse{Successor: list[0].ToProto()}, nil
}

func (s *dhtService) GetSuccessorList(ctx context.Context, _ *dhtv1.Empty) (*dhtv1.GetSuccessorListResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	list := s.node.SuccessorList()
	out := make([]*dhtv1.NodeRef, 0, len(list))
	for _, n := range list {
		out = append(out, n.ToProto())
	}
	return &dhtv1.GetSuccessorListResponse{Successors: out}, nil
}

func (s *dhtService) Notify(ctx context.Context, req *dhtv1.NotifyRequest) (*dhtv1.Empty, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if req == nil || req.GetCandidate() == nil {
		return nil, status.Error(codes.InvalidArgument, "missing candidate")
	}
	s.node.Notify(domain.NodeFromProto(req.GetCandidate()))
	return &dhtv1.Empty{}, nil
}

func (s *dhtService) Join(ctx context.Context, req *dhtv1.JoinRequest) (*dhtv1.JoinResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if req == nil || req.GetJoining() == nil {
		return nil, status.Error(codes.InvalidArgument, "missing joining node")
	}
	oldSuccessor, err := s.node.Join(ctx, domain.NodeFromProto(req.GetJoining()))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "join: %v", err)
	}
	return &dhtv1.JoinResponse{Successor: oldSuccessor.ToProto(), Success: true, Message: "joined"}, nil
}

func (s *dhtService) TransferKeys(ctx context.Context, req *dhtv1.TransferKeysRequest) (*dhtv1.TransferKeysResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if req == nil || len(req.GetStartId()) == 0 || len(req.GetEndId()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "missing start_id or end_id")
	}
	target := domain.NodeFromProto(req.GetTargetNode())
	items := s.node.TransferKeys(domain.ID(req.GetStartId()), domain.ID(req.GetEndId()), target)
	out := make([]*dhtv1.Item, 0, len(items))
	for _, it := range items {
		out = append(out, &dhtv1.Item{Key: it.Key, Value: it.Value, Version: it.Version, Timestamp: it.Timestamp})
	}
	return &dhtv1.TransferKeysResponse{
		Items:   out,
		Success: true,
		Message: fmt.Sprintf("transferred %d keys", len(out)),
	}, nil
}

func (s *dhtService) Put(ctx context.Context, req *dhtv1.PutRequest) (*dhtv1.PutResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if req == nil || req.GetKey() == "" {
		return nil, status.Error(codes.InvalidArgument, "missing key")
	}
	version, forwarded, message, err := s.node.Put(ctx, req.GetKey(), req.GetValue(), req.GetIsReplica(), req.GetVersion())
	if err != nil {
		return &dhtv1.PutResponse{Success: false, Message: err.Error()}, nil
	}
	return &dhtv1.PutResponse{Success: true, Version: version, Forwarded: forwarded, Message: message}, nil
}

func (s *dhtService) SyncReplica(ctx context.Context, req *dhtv1.SyncReplicaRequest) (*dhtv1.SyncReplicaResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if req == nil || req.GetKey() == "" {
		return nil, status.Error(codes.InvalidArgument, "missing key")
	}
	item := domain.Item{Key: req.GetKey(), Value: req.GetValue(), Version: req.GetVersion(), Timestamp: req.GetTimestamp()}
	if err := s.node.SyncReplica(item); err != nil {
		return &dhtv1.SyncReplicaResponse{Success: false}, nil
	}
	return &dhtv1.SyncReplicaResponse{Success: true}, nil
}

func (s *dhtService) Get(ctx context.Context, req *dhtv1.GetRequest) (*dhtv1.GetResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if req == nil || req.GetKey() == "" {
		return nil, status.Error(codes.InvalidArgument, "missing key")
	}
	value, version, found, err := s.node.Get(ctx, req.GetKey())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get: %v", err)
	}
	return &dhtv1.GetResponse{Value: value, Version: version, Found: found}, nil
}

func (s *dhtService) Delete(ctx context.Context, req *dhtv1.DeleteRequest) (*dhtv1.DeleteResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if req == nil || req.GetKey() == "" {
		return nil, status.Error(codes.InvalidArgument, "missing key")
	}
	deleted := s.node.DeleteLocal(req.GetKey(), req.GetIsReplica())
	message := "deleted"
	if !deleted {
		message = "not found"
	}
	return &dhtv1.DeleteResponse{Success: deleted, Message: message}, nil
}

func (s *dhtService) GetStats(ctx context.Context, _ *dhtv1.Empty) (*dhtv1.GetStatsResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	return s.node.GetStats(ctx), nil
}
