package server

import (
	"context"

	clientv1 "chorddht/internal/api/client/v1"
	"chorddht/internal/ctxutil"
	"chorddht/internal/node"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// clientService implements the operator-facing RPC surface (client.v1.ClientAPI):
// the five key-value operations a CLI or application talks to, reusing the
// dht.v1 message types via the type aliases in api/client/v1.
type clientService struct {
	clientv1.UnimplementedClientAPIServer
	node *node.Node
}

// NewClientService creates a new client service bound to n.
func NewClientService(n *node.Node) clientv1.ClientAPIServer {
	return &clientService{node: n}
}

func (s *clientService) Put(ctx context.Context, req *clientv1.PutRequest) (*clientv1.PutResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if req == nil || req.GetKey() == "" {
		return nil, status.Error(codes.InvalidArgument, "missing key")
	}
	version, forwarded, message, err := s.node.Put(ctx, req.GetKey(), req.GetValue(), false, 0)
	if err != nil {
		return &clientv1.PutResponse{Success: false, Message: err.Error()}, nil
	}
	return &clientv1.PutResponse{Success: true, Version: version, Forwarded: forwarded, Message: message}, nil
}

func (s *clientService) Get(ctx context.Context, req *clientv1.GetRequest) (*clientv1.GetResponse, error) {
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
	return &clientv1.GetResponse{Value: value, Version: version, Found: found}, nil
}

func (s *clientService) Delete(ctx context.Context, req *clientv1.DeleteRequest) (*clientv1.DeleteResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	if req == nil || req.GetKey() == "" {
		return nil, status.Error(codes.InvalidArgument, "missing key")
	}
	deleted, err := s.node.Delete(ctx, req.GetKey())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "delete: %v", err)
	}
	message := "deleted"
	if !deleted {
		message = "not found"
	}
	return &clientv1.DeleteResponse{Success: deleted, Message: message}, nil
}

func (s *clientService) GetStats(ctx context.Context, _ *clientv1.Empty) (*clientv1.StatsResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	return s.node.GetStats(ctx), nil
}

func (s *clientService) Ping(ctx context.Context, _ *clientv1.PingRequest) (*clientv1.PingResponse, error) {
	if err := ctxutil.CheckContext(ctx); err != nil {
		return nil, err
	}
	s.node.Ping()
	return &clientv1.PingResponse{}, nil
}
