package client

import (
	clientv1 "chorddht/internal/api/client/v1"
	dhtv1 "chorddht/internal/api/dht/v1"

	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// dial opens an insecure gRPC connection to addr. Both the peer (dhtv1) and
// client-facing (clientv1) services are registered on the same port, so a
// single connection serves either stub.
func dial(addr string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("client: failed to connect to %s: %w", addr, err)
	}
	return conn, nil
}

// Connect dials addr and returns a peer-facing DHT client bound to it.
func Connect(addr string) (dhtv1.DHTClient, *grpc.ClientConn, error) {
	conn, err := dial(addr)
	if err != nil {
		return nil, nil, err
	}
	return dhtv1.NewDHTClient(conn), conn, nil
}

// ConnectClient dials addr and returns a client-facing API client bound to
// it, used by the one-shot CLI in cmd/client.
func ConnectClient(addr string) (clientv1.ClientAPIClient, *grpc.ClientConn, error) {
	conn, err := dial(addr)
	if err != nil {
		return nil, nil, err
	}
	return clientv1.NewClientAPIClient(conn), conn, nil
}
