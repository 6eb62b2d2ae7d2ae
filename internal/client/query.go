package client

import (
	"context"
	"time"

	clientv1 "chorddht/internal/api/client/v1"
)

// Put inserts or updates a key-value pair through the client-facing API,
// returning the call latency alongside the usual error.
func Put(ctx context.Context, c clientv1.ClientAPIClient, key, value string) (uint64, time.Duration, error) {
	start := time.Now()
	resp, err := c.Put(ctx, &clientv1.PutRequest{Key: key, Value: value})
	if err != nil {
		return 0, time.Since(start), normalizeError(err)
	}
	return resp.GetVersion(), time.Since(start), nil
}

// Get retrieves the value for key, reporting whether it was found.
func Get(ctx context.Context, c clientv1.ClientAPIClient, key string) (string, bool, time.Duration, error) {
	start := time.Now()
	resp, err := c.Get(ctx, &clientv1.GetRequest{Key: key})
	if err != nil {
		return "", false, time.Since(start), normalizeError(err)
	}
	return resp.GetValue(), resp.GetFound(), time.Since(start), nil
}

// Delete removes key, reporting whether anything was deleted.
func Delete(ctx context.Context, c clientv1.ClientAPIClient, key string) (bool, time.Duration, error) {
	start := time.Now()
	resp, err := c.Delete(ctx, &clientv1.DeleteRequest{Key: key})
	if err != nil {
		return false, time.Since(start), normalizeError(err)
	}
	return resp.GetSuccess(), time.Since(start), nil
}

// GetStats retrieves the operational counters of the node behind c.
func GetStats(ctx context.Context, c clientv1.ClientAPIClient) (*clientv1.StatsResponse, time.Duration, error) {
	start := time.Now()
	resp, err := c.GetStats(ctx, &clientv1.Empty{})
	if err != nil {
		return nil, time.Since(start), normalizeError(err)
	}
	return resp, time.Since(start), nil
}

// Ping checks liveness of the node behind c.
func Ping(ctx context.Context, c clientv1.ClientAPIClient) (time.Duration, error) {
	start := time.Now()
	_, err := c.Ping(ctx, &clientv1.PingRequest{})
	return time.Since(start), normalizeError(err)
}
