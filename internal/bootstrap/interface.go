package bootstrap

import (
	"chorddht/internal/domain"
	"context"
)

// Bootstrap discovers and, for registries that require it, publishes the
// addresses a joining node needs to reach an existing ring.
type Bootstrap interface {
	// Discover returns a list of known peer addresses.
	Discover(ctx context.Context) ([]string, error)
	// Register publishes the current node (only if needed, e.g. Route53).
	Register(ctx context.Context, node domain.NodeRef) error
	// Deregister removes the current node (only if needed, e.g. Route53).
	Deregister(ctx context.Context, node domain.NodeRef) error
}
