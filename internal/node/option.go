package node

import "chorddht/internal/logger"

// Option configures a Node at construction time.
type Option func(*Node)

// WithLogger sets the logger used by the node and its maintenance loops.
func WithLogger(l logger.Logger) Option {
	return func(n *Node) {
		if l != nil {
			n.lgr = l
		}
	}
}
