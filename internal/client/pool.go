package client

import (
	"fmt"
	"sync"
	"time"

	dhtv1 "chorddht/internal/api/dht/v1"
	"chorddht/internal/logger"

	"google.golang.org/grpc"
)

// Pool caches gRPC connections to peer addresses, so the maintenance loops
// and lookup path don't redial on every tick. Entries are reference
// counted: AddRef/Release bracket long-lived uses (e.g. a successor kept
// across stabilize rounds), while Get alone is for one-off calls that don't
// want to hold a reference.
type Pool struct {
	lgr            logger.Logger
	failureTimeout time.Duration

	mu    sync.Mutex
	conns map[string]*poolEntry
}

type poolEntry struct {
	conn   *grpc.ClientConn
	client dhtv1.DHTClient
	refs   int
}

// New builds an empty Pool. failureTimeout is the deadline applied by
// callers that don't set their own (see FailureTimeout).
func New(lgr logger.Logger, failureTimeout time.Duration) *Pool {
	return &Pool{
		lgr:            lgr,
		failureTimeout: failureTimeout,
		conns:          make(map[string]*poolEntry),
	}
}

// FailureTimeout returns the liveness-probe deadline configured for this pool.
func (p *Pool) FailureTimeout() time.Duration {
	return p.failureTimeout
}

// Get returns the pooled client for addr, dialing and caching it on first use.
func (p *Pool) Get(addr string) (dhtv1.DHTClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.conns[addr]; ok {
		return e.client, nil
	}
	conn, client, err := p.connect(addr)
	if err != nil {
		return nil, err
	}
	p.conns[addr] = &poolEntry{conn: conn, client: client}
	return client, nil
}

// AddRef returns the pooled client for addr and increments its reference
// count; the caller must call Release(addr) exactly once when done.
func (p *Pool) AddRef(addr string) (dhtv1.DHTClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.conns[addr]
	if !ok {
		conn, client, err := p.connect(addr)
		if err != nil {
			return nil, err
		}
		e = &poolEntry{conn: conn, client: client}
		p.conns[addr] = e
	}
	e.refs++
	return e.client, nil
}

// Release decrements addr's reference count, closing and evicting the
// connection once it reaches zero.
func (p *Pool) Release(addr string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.conns[addr]
	if !ok {
		return
	}
	e.refs--
	if e.refs <= 0 {
		_ = e.conn.Close()
		delete(p.conns, addr)
	}
}

// connect must be called with p.mu held.
func (p *Pool) connect(addr string) (*grpc.ClientConn, dhtv1.DHTClient, error) {
	conn, err := dial(addr)
	if err != nil {
		return nil, nil, fmt.Errorf("pool: %w", err)
	}
	return conn, dhtv1.NewDHTClient(conn), nil
}

// Drop closes and evicts addr's connection unconditionally, regardless of
// its reference count, so a later Get dials addr afresh.
func (p *Pool) Drop(addr string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e, ok := p.conns[addr]; ok {
		_ = e.conn.Close()
		delete(p.conns, addr)
	}
}

// Close shuts down every pooled connection.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for addr, e := range p.conns {
		_ = e.conn.Close()
		delete(p.conns, addr)
	}
	return nil
}

// DialEphemeral opens a connection to addr outside the pool, for one-shot
// calls the caller wants to close itself (e.g. a failed liveness probe that
// shouldn't linger in the cache).
func DialEphemeral(addr string) (dhtv1.DHTClient, *grpc.ClientConn, error) {
	return Connect(addr)
}
