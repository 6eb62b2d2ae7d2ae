package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chorddht/internal/bootstrap"
	"chorddht/internal/client"
	"chorddht/internal/config"
	"chorddht/internal/domain"
	"chorddht/internal/logger"
	zapfactory "chorddht/internal/logger/zap"
	"chorddht/internal/node"
	"chorddht/internal/routingtable"
	"chorddht/internal/server"
	"chorddht/internal/storage"
	"chorddht/internal/telemetry"
	"chorddht/internal/telemetry/lookuptrace"

	"google.golang.org/grpc"
)

var defaultConfigPath = "config/node/config.yaml"

func main() {
	// Parse command-line flags. Port/bind/join/replication mirror the
	// original Chord node's CLI surface directly; -config layers the
	// ambient YAML configuration underneath them, applied first so these
	// flags take precedence when given.
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	port := flag.Int("port", 0, "listening port (required unless set in config)")
	bind := flag.String("bind", "", "bind address (default 0.0.0.0 unless set in config)")
	join := flag.String("join", "", "existing ring member to join, host:port")
	replication := flag.Int("replication", 0, "replication factor (default 3)")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration from %q: %v", *configPath, err)
	}
	cfg.ApplyEnvOverrides()
	applyCLIOverrides(cfg, *port, *bind, *join, *replication)
	// Validate configuration
	if err := cfg.ValidateConfig(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Initialize logger
	var lgr logger.Logger
	if cfg.Logger.Active {
		zapLog, err := zapfactory.New(cfg.Logger)
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() { _ = zapLog.Sync() }()   // flush logger buffers before exit
		lgr = zapfactory.NewZapAdapter(zapLog) // adapt zap.Logger to logger.Logger
	} else {
		lgr = &logger.NopLogger{} // no-op logger
	}
	// Log loaded configuration at DEBUG level
	cfg.LogConfig(lgr)

	// Initialize listener (to determine server address and port)
	lis, advertised, err := server.Listen(cfg.DHT.Mode, cfg.Node.Bind, cfg.Node.Host, cfg.Node.Port)
	if err != nil {
		lgr.Error("failed to initialize listener", logger.F("err", err))
		os.Exit(1)
	}
	defer func() { _ = lis.Close() }()
	lgr.Debug("created listener", logger.F("addr", advertised))

	// Initialize the identifier space
	space, err := domain.NewSpace(cfg.DHT.IDBits)
	if err != nil {
		lgr.Error("failed to initialize identifier space", logger.F("err", err))
		os.Exit(1)
	}
	lgr.Debug("identifier space initialized", logger.F("idBits", space.Bits), logger.F("byteLen", space.ByteLen))

	// Derive or parse the local node's identifier
	var id domain.ID
	if cfg.Node.Id == "" {
		id = space.HashString(advertised)
	} else {
		id, err = space.FromHexString(cfg.Node.Id)
		if err != nil {
			lgr.Error("invalid node id in configuration", logger.F("err", err))
			os.Exit(1)
		}
	}
	host, portStr, err := net.SplitHostPort(advertised)
	if err != nil {
		lgr.Error("failed to parse advertised address", logger.F("err", err))
		os.Exit(1)
	}
	advertisedPort, err := net.LookupPort("tcp", portStr)
	if err != nil {
		lgr.Error("failed to parse advertised port", logger.F("err", err))
		os.Exit(1)
	}
	self := domain.NodeRef{ID: id, Host: host, Port: advertisedPort}
	lgr = lgr.Named("node").With(logger.FNode("self", self))
	lgr.Info("node initializing")

	// Initialize telemetry (if enabled)
	shutdownTracer := telemetry.InitTracer(cfg.Telemetry, "chorddht-node", id)
	defer func() { _ = shutdownTracer(context.Background()) }()

	// Initialize the routing table
	rt := routingtable.New(self, space, cfg.DHT.FaultTolerance.SuccessorListSize, routingtable.WithLogger(lgr.Named("routingtable")))
	lgr.Debug("routing table initialized")

	// Initialize the client pool
	pool := client.New(lgr.Named("clientpool"), cfg.DHT.FaultTolerance.FailureTimeout)
	defer func() { _ = pool.Close() }()
	lgr.Debug("client pool initialized")

	// Initialize the storage
	store := storage.NewMemoryStore(lgr.Named("storage"), space)
	lgr.Debug("in-memory storage initialized")

	// Initialize the node
	n := node.New(rt, store, pool, cfg.DHT.Replication.Factor, node.WithLogger(lgr))
	lgr.Debug("node struct initialized")

	// Initialize the gRPC server
	var grpcOpts []grpc.ServerOption
	if cfg.Telemetry.Tracing.Enabled {
		grpcOpts = append(grpcOpts, grpc.ChainUnaryInterceptor(lookuptrace.ServerInterceptor()))
		lgr.Debug("gRPC tracing enabled (lookup-only)")
	}

	srv, err := server.New(lis, n, grpcOpts, server.WithLogger(lgr.Named("server")))
	if err != nil {
		lgr.Error("failed to initialize gRPC server", logger.F("err", err))
		os.Exit(1)
	}
	lgr.Debug("gRPC server initialized")

	// Run server in background
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Start() }()
	lgr.Debug("server started", logger.F("addr", advertised))

	// Resolve bootstrap peers and, if the registry requires it, the handle
	// used to publish/retract this node's own address.
	discoverCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	peers, register, err := discoverPeers(discoverCtx, cfg.DHT.Bootstrap, lgr)
	cancel()
	if err != nil {
		lgr.Error("failed to resolve bootstrap peers", logger.F("err", err))
		srv.Stop()
		os.Exit(1)
	}
	lgr.Info("resolved bootstrap peers", logger.F("peers", peers))

	if len(peers) == 0 {
		n.CreateSingleNodeRing()
		lgr.Debug("new ring created")
	} else {
		joinCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := n.JoinRing(joinCtx, peers)
		cancel()
		if err != nil {
			lgr.Error("failed to join ring", logger.F("err", err))
			srv.Stop()
			os.Exit(1)
		}
		lgr.Debug("joined ring")
	}

	if register != nil {
		regCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := register.Register(regCtx, self)
		cancel()
		if err != nil {
			lgr.Error("failed to register node", logger.F("err", err))
		} else {
			lgr.Info("node registered")
			defer func() {
				deregCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := register.Deregister(deregCtx, self); err != nil {
					lgr.Warn("failed to deregister node", logger.F("err", err))
				}
			}()
		}
	}

	// Setup signal handler for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// Start periodic maintenance loops (run until ctx is canceled)
	n.StartMaintenance(ctx, cfg.DHT.FaultTolerance.StabilizationInterval, cfg.DHT.Replication.FixInterval)
	lgr.Debug("maintenance loops started")

	if cfg.DHT.Storage.FixInterval > 0 {
		go storageDebugLoop(ctx, store, cfg.DHT.Storage.FixInterval)
	}

	select {
	case <-ctx.Done():
		lgr.Info("shutdown signal received, stopping server gracefully...")

		stop()

		// Allow some time for graceful stop
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		done := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
			lgr.Info("server stopped gracefully")
		case <-shutdownCtx.Done():
			lgr.Warn("graceful stop timed out, forcing shutdown")
			srv.Stop()
		}

	case err := <-serveErr:
		lgr.Error("gRPC server terminated unexpectedly", logger.F("err", err))
		stop()
		os.Exit(1)
	}
}

// discoverPeers resolves the bootstrap peer list per cfg.Mode and, for
// registries that need it, returns the bootstrap.Bootstrap used to publish
// and later retract this node's own address. mode=init never discovers and
// never registers (the node is the first in the ring); mode=static
// discovers a fixed peer list with no registry; mode=dns resolves peers via
// DNS and, if register.enabled, additionally publishes this node to
// Route53.
func discoverPeers(ctx context.Context, cfg config.BootstrapConfig, lgr logger.Logger) ([]string, bootstrap.Bootstrap, error) {
	switch cfg.Mode {
	case "init":
		return nil, nil, nil

	case "static":
		b := bootstrap.NewStaticBootstrap(cfg.Peers)
		peers, err := b.Discover(ctx)
		return peers, nil, err

	case "dns":
		peers, err := bootstrap.ResolveBootstrap(cfg, lgr)
		if err != nil {
			return nil, nil, err
		}
		if !cfg.Register.Enabled {
			return peers, nil, nil
		}
		r53, err := bootstrap.NewRoute53Bootstrap(cfg.Register)
		if err != nil {
			return nil, nil, err
		}
		return peers, r53, nil

	default:
		return nil, nil, nil
	}
}

// applyCLIOverrides layers the node binary's direct flags over the loaded
// YAML configuration: port, bind and replication override their config
// counterparts when given on the command line (replication falls back to 3
// when neither sets it), and -join forces a static
// single-peer bootstrap (skipping whatever bootstrap.mode the config file
// names), matching the original CLI's --join semantics.
func applyCLIOverrides(cfg *config.Config, port int, bind, join string, replication int) {
	if port != 0 {
		cfg.Node.Port = port
	}
	if bind != "" {
		cfg.Node.Bind = bind
	}
	if replication != 0 {
		cfg.DHT.Replication.Factor = replication
	}
	if cfg.DHT.Replication.Factor == 0 {
		cfg.DHT.Replication.Factor = 3
	}
	if join != "" {
		cfg.DHT.Bootstrap.Mode = "static"
		cfg.DHT.Bootstrap.Peers = []string{join}
	}
}

// storageDebugLoop periodically dumps the node's key inventory at DEBUG
// level, at the cadence configured for storage maintenance.
func storageDebugLoop(ctx context.Context, store *storage.Store, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.DebugLog()
		}
	}
}
