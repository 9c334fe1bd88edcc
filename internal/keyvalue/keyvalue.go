package keyvalue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"marketloop/internal/config"
	"marketloop/pkg/retry"
)

var storeOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "marketloop_store_operations_total",
	Help: "The total number of key-value store operations",
}, []string{"op", "backend"})

// backend is a concrete key-value facility. Get returns (nil, nil) for an
// absent key.
type backend interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Shutdown(ctx context.Context) error
}

// Store implements core.KeyValueStore. The backend is selected once, during
// Init, and never changes for the lifetime of the process: NATS JetStream KV
// when a server is reachable, an in-memory map otherwise.
type Store struct {
	Logger *slog.Logger
	Config *config.Config

	backend backend
	locks   sync.Map // key -> *sync.Mutex
}

func (s *Store) Init(ctx context.Context) error {
	s.Logger = s.Logger.With("component", "keyvalue.Store")

	if s.Config.MemoryStore {
		s.backend = NewMemory()
		s.Logger.Info("using in-memory store backend")
		return nil
	}

	var nb *NATS
	err := retry.Do(ctx, 3, 500*time.Millisecond, func() error {
		var err error
		nb, err = DialNATS(ctx, s.Config)
		return err
	})
	if err != nil {
		s.Logger.Warn("NATS unavailable, falling back to in-memory store", "error", err)
		s.backend = NewMemory()
		return nil
	}

	s.backend = nb
	s.Logger.Info("using NATS store backend", "url", s.Config.NATSURL)
	return nil
}

func (s *Store) HealthCheck(ctx context.Context) error {
	if hc, ok := s.backend.(interface{ HealthCheck(context.Context) error }); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

func (s *Store) Shutdown(ctx context.Context) error {
	return s.backend.Shutdown(ctx)
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	storeOps.WithLabelValues("get", s.backend.Name()).Inc()
	return s.backend.Get(ctx, key)
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	storeOps.WithLabelValues("set", s.backend.Name()).Inc()
	return s.backend.Set(ctx, key, value)
}

func (s *Store) Remove(ctx context.Context, key string) error {
	storeOps.WithLabelValues("remove", s.backend.Name()).Inc()
	return s.backend.Remove(ctx, key)
}

// LockKey serializes read-modify-write sequences on one key. Required for
// atomicity once the backend does real I/O.
func (s *Store) LockKey(key string) func() {
	mu, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
