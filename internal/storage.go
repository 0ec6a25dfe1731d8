package internal

import (
	"context"
	"fmt"
	"net"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/keylock"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/store/memory"
	"github.com/2beens/fittrack/internal/store/postgres"
	"github.com/2beens/fittrack/internal/store/sqlite"
	"github.com/2beens/fittrack/internal/telemetry/metrics"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

type StorageParams struct {
	Config           *config.Config
	RedisPassword    string
	PostgresPassword string
	TracingEnabled   bool
}

// Storage is the configured record backend with its key locker, shared by
// the service and the command line tools.
type Storage struct {
	Backend store.Backend
	Locker  keylock.Locker

	dbPool      *pgxpool.Pool
	redisClient *redis.Client
}

func OpenStorage(ctx context.Context, params StorageParams) (_ *Storage, err error) {
	cfg := params.Config
	s := &Storage{}
	defer func() {
		if err != nil {
			s.Close()
		}
	}()

	switch cfg.StoreDriver {
	case config.StoreMemory:
		log.Warnln("using in-memory store, nothing will be persisted")
		s.Backend = memory.New()
	case config.StorePostgres:
		s.dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.TracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := s.dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		pgStore := postgres.New(s.dbPool)
		if err := pgStore.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate postgres store: %w", err)
		}
		s.Backend = pgStore
	default:
		sqliteStore, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		log.Debugf("using sqlite store: %s", cfg.SQLitePath)
		s.Backend = sqliteStore
	}

	if !cfg.UseRedisLock {
		s.Locker = keylock.NewLocal()
		return s, nil
	}

	s.redisClient = redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})
	rdbStatus := s.redisClient.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}
	s.Locker = keylock.NewRedis(s.redisClient, cfg.LockTTL)

	return s, nil
}

// Collectors returns the extra prometheus collectors of the backend.
func (s *Storage) Collectors() []prometheus.Collector {
	if s.dbPool == nil {
		return nil
	}
	return []prometheus.Collector{
		pgxpoolprometheus.NewCollector(s.dbPool, map[string]string{"db_name": "fittrack"}),
	}
}

// Accessor wraps the backend and locker.
func (s *Storage) Accessor(metricsManager *metrics.Manager) *store.Accessor {
	return store.NewAccessor(s.Backend, s.Locker, metricsManager)
}

func (s *Storage) Close() {
	if s.Backend != nil {
		if err := s.Backend.Close(); err != nil {
			log.Errorf("failed to close store: %s", err)
		}
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close()
		log.Debugln("db pool closed")
	}
}
