package cli

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"jobquest/internal/cache"
	"jobquest/internal/config"
	"jobquest/internal/repository"
)

const pingTimeout = 5 * time.Second

// openStore connects the configured assessment backend. close releases it.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.AssessmentRepo, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return nil, nil, fmt.Errorf("connect to MongoDB: %w", err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx, nil); err != nil {
			log.Warn("MongoDB is not reachable yet, requests will fail until it is", zap.Error(err))
		} else {
			log.Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))
		}

		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn("MongoDB disconnect failed", zap.Error(err))
			}
		}
		return repository.NewMongoAssessmentRepo(client.Database(cfg.Mongo.Database)), closeFn, nil

	case config.StoreDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.DynamoDB.Region))
		if err != nil {
			return nil, nil, fmt.Errorf("load AWS config: %w", err)
		}
		log.Info("using DynamoDB", zap.String("table", cfg.DynamoDB.Table), zap.String("region", cfg.DynamoDB.Region))
		return repository.NewDynamoAssessmentRepo(dynamodb.NewFromConfig(awsCfg), cfg.DynamoDB.Table), func() {}, nil

	case config.StoreMemory:
		repo, err := repository.NewMemoryAssessmentRepo(cfg.Memory.Capacity)
		if err != nil {
			return nil, nil, err
		}
		log.Warn("using in-memory store, assessments are lost on restart", zap.Int("capacity", cfg.Memory.Capacity))
		return repo, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

// openCache returns nil when no Redis address is configured
func openCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (cache.ResultCache, func()) {
	if cfg.Redis.Addr == "" {
		log.Info("results cache disabled")
		return nil, func() {}
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis is not reachable, cache reads will fall through to the store", zap.Error(err))
	} else {
		log.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	return cache.NewResultCache(rdb, cfg.Redis.TTL), func() { rdb.Close() }
}
