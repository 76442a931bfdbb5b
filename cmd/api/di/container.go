package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"qatest-api/internal/adapter/cache"
	ginhandler "qatest-api/internal/adapter/gin/handler"
	"qatest-api/internal/adapter/repository/cached"
	"qatest-api/internal/adapter/repository/memory"
	"qatest-api/internal/config"
	"qatest-api/internal/usecase/user"
	redisclient "qatest-api/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	RedisClient *redisclient.Client
	UserUC      user.Usecase
	GinHandler  *ginhandler.UserHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	store := memory.NewUserStore(l)

	var repo user.Repository = store
	var rdb *redisclient.Client

	// The in-memory store is authoritative; Redis only fronts GetByID
	// lookups and is opt-in.
	if cfg.Redis.Enabled {
		var err error
		rdb, err = redisclient.NewClient(redisclient.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		}, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}

		userCache := cache.NewRedisUserCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
		repo = cached.NewCachedUserRepository(store, userCache, l)
	}

	// Initialize use case
	userUC := user.New(repo, l)

	// Initialize Gin handler
	ginHandler := ginhandler.NewUserHandler(userUC, l)

	return &Container{
		Config:      cfg,
		Logger:      l,
		RedisClient: rdb,
		UserUC:      userUC,
		GinHandler:  ginHandler,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
