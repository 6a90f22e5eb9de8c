package gormtool

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CRUDTool bundles the store handle with the logger every repository uses.
// RedisClient is optional and only feeds health and metrics.
type CRUDTool struct {
	DB          *gorm.DB
	RedisClient *redis.Client
	Logger      Logger
	EnableLog   bool
}

// DatabaseStats mirrors sql.DBStats for the metrics endpoint.
type DatabaseStats struct {
	MaxOpenConnections int           `json:"max_open_connections"`
	OpenConnections    int           `json:"open_connections"`
	InUse              int           `json:"in_use"`
	Idle               int           `json:"idle"`
	WaitCount          int64         `json:"wait_count"`
	WaitDuration       time.Duration `json:"wait_duration"`
	MaxIdleClosed      int64         `json:"max_idle_closed"`
	MaxLifetimeClosed  int64         `json:"max_lifetime_closed"`
}

func NewCRUDTool(db *gorm.DB, redisClient *redis.Client, logger Logger) *CRUDTool {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &CRUDTool{
		DB:          db,
		RedisClient: redisClient,
		Logger:      logger,
		EnableLog:   true,
	}
}

// LogOperation records one store operation.
//
//	start := time.Now()
//	...
//	t.LogOperation(ctx, "get", &models.User{}, time.Since(start), err, map[string]interface{}{
//		"id": id,
//	})
func (t *CRUDTool) LogOperation(ctx context.Context, operation string, model interface{}, duration time.Duration, err error, additionalFields map[string]interface{}) {
	if !t.EnableLog {
		return
	}

	fields := map[string]interface{}{
		"operation": operation,
		"duration":  duration.String(),
		"model":     fmt.Sprintf("%T", model),
	}

	if err != nil {
		fields["error"] = err.Error()
	}

	for k, v := range additionalFields {
		fields[k] = v
	}

	if err != nil {
		t.Logger.Warn(ctx, "operation failed", fields)
	} else {
		t.Logger.Info(ctx, "operation ok", fields)
	}
}

type TxFunc func(tx *gorm.DB) error

// WithTransaction runs fn in one transaction. Any returned error rolls back
// every write fn made.
func (t *CRUDTool) WithTransaction(ctx context.Context, fn TxFunc) error {
	return t.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})
}

// Ping checks the database and, when configured, redis.
func (t *CRUDTool) Ping(ctx context.Context) map[string]error {
	checks := map[string]error{}

	sqlDB, err := t.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	checks["database"] = err

	if t.RedisClient != nil {
		checks["redis"] = t.RedisClient.Ping(ctx).Err()
	}
	return checks
}

// Metrics reports connection pool stats and the redis INFO section.
func (t *CRUDTool) Metrics(ctx context.Context) map[string]interface{} {
	metrics := map[string]interface{}{}

	if sqlDB, err := t.DB.DB(); err == nil {
		stats := sqlDB.Stats()
		metrics["database"] = DatabaseStats{
			MaxOpenConnections: stats.MaxOpenConnections,
			OpenConnections:    stats.OpenConnections,
			InUse:              stats.InUse,
			Idle:               stats.Idle,
			WaitCount:          stats.WaitCount,
			WaitDuration:       stats.WaitDuration,
			MaxIdleClosed:      stats.MaxIdleClosed,
			MaxLifetimeClosed:  stats.MaxLifetimeClosed,
		}
	} else {
		metrics["database"] = "database stats unavailable: " + err.Error()
	}

	metrics["redis"] = t.redisStats(ctx)
	return metrics
}

func (t *CRUDTool) redisStats(ctx context.Context) interface{} {
	if t.RedisClient == nil {
		return "redis not configured"
	}

	info, err := t.RedisClient.Info(ctx).Result()
	if err != nil {
		return "redis info unavailable: " + err.Error()
	}

	redisStats := make(map[string]string)
	for _, line := range strings.Split(info, "\r\n") {
		if strings.HasPrefix(line, "#") || line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) == 2 {
			redisStats[parts[0]] = parts[1]
		}
	}

	return redisStats
}
