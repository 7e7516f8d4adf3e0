package di

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"student_portal/internal/platform/config"
	"student_portal/internal/platform/db"
	"student_portal/internal/platform/logger"
	infraredis "student_portal/internal/platform/redis"
)

// DBConfig maps the application config onto the db package's settings.
func DBConfig(cfg *config.Config) db.Config {
	return db.Config{
		Driver:   cfg.Database.Driver,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		SSLMode:  cfg.Database.SSLMode,
		Path:     cfg.Database.Path,
	}
}

// OpenDatabase connects with retry and migrates when migrate is true.
func OpenDatabase(cfg *config.Config, migrate bool) (*gorm.DB, error) {
	gdb, err := db.Open(DBConfig(cfg), cfg.ConnectWait())
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := db.Migrate(gdb, Models()...); err != nil {
			return nil, err
		}
		logger.Info().Msg("database migrated")
	}
	return gdb, nil
}

// OpenRedis returns nil when Redis is not configured or unreachable, so the
// caller runs without cache and with SQL-backed tokens.
func OpenRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	if !cfg.RedisEnabled() {
		logger.Info().Msg("redis not configured; running without cache")
		return nil
	}
	rdb, err := infraredis.NewRedisClient(ctx, infraredis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable; running without cache")
		return nil
	}
	return rdb
}

// ConfigureLogger applies the logging section of cfg.
func ConfigureLogger(cfg *config.Config) {
	logger.Configure(logger.Config{Level: cfg.Logging.Level, Pretty: cfg.Logging.Pretty})
}

// LoadConfig loads the config file at path and configures the logger.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	ConfigureLogger(cfg)
	return cfg, nil
}
