package repository

import (
	"context"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/user/moviedb/internal/config"
	"github.com/user/moviedb/internal/metrics"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DriverName: "postgres",
			DSN:        cfg.DatabaseURL,
		})
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.DBDriver)
	}

	logLevel := logger.Warn
	if cfg.DBDebug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取连接池失败: %w", err)
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池，sqlite 固定单连接
	if cfg.DBDriver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	return db, nil
}

// Repositories 仓库集合
type Repositories struct {
	DB     *gorm.DB
	Movie  *MovieRepository
	Person *PersonRepository
	Rating *RatingRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:     db,
		Movie:  NewMovieRepository(db),
		Person: NewPersonRepository(db),
		Rating: NewRatingRepository(db),
	}
}

// Ping 检查数据库是否可用
func (r *Repositories) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close 关闭底层连接池
func (r *Repositories) Close() error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// withConn 从连接池取出一个专用连接执行 fn，任何返回路径都会归还连接
func withConn(ctx context.Context, db *gorm.DB, operation string, fn func(tx *gorm.DB) error) error {
	start := time.Now()
	err := db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		return fn(tx.Session(&gorm.Session{}))
	})
	metrics.ObserveQuery(operation, start, err)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	return nil
}
