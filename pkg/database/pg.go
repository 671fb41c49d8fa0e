package database

import (
	"fmt"
	"sync"
	"time"

	"github.com/msgdesk/pkg/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	db          *gorm.DB
	err         error
	client_once sync.Once
)

func InitDB(dbc config.Database, log *zap.Logger) {
	client_once.Do(func() {
		db, err = Open(dbc)
		if err != nil {
			log.Fatal("failed to initialize database", zap.String("driver", dbc.Driver), zap.Error(err))
		}
		log.Info("database connection established successfully", zap.String("driver", dbc.Driver))

		if err := AutoMigrate(db); err != nil {
			log.Fatal("migration failed", zap.Error(err))
		}
		log.Info("database migrations completed successfully")
	})
}

func DBClient() *gorm.DB {
	if db == nil {
		panic("database is not initialized. Call InitDB first.")
	}
	return db
}

// Open connects with the dialector named by dbc.Driver and pings the
// connection.
func Open(dbc config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch dbc.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbc.Host, dbc.Port, dbc.User, dbc.Pass, dbc.Name)
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	case "sqlite":
		dialector = sqlite.Open(dbc.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", dbc.Driver)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: false,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Warn),
		NowFunc:                                  func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying database connection: %w", err)
	}
	if dbc.Driver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}
