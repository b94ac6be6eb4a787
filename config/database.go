package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// CmsDB is a raw pool kept for health probes.
	CmsDB *pgxpool.Pool

	CmsGorm *gorm.DB
)

func InitDB() {
	dsn := databaseURL()
	initPgx(dsn)
	initGORM(dsn)
}

func databaseURL() string {
	if url := os.Getenv("CMS_DB_URL"); url != "" {
		return url
	}
	log.Println("⚠️ CMS_DB_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "emdad_cms"),
	)
}

func initPgx(dsn string) {
	var err error
	CmsDB, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("❌ Unable to connect to CMS database: %v", err)
	}

	if err = CmsDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ CMS database ping failed: %v", err)
	}

	log.Println("✅ CMS database connected (pgx)")
}

func initGORM(dsn string) {
	var err error
	CmsGorm, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  GormLogger(),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to CMS database with GORM: %v", err)
	}
	if sqlDB, err := CmsGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ CMS database connected (GORM)")
}

// GormLogger is verbose in development and silent in production.
func GormLogger() logger.Interface {
	if IsProduction() {
		return logger.Default.LogMode(logger.Silent)
	}
	return logger.Default.LogMode(logger.Info)
}

func CloseDB() {
	if CmsDB != nil {
		CmsDB.Close()
		log.Println("✅ CMS database connection closed (pgx)")
	}

	if CmsGorm != nil {
		sqlDB, _ := CmsGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ CMS database connection closed (GORM)")
		}
	}
}

// PingDB checks the pgx pool; it reports healthy when no pool was opened.
func PingDB(ctx context.Context) error {
	if CmsDB == nil {
		return nil
	}
	return CmsDB.Ping(ctx)
}

// WithTimeout returns a context with a 10s timeout (Neon cold starts can be slow)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// WithRequestTimeout bounds a store call by both the request and the 10s budget.
func WithRequestTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
