package app

import (
	"Gin_postgres_redis_lost_found/db"
	"Gin_postgres_redis_lost_found/session"
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Aliases so handlers stay short.
type Ctx = gin.Context
type H = gin.H

// App aggregates the process-wide dependencies. There is no package-level
// connection or session singleton: handlers get what they need from here.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Config Config

	appSess *session.AppSessionStore
}

// Config comes from environment variables.
type Config struct {
	RedisAddr  string
	RedisPwd   string
	WebOrigin  string
	SessionTTL time.Duration
}

func (a *App) AppSessions() *session.AppSessionStore { return a.appSess }

func MustNew() *App {
	cfg := loadConfig()

	// --- DB: Postgres ---
	dbConn := db.ConnectDB()

	// --- Redis ---
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	// --- Gin ---
	r := gin.Default()
	useCORS(r, cfg.WebOrigin)
	return &App{
		Router: r, DB: dbConn, RDB: rdb, Config: cfg,
		appSess: session.NewAppSessionStore(rdb, cfg.SessionTTL),
	}
}

func (a *App) Close() { _ = a.RDB.Close() }

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	// Sessions live 1 day unless overridden.
	ttl := 24 * time.Hour
	if s := os.Getenv("SESSION_TTL_SECONDS"); s != "" {
		if d, err := time.ParseDuration(s + "s"); err == nil {
			ttl = d
		}
	}
	return Config{
		RedisAddr:  get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:   os.Getenv("REDIS_PASSWORD"),
		WebOrigin:  get("WEB_ORIGIN", "http://localhost:3000"),
		SessionTTL: ttl,
	}
}
