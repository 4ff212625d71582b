// Command server runs the OpenMusic HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/fityannugroho/openmusic-api/internal/handler"
	"github.com/fityannugroho/openmusic-api/internal/queue"
	"github.com/fityannugroho/openmusic-api/internal/repository"
	"github.com/fityannugroho/openmusic-api/internal/service"
	"github.com/fityannugroho/openmusic-api/internal/storage"
	"github.com/fityannugroho/openmusic-api/migrations"
	"github.com/fityannugroho/openmusic-api/pkg/config"
	"github.com/fityannugroho/openmusic-api/pkg/crypto"
	"github.com/fityannugroho/openmusic-api/pkg/db"
	"github.com/fityannugroho/openmusic-api/pkg/jwt"
	"github.com/fityannugroho/openmusic-api/pkg/logger"
	"github.com/fityannugroho/openmusic-api/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	log := logger.Default()
	log.Info("Starting openmusic-api")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config", logger.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbCfg := &db.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
		SSLMode:  cfg.Postgres.SSLMode,
		MaxConns: cfg.Postgres.MaxConns,
		MinConns: cfg.Postgres.MinConns,
	}

	// Apply schema migrations before serving
	if err := runMigrations(dbCfg, log); err != nil {
		log.Fatal("Failed to apply migrations", logger.Error(err))
	}

	pool, err := db.NewPool(ctx, dbCfg)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", logger.Error(err))
	}
	defer pool.Close()
	log.Info("Connected to PostgreSQL")

	redisClient, err := redis.NewClient(&redis.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolTimeout:  cfg.Redis.PoolTimeout,
	})
	if err != nil {
		log.Fatal("Failed to connect to Redis", logger.Error(err))
	}
	defer redisClient.Close()
	log.Info("Connected to Redis")

	cache := redis.NewReadThrough(redisClient)

	store, err := storage.NewLocal(cfg.Storage.UploadDir, cfg.Server.BaseURL+"/uploads/images")
	if err != nil {
		log.Fatal("Failed to prepare upload directory", logger.Error(err))
	}

	publisher := queue.NewPublisher(cfg.RabbitMQ.URL)
	defer publisher.Close()

	tokens := jwt.NewManager(&jwt.Config{
		Secret:        cfg.JWT.Secret,
		Issuer:        cfg.JWT.Issuer,
		TokenExpiry:   cfg.JWT.TokenExpiry,
		RefreshExpiry: cfg.JWT.RefreshExpiry,
	})
	hasher := crypto.NewPasswordHasher()

	// Repositories
	albumRepo := repository.NewAlbumRepository(pool)
	songRepo := repository.NewSongRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	tokenRepo := repository.NewTokenRepository(pool)
	playlistRepo := repository.NewPlaylistRepository(pool)
	collabRepo := repository.NewCollaborationRepository(pool)
	likeRepo := repository.NewLikeRepository(pool)

	// Services
	accessSvc := service.NewAccessService(playlistRepo, collabRepo)
	albumSvc := service.NewAlbumService(albumRepo, songRepo, store, log)
	songSvc := service.NewSongService(songRepo)
	userSvc := service.NewUserService(userRepo, hasher)
	authSvc := service.NewAuthService(userRepo, tokenRepo, hasher, tokens)
	likeSvc := service.NewLikeService(likeRepo, albumRepo, cache, log)
	playlistSvc := service.NewPlaylistService(playlistRepo, songRepo, userRepo, accessSvc, cache, log)
	collabSvc := service.NewCollaborationService(collabRepo, userRepo, accessSvc, playlistSvc)
	exportSvc := service.NewExportService(accessSvc, publisher, cfg.RabbitMQ.ExportQueue)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.Handlers{
		Albums:    handler.NewAlbumHandler(albumSvc, likeSvc, cfg.Storage.MaxCoverSize),
		Songs:     handler.NewSongHandler(songSvc),
		Users:     handler.NewUserHandler(userSvc),
		Auth:      handler.NewAuthHandler(authSvc),
		Playlists: handler.NewPlaylistHandler(playlistSvc, exportSvc),
		Collabs:   handler.NewCollaborationHandler(collabSvc),
	}, tokens, log, cfg.Storage.UploadDir)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("HTTP server listening", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", logger.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down openmusic-api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", logger.Error(err))
		os.Exit(1)
	}
}

func runMigrations(dbCfg *db.Config, log logger.Logger) error {
	handle, err := db.OpenSQL(dbCfg)
	if err != nil {
		return err
	}

	migrator, err := db.NewMigrator(handle, migrations.FS, migrations.Path)
	if err != nil {
		handle.Close()
		return err
	}
	defer migrator.Close()

	if err := migrator.EnsureSchema(); err != nil {
		return err
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return err
	}
	log.Info("Schema migrations applied",
		logger.Int("version", int(version)),
		logger.Bool("dirty", dirty),
	)
	return nil
}
