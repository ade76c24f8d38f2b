package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Ajeet990/myfacebook/internal/api/http"
	"github.com/Ajeet990/myfacebook/internal/api/http/handlers"
	"github.com/Ajeet990/myfacebook/internal/auth"
	"github.com/Ajeet990/myfacebook/internal/config"
	"github.com/Ajeet990/myfacebook/internal/events"
	"github.com/Ajeet990/myfacebook/internal/observability"
	"github.com/Ajeet990/myfacebook/internal/persistence"
	"github.com/Ajeet990/myfacebook/internal/repository"
	"github.com/Ajeet990/myfacebook/internal/service"
	"github.com/Ajeet990/myfacebook/internal/session"
	"github.com/Ajeet990/myfacebook/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		logger.Fatal("failed to create upload dir", zap.Error(err))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	postRepo := repository.NewPostRepository(pool)
	likeRepo := repository.NewLikeRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)

	sessionStore := session.NewRedisStore(redis.Client)
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:     userRepo,
		SessionStore: sessionStore,
		Dispatcher:   dispatcher,
	})
	postService := service.NewPostService(service.PostDependencies{
		PostRepo:    postRepo,
		LikeRepo:    likeRepo,
		CommentRepo: commentRepo,
		UserRepo:    userRepo,
		Dispatcher:  dispatcher,
	})
	adminService := service.NewAdminService(userRepo, postRepo, commentRepo, likeRepo)
	chatService := service.NewChatService(cfg.Gemini, logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notify)
	worker.StartNotificationWorker(notificationService)

	resolver := auth.NewResolver(authService.TokenManager(), sessionStore, userRepo, logger)
	gate := auth.NewGate(auth.NewClassifier(), resolver, logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(),
		Auth:   handlers.NewAuthHandler(authService, resolver),
		Posts:  handlers.NewPostsHandler(postService, cfg.Upload),
		Admin:  handlers.NewAdminHandler(adminService),
		Chat:   handlers.NewChatHandler(chatService),
		Pages:  handlers.NewPagesHandler(postService),
		Gate:   gate,
		Upload: cfg.Upload,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
