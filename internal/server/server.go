// Package server assembles the dashboard: stores, auth, optional backends and
// the gin router.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/klowq/admin-dashboard/handlers"
	"github.com/klowq/admin-dashboard/internal/blogs"
	"github.com/klowq/admin-dashboard/internal/config"
	"github.com/klowq/admin-dashboard/internal/database"
	"github.com/klowq/admin-dashboard/internal/doctors"
	"github.com/klowq/admin-dashboard/internal/preferences"
	"github.com/klowq/admin-dashboard/internal/sessions"
	"github.com/klowq/admin-dashboard/internal/storage"
	"github.com/klowq/admin-dashboard/internal/tokens"
	"github.com/klowq/admin-dashboard/internal/users"
	"github.com/klowq/admin-dashboard/internal/web"
	"github.com/klowq/admin-dashboard/pkg/logger"
	"github.com/klowq/admin-dashboard/pkg/metrics"
	"github.com/klowq/admin-dashboard/pkg/middleware"
)

var registerMetrics sync.Once

// App holds every long-lived dependency of the HTTP server.
type App struct {
	Config      *config.Config
	Blogs       *blogs.Store
	Preferences *preferences.Store
	Doctors     *doctors.Loader
	Users       *users.Service
	Sessions    *sessions.Service
	Tokens      *tokens.Issuer
	Revocations sessions.Revocations
	Objects     handlers.ObjectStore
	Redis       *redis.Client

	ready   map[string]handlers.Pinger
	closers []func(context.Context) error
}

// Build wires every dependency named by cfg, connecting to Redis, MongoDB and
// MinIO as configured. Options are passed to the admin credential service.
func Build(ctx context.Context, cfg *config.Config, opts ...users.Option) (*App, error) {
	a := &App{
		Config:      cfg,
		Blogs:       blogs.NewStore(cfg.Data.Dir),
		Preferences: preferences.NewStore(cfg.Data.Dir),
		Doctors:     doctors.NewLoader(cfg.Data.Dir),
		Tokens:      tokens.NewIssuer(cfg.Session.Secret, cfg.Session.AccessTTL),
		ready:       map[string]handlers.Pinger{},
	}
	var err error
	if a.Users, err = users.NewService(cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name, opts...); err != nil {
		return nil, err
	}

	if cfg.Session.Backend == "redis" || cfg.RateLimit.UseRedis {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			if cfg.Session.Backend == "redis" {
				return nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr(), err)
			}
			logger.Warnf("redis %s unavailable, rate limiting stays in memory: %v", cfg.Redis.Addr(), err)
		} else {
			logger.Infof("connected to Redis at %s", cfg.Redis.Addr())
			a.Redis = client
			a.ready["redis"] = pingFunc(func(ctx context.Context) error { return client.Ping(ctx).Err() })
			a.closers = append(a.closers, func(context.Context) error { return client.Close() })
		}
	}

	var repo sessions.Repository
	switch cfg.Session.Backend {
	case "redis":
		repo = sessions.NewRedisRepository(a.Redis, "")
	case "mongo":
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
		if err != nil {
			a.Close(ctx)
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		mrepo := sessions.NewMongoRepository(client.Database(cfg.MongoDB.Database).Collection("sessions"))
		if err := mrepo.EnsureIndexes(ctx); err != nil {
			logger.Warnf("mongo session indexes: %v", err)
		}
		repo = mrepo
		a.ready["mongo"] = mrepo
	default:
		repo = sessions.NewMemoryRepository()
	}
	a.Sessions = sessions.NewService(repo, cfg.Session.RefreshTTL)
	if a.Redis != nil {
		a.Revocations = sessions.NewRedisRevocations(a.Redis)
	} else {
		a.Revocations = sessions.NewMemoryRevocations()
	}

	if cfg.MinIO.Enabled() {
		objects, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf("minio unavailable, banners fall back to data URIs: %v", err)
		} else {
			a.Objects = objects
			a.ready["minio"] = objects
		}
	}
	logger.Infof("session backend=%s redis=%v minio=%v data=%s", cfg.Session.Backend, a.Redis != nil, a.Objects != nil, cfg.Data.Dir)
	return a, nil
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Close releases backend connections in reverse order of creation.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i](ctx))
	}
	a.closers = nil
	return errors.Join(errs...)
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
		c.AllowCredentials = true
	}
	return c
}

// Router builds the gin engine with every route mounted.
func (a *App) Router() (*gin.Engine, error) {
	cfg := a.Config
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	registerMetrics.Do(func() { metrics.RegisterCollectors(prometheus.DefaultRegisterer) })

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(), cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	// Optional global rate limiter (per-admin when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && a.Redis != nil {
			r.Use(middleware.RedisRateLimitMiddleware(a.Redis, "rl:global", cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.Window))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}
	var loginLimit gin.HandlerFunc
	if a.Redis != nil {
		loginLimit = middleware.RedisRateLimitMiddleware(a.Redis, "rl:login", cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst, time.Minute)
	} else {
		loginLimit = middleware.RateLimitMiddleware(cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst)
	}

	r.StaticFS("/static", http.FS(web.Static()))
	handlers.NewHealthHandler(cfg.Data.Dir, a.ready).Register(r)
	handlers.RegisterSwagger(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	uploads := handlers.NewUploadHandler(a.Objects)
	uploads.RegisterMedia(r)

	api := r.Group("/api")
	handlers.NewAuthHandler(a.Users, a.Sessions, a.Tokens, a.Revocations, handlers.AuthOptions{
		RefreshTTL:    cfg.Session.RefreshTTL,
		SecureCookies: cfg.Server.Production(),
	}).Register(api, loginLimit)

	protected := api.Group("", middleware.AuthMiddleware(a.Tokens, a.Revocations))
	handlers.NewBlogHandler(a.Blogs).Register(protected)
	handlers.NewPreferenceHandler(a.Preferences).Register(protected)
	handlers.NewDoctorHandler(a.Doctors).Register(protected)
	handlers.NewDashboardHandler(a.Blogs, a.Preferences, a.Doctors).Register(protected)
	uploads.Register(protected)

	handlers.NewPageHandler(a.Blogs, a.Preferences, a.Doctors).Register(r,
		middleware.PageAuth(a.Tokens, a.Revocations),
		middleware.RedirectAuthenticated(a.Tokens, a.Revocations),
	)
	return r, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	if cfg.Server.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	app, err := Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(context.Background()); err != nil {
			logger.Warnf("close: %v", err)
		}
	}()
	router, err := app.Router()
	if err != nil {
		return err
	}

	// seed preferences up front so a bad data directory fails at startup
	if _, err := app.Preferences.Seed(); err != nil {
		return fmt.Errorf("prepare data directory: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("dashboard listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
