package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	"github.com/BruksfildServices01/barbermatch/internal/auth"
	"github.com/BruksfildServices01/barbermatch/internal/config"
	dbpkg "github.com/BruksfildServices01/barbermatch/internal/db"
	"github.com/BruksfildServices01/barbermatch/internal/infra/ai"
	"github.com/BruksfildServices01/barbermatch/internal/infra/cache"
	"github.com/BruksfildServices01/barbermatch/internal/infra/firebase"
	"github.com/BruksfildServices01/barbermatch/internal/infra/firestore"
	"github.com/BruksfildServices01/barbermatch/internal/infra/imaging"
	"github.com/BruksfildServices01/barbermatch/internal/infra/payments"
	infraRepo "github.com/BruksfildServices01/barbermatch/internal/infra/repository"
	"github.com/BruksfildServices01/barbermatch/internal/infra/storage"
	"github.com/BruksfildServices01/barbermatch/internal/logger"
	"github.com/BruksfildServices01/barbermatch/internal/routes"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// FIREBASE
	// ======================================================
	fbClients, err := firebase.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("firebase init failed", zap.Error(err))
	}
	defer fbClients.Close()

	deps := routes.Deps{Config: cfg, Log: log}

	// ======================================================
	// STORE
	// ======================================================
	if cfg.StoreDriver == config.StoreFirestore {
		deps.Bookings = firestore.NewBookingStore(fbClients.Firestore)
		deps.Users = firestore.NewUserStore(fbClients.Firestore)
		deps.Reviews = firestore.NewReviewStore(fbClients.Firestore)
		deps.AuditStore = firestore.NewAuditStore(fbClients.Firestore)
	} else {
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			log.Fatal("database init failed", zap.Error(err))
		}
		deps.Bookings = infraRepo.NewBookingGormRepository(db)
		deps.Users = infraRepo.NewUserGormRepository(db)
		deps.Reviews = infraRepo.NewReviewGormRepository(db)
		deps.AuditStore = audit.NewGormStore(db)
	}

	deps.Audit = audit.NewDispatcher(audit.New(deps.AuditStore), log)

	// ======================================================
	// AUTH
	// ======================================================
	if cfg.AuthProvider == config.AuthFirebase {
		deps.Verifier = auth.NewFirebaseVerifier(fbClients.Auth)
	} else {
		tokens := auth.NewLocalTokens(cfg.JWTSecret)
		deps.Verifier = tokens
		deps.Tokens = tokens
	}

	// ======================================================
	// OPTIONAL INFRA
	// ======================================================
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, directory cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			deps.Cache = cache.NewDirectoryCache(client, cfg.DirectoryCacheTTL)
		}
	}

	deps.Photos = storage.New(cfg)
	deps.Encoder = imaging.NewWebPEncoder()

	if cfg.MercadoPagoAccessToken != "" {
		mp, err := payments.NewMercadoPago(cfg)
		if err != nil {
			log.Warn("mercadopago unavailable, subscriptions disabled", zap.Error(err))
		} else {
			deps.Billing = mp
		}
	}

	deps.Generator, err = ai.New(ctx, cfg)
	if err != nil {
		log.Fatal("ai provider init failed", zap.Error(err))
	}

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("store", cfg.StoreDriver),
			zap.String("auth", cfg.AuthProvider),
			zap.String("ai", cfg.AIProvider),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	deps.Audit.Close()
}
