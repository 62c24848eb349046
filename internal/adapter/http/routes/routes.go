package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"cfp_agreements/internal/adapter/http/handlers"
	"cfp_agreements/internal/adapter/http/middleware"
	"cfp_agreements/internal/adapter/persistence/repository"
	"cfp_agreements/internal/adapter/persistence/sqlite"
	"cfp_agreements/internal/adapter/storage"
	"cfp_agreements/internal/domain/catalog"
	"cfp_agreements/internal/infrastructure/config"
	"cfp_agreements/internal/infrastructure/database"
	applogger "cfp_agreements/internal/infrastructure/logger"
	"cfp_agreements/internal/infrastructure/mail"
	"cfp_agreements/internal/infrastructure/metrics"
	"cfp_agreements/internal/usecase"
	"cfp_agreements/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Catalog   *handlers.CatalogHandler
	Quote     *handlers.QuoteHandler
	Draft     *handlers.DraftHandler
	Agreement *handlers.AgreementHandler
}

// Run will start the server and block until SIGINT or SIGTERM.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger, err := applogger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	h, closeFn, err := buildHandlers(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("[app][startup] wiring failed", zap.Error(err))
	}
	defer closeFn()

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(h, cfg.AdminAPIToken, metrics.NewRegistry(), logger)

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("[app][startup] listening",
			zap.String("addr", server.Addr),
			zap.String("storage", cfg.StorageDriver),
			zap.String("blobs", cfg.BlobDriver),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("[app][startup] http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("[app][shutdown] draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("[app][shutdown] graceful shutdown failed", zap.Error(err))
	}
}

// NewRouter mounts every route on a fresh engine. An empty adminToken keeps
// the back-office routes disabled.
func NewRouter(h Handlers, adminToken string, registry *prometheus.Registry, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.Metrics(),
	)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog, h.Quote)
	addDraftRoutes(v1, h.Draft)
	addAgreementRoutes(v1, h.Agreement, adminToken)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config, logger *zap.Logger) (Handlers, func(), error) {
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return Handlers{}, nil, err
	}
	logger.Info("[app][startup] catalog loaded",
		zap.Int("items", cat.ItemCount()),
		zap.Int("templates", len(cat.Templates())),
	)

	draftRepo, agreementRepo, closeFn, err := repositories(ctx, cfg)
	if err != nil {
		return Handlers{}, nil, err
	}
	signatures, err := storage.New(ctx, cfg)
	if err != nil {
		closeFn()
		return Handlers{}, nil, fmt.Errorf("signature storage: %w", err)
	}
	mailer := mail.New(cfg, logger)

	quotes := usecase.NewQuoteUseCase(cat, logger)
	drafts := usecase.NewDraftUseCase(draftRepo, quotes, logger)
	agreements := usecase.NewAgreementUseCase(agreementRepo, draftRepo, signatures, quotes, logger)
	notifications := usecase.NewNotificationUseCase(agreementRepo, mailer, cfg.CompanyInbox, logger)

	return Handlers{
		Catalog:   handlers.NewCatalogHandler(quotes, logger),
		Quote:     handlers.NewQuoteHandler(quotes, logger),
		Draft:     handlers.NewDraftHandler(drafts, cfg.DraftURL, logger),
		Agreement: handlers.NewAgreementHandler(agreements, notifications, logger),
	}, closeFn, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func repositories(ctx context.Context, cfg config.Config) (interfaces.IDraftRepository, interfaces.IAgreementRepository, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := sqlite.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return sqlite.NewDraftRepository(db), sqlite.NewAgreementRepository(db), func() { db.Close() }, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connecting to dynamodb: %w", err)
		}
		return repository.NewDraftDynamoRepository(ddb, cfg.DraftsTbl),
			repository.NewAgreementDynamoRepository(ddb, cfg.AgreementsTbl, cfg.ReferencesTbl, cfg.DraftsTbl),
			func() {}, nil
	}
}
