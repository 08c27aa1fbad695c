package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	_ "globalpay_gateway/docs" // generated by swag init
	"globalpay_gateway/internal/adapter/http/handlers"
	"globalpay_gateway/internal/adapter/http/middleware"
	"globalpay_gateway/internal/adapter/persistence/repository"
	"globalpay_gateway/internal/infrastructure/database"
	"globalpay_gateway/internal/infrastructure/observability"
	"globalpay_gateway/internal/infrastructure/payments"
	"globalpay_gateway/internal/usecase"
	"globalpay_gateway/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	defaultPort     = "8080"
	shutdownTimeout = 10 * time.Second
)

// Metrics groups the registry the collectors are registered on with the
// gatherer served on /metrics.
type Metrics struct {
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

func DefaultMetrics() Metrics {
	return Metrics{Registerer: prometheus.DefaultRegisterer, Gatherer: prometheus.DefaultGatherer}
}

// Run wires the service from the environment and serves until ctx is done.
func Run(ctx context.Context, logger *zap.Logger) error {
	metrics := DefaultMetrics()

	paymentHandler, err := buildPaymentHandler(ctx, logger, metrics.Registerer)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + getenvDefault("PORT", defaultPort),
		Handler:           NewRouter(logger, metrics, paymentHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http_server_start", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http_server_shutdown_error", zap.Error(err))
		return err
	}
	logger.Info("http_server_stopped")
	return nil
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(logger *zap.Logger, metrics Metrics, paymentHandler *handlers.PaymentHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger, metrics)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
	return router
}

func buildPaymentHandler(ctx context.Context, logger *zap.Logger, reg prometheus.Registerer) (*handlers.PaymentHandler, error) {
	ddb, err := database.ConnectDynamoDB(ctx, logger)
	if err != nil {
		return nil, err
	}
	transactionRepo := repository.NewTransactionDynamoRepository(ddb)

	// A missing gateway config keeps the service up: lookups still work and
	// charge routes answer 503.
	var paymentGateway interfaces.IPaymentGateway
	cfg, err := payments.ConfigFromEnv()
	if err == nil {
		var gw *payments.GlobalPaymentsGateway
		gw, err = payments.NewGlobalPaymentsGateway(cfg,
			payments.WithLogger(logger),
			payments.WithMetrics(observability.NewGatewayMetrics(reg)),
		)
		if err == nil {
			paymentGateway = gw
		}
	}
	if err != nil {
		logger.Warn("global payments gateway not configured", zap.Error(err))
	}

	paymentUseCase := usecase.NewPaymentUseCase(transactionRepo, paymentGateway)
	return handlers.NewPaymentHandler(paymentUseCase), nil
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger, metrics Metrics) {
	router.Use(middleware.Observability(logger, observability.NewHTTPMetrics(metrics.Registerer)))
	router.Use(middleware.Recovery())
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
