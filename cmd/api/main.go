package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "globalpay_gateway/docs"
	"globalpay_gateway/internal/adapter/http/routes"
	"globalpay_gateway/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
)

// @title           Global Payments Gateway API
// @version         1.0
// @description     Global Payments card processing (sale, refund, repeat sale) with a DynamoDB audit trail.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	logger := logging.MustNewLogger(getenvDefault("SERVICE_NAME", "globalpay-gateway"), getenvDefault("ENV", "dev"))
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, logger); err != nil {
		logger.Fatal("failed to startup the application", zap.Error(err))
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
