package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pauldemian98/portal-rh/internal/config"
	"github.com/pauldemian98/portal-rh/internal/events"
	"github.com/pauldemian98/portal-rh/internal/messaging/kafka/consumer"
	"github.com/pauldemian98/portal-rh/internal/report"
	"github.com/pauldemian98/portal-rh/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer invalidates cached reports as punch events arrive, until
// interrupted.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	reader := connection.NewKafkaReader(cfg.KafkaBroker, events.PunchRecordedTopic, "portal-rh-report-cache")
	defer reader.Close()

	cache := report.NewRedisCache(redisClient, cfg.ReportCacheTTL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePunchRecorded(ctx, reader, cache, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
