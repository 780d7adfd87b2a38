package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/audit"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/events"
	"github.com/kanmwangi2/Cheetah-Payroll-sub000/internal/messaging/kafka/consumer"
)

// RunConsumer starts the audit trail consumer and blocks until
// SIGINT/SIGTERM.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayrollRunLifecycleTopic,
		GroupID:        "payroll-run-audit",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayrollRunLifecycle(ctx, reader, audit.NewZapSink(), logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
