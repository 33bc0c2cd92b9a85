package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/donation-service/internal/app"
	"github.com/SergeyBogomolovv/donation-service/internal/config"
	"github.com/SergeyBogomolovv/donation-service/internal/gateway"
	"github.com/SergeyBogomolovv/donation-service/internal/handler"
	"github.com/SergeyBogomolovv/donation-service/internal/postgres"
	"github.com/SergeyBogomolovv/donation-service/internal/repo"
	"github.com/SergeyBogomolovv/donation-service/internal/service"
	"github.com/SergeyBogomolovv/donation-service/pkg/cache"
	"github.com/SergeyBogomolovv/donation-service/pkg/trm"

	"github.com/grafana/loki-client-go/loki"
	"github.com/joho/godotenv"
	slogloki "github.com/samber/slog-loki/v3"
)

// @title           Donation Service API
// @version         1.0
// @description     Создание заказов Razorpay и проверка подписи платежей
func main() {
	conf := config.New()
	logger, closeLogger := newLogger(conf)
	defer closeLogger()
	panicIfErr("invalid config", conf.Validate())

	if !conf.GatewayConfigured() {
		logger.Warn("razorpay credentials are not set, order creation and verification will fail")
	}

	handler.RegisterMetrics()

	razorpay := gateway.NewRazorpay(logger, conf.Razorpay)
	orderService := service.NewOrderService(logger, razorpay, conf.Razorpay.Timeout)

	seen := cache.NewLRUCache[string, time.Time](conf.Cache.Capacity, conf.Cache.TTL)

	app := app.New(logger, conf)
	app.SetStarters(seen)

	var recorder service.PaymentRecorder = service.NewLogRecorder(logger)

	var ledger service.PaymentRecorder
	if conf.Postgres != nil {
		db, err := postgres.New(*conf.Postgres)
		panicIfErr("failed to connect to db", err)
		defer db.Close()
		panicIfErr("failed to migrate db", postgres.Migrate(db))
		logger.Info("postgres connected")

		ledger = service.NewLedgerService(logger, trm.NewManager(db), repo.NewPostgresRepo(db), razorpay)
		recorder = ledger
	}

	if conf.Kafka != nil {
		publisher := handler.NewKafkaPublisher(logger, *conf.Kafka)
		defer publisher.Close()
		recorder = publisher

		if ledger != nil {
			app.SetConsumers(handler.NewKafkaConsumer(logger, *conf.Kafka, ledger))
		}
		logger.Info("kafka ledger enabled", slog.String("topic", conf.Kafka.Topic))
	}

	verifier := service.NewVerifier(logger, conf.Razorpay.KeySecret, recorder, seen)

	httpHandler := handler.NewHTTPHandler(logger, orderService, verifier,
		handler.NewCheckoutConfig(conf.Razorpay.KeyID, conf.Checkout))
	app.SetHTTPHandlers(httpHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

// newLogger пишет в stdout, а при заданном LOKI_URL - в Loki
func newLogger(conf config.Config) (*slog.Logger, func()) {
	level := slog.LevelDebug
	if conf.Env == "production" {
		level = slog.LevelInfo
	}

	if conf.Logs.LokiURL != "" {
		lokiConfig, err := loki.NewDefaultConfig(conf.Logs.LokiURL)
		panicIfErr("invalid loki url", err)
		client, err := loki.New(lokiConfig)
		panicIfErr("failed to create loki client", err)

		logger := slog.New(slogloki.Option{
			Level:  level,
			Client: client,
		}.NewLokiHandler()).With(slog.String("service", "donation-service"), slog.String("env", conf.Env))
		return logger, client.Stop
	}

	switch conf.Env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})), func() {}
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})), func() {}
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
