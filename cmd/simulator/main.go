package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/donation-service/pkg/donate"
	"github.com/joho/godotenv"
)

// Симулятор гоняет полный сценарий пожертвования против запущенного сервиса:
// создание заказа, "оплата" подписанным колбэком и проверка подписи.
func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:8080", "donation service base URL")
		workers  = flag.Int("workers", 4, "concurrent donors")
		total    = flag.Int("n", 20, "total donations, 0 - until interrupted")
		failRate = flag.Float64("fail-rate", 0.2, "share of dismissed, failed and tampered payments")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	secret := os.Getenv("RAZORPAY_KEY_SECRET")
	if secret == "" {
		logger.Error("RAZORPAY_KEY_SECRET is required to sign simulated payments")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	client := donate.NewClient(*baseURL)
	settings, err := client.CheckoutConfig(ctx)
	if err != nil {
		logger.Error("failed to load checkout config", slog.Any("error", err))
		os.Exit(1)
	}

	var (
		next     atomic.Int64
		complete atomic.Int64
		failed   atomic.Int64
		wg       sync.WaitGroup
	)

	start := time.Now()
	for range *workers {
		wg.Go(func() {
			for {
				n := next.Add(1)
				if (*total > 0 && n > int64(*total)) || ctx.Err() != nil {
					return
				}

				outcome := pickOutcome(*failRate)
				loader := donate.NewLoader(func(context.Context) (donate.PaymentGateway, error) {
					return donate.NewSimulatedGateway(secret, outcome), nil
				})
				form := donate.NewForm(logger, client, loader, settings)

				c, err := form.Submit(ctx, randomInput(settings, n))
				if err != nil {
					failed.Add(1)
					var fe *donate.Error
					if errors.As(err, &fe) {
						logger.Warn("donation failed",
							slog.Int64("n", n),
							slog.String("stage", fe.Stage.String()),
							slog.String("message", fe.Message),
						)
					} else {
						logger.Warn("donation failed", slog.Int64("n", n), slog.Any("error", err))
					}
					continue
				}

				complete.Add(1)
				logger.Info("donation complete",
					slog.Int64("n", n),
					slog.String("payment_id", c.PaymentID),
					slog.String("amount", c.Amount.String()),
				)
			}
		})
	}
	wg.Wait()

	logger.Info("simulation finished",
		slog.Int64("complete", complete.Load()),
		slog.Int64("failed", failed.Load()),
		slog.Duration("elapsed", time.Since(start)),
	)
}

func init() {
	godotenv.Load()
}

func pickOutcome(failRate float64) donate.Outcome {
	if rand.Float64() >= failRate {
		return donate.OutcomePaid
	}
	return []donate.Outcome{
		donate.OutcomeDismissed,
		donate.OutcomeFailed,
		donate.OutcomeTampered,
	}[rand.Intn(3)]
}

func randomInput(s donate.Settings, n int64) donate.Input {
	amount := fmt.Sprintf("%d", s.DefaultAmount)
	if len(s.PresetAmounts) > 0 {
		amount = fmt.Sprintf("%d", s.PresetAmounts[rand.Intn(len(s.PresetAmounts))])
	}
	if rand.Intn(4) == 0 {
		amount = fmt.Sprintf("%d.%02d", rand.Intn(10000)+1, rand.Intn(100))
	}

	in := donate.Input{
		Amount: amount,
		Name:   fmt.Sprintf("Donor %d", n),
		Email:  fmt.Sprintf("donor%d@example.com", n),
		Phone:  fmt.Sprintf("9%09d", rand.Intn(1_000_000_000)),
	}
	if rand.Intn(5) == 0 {
		in.TaxExemption = donate.TaxExemption{
			Requested: true,
			PAN:       "ABCDE1234F",
			Aadhaar:   "123412341234",
			Address:   "Pune, Maharashtra",
		}
	}
	return in
}
