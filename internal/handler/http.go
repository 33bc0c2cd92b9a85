package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/donation-service/internal/entities"
	"github.com/SergeyBogomolovv/donation-service/pkg/donate"
	"github.com/SergeyBogomolovv/donation-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const (
	msgMethodNotAllowed   = "Method not allowed"
	msgInvalidAmount      = "Valid amount is required"
	msgReceiptRequired    = "Receipt ID is required"
	msgInvalidCurrency    = "Valid currency code is required"
	msgTooManyNotes       = "Too many notes"
	msgGatewayNotReady    = "Payment gateway is not configured"
	msgOrderFailed        = "Failed to create order"
	msgMissingFields      = "Missing required payment verification fields"
	msgVerificationFailed = "Payment verification failed"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, req entities.DonationRequest) (entities.Order, error)
}

type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, cb entities.PaymentCallback) (entities.VerificationResult, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderCreator
	verifier PaymentVerifier
	checkout CheckoutConfig
}

func NewHTTPHandler(logger *slog.Logger, orders OrderCreator, verifier PaymentVerifier, checkout CheckoutConfig) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		orders:   orders,
		verifier: verifier,
		checkout: checkout,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.MethodNotAllowed(methodNotAllowed)

		r.Post("/create-razorpay-order", h.CreateOrder)
		r.Options("/create-razorpay-order", preflight)

		r.Post("/verify-razorpay-payment", h.VerifyPayment)
		r.Options("/verify-razorpay-payment", preflight)

		r.Get("/checkout-config", h.CheckoutConfig)
	})

	r.Get("/thank-you", h.ThankYou)
}

// CreateOrder создает заказ в платежном шлюзе.
// @Summary      Создать заказ на пожертвование
// @Description  Переводит сумму в пайсы и создает заказ Razorpay с автоматическим списанием
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest  true  "Сумма, валюта, receipt и заметки"
// @Success      200  {object}  CreateOrderResponse
// @Failure      400  {object}  utils.ErrorResponse "Невалидная сумма или receipt"
// @Failure      405  {object}  utils.ErrorResponse "Метод не поддерживается"
// @Failure      500  {object}  utils.ErrorResponse "Ошибка платежного шлюза"
// @Router       /api/create-razorpay-order [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	timer := prometheus.NewTimer(orderRequestDuration)
	defer timer.ObserveDuration()

	var req CreateOrderRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		orderRequestTotal.WithLabelValues("bad_request").Inc()
		utils.WriteError(w, msgInvalidAmount, http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		orderRequestTotal.WithLabelValues("bad_request").Inc()
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.CreateOrder(ctx, CreateOrderJSONToEntity(req))
	if err != nil {
		msg, code := orderError(err)
		if code == http.StatusBadRequest {
			orderRequestTotal.WithLabelValues("bad_request").Inc()
		} else {
			orderRequestTotal.WithLabelValues("error").Inc()
			h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		}
		utils.WriteError(w, msg, code)
		return
	}

	orderRequestTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, CreateOrderResponse{Success: true, Order: OrderEntityToJSON(order)}, http.StatusOK)
}

func orderError(err error) (string, int) {
	switch {
	case errors.Is(err, entities.ErrInvalidAmount):
		return msgInvalidAmount, http.StatusBadRequest
	case errors.Is(err, entities.ErrReceiptRequired):
		return msgReceiptRequired, http.StatusBadRequest
	case errors.Is(err, entities.ErrInvalidCurrency):
		return msgInvalidCurrency, http.StatusBadRequest
	case errors.Is(err, entities.ErrTooManyNotes):
		return msgTooManyNotes, http.StatusBadRequest
	case errors.Is(err, entities.ErrGatewayNotConfigured):
		return msgGatewayNotReady, http.StatusInternalServerError
	default:
		return msgOrderFailed, http.StatusInternalServerError
	}
}

// VerifyPayment проверяет подпись платежа.
// @Summary      Проверить подпись платежа
// @Description  Сверяет HMAC-SHA256(order_id|payment_id) с подписью из колбэка шлюза
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      VerifyPaymentRequest  true  "Поля колбэка Razorpay"
// @Success      200  {object}  VerifyPaymentResponse
// @Failure      400  {object}  VerifyPaymentResponse "Нет полей или подпись не совпала"
// @Failure      405  {object}  utils.ErrorResponse "Метод не поддерживается"
// @Failure      500  {object}  VerifyPaymentResponse "Секрет шлюза не задан"
// @Router       /api/verify-razorpay-payment [post]
func (h *HTTPHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	timer := prometheus.NewTimer(verifyRequestDuration)
	defer timer.ObserveDuration()

	var req VerifyPaymentRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		paymentsVerified.WithLabelValues("bad_request").Inc()
		utils.WriteJSON(w, VerifyPaymentResponse{Error: msgMissingFields}, http.StatusBadRequest)
		return
	}

	res, err := h.verifier.VerifyPayment(ctx, VerifyJSONToEntity(req))
	switch {
	case errors.Is(err, entities.ErrMissingVerificationFields):
		paymentsVerified.WithLabelValues("bad_request").Inc()
		utils.WriteJSON(w, VerifyPaymentResponse{Error: msgMissingFields}, http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrGatewayNotConfigured):
		paymentsVerified.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "payment verification unavailable", slog.Any("error", err))
		utils.WriteJSON(w, VerifyPaymentResponse{Error: msgGatewayNotReady}, http.StatusInternalServerError)
		return
	case err != nil:
		paymentsVerified.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to verify payment", slog.Any("error", err))
		utils.WriteJSON(w, VerifyPaymentResponse{Error: msgVerificationFailed}, http.StatusInternalServerError)
		return
	}

	if !res.Verified {
		paymentsVerified.WithLabelValues("mismatch").Inc()
		utils.WriteJSON(w, VerifyPaymentResponse{Message: res.Message}, http.StatusBadRequest)
		return
	}

	paymentsVerified.WithLabelValues("verified").Inc()
	utils.WriteJSON(w, VerifyPaymentResponse{Success: true, Verified: true, Message: res.Message}, http.StatusOK)
}

// CheckoutConfig отдает публичные настройки виджета оплаты.
// @Summary      Настройки виджета оплаты
// @Description  Публичный key id, оформление и суммы по умолчанию. Секрет не возвращается
// @Tags         payments
// @Produce      json
// @Success      200  {object}  CheckoutConfig
// @Router       /api/checkout-config [get]
func (h *HTTPHandler) CheckoutConfig(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.checkout, http.StatusOK)
}

// ThankYou рендерит страницу подтверждения.
// @Summary      Страница подтверждения
// @Tags         pages
// @Produce      html
// @Param        name        query  string  false  "Имя донора"
// @Param        amount      query  number  false  "Сумма"
// @Param        payment_id  query  string  false  "ID платежа"
// @Param        order_id    query  string  false  "ID заказа"
// @Success      200  {string}  string  "HTML"
// @Router       /thank-you [get]
func (h *HTTPHandler) ThankYou(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := decimal.NewFromString(q.Get("amount"))
	if err != nil {
		amount = decimal.Zero
	}

	c := donate.Confirmation{
		DonorName: q.Get("name"),
		Amount:    amount,
		Currency:  h.checkout.Currency,
		PaymentID: q.Get("payment_id"),
		OrderID:   q.Get("order_id"),
		IssuedAt:  time.Now(),
	}

	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render confirmation", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, msgMethodNotAllowed, http.StatusMethodNotAllowed)
}
