package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "globalpay_gateway/internal/adapter/http/dto/request"
	response "globalpay_gateway/internal/adapter/http/dto/response"
	"globalpay_gateway/internal/domain/entities"
	"globalpay_gateway/internal/infrastructure/logging"
	"globalpay_gateway/internal/usecase"
	"globalpay_gateway/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler exposes the Global Payments operations over HTTP.
//
// Gateway outcomes are always answered with 200; clients read `success` and
// `kind` from the body. Only input and lookup problems map to 4xx.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Purchase godoc
// @Summary      Charge a card or stored customer
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.PurchaseRequest  true  "Purchase"
// @Success      200   {object}  response.TransactionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /payments/purchase [post]
func (h *PaymentHandler) Purchase(c *gin.Context) {
	var payload request.PurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.invalidPayload(c, "purchase", err)
		return
	}

	tx, err := h.usecase.Purchase(c.Request.Context(), *payload.Amount, payload.Card.ToEntity(), payload.Options.ToEntity())
	h.respond(c, "purchase", tx, err)
}

// Refund godoc
// @Summary      Refund a prior transaction
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.ReferenceRequest  true  "Refund"
// @Success      200   {object}  response.TransactionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /payments/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	var payload request.ReferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.invalidPayload(c, "refund", err)
		return
	}

	tx, err := h.usecase.Refund(c.Request.Context(), *payload.Amount, payload.ResolveAuthorization(), payload.Options.ToEntity())
	h.respond(c, "refund", tx, err)
}

// RepeatSale godoc
// @Summary      Charge again against a prior transaction
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.ReferenceRequest  true  "Repeat sale"
// @Success      200   {object}  response.TransactionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /payments/repeat-sale [post]
func (h *PaymentHandler) RepeatSale(c *gin.Context) {
	var payload request.ReferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.invalidPayload(c, "repeat_sale", err)
		return
	}

	tx, err := h.usecase.RepeatSale(c.Request.Context(), *payload.Amount, payload.ResolveAuthorization(), payload.Options.ToEntity())
	h.respond(c, "repeat_sale", tx, err)
}

// Recurring godoc
// @Summary      Recurring charge with no amount
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.RecurringRequest  true  "Recurring"
// @Success      200   {object}  response.TransactionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /payments/recurring [post]
func (h *PaymentHandler) Recurring(c *gin.Context) {
	var payload request.RecurringRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.invalidPayload(c, "recurring", err)
		return
	}

	tx, err := h.usecase.Recurring(c.Request.Context(), payload.ResolveAuthorization(), payload.Options.ToEntity())
	h.respond(c, "recurring", tx, err)
}

// GetTransaction godoc
// @Summary      Get an audit record
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Transaction ID"
// @Success      200  {object}  response.TransactionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetTransaction(c *gin.Context) {
	tx, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// ListTransactions godoc
// @Summary      List audit records sharing a PNRef
// @Tags         payments
// @Produce      json
// @Param        authorization  query     string  true  "PNRef"
// @Success      200            {object}  response.TransactionListResponse
// @Failure      400            {object}  pkg.HTTPError
// @Router       /payments [get]
func (h *PaymentHandler) ListTransactions(c *gin.Context) {
	authorization := strings.TrimSpace(c.Query("authorization"))
	txs, err := h.usecase.ListByAuthorization(c.Request.Context(), authorization)
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(authorization, txs))
}

// GatewayInfo godoc
// @Summary      Gateway metadata
// @Tags         gateway
// @Produce      json
// @Success      200  {object}  response.GatewayInfoResponse
// @Router       /gateway [get]
func (h *PaymentHandler) GatewayInfo(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromGatewayInfo(h.usecase.GatewayInfo()))
}

func (h *PaymentHandler) respond(c *gin.Context, op string, tx entities.Transaction, err error) {
	if err != nil {
		h.fail(c, op, err)
		return
	}
	logging.FromContext(c.Request.Context()).Info("payment handled",
		zap.String("component", "payment_handler"),
		zap.String("op", op),
		zap.String("transaction_id", tx.ID),
		zap.Bool("success", tx.Success),
		zap.String("kind", string(tx.Kind)),
	)
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

func (h *PaymentHandler) invalidPayload(c *gin.Context, op string, err error) {
	logging.FromContext(c.Request.Context()).Info("invalid payload",
		zap.String("component", "payment_handler"),
		zap.String("op", op),
		zap.Error(err),
	)
	c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
}

func (h *PaymentHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapPaymentError(err)
	logger := logging.FromContext(c.Request.Context()).With(
		zap.String("component", "payment_handler"),
		zap.String("op", op),
		zap.String("code", appErr.Code),
		zap.Error(err),
	)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed")
	} else {
		logger.Info("request rejected")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrMissingPaymentSource):
		return pkg.NewDomainErrorSimple("MISSING_PAYMENT_SOURCE", "A card or customer reference is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrMissingAuthorization), errors.Is(err, usecase.ErrInvalidAuthorization):
		return pkg.NewDomainErrorSimple("MISSING_AUTHORIZATION", "Authorization is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidChargeRequest), errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
