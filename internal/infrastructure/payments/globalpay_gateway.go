package payments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"globalpay_gateway/internal/domain/entities"
	"globalpay_gateway/internal/infrastructure/logging"
	"globalpay_gateway/internal/infrastructure/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	processCreditCardAction = "transact.asmx/ProcessCreditCard?"
	approvedMessage         = "Transaction approved"
)

// GlobalPaymentsGateway talks to the Global Payments transact API.
// It keeps no per-call state and is safe for concurrent use.
type GlobalPaymentsGateway struct {
	username    string
	password    string
	baseURL     string
	moneyFormat entities.MoneyFormat
	client      *http.Client
	logger      *zap.Logger
	metrics     *observability.GatewayMetrics
	tracer      trace.Tracer
}

type Option func(*GlobalPaymentsGateway)

func WithHTTPClient(c *http.Client) Option {
	return func(g *GlobalPaymentsGateway) {
		if c != nil {
			g.client = c
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(g *GlobalPaymentsGateway) {
		if l != nil {
			g.logger = l
		}
	}
}

func WithMetrics(m *observability.GatewayMetrics) Option {
	return func(g *GlobalPaymentsGateway) { g.metrics = m }
}

func NewGlobalPaymentsGateway(cfg Config, opts ...Option) (*GlobalPaymentsGateway, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	g := &GlobalPaymentsGateway{
		username:    cfg.Username,
		password:    cfg.Password,
		baseURL:     baseURL,
		moneyFormat: cfg.MoneyFormat,
		client:      &http.Client{Timeout: timeout},
		logger:      zap.NewNop(),
		tracer:      observability.Tracer("globalpay"),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(zap.String("component", "payment_gateway"))
	g.logger.Info("global payments client initialized",
		zap.String("base_url", g.baseURL),
		zap.String("money_format", string(g.moneyFormat)),
	)
	return g, nil
}

func (g *GlobalPaymentsGateway) Purchase(ctx context.Context, amount int64, card *entities.CreditCard, opts entities.ChargeOptions) (*entities.GatewayResult, error) {
	req, err := entities.NewPurchaseRequest(amount, card, opts)
	if err != nil {
		return nil, err
	}
	return g.commit(ctx, processCreditCardAction, req), nil
}

func (g *GlobalPaymentsGateway) Refund(ctx context.Context, amount int64, authorization string, opts entities.ChargeOptions) (*entities.GatewayResult, error) {
	req, err := entities.NewRefundRequest(amount, authorization, opts)
	if err != nil {
		return nil, err
	}
	return g.commit(ctx, processCreditCardAction, req), nil
}

func (g *GlobalPaymentsGateway) RepeatSale(ctx context.Context, amount int64, authorization string, opts entities.ChargeOptions) (*entities.GatewayResult, error) {
	req, err := entities.NewRepeatSaleRequest(amount, authorization, opts)
	if err != nil {
		return nil, err
	}
	return g.commit(ctx, processCreditCardAction, req), nil
}

// Recurring repeats a stored sale without overriding its amount.
func (g *GlobalPaymentsGateway) Recurring(ctx context.Context, authorization string, opts entities.ChargeOptions) (*entities.GatewayResult, error) {
	req, err := entities.NewRecurringRequest(authorization, opts)
	if err != nil {
		return nil, err
	}
	return g.commit(ctx, processCreditCardAction, req), nil
}

func (g *GlobalPaymentsGateway) Info() entities.GatewayInfo {
	return entities.GatewayInfo{
		DisplayName:        "Global Payments",
		HomepageURL:        "http://www.globalpaymentsinc.com/USA/merchants/eCommerce.html",
		BaseURL:            g.baseURL,
		SupportedCountries: []string{"CA"},
		DefaultCurrency:    "CAD",
		SupportedCardTypes: []string{"visa", "master", "american_express", "discover"},
		MoneyFormat:        g.moneyFormat,
	}
}

// transactParams builds the ProcessCreditCard fields. Every field the endpoint
// expects is present, blank when unused.
func (g *GlobalPaymentsGateway) transactParams(req entities.ChargeRequest) Params {
	var p Params
	p.SetString("TransType", string(req.Type))
	p.SetString("PNRef", req.Authorization)
	p.SetString("InvNum", req.Options.InvoiceNumber)
	p.SetString("MagData", req.Options.MagData)
	p.SetString("Amount", g.moneyFormat.Format(req.Amount))
	p.SetString("Zip", "")
	p.SetString("Street", "")

	p.SetString("CardNum", "")
	p.SetString("ExpDate", "")
	p.SetString("CVNum", "")
	p.SetString("NameOnCard", "")
	if c := req.Card; c != nil {
		p.SetString("CardNum", c.Number)
		p.SetString("ExpDate", c.ExpDate())
		if c.HasVerificationValue() {
			p.SetString("CVNum", c.VerificationValue)
		}
		if c.HasName() {
			p.SetString("NameOnCard", c.Name)
		}
	}

	p.Set("ExtData", extData(req.Options))
	return p
}

func extData(opts entities.ChargeOptions) Value {
	if strings.TrimSpace(opts.ExtData) != "" {
		return Scalar(opts.ExtData)
	}
	m := opts.ExtraData
	if len(m) == 0 {
		return Scalar("")
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	nested := make(Nested, 0, len(keys))
	for _, k := range keys {
		nested = append(nested, Param{Key: k, Value: Scalar(m[k])})
	}
	return nested
}

func (g *GlobalPaymentsGateway) addAuthToken(p *Params) {
	p.SetString("GlobalUsername", g.username)
	p.SetString("GlobalPassword", g.password)
}

func (g *GlobalPaymentsGateway) commit(ctx context.Context, action string, req entities.ChargeRequest) *entities.GatewayResult {
	params := g.transactParams(req)
	g.addAuthToken(&params)

	logger := g.logger
	if reqLogger := logging.FromContext(ctx); reqLogger != zap.L() {
		logger = reqLogger.With(zap.String("component", "payment_gateway"))
	}
	logger = logger.With(zap.String("trans_type", string(req.Type)))

	ctx, span := g.tracer.Start(ctx, "GlobalPayments.ProcessCreditCard",
		trace.WithAttributes(
			attribute.String("globalpay.trans_type", string(req.Type)),
			attribute.Bool("globalpay.has_card", req.Card != nil),
		),
	)
	defer span.End()

	logger.Info("gateway request start",
		zap.String("amount", g.moneyFormat.Format(req.Amount)),
		zap.Bool("has_card", req.Card != nil),
		zap.String("reference", req.Authorization),
	)

	start := time.Now()
	result, status := g.roundTrip(ctx, g.baseURL+action+params.Encode())
	elapsed := time.Since(start)

	g.metrics.Observe(string(req.Type), string(result.Kind), elapsed)
	span.SetAttributes(
		attribute.String("globalpay.result_kind", string(result.Kind)),
		attribute.Int("http.status_code", status),
	)
	switch result.Kind {
	case entities.ResultUnparseable, entities.ResultUnreachable:
		span.SetStatus(codes.Error, result.Message)
		logger.Error("gateway request failed",
			zap.String("kind", string(result.Kind)),
			zap.Int("status_code", status),
			zap.Duration("elapsed", elapsed),
			zap.String("message", result.Message),
		)
	default:
		span.SetStatus(codes.Ok, string(result.Kind))
		logger.Info("gateway request done",
			zap.String("kind", string(result.Kind)),
			zap.Bool("success", result.Success),
			zap.Int("status_code", status),
			zap.Duration("elapsed", elapsed),
			zap.String("authorization", result.Authorization),
		)
	}
	return result
}

// roundTrip never returns an error: every failure becomes an unsuccessful result.
func (g *GlobalPaymentsGateway) roundTrip(ctx context.Context, rawURL string) (*entities.GatewayResult, int) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return unreachableResult(err), 0
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return unreachableResult(err), 0
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return unreachableResult(err), resp.StatusCode
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		response, err := parseEnvelope(body)
		if err != nil {
			return buildResult(false, entities.ResultUnparseable, diagnosticResponse(string(body))), resp.StatusCode
		}
		if response.String("Result") == "0" {
			return buildResult(true, entities.ResultApproved, response), resp.StatusCode
		}
		return buildResult(false, entities.ResultDeclined, response), resp.StatusCode
	}

	response, err := parseErrorBody(body)
	if err != nil {
		return buildResult(false, entities.ResultUnparseable, diagnosticResponse(string(body))), resp.StatusCode
	}
	return buildResult(false, entities.ResultDeclined, response), resp.StatusCode
}

func buildResult(success bool, kind entities.ResultKind, response entities.ProviderResponse) *entities.GatewayResult {
	message := approvedMessage
	if !success {
		message = response.String("RespMSG")
		if message == "" {
			message = response.Child("error").String("message")
		}
	}
	return &entities.GatewayResult{
		Success:         success,
		Kind:            kind,
		Message:         message,
		Authorization:   response.String("PNRef"),
		AVSResult:       response.String("GetAVSResult"),
		CVVResult:       response.String("GetCVResult"),
		ProviderMessage: response.String("Message"),
		Response:        response,
	}
}

// unreachableResult hides the request URL, which carries the credentials.
func unreachableResult(err error) *entities.GatewayResult {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	msg := fmt.Sprintf("Unable to reach the Global Payments API: %v", err)
	return &entities.GatewayResult{
		Kind:     entities.ResultUnreachable,
		Message:  msg,
		Response: entities.ProviderResponse{"error": map[string]any{"message": msg}},
	}
}
