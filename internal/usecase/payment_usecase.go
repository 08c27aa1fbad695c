package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"globalpay_gateway/internal/domain/entities"
	"globalpay_gateway/internal/infrastructure/logging"
	"globalpay_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTransactionNotFound         = errors.New("transaction not found")
	ErrInvalidTransactionID        = errors.New("invalid transaction id")
	ErrInvalidAuthorization        = errors.New("invalid authorization")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks

// IPaymentUseCase exposes the Global Payments operations plus the audit trail
// written after each of them.
//
// Gateway outcomes (approved, declined, unparseable, unreachable) are never
// returned as errors; they travel inside the Transaction.
type IPaymentUseCase interface {
	Purchase(ctx context.Context, amount int64, card *entities.CreditCard, opts entities.ChargeOptions) (entities.Transaction, error)
	Refund(ctx context.Context, amount int64, authorization string, opts entities.ChargeOptions) (entities.Transaction, error)
	RepeatSale(ctx context.Context, amount int64, authorization string, opts entities.ChargeOptions) (entities.Transaction, error)
	Recurring(ctx context.Context, authorization string, opts entities.ChargeOptions) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByAuthorization(ctx context.Context, authorization string) ([]entities.Transaction, error)
	GatewayInfo() entities.GatewayInfo
}

type PaymentUseCase struct {
	repo    interfaces.ITransactionRepository
	gateway interfaces.IPaymentGateway
	now     func() time.Time
	newID   func() string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.ITransactionRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{
		repo:    repo,
		gateway: gateway,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (u *PaymentUseCase) Purchase(ctx context.Context, amount int64, card *entities.CreditCard, opts entities.ChargeOptions) (entities.Transaction, error) {
	if u.gateway == nil {
		return entities.Transaction{}, ErrPaymentGatewayNotConfigured
	}
	res, err := u.gateway.Purchase(ctx, amount, card, opts)
	if err != nil {
		u.logger(ctx).Info("purchase rejected", zap.Error(err))
		return entities.Transaction{}, err
	}

	// Without a card the sale is charged against a stored customer reference.
	reference := ""
	if card == nil {
		reference = opts.CustomerReference
	}
	return u.record(ctx, entities.TransactionTypeSale, &amount, reference, res), nil
}

func (u *PaymentUseCase) Refund(ctx context.Context, amount int64, authorization string, opts entities.ChargeOptions) (entities.Transaction, error) {
	if u.gateway == nil {
		return entities.Transaction{}, ErrPaymentGatewayNotConfigured
	}
	res, err := u.gateway.Refund(ctx, amount, authorization, opts)
	if err != nil {
		u.logger(ctx).Info("refund rejected", zap.Error(err))
		return entities.Transaction{}, err
	}
	return u.record(ctx, entities.TransactionTypeReturn, &amount, authorization, res), nil
}

func (u *PaymentUseCase) RepeatSale(ctx context.Context, amount int64, authorization string, opts entities.ChargeOptions) (entities.Transaction, error) {
	if u.gateway == nil {
		return entities.Transaction{}, ErrPaymentGatewayNotConfigured
	}
	res, err := u.gateway.RepeatSale(ctx, amount, authorization, opts)
	if err != nil {
		u.logger(ctx).Info("repeat sale rejected", zap.Error(err))
		return entities.Transaction{}, err
	}
	return u.record(ctx, entities.TransactionTypeRepeatSale, &amount, authorization, res), nil
}

func (u *PaymentUseCase) Recurring(ctx context.Context, authorization string, opts entities.ChargeOptions) (entities.Transaction, error) {
	if u.gateway == nil {
		return entities.Transaction{}, ErrPaymentGatewayNotConfigured
	}
	res, err := u.gateway.Recurring(ctx, authorization, opts)
	if err != nil {
		u.logger(ctx).Info("recurring charge rejected", zap.Error(err))
		return entities.Transaction{}, err
	}
	return u.record(ctx, entities.TransactionTypeRepeatSale, nil, authorization, res), nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

func (u *PaymentUseCase) ListByAuthorization(ctx context.Context, authorization string) ([]entities.Transaction, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return nil, ErrInvalidAuthorization
	}
	return u.repo.ListByAuthorization(ctx, authorization)
}

func (u *PaymentUseCase) GatewayInfo() entities.GatewayInfo {
	if u.gateway == nil {
		return entities.GatewayInfo{}
	}
	return u.gateway.Info()
}

// record turns a gateway result into an audit Transaction and stores it.
// A failed write is logged only: the charge already happened at the provider
// and the caller must still see its outcome.
func (u *PaymentUseCase) record(ctx context.Context, typ entities.TransactionType, amount *int64, reference string, res *entities.GatewayResult) entities.Transaction {
	t := entities.Transaction{
		ID:              u.newID(),
		Type:            typ,
		Amount:          amount,
		Authorization:   res.Authorization,
		Reference:       reference,
		Success:         res.Success,
		Kind:            res.Kind,
		Message:         res.Message,
		ProviderMessage: res.ProviderMessage,
		AVSResult:       res.AVSResult,
		CVVResult:       res.CVVResult,
		CreatedAt:       u.now().UTC(),
		Response:        map[string]interface{}(res.Response),
	}

	logger := u.logger(ctx).With(
		zap.String("transaction_id", t.ID),
		zap.String("trans_type", string(typ)),
		zap.String("kind", string(t.Kind)),
	)

	if u.repo == nil {
		logger.Warn("transaction repository not configured; audit record skipped")
		return t
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		logger.Error("transaction audit write failed", zap.Error(err))
		return t
	}
	logger.Debug("transaction recorded", zap.Bool("success", created.Success))
	return created
}

func (u *PaymentUseCase) logger(ctx context.Context) *zap.Logger {
	return logging.FromContext(ctx).With(zap.String("component", "payment_usecase"))
}
