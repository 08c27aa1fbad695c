package interfaces

import (
	"context"

	"globalpay_gateway/internal/domain/entities"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mocks

// IPaymentGateway abstracts the card processor (Global Payments).
//
// Declines and unreadable provider responses come back as an unsuccessful
// GatewayResult; the error is reserved for requests rejected before sending.
type IPaymentGateway interface {
	Purchase(ctx context.Context, amount int64, card *entities.CreditCard, opts entities.ChargeOptions) (*entities.GatewayResult, error)
	Refund(ctx context.Context, amount int64, authorization string, opts entities.ChargeOptions) (*entities.GatewayResult, error)
	RepeatSale(ctx context.Context, amount int64, authorization string, opts entities.ChargeOptions) (*entities.GatewayResult, error)
	Recurring(ctx context.Context, authorization string, opts entities.ChargeOptions) (*entities.GatewayResult, error)
	Info() entities.GatewayInfo
}
