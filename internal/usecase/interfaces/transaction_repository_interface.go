package interfaces

import (
	"context"

	"globalpay_gateway/internal/domain/entities"
)

//go:generate mockgen -source=transaction_repository_interface.go -destination=mocks/transaction_repository_interface_mock.go -package=mocks

// ITransactionRepository abstracts DynamoDB persistence for the gateway audit trail.
type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByAuthorization(ctx context.Context, authorization string) ([]entities.Transaction, error)
}
