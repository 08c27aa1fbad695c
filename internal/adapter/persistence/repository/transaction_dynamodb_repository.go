package repository

import (
	"context"
	"errors"
	"time"

	"globalpay_gateway/internal/domain/entities"
	"globalpay_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName   = "globalpay_transactions"
	transactionsAuthorizationIndex = "authorization-index"
)

var ErrDuplicateTransaction = errors.New("transaction already recorded")

// DynamoAPI is the subset of *dynamodb.Client the repository relies on.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type transactionItem struct {
	ID              string                 `dynamodbav:"id"`
	Type            string                 `dynamodbav:"type"`
	Amount          *int64                 `dynamodbav:"amount,omitempty"`
	Authorization   string                 `dynamodbav:"authorization,omitempty"`
	Reference       string                 `dynamodbav:"reference,omitempty"`
	Success         bool                   `dynamodbav:"success"`
	Kind            string                 `dynamodbav:"kind"`
	Message         string                 `dynamodbav:"message"`
	ProviderMessage string                 `dynamodbav:"provider_message,omitempty"`
	AVSResult       string                 `dynamodbav:"avs_result,omitempty"`
	CVVResult       string                 `dynamodbav:"cvv_result,omitempty"`
	CreatedAt       string                 `dynamodbav:"created_at"`
	Response        map[string]interface{} `dynamodbav:"response,omitempty"`
}

// TransactionDynamoRepository persists gateway audit records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: authorization-index (PK: authorization)
//
// Declined calls without a PNRef carry no authorization and are therefore
// absent from the index.
type TransactionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb DynamoAPI) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return entities.Transaction{}, ErrDuplicateTransaction
		}
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

// ListByAuthorization returns every record sharing a PNRef, following
// LastEvaluatedKey until the index is exhausted.
func (r *TransactionDynamoRepository) ListByAuthorization(ctx context.Context, authorization string) ([]entities.Transaction, error) {
	items := make([]entities.Transaction, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(transactionsAuthorizationIndex),
			KeyConditionExpression: aws.String("#auth = :auth"),
			ExpressionAttributeNames: map[string]string{
				"#auth": "authorization",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":auth": &types.AttributeValueMemberS{Value: authorization},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it transactionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromTransactionItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:              t.ID,
		Type:            string(t.Type),
		Amount:          t.Amount,
		Authorization:   t.Authorization,
		Reference:       t.Reference,
		Success:         t.Success,
		Kind:            string(t.Kind),
		Message:         t.Message,
		ProviderMessage: t.ProviderMessage,
		AVSResult:       t.AVSResult,
		CVVResult:       t.CVVResult,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339Nano),
		Response:        t.Response,
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Transaction{
		ID:              it.ID,
		Type:            entities.TransactionType(it.Type),
		Amount:          it.Amount,
		Authorization:   it.Authorization,
		Reference:       it.Reference,
		Success:         it.Success,
		Kind:            entities.ResultKind(it.Kind),
		Message:         it.Message,
		ProviderMessage: it.ProviderMessage,
		AVSResult:       it.AVSResult,
		CVVResult:       it.CVVResult,
		CreatedAt:       createdAt,
		Response:        it.Response,
	}
}
