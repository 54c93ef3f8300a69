package repository

import (
	"context"
	"errors"
	"time"

	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID               string `dynamodbav:"id"`
	ProductID        string `dynamodbav:"product_id"`
	ProductName      string `dynamodbav:"product_name"`
	Amount           string `dynamodbav:"amount"`
	Date             string `dynamodbav:"date"`
	Method           string `dynamodbav:"method"`
	CustomerName     string `dynamodbav:"customer_name"`
	Notes            string `dynamodbav:"notes,omitempty"`
	AIJudgmentReason string `dynamodbav:"ai_judgment_reason,omitempty"`
	ReceiptMessage   string `dynamodbav:"receipt_message,omitempty"`
}

// dynamoAPI is the subset of *dynamodb.Client the ledger uses.
type dynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// OrderDynamoLedger persists orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Amounts are stored as decimal strings so no precision is lost.
type OrderDynamoLedger struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IOrderLedger = (*OrderDynamoLedger)(nil)

func NewOrderDynamoLedger(ddb *dynamodb.Client) *OrderDynamoLedger {
	return newOrderDynamoLedger(ddb, getenvDefault("ORDERS_TABLE", defaultOrdersTableName))
}

func newOrderDynamoLedger(ddb dynamoAPI, tableName string) *OrderDynamoLedger {
	return &OrderDynamoLedger{ddb: ddb, tableName: tableName}
}

func (l *OrderDynamoLedger) Append(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = l.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(l.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return entities.Order{}, interfaces.ErrOrderAlreadyExists
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (l *OrderDynamoLedger) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := l.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(l.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (l *OrderDynamoLedger) List(ctx context.Context) ([]entities.Order, error) {
	orders := make([]entities.Order, 0)
	p := dynamodb.NewScanPaginator(l.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(l.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
	}
	sortNewestFirst(orders)
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:               o.ID,
		ProductID:        o.ProductID,
		ProductName:      o.ProductName,
		Amount:           o.Amount.String(),
		Date:             o.Date.UTC().Format(time.RFC3339Nano),
		Method:           string(o.Method),
		CustomerName:     o.CustomerName,
		Notes:            o.Notes,
		AIJudgmentReason: o.AIJudgmentReason,
		ReceiptMessage:   o.ReceiptMessage,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		amount = decimal.Zero
	}
	return entities.Order{
		ID:               it.ID,
		ProductID:        it.ProductID,
		ProductName:      it.ProductName,
		Amount:           amount,
		Date:             dt,
		Method:           entities.PaymentMethod(it.Method),
		CustomerName:     it.CustomerName,
		Notes:            it.Notes,
		AIJudgmentReason: it.AIJudgmentReason,
		ReceiptMessage:   it.ReceiptMessage,
	}
}
