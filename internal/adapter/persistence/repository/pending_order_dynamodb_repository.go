package repository

import (
	"context"
	"log"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPendingOrdersTableName = "pending_orders"

type pendingOrderItem struct {
	UserID  string  `dynamodbav:"user_id"`
	OrderID string  `dynamodbav:"order_id"`
	Total   float64 `dynamodbav:"total"`
}

// PendingOrderDynamoRepository keeps the single awaiting-confirmation slot
// per user in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string)
//
// The store is advisory: it must never take the checkout flow down, so
// every failure is logged and reported as "no record" rather than returned.

type PendingOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPendingOrderStore = (*PendingOrderDynamoRepository)(nil)

func NewPendingOrderDynamoRepository(ddb *dynamodb.Client) *PendingOrderDynamoRepository {
	return &PendingOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PENDING_ORDERS_TABLE", defaultPendingOrdersTableName),
	}
}

func (r *PendingOrderDynamoRepository) Save(ctx context.Context, userID string, rec entities.PendingOrder) {
	if rec.IsZero() {
		r.Clear(ctx, userID)
		return
	}

	av, err := attributevalue.MarshalMap(pendingOrderItem{
		UserID:  userID,
		OrderID: rec.ID,
		Total:   rec.Total,
	})
	if err != nil {
		log.Printf("[pending][repository] marshal failed user=%s err=%v", userID, err)
		return
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		log.Printf("[pending][repository] save failed user=%s err=%v", userID, err)
	}
}

func (r *PendingOrderDynamoRepository) Read(ctx context.Context, userID string) (entities.PendingOrder, bool) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		log.Printf("[pending][repository] read failed user=%s err=%v", userID, err)
		return entities.PendingOrder{}, false
	}
	if len(out.Item) == 0 {
		return entities.PendingOrder{}, false
	}

	var it pendingOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		log.Printf("[pending][repository] corrupt record discarded user=%s err=%v", userID, err)
		return entities.PendingOrder{}, false
	}
	rec := entities.PendingOrder{ID: it.OrderID, Total: it.Total}
	if rec.IsZero() {
		return entities.PendingOrder{}, false
	}
	return rec, true
}

func (r *PendingOrderDynamoRepository) Clear(ctx context.Context, userID string) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		log.Printf("[pending][repository] clear failed user=%s err=%v", userID, err)
	}
}
