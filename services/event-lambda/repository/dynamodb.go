package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/evently/event-api/common/logger"
	"github.com/evently/event-api/services/event-lambda/models"
)

// DynamoAPI is the subset of the DynamoDB client used by the
// repository. Narrowing the SDK client to an interface keeps the
// repository testable without a live table.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DynamoEventRepository persists events in a single DynamoDB table
// keyed by eventId.
type DynamoEventRepository struct {
	client    DynamoAPI
	tableName string
	log       *logger.Logger
}

var _ EventRepository = &DynamoEventRepository{}

// NewDynamoEventRepository creates a repository over the given client
// and table. The table name comes from explicit configuration, never
// from an ambient lookup.
func NewDynamoEventRepository(client DynamoAPI, tableName string) *DynamoEventRepository {
	return &DynamoEventRepository{
		client:    client,
		tableName: tableName,
		log:       logger.Default().With("table", tableName),
	}
}

func (r *DynamoEventRepository) key(eventID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"eventId": &types.AttributeValueMemberS{Value: eventID},
	}
}

// Put implements EventRepository.Put
func (r *DynamoEventRepository) Put(ctx context.Context, event *models.Event) error {
	item, err := attributevalue.MarshalMap(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	start := time.Now()
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &r.tableName,
		Item:      item,
	})
	r.logOp("PutItem", event.EventID, start, 0, err)
	if err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}
	return nil
}

// Get implements EventRepository.Get
func (r *DynamoEventRepository) Get(ctx context.Context, eventID string) (*models.Event, error) {
	start := time.Now()
	res, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &r.tableName,
		Key:       r.key(eventID),
	})
	r.logOp("GetItem", eventID, start, 0, err)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if res.Item == nil {
		return nil, nil
	}

	var event models.Event
	if err := attributevalue.UnmarshalMap(res.Item, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return &event, nil
}

// Scan implements EventRepository.Scan
func (r *DynamoEventRepository) Scan(ctx context.Context, statusFilter string) ([]models.Event, error) {
	input := &dynamodb.ScanInput{
		TableName: &r.tableName,
	}

	if statusFilter != "" {
		// The expression builder generates name placeholders, so the
		// reserved word "status" is safe to filter on.
		expr, err := expression.NewBuilder().
			WithFilter(expression.Name("status").Equal(expression.Value(statusFilter))).
			Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build filter expression: %w", err)
		}
		input.FilterExpression = expr.Filter()
		input.ExpressionAttributeNames = expr.Names()
		input.ExpressionAttributeValues = expr.Values()
	}

	start := time.Now()
	events := []models.Event{}

	for {
		res, err := r.client.Scan(ctx, input)
		if err != nil {
			r.logOp("Scan", "", start, len(events), err)
			return nil, fmt.Errorf("failed to scan items: %w", err)
		}

		var page []models.Event
		if err := attributevalue.UnmarshalListOfMaps(res.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal items: %w", err)
		}
		events = append(events, page...)

		if res.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = res.LastEvaluatedKey
	}

	r.logOp("Scan", "", start, len(events), nil)
	return events, nil
}

// Delete implements EventRepository.Delete
func (r *DynamoEventRepository) Delete(ctx context.Context, eventID string) (bool, error) {
	start := time.Now()
	res, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    &r.tableName,
		Key:          r.key(eventID),
		ReturnValues: types.ReturnValueAllOld,
	})
	r.logOp("DeleteItem", eventID, start, 0, err)
	if err != nil {
		return false, fmt.Errorf("failed to delete item: %w", err)
	}

	// Attributes is populated only when the item existed beforehand.
	return len(res.Attributes) > 0, nil
}

func (r *DynamoEventRepository) logOp(op, key string, start time.Time, items int, err error) {
	entry := logger.StoreLog{
		Operation: op,
		Table:     r.tableName,
		Key:       key,
		Duration:  time.Since(start),
		Items:     items,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	r.log.LogStore(entry)
}
