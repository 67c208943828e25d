package repository

import (
	"context"
	"encoding/json"
	"time"

	"brushworks/internal/domain/entities"
	"brushworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesTenantIDIndex    = "tenant_id-index"
)

type quoteItem struct {
	ID               string `dynamodbav:"id"`
	TenantID         string `dynamodbav:"tenant_id"`
	SchemeID         string `dynamodbav:"scheme_id"`
	RateTableVersion int64  `dynamodbav:"rate_table_version"`
	RequestedTier    string `dynamodbav:"requested_tier,omitempty"`
	Payload          string `dynamodbav:"payload"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists computed quote records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)
//
// The priced result (single or tiered) is written once and never updated;
// quotes are an audit trail of what was shown to the customer.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, record entities.QuoteRecord) (entities.QuoteRecord, error) {
	it, err := toQuoteItem(record)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.QuoteRecord{}, err
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
		return entities.QuoteRecord{}, err
	}
	return record, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRecord{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRecord{}, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.QuoteRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.QuoteRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		record, err := fromQuoteItem(it)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func toQuoteItem(record entities.QuoteRecord) (quoteItem, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return quoteItem{}, err
	}
	return quoteItem{
		ID:               record.ID,
		TenantID:         record.TenantID,
		SchemeID:         record.SchemeID,
		RateTableVersion: record.RateTableVersion,
		RequestedTier:    string(record.RequestedTier),
		Payload:          string(payload),
		CreatedAt:        record.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuoteItem(it quoteItem) (entities.QuoteRecord, error) {
	var record entities.QuoteRecord
	if err := json.Unmarshal([]byte(it.Payload), &record); err != nil {
		return entities.QuoteRecord{}, err
	}
	record.ID = it.ID
	record.TenantID = it.TenantID
	return record, nil
}
