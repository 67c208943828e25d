package repository

import (
	"context"
	"encoding/json"

	"brushworks/internal/domain/entities"
	"brushworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRateTablesTableName = "rate_tables"

type rateTableItem struct {
	TenantID  string `dynamodbav:"tenant_id"`
	Version   int64  `dynamodbav:"version"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RateTableDynamoRepository persists tenant rate tables in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//
// One item per tenant. Rates, percentages and material defaults live in a
// single JSON payload attribute so the whole snapshot is read and written
// atomically; version is duplicated as a top-level attribute so the admin
// surface can write conditionally on it.

type RateTableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateTableRepository = (*RateTableDynamoRepository)(nil)

func NewRateTableDynamoRepository(ddb *dynamodb.Client) *RateTableDynamoRepository {
	return &RateTableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATE_TABLES_TABLE", defaultRateTablesTableName),
	}
}

func (r *RateTableDynamoRepository) GetByTenantID(ctx context.Context, tenantID string) (entities.RateTable, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RateTable{}, err
	}
	if len(out.Item) == 0 {
		return entities.RateTable{}, nil
	}

	var it rateTableItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RateTable{}, err
	}
	return fromRateTableItem(it)
}

func fromRateTableItem(it rateTableItem) (entities.RateTable, error) {
	var t entities.RateTable
	if err := json.Unmarshal([]byte(it.Payload), &t); err != nil {
		return entities.RateTable{}, err
	}
	t.TenantID = it.TenantID
	t.Version = it.Version
	return t, nil
}
