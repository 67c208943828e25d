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
	defaultSchemesTableName     = "pricing_schemes"
	defaultTierConfigsTableName = "scheme_tier_configs"
	schemesTenantIDIndex        = "tenant_id-index"
)

type pricingSchemeItem struct {
	ID                 string `dynamodbav:"id"`
	TenantID           string `dynamodbav:"tenant_id"`
	Name               string `dynamodbav:"name"`
	Type               string `dynamodbav:"type"`
	Formula            string `dynamodbav:"formula,omitempty"`
	IsDefault          bool   `dynamodbav:"is_default"`
	IsProtected        bool   `dynamodbav:"is_protected"`
	TierPricingEnabled bool   `dynamodbav:"tier_pricing_enabled"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

type tierConfigItem struct {
	SchemeID  string `dynamodbav:"scheme_id"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PricingSchemeDynamoRepository reads pricing schemes and their tier
// configuration from DynamoDB.
//
// Table requirements:
//   - pricing_schemes: PK id (string), GSI tenant_id-index (PK: tenant_id)
//   - scheme_tier_configs: PK scheme_id (string)
//
// Tier overrides are sparse nested maps keyed by tier, so they live in a
// JSON payload attribute rather than flattened item fields.

type PricingSchemeDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	tierConfigTable string
}

var _ interfaces.IPricingSchemeRepository = (*PricingSchemeDynamoRepository)(nil)

func NewPricingSchemeDynamoRepository(ddb *dynamodb.Client) *PricingSchemeDynamoRepository {
	return &PricingSchemeDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("PRICING_SCHEMES_TABLE", defaultSchemesTableName),
		tierConfigTable: getenvDefault("SCHEME_TIER_CONFIGS_TABLE", defaultTierConfigsTableName),
	}
}

func (r *PricingSchemeDynamoRepository) GetByID(ctx context.Context, id string) (entities.PricingScheme, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricingScheme{}, err
	}
	if len(out.Item) == 0 {
		return entities.PricingScheme{}, nil
	}

	var it pricingSchemeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricingScheme{}, err
	}
	return fromPricingSchemeItem(it), nil
}

func (r *PricingSchemeDynamoRepository) GetDefaultByTenantID(ctx context.Context, tenantID string) (entities.PricingScheme, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(schemesTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		FilterExpression:       aws.String("is_default = :yes"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
			":yes": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return entities.PricingScheme{}, err
	}
	if len(out.Items) == 0 {
		return entities.PricingScheme{}, nil
	}

	// The admin surface enforces a single default per tenant.
	var it pricingSchemeItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PricingScheme{}, err
	}
	return fromPricingSchemeItem(it), nil
}

func (r *PricingSchemeDynamoRepository) GetTierConfig(ctx context.Context, schemeID string) (entities.GBBTierConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tierConfigTable),
		Key: map[string]types.AttributeValue{
			"scheme_id": &types.AttributeValueMemberS{Value: schemeID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GBBTierConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.GBBTierConfig{}, nil
	}

	var it tierConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GBBTierConfig{}, err
	}

	var cfg entities.GBBTierConfig
	if err := json.Unmarshal([]byte(it.Payload), &cfg); err != nil {
		return entities.GBBTierConfig{}, err
	}
	cfg.SchemeID = it.SchemeID
	return cfg, nil
}

func fromPricingSchemeItem(it pricingSchemeItem) entities.PricingScheme {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PricingScheme{
		ID:                 it.ID,
		TenantID:           it.TenantID,
		Name:               it.Name,
		Type:               entities.SchemeType(it.Type),
		Formula:            it.Formula,
		IsDefault:          it.IsDefault,
		IsProtected:        it.IsProtected,
		TierPricingEnabled: it.TierPricingEnabled,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
