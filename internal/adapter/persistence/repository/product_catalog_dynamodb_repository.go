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
	defaultProductsTableName = "products"
	// DynamoDB caps BatchGetItem at 100 keys per request.
	batchGetLimit = 100
)

type productItem struct {
	ID        string `dynamodbav:"id"`
	BrandID   string `dynamodbav:"brand_id"`
	Name      string `dynamodbav:"name"`
	Sheens    string `dynamodbav:"sheens"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProductCatalogDynamoRepository reads catalog products from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Per-sheen pricing is a decimal-valued map, stored as a JSON payload
// attribute.

type ProductCatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductCatalogRepository = (*ProductCatalogDynamoRepository)(nil)

func NewProductCatalogDynamoRepository(ddb *dynamodb.Client) *ProductCatalogDynamoRepository {
	return &ProductCatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

// GetProductsByIDs fetches the requested products in batches. Missing ids are
// simply absent from the result; the caller decides whether that is an error.
func (r *ProductCatalogDynamoRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error) {
	products := make([]entities.Product, 0, len(ids))

	for start := 0; start < len(ids); start += batchGetLimit {
		end := start + batchGetLimit
		if end > len(ids) {
			end = len(ids)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		for len(keys) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: map[string]types.KeysAndAttributes{
					r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
				},
			})
			if err != nil {
				return nil, err
			}

			for _, raw := range out.Responses[r.tableName] {
				var it productItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				p, err := fromProductItem(it)
				if err != nil {
					return nil, err
				}
				products = append(products, p)
			}

			keys = out.UnprocessedKeys[r.tableName].Keys
		}
	}

	return products, nil
}

func fromProductItem(it productItem) (entities.Product, error) {
	var sheens map[string]entities.SheenPricing
	if it.Sheens != "" {
		if err := json.Unmarshal([]byte(it.Sheens), &sheens); err != nil {
			return entities.Product{}, err
		}
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Product{
		ID:        it.ID,
		BrandID:   it.BrandID,
		Name:      it.Name,
		Sheens:    sheens,
		UpdatedAt: updatedAt,
	}, nil
}
