// internal/common/aws/dynamodb.go
package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"dining-concierge/internal/models"
)

// RestaurantTable is the keyed details store, populated out-of-band by the
// listings importer.
type RestaurantTable struct {
	client *dynamodb.Client
	table  string
}

func NewRestaurantTable(ctx context.Context, region, table string) (*RestaurantTable, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &RestaurantTable{client: dynamodb.NewFromConfig(cfg), table: table}, nil
}

// GetRestaurant looks up the full record by business id. A missing record is
// an error; the caller decides whether that aborts the run.
func (t *RestaurantTable) GetRestaurant(ctx context.Context, businessID string) (*models.RestaurantRecord, error) {
	out, err := t.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: awssdk.String(t.table),
		Key: map[string]types.AttributeValue{
			"businessID": &types.AttributeValueMemberS{Value: businessID},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, fmt.Errorf("restaurant %s not found in %s", businessID, t.table)
	}

	var record models.RestaurantRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, fmt.Errorf("unmarshal restaurant %s: %w", businessID, err)
	}
	return &record, nil
}
