// internal/workers/fulfillment/process-job/queries/restaurants.go
package queries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"dining-concierge/internal/models"
)

var (
	ErrMissingIndex = errors.New("index name is required")
	ErrMissingTerm  = errors.New("search term is required")
)

// CuisineQuery describes one best-match lookup against the restaurant index.
type CuisineQuery struct {
	Index string
	Term  string
	Size  int
}

// BuildCuisineQuery builds the search request. The term is matched against
// every indexed text field so a cuisine like "french" hits both the cuisine
// field and category-style fields.
func BuildCuisineQuery(cq CuisineQuery) (*esapi.SearchRequest, error) {
	if cq.Index == "" {
		return nil, ErrMissingIndex
	}
	if cq.Term == "" {
		return nil, ErrMissingTerm
	}

	queryBody := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query": cq.Term,
			},
		},
	}

	body, _ := json.Marshal(queryBody)

	req := esapi.SearchRequest{
		Index: []string{cq.Index},
		Body:  strings.NewReader(string(body)),
		Size:  &cq.Size,
	}

	return &req, nil
}

// Execute runs the query and returns the hits in index-relevance order.
func Execute(ctx context.Context, esClient *elasticsearch.Client, cq CuisineQuery) ([]models.SearchHit, error) {
	req, err := BuildCuisineQuery(cq)
	if err != nil {
		return nil, err
	}

	res, err := req.Do(ctx, esClient)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search query failed: %s", res.String())
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, err
	}

	hitsWrapper, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("search response missing hits")
	}
	rawHits, ok := hitsWrapper["hits"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("search response missing hits list")
	}

	var hits []models.SearchHit
	for _, raw := range rawHits {
		hitMap, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		source, ok := hitMap["_source"].(map[string]interface{})
		if !ok {
			continue
		}
		id, ok := source["restaurantID"].(string)
		if !ok || id == "" {
			continue
		}
		hit := models.SearchHit{RestaurantID: id}
		if score, ok := hitMap["_score"].(float64); ok {
			hit.Score = score
		}
		hits = append(hits, hit)
	}

	return hits, nil
}
