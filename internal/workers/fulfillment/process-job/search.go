// internal/workers/fulfillment/process-job/search.go
package processjob

import (
	"context"

	"github.com/elastic/go-elasticsearch/v8"

	"dining-concierge/internal/models"
	"dining-concierge/internal/workers/fulfillment/process-job/queries"
)

// ElasticsearchSearch is the production SearchService backed by the
// restaurant index.
type ElasticsearchSearch struct {
	client *elasticsearch.Client
	index  string
}

func NewElasticsearchSearch(client *elasticsearch.Client, index string) *ElasticsearchSearch {
	return &ElasticsearchSearch{client: client, index: index}
}

func (s *ElasticsearchSearch) SearchCuisine(ctx context.Context, term string, limit int) ([]models.SearchHit, error) {
	return queries.Execute(ctx, s.client, queries.CuisineQuery{
		Index: s.index,
		Term:  term,
		Size:  limit,
	})
}
