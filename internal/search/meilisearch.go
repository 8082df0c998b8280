package search

import (
	"realestate-listings/internal/models"

	"github.com/meilisearch/meilisearch-go"
)

// Indexer receives listings to mirror into an external search engine.
type Indexer interface {
	IndexProperty(property models.Property) error
	IndexProperties(properties []models.Property) error
}

// MeiliIndex mirrors listings into a Meilisearch index for typo-tolerant search.
// The in-process Query Engine stays authoritative for filtering and ordering.
type MeiliIndex struct {
	client *meilisearch.Client
	index  string
}

func NewMeiliIndex(host, apiKey, index string) *MeiliIndex {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})
	if index == "" {
		index = "properties"
	}

	return &MeiliIndex{
		client: client,
		index:  index,
	}
}

// InitIndex creates the index and configures its attributes.
func (s *MeiliIndex) InitIndex() error {
	_, err := s.client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        s.index,
		PrimaryKey: "id",
	})
	if err != nil && err.Error() != "index already exists" {
		return err
	}

	_, err = s.client.Index(s.index).UpdateSearchableAttributes(&[]string{
		"title",
		"description",
		"features",
		"address",
		"city",
		"state",
	})
	if err != nil {
		return err
	}

	_, err = s.client.Index(s.index).UpdateFilterableAttributes(&[]string{
		"type",
		"status",
		"price",
		"sizeValue",
		"bedrooms",
		"bathrooms",
	})
	if err != nil {
		return err
	}

	_, err = s.client.Index(s.index).UpdateSortableAttributes(&[]string{
		"price",
		"sizeValue",
		"dateListed",
	})
	return err
}

// IndexProperty indexes a single listing.
func (s *MeiliIndex) IndexProperty(property models.Property) error {
	_, err := s.client.Index(s.index).AddDocuments([]map[string]interface{}{toDocument(property)})
	return err
}

// IndexProperties indexes many listings in one task.
func (s *MeiliIndex) IndexProperties(properties []models.Property) error {
	if len(properties) == 0 {
		return nil
	}
	docs := make([]map[string]interface{}, 0, len(properties))
	for _, p := range properties {
		docs = append(docs, toDocument(p))
	}
	_, err := s.client.Index(s.index).AddDocuments(docs)
	return err
}

// SearchIDs returns listing ids in relevance order.
func (s *MeiliIndex) SearchIDs(query string, limit int64) ([]string, error) {
	if limit <= 0 {
		limit = 20
	}
	res, err := s.client.Index(s.index).Search(query, &meilisearch.SearchRequest{
		Limit:                limit,
		AttributesToRetrieve: []string{"id"},
	})
	if err != nil {
		return nil, err
	}
	return idsFromHits(res.Hits), nil
}

// toDocument flattens a listing; dateListed becomes unix seconds so it is sortable.
func toDocument(p models.Property) map[string]interface{} {
	doc := map[string]interface{}{
		"id":          p.ID,
		"type":        string(p.Type),
		"title":       p.Title,
		"description": p.Description,
		"price":       p.Price,
		"priceType":   string(p.PriceType),
		"sizeValue":   p.SizeValue,
		"sizeUnit":    string(p.SizeUnit),
		"address":     p.Address,
		"city":        p.City,
		"state":       p.State,
		"features":    p.Features,
		"status":      string(p.Status),
		"dateListed":  p.DateListed.Unix(),
		"_geo": map[string]float64{
			"lat": p.Latitude,
			"lng": p.Longitude,
		},
	}
	if p.Bedrooms != nil {
		doc["bedrooms"] = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		doc["bathrooms"] = *p.Bathrooms
	}
	return doc
}

func idsFromHits(hits []interface{}) []string {
	ids := make([]string, 0, len(hits))
	for _, hit := range hits {
		hitMap, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		if id, ok := hitMap["id"].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
