// Package search mirrors the listing catalog into Elasticsearch. The mirror
// is optional; every method is a no-op when no client is configured, so the
// default in-memory deployment works without a cluster.
package search

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/Prakash-Banjade/smart-tutor/internal/catalog"
)

type Mirror struct {
	ES     *elasticsearch.Client
	Index  string
	Logger *logrus.Logger
}

func NewMirror(es *elasticsearch.Client, index string, logger *logrus.Logger) *Mirror {
	return &Mirror{ES: es, Index: index, Logger: logger}
}

func (m *Mirror) enabled() bool {
	return m != nil && m.ES != nil && m.Index != ""
}

// IndexCatalog pushes every tutor and study group listing into the index.
func (m *Mirror) IndexCatalog(ctx context.Context, c *catalog.Catalog) error {
	if !m.enabled() {
		return nil
	}
	for _, t := range c.Tutors() {
		doc := map[string]any{
			"kind":       "tutor",
			"name":       t.Name,
			"subjects":   t.Subjects,
			"rating":     t.Rating,
			"price":      t.Price,
			"distance":   t.Distance,
			"avatar_url": t.AvatarURL,
		}
		m.indexDoc(ctx, "tutor:"+t.ID, doc)
	}
	for _, g := range c.Groups() {
		doc := map[string]any{
			"kind":     "group",
			"name":     g.Name,
			"subjects": []string{g.Subject},
			"location": g.Location,
			"members":  g.Members,
		}
		m.indexDoc(ctx, "group:"+g.ID, doc)
	}
	return nil
}

// IndexGroup mirrors a single study group, used after creation.
func (m *Mirror) IndexGroup(ctx context.Context, g catalog.StudyGroup) {
	if !m.enabled() {
		return
	}
	m.indexDoc(ctx, "group:"+g.ID, map[string]any{
		"kind":     "group",
		"name":     g.Name,
		"subjects": []string{g.Subject},
		"location": g.Location,
		"members":  g.Members,
	})
}

func (m *Mirror) indexDoc(ctx context.Context, id string, doc map[string]any) {
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: m.Index, DocumentID: id, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, m.ES)
	if err != nil {
		if m.Logger != nil {
			m.Logger.WithError(err).WithField("doc_id", id).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && m.Logger != nil {
		m.Logger.WithField("status", res.Status()).WithField("doc_id", id).Warn("es index response error")
	}
}

// Search performs a multi_match query over listing names and subjects.
func (m *Mirror) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if !m.enabled() {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "subjects"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := m.ES.Search(m.ES.Search.WithContext(c), m.ES.Search.WithIndex(m.Index), m.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
