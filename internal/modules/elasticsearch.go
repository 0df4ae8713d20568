package modules

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ElasticsearchUnauthenticatedAccess checks for an Elasticsearch cluster
// answering its banner endpoint without authentication.
type ElasticsearchUnauthenticatedAccess struct{}

func NewElasticsearchUnauthenticatedAccess() *ElasticsearchUnauthenticatedAccess {
	return &ElasticsearchUnauthenticatedAccess{}
}

func (m *ElasticsearchUnauthenticatedAccess) Name() ModuleName {
	return HTTPElasticsearchUnauthenticatedAccess
}

func (m *ElasticsearchUnauthenticatedAccess) Version() *semver.Version {
	return semver.MustParse("1.0.0")
}

func (m *ElasticsearchUnauthenticatedAccess) Description() string {
	return "Check for Elasticsearch Unauthenticated Access"
}

func (m *ElasticsearchUnauthenticatedAccess) IsAggressive() bool {
	return false
}

func (m *ElasticsearchUnauthenticatedAccess) Severity() Severity {
	return SeverityHigh
}

type elasticsearchInfo struct {
	Name        string `json:"name"`
	ClusterName string `json:"cluster_name"`
	Tagline     string `json:"tagline"`
}

func (m *ElasticsearchUnauthenticatedAccess) Scan(ctx context.Context, client *http.Client, endpoint string) (*Finding, error) {
	body, ok, err := httpGet(ctx, client, endpoint)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var info elasticsearchInfo
	if err := json.Unmarshal([]byte(body), &info); err != nil {
		// Not JSON, so not an Elasticsearch banner.
		return nil, nil
	}

	if strings.Contains(strings.ToLower(info.Tagline), "you know, for search") {
		return newFinding(m, endpoint), nil
	}

	return nil, nil
}
